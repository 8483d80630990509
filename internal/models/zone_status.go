package models

import "time"

// StatusLabel - производная метка статуса услуги в зоне
type StatusLabel string

const (
	StatusGood    StatusLabel = "good"
	StatusPartial StatusLabel = "partial"
	StatusPoor    StatusLabel = "poor"
	// StatusUnknown означает отсутствие данных в окне; это нормальное
	// состояние, а не ошибка, и оно никогда не превращается в счет 0.0.
	StatusUnknown StatusLabel = "unknown"
)

// ZoneStatus - производное состояние услуги в зоне за окно времени.
// Не персистится в БД; пересчитывается по запросу или по расписанию
// и кешируется в Redis. Score == nil при отсутствии выборки.
type ZoneStatus struct {
	ZoneID            int64       `json:"zone_id"`
	Zone              string      `json:"zone"`
	Service           ServiceKind `json:"service"`
	WindowStart       time.Time   `json:"window_start"`
	WindowEnd         time.Time   `json:"window_end"`
	SampleCount       int         `json:"sample_count"`
	Score             *float64    `json:"score,omitempty"`
	Label             StatusLabel `json:"status"`
	MeanDurationHours *float64    `json:"mean_duration_hours,omitempty"`
}
