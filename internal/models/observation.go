package models

import (
	"time"
)

// ServiceKind - вид коммунальной услуги, за которой следит движок
type ServiceKind string

const (
	ServiceElectricity ServiceKind = "electricity"
	ServiceWater       ServiceKind = "water"
)

// KnownServiceKinds перечисляет услуги в стабильном порядке для полного пересчета
var KnownServiceKinds = []ServiceKind{ServiceElectricity, ServiceWater}

func (s ServiceKind) Valid() bool {
	for _, k := range KnownServiceKinds {
		if s == k {
			return true
		}
	}
	return false
}

// ObservationStatus - статус услуги в наблюдении
type ObservationStatus string

const (
	ObservationAvailable ObservationStatus = "available"
	ObservationCutOff    ObservationStatus = "cut_off"
)

func (s ObservationStatus) Valid() bool {
	return s == ObservationAvailable || s == ObservationCutOff
}

// Observation - одно наблюдение жителя о доступности услуги за один день.
// Запись неизменяема после создания; на (UserID, Service, ObservedOn)
// действует ограничение уникальности. Neighborhood - снимок района
// пользователя на момент отправки, он никогда не обновляется задним числом.
type Observation struct {
	ID            int64             `json:"id"`
	UserID        string            `json:"user_id"`
	Service       ServiceKind       `json:"service"`
	ObservedOn    time.Time         `json:"observed_on"`
	Status        ObservationStatus `json:"status"`
	Arrival       *string           `json:"arrival,omitempty"`
	Departure     *string           `json:"departure,omitempty"`
	DurationHours *float64          `json:"duration_hours,omitempty"`
	Neighborhood  string            `json:"neighborhood"`
	Notes         string            `json:"notes,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}
