package v1

import (
	"time"
)

// CreateZoneRequest DTO для создания зоны
// @Description DTO для создания зоны
type CreateZoneRequest struct {
	Name         string       `json:"name" validate:"required,min=2,max=255"`
	Kind         string       `json:"kind" validate:"required,oneof=neighborhood water_distribution_area other"`
	Ring         [][2]float64 `json:"ring,omitempty" validate:"omitempty,min=3"`
	RefLongitude *float64     `json:"ref_longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	RefLatitude  *float64     `json:"ref_latitude,omitempty" validate:"omitempty,min=-90,max=90"`
}

// UpdateZoneRequest DTO для обновления зоны
// @Description DTO для обновления зоны
type UpdateZoneRequest struct {
	Name         string       `json:"name" validate:"required,min=2,max=255"`
	Kind         string       `json:"kind" validate:"required,oneof=neighborhood water_distribution_area other"`
	Ring         [][2]float64 `json:"ring,omitempty" validate:"omitempty,min=3"`
	RefLongitude *float64     `json:"ref_longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	RefLatitude  *float64     `json:"ref_latitude,omitempty" validate:"omitempty,min=-90,max=90"`
}

// ZoneResponse DTO для ответа с информацией о зоне
// @Description DTO для ответа с информацией о зоне
type ZoneResponse struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Kind         string       `json:"kind"`
	Ring         [][2]float64 `json:"ring,omitempty"`
	RefLongitude *float64     `json:"ref_longitude,omitempty"`
	RefLatitude  *float64     `json:"ref_latitude,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// ResolveZoneResponse DTO для ответа разрешения координаты в зону
// @Description DTO для ответа разрешения координаты в зону
type ResolveZoneResponse struct {
	Zone string `json:"zone"`
}

// RecordObservationRequest DTO для записи наблюдения
// @Description DTO для записи наблюдения о доступности услуги за день
type RecordObservationRequest struct {
	UserID    string  `json:"user_id" validate:"required"`
	Service   string  `json:"service" validate:"required,oneof=electricity water"`
	Date      string  `json:"date" validate:"required,datetime=2006-01-02"`
	Status    string  `json:"status" validate:"required,oneof=available cut_off"`
	Arrival   *string `json:"arrival,omitempty" validate:"omitempty,datetime=15:04"`
	Departure *string `json:"departure,omitempty" validate:"omitempty,datetime=15:04"`
	Notes     string  `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// ObservationResponse DTO для ответа с созданным наблюдением
// @Description DTO для ответа с созданным наблюдением
type ObservationResponse struct {
	ID            int64     `json:"id"`
	UserID        string    `json:"user_id"`
	Service       string    `json:"service"`
	Date          string    `json:"date"`
	Status        string    `json:"status"`
	Arrival       *string   `json:"arrival,omitempty"`
	Departure     *string   `json:"departure,omitempty"`
	DurationHours *float64  `json:"duration_hours,omitempty"`
	Neighborhood  string    `json:"neighborhood"`
	CreatedAt     time.Time `json:"created_at"`
}

// ZoneStatusResponse DTO для ответа со статусом услуги в зоне.
// Score отсутствует в ответе, когда в окне нет ни одного наблюдения.
// @Description DTO для ответа со статусом услуги в зоне
type ZoneStatusResponse struct {
	Zone              string    `json:"zone"`
	Service           string    `json:"service"`
	Score             *float64  `json:"score,omitempty"`
	Status            string    `json:"status"`
	SampleCount       int       `json:"sample_count"`
	MeanDurationHours *float64  `json:"mean_duration_hours,omitempty"`
	WindowStart       time.Time `json:"window_start"`
	WindowEnd         time.Time `json:"window_end"`
}

// PulseResponse DTO для ответа живого пульса
// @Description DTO для ответа живого пульса
type PulseResponse struct {
	ActiveNeighborhoods []string `json:"active_neighborhoods"`
}
