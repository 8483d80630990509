package v1

import (
	"github.com/murefu/geo_status_engine/internal/geometry"
	"github.com/murefu/geo_status_engine/internal/models"
)

// DTOToZoneModel преобразует DTO создания/обновления в доменную модель.
// Используем одну функцию, так как поля совпадают.
func DTOToZoneModel(dto any) *models.Zone {
	switch v := dto.(type) {
	case CreateZoneRequest:
		return &models.Zone{
			Name:         v.Name,
			Kind:         models.ZoneKind(v.Kind),
			Ring:         geometry.Ring(v.Ring),
			RefLongitude: v.RefLongitude,
			RefLatitude:  v.RefLatitude,
		}
	case UpdateZoneRequest:
		return &models.Zone{
			Name:         v.Name,
			Kind:         models.ZoneKind(v.Kind),
			Ring:         geometry.Ring(v.Ring),
			RefLongitude: v.RefLongitude,
			RefLatitude:  v.RefLatitude,
		}
	}
	return nil
}

// ModelToZoneResponse преобразует доменную модель в DTO для ответа
func ModelToZoneResponse(model *models.Zone) *ZoneResponse {
	return &ZoneResponse{
		ID:           model.ID,
		Name:         model.Name,
		Kind:         string(model.Kind),
		Ring:         [][2]float64(model.Ring),
		RefLongitude: model.RefLongitude,
		RefLatitude:  model.RefLatitude,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

// ModelsToZoneResponses преобразует слайс моделей в слайс DTO
func ModelsToZoneResponses(zones []*models.Zone) []*ZoneResponse {
	responses := make([]*ZoneResponse, len(zones))
	for i, zone := range zones {
		responses[i] = ModelToZoneResponse(zone)
	}
	return responses
}

// ModelToObservationResponse преобразует наблюдение в DTO для ответа
func ModelToObservationResponse(model *models.Observation) *ObservationResponse {
	return &ObservationResponse{
		ID:            model.ID,
		UserID:        model.UserID,
		Service:       string(model.Service),
		Date:          model.ObservedOn.Format("2006-01-02"),
		Status:        string(model.Status),
		Arrival:       model.Arrival,
		Departure:     model.Departure,
		DurationHours: model.DurationHours,
		Neighborhood:  model.Neighborhood,
		CreatedAt:     model.CreatedAt,
	}
}

// ModelToZoneStatusResponse преобразует производный статус зоны в DTO
func ModelToZoneStatusResponse(model *models.ZoneStatus) *ZoneStatusResponse {
	return &ZoneStatusResponse{
		Zone:              model.Zone,
		Service:           string(model.Service),
		Score:             model.Score,
		Status:            string(model.Label),
		SampleCount:       model.SampleCount,
		MeanDurationHours: model.MeanDurationHours,
		WindowStart:       model.WindowStart,
		WindowEnd:         model.WindowEnd,
	}
}
