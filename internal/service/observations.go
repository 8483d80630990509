package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/murefu/geo_status_engine/internal/models"
	"github.com/murefu/geo_status_engine/internal/refresh"
	"github.com/sirupsen/logrus"
)

// ObservationRepository определяет контракт для работы с журналом наблюдений
type ObservationRepository interface {
	// Insert вставляет запись, полагаясь на ограничение уникальности бд
	// как на единственный механизм сериализации записи. При нарушении
	// возвращает ошибку, разворачивающуюся в ErrDuplicateObservation.
	Insert(ctx context.Context, observation *models.Observation) error
	// UserNeighborhood возвращает текущий район пользователя,
	// пустую строку - если район неизвестен
	UserNeighborhood(ctx context.Context, userID string) (string, error)
}

// RecordObservationInput - вход для записи одного наблюдения
type RecordObservationInput struct {
	UserID     string
	Service    models.ServiceKind
	ObservedOn time.Time
	Status     models.ObservationStatus
	Arrival    *string
	Departure  *string
	Notes      string
}

// ObservationService определяет контракт журнала наблюдений
type ObservationService interface {
	Record(ctx context.Context, input RecordObservationInput) (*models.Observation, error)
}

type observationService struct {
	repo      ObservationRepository
	logger    *logrus.Logger
	publisher refresh.RefreshPublisher
}

func NewObservationService(repo ObservationRepository, logger *logrus.Logger, publisher refresh.RefreshPublisher) ObservationService {
	return &observationService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
	}
}

// Record записывает наблюдение жителя. Район снимается с профиля
// пользователя на момент отправки и больше никогда не пересчитывается;
// повторная отправка за тот же (user, service, day) отклоняется с
// ErrDuplicateObservation без какой-либо записи.
func (s *observationService) Record(ctx context.Context, input RecordObservationInput) (*models.Observation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "observations",
		"method":  "Record",
		"user_id": input.UserID,
		"kind":    input.Service,
	})
	log.Info("Recording observation")

	if input.UserID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if !input.Service.Valid() {
		return nil, fmt.Errorf("%w: unknown service kind %q", ErrInvalidInput, input.Service)
	}
	if !input.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown observation status %q", ErrInvalidInput, input.Status)
	}
	if input.ObservedOn.IsZero() {
		return nil, fmt.Errorf("%w: observation date is required", ErrInvalidInput)
	}

	duration, err := durationHours(input.Arrival, input.Departure)
	if err != nil {
		return nil, err
	}

	neighborhood, err := s.repo.UserNeighborhood(ctx, input.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to look up user neighborhood")
		return nil, fmt.Errorf("service: could not look up user neighborhood: %w", err)
	}

	observation := &models.Observation{
		UserID:        input.UserID,
		Service:       input.Service,
		ObservedOn:    input.ObservedOn,
		Status:        input.Status,
		Arrival:       input.Arrival,
		Departure:     input.Departure,
		DurationHours: duration,
		Neighborhood:  neighborhood,
		Notes:         input.Notes,
	}

	if err := s.repo.Insert(ctx, observation); err != nil {
		log.WithError(err).Warn("Failed to insert observation")
		return nil, fmt.Errorf("service: could not record observation: %w", err)
	}

	// Новое наблюдение делает кешированный статус района устаревшим
	if neighborhood != "" {
		event := refresh.RefreshEvent{
			EventID:   uuid.New(),
			Zone:      neighborhood,
			Service:   input.Service,
			Timestamp: time.Now().UTC(),
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.WithError(err).Warn("Failed to publish refresh event")
		}
	}

	log.WithField("observation_id", observation.ID).Info("Observation recorded successfully")
	return observation, nil
}

// clockLayout - формат времени прихода/ухода услуги
const clockLayout = "15:04"

// durationHours вычисляет длительность в часах между приходом и уходом
// услуги в пределах одной календарной записи. Если время ухода численно
// меньше времени прихода, уход считается случившимся после полуночи и к
// нему добавляются сутки. Нулевая или отрицательная длительность после
// поправки трактуется как отсутствующая, а не отрицательная.
func durationHours(arrival, departure *string) (*float64, error) {
	if arrival == nil || departure == nil {
		return nil, nil
	}

	arr, err := time.Parse(clockLayout, *arrival)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed arrival time %q", ErrInvalidInput, *arrival)
	}
	dep, err := time.Parse(clockLayout, *departure)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed departure time %q", ErrInvalidInput, *departure)
	}

	arrMinutes := arr.Hour()*60 + arr.Minute()
	depMinutes := dep.Hour()*60 + dep.Minute()
	if depMinutes < arrMinutes {
		depMinutes += 24 * 60
	}

	hours := float64(depMinutes-arrMinutes) / 60.0
	if hours <= 0 {
		return nil, nil
	}
	return &hours, nil
}
