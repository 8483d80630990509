package service

import (
	"context"
	"fmt"
	"time"

	"github.com/murefu/geo_status_engine/internal/config"
	"github.com/murefu/geo_status_engine/internal/models"
	"github.com/sirupsen/logrus"
)

// StatusRepository определяет контракт агрегатора: чтение журнала наблюдений
// в окне плюс кеш производных статусов
type StatusRepository interface {
	// ListObservations возвращает наблюдения услуги, чей снимок района
	// совпадает с neighborhood, а дата попадает в [from, to]
	ListObservations(ctx context.Context, service models.ServiceKind, neighborhood string, from, to time.Time) ([]*models.Observation, error)
	GetStatusFromCache(ctx context.Context, zone string, service models.ServiceKind) (*models.ZoneStatus, error)
	SetStatusCache(ctx context.Context, status *models.ZoneStatus) error
	InvalidateStatusCache(ctx context.Context, zone string, service models.ServiceKind) error
}

// StatusService определяет контракт агрегатора статусов по зонам
type StatusService interface {
	// CurrentStatus - статус "сейчас" с окном по умолчанию, через кеш
	CurrentStatus(ctx context.Context, zoneID int64, service models.ServiceKind) (*models.ZoneStatus, error)
	// ComputeStatus - чистый пересчет для произвольного момента и окна,
	// без побочных эффектов и общего изменяемого состояния
	ComputeStatus(ctx context.Context, zoneID int64, service models.ServiceKind, asOf time.Time, window time.Duration) (*models.ZoneStatus, error)
	// RefreshNeighborhood пересчитывает и перекеширует статус района
	RefreshNeighborhood(ctx context.Context, zoneName string, service models.ServiceKind) error
	// RefreshAll пересчитывает статусы всех районов по всем услугам
	RefreshAll(ctx context.Context) error
}

type statusService struct {
	repo   StatusRepository
	zones  ZoneRepository
	logger *logrus.Logger
	cfg    *config.Config
}

func NewStatusService(repo StatusRepository, zones ZoneRepository, logger *logrus.Logger, cfg *config.Config) StatusService {
	return &statusService{
		repo:   repo,
		zones:  zones,
		logger: logger,
		cfg:    cfg,
	}
}

func (s *statusService) defaultWindow() time.Duration {
	return time.Duration(s.cfg.StatusWindowDays) * 24 * time.Hour
}

// CurrentStatus отдает статус из кеша, при промахе пересчитывает и кеширует
func (s *statusService) CurrentStatus(ctx context.Context, zoneID int64, service models.ServiceKind) (*models.ZoneStatus, error) {
	if !service.Valid() {
		return nil, fmt.Errorf("%w: unknown service kind %q", ErrInvalidInput, service)
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "status",
		"method":  "CurrentStatus",
		"zone_id": zoneID,
		"kind":    service,
	})

	zone, err := s.zones.GetByID(ctx, zoneID)
	if err != nil {
		log.WithError(err).Warn("Zone not found")
		return nil, fmt.Errorf("service: zone with id %d not found: %w", zoneID, err)
	}

	cached, err := s.repo.GetStatusFromCache(ctx, zone.Name, service)
	if err != nil {
		log.WithError(err).Warn("Failed to read status cache")
	}
	if cached != nil {
		cached.ZoneID = zone.ID
		return cached, nil
	}

	status, err := s.computeForZone(ctx, zone, service, time.Now().UTC(), s.defaultWindow())
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetStatusCache(ctx, status); err != nil {
		log.WithError(err).Warn("Failed to write status cache")
	}
	return status, nil
}

// ComputeStatus пересчитывает статус зоны для произвольного окна, минуя кеш
func (s *statusService) ComputeStatus(ctx context.Context, zoneID int64, service models.ServiceKind, asOf time.Time, window time.Duration) (*models.ZoneStatus, error) {
	if !service.Valid() {
		return nil, fmt.Errorf("%w: unknown service kind %q", ErrInvalidInput, service)
	}
	if window <= 0 {
		window = s.defaultWindow()
	}

	zone, err := s.zones.GetByID(ctx, zoneID)
	if err != nil {
		return nil, fmt.Errorf("service: zone with id %d not found: %w", zoneID, err)
	}

	return s.computeForZone(ctx, zone, service, asOf, window)
}

func (s *statusService) computeForZone(ctx context.Context, zone *models.Zone, service models.ServiceKind, asOf time.Time, window time.Duration) (*models.ZoneStatus, error) {
	from := asOf.Add(-window)

	observations, err := s.repo.ListObservations(ctx, service, zone.Name, from, asOf)
	if err != nil {
		return nil, fmt.Errorf("service: could not list observations: %w", err)
	}

	status := buildZoneStatus(zone, service, from, asOf, observations, s.cfg.GoodThreshold, s.cfg.PoorThreshold)
	return status, nil
}

// buildZoneStatus - чистая свертка наблюдений в производный статус.
// Пустая выборка дает явный статус unknown с отсутствующим счетом; нулем
// или единицей он не подменяется. Средняя длительность считается только по
// записям с известной длительностью, при этом знаменатель счета доступности
// не уменьшается.
func buildZoneStatus(zone *models.Zone, service models.ServiceKind, from, to time.Time, observations []*models.Observation, goodThreshold, poorThreshold float64) *models.ZoneStatus {
	status := &models.ZoneStatus{
		ZoneID:      zone.ID,
		Zone:        zone.Name,
		Service:     service,
		WindowStart: from,
		WindowEnd:   to,
		SampleCount: len(observations),
		Label:       models.StatusUnknown,
	}

	if len(observations) == 0 {
		return status
	}

	available := 0
	durationSum := 0.0
	durationCount := 0
	for _, obs := range observations {
		if obs.Status == models.ObservationAvailable {
			available++
		}
		if obs.DurationHours != nil {
			durationSum += *obs.DurationHours
			durationCount++
		}
	}

	score := float64(available) / float64(len(observations))
	status.Score = &score
	status.Label = labelForScore(score, goodThreshold, poorThreshold)

	if durationCount > 0 {
		mean := durationSum / float64(durationCount)
		status.MeanDurationHours = &mean
	}

	return status
}

func labelForScore(score, goodThreshold, poorThreshold float64) models.StatusLabel {
	switch {
	case score >= goodThreshold:
		return models.StatusGood
	case score >= poorThreshold:
		return models.StatusPartial
	default:
		return models.StatusPoor
	}
}

// RefreshNeighborhood инвалидирует кеш района и, если район известен
// справочнику зон, кладет в кеш свежепересчитанный статус
func (s *statusService) RefreshNeighborhood(ctx context.Context, zoneName string, service models.ServiceKind) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "status",
		"method":  "RefreshNeighborhood",
		"zone":    zoneName,
		"kind":    service,
	})

	if err := s.repo.InvalidateStatusCache(ctx, zoneName, service); err != nil {
		log.WithError(err).Warn("Failed to invalidate status cache")
	}

	zone, err := s.zones.GetByName(ctx, zoneName)
	if err != nil {
		// Снимок района может ссылаться на зону, которой в справочнике
		// уже (или еще) нет; пересчитывать тогда нечего
		log.WithError(err).Debug("Neighborhood has no zone record, cache invalidated only")
		return nil
	}

	status, err := s.computeForZone(ctx, zone, service, time.Now().UTC(), s.defaultWindow())
	if err != nil {
		log.WithError(err).Error("Failed to recompute zone status")
		return fmt.Errorf("service: could not refresh zone status: %w", err)
	}

	if err := s.repo.SetStatusCache(ctx, status); err != nil {
		log.WithError(err).Warn("Failed to write status cache")
	}

	log.WithField("label", status.Label).Debug("Zone status refreshed")
	return nil
}

// RefreshAll пересчитывает статусы всех районов по всем известным услугам.
// Ошибки отдельных зон логируются, но не прерывают обход.
func (s *statusService) RefreshAll(ctx context.Context) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "status",
		"method":  "RefreshAll",
	})
	log.Info("Refreshing all zone statuses")

	zones, err := s.zones.ListByKind(ctx, models.ZoneKindNeighborhood)
	if err != nil {
		log.WithError(err).Error("Failed to list neighborhood zones")
		return fmt.Errorf("service: could not list zones for refresh: %w", err)
	}

	for _, zone := range zones {
		for _, kind := range models.KnownServiceKinds {
			if err := s.RefreshNeighborhood(ctx, zone.Name, kind); err != nil {
				log.WithError(err).WithFields(logrus.Fields{
					"zone": zone.Name,
					"kind": kind,
				}).Error("Failed to refresh zone status")
			}
		}
	}

	log.WithField("zones", len(zones)).Info("Zone statuses refreshed")
	return nil
}
