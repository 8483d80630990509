package service

import (
	"context"
	"fmt"

	"github.com/murefu/geo_status_engine/internal/config"
	"github.com/murefu/geo_status_engine/internal/geometry"
	"github.com/murefu/geo_status_engine/internal/models"
	"github.com/sirupsen/logrus"
)

// ZoneRepository определяет контракт для работы с бд зон
type ZoneRepository interface {
	Create(ctx context.Context, zone *models.Zone) error
	GetByID(ctx context.Context, id int64) (*models.Zone, error)
	GetByName(ctx context.Context, name string) (*models.Zone, error)
	Update(ctx context.Context, zone *models.Zone) error
	Delete(ctx context.Context, id int64) error
	ListZones(ctx context.Context, page, pageSize int) ([]*models.Zone, error)
	// ListByKind возвращает зоны в порядке возрастания id - это
	// детерминированный порядок разрешения пересекающихся зон
	ListByKind(ctx context.Context, kind models.ZoneKind) ([]*models.Zone, error)
	GetZoneListFromCache(ctx context.Context, kind models.ZoneKind) ([]*models.Zone, error)
	SetZoneListCache(ctx context.Context, kind models.ZoneKind, zones []*models.Zone) error
	InvalidateZoneListCache(ctx context.Context, kind models.ZoneKind) error
}

// ZoneService определяет контракт справочника зон: административный CRUD
// плюс разрешение координаты в зону
type ZoneService interface {
	CreateZone(ctx context.Context, zone *models.Zone) error
	GetZone(ctx context.Context, id int64) (*models.Zone, error)
	UpdateZone(ctx context.Context, zone *models.Zone) error
	DeleteZone(ctx context.Context, id int64) error
	ListZones(ctx context.Context, page, pageSize int) ([]*models.Zone, error)
	ResolveZone(ctx context.Context, lon, lat float64, kind models.ZoneKind) (*models.Zone, error)
}

type zoneService struct {
	repo   ZoneRepository
	logger *logrus.Logger
	cfg    *config.Config
}

func NewZoneService(repo ZoneRepository, logger *logrus.Logger, cfg *config.Config) ZoneService {
	return &zoneService{
		repo:   repo,
		logger: logger,
		cfg:    cfg,
	}
}

// validateZoneGeometry проверяет геометрию при административной записи.
// Зона обязана иметь либо валидный контур, либо опорную точку.
func validateZoneGeometry(zone *models.Zone) error {
	if len(zone.Ring) > 0 && !zone.Ring.Valid() {
		return fmt.Errorf("%w: polygon ring must have at least 3 vertices", ErrInvalidInput)
	}
	if len(zone.Ring) == 0 && (zone.RefLongitude == nil || zone.RefLatitude == nil) {
		return fmt.Errorf("%w: zone needs a polygon ring or a reference point", ErrInvalidInput)
	}
	return nil
}

func validateCoordinates(lon, lat float64) error {
	if lon < -180 || lon > 180 || lat < -90 || lat > 90 {
		return fmt.Errorf("%w: coordinates out of range (%f, %f)", ErrInvalidInput, lon, lat)
	}
	return nil
}

// CreateZone создает зону
func (s *zoneService) CreateZone(ctx context.Context, zone *models.Zone) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "zones",
		"method":  "CreateZone",
		"name":    zone.Name,
	})
	log.Info("Attempting to create a new zone")

	if err := validateZoneGeometry(zone); err != nil {
		return err
	}
	if zone.Kind == "" {
		zone.Kind = models.ZoneKindNeighborhood
	}

	if err := s.repo.Create(ctx, zone); err != nil {
		log.WithError(err).Error("Failed to create zone in repository")
		return fmt.Errorf("service: could not create zone: %w", err)
	}

	if err := s.repo.InvalidateZoneListCache(ctx, zone.Kind); err != nil {
		log.WithError(err).Warn("Failed to invalidate zone list cache")
	}

	log.WithField("zone_id", zone.ID).Info("Zone created successfully")
	return nil
}

// GetZone получает зону по ID
func (s *zoneService) GetZone(ctx context.Context, id int64) (*models.Zone, error) {
	zone, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get zone: %w", err)
	}
	return zone, nil
}

// UpdateZone обновляет существующую зону
func (s *zoneService) UpdateZone(ctx context.Context, zone *models.Zone) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "zones",
		"method":  "UpdateZone",
		"zone_id": zone.ID,
	})
	log.Info("Attempting to update zone")

	if err := validateZoneGeometry(zone); err != nil {
		return err
	}

	existing, err := s.repo.GetByID(ctx, zone.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent zone")
		return fmt.Errorf("service: zone with id %d not found for update: %w", zone.ID, err)
	}

	existing.Name = zone.Name
	existing.Kind = zone.Kind
	existing.Ring = zone.Ring
	existing.RefLongitude = zone.RefLongitude
	existing.RefLatitude = zone.RefLatitude

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update zone in repository")
		return fmt.Errorf("service: could not update zone: %w", err)
	}

	if err := s.repo.InvalidateZoneListCache(ctx, existing.Kind); err != nil {
		log.WithError(err).Warn("Failed to invalidate zone list cache")
	}

	log.Info("Zone updated successfully")
	return nil
}

// DeleteZone удаляет зону
func (s *zoneService) DeleteZone(ctx context.Context, id int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "zones",
		"method":  "DeleteZone",
		"zone_id": id,
	})
	log.Info("Attempting to delete zone")

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to delete a non-existent zone")
		return fmt.Errorf("service: zone with id %d not found for delete: %w", id, err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete zone in repository")
		return fmt.Errorf("service: could not delete zone: %w", err)
	}

	if err := s.repo.InvalidateZoneListCache(ctx, existing.Kind); err != nil {
		log.WithError(err).Warn("Failed to invalidate zone list cache")
	}

	log.Info("Zone deleted successfully")
	return nil
}

// ListZones возвращает список зон с пагинацией
func (s *zoneService) ListZones(ctx context.Context, page, pageSize int) ([]*models.Zone, error) {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	zones, err := s.repo.ListZones(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("service: could not list zones: %w", err)
	}
	return zones, nil
}

// ResolveZone находит первую зону указанного вида, полигон которой содержит
// точку. Зоны перебираются в порядке возрастания id, поэтому при пересечении
// зон результат детерминирован. Вырожденные зоны (без контура) пропускаются:
// они служат отображаемыми метаданными, а не целями геофенсинга. Если ни одна
// зона не подошла, возвращается ErrZoneNotFound; подстановка запасного имени
// ("Unknown" и т.п.) - политика вызывающего, не справочника.
func (s *zoneService) ResolveZone(ctx context.Context, lon, lat float64, kind models.ZoneKind) (*models.Zone, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "zones",
		"method":  "ResolveZone",
		"lon":     lon,
		"lat":     lat,
	})

	if err := validateCoordinates(lon, lat); err != nil {
		return nil, err
	}
	if kind == "" {
		kind = models.ZoneKindNeighborhood
	}

	zones, err := s.zonesByKind(ctx, kind)
	if err != nil {
		log.WithError(err).Error("Failed to load zones")
		return nil, fmt.Errorf("service: could not load zones: %w", err)
	}

	for _, zone := range zones {
		if !zone.HasBoundary() {
			// Вырожденный или невалидный контур: молча пропускаем,
			// остальные зоны все еще могут содержать точку
			continue
		}
		if geometry.Contains(lon, lat, zone.Ring) {
			log.WithField("zone", zone.Name).Debug("Point resolved to zone")
			return zone, nil
		}
	}

	return nil, ErrZoneNotFound
}

// zonesByKind отдает список зон из кеша, при промахе - из бд с записью в кеш
func (s *zoneService) zonesByKind(ctx context.Context, kind models.ZoneKind) ([]*models.Zone, error) {
	cached, err := s.repo.GetZoneListFromCache(ctx, kind)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to read zone list cache")
	}
	if cached != nil {
		return cached, nil
	}

	zones, err := s.repo.ListByKind(ctx, kind)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetZoneListCache(ctx, kind, zones); err != nil {
		s.logger.WithError(err).Warn("Failed to write zone list cache")
	}
	return zones, nil
}
