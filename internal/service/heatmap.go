package service

import (
	"context"
	"fmt"
	"time"

	"github.com/murefu/geo_status_engine/internal/config"
	"github.com/murefu/geo_status_engine/internal/geojson"
	"github.com/murefu/geo_status_engine/internal/models"
	"github.com/sirupsen/logrus"
)

// Виды слоев теплокарты
const (
	HeatmapProblems  = "problems"
	HeatmapCoverage  = "coverage"
	HeatmapCommunity = "community"
)

// CivicRepository определяет контракт чтения сырых данных портала для
// теплокарты. Движок их только читает; путь записи принадлежит порталу.
type CivicRepository interface {
	// OpenReports возвращает незакрытые жалобы; since == nil означает
	// полную историю (ограниченную защитным потолком limit)
	OpenReports(ctx context.Context, since *time.Time, limit int) ([]*models.Report, error)
	ActiveAssets(ctx context.Context, limit int) ([]*models.Asset, error)
	LocatedUsers(ctx context.Context, limit int) ([]*models.UserPoint, error)
}

// HeatmapService строит взвешенные GeoJSON-слои для карты приоритизации
type HeatmapService interface {
	BuildFeatureCollection(ctx context.Context, kind string, hoursAgo int) (*geojson.FeatureCollection, error)
}

type heatmapService struct {
	repo   CivicRepository
	logger *logrus.Logger
	cfg    *config.Config
}

func NewHeatmapService(repo CivicRepository, logger *logrus.Logger, cfg *config.Config) HeatmapService {
	return &heatmapService{
		repo:   repo,
		logger: logger,
		cfg:    cfg,
	}
}

// BuildFeatureCollection собирает слой теплокарты указанного вида.
// Агрегации и кластеризации нет: каждая сырая запись дает ровно одну
// точечную фичу, кластеризация - забота клиента или тайлового слоя.
func (s *heatmapService) BuildFeatureCollection(ctx context.Context, kind string, hoursAgo int) (*geojson.FeatureCollection, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "heatmap",
		"method":    "BuildFeatureCollection",
		"kind":      kind,
		"hours_ago": hoursAgo,
	})

	switch kind {
	case HeatmapProblems:
		return s.buildProblems(ctx, log, hoursAgo)
	case HeatmapCoverage:
		return s.buildCoverage(ctx, log)
	case HeatmapCommunity:
		return s.buildCommunity(ctx, log)
	default:
		return nil, fmt.Errorf("%w: unknown heatmap kind %q", ErrInvalidInput, kind)
	}
}

// buildProblems строит слой незакрытых жалоб, взвешенных по категории.
// Категории, отсутствующие в таблице весов, получают низкий вес по
// умолчанию - фичи молча не выбрасываются. Если запрошенное окно больше
// порога "полной истории", фильтр по давности снимается целиком, а не
// возвращает молча пустой результат.
func (s *heatmapService) buildProblems(ctx context.Context, log *logrus.Entry, hoursAgo int) (*geojson.FeatureCollection, error) {
	var since *time.Time
	if hoursAgo > 0 && hoursAgo <= s.cfg.HeatmapFullHistoryHours {
		t := time.Now().UTC().Add(-time.Duration(hoursAgo) * time.Hour)
		since = &t
	}

	reports, err := s.repo.OpenReports(ctx, since, s.cfg.HeatmapMaxFeatures)
	if err != nil {
		log.WithError(err).Error("Failed to load reports")
		return nil, fmt.Errorf("service: could not load reports: %w", err)
	}

	features := make([]geojson.Feature, 0, len(reports))
	for _, report := range reports {
		weight, ok := s.cfg.CategoryWeights[report.Category]
		if !ok {
			weight = s.cfg.DefaultCategoryWeight
		}
		features = append(features, geojson.NewPointFeature(report.Longitude, report.Latitude, weight, report.Category))
	}

	log.WithField("count", len(features)).Debug("Problems layer built")
	return geojson.NewFeatureCollection(features), nil
}

// buildCoverage строит слой активной инфраструктуры, взвешенной по типу
func (s *heatmapService) buildCoverage(ctx context.Context, log *logrus.Entry) (*geojson.FeatureCollection, error) {
	assets, err := s.repo.ActiveAssets(ctx, s.cfg.HeatmapMaxFeatures)
	if err != nil {
		log.WithError(err).Error("Failed to load assets")
		return nil, fmt.Errorf("service: could not load assets: %w", err)
	}

	features := make([]geojson.Feature, 0, len(assets))
	for _, asset := range assets {
		weight, ok := s.cfg.AssetWeights[asset.Type]
		if !ok {
			weight = s.cfg.DefaultAssetWeight
		}
		features = append(features, geojson.NewPointFeature(asset.Longitude, asset.Latitude, weight, asset.Type))
	}

	log.WithField("count", len(features)).Debug("Coverage layer built")
	return geojson.NewFeatureCollection(features), nil
}

// buildCommunity строит слой плотности пользователей: каждая точка с
// единичным весом, слой меряет присутствие, а не качество
func (s *heatmapService) buildCommunity(ctx context.Context, log *logrus.Entry) (*geojson.FeatureCollection, error) {
	users, err := s.repo.LocatedUsers(ctx, s.cfg.HeatmapMaxFeatures)
	if err != nil {
		log.WithError(err).Error("Failed to load user locations")
		return nil, fmt.Errorf("service: could not load user locations: %w", err)
	}

	features := make([]geojson.Feature, 0, len(users))
	for _, user := range users {
		features = append(features, geojson.NewPointFeature(user.Longitude, user.Latitude, 1.0, ""))
	}

	log.WithField("count", len(features)).Debug("Community layer built")
	return geojson.NewFeatureCollection(features), nil
}
