package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/murefu/geo_status_engine/internal/config"
	"github.com/murefu/geo_status_engine/internal/models"
	"github.com/murefu/geo_status_engine/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHeatmapService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestHeatmapService(t *testing.T) (*heatmapService, *mocks.MockCivicRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockCivicRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		HeatmapFullHistoryHours: 720,
		HeatmapMaxFeatures:      5000,
		CategoryWeights: map[string]float64{
			"water": 1.0,
			"road":  0.7,
		},
		DefaultCategoryWeight: 0.2,
		AssetWeights: map[string]float64{
			"well":   0.9,
			"school": 0.8,
		},
		DefaultAssetWeight: 0.2,
	}

	service := NewHeatmapService(repoMock, logger, cfg)
	return service.(*heatmapService), repoMock
}

func TestBuildFeatureCollection_Problems_Weights(t *testing.T) {
	// Подготовка
	service, repoMock := newTestHeatmapService(t)
	ctx := context.Background()
	reports := []*models.Report{
		{Category: "water", Longitude: -16.68, Latitude: 13.44},
		{Category: "road", Longitude: -16.69, Latitude: 13.45},
		{Category: "unmapped", Longitude: -16.70, Latitude: 13.46},
	}

	// Ожидания
	repoMock.EXPECT().
		OpenReports(ctx, gomock.Any(), 5000).
		Return(reports, nil).
		Times(1)

	// Действие
	collection, err := service.BuildFeatureCollection(ctx, HeatmapProblems, 24)

	// Проверки: ни одна жалоба не выброшена, неизвестная категория
	// получает вес по умолчанию
	require.NoError(t, err)
	require.Len(t, collection.Features, 3)
	assert.InDelta(t, 1.0, collection.Features[0].Properties.Weight, 1e-9)
	assert.InDelta(t, 0.7, collection.Features[1].Properties.Weight, 1e-9)
	assert.InDelta(t, 0.2, collection.Features[2].Properties.Weight, 1e-9)
	assert.Equal(t, "unmapped", collection.Features[2].Properties.Category)
	assert.Equal(t, "FeatureCollection", collection.Type)
}

func TestBuildFeatureCollection_Problems_WindowedSince(t *testing.T) {
	// Подготовка
	service, repoMock := newTestHeatmapService(t)
	ctx := context.Background()

	// Ожидания: окно 24 часа отсчитывается от текущего момента
	repoMock.EXPECT().
		OpenReports(ctx, gomock.Any(), 5000).
		DoAndReturn(func(ctx context.Context, since *time.Time, limit int) ([]*models.Report, error) {
			require.NotNil(t, since)
			assert.WithinDuration(t, time.Now().UTC().Add(-24*time.Hour), *since, 5*time.Second)
			return nil, nil
		}).Times(1)

	// Действие
	collection, err := service.BuildFeatureCollection(ctx, HeatmapProblems, 24)

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, collection.Features)
}

func TestBuildFeatureCollection_Problems_FullHistoryDropsFilter(t *testing.T) {
	// Подготовка
	service, repoMock := newTestHeatmapService(t)
	ctx := context.Background()

	// Ожидания: окно больше потолка полной истории - фильтр по давности
	// снимается целиком, а не возвращает молча пустой результат
	repoMock.EXPECT().
		OpenReports(ctx, gomock.Nil(), 5000).
		Return(nil, nil).
		Times(1)

	// Действие
	_, err := service.BuildFeatureCollection(ctx, HeatmapProblems, 10000)

	// Проверки
	require.NoError(t, err)
}

func TestBuildFeatureCollection_Coverage_Weights(t *testing.T) {
	// Подготовка
	service, repoMock := newTestHeatmapService(t)
	ctx := context.Background()
	assets := []*models.Asset{
		{Type: "well", Longitude: -16.68, Latitude: 13.44},
		{Type: "antenna", Longitude: -16.69, Latitude: 13.45},
	}

	// Ожидания
	repoMock.EXPECT().
		ActiveAssets(ctx, 5000).
		Return(assets, nil).
		Times(1)

	// Действие
	collection, err := service.BuildFeatureCollection(ctx, HeatmapCoverage, 0)

	// Проверки
	require.NoError(t, err)
	require.Len(t, collection.Features, 2)
	assert.InDelta(t, 0.9, collection.Features[0].Properties.Weight, 1e-9)
	assert.InDelta(t, 0.2, collection.Features[1].Properties.Weight, 1e-9)
	assert.Equal(t, "well", collection.Features[0].Properties.Category)
}

func TestBuildFeatureCollection_Community_UniformWeight(t *testing.T) {
	// Подготовка
	service, repoMock := newTestHeatmapService(t)
	ctx := context.Background()
	users := []*models.UserPoint{
		{Longitude: -16.68, Latitude: 13.44},
		{Longitude: -16.69, Latitude: 13.45},
		{Longitude: -16.70, Latitude: 13.46},
	}

	// Ожидания
	repoMock.EXPECT().
		LocatedUsers(ctx, 5000).
		Return(users, nil).
		Times(1)

	// Действие
	collection, err := service.BuildFeatureCollection(ctx, HeatmapCommunity, 0)

	// Проверки: слой меряет присутствие, все веса единичные
	require.NoError(t, err)
	require.Len(t, collection.Features, 3)
	for _, feature := range collection.Features {
		assert.InDelta(t, 1.0, feature.Properties.Weight, 1e-9)
		assert.Empty(t, feature.Properties.Category)
	}
}

func TestBuildFeatureCollection_UnknownKind(t *testing.T) {
	// Подготовка
	service, _ := newTestHeatmapService(t)
	ctx := context.Background()

	// Действие
	collection, err := service.BuildFeatureCollection(ctx, "elevation", 0)

	// Проверки
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, collection)
}

func TestBuildFeatureCollection_EmptyLayerIsValidGeoJSON(t *testing.T) {
	// Подготовка
	service, repoMock := newTestHeatmapService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().ActiveAssets(ctx, 5000).Return(nil, nil).Times(1)

	// Действие
	collection, err := service.BuildFeatureCollection(ctx, HeatmapCoverage, 0)

	// Проверки: пустой слой сериализуется с features: [], а не null
	require.NoError(t, err)
	assert.Equal(t, "FeatureCollection", collection.Type)
	assert.NotNil(t, collection.Features)
	assert.Empty(t, collection.Features)
}
