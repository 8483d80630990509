package service

import (
	"bytes"
	"context"
	"fmt"
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

// newTestStatusService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestStatusService(t *testing.T) (*statusService, *mocks.MockStatusRepository, *mocks.MockZoneRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockStatusRepository(ctrl)
	zonesMock := mocks.NewMockZoneRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		StatusWindowDays: 7,
		GoodThreshold:    0.66,
		PoorThreshold:    0.33,
	}

	service := NewStatusService(repoMock, zonesMock, logger, cfg)
	return service.(*statusService), repoMock, zonesMock
}

func observationsWithStatuses(available, cutOff int) []*models.Observation {
	observations := make([]*models.Observation, 0, available+cutOff)
	for i := 0; i < available; i++ {
		observations = append(observations, &models.Observation{Status: models.ObservationAvailable})
	}
	for i := 0; i < cutOff; i++ {
		observations = append(observations, &models.Observation{Status: models.ObservationCutOff})
	}
	return observations
}

func TestComputeStatus_Good(t *testing.T) {
	// Подготовка
	service, repoMock, zonesMock := newTestStatusService(t)
	ctx := context.Background()
	zone := &models.Zone{ID: 1, Name: "Медина"}
	asOf := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	window := 7 * 24 * time.Hour

	// Ожидания: 7 available из 10 наблюдений
	zonesMock.EXPECT().GetByID(ctx, int64(1)).Return(zone, nil).Times(1)
	repoMock.EXPECT().
		ListObservations(ctx, models.ServiceElectricity, "Медина", asOf.Add(-window), asOf).
		Return(observationsWithStatuses(7, 3), nil).
		Times(1)

	// Действие
	status, err := service.ComputeStatus(ctx, 1, models.ServiceElectricity, asOf, window)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 10, status.SampleCount)
	require.NotNil(t, status.Score)
	assert.InDelta(t, 0.7, *status.Score, 1e-9)
	assert.Equal(t, models.StatusGood, status.Label)
}

func TestComputeStatus_EmptyWindow_Unknown(t *testing.T) {
	// Подготовка
	service, repoMock, zonesMock := newTestStatusService(t)
	ctx := context.Background()
	zone := &models.Zone{ID: 1, Name: "Медина"}
	asOf := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	window := 7 * 24 * time.Hour

	// Ожидания: наблюдений нет
	zonesMock.EXPECT().GetByID(ctx, int64(1)).Return(zone, nil).Times(1)
	repoMock.EXPECT().
		ListObservations(ctx, models.ServiceWater, "Медина", asOf.Add(-window), asOf).
		Return(nil, nil).
		Times(1)

	// Действие
	status, err := service.ComputeStatus(ctx, 1, models.ServiceWater, asOf, window)

	// Проверки: явный unknown, счет отсутствует, а не равен нулю
	require.NoError(t, err)
	assert.Equal(t, 0, status.SampleCount)
	assert.Nil(t, status.Score)
	assert.Equal(t, models.StatusUnknown, status.Label)
}

func TestComputeStatus_InvalidService(t *testing.T) {
	// Подготовка
	service, _, _ := newTestStatusService(t)
	ctx := context.Background()

	// Действие
	status, err := service.ComputeStatus(ctx, 1, "gas", time.Now(), time.Hour)

	// Проверки
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, status)
}

func TestBuildZoneStatus_Labels(t *testing.T) {
	zone := &models.Zone{ID: 1, Name: "Медина"}
	from := time.Date(2026, 8, 18, 0, 0, 0, 0, time.UTC)
	to := from.Add(7 * 24 * time.Hour)

	cases := []struct {
		name      string
		available int
		cutOff    int
		label     models.StatusLabel
	}{
		{"все available", 10, 0, models.StatusGood},
		{"ровно на границе good", 2, 1, models.StatusGood},   // 0.666... >= 0.66
		{"между порогами", 1, 1, models.StatusPartial},       // 0.5
		{"ровно на границе poor", 1, 2, models.StatusPartial}, // 0.333... >= 0.33
		{"все cut_off", 0, 10, models.StatusPoor},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			observations := observationsWithStatuses(tc.available, tc.cutOff)
			status := buildZoneStatus(zone, models.ServiceElectricity, from, to, observations, 0.66, 0.33)

			require.NotNil(t, status.Score)
			assert.Equal(t, tc.label, status.Label)
		})
	}
}

func TestBuildZoneStatus_MeanDurationOverKnownOnly(t *testing.T) {
	// Подготовка: длительность известна только у двух наблюдений из трех,
	// знаменатель счета доступности при этом не уменьшается
	zone := &models.Zone{ID: 1, Name: "Медина"}
	from := time.Date(2026, 8, 18, 0, 0, 0, 0, time.UTC)
	to := from.Add(7 * 24 * time.Hour)
	d1, d2 := 4.0, 6.0
	observations := []*models.Observation{
		{Status: models.ObservationAvailable, DurationHours: &d1},
		{Status: models.ObservationAvailable, DurationHours: &d2},
		{Status: models.ObservationCutOff},
	}

	// Действие
	status := buildZoneStatus(zone, models.ServiceElectricity, from, to, observations, 0.66, 0.33)

	// Проверки
	require.NotNil(t, status.MeanDurationHours)
	assert.InDelta(t, 5.0, *status.MeanDurationHours, 1e-9)
	require.NotNil(t, status.Score)
	assert.InDelta(t, 2.0/3.0, *status.Score, 1e-9)
}

func TestCurrentStatus_FromCache(t *testing.T) {
	// Подготовка
	service, repoMock, zonesMock := newTestStatusService(t)
	ctx := context.Background()
	zone := &models.Zone{ID: 1, Name: "Медина"}
	score := 0.8
	cached := &models.ZoneStatus{
		Zone:    "Медина",
		Service: models.ServiceElectricity,
		Score:   &score,
		Label:   models.StatusGood,
	}

	// Ожидания: попадание в кеш, журнал наблюдений не читаем
	zonesMock.EXPECT().GetByID(ctx, int64(1)).Return(zone, nil).Times(1)
	repoMock.EXPECT().GetStatusFromCache(ctx, "Медина", models.ServiceElectricity).Return(cached, nil).Times(1)
	repoMock.EXPECT().ListObservations(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	status, err := service.CurrentStatus(ctx, 1, models.ServiceElectricity)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(1), status.ZoneID)
	assert.Equal(t, models.StatusGood, status.Label)
}

func TestCurrentStatus_CacheMiss_ComputesAndCaches(t *testing.T) {
	// Подготовка
	service, repoMock, zonesMock := newTestStatusService(t)
	ctx := context.Background()
	zone := &models.Zone{ID: 1, Name: "Медина"}

	// Ожидания
	zonesMock.EXPECT().GetByID(ctx, int64(1)).Return(zone, nil).Times(1)
	repoMock.EXPECT().GetStatusFromCache(ctx, "Медина", models.ServiceElectricity).Return(nil, nil).Times(1)
	repoMock.EXPECT().
		ListObservations(ctx, models.ServiceElectricity, "Медина", gomock.Any(), gomock.Any()).
		Return(observationsWithStatuses(1, 1), nil).
		Times(1)
	repoMock.EXPECT().
		SetStatusCache(ctx, gomock.Any()).
		Do(func(ctx context.Context, status *models.ZoneStatus) {
			assert.Equal(t, models.StatusPartial, status.Label)
		}).Return(nil).Times(1)

	// Действие
	status, err := service.CurrentStatus(ctx, 1, models.ServiceElectricity)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusPartial, status.Label)
	assert.Equal(t, 2, status.SampleCount)
}

func TestCurrentStatus_ZoneNotFound(t *testing.T) {
	// Подготовка
	service, _, zonesMock := newTestStatusService(t)
	ctx := context.Background()
	repoError := fmt.Errorf("не найдено")

	// Ожидания
	zonesMock.EXPECT().GetByID(ctx, int64(42)).Return(nil, repoError).Times(1)

	// Действие
	status, err := service.CurrentStatus(ctx, 42, models.ServiceElectricity)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, status)
	assert.ErrorContains(t, err, "not found")
}

func TestRefreshNeighborhood_UnknownZone_InvalidatesOnly(t *testing.T) {
	// Подготовка
	service, repoMock, zonesMock := newTestStatusService(t)
	ctx := context.Background()
	repoError := fmt.Errorf("не найдено")

	// Ожидания: снимок района ссылается на зону, которой нет в справочнике
	repoMock.EXPECT().InvalidateStatusCache(ctx, "Призрачный", models.ServiceWater).Return(nil).Times(1)
	zonesMock.EXPECT().GetByName(ctx, "Призрачный").Return(nil, repoError).Times(1)
	repoMock.EXPECT().ListObservations(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.RefreshNeighborhood(ctx, "Призрачный", models.ServiceWater)

	// Проверки: это не ошибка, пересчитывать просто нечего
	require.NoError(t, err)
}

func TestRefreshAll_ContinuesOnZoneError(t *testing.T) {
	// Подготовка
	service, repoMock, zonesMock := newTestStatusService(t)
	ctx := context.Background()
	zones := []*models.Zone{
		{ID: 1, Name: "Первый"},
		{ID: 2, Name: "Второй"},
	}

	// Ожидания: оба района обходятся по всем услугам, ошибки отдельных
	// зон не прерывают обход
	zonesMock.EXPECT().ListByKind(ctx, models.ZoneKindNeighborhood).Return(zones, nil).Times(1)
	for _, zone := range zones {
		for range models.KnownServiceKinds {
			repoMock.EXPECT().InvalidateStatusCache(ctx, zone.Name, gomock.Any()).Return(nil).Times(1)
		}
	}
	zonesMock.EXPECT().GetByName(ctx, "Первый").Return(nil, fmt.Errorf("не найдено")).Times(len(models.KnownServiceKinds))
	zonesMock.EXPECT().GetByName(ctx, "Второй").Return(zones[1], nil).Times(len(models.KnownServiceKinds))
	repoMock.EXPECT().
		ListObservations(ctx, gomock.Any(), "Второй", gomock.Any(), gomock.Any()).
		Return(nil, nil).
		Times(len(models.KnownServiceKinds))
	repoMock.EXPECT().SetStatusCache(ctx, gomock.Any()).Return(nil).Times(len(models.KnownServiceKinds))

	// Действие
	err := service.RefreshAll(ctx)

	// Проверки
	require.NoError(t, err)
}
