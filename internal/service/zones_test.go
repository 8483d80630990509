package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/murefu/geo_status_engine/internal/config"
	"github.com/murefu/geo_status_engine/internal/geometry"
	"github.com/murefu/geo_status_engine/internal/models"
	"github.com/murefu/geo_status_engine/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestZoneService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestZoneService(t *testing.T) (*zoneService, *mocks.MockZoneRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockZoneRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		StatusWindowDays: 7,
	}

	service := NewZoneService(repoMock, logger, cfg)
	return service.(*zoneService), repoMock
}

// squareZone — квадрат 10x10 с центром в начале координат
func squareZone(id int64, name string) *models.Zone {
	return &models.Zone{
		ID:   id,
		Name: name,
		Kind: models.ZoneKindNeighborhood,
		Ring: geometry.Ring{{-5, -5}, {5, -5}, {5, 5}, {-5, 5}},
	}
}

func TestResolveZone_PointInsideSquare(t *testing.T) {
	// Подготовка
	service, repoMock := newTestZoneService(t)
	ctx := context.Background()
	zones := []*models.Zone{squareZone(1, "Центральный")}

	// Ожидания
	repoMock.EXPECT().GetZoneListFromCache(ctx, models.ZoneKindNeighborhood).Return(nil, nil).Times(1)
	repoMock.EXPECT().ListByKind(ctx, models.ZoneKindNeighborhood).Return(zones, nil).Times(1)
	repoMock.EXPECT().SetZoneListCache(ctx, models.ZoneKindNeighborhood, zones).Return(nil).Times(1)

	// Действие
	zone, err := service.ResolveZone(ctx, 0, 0, models.ZoneKindNeighborhood)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "Центральный", zone.Name)
}

func TestResolveZone_PointOutsideAllZones(t *testing.T) {
	// Подготовка
	service, repoMock := newTestZoneService(t)
	ctx := context.Background()
	zones := []*models.Zone{squareZone(1, "Центральный")}

	// Ожидания
	repoMock.EXPECT().GetZoneListFromCache(ctx, models.ZoneKindNeighborhood).Return(nil, nil).Times(1)
	repoMock.EXPECT().ListByKind(ctx, models.ZoneKindNeighborhood).Return(zones, nil).Times(1)
	repoMock.EXPECT().SetZoneListCache(ctx, models.ZoneKindNeighborhood, zones).Return(nil).Times(1)

	// Действие
	zone, err := service.ResolveZone(ctx, 100, 50, models.ZoneKindNeighborhood)

	// Проверки
	require.ErrorIs(t, err, ErrZoneNotFound)
	assert.Nil(t, zone)
}

func TestResolveZone_OverlappingZones_LowestIDWins(t *testing.T) {
	// Подготовка
	service, repoMock := newTestZoneService(t)
	ctx := context.Background()
	// Оба квадрата содержат начало координат; репозиторий отдает зоны
	// в порядке возрастания id, побеждает первая подошедшая
	zones := []*models.Zone{
		squareZone(1, "Первая"),
		squareZone(2, "Вторая"),
	}

	// Ожидания
	repoMock.EXPECT().GetZoneListFromCache(ctx, models.ZoneKindNeighborhood).Return(zones, nil).Times(1)

	// Действие
	zone, err := service.ResolveZone(ctx, 0, 0, models.ZoneKindNeighborhood)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(1), zone.ID)
	assert.Equal(t, "Первая", zone.Name)
}

func TestResolveZone_DegenerateZoneSkipped(t *testing.T) {
	// Подготовка
	service, repoMock := newTestZoneService(t)
	ctx := context.Background()
	refLon, refLat := 0.0, 0.0
	// Вырожденная зона без контура идет первой, но не участвует в геофенсинге
	degenerate := &models.Zone{
		ID:           1,
		Name:         "Точечная",
		Kind:         models.ZoneKindNeighborhood,
		RefLongitude: &refLon,
		RefLatitude:  &refLat,
	}
	zones := []*models.Zone{degenerate, squareZone(2, "Настоящая")}

	// Ожидания
	repoMock.EXPECT().GetZoneListFromCache(ctx, models.ZoneKindNeighborhood).Return(zones, nil).Times(1)

	// Действие
	zone, err := service.ResolveZone(ctx, 0, 0, models.ZoneKindNeighborhood)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "Настоящая", zone.Name)
}

func TestResolveZone_CoordinatesOutOfRange(t *testing.T) {
	// Подготовка
	service, _ := newTestZoneService(t)
	ctx := context.Background()

	// Действие
	zone, err := service.ResolveZone(ctx, 181, 0, models.ZoneKindNeighborhood)

	// Проверки
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, zone)
}

func TestResolveZone_FromCache(t *testing.T) {
	// Подготовка
	service, repoMock := newTestZoneService(t)
	ctx := context.Background()
	zones := []*models.Zone{squareZone(1, "Кешированный")}

	// Ожидания: попадание в кеш, бд не трогаем
	repoMock.EXPECT().GetZoneListFromCache(ctx, models.ZoneKindNeighborhood).Return(zones, nil).Times(1)
	repoMock.EXPECT().ListByKind(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	zone, err := service.ResolveZone(ctx, 0, 0, models.ZoneKindNeighborhood)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "Кешированный", zone.Name)
}

func TestCreateZone_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestZoneService(t)
	ctx := context.Background()
	zoneToCreate := squareZone(0, "Новый район")
	zoneToCreate.Kind = ""

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, zone *models.Zone) error {
			// Симулируем, что БД присвоила ID
			zone.ID = 7
			return nil
		}).Times(1)
	repoMock.EXPECT().InvalidateZoneListCache(ctx, models.ZoneKindNeighborhood).Return(nil).Times(1)

	// Действие
	err := service.CreateZone(ctx, zoneToCreate)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(7), zoneToCreate.ID)
	assert.Equal(t, models.ZoneKindNeighborhood, zoneToCreate.Kind)
}

func TestCreateZone_InvalidGeometry(t *testing.T) {
	// Подготовка
	service, _ := newTestZoneService(t)
	ctx := context.Background()
	// Контур из двух вершин не образует полигон
	zoneToCreate := &models.Zone{
		Name: "Сломанный",
		Ring: geometry.Ring{{0, 0}, {1, 1}},
	}

	// Действие
	err := service.CreateZone(ctx, zoneToCreate)

	// Проверки
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateZone_NoRingNoRefPoint(t *testing.T) {
	// Подготовка
	service, _ := newTestZoneService(t)
	ctx := context.Background()
	zoneToCreate := &models.Zone{Name: "Пустой"}

	// Действие
	err := service.CreateZone(ctx, zoneToCreate)

	// Проверки
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateZone_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock := newTestZoneService(t)
	ctx := context.Background()
	zoneToUpdate := squareZone(42, "Обновленный")
	repoError := fmt.Errorf("не найдено")

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, int64(42)).Return(nil, repoError).Times(1)

	// Действие
	err := service.UpdateZone(ctx, zoneToUpdate)

	// Проверки
	require.Error(t, err)
	assert.ErrorContains(t, err, "not found for update")
}

func TestDeleteZone_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestZoneService(t)
	ctx := context.Background()
	existing := squareZone(3, "Удаляемый")

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, int64(3)).Return(existing, nil).Times(1)
	repoMock.EXPECT().Delete(ctx, int64(3)).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateZoneListCache(ctx, models.ZoneKindNeighborhood).Return(nil).Times(1)

	// Действие
	err := service.DeleteZone(ctx, 3)

	// Проверки
	require.NoError(t, err)
}

func TestListZones_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestZoneService(t)
	ctx := context.Background()
	page, pageSize := 1, 10
	expectedZones := []*models.Zone{
		squareZone(1, "Район 1"),
		squareZone(2, "Район 2"),
	}

	// Ожидания
	repoMock.EXPECT().ListZones(ctx, page, pageSize).Return(expectedZones, nil).Times(1)

	// Действие
	zones, err := service.ListZones(ctx, page, pageSize)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedZones, zones)
}
