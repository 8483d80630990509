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

// newTestPulseService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestPulseService(t *testing.T) (*pulseService, *mocks.MockPulseRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockPulseRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		PulseWindowMinutes: 60,
	}

	service := NewPulseService(repoMock, logger, cfg)
	return service.(*pulseService), repoMock
}

func TestActiveZones_WindowIsSixtyMinutes(t *testing.T) {
	// Подготовка
	service, repoMock := newTestPulseService(t)
	ctx := context.Background()

	// Ожидания: окно отсчитывается от текущего момента назад на час
	repoMock.EXPECT().
		ActiveNeighborhoods(ctx, models.ServiceElectricity, gomock.Any()).
		DoAndReturn(func(ctx context.Context, service models.ServiceKind, since time.Time) ([]string, error) {
			assert.WithinDuration(t, time.Now().UTC().Add(-60*time.Minute), since, 5*time.Second)
			return []string{"Медина"}, nil
		}).Times(1)

	// Действие
	zones, err := service.ActiveZones(ctx, models.ServiceElectricity)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, []string{"Медина"}, zones)
}

func TestActiveZones_SortedOutput(t *testing.T) {
	// Подготовка
	service, repoMock := newTestPulseService(t)
	ctx := context.Background()

	// Ожидания: репозиторий отдает районы в произвольном порядке
	repoMock.EXPECT().
		ActiveNeighborhoods(ctx, models.ServiceWater, gomock.Any()).
		Return([]string{"Яррида", "Амдалай", "Медина"}, nil).
		Times(1)

	// Действие
	zones, err := service.ActiveZones(ctx, models.ServiceWater)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, []string{"Амдалай", "Медина", "Яррида"}, zones)
}

func TestActiveZones_EmptyIsNotAnError(t *testing.T) {
	// Подготовка
	service, repoMock := newTestPulseService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		ActiveNeighborhoods(ctx, models.ServiceElectricity, gomock.Any()).
		Return(nil, nil).
		Times(1)

	// Действие
	zones, err := service.ActiveZones(ctx, models.ServiceElectricity)

	// Проверки: "нет данных" - нормальное состояние
	require.NoError(t, err)
	assert.Empty(t, zones)
}

func TestActiveZones_InvalidService(t *testing.T) {
	// Подготовка
	service, _ := newTestPulseService(t)
	ctx := context.Background()

	// Действие
	zones, err := service.ActiveZones(ctx, "gas")

	// Проверки
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, zones)
}

func TestActiveZones_RepositoryError(t *testing.T) {
	// Подготовка
	service, repoMock := newTestPulseService(t)
	ctx := context.Background()
	repoError := fmt.Errorf("соединение потеряно")

	// Ожидания
	repoMock.EXPECT().
		ActiveNeighborhoods(ctx, models.ServiceElectricity, gomock.Any()).
		Return(nil, repoError).
		Times(1)

	// Действие
	zones, err := service.ActiveZones(ctx, models.ServiceElectricity)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, zones)
	assert.ErrorContains(t, err, "could not query active neighborhoods")
}
