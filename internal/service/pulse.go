package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/murefu/geo_status_engine/internal/config"
	"github.com/murefu/geo_status_engine/internal/models"
	"github.com/sirupsen/logrus"
)

// PulseRepository определяет контракт живого пульса: короткая выборка
// по времени записи наблюдения, не по его календарной дате
type PulseRepository interface {
	// ActiveNeighborhoods возвращает различные снимки районов наблюдений
	// со статусом available, записанных не раньше since
	ActiveNeighborhoods(ctx context.Context, service models.ServiceKind, since time.Time) ([]string, error)
}

// PulseService отвечает на вопрос "в каких районах услуга есть прямо
// сейчас". Это намеренно отдельный дешевый запрос с коротким окном, а не
// переиспользование оконной логики агрегатора: у них разная терпимость к
// устареванию данных.
type PulseService interface {
	ActiveZones(ctx context.Context, service models.ServiceKind) ([]string, error)
}

type pulseService struct {
	repo   PulseRepository
	logger *logrus.Logger
	cfg    *config.Config
}

func NewPulseService(repo PulseRepository, logger *logrus.Logger, cfg *config.Config) PulseService {
	return &pulseService{
		repo:   repo,
		logger: logger,
		cfg:    cfg,
	}
}

// ActiveZones возвращает отсортированный список районов, где услуга
// доступна по наблюдениям последних PulseWindowMinutes минут. Пустой
// список - нормальное состояние "нет данных", не ошибка.
func (s *pulseService) ActiveZones(ctx context.Context, service models.ServiceKind) ([]string, error) {
	if !service.Valid() {
		return nil, fmt.Errorf("%w: unknown service kind %q", ErrInvalidInput, service)
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "pulse",
		"method":  "ActiveZones",
		"kind":    service,
	})

	since := time.Now().UTC().Add(-time.Duration(s.cfg.PulseWindowMinutes) * time.Minute)

	names, err := s.repo.ActiveNeighborhoods(ctx, service, since)
	if err != nil {
		log.WithError(err).Error("Failed to query active neighborhoods")
		return nil, fmt.Errorf("service: could not query active neighborhoods: %w", err)
	}

	sort.Strings(names)
	log.WithField("count", len(names)).Debug("Pulse computed")
	return names, nil
}
