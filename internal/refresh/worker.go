package refresh

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/murefu/geo_status_engine/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// retryDelay - пауза перед повторной попыткой чтения очереди после ошибки
const retryDelay = 5 * time.Second

// StatusRefresher - потребитель событий пересчета. Реализуется сервисом
// статусов; интерфейс объявлен здесь, чтобы пакет не зависел от сервиса.
type StatusRefresher interface {
	RefreshNeighborhood(ctx context.Context, zoneName string, service models.ServiceKind) error
	RefreshAll(ctx context.Context) error
}

// RefreshWorker - фоновый обработчик пересчета статусов зон: разбирает
// очередь событий от журнала наблюдений и по расписанию гоняет полный обход
type RefreshWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	refresher   StatusRefresher
	cronSpec    string
	cron        *cron.Cron
}

// NewRefreshWorker создает новый RefreshWorker
func NewRefreshWorker(redisClient *redis.Client, logger *logrus.Logger, refresher StatusRefresher, cronSpec string) *RefreshWorker {
	return &RefreshWorker{
		redisClient: redisClient,
		logger:      logger,
		refresher:   refresher,
		cronSpec:    cronSpec,
	}
}

// Start запускает горутину для обработки очереди событий пересчета
func (w *RefreshWorker) Start(ctx context.Context) {
	w.logger.Info("Starting status refresh worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping status refresh worker.")
				return
			default:
				// BRPop - блокирующее извлечение из правой части списка
				// (очереди), 0 означает бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, refreshQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue // Контекст отменен, но не ошибка Redis
					}
					w.logger.WithError(err).Error("Failed to pop refresh event from Redis")
					time.Sleep(retryDelay)
					continue
				}

				// result[0] - ключ, result[1] - значение
				var event RefreshEvent
				if err := json.Unmarshal([]byte(result[1]), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal refresh event from Redis")
					continue
				}

				w.processRefreshEvent(ctx, event)
			}
		}
	}()
}

func (w *RefreshWorker) processRefreshEvent(ctx context.Context, event RefreshEvent) {
	log := w.logger.WithField("event_id", event.EventID).WithField("event_zone", event.Zone).WithField("event_service", event.Service)
	log.Debug("Processing refresh event...")

	if err := w.refresher.RefreshNeighborhood(ctx, event.Zone, event.Service); err != nil {
		log.WithError(err).Error("Failed to refresh zone status for event")
		return
	}
	log.Debug("Zone status refreshed for event.")
}

// StartCron запускает полный пересчет статусов по расписанию
func (w *RefreshWorker) StartCron(ctx context.Context) error {
	c := cron.New()
	_, err := c.AddFunc(w.cronSpec, func() {
		if err := w.refresher.RefreshAll(ctx); err != nil {
			w.logger.WithError(err).Error("Scheduled full status refresh failed")
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	w.cron = c
	w.logger.WithField("spec", w.cronSpec).Info("Scheduled full status refresh started")

	go func() {
		<-ctx.Done()
		w.logger.Info("Stopping scheduled status refresh.")
		w.cron.Stop()
	}()
	return nil
}
