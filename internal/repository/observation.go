package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/murefu/geo_status_engine/internal/models"
	"github.com/murefu/geo_status_engine/internal/service"
	"github.com/redis/go-redis/v9"
)

// maxWindowRows - защитный потолок выборки окна агрегатора
const maxWindowRows = 10000

// ObservationRepository реализует сразу три читательских контракта движка
// над журналом наблюдений: запись журнала, оконную выборку агрегатора и
// короткую выборку пульса, плюс Redis-кеш производных статусов.
type ObservationRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewObservationRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) *ObservationRepository {
	return &ObservationRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// Insert вставляет наблюдение. Ограничение уникальности
// (user_id, service, observed_on) в бд - единственный механизм
// сериализации: из двух одновременных отправок одна получает строку,
// вторая - ErrDuplicateObservation без какой-либо записи.
func (r *ObservationRepository) Insert(ctx context.Context, observation *models.Observation) error {
	query := `
		INSERT INTO observations (user_id, service, observed_on, status, arrival, departure, duration_hours, neighborhood, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		observation.UserID,
		observation.Service,
		observation.ObservedOn,
		observation.Status,
		observation.Arrival,
		observation.Departure,
		observation.DurationHours,
		observation.Neighborhood,
		observation.Notes,
	).Scan(&observation.ID, &observation.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("observation for (%s, %s, %s): %w",
				observation.UserID, observation.Service,
				observation.ObservedOn.Format("2006-01-02"),
				service.ErrDuplicateObservation)
		}
		return fmt.Errorf("failed to insert observation: %w", err)
	}
	return nil
}

// UserNeighborhood возвращает текущий район пользователя из профиля;
// пустая строка - район неизвестен
func (r *ObservationRepository) UserNeighborhood(ctx context.Context, userID string) (string, error) {
	var neighborhood *string
	query := `SELECT neighborhood FROM users WHERE id = $1;`

	err := r.db.QueryRow(ctx, query, userID).Scan(&neighborhood)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get user neighborhood: %w", err)
	}
	if neighborhood == nil {
		return "", nil
	}
	return *neighborhood, nil
}

// ListObservations возвращает наблюдения услуги со снимком района
// neighborhood и датой в [from, to]
func (r *ObservationRepository) ListObservations(ctx context.Context, kind models.ServiceKind, neighborhood string, from, to time.Time) ([]*models.Observation, error) {
	query := `
		SELECT id, user_id, service, observed_on, status, arrival, departure, duration_hours, neighborhood, notes, created_at
		FROM observations
		WHERE service = $1
			AND neighborhood = $2
			AND observed_on >= $3::date
			AND observed_on <= $4::date
		ORDER BY observed_on
		LIMIT $5;
	`
	rows, err := r.db.Query(ctx, query, kind, neighborhood, from, to, maxWindowRows)
	if err != nil {
		return nil, fmt.Errorf("failed to list observations: %w", err)
	}
	defer rows.Close()

	observations := make([]*models.Observation, 0)
	for rows.Next() {
		obs := &models.Observation{}
		err := rows.Scan(
			&obs.ID,
			&obs.UserID,
			&obs.Service,
			&obs.ObservedOn,
			&obs.Status,
			&obs.Arrival,
			&obs.Departure,
			&obs.DurationHours,
			&obs.Neighborhood,
			&obs.Notes,
			&obs.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan observation row: %w", err)
		}
		observations = append(observations, obs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error observations iteration: %w", err)
	}
	return observations, nil
}

// ActiveNeighborhoods возвращает различные снимки районов наблюдений со
// статусом available, записанных (created_at, не observed_on!) не раньше since
func (r *ObservationRepository) ActiveNeighborhoods(ctx context.Context, kind models.ServiceKind, since time.Time) ([]string, error) {
	query := `
		SELECT DISTINCT neighborhood
		FROM observations
		WHERE service = $1
			AND status = 'available'
			AND created_at >= $2
			AND neighborhood <> ''
		ORDER BY neighborhood;
	`
	rows, err := r.db.Query(ctx, query, kind, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query active neighborhoods: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan neighborhood row: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error neighborhoods iteration: %w", err)
	}
	return names, nil
}

func statusCacheKey(zone string, kind models.ServiceKind) string {
	return fmt.Sprintf("zonestatus:%s:%s", zone, kind)
}

// GetStatusFromCache пытается получить производный статус зоны из Redis
func (r *ObservationRepository) GetStatusFromCache(ctx context.Context, zone string, kind models.ServiceKind) (*models.ZoneStatus, error) {
	val, err := r.redisClient.Get(ctx, statusCacheKey(zone, kind)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get zone status from cache: %w", err)
	}

	status := &models.ZoneStatus{}
	if err := json.Unmarshal(val, status); err != nil {
		return nil, fmt.Errorf("failed to unmarshal zone status from cache: %w", err)
	}
	return status, nil
}

// SetStatusCache сохраняет производный статус зоны в Redis
func (r *ObservationRepository) SetStatusCache(ctx context.Context, status *models.ZoneStatus) error {
	val, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("failed to marshal zone status for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, statusCacheKey(status.Zone, status.Service), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set zone status in cache: %w", err)
	}
	return nil
}

// InvalidateStatusCache удаляет производный статус зоны из Redis кэша
func (r *ObservationRepository) InvalidateStatusCache(ctx context.Context, zone string, kind models.ServiceKind) error {
	if err := r.redisClient.Del(ctx, statusCacheKey(zone, kind)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate zone status cache: %w", err)
	}
	return nil
}
