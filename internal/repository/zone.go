package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/murefu/geo_status_engine/internal/geometry"
	"github.com/murefu/geo_status_engine/internal/models"
	"github.com/murefu/geo_status_engine/internal/service"
	"github.com/redis/go-redis/v9"
)

type ZoneRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewZoneRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.ZoneRepository {
	return &ZoneRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// ringToJSON сериализует контур для колонки jsonb; nil для вырожденной зоны
func ringToJSON(ring geometry.Ring) ([]byte, error) {
	if len(ring) == 0 {
		return nil, nil
	}
	return json.Marshal(ring)
}

// scanZoneRow читает одну строку зоны, разворачивая jsonb-контур
func scanZoneRow(row pgx.Row, zone *models.Zone) error {
	var ringJSON []byte
	if err := row.Scan(
		&zone.ID,
		&zone.Name,
		&zone.Kind,
		&ringJSON,
		&zone.RefLongitude,
		&zone.RefLatitude,
		&zone.CreatedAt,
		&zone.UpdatedAt,
	); err != nil {
		return err
	}
	if len(ringJSON) > 0 {
		if err := json.Unmarshal(ringJSON, &zone.Ring); err != nil {
			return fmt.Errorf("failed to unmarshal zone ring: %w", err)
		}
	}
	return nil
}

const zoneColumns = `id, name, kind, ring, ref_lon, ref_lat, created_at, updated_at`

// Create создает новую зону в бд
func (r *ZoneRepository) Create(ctx context.Context, zone *models.Zone) error {
	ringJSON, err := ringToJSON(zone.Ring)
	if err != nil {
		return fmt.Errorf("failed to marshal zone ring: %w", err)
	}

	query := `
		INSERT INTO zones (name, kind, ring, ref_lon, ref_lat)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at;
	`
	err = r.db.QueryRow(ctx, query,
		zone.Name,
		zone.Kind,
		ringJSON,
		zone.RefLongitude,
		zone.RefLatitude,
	).Scan(&zone.ID, &zone.CreatedAt, &zone.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create zone: %w", err)
	}
	return nil
}

// GetByID возвращает зону по ее ID
func (r *ZoneRepository) GetByID(ctx context.Context, id int64) (*models.Zone, error) {
	zone := &models.Zone{}
	query := `SELECT ` + zoneColumns + ` FROM zones WHERE id = $1;`

	err := scanZoneRow(r.db.QueryRow(ctx, query, id), zone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("zone with id %d: %w", id, service.ErrZoneNotFound)
		}
		return nil, fmt.Errorf("failed to get zone by id: %w", err)
	}
	return zone, nil
}

// GetByName возвращает зону по имени
func (r *ZoneRepository) GetByName(ctx context.Context, name string) (*models.Zone, error) {
	zone := &models.Zone{}
	query := `SELECT ` + zoneColumns + ` FROM zones WHERE name = $1 ORDER BY id LIMIT 1;`

	err := scanZoneRow(r.db.QueryRow(ctx, query, name), zone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("zone with name %q: %w", name, service.ErrZoneNotFound)
		}
		return nil, fmt.Errorf("failed to get zone by name: %w", err)
	}
	return zone, nil
}

// Update обновляет зону
func (r *ZoneRepository) Update(ctx context.Context, zone *models.Zone) error {
	ringJSON, err := ringToJSON(zone.Ring)
	if err != nil {
		return fmt.Errorf("failed to marshal zone ring: %w", err)
	}

	query := `
		UPDATE zones SET
			name = $1,
			kind = $2,
			ring = $3,
			ref_lon = $4,
			ref_lat = $5,
			updated_at = NOW()
		WHERE id = $6;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		zone.Name,
		zone.Kind,
		ringJSON,
		zone.RefLongitude,
		zone.RefLatitude,
		zone.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update zone: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("zone with id %d not found for update: %w", zone.ID, service.ErrZoneNotFound)
	}
	return nil
}

// Delete удаляет зону
func (r *ZoneRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM zones WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete zone: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("zone with id %d not found for delete: %w", id, service.ErrZoneNotFound)
	}
	return nil
}

// ListZones возвращает список зон с пагинацией
func (r *ZoneRepository) ListZones(ctx context.Context, page, pageSize int) ([]*models.Zone, error) {
	offset := (page - 1) * pageSize

	query := `SELECT ` + zoneColumns + ` FROM zones ORDER BY id LIMIT $1 OFFSET $2;`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}
	defer rows.Close()

	return collectZones(rows)
}

// ListByKind возвращает зоны указанного вида в порядке возрастания id.
// Порядок важен: он определяет детерминированный выбор при пересечении зон.
func (r *ZoneRepository) ListByKind(ctx context.Context, kind models.ZoneKind) ([]*models.Zone, error) {
	query := `SELECT ` + zoneColumns + ` FROM zones WHERE kind = $1 ORDER BY id ASC;`
	rows, err := r.db.Query(ctx, query, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list zones by kind: %w", err)
	}
	defer rows.Close()

	return collectZones(rows)
}

func collectZones(rows pgx.Rows) ([]*models.Zone, error) {
	zones := make([]*models.Zone, 0)
	for rows.Next() {
		zone := &models.Zone{}
		if err := scanZoneRow(rows, zone); err != nil {
			return nil, fmt.Errorf("failed to scan zone row: %w", err)
		}
		zones = append(zones, zone)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error zones iteration: %w", err)
	}
	return zones, nil
}

func zoneListCacheKey(kind models.ZoneKind) string {
	return fmt.Sprintf("zones:kind:%s", kind)
}

// GetZoneListFromCache пытается получить список зон вида из Redis
func (r *ZoneRepository) GetZoneListFromCache(ctx context.Context, kind models.ZoneKind) ([]*models.Zone, error) {
	val, err := r.redisClient.Get(ctx, zoneListCacheKey(kind)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get zone list from cache: %w", err)
	}

	zones := make([]*models.Zone, 0)
	if err := json.Unmarshal(val, &zones); err != nil {
		return nil, fmt.Errorf("failed to unmarshal zone list from cache: %w", err)
	}
	return zones, nil
}

// SetZoneListCache сохраняет список зон вида в Redis
func (r *ZoneRepository) SetZoneListCache(ctx context.Context, kind models.ZoneKind, zones []*models.Zone) error {
	val, err := json.Marshal(zones)
	if err != nil {
		return fmt.Errorf("failed to marshal zone list for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, zoneListCacheKey(kind), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set zone list in cache: %w", err)
	}
	return nil
}

// InvalidateZoneListCache удаляет список зон вида из Redis кэша
func (r *ZoneRepository) InvalidateZoneListCache(ctx context.Context, kind models.ZoneKind) error {
	if err := r.redisClient.Del(ctx, zoneListCacheKey(kind)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate zone list cache: %w", err)
	}
	return nil
}
