package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/murefu/geo_status_engine/internal/models"
	"github.com/murefu/geo_status_engine/internal/service"
)

// CivicRepository читает сырые данные портала (жалобы, инфраструктуру,
// пользователей) для теплокарты. Только чтение.
type CivicRepository struct {
	db *pgxpool.Pool
}

func NewCivicRepository(db *pgxpool.Pool) service.CivicRepository {
	return &CivicRepository{db: db}
}

// OpenReports возвращает незакрытые жалобы с координатами;
// since == nil означает полную историю в пределах limit
func (r *CivicRepository) OpenReports(ctx context.Context, since *time.Time, limit int) ([]*models.Report, error) {
	query := `
		SELECT id, category, status, longitude, latitude, created_at
		FROM reports
		WHERE status IN ('pending', 'verified', 'in_progress')
			AND ($1::timestamptz IS NULL OR created_at >= $1)
		ORDER BY created_at DESC
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list open reports: %w", err)
	}
	defer rows.Close()

	reports := make([]*models.Report, 0)
	for rows.Next() {
		report := &models.Report{}
		err := rows.Scan(
			&report.ID,
			&report.Category,
			&report.Status,
			&report.Longitude,
			&report.Latitude,
			&report.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reports iteration: %w", err)
	}
	return reports, nil
}

// ActiveAssets возвращает активные объекты инфраструктуры с координатами
func (r *CivicRepository) ActiveAssets(ctx context.Context, limit int) ([]*models.Asset, error) {
	query := `
		SELECT id, type, status, longitude, latitude, active
		FROM assets
		WHERE active = TRUE
		ORDER BY id
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list active assets: %w", err)
	}
	defer rows.Close()

	assets := make([]*models.Asset, 0)
	for rows.Next() {
		asset := &models.Asset{}
		err := rows.Scan(
			&asset.ID,
			&asset.Type,
			&asset.Status,
			&asset.Longitude,
			&asset.Latitude,
			&asset.Active,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset row: %w", err)
		}
		assets = append(assets, asset)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error assets iteration: %w", err)
	}
	return assets, nil
}

// LocatedUsers возвращает пользователей с известными координатами
func (r *CivicRepository) LocatedUsers(ctx context.Context, limit int) ([]*models.UserPoint, error) {
	query := `
		SELECT id, longitude, latitude
		FROM users
		WHERE longitude IS NOT NULL AND latitude IS NOT NULL
		ORDER BY id
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list located users: %w", err)
	}
	defer rows.Close()

	users := make([]*models.UserPoint, 0)
	for rows.Next() {
		user := &models.UserPoint{}
		if err := rows.Scan(&user.UserID, &user.Longitude, &user.Latitude); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error users iteration: %w", err)
	}
	return users, nil
}
