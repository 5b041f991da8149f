package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/MoodinAhmed1/classicet/internal/database"
	"github.com/MoodinAhmed1/classicet/internal/model"
)

// AnalyticsRepositoryInterface определяет методы репозитория событий переходов.
type AnalyticsRepositoryInterface interface {
	SaveEvent(ctx context.Context, event *model.AnalyticsEvent) error
	TotalClicks(ctx context.Context, linkID int64, since time.Time) (int64, error)
	ClicksByDate(ctx context.Context, linkID int64, since time.Time) ([]model.BucketCount, error)
	ClicksByColumn(ctx context.Context, linkID int64, column string, since time.Time) ([]model.BucketCount, error)
	CountEvents(ctx context.Context) (int64, error)
}

// AnalyticsRepository реализует AnalyticsRepositoryInterface с использованием PostgreSQL.
type AnalyticsRepository struct {
	DB database.DBInterface
}

// NewAnalyticsRepository создаёт новый экземпляр AnalyticsRepository.
func NewAnalyticsRepository(db database.DBInterface) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db}
}

// SaveEvent добавляет одно событие перехода. Таблица append-only.
func (r *AnalyticsRepository) SaveEvent(ctx context.Context, event *model.AnalyticsEvent) error {
	query := `INSERT INTO analytics_events (link_id, ip_address, user_agent, referer, country, city, device_type, browser, os, created)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
              RETURNING id`
	err := r.DB.(*database.DB).Pool.QueryRow(ctx, query,
		event.LinkID, event.IPAddress, event.UserAgent, event.Referer,
		event.Country, event.City, event.DeviceType, event.Browser, event.OS,
		event.Created,
	).Scan(&event.ID)
	if err != nil {
		return fmt.Errorf("database insert error: %w", err)
	}
	return nil
}

// TotalClicks возвращает число событий ссылки начиная с since.
func (r *AnalyticsRepository) TotalClicks(ctx context.Context, linkID int64, since time.Time) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM analytics_events WHERE link_id = $1 AND created >= $2`
	err := r.DB.(*database.DB).Pool.QueryRow(ctx, query, linkID, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("database query error: %w", err)
	}
	return count, nil
}

// ClicksByDate возвращает разбивку переходов по датам (YYYY-MM-DD).
func (r *AnalyticsRepository) ClicksByDate(ctx context.Context, linkID int64, since time.Time) ([]model.BucketCount, error) {
	query := `SELECT to_char(created, 'YYYY-MM-DD') AS day, COUNT(*)
              FROM analytics_events
              WHERE link_id = $1 AND created >= $2
              GROUP BY day ORDER BY day`
	return r.queryBuckets(ctx, query, linkID, since)
}

// Допустимые колонки разбивок. Имя колонки попадает в SQL,
// поэтому белый список обязателен.
var bucketColumns = map[string]bool{
	"country":     true,
	"device_type": true,
	"browser":     true,
	"referer":     true,
}

// ClicksByColumn возвращает разбивку переходов по одной из колонок
// country/device_type/browser/referer, по убыванию счётчика.
func (r *AnalyticsRepository) ClicksByColumn(ctx context.Context, linkID int64, column string, since time.Time) ([]model.BucketCount, error) {
	if !bucketColumns[column] {
		return nil, fmt.Errorf("unsupported bucket column: %s", column)
	}
	query := fmt.Sprintf(`SELECT COALESCE(NULLIF(%s, ''), 'unknown'), COUNT(*)
              FROM analytics_events
              WHERE link_id = $1 AND created >= $2
              GROUP BY 1 ORDER BY 2 DESC LIMIT 50`, column)
	return r.queryBuckets(ctx, query, linkID, since)
}

func (r *AnalyticsRepository) queryBuckets(ctx context.Context, query string, linkID int64, since time.Time) ([]model.BucketCount, error) {
	rows, err := r.DB.(*database.DB).Pool.Query(ctx, query, linkID, since)
	if err != nil {
		return nil, fmt.Errorf("database query error: %w", err)
	}
	defer rows.Close()

	var results []model.BucketCount
	for rows.Next() {
		var b model.BucketCount
		if err := rows.Scan(&b.Key, &b.Count); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		results = append(results, b)
	}
	return results, rows.Err()
}

// CountEvents общее число событий переходов
func (r *AnalyticsRepository) CountEvents(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.(*database.DB).Pool.QueryRow(ctx, "SELECT COUNT(*) FROM analytics_events").Scan(&count)
	return count, err
}
