package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MoodinAhmed1/classicet/internal/database"
	"github.com/MoodinAhmed1/classicet/internal/model"
)

// ErrNotFound возвращается, когда запись отсутствует в хранилище.
var ErrNotFound = errors.New("record not found")

// ErrUniqueViolation возвращается при нарушении уникального ограничения
// (SQLSTATE 23505). Реальная гарантия уникальности short_code — именно
// ограничение в БД, а не проверка перед вставкой.
var ErrUniqueViolation = errors.New("unique constraint violation")

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// LinkRepositoryInterface определяет методы репозитория ссылок.
type LinkRepositoryInterface interface {
	SaveLink(ctx context.Context, link *model.Link) error
	GetActiveByShortCode(ctx context.Context, shortCode string) (*model.Link, error)
	GetByID(ctx context.Context, id int64) (*model.Link, error)
	GetByUserID(ctx context.Context, userID int64) ([]*model.Link, error)
	ShortCodeExists(ctx context.Context, shortCode string) (bool, error)
	UpdateLink(ctx context.Context, link *model.Link) error
	Deactivate(ctx context.Context, id int64) error
	IncrementClicks(ctx context.Context, id int64) error
	CountLinks(ctx context.Context) (int, error)
	Ping(ctx context.Context) error
}

// LinkRepository реализует LinkRepositoryInterface с использованием PostgreSQL.
type LinkRepository struct {
	DB database.DBInterface
}

// NewLinkRepository создаёт новый экземпляр LinkRepository.
func NewLinkRepository(db database.DBInterface) *LinkRepository {
	return &LinkRepository{DB: db}
}

// SaveLink сохраняет ссылку в базу данных.
// Нарушение уникальности short_code возвращается как ErrUniqueViolation.
func (r *LinkRepository) SaveLink(ctx context.Context, link *model.Link) error {
	query := `INSERT INTO links (user_id, original_url, short_code, custom_domain, title, description, is_active, expires_at, created, updated)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
              RETURNING id`

	now := time.Now()
	err := r.DB.(*database.DB).Pool.QueryRow(ctx, query,
		link.UserID, link.OriginalURL, link.ShortCode, link.CustomDomain,
		link.Title, link.Description, link.IsActive, link.ExpiresAt, now,
	).Scan(&link.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrUniqueViolation
		}
		return fmt.Errorf("database insert error: %w", err)
	}
	link.Created = now
	link.Updated = now
	return nil
}

// GetActiveByShortCode извлекает активную ссылку по короткому коду.
// Деактивированные ссылки здесь неотличимы от несуществующих.
func (r *LinkRepository) GetActiveByShortCode(ctx context.Context, shortCode string) (*model.Link, error) {
	query := `SELECT id, user_id, original_url, short_code, custom_domain, title, description, is_active, expires_at, click_count, created, updated
              FROM links WHERE short_code = $1 AND is_active = true`
	return r.scanLink(r.DB.(*database.DB).Pool.QueryRow(ctx, query, shortCode))
}

// GetByID извлекает ссылку по идентификатору независимо от is_active.
func (r *LinkRepository) GetByID(ctx context.Context, id int64) (*model.Link, error) {
	query := `SELECT id, user_id, original_url, short_code, custom_domain, title, description, is_active, expires_at, click_count, created, updated
              FROM links WHERE id = $1`
	return r.scanLink(r.DB.(*database.DB).Pool.QueryRow(ctx, query, id))
}

func (r *LinkRepository) scanLink(row pgx.Row) (*model.Link, error) {
	link := &model.Link{}
	err := row.Scan(
		&link.ID, &link.UserID, &link.OriginalURL, &link.ShortCode,
		&link.CustomDomain, &link.Title, &link.Description, &link.IsActive,
		&link.ExpiresAt, &link.ClickCount, &link.Created, &link.Updated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return link, nil
}

// GetByUserID возвращает все ссылки пользователя, новые первыми.
func (r *LinkRepository) GetByUserID(ctx context.Context, userID int64) ([]*model.Link, error) {
	query := `SELECT id, user_id, original_url, short_code, custom_domain, title, description, is_active, expires_at, click_count, created, updated
              FROM links WHERE user_id = $1 ORDER BY created DESC`
	rows, err := r.DB.(*database.DB).Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query links by user: %w", err)
	}
	defer rows.Close()

	var results []*model.Link
	for rows.Next() {
		link := &model.Link{}
		err := rows.Scan(
			&link.ID, &link.UserID, &link.OriginalURL, &link.ShortCode,
			&link.CustomDomain, &link.Title, &link.Description, &link.IsActive,
			&link.ExpiresAt, &link.ClickCount, &link.Created, &link.Updated,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		results = append(results, link)
	}
	return results, rows.Err()
}

// ShortCodeExists проверяет занятость короткого кода среди всех ссылок,
// включая деактивированные: пространство кодов общее.
func (r *LinkRepository) ShortCodeExists(ctx context.Context, shortCode string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM links WHERE short_code = $1)`
	err := r.DB.(*database.DB).Pool.QueryRow(ctx, query, shortCode).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("database query error: %w", err)
	}
	return exists, nil
}

// UpdateLink сохраняет изменяемые владельцем поля ссылки.
func (r *LinkRepository) UpdateLink(ctx context.Context, link *model.Link) error {
	query := `UPDATE links
              SET title = $1, description = $2, is_active = $3, expires_at = $4, updated = $5
              WHERE id = $6`
	_, err := r.DB.(*database.DB).Pool.Exec(ctx, query,
		link.Title, link.Description, link.IsActive, link.ExpiresAt, time.Now(), link.ID)
	if err != nil {
		return fmt.Errorf("failed to update link: %w", err)
	}
	return nil
}

// Deactivate выключает ссылку (мягкое удаление).
func (r *LinkRepository) Deactivate(ctx context.Context, id int64) error {
	query := `UPDATE links SET is_active = false, updated = $1 WHERE id = $2`
	_, err := r.DB.(*database.DB).Pool.Exec(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to deactivate link: %w", err)
	}
	return nil
}

// IncrementClicks атомарно увеличивает счётчик переходов.
// Именно выражение click_count + 1, а не чтение-изменение-запись:
// конкурирующие редиректы одной ссылки не теряют обновления.
func (r *LinkRepository) IncrementClicks(ctx context.Context, id int64) error {
	query := `UPDATE links SET click_count = click_count + 1 WHERE id = $1`
	_, err := r.DB.(*database.DB).Pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to increment clicks: %w", err)
	}
	return nil
}

// CountLinks количество активных ссылок
func (r *LinkRepository) CountLinks(ctx context.Context) (int, error) {
	var count int
	err := r.DB.(*database.DB).Pool.QueryRow(ctx, "SELECT COUNT(*) FROM links WHERE is_active = true").Scan(&count)
	return count, err
}

// Ping проверяет доступность базы данных.
func (r *LinkRepository) Ping(ctx context.Context) error {
	_, err := r.DB.(*database.DB).Pool.Exec(ctx, "SELECT 1")
	return err
}
