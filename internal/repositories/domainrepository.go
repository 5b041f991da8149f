package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/MoodinAhmed1/classicet/internal/database"
	"github.com/MoodinAhmed1/classicet/internal/model"
)

// DomainRepositoryInterface определяет методы репозитория собственных доменов.
type DomainRepositoryInterface interface {
	SaveDomain(ctx context.Context, domain *model.CustomDomain) error
	GetByID(ctx context.Context, id int64) (*model.CustomDomain, error)
	GetByUserID(ctx context.Context, userID int64) ([]*model.CustomDomain, error)
	MarkVerified(ctx context.Context, id int64) error
	DeleteDomain(ctx context.Context, id int64) error
}

// DomainRepository реализует DomainRepositoryInterface с использованием PostgreSQL.
type DomainRepository struct {
	DB database.DBInterface
}

// NewDomainRepository создаёт новый экземпляр DomainRepository.
func NewDomainRepository(db database.DBInterface) *DomainRepository {
	return &DomainRepository{DB: db}
}

// SaveDomain сохраняет домен. Занятый домен — ErrUniqueViolation.
func (r *DomainRepository) SaveDomain(ctx context.Context, domain *model.CustomDomain) error {
	query := `INSERT INTO custom_domains (user_id, domain, verification_token, is_verified, created)
              VALUES ($1, $2, $3, $4, $5)
              RETURNING id`
	now := time.Now()
	err := r.DB.(*database.DB).Pool.QueryRow(ctx, query,
		domain.UserID, domain.Domain, domain.VerificationToken, domain.IsVerified, now,
	).Scan(&domain.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrUniqueViolation
		}
		return fmt.Errorf("database insert error: %w", err)
	}
	domain.Created = now
	return nil
}

// GetByID извлекает домен по идентификатору.
func (r *DomainRepository) GetByID(ctx context.Context, id int64) (*model.CustomDomain, error) {
	query := `SELECT id, user_id, domain, verification_token, is_verified, created FROM custom_domains WHERE id = $1`
	d := &model.CustomDomain{}
	err := r.DB.(*database.DB).Pool.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.UserID, &d.Domain, &d.VerificationToken, &d.IsVerified, &d.Created,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return d, nil
}

// GetByUserID возвращает все домены пользователя.
func (r *DomainRepository) GetByUserID(ctx context.Context, userID int64) ([]*model.CustomDomain, error) {
	query := `SELECT id, user_id, domain, verification_token, is_verified, created
              FROM custom_domains WHERE user_id = $1 ORDER BY created`
	rows, err := r.DB.(*database.DB).Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query domains by user: %w", err)
	}
	defer rows.Close()

	var results []*model.CustomDomain
	for rows.Next() {
		d := &model.CustomDomain{}
		if err := rows.Scan(&d.ID, &d.UserID, &d.Domain, &d.VerificationToken, &d.IsVerified, &d.Created); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		results = append(results, d)
	}
	return results, rows.Err()
}

// MarkVerified помечает домен подтверждённым.
func (r *DomainRepository) MarkVerified(ctx context.Context, id int64) error {
	query := `UPDATE custom_domains SET is_verified = true WHERE id = $1`
	tag, err := r.DB.(*database.DB).Pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to mark domain verified: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteDomain удаляет домен.
func (r *DomainRepository) DeleteDomain(ctx context.Context, id int64) error {
	query := `DELETE FROM custom_domains WHERE id = $1`
	_, err := r.DB.(*database.DB).Pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete domain: %w", err)
	}
	return nil
}
