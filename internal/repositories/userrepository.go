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

// UserRepositoryInterface определяет методы репозитория пользователей.
type UserRepositoryInterface interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	UpdateEmail(ctx context.Context, id int64, email string) error
	UpdateTier(ctx context.Context, id int64, tier model.Tier) error
	ListWithStats(ctx context.Context) ([]model.UserWithStats, error)
	CountUsers(ctx context.Context) (int, error)
}

// UserRepository реализует UserRepositoryInterface с использованием PostgreSQL.
type UserRepository struct {
	DB database.DBInterface
}

// NewUserRepository создаёт новый экземпляр UserRepository.
func NewUserRepository(db database.DBInterface) *UserRepository {
	return &UserRepository{DB: db}
}

// CreateUser сохраняет пользователя. Занятый email — ErrUniqueViolation.
func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (email, password_hash, tier, is_admin, created, updated)
              VALUES ($1, $2, $3, $4, $5, $5)
              RETURNING id`
	now := time.Now()
	err := r.DB.(*database.DB).Pool.QueryRow(ctx, query,
		user.Email, user.PasswordHash, user.Tier, user.IsAdmin, now,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrUniqueViolation
		}
		return fmt.Errorf("database insert error: %w", err)
	}
	user.Created = now
	user.Updated = now
	return nil
}

// GetByEmail извлекает пользователя по email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT id, email, password_hash, tier, is_admin, created, updated FROM users WHERE email = $1`
	return r.scanUser(r.DB.(*database.DB).Pool.QueryRow(ctx, query, email))
}

// GetByID извлекает пользователя по идентификатору.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT id, email, password_hash, tier, is_admin, created, updated FROM users WHERE id = $1`
	return r.scanUser(r.DB.(*database.DB).Pool.QueryRow(ctx, query, id))
}

func (r *UserRepository) scanUser(row pgx.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Tier, &user.IsAdmin, &user.Created, &user.Updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return user, nil
}

// UpdateEmail меняет email пользователя.
func (r *UserRepository) UpdateEmail(ctx context.Context, id int64, email string) error {
	query := `UPDATE users SET email = $1, updated = $2 WHERE id = $3`
	_, err := r.DB.(*database.DB).Pool.Exec(ctx, query, email, time.Now(), id)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrUniqueViolation
		}
		return fmt.Errorf("failed to update email: %w", err)
	}
	return nil
}

// UpdateTier меняет тариф пользователя (административная операция).
func (r *UserRepository) UpdateTier(ctx context.Context, id int64, tier model.Tier) error {
	query := `UPDATE users SET tier = $1, updated = $2 WHERE id = $3`
	tag, err := r.DB.(*database.DB).Pool.Exec(ctx, query, tier, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update tier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListWithStats возвращает всех пользователей со счётчиком ссылок.
func (r *UserRepository) ListWithStats(ctx context.Context) ([]model.UserWithStats, error) {
	query := `SELECT u.id, u.email, u.tier, u.is_admin, COUNT(l.id), u.created
              FROM users u
              LEFT JOIN links l ON l.user_id = u.id
              GROUP BY u.id ORDER BY u.created`
	rows, err := r.DB.(*database.DB).Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var results []model.UserWithStats
	for rows.Next() {
		var u model.UserWithStats
		if err := rows.Scan(&u.ID, &u.Email, &u.Tier, &u.IsAdmin, &u.LinkCount, &u.Created); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		results = append(results, u)
	}
	return results, rows.Err()
}

// CountUsers количество пользователей
func (r *UserRepository) CountUsers(ctx context.Context) (int, error) {
	var count int
	err := r.DB.(*database.DB).Pool.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&count)
	return count, err
}
