package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/MoodinAhmed1/classicet/internal/auth"
	"github.com/MoodinAhmed1/classicet/internal/model"
	"github.com/MoodinAhmed1/classicet/internal/repositories"
)

// AdminService реализует операции административной консоли.
// Проверка IsAdmin дублируется здесь на случай вызова в обход
// HTTP-мидлвара.
type AdminService struct {
	Users     repositories.UserRepositoryInterface
	Links     repositories.LinkRepositoryInterface
	Analytics repositories.AnalyticsRepositoryInterface
	Logger    *zap.Logger
}

// NewAdminService создаёт новый экземпляр AdminService.
func NewAdminService(users repositories.UserRepositoryInterface, links repositories.LinkRepositoryInterface, analytics repositories.AnalyticsRepositoryInterface, logger *zap.Logger) *AdminService {
	return &AdminService{Users: users, Links: links, Analytics: analytics, Logger: logger}
}

// ListUsers возвращает всех пользователей со счётчиками ссылок.
func (s *AdminService) ListUsers(ctx context.Context, principal *auth.Principal) ([]model.UserWithStats, error) {
	if !principal.IsAdmin {
		return nil, ErrForbidden
	}
	return s.Users.ListWithStats(ctx)
}

// SetUserTier меняет тариф пользователя.
func (s *AdminService) SetUserTier(ctx context.Context, principal *auth.Principal, userID int64, tier model.Tier) error {
	if !principal.IsAdmin {
		return ErrForbidden
	}
	if !tier.Valid() {
		return fmt.Errorf("%w: unknown tier %q", ErrValidation, tier)
	}
	if err := s.Users.UpdateTier(ctx, userID, tier); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.Logger.Info("user tier changed", zap.Int64("user_id", userID), zap.String("tier", string(tier)))
	return nil
}

// DeactivateLink выключает любую ссылку.
func (s *AdminService) DeactivateLink(ctx context.Context, principal *auth.Principal, linkID int64) error {
	if !principal.IsAdmin {
		return ErrForbidden
	}
	if _, err := s.Links.GetByID(ctx, linkID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.Links.Deactivate(ctx, linkID)
}

// Stats возвращает сводку по системе.
func (s *AdminService) Stats(ctx context.Context, principal *auth.Principal) (*model.SystemStats, error) {
	if !principal.IsAdmin {
		return nil, ErrForbidden
	}

	links, err := s.Links.CountLinks(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.Users.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	clicks, err := s.Analytics.CountEvents(ctx)
	if err != nil {
		return nil, err
	}
	return &model.SystemStats{Links: links, Users: users, Clicks: clicks}, nil
}
