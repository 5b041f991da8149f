package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MoodinAhmed1/classicet/internal/auth"
	"github.com/MoodinAhmed1/classicet/internal/model"
	"github.com/MoodinAhmed1/classicet/internal/repositories"
)

// DomainService управляет собственными доменами (только premium).
type DomainService struct {
	Domains repositories.DomainRepositoryInterface
	Logger  *zap.Logger
}

// NewDomainService создаёт новый экземпляр DomainService.
func NewDomainService(domains repositories.DomainRepositoryInterface, logger *zap.Logger) *DomainService {
	return &DomainService{Domains: domains, Logger: logger}
}

// CreateDomain регистрирует домен за пользователем и выдаёт токен
// для DNS-подтверждения. Тарифная проверка — до обращения к хранилищу.
func (s *DomainService) CreateDomain(ctx context.Context, principal *auth.Principal, domain string) (*model.CustomDomain, error) {
	if !principal.Tier.AllowsCustomDomain() {
		return nil, fmt.Errorf("%w: custom domains require a premium plan", ErrForbidden)
	}

	domain = strings.ToLower(strings.TrimSpace(domain))
	if domain == "" {
		return nil, fmt.Errorf("%w: domain is required", ErrValidation)
	}

	d := &model.CustomDomain{
		UserID:            principal.UserID,
		Domain:            domain,
		VerificationToken: uuid.NewString(),
	}
	if err := s.Domains.SaveDomain(ctx, d); err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return nil, fmt.Errorf("%w: domain %q", ErrConflict, domain)
		}
		return nil, err
	}
	return d, nil
}

// ListDomains возвращает домены пользователя.
func (s *DomainService) ListDomains(ctx context.Context, principal *auth.Principal) ([]*model.CustomDomain, error) {
	return s.Domains.GetByUserID(ctx, principal.UserID)
}

// VerifyDomain помечает домен подтверждённым. Сама DNS-проверка
// выполняется внешним коллаборатором; эндпоинт доверяет оператору.
func (s *DomainService) VerifyDomain(ctx context.Context, principal *auth.Principal, id int64) (*model.CustomDomain, error) {
	d, err := s.ownedDomain(ctx, principal, id)
	if err != nil {
		return nil, err
	}
	if err := s.Domains.MarkVerified(ctx, id); err != nil {
		return nil, err
	}
	d.IsVerified = true
	return d, nil
}

// DeleteDomain удаляет домен пользователя.
func (s *DomainService) DeleteDomain(ctx context.Context, principal *auth.Principal, id int64) error {
	if _, err := s.ownedDomain(ctx, principal, id); err != nil {
		return err
	}
	return s.Domains.DeleteDomain(ctx, id)
}

func (s *DomainService) ownedDomain(ctx context.Context, principal *auth.Principal, id int64) (*model.CustomDomain, error) {
	d, err := s.Domains.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if d.UserID != principal.UserID && !principal.IsAdmin {
		return nil, ErrForbidden
	}
	return d, nil
}
