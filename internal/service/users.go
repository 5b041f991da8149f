package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/MoodinAhmed1/classicet/internal/auth"
	"github.com/MoodinAhmed1/classicet/internal/model"
	"github.com/MoodinAhmed1/classicet/internal/repositories"
)

// UserService реализует регистрацию, вход и профиль пользователя.
type UserService struct {
	Users  repositories.UserRepositoryInterface
	Auth   *auth.Auth
	Logger *zap.Logger
}

// NewUserService создаёт новый экземпляр UserService.
func NewUserService(users repositories.UserRepositoryInterface, a *auth.Auth, logger *zap.Logger) *UserService {
	return &UserService{Users: users, Auth: a, Logger: logger}
}

// Register создаёт пользователя на тарифе free.
func (s *UserService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hash,
		Tier:         model.TierFree,
	}
	if err := s.Users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return nil, fmt.Errorf("%w: email already registered", ErrConflict)
		}
		return nil, err
	}
	return user, nil
}

// Login проверяет учётные данные и выпускает токен.
// Несуществующий email и неверный пароль неразличимы в ответе.
func (s *UserService) Login(ctx context.Context, req model.LoginRequest) (string, *model.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", nil, ErrUnauthorized
		}
		return "", nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return "", nil, ErrUnauthorized
	}

	token, err := s.Auth.GenerateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return token, user, nil
}

// Profile возвращает пользователя по субъекту запроса.
func (s *UserService) Profile(ctx context.Context, principal *auth.Principal) (*model.User, error) {
	user, err := s.Users.GetByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateEmail меняет email текущего пользователя.
func (s *UserService) UpdateEmail(ctx context.Context, principal *auth.Principal, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if err := s.Users.UpdateEmail(ctx, principal.UserID, email); err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return fmt.Errorf("%w: email already registered", ErrConflict)
		}
		return err
	}
	return nil
}
