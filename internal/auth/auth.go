// Package auth отвечает за JWT-аутентификацию и хеширование паролей.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/MoodinAhmed1/classicet/internal/model"
)

const tokenTTL = 24 * time.Hour

// Principal — аутентифицированный субъект запроса. Передаётся в сервисы
// явным параметром, а не через глобальное состояние запроса.
type Principal struct {
	UserID  int64
	Tier    model.Tier
	IsAdmin bool
}

// Claims — состав JWT.
type Claims struct {
	UserID  int64      `json:"user_id"`
	Tier    model.Tier `json:"tier"`
	IsAdmin bool       `json:"is_admin"`
	jwt.RegisteredClaims
}

type Auth struct {
	secret []byte
}

func New(secret string) *Auth {
	return &Auth{secret: []byte(secret)}
}

// GenerateToken выпускает подписанный HS256-токен для пользователя.
func (a *Auth) GenerateToken(user *model.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:  user.ID,
		Tier:    user.Tier,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// ValidateToken проверяет подпись и срок токена и возвращает субъекта.
func (a *Auth) ValidateToken(tokenString string) (*Principal, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return &Principal{
		UserID:  claims.UserID,
		Tier:    claims.Tier,
		IsAdmin: claims.IsAdmin,
	}, nil
}

// HashPassword хеширует пароль bcrypt-ом со стандартной стоимостью.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword сверяет пароль с хешем.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

type ctxKey struct{}

// WithPrincipal кладёт субъекта в контекст запроса. Используется только
// middleware; ниже уровня обработчиков субъект передаётся параметром.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext достаёт субъекта из контекста запроса.
func FromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(ctxKey{}).(*Principal)
	return p, ok
}
