package model

import "time"

// CreateLinkRequest представляет тело запроса на создание ссылки.
type CreateLinkRequest struct {
	OriginalURL string `json:"originalUrl" validate:"required"`
	CustomCode  string `json:"customCode,omitempty" validate:"omitempty,alphanum,min=4,max=32"`
	Title       string `json:"title,omitempty" validate:"omitempty,max=255"`
	ExpiresAt   string `json:"expiresAt,omitempty"`
}

// UpdateLinkRequest представляет тело запроса на изменение ссылки.
// Указатели отличают «не менять» от «сбросить».
type UpdateLinkRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1024"`
	IsActive    *bool   `json:"isActive,omitempty"`
	ExpiresAt   *string `json:"expiresAt,omitempty"`
}

// LinkResponse представляет ссылку в ответах API.
type LinkResponse struct {
	ID          int64      `json:"id"`
	ShortCode   string     `json:"shortCode"`
	ShortURL    string     `json:"shortUrl"`
	OriginalURL string     `json:"originalUrl"`
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	IsActive    bool       `json:"isActive"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
	ClickCount  int64      `json:"clickCount"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// RegisterRequest — тело запроса регистрации.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest — тело запроса входа.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse — ответ с JWT.
type TokenResponse struct {
	Token string `json:"token"`
	Tier  Tier   `json:"tier"`
}

// CreateDomainRequest — тело запроса на добавление собственного домена.
type CreateDomainRequest struct {
	Domain string `json:"domain" validate:"required,fqdn"`
}

// DomainResponse представляет собственный домен в ответах API.
type DomainResponse struct {
	ID                int64     `json:"id"`
	Domain            string    `json:"domain"`
	VerificationToken string    `json:"verificationToken"`
	IsVerified        bool      `json:"isVerified"`
	CreatedAt         time.Time `json:"createdAt"`
}

// SetTierRequest — административная смена тарифа.
type SetTierRequest struct {
	Tier Tier `json:"tier" validate:"required"`
}

// SystemStats — административная сводка по системе.
type SystemStats struct {
	Links  int   `json:"links"`
	Users  int   `json:"users"`
	Clicks int64 `json:"clicks"`
}

// ErrorResponse — единый формат ошибок API.
type ErrorResponse struct {
	Error string `json:"error"`
}
