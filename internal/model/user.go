package model

import "time"

// Tier определяет тарифный план пользователя.
type Tier string

const (
	TierFree    Tier = "free"
	TierPro     Tier = "pro"
	TierPremium Tier = "premium"
)

// Valid сообщает, известен ли тариф системе.
func (t Tier) Valid() bool {
	switch t {
	case TierFree, TierPro, TierPremium:
		return true
	}
	return false
}

// AllowsCustomCode: пользовательские короткие коды доступны начиная с pro.
// Неизвестный тариф трактуется как free.
func (t Tier) AllowsCustomCode() bool {
	return t == TierPro || t == TierPremium
}

// AllowsCustomDomain: собственные домены доступны только на premium.
func (t Tier) AllowsCustomDomain() bool {
	return t == TierPremium
}

// AnalyticsLevel описывает глубину аналитики, видимую пользователю.
type AnalyticsLevel int

const (
	// AnalyticsBasic — только суммарные счётчики (free).
	AnalyticsBasic AnalyticsLevel = iota
	// AnalyticsTimeline — таймлайн и топ источников переходов (pro).
	AnalyticsTimeline
	// AnalyticsFull — полные разбивки по странам/устройствам/браузерам (premium).
	AnalyticsFull
)

// Analytics возвращает уровень детализации аналитики для тарифа.
func (t Tier) Analytics() AnalyticsLevel {
	switch t {
	case TierPremium:
		return AnalyticsFull
	case TierPro:
		return AnalyticsTimeline
	default:
		return AnalyticsBasic
	}
}

// User представляет запись пользователя в таблице users.
type User struct {
	tableName    struct{}  `pg:"users"`
	ID           int64     `pg:"id,notnull,pk"`
	Email        string    `pg:"email,notnull,unique"`
	PasswordHash string    `pg:"password_hash,notnull"`
	Tier         Tier      `pg:"tier,default:'free'"`
	IsAdmin      bool      `pg:"is_admin,default:false"`
	Created      time.Time `pg:"created,default:now()"`
	Updated      time.Time `pg:"updated,default:now()"`
}

// UserWithStats — строка административного списка пользователей.
type UserWithStats struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Tier      Tier      `json:"tier"`
	IsAdmin   bool      `json:"is_admin"`
	LinkCount int       `json:"link_count"`
	Created   time.Time `json:"created_at"`
}
