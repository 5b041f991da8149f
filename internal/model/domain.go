package model

import "time"

// CustomDomain представляет собственный домен пользователя (premium).
type CustomDomain struct {
	tableName         struct{}  `pg:"custom_domains"`
	ID                int64     `pg:"id,notnull,pk"`
	UserID            int64     `pg:"user_id,notnull"`
	Domain            string    `pg:"domain,notnull,unique"`
	VerificationToken string    `pg:"verification_token,notnull"`
	IsVerified        bool      `pg:"is_verified,default:false"`
	Created           time.Time `pg:"created,default:now()"`
}
