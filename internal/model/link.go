package model

import "time"

// Link представляет запись короткой ссылки в таблице links.
// ClickCount изменяется только регистратором кликов, остальные поля —
// владельцем ссылки или администратором.
type Link struct {
	tableName    struct{}   `pg:"links"`
	ID           int64      `pg:"id,notnull,pk"`
	UserID       int64      `pg:"user_id,notnull"`
	OriginalURL  string     `pg:"original_url,notnull"`
	ShortCode    string     `pg:"short_code,notnull,unique"`
	CustomDomain string     `pg:"custom_domain"`
	Title        string     `pg:"title"`
	Description  string     `pg:"description"`
	IsActive     bool       `pg:"is_active,default:true"`
	ExpiresAt    *time.Time `pg:"expires_at"`
	ClickCount   int64      `pg:"click_count,default:0"`
	Created      time.Time  `pg:"created,default:now()"`
	Updated      time.Time  `pg:"updated,default:now()"`
}

// Expired сообщает, истёк ли срок действия ссылки к моменту now.
// Ссылка без expires_at не истекает никогда.
func (l *Link) Expired(now time.Time) bool {
	return l.ExpiresAt != nil && l.ExpiresAt.Before(now)
}
