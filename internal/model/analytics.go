package model

import "time"

// AnalyticsEvent представляет одно событие перехода в таблице analytics_events.
// Записи только добавляются, никогда не обновляются.
type AnalyticsEvent struct {
	tableName  struct{}  `pg:"analytics_events"`
	ID         int64     `pg:"id,notnull,pk"`
	LinkID     int64     `pg:"link_id,notnull"`
	IPAddress  string    `pg:"ip_address"`
	UserAgent  string    `pg:"user_agent"`
	Referer    string    `pg:"referer"`
	Country    string    `pg:"country"`
	City       string    `pg:"city"`
	DeviceType string    `pg:"device_type"`
	Browser    string    `pg:"browser"`
	OS         string    `pg:"os"`
	Created    time.Time `pg:"created,default:now()"`
}

// Visit — данные о посетителе, извлечённые из запроса редиректа.
// Геолокация берётся из заголовков edge-прокси и не перепроверяется.
type Visit struct {
	IPAddress string
	UserAgent string
	Referer   string
	Country   string
	City      string
}

// BucketCount — одна строка разбивки аналитики (дата/страна/устройство/...).
type BucketCount struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// LinkAnalytics — ответ эндпоинта аналитики. Состав полей зависит от тарифа:
// free видит только TotalClicks, pro — плюс таймлайн и источники,
// premium — все разбивки.
type LinkAnalytics struct {
	LinkID      int64         `json:"link_id"`
	Days        int           `json:"days"`
	TotalClicks int64         `json:"total_clicks"`
	ByDate      []BucketCount `json:"clicks_by_date,omitempty"`
	ByReferer   []BucketCount `json:"top_referrers,omitempty"`
	ByCountry   []BucketCount `json:"clicks_by_country,omitempty"`
	ByDevice    []BucketCount `json:"clicks_by_device,omitempty"`
	ByBrowser   []BucketCount `json:"clicks_by_browser,omitempty"`
	Locked      []string      `json:"locked_sections,omitempty"`
}
