// Package ua классифицирует посетителей по строке User-Agent.
package ua

import (
	"github.com/mileusna/useragent"
)

const (
	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceBot     = "bot"

	Unknown = "unknown"
)

// Classification — разобранные характеристики посетителя.
type Classification struct {
	DeviceType string
	Browser    string
	OS         string
}

// Classify разбирает сырой заголовок User-Agent. Пустой или нечитаемый
// ввод не является ошибкой: тип устройства по умолчанию desktop,
// браузер и ОС — unknown.
func Classify(raw string) Classification {
	c := Classification{
		DeviceType: DeviceDesktop,
		Browser:    Unknown,
		OS:         Unknown,
	}
	if raw == "" {
		return c
	}

	parsed := useragent.Parse(raw)
	switch {
	case parsed.Bot:
		c.DeviceType = DeviceBot
	case parsed.Tablet:
		c.DeviceType = DeviceTablet
	case parsed.Mobile:
		c.DeviceType = DeviceMobile
	}
	if parsed.Name != "" {
		c.Browser = parsed.Name
	}
	if parsed.OS != "" {
		c.OS = parsed.OS
	}
	return c
}
