package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/MoodinAhmed1/classicet/internal/auth"
	"github.com/MoodinAhmed1/classicet/internal/model"
	"github.com/MoodinAhmed1/classicet/internal/repositories"
)

const (
	defaultAnalyticsDays = 7
	maxAnalyticsDays     = 90
)

// AnalyticsService собирает разбивки переходов по ссылке.
type AnalyticsService struct {
	Links     repositories.LinkRepositoryInterface
	Analytics repositories.AnalyticsRepositoryInterface
	Logger    *zap.Logger
}

// NewAnalyticsService создаёт новый экземпляр AnalyticsService.
func NewAnalyticsService(links repositories.LinkRepositoryInterface, analytics repositories.AnalyticsRepositoryInterface, logger *zap.Logger) *AnalyticsService {
	return &AnalyticsService{Links: links, Analytics: analytics, Logger: logger}
}

// LinkAnalytics возвращает аналитику ссылки за последние days дней.
//
// Состав ответа зависит от тарифа: free — только суммарный счётчик,
// pro — плюс таймлайн и топ источников, premium — все разбивки.
// Это фильтр на уровне представления: сами события в хранилище
// от тарифа не зависят.
func (s *AnalyticsService) LinkAnalytics(ctx context.Context, principal *auth.Principal, linkID int64, days int) (*model.LinkAnalytics, error) {
	if days == 0 {
		days = defaultAnalyticsDays
	}
	if days < 0 {
		return nil, fmt.Errorf("%w: days must be positive", ErrValidation)
	}
	if days > maxAnalyticsDays {
		days = maxAnalyticsDays
	}

	link, err := s.Links.GetByID(ctx, linkID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if link.UserID != principal.UserID && !principal.IsAdmin {
		return nil, ErrForbidden
	}

	since := time.Now().AddDate(0, 0, -days)
	result := &model.LinkAnalytics{LinkID: linkID, Days: days}

	result.TotalClicks, err = s.Analytics.TotalClicks(ctx, linkID, since)
	if err != nil {
		return nil, err
	}

	level := principal.Tier.Analytics()
	if principal.IsAdmin {
		level = model.AnalyticsFull
	}

	if level < model.AnalyticsTimeline {
		result.Locked = []string{"clicks_by_date", "top_referrers", "clicks_by_country", "clicks_by_device", "clicks_by_browser"}
		return result, nil
	}

	result.ByDate, err = s.Analytics.ClicksByDate(ctx, linkID, since)
	if err != nil {
		return nil, err
	}
	result.ByReferer, err = s.Analytics.ClicksByColumn(ctx, linkID, "referer", since)
	if err != nil {
		return nil, err
	}

	if level < model.AnalyticsFull {
		result.Locked = []string{"clicks_by_country", "clicks_by_device", "clicks_by_browser"}
		return result, nil
	}

	result.ByCountry, err = s.Analytics.ClicksByColumn(ctx, linkID, "country", since)
	if err != nil {
		return nil, err
	}
	result.ByDevice, err = s.Analytics.ClicksByColumn(ctx, linkID, "device_type", since)
	if err != nil {
		return nil, err
	}
	result.ByBrowser, err = s.Analytics.ClicksByColumn(ctx, linkID, "browser", since)
	if err != nil {
		return nil, err
	}
	return result, nil
}
