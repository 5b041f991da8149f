package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/MoodinAhmed1/classicet/internal/model"
	"github.com/MoodinAhmed1/classicet/internal/repositories"
	"github.com/MoodinAhmed1/classicet/internal/ua"
)

// Outcome — терминальное состояние разрешения короткого кода.
type Outcome int

const (
	// OutcomeActive — ссылка найдена и действительна.
	OutcomeActive Outcome = iota
	// OutcomeNotFound — код не существует или ссылка деактивирована.
	OutcomeNotFound
	// OutcomeExpired — срок действия ссылки истёк.
	OutcomeExpired
	// OutcomeError — неожиданная ошибка хранилища.
	OutcomeError
)

// RedirectService разрешает короткие коды и регистрирует переходы.
type RedirectService struct {
	Links     repositories.LinkRepositoryInterface
	Analytics repositories.AnalyticsRepositoryInterface
	Logger    *zap.Logger
}

// NewRedirectService создаёт новый экземпляр RedirectService.
func NewRedirectService(links repositories.LinkRepositoryInterface, analytics repositories.AnalyticsRepositoryInterface, logger *zap.Logger) *RedirectService {
	return &RedirectService{Links: links, Analytics: analytics, Logger: logger}
}

// Resolve ищет активную ссылку по коду и проверяет срок действия.
// Деактивированная ссылка не доходит до проверки срока: фильтр
// is_active в запросе делает её неотличимой от несуществующей.
func (s *RedirectService) Resolve(ctx context.Context, code string) (*model.Link, Outcome) {
	link, err := s.Links.GetActiveByShortCode(ctx, code)
	if err != nil {
		if err == repositories.ErrNotFound {
			return nil, OutcomeNotFound
		}
		s.Logger.Error("redirect lookup failed", zap.String("code", code), zap.Error(err))
		return nil, OutcomeError
	}

	if link.Expired(time.Now()) {
		return link, OutcomeExpired
	}
	return link, OutcomeActive
}

// RecordClick записывает событие перехода и увеличивает счётчик ссылки.
//
// Метод ничего не возвращает: это некритичный побочный эффект, и его
// отказ не должен влиять на уже выполняющийся редирект. Запись события
// и инкремент счётчика независимы — транзакция их не связывает, рассинхрон
// между ними допустим. Полнота аналитики принесена в жертву доступности
// редиректа.
func (s *RedirectService) RecordClick(ctx context.Context, linkID int64, visit model.Visit) {
	c := ua.Classify(visit.UserAgent)

	event := &model.AnalyticsEvent{
		LinkID:     linkID,
		IPAddress:  visit.IPAddress,
		UserAgent:  visit.UserAgent,
		Referer:    visit.Referer,
		Country:    visit.Country,
		City:       visit.City,
		DeviceType: c.DeviceType,
		Browser:    c.Browser,
		OS:         c.OS,
		Created:    time.Now(),
	}

	if err := s.Analytics.SaveEvent(ctx, event); err != nil {
		s.Logger.Error("failed to save analytics event", zap.Int64("link_id", linkID), zap.Error(err))
	}

	if err := s.Links.IncrementClicks(ctx, linkID); err != nil {
		s.Logger.Error("failed to increment click count", zap.Int64("link_id", linkID), zap.Error(err))
	}
}
