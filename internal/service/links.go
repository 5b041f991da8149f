package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/MoodinAhmed1/classicet/internal/auth"
	"github.com/MoodinAhmed1/classicet/internal/model"
	"github.com/MoodinAhmed1/classicet/internal/repositories"
	"github.com/MoodinAhmed1/classicet/internal/shortcode"
)

const titleFetchTimeout = 3 * time.Second

// titleFetchLimit ограничивает объём читаемого тела при префетче заголовка.
const titleFetchLimit = 64 << 10

var titleRe = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)

// LinkService реализует создание и управление короткими ссылками.
type LinkService struct {
	Links      repositories.LinkRepositoryInterface
	Logger     *zap.Logger
	BaseURL    string
	TitleFetch bool
	httpClient *http.Client
}

// NewLinkService создаёт новый экземпляр LinkService.
func NewLinkService(links repositories.LinkRepositoryInterface, logger *zap.Logger, baseURL string, titleFetch bool) *LinkService {
	return &LinkService{
		Links:      links,
		Logger:     logger,
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		TitleFetch: titleFetch,
		httpClient: &http.Client{Timeout: titleFetchTimeout},
	}
}

// CreateLink создаёт короткую ссылку для пользователя.
//
// Порядок проверок важен: тарифная политика и валидация выполняются
// до любых обращений к хранилищу, чтобы отклонённый запрос не оставлял
// следов. Пользовательский код проверяется на занятость один раз и при
// конфликте не перегенерируется — это явное намерение пользователя.
func (s *LinkService) CreateLink(ctx context.Context, principal *auth.Principal, req model.CreateLinkRequest) (*model.Link, error) {
	originalURL := strings.TrimSpace(req.OriginalURL)
	if err := validateURL(originalURL); err != nil {
		return nil, err
	}

	if req.CustomCode != "" && !principal.Tier.AllowsCustomCode() {
		return nil, fmt.Errorf("%w: custom codes require a pro or premium plan", ErrForbidden)
	}

	var expiresAt *time.Time
	if req.ExpiresAt != "" {
		t, err := time.Parse(time.RFC3339, req.ExpiresAt)
		if err != nil {
			return nil, fmt.Errorf("%w: expiresAt must be RFC3339", ErrValidation)
		}
		if !t.After(time.Now()) {
			return nil, fmt.Errorf("%w: expiresAt must be in the future", ErrValidation)
		}
		expiresAt = &t
	}

	link := &model.Link{
		UserID:      principal.UserID,
		OriginalURL: originalURL,
		Title:       req.Title,
		IsActive:    true,
		ExpiresAt:   expiresAt,
	}

	if link.Title == "" && s.TitleFetch {
		link.Title = s.fetchTitle(ctx, originalURL)
	}

	var err error
	if req.CustomCode != "" {
		err = s.insertWithCustomCode(ctx, link, req.CustomCode)
	} else {
		err = s.insertWithGeneratedCode(ctx, link)
	}
	if err != nil {
		return nil, err
	}
	return link, nil
}

// insertWithCustomCode вставляет ссылку с кодом, выбранным пользователем.
// Единственная проверка занятости, без повторов.
func (s *LinkService) insertWithCustomCode(ctx context.Context, link *model.Link, code string) error {
	if !shortcode.ValidCode(code) {
		return fmt.Errorf("%w: custom code must be alphanumeric", ErrValidation)
	}

	taken, err := s.Links.ShortCodeExists(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to check custom code: %w", err)
	}
	if taken {
		return fmt.Errorf("%w: custom code %q", ErrConflict, code)
	}

	link.ShortCode = code
	if err := s.Links.SaveLink(ctx, link); err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			// Код заняли между проверкой и вставкой
			return fmt.Errorf("%w: custom code %q", ErrConflict, code)
		}
		return err
	}
	return nil
}

// insertWithGeneratedCode вставляет ссылку со сгенерированным кодом.
// До shortcode.MaxAttempts попыток; проверка занятости перед вставкой
// не атомарна, поэтому нарушение уникального ограничения при вставке
// тоже считается коллизией и уходит на следующую попытку.
func (s *LinkService) insertWithGeneratedCode(ctx context.Context, link *model.Link) error {
	for attempt := 0; attempt < shortcode.MaxAttempts; attempt++ {
		code, err := shortcode.Generate()
		if err != nil {
			return fmt.Errorf("failed to generate short code: %w", err)
		}

		taken, err := s.Links.ShortCodeExists(ctx, code)
		if err != nil {
			return fmt.Errorf("failed to check short code: %w", err)
		}
		if taken {
			s.Logger.Warn("short code collision", zap.String("code", code), zap.Int("attempt", attempt+1))
			continue
		}

		link.ShortCode = code
		err = s.Links.SaveLink(ctx, link)
		if err == nil {
			return nil
		}
		if errors.Is(err, repositories.ErrUniqueViolation) {
			s.Logger.Warn("short code collision on insert", zap.String("code", code), zap.Int("attempt", attempt+1))
			continue
		}
		return err
	}
	return errors.New("unable to generate unique code")
}

// GetLink возвращает ссылку владельцу или администратору.
func (s *LinkService) GetLink(ctx context.Context, principal *auth.Principal, id int64) (*model.Link, error) {
	link, err := s.Links.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if link.UserID != principal.UserID && !principal.IsAdmin {
		return nil, ErrForbidden
	}
	return link, nil
}

// GetUserLinks возвращает все ссылки пользователя.
func (s *LinkService) GetUserLinks(ctx context.Context, principal *auth.Principal) ([]*model.Link, error) {
	return s.Links.GetByUserID(ctx, principal.UserID)
}

// UpdateLink меняет изменяемые поля ссылки. Непереданные поля не трогаются.
func (s *LinkService) UpdateLink(ctx context.Context, principal *auth.Principal, id int64, req model.UpdateLinkRequest) (*model.Link, error) {
	link, err := s.GetLink(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		link.Title = *req.Title
	}
	if req.Description != nil {
		link.Description = *req.Description
	}
	if req.IsActive != nil {
		link.IsActive = *req.IsActive
	}
	if req.ExpiresAt != nil {
		if *req.ExpiresAt == "" {
			link.ExpiresAt = nil
		} else {
			t, err := time.Parse(time.RFC3339, *req.ExpiresAt)
			if err != nil {
				return nil, fmt.Errorf("%w: expiresAt must be RFC3339", ErrValidation)
			}
			link.ExpiresAt = &t
		}
	}

	if err := s.Links.UpdateLink(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

// DeleteLink деактивирует ссылку (мягкое удаление): код остаётся занятым,
// а публичный редирект начинает отвечать как для несуществующего кода.
func (s *LinkService) DeleteLink(ctx context.Context, principal *auth.Principal, id int64) error {
	if _, err := s.GetLink(ctx, principal, id); err != nil {
		return err
	}
	return s.Links.Deactivate(ctx, id)
}

// ShortURL собирает полный короткий адрес ссылки.
func (s *LinkService) ShortURL(link *model.Link) string {
	if link.CustomDomain != "" {
		return "https://" + link.CustomDomain + "/" + link.ShortCode
	}
	return s.BaseURL + "/" + link.ShortCode
}

// fetchTitle пытается получить <title> целевой страницы. Сугубо
// best-effort: любая ошибка означает пустой заголовок.
func (s *LinkService) fetchTitle(ctx context.Context, target string) string {
	ctx, cancel := context.WithTimeout(ctx, titleFetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return ""
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, titleFetchLimit))
	if err != nil {
		return ""
	}
	m := titleRe.FindSubmatch(body)
	if m == nil {
		return ""
	}
	title := strings.TrimSpace(string(m[1]))
	if len(title) > 255 {
		title = title[:255]
	}
	return title
}

func validateURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: originalUrl is required", ErrValidation)
	}
	parsed, err := url.ParseRequestURI(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("%w: invalid URL", ErrValidation)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%w: only http and https URLs are supported", ErrValidation)
	}
	return nil
}
