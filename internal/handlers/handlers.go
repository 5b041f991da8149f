// Package handlers содержит HTTP-обработчики сервиса коротких ссылок.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/MoodinAhmed1/classicet/internal/auth"
	"github.com/MoodinAhmed1/classicet/internal/model"
	"github.com/MoodinAhmed1/classicet/internal/repositories"
	"github.com/MoodinAhmed1/classicet/internal/service"
)

// Handler агрегирует сервисы и настройки, нужные HTTP-обработчикам.
type Handler struct {
	Shortener *service.LinkService
	Redirects *service.RedirectService
	Analytics *service.AnalyticsService
	Users     *service.UserService
	Domains   *service.DomainService
	Admin     *service.AdminService
	Repo      repositories.LinkRepositoryInterface
	Logger    *zap.Logger

	NotFoundURL string
	ExpiredURL  string
	ErrorURL    string

	validate *validator.Validate
}

// NewHandler создаёт Handler со всеми зависимостями.
func NewHandler(
	shortener *service.LinkService,
	redirects *service.RedirectService,
	analytics *service.AnalyticsService,
	users *service.UserService,
	domains *service.DomainService,
	admin *service.AdminService,
	repo repositories.LinkRepositoryInterface,
	logger *zap.Logger,
	notFoundURL, expiredURL, errorURL string,
) *Handler {
	return &Handler{
		Shortener:   shortener,
		Redirects:   redirects,
		Analytics:   analytics,
		Users:       users,
		Domains:     domains,
		Admin:       admin,
		Repo:        repo,
		Logger:      logger,
		NotFoundURL: notFoundURL,
		ExpiredURL:  expiredURL,
		ErrorURL:    errorURL,
		validate:    validator.New(),
	}
}

// Redirect — публичный редирект по короткому коду.
//
// Ответ всегда редирект: на original_url для действующей ссылки либо на
// одну из fallback-страниц. Сырые 404/500 наружу не уходят — для
// человека, перешедшего по ссылке, это UX-страница, а не ошибка API.
// Регистрация перехода запускается в отдельной горутине и на ответ
// не влияет.
func (h *Handler) Redirect(res http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "code")
	if code == "" {
		http.Redirect(res, req, h.NotFoundURL, http.StatusFound)
		return
	}

	link, outcome := h.Redirects.Resolve(req.Context(), code)
	switch outcome {
	case service.OutcomeNotFound:
		http.Redirect(res, req, h.NotFoundURL, http.StatusFound)
	case service.OutcomeExpired:
		http.Redirect(res, req, h.ExpiredURL, http.StatusFound)
	case service.OutcomeError:
		http.Redirect(res, req, h.ErrorURL, http.StatusFound)
	case service.OutcomeActive:
		visit := visitFromRequest(req)
		// Контекст запроса отменится сразу после редиректа,
		// поэтому запись живёт в контексте без отмены.
		go h.Redirects.RecordClick(context.WithoutCancel(req.Context()), link.ID, visit)
		http.Redirect(res, req, link.OriginalURL, http.StatusTemporaryRedirect)
	}
}

// Ping проверяет доступность базы данных.
func (h *Handler) Ping(res http.ResponseWriter, req *http.Request) {
	if err := h.Repo.Ping(req.Context()); err != nil {
		http.Error(res, "database unavailable", http.StatusInternalServerError)
		return
	}
	res.WriteHeader(http.StatusOK)
}

// visitFromRequest собирает данные о посетителе из запроса. Геозаголовки
// edge-прокси принимаются на веру.
func visitFromRequest(req *http.Request) model.Visit {
	return model.Visit{
		IPAddress: clientIP(req),
		UserAgent: req.Header.Get("User-Agent"),
		Referer:   req.Header.Get("Referer"),
		Country:   req.Header.Get("CF-IPCountry"),
		City:      req.Header.Get("CF-IPCity"),
	}
}

func clientIP(req *http.Request) string {
	if ip := req.Header.Get("CF-Connecting-IP"); ip != "" {
		return ip
	}
	if xff := req.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		return req.RemoteAddr
	}
	return host
}

// principal достаёт субъекта, положенного auth-мидлваром, и дальше
// передаёт его в сервисы явным параметром.
func (h *Handler) principal(res http.ResponseWriter, req *http.Request) (*auth.Principal, bool) {
	p, ok := auth.FromContext(req.Context())
	if !ok {
		h.writeError(res, http.StatusUnauthorized, "authentication required")
		return nil, false
	}
	return p, true
}

// decodeJSON разбирает тело запроса и прогоняет структурную валидацию.
func (h *Handler) decodeJSON(res http.ResponseWriter, req *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(req.Body).Decode(dst); err != nil {
		h.writeError(res, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		h.writeError(res, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return "invalid field: " + strings.ToLower(verrs[0].Field())
	}
	return "invalid request body"
}

func (h *Handler) writeJSON(res http.ResponseWriter, status int, body interface{}) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(status)
	if err := json.NewEncoder(res).Encode(body); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *Handler) writeError(res http.ResponseWriter, status int, msg string) {
	h.writeJSON(res, status, model.ErrorResponse{Error: msg})
}

// serviceError сопоставляет ошибку сервисного слоя HTTP-статусу.
// Неожиданные ошибки логируются и наружу уходят обезличенным 500.
func (h *Handler) serviceError(res http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		h.writeError(res, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		h.writeError(res, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrForbidden):
		h.writeError(res, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrNotFound):
		h.writeError(res, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrConflict):
		h.writeError(res, http.StatusConflict, err.Error())
	default:
		h.Logger.Error("internal error", zap.Error(err))
		h.writeError(res, http.StatusInternalServerError, "internal server error")
	}
}

func (h *Handler) linkResponse(link *model.Link) model.LinkResponse {
	return model.LinkResponse{
		ID:          link.ID,
		ShortCode:   link.ShortCode,
		ShortURL:    h.Shortener.ShortURL(link),
		OriginalURL: link.OriginalURL,
		Title:       link.Title,
		Description: link.Description,
		IsActive:    link.IsActive,
		ExpiresAt:   link.ExpiresAt,
		ClickCount:  link.ClickCount,
		CreatedAt:   link.Created,
	}
}
