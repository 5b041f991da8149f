package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/MoodinAhmed1/classicet/internal/auth"
	"github.com/MoodinAhmed1/classicet/internal/handlers"
	"github.com/MoodinAhmed1/classicet/internal/mocks"
	"github.com/MoodinAhmed1/classicet/internal/model"
	"github.com/MoodinAhmed1/classicet/internal/repositories"
	"github.com/MoodinAhmed1/classicet/internal/router"
	"github.com/MoodinAhmed1/classicet/internal/service"
)

const (
	testBaseURL     = "https://sho.rt"
	testNotFoundURL = "https://sho.rt/404"
	testExpiredURL  = "https://sho.rt/expired"
	testErrorURL    = "https://sho.rt/error"
)

// testEnv поднимает полный HTTP-стек на мок-репозиториях: реальные
// сервисы, реальный маршрутизатор, реальные мидлвары.
type testEnv struct {
	links     *mocks.MockLinkRepositoryInterface
	analytics *mocks.MockAnalyticsRepositoryInterface
	users     *mocks.MockUserRepositoryInterface
	domains   *mocks.MockDomainRepositoryInterface
	auth      *auth.Auth
	mux       *chi.Mux
}

func newTestEnv(t *testing.T) *testEnv {
	ctrl := gomock.NewController(t)
	logger := zap.NewNop()

	env := &testEnv{
		links:     mocks.NewMockLinkRepositoryInterface(ctrl),
		analytics: mocks.NewMockAnalyticsRepositoryInterface(ctrl),
		users:     mocks.NewMockUserRepositoryInterface(ctrl),
		domains:   mocks.NewMockDomainRepositoryInterface(ctrl),
		auth:      auth.New("test-secret"),
	}

	shortener := service.NewLinkService(env.links, logger, testBaseURL, false)
	redirects := service.NewRedirectService(env.links, env.analytics, logger)
	analytics := service.NewAnalyticsService(env.links, env.analytics, logger)
	users := service.NewUserService(env.users, env.auth, logger)
	domains := service.NewDomainService(env.domains, logger)
	admin := service.NewAdminService(env.users, env.links, env.analytics, logger)

	handler := handlers.NewHandler(shortener, redirects, analytics, users, domains, admin,
		env.links, logger, testNotFoundURL, testExpiredURL, testErrorURL)
	env.mux = router.NewRouter(handler, env.auth, logger)
	return env
}

func (e *testEnv) token(t *testing.T, user *model.User) string {
	token, err := e.auth.GenerateToken(user)
	require.NoError(t, err)
	return token
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.mux.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v interface{}) *bytes.Reader {
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(raw)
}

func TestRedirect(t *testing.T) {
	env := newTestEnv(t)

	env.links.EXPECT().GetActiveByShortCode(gomock.Any(), "abc123").
		Return(&model.Link{ID: 1, ShortCode: "abc123", OriginalURL: "https://example.com/page", IsActive: true}, nil)

	// Регистрация перехода асинхронна: ждём оба вызова через каналы
	eventCh := make(chan *model.AnalyticsEvent, 1)
	env.analytics.EXPECT().SaveEvent(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, event *model.AnalyticsEvent) error {
			eventCh <- event
			return nil
		})
	incrCh := make(chan int64, 1)
	env.links.EXPECT().IncrementClicks(gomock.Any(), int64(1)).DoAndReturn(
		func(_ context.Context, id int64) error {
			incrCh <- id
			return nil
		})

	req := httptest.NewRequest(http.MethodGet, "/abc123", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1")
	req.Header.Set("Referer", "https://news.ycombinator.com/")
	req.Header.Set("CF-IPCountry", "NL")
	req.Header.Set("CF-Connecting-IP", "203.0.113.7")

	rec := env.do(req)
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "https://example.com/page", rec.Header().Get("Location"))

	select {
	case event := <-eventCh:
		assert.Equal(t, int64(1), event.LinkID)
		assert.Equal(t, "203.0.113.7", event.IPAddress)
		assert.Equal(t, "NL", event.Country)
		assert.Equal(t, "https://news.ycombinator.com/", event.Referer)
		assert.Equal(t, "mobile", event.DeviceType)
	case <-time.After(2 * time.Second):
		t.Fatal("analytics event was not recorded")
	}
	select {
	case id := <-incrCh:
		assert.Equal(t, int64(1), id)
	case <-time.After(2 * time.Second):
		t.Fatal("click count was not incremented")
	}
}

func TestRedirect_UnknownCode(t *testing.T) {
	// Наружу уходит не 404, а редирект на fallback-страницу, и в
	// хранилище аналитики ничего не пишется
	env := newTestEnv(t)

	env.links.EXPECT().GetActiveByShortCode(gomock.Any(), "nosuch").
		Return(nil, repositories.ErrNotFound)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/nosuch", nil))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, testNotFoundURL, rec.Header().Get("Location"))
}

func TestRedirect_Expired(t *testing.T) {
	env := newTestEnv(t)

	past := time.Now().Add(-time.Hour)
	env.links.EXPECT().GetActiveByShortCode(gomock.Any(), "old123").
		Return(&model.Link{ID: 2, ShortCode: "old123", IsActive: true, ExpiresAt: &past}, nil)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/old123", nil))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, testExpiredURL, rec.Header().Get("Location"))
}

func TestRedirect_StorageError(t *testing.T) {
	env := newTestEnv(t)

	env.links.EXPECT().GetActiveByShortCode(gomock.Any(), "abc123").
		Return(nil, assert.AnError)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/abc123", nil))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, testErrorURL, rec.Header().Get("Location"))
}

func TestCreateLink(t *testing.T) {
	env := newTestEnv(t)

	env.links.EXPECT().ShortCodeExists(gomock.Any(), gomock.Any()).Return(false, nil)
	env.links.EXPECT().SaveLink(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, link *model.Link) error {
			link.ID = 10
			return nil
		})

	req := httptest.NewRequest(http.MethodPost, "/api/links",
		jsonBody(t, model.CreateLinkRequest{OriginalURL: "https://example.com/page"}))
	req.Header.Set("Authorization", "Bearer "+env.token(t, &model.User{ID: 1, Tier: model.TierFree}))

	rec := env.do(req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp model.LinkResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(10), resp.ID)
	assert.Len(t, resp.ShortCode, 6)
	assert.Equal(t, testBaseURL+"/"+resp.ShortCode, resp.ShortURL)
	assert.True(t, resp.IsActive)
}

func TestCreateLink_Unauthorized(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/links",
		jsonBody(t, model.CreateLinkRequest{OriginalURL: "https://example.com"}))

	rec := env.do(req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateLink_FreeTierCustomCode(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/links",
		jsonBody(t, model.CreateLinkRequest{OriginalURL: "https://example.com", CustomCode: "vanity"}))
	req.Header.Set("Authorization", "Bearer "+env.token(t, &model.User{ID: 1, Tier: model.TierFree}))

	rec := env.do(req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateLink_MissingURL(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/links", jsonBody(t, map[string]string{}))
	req.Header.Set("Authorization", "Bearer "+env.token(t, &model.User{ID: 1, Tier: model.TierFree}))

	rec := env.do(req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	var created *model.User
	env.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user *model.User) error {
			user.ID = 1
			created = user
			return nil
		})

	rec := env.do(httptest.NewRequest(http.MethodPost, "/api/auth/register",
		jsonBody(t, model.RegisterRequest{Email: "alice@example.com", Password: "password123"})))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.NotNil(t, created)
	assert.Equal(t, model.TierFree, created.Tier)

	env.users.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(created, nil)

	rec = env.do(httptest.NewRequest(http.MethodPost, "/api/auth/login",
		jsonBody(t, model.LoginRequest{Email: "alice@example.com", Password: "password123"})))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var token model.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &token))
	principal, err := env.auth.ValidateToken(token.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), principal.UserID)
}

func TestRegister_InvalidEmail(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(httptest.NewRequest(http.MethodPost, "/api/auth/register",
		jsonBody(t, model.RegisterRequest{Email: "not-an-email", Password: "password123"})))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLinkAnalytics_BadDaysParam(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/links/5/analytics?days=soon", nil)
	req.Header.Set("Authorization", "Bearer "+env.token(t, &model.User{ID: 1, Tier: model.TierPro}))

	rec := env.do(req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminStats(t *testing.T) {
	env := newTestEnv(t)

	env.links.EXPECT().CountLinks(gomock.Any()).Return(12, nil)
	env.users.EXPECT().CountUsers(gomock.Any()).Return(4, nil)
	env.analytics.EXPECT().CountEvents(gomock.Any()).Return(int64(340), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+env.token(t, &model.User{ID: 9, Tier: model.TierFree, IsAdmin: true}))

	rec := env.do(req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var stats model.SystemStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, model.SystemStats{Links: 12, Users: 4, Clicks: 340}, stats)
}

func TestAdminStats_Forbidden(t *testing.T) {
	// Обычный пользователь отсекается мидлваром, сервис не вызывается
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+env.token(t, &model.User{ID: 1, Tier: model.TierPremium}))

	rec := env.do(req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateDomain(t *testing.T) {
	env := newTestEnv(t)

	env.domains.EXPECT().SaveDomain(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d *model.CustomDomain) error {
			d.ID = 3
			return nil
		})

	req := httptest.NewRequest(http.MethodPost, "/api/domains",
		jsonBody(t, model.CreateDomainRequest{Domain: "go.example.org"}))
	req.Header.Set("Authorization", "Bearer "+env.token(t, &model.User{ID: 1, Tier: model.TierPremium}))

	rec := env.do(req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp model.DomainResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "go.example.org", resp.Domain)
	assert.NotEmpty(t, resp.VerificationToken)
	assert.False(t, resp.IsVerified)
}

func TestCreateDomain_ProTierRejected(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/domains",
		jsonBody(t, model.CreateDomainRequest{Domain: "go.example.org"}))
	req.Header.Set("Authorization", "Bearer "+env.token(t, &model.User{ID: 1, Tier: model.TierPro}))

	rec := env.do(req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPing(t *testing.T) {
	env := newTestEnv(t)

	env.links.EXPECT().Ping(gomock.Any()).Return(nil)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPing_DatabaseDown(t *testing.T) {
	env := newTestEnv(t)

	env.links.EXPECT().Ping(gomock.Any()).Return(assert.AnError)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
