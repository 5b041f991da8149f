package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/MoodinAhmed1/classicet/internal/auth"
	"github.com/MoodinAhmed1/classicet/internal/mocks"
	"github.com/MoodinAhmed1/classicet/internal/model"
	"github.com/MoodinAhmed1/classicet/internal/repositories"
	"github.com/MoodinAhmed1/classicet/internal/service"
	"github.com/MoodinAhmed1/classicet/internal/shortcode"
)

func newLinkService(t *testing.T) (*service.LinkService, *mocks.MockLinkRepositoryInterface) {
	ctrl := gomock.NewController(t)
	links := mocks.NewMockLinkRepositoryInterface(ctrl)
	svc := service.NewLinkService(links, zap.NewNop(), "https://sho.rt", false)
	return svc, links
}

func freePrincipal() *auth.Principal {
	return &auth.Principal{UserID: 1, Tier: model.TierFree}
}

func proPrincipal() *auth.Principal {
	return &auth.Principal{UserID: 1, Tier: model.TierPro}
}

func TestCreateLink_GeneratedCode(t *testing.T) {
	svc, links := newLinkService(t)

	links.EXPECT().ShortCodeExists(gomock.Any(), gomock.Any()).Return(false, nil)
	links.EXPECT().SaveLink(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, link *model.Link) error {
			link.ID = 10
			return nil
		})

	link, err := svc.CreateLink(context.Background(), freePrincipal(), model.CreateLinkRequest{
		OriginalURL: "https://example.com/page",
	})
	require.NoError(t, err)
	assert.Len(t, link.ShortCode, shortcode.Length)
	assert.Equal(t, int64(1), link.UserID)
	assert.True(t, link.IsActive)
	assert.Nil(t, link.ExpiresAt)
}

func TestCreateLink_CustomCodeRequiresPaidPlan(t *testing.T) {
	// Ни одного обращения к хранилищу: тарифный отказ происходит раньше
	svc, _ := newLinkService(t)

	_, err := svc.CreateLink(context.Background(), freePrincipal(), model.CreateLinkRequest{
		OriginalURL: "https://example.com",
		CustomCode:  "mycode",
	})
	assert.ErrorIs(t, err, service.ErrForbidden)
}

func TestCreateLink_CustomCode(t *testing.T) {
	svc, links := newLinkService(t)

	links.EXPECT().ShortCodeExists(gomock.Any(), "mycode").Return(false, nil)
	links.EXPECT().SaveLink(gomock.Any(), gomock.Any()).Return(nil)

	link, err := svc.CreateLink(context.Background(), proPrincipal(), model.CreateLinkRequest{
		OriginalURL: "https://example.com",
		CustomCode:  "mycode",
	})
	require.NoError(t, err)
	assert.Equal(t, "mycode", link.ShortCode)
}

func TestCreateLink_CustomCodeTaken(t *testing.T) {
	// Занятый пользовательский код — конфликт, а не перегенерация
	svc, links := newLinkService(t)

	links.EXPECT().ShortCodeExists(gomock.Any(), "mycode").Return(true, nil)

	_, err := svc.CreateLink(context.Background(), proPrincipal(), model.CreateLinkRequest{
		OriginalURL: "https://example.com",
		CustomCode:  "mycode",
	})
	assert.ErrorIs(t, err, service.ErrConflict)
}

func TestCreateLink_CustomCodeRace(t *testing.T) {
	// Код заняли между проверкой и вставкой: тоже конфликт
	svc, links := newLinkService(t)

	links.EXPECT().ShortCodeExists(gomock.Any(), "mycode").Return(false, nil)
	links.EXPECT().SaveLink(gomock.Any(), gomock.Any()).Return(repositories.ErrUniqueViolation)

	_, err := svc.CreateLink(context.Background(), proPrincipal(), model.CreateLinkRequest{
		OriginalURL: "https://example.com",
		CustomCode:  "mycode",
	})
	assert.ErrorIs(t, err, service.ErrConflict)
}

func TestCreateLink_GeneratedCodeCollisionRetry(t *testing.T) {
	// Первая вставка упирается в уникальное ограничение, вторая проходит
	svc, links := newLinkService(t)

	links.EXPECT().ShortCodeExists(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
	gomock.InOrder(
		links.EXPECT().SaveLink(gomock.Any(), gomock.Any()).Return(repositories.ErrUniqueViolation),
		links.EXPECT().SaveLink(gomock.Any(), gomock.Any()).Return(nil),
	)

	link, err := svc.CreateLink(context.Background(), freePrincipal(), model.CreateLinkRequest{
		OriginalURL: "https://example.com",
	})
	require.NoError(t, err)
	assert.Len(t, link.ShortCode, shortcode.Length)
}

func TestCreateLink_GeneratedCodeExhaustion(t *testing.T) {
	// Все попытки заняты — вставка не выполняется ни разу
	svc, links := newLinkService(t)

	links.EXPECT().ShortCodeExists(gomock.Any(), gomock.Any()).
		Return(true, nil).Times(shortcode.MaxAttempts)

	_, err := svc.CreateLink(context.Background(), freePrincipal(), model.CreateLinkRequest{
		OriginalURL: "https://example.com",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrConflict)
}

func TestCreateLink_InvalidURL(t *testing.T) {
	svc, _ := newLinkService(t)

	for _, raw := range []string{"", "not-a-url", "ftp://example.com/file", "//missing-scheme"} {
		_, err := svc.CreateLink(context.Background(), freePrincipal(), model.CreateLinkRequest{
			OriginalURL: raw,
		})
		assert.ErrorIs(t, err, service.ErrValidation, "url %q", raw)
	}
}

func TestCreateLink_ExpiresAtInPast(t *testing.T) {
	svc, _ := newLinkService(t)

	past := time.Now().Add(-time.Hour).Format(time.RFC3339)
	_, err := svc.CreateLink(context.Background(), freePrincipal(), model.CreateLinkRequest{
		OriginalURL: "https://example.com",
		ExpiresAt:   past,
	})
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestCreateLink_ExpiresAtMalformed(t *testing.T) {
	svc, _ := newLinkService(t)

	_, err := svc.CreateLink(context.Background(), freePrincipal(), model.CreateLinkRequest{
		OriginalURL: "https://example.com",
		ExpiresAt:   "tomorrow",
	})
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestGetLink_Ownership(t *testing.T) {
	svc, links := newLinkService(t)

	links.EXPECT().GetByID(gomock.Any(), int64(5)).
		Return(&model.Link{ID: 5, UserID: 99}, nil).Times(2)

	_, err := svc.GetLink(context.Background(), freePrincipal(), 5)
	assert.ErrorIs(t, err, service.ErrForbidden)

	// Администратор видит чужие ссылки
	admin := &auth.Principal{UserID: 1, Tier: model.TierFree, IsAdmin: true}
	link, err := svc.GetLink(context.Background(), admin, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), link.ID)
}

func TestGetLink_NotFound(t *testing.T) {
	svc, links := newLinkService(t)

	links.EXPECT().GetByID(gomock.Any(), int64(5)).Return(nil, repositories.ErrNotFound)

	_, err := svc.GetLink(context.Background(), freePrincipal(), 5)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestUpdateLink_PartialFields(t *testing.T) {
	svc, links := newLinkService(t)

	links.EXPECT().GetByID(gomock.Any(), int64(5)).
		Return(&model.Link{ID: 5, UserID: 1, Title: "old", Description: "keep", IsActive: true}, nil)

	var saved *model.Link
	links.EXPECT().UpdateLink(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, link *model.Link) error {
			saved = link
			return nil
		})

	title := "new title"
	inactive := false
	link, err := svc.UpdateLink(context.Background(), freePrincipal(), 5, model.UpdateLinkRequest{
		Title:    &title,
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "new title", link.Title)
	assert.Equal(t, "keep", link.Description)
	assert.False(t, link.IsActive)
	assert.Equal(t, link, saved)
}

func TestUpdateLink_ClearExpiry(t *testing.T) {
	svc, links := newLinkService(t)

	exp := time.Now().Add(time.Hour)
	links.EXPECT().GetByID(gomock.Any(), int64(5)).
		Return(&model.Link{ID: 5, UserID: 1, ExpiresAt: &exp}, nil)
	links.EXPECT().UpdateLink(gomock.Any(), gomock.Any()).Return(nil)

	empty := ""
	link, err := svc.UpdateLink(context.Background(), freePrincipal(), 5, model.UpdateLinkRequest{
		ExpiresAt: &empty,
	})
	require.NoError(t, err)
	assert.Nil(t, link.ExpiresAt)
}

func TestDeleteLink(t *testing.T) {
	svc, links := newLinkService(t)

	links.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&model.Link{ID: 5, UserID: 1}, nil)
	links.EXPECT().Deactivate(gomock.Any(), int64(5)).Return(nil)

	require.NoError(t, svc.DeleteLink(context.Background(), freePrincipal(), 5))
}

func TestDeleteLink_Foreign(t *testing.T) {
	svc, links := newLinkService(t)

	links.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&model.Link{ID: 5, UserID: 99}, nil)

	err := svc.DeleteLink(context.Background(), freePrincipal(), 5)
	assert.ErrorIs(t, err, service.ErrForbidden)
}

func TestShortURL(t *testing.T) {
	svc, _ := newLinkService(t)

	assert.Equal(t, "https://sho.rt/abc123",
		svc.ShortURL(&model.Link{ShortCode: "abc123"}))
	assert.Equal(t, "https://go.example.org/abc123",
		svc.ShortURL(&model.Link{ShortCode: "abc123", CustomDomain: "go.example.org"}))
}

func TestCreateLink_StorageError(t *testing.T) {
	svc, links := newLinkService(t)

	dbErr := errors.New("connection reset")
	links.EXPECT().ShortCodeExists(gomock.Any(), gomock.Any()).Return(false, dbErr)

	_, err := svc.CreateLink(context.Background(), freePrincipal(), model.CreateLinkRequest{
		OriginalURL: "https://example.com",
	})
	assert.ErrorIs(t, err, dbErr)
}
