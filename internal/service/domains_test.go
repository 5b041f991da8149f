package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/MoodinAhmed1/classicet/internal/auth"
	"github.com/MoodinAhmed1/classicet/internal/mocks"
	"github.com/MoodinAhmed1/classicet/internal/model"
	"github.com/MoodinAhmed1/classicet/internal/repositories"
	"github.com/MoodinAhmed1/classicet/internal/service"
)

func newDomainService(t *testing.T) (*service.DomainService, *mocks.MockDomainRepositoryInterface) {
	ctrl := gomock.NewController(t)
	domains := mocks.NewMockDomainRepositoryInterface(ctrl)
	svc := service.NewDomainService(domains, zap.NewNop())
	return svc, domains
}

func premiumPrincipal() *auth.Principal {
	return &auth.Principal{UserID: 1, Tier: model.TierPremium}
}

func TestCreateDomain(t *testing.T) {
	svc, domains := newDomainService(t)

	domains.EXPECT().SaveDomain(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d *model.CustomDomain) error {
			d.ID = 3
			return nil
		})

	d, err := svc.CreateDomain(context.Background(), premiumPrincipal(), " Go.Example.ORG ")
	require.NoError(t, err)
	assert.Equal(t, "go.example.org", d.Domain)
	assert.NotEmpty(t, d.VerificationToken)
	assert.False(t, d.IsVerified)
}

func TestCreateDomain_RequiresPremium(t *testing.T) {
	// Тарифный отказ — до единственного обращения к хранилищу
	svc, _ := newDomainService(t)

	for _, p := range []*auth.Principal{freePrincipal(), proPrincipal()} {
		_, err := svc.CreateDomain(context.Background(), p, "go.example.org")
		assert.ErrorIs(t, err, service.ErrForbidden, "tier %s", p.Tier)
	}
}

func TestCreateDomain_Duplicate(t *testing.T) {
	svc, domains := newDomainService(t)

	domains.EXPECT().SaveDomain(gomock.Any(), gomock.Any()).Return(repositories.ErrUniqueViolation)

	_, err := svc.CreateDomain(context.Background(), premiumPrincipal(), "go.example.org")
	assert.ErrorIs(t, err, service.ErrConflict)
}

func TestVerifyDomain(t *testing.T) {
	svc, domains := newDomainService(t)

	domains.EXPECT().GetByID(gomock.Any(), int64(3)).
		Return(&model.CustomDomain{ID: 3, UserID: 1, Domain: "go.example.org"}, nil)
	domains.EXPECT().MarkVerified(gomock.Any(), int64(3)).Return(nil)

	d, err := svc.VerifyDomain(context.Background(), premiumPrincipal(), 3)
	require.NoError(t, err)
	assert.True(t, d.IsVerified)
}

func TestVerifyDomain_Foreign(t *testing.T) {
	svc, domains := newDomainService(t)

	domains.EXPECT().GetByID(gomock.Any(), int64(3)).
		Return(&model.CustomDomain{ID: 3, UserID: 99}, nil)

	_, err := svc.VerifyDomain(context.Background(), premiumPrincipal(), 3)
	assert.ErrorIs(t, err, service.ErrForbidden)
}

func TestDeleteDomain(t *testing.T) {
	svc, domains := newDomainService(t)

	domains.EXPECT().GetByID(gomock.Any(), int64(3)).
		Return(&model.CustomDomain{ID: 3, UserID: 1}, nil)
	domains.EXPECT().DeleteDomain(gomock.Any(), int64(3)).Return(nil)

	require.NoError(t, svc.DeleteDomain(context.Background(), premiumPrincipal(), 3))
}

func TestDeleteDomain_NotFound(t *testing.T) {
	svc, domains := newDomainService(t)

	domains.EXPECT().GetByID(gomock.Any(), int64(3)).Return(nil, repositories.ErrNotFound)

	err := svc.DeleteDomain(context.Background(), premiumPrincipal(), 3)
	assert.ErrorIs(t, err, service.ErrNotFound)
}
