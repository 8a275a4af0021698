package partners

import (
	"context"
	"errors"
	"testing"

	"github.com/richxcame/partner-showcase/pkg/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is an in-package mock for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetPartners(ctx context.Context) ([]*Partner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Partner), args.Error(1)
}

func (m *MockRepository) GetPartnerByID(ctx context.Context, id string) (*Partner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Partner), args.Error(1)
}

func boolPtr(v bool) *bool { return &v }

func newTestService(repo *MockRepository) *Service {
	return NewService(repo, NewMediaResolver("https://api.example.com/api"))
}

func TestService_ListPartners_SortsByPriority(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetPartners", mock.Anything).Return([]*Partner{
		{PartnerID: "c", Priority: 3},
		{PartnerID: "a1", Priority: 1},
		{PartnerID: "b", Priority: 2, Active: boolPtr(false)},
		{PartnerID: "a2", Priority: 1},
	}, nil)

	partners, err := newTestService(repo).ListPartners(context.Background(), false)
	require.NoError(t, err)

	ids := make([]string, len(partners))
	for i, p := range partners {
		ids[i] = p.Identifier()
	}
	assert.Equal(t, []string{"a1", "a2", "b", "c"}, ids)
	repo.AssertExpectations(t)
}

func TestService_ListPartners_ActiveOnly(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetPartners", mock.Anything).Return([]*Partner{
		{PartnerID: "on", Active: boolPtr(true)},
		{PartnerID: "off", Active: boolPtr(false)},
		{PartnerID: "unset"},
	}, nil)

	partners, err := newTestService(repo).ListPartners(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, partners, 2)
	assert.Equal(t, "on", partners[0].Identifier())
	assert.Equal(t, "unset", partners[1].Identifier())
}

func TestService_ListPartners_Error(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetPartners", mock.Anything).Return(nil, errors.New("connection refused"))

	partners, err := newTestService(repo).ListPartners(context.Background(), false)
	assert.Error(t, err)
	assert.Nil(t, partners)
}

func TestService_GetPartner(t *testing.T) {
	repo := new(MockRepository)
	want := &Partner{PartnerID: "p1"}
	repo.On("GetPartnerByID", mock.Anything, "p1").Return(want, nil)

	got, err := newTestService(repo).GetPartner(context.Background(), " p1 ")
	require.NoError(t, err)
	assert.Same(t, want, got)
	repo.AssertExpectations(t)
}

func TestService_GetPartner_EmptyID(t *testing.T) {
	repo := new(MockRepository)

	_, err := newTestService(repo).GetPartner(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrPartnerNotFound)
	repo.AssertNotCalled(t, "GetPartnerByID", mock.Anything, mock.Anything)
}

func TestService_GetPartner_PropagatesErrors(t *testing.T) {
	transport := errors.New("dial tcp: connection refused")

	repo := new(MockRepository)
	repo.On("GetPartnerByID", mock.Anything, "gone").Return(nil, ErrPartnerNotFound)
	repo.On("GetPartnerByID", mock.Anything, "p1").Return(nil, transport)
	svc := newTestService(repo)

	_, err := svc.GetPartner(context.Background(), "gone")
	assert.ErrorIs(t, err, ErrPartnerNotFound)

	_, err = svc.GetPartner(context.Background(), "p1")
	assert.ErrorIs(t, err, transport)
	assert.True(t, IsTransportFailure(err))
}

func TestService_GetPartnerDetail(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetPartnerByID", mock.Anything, "p1").Return(&Partner{
		PartnerID: "p1",
		Name:      i18n.Text{EN: "Acme", FR: "Acmé"},
		Logo:      "media/acme.png",
	}, nil)

	p, view, err := newTestService(repo).GetPartnerDetail(context.Background(), "p1", i18n.French)
	require.NoError(t, err)
	assert.Equal(t, "p1", p.PartnerID)
	assert.Equal(t, "Acmé", view.Name)
	assert.Equal(t, "https://api.example.com/media/acme.png", view.LogoURL)
}
