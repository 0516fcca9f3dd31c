package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/crescoflow/crescoflow-core/internal/entity"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Put(ctx context.Context, account string, lead *entity.Lead) error {
	args := m.Called(ctx, account, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) Get(ctx context.Context, account, id string) (*entity.Lead, error) {
	args := m.Called(ctx, account, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) GetAll(ctx context.Context, account string) ([]entity.Lead, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindByVAT(ctx context.Context, account, vat string) (*entity.Lead, error) {
	args := m.Called(ctx, account, vat)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindByWebsite(ctx context.Context, account, website string) (*entity.Lead, error) {
	args := m.Called(ctx, account, website)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindByEmail(ctx context.Context, account, email string) (*entity.Lead, error) {
	args := m.Called(ctx, account, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func TestDedup_VATMatchWins(t *testing.T) {
	repo := new(MockLeadRepository)
	checker := NewDedupChecker(repo)

	existing := &entity.Lead{ID: "bestaand", VATNumber: "BE0123456789"}
	repo.On("FindByVAT", mock.Anything, "user@crescoflow.be", "BE0123456789").Return(existing, nil)

	candidate := &entity.Lead{
		ID:           "nieuw",
		VATNumber:    "BE0123456789",
		Website:      "https://anders.be",
		EmailCompany: "anders@anders.be",
	}
	dup, err := checker.IsDuplicate(context.Background(), "user@crescoflow.be", candidate)

	assert.NoError(t, err)
	assert.True(t, dup)
	// Weaker signals are never consulted once the VAT matches.
	repo.AssertNotCalled(t, "FindByWebsite", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything, mock.Anything)
}

func TestDedup_FallsThroughToWebsite(t *testing.T) {
	repo := new(MockLeadRepository)
	checker := NewDedupChecker(repo)

	repo.On("FindByVAT", mock.Anything, "user@crescoflow.be", "BE0123456789").Return(nil, entity.ErrNotFound)
	repo.On("FindByWebsite", mock.Anything, "user@crescoflow.be", "https://site.be").
		Return(&entity.Lead{ID: "bestaand"}, nil)

	candidate := &entity.Lead{ID: "nieuw", VATNumber: "BE0123456789", Website: "https://site.be"}
	dup, err := checker.IsDuplicate(context.Background(), "user@crescoflow.be", candidate)

	assert.NoError(t, err)
	assert.True(t, dup)
}

func TestDedup_PlaceholderEmailSkipped(t *testing.T) {
	repo := new(MockLeadRepository)
	checker := NewDedupChecker(repo)

	candidate := &entity.Lead{ID: "nieuw", EmailCompany: "onbekend"}
	dup, err := checker.IsDuplicate(context.Background(), "user@crescoflow.be", candidate)

	assert.NoError(t, err)
	assert.False(t, dup)
	repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything, mock.Anything)
}

func TestDedup_EmailMatch(t *testing.T) {
	repo := new(MockLeadRepository)
	checker := NewDedupChecker(repo)

	repo.On("FindByEmail", mock.Anything, "user@crescoflow.be", "info@bedrijf.be").
		Return(&entity.Lead{ID: "bestaand"}, nil)

	candidate := &entity.Lead{ID: "nieuw", EmailCompany: "info@bedrijf.be"}
	dup, err := checker.IsDuplicate(context.Background(), "user@crescoflow.be", candidate)

	assert.NoError(t, err)
	assert.True(t, dup)
}

func TestDedup_NoSignalsAlwaysAccepted(t *testing.T) {
	repo := new(MockLeadRepository)
	checker := NewDedupChecker(repo)

	candidate := &entity.Lead{ID: "nieuw", CompanyName: "Naamloos"}
	dup, err := checker.IsDuplicate(context.Background(), "user@crescoflow.be", candidate)

	assert.NoError(t, err)
	assert.False(t, dup)
	repo.AssertNotCalled(t, "FindByVAT", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "FindByWebsite", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything, mock.Anything)
}

func TestDedup_StorageErrorPropagates(t *testing.T) {
	repo := new(MockLeadRepository)
	checker := NewDedupChecker(repo)

	repo.On("FindByVAT", mock.Anything, "user@crescoflow.be", "BE0123456789").
		Return(nil, entity.ErrStorageUnavailable)

	candidate := &entity.Lead{ID: "nieuw", VATNumber: "BE0123456789"}
	_, err := checker.IsDuplicate(context.Background(), "user@crescoflow.be", candidate)

	assert.ErrorIs(t, err, entity.ErrStorageUnavailable)
}
