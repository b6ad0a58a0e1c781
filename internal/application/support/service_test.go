package support

import (
	"context"
	"errors"
	"testing"

	"github.com/amanpandey8120/vlocker-app/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSupportStore struct{ mock.Mock }

func (m *mockSupportStore) Create(ctx context.Context, s *domain.CompanySupport) error {
	return m.Called(ctx, s).Error(0)
}
func (m *mockSupportStore) Get(ctx context.Context) (*domain.CompanySupport, error) {
	args := m.Called(ctx)
	if s, _ := args.Get(0).(*domain.CompanySupport); s != nil {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockSupportStore) Update(ctx context.Context, supportID string, updates map[string]interface{}) (*domain.CompanySupport, error) {
	args := m.Called(ctx, supportID, updates)
	if s, _ := args.Get(0).(*domain.CompanySupport); s != nil {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestCreate_UsesFixedKey(t *testing.T) {
	ss := &mockSupportStore{}
	ss.On("Create", mock.Anything, mock.AnythingOfType("*domain.CompanySupport")).Return(nil)

	svc := NewService(ss)
	rec, err := svc.Create(context.Background(), domain.CreateSupportRequest{
		Phone: "1800123456",
		Email: "help@vlocker.example",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.SupportDocKey, rec.SupportID)
	ss.AssertExpectations(t)
}

func TestCreate_SecondCreate_Conflict(t *testing.T) {
	ss := &mockSupportStore{}
	ss.On("Create", mock.Anything, mock.Anything).Return(domain.ErrConflict)

	svc := NewService(ss)
	_, err := svc.Create(context.Background(), domain.CreateSupportRequest{
		Phone: "1800123456",
		Email: "help@vlocker.example",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConflict))
}

func TestGet_Empty_NotFound(t *testing.T) {
	ss := &mockSupportStore{}
	ss.On("Get", mock.Anything).Return(nil, domain.ErrNotFound)

	svc := NewService(ss)
	_, err := svc.Get(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestUpdate_AllowList(t *testing.T) {
	ss := &mockSupportStore{}
	phone := "1800987654"
	ss.On("Update", mock.Anything, domain.SupportDocKey, map[string]interface{}{
		fieldPhone: phone,
	}).Return(&domain.CompanySupport{SupportID: domain.SupportDocKey, Phone: phone}, nil)

	svc := NewService(ss)
	got, err := svc.Update(context.Background(), domain.UpdateSupportRequest{Phone: &phone})

	require.NoError(t, err)
	assert.Equal(t, phone, got.Phone)
	ss.AssertExpectations(t)
}

func TestUpdate_EmptyPatch_ReturnsExisting(t *testing.T) {
	ss := &mockSupportStore{}
	existing := &domain.CompanySupport{SupportID: domain.SupportDocKey}
	ss.On("Get", mock.Anything).Return(existing, nil)

	svc := NewService(ss)
	got, err := svc.Update(context.Background(), domain.UpdateSupportRequest{})

	require.NoError(t, err)
	assert.Equal(t, existing, got)
	ss.AssertNotCalled(t, "Update")
}
