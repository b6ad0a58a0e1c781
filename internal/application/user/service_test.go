package user

import (
	"context"
	"errors"
	"testing"

	"github.com/amanpandey8120/vlocker-app/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) Put(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}
func (m *mockUserStore) Get(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserStore) ListAll(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *mockUserStore) Update(ctx context.Context, userID string, updates map[string]interface{}) (*domain.User, error) {
	args := m.Called(ctx, userID, updates)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestCompleteProfile_FirstLogin_CreatesRecord(t *testing.T) {
	us := &mockUserStore{}
	us.On("Get", mock.Anything, "U1").Return(nil, domain.ErrNotFound)
	us.On("Put", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	svc := NewService(us)
	u, err := svc.CompleteProfile(context.Background(), "U1", "+919999999999", domain.CompleteProfileRequest{
		Name:  "Asha",
		Email: "asha@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "U1", u.UserID)
	assert.Equal(t, domain.RoleUser, u.Role)
	assert.True(t, u.IsProfileCompleted)
	assert.Equal(t, "+919999999999", u.Phone)
	us.AssertExpectations(t)
}

func TestCompleteProfile_ExistingRecord_Updates(t *testing.T) {
	us := &mockUserStore{}
	us.On("Get", mock.Anything, "U1").Return(&domain.User{UserID: "U1"}, nil)
	us.On("Update", mock.Anything, "U1", map[string]interface{}{
		fieldName:               "Asha",
		fieldEmail:              "asha@example.com",
		fieldIsProfileCompleted: true,
	}).Return(&domain.User{UserID: "U1", Name: "Asha", IsProfileCompleted: true}, nil)

	svc := NewService(us)
	u, err := svc.CompleteProfile(context.Background(), "U1", "", domain.CompleteProfileRequest{
		Name:  "Asha",
		Email: "asha@example.com",
	})

	require.NoError(t, err)
	assert.True(t, u.IsProfileCompleted)
	us.AssertNotCalled(t, "Put")
}

func TestList_Paginates(t *testing.T) {
	us := &mockUserStore{}
	us.On("ListAll", mock.Anything).Return([]domain.User{
		{UserID: "U1"}, {UserID: "U2"}, {UserID: "U3"},
	}, nil)

	svc := NewService(us)
	users, total, err := svc.List(context.Background(), 1, 2)

	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, users, 2)
}

func TestUpdateProfile_EmptyPatch_ReturnsExisting(t *testing.T) {
	us := &mockUserStore{}
	existing := &domain.User{UserID: "U1"}
	us.On("Get", mock.Anything, "U1").Return(existing, nil)

	svc := NewService(us)
	got, err := svc.UpdateProfile(context.Background(), "U1", domain.UpdateProfileRequest{})

	require.NoError(t, err)
	assert.Equal(t, existing, got)
	us.AssertNotCalled(t, "Update")
}

func TestGet_NotFound(t *testing.T) {
	us := &mockUserStore{}
	us.On("Get", mock.Anything, "U9").Return(nil, domain.ErrNotFound)

	svc := NewService(us)
	_, err := svc.Get(context.Background(), "U9")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
