package address

import (
	"context"
	"errors"
	"testing"

	"github.com/amanpandey8120/vlocker-app/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAddressStore struct{ mock.Mock }

func (m *mockAddressStore) Put(ctx context.Context, a *domain.Address) error {
	return m.Called(ctx, a).Error(0)
}
func (m *mockAddressStore) GetOwned(ctx context.Context, addressID, owner string) (*domain.Address, error) {
	args := m.Called(ctx, addressID, owner)
	if a, _ := args.Get(0).(*domain.Address); a != nil {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockAddressStore) ListByOwner(ctx context.Context, owner string) ([]domain.Address, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).([]domain.Address), args.Error(1)
}
func (m *mockAddressStore) Update(ctx context.Context, addressID, owner string, updates map[string]interface{}) (*domain.Address, error) {
	args := m.Called(ctx, addressID, owner, updates)
	if a, _ := args.Get(0).(*domain.Address); a != nil {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockAddressStore) Delete(ctx context.Context, addressID, owner string) error {
	return m.Called(ctx, addressID, owner).Error(0)
}

type mockCustomerStore struct{ mock.Mock }

func (m *mockCustomerStore) GetOwned(ctx context.Context, customerID, owner string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID, owner)
	if c, _ := args.Get(0).(*domain.Customer); c != nil {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func createReq() domain.CreateAddressRequest {
	return domain.CreateAddressRequest{
		AddressLine: "12 MG Road",
		City:        "Pune",
		State:       "Maharashtra",
		Pincode:     "411001",
	}
}

func TestCreate_HappyPath(t *testing.T) {
	as := &mockAddressStore{}
	cs := &mockCustomerStore{}
	cs.On("GetOwned", mock.Anything, "C1", "U1").Return(&domain.Customer{CustomerID: "C1"}, nil)
	as.On("Put", mock.Anything, mock.AnythingOfType("*domain.Address")).Return(nil)

	svc := NewService(as, cs)
	a, err := svc.Create(context.Background(), "C1", "U1", createReq())

	require.NoError(t, err)
	assert.NotEmpty(t, a.AddressID)
	assert.Equal(t, "C1", a.CustomerID)
	assert.Equal(t, "U1", a.CreatedBy)
	as.AssertExpectations(t)
}

func TestCreate_ForeignCustomer_NotFound(t *testing.T) {
	as := &mockAddressStore{}
	cs := &mockCustomerStore{}
	cs.On("GetOwned", mock.Anything, "C1", "U2").Return(nil, domain.ErrNotFound)

	svc := NewService(as, cs)
	_, err := svc.Create(context.Background(), "C1", "U2", createReq())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	as.AssertNotCalled(t, "Put")
}

func TestList_Paginates(t *testing.T) {
	as := &mockAddressStore{}
	as.On("ListByOwner", mock.Anything, "U1").Return([]domain.Address{
		{AddressID: "A1"}, {AddressID: "A2"}, {AddressID: "A3"},
	}, nil)

	svc := NewService(as, &mockCustomerStore{})
	items, total, err := svc.List(context.Background(), "U1", 2, 2)

	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, items, 1)
	assert.Equal(t, "A3", items[0].AddressID)
}

func TestUpdate_AllowList(t *testing.T) {
	as := &mockAddressStore{}
	city := "Mumbai"
	as.On("Update", mock.Anything, "A1", "U1", map[string]interface{}{
		fieldCity: city,
	}).Return(&domain.Address{AddressID: "A1", City: city}, nil)

	svc := NewService(as, &mockCustomerStore{})
	got, err := svc.Update(context.Background(), "A1", "U1", domain.UpdateAddressRequest{City: &city})

	require.NoError(t, err)
	assert.Equal(t, city, got.City)
	as.AssertExpectations(t)
}

func TestDelete_ForeignAddress_NotFound(t *testing.T) {
	as := &mockAddressStore{}
	as.On("Delete", mock.Anything, "A1", "U2").Return(domain.ErrNotFound)

	svc := NewService(as, &mockCustomerStore{})
	err := svc.Delete(context.Background(), "A1", "U2")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
