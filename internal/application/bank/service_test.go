package bank

import (
	"context"
	"errors"
	"testing"

	"github.com/amanpandey8120/vlocker-app/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockBankStore struct{ mock.Mock }

func (m *mockBankStore) Put(ctx context.Context, b *domain.Bank) error {
	return m.Called(ctx, b).Error(0)
}
func (m *mockBankStore) GetOwned(ctx context.Context, bankID, owner string) (*domain.Bank, error) {
	args := m.Called(ctx, bankID, owner)
	if b, _ := args.Get(0).(*domain.Bank); b != nil {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockBankStore) ListByCustomer(ctx context.Context, customerID, owner string) ([]domain.Bank, error) {
	args := m.Called(ctx, customerID, owner)
	return args.Get(0).([]domain.Bank), args.Error(1)
}
func (m *mockBankStore) Update(ctx context.Context, bankID, owner string, updates map[string]interface{}) (*domain.Bank, error) {
	args := m.Called(ctx, bankID, owner, updates)
	if b, _ := args.Get(0).(*domain.Bank); b != nil {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockBankStore) Delete(ctx context.Context, bankID, owner string) error {
	return m.Called(ctx, bankID, owner).Error(0)
}

type mockCustomerStore struct{ mock.Mock }

func (m *mockCustomerStore) GetOwned(ctx context.Context, customerID, owner string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID, owner)
	if c, _ := args.Get(0).(*domain.Customer); c != nil {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func createReq() domain.CreateBankRequest {
	return domain.CreateBankRequest{
		BankName:          "HDFC",
		AccountNumber:     "50100123456789",
		AccountHolderName: "Asha Patel",
		IFSCCode:          "HDFC0001234",
	}
}

func TestCreate_HappyPath(t *testing.T) {
	bs := &mockBankStore{}
	cs := &mockCustomerStore{}
	cs.On("GetOwned", mock.Anything, "C1", "U1").Return(&domain.Customer{CustomerID: "C1"}, nil)
	bs.On("Put", mock.Anything, mock.AnythingOfType("*domain.Bank")).Return(nil)

	svc := NewService(bs, cs)
	b, err := svc.Create(context.Background(), "C1", "U1", createReq())

	require.NoError(t, err)
	assert.NotEmpty(t, b.BankID)
	assert.Equal(t, "C1", b.CustomerID)
	assert.Equal(t, "U1", b.CreatedBy)
	bs.AssertExpectations(t)
}

func TestCreate_ForeignCustomer_NotFound(t *testing.T) {
	bs := &mockBankStore{}
	cs := &mockCustomerStore{}
	cs.On("GetOwned", mock.Anything, "C1", "U2").Return(nil, domain.ErrNotFound)

	svc := NewService(bs, cs)
	_, err := svc.Create(context.Background(), "C1", "U2", createReq())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	bs.AssertNotCalled(t, "Put")
}

func TestListByCustomer_ChecksParentOwnership(t *testing.T) {
	bs := &mockBankStore{}
	cs := &mockCustomerStore{}
	cs.On("GetOwned", mock.Anything, "C1", "U2").Return(nil, domain.ErrNotFound)

	svc := NewService(bs, cs)
	_, _, err := svc.ListByCustomer(context.Background(), "C1", "U2", 1, 10)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	bs.AssertNotCalled(t, "ListByCustomer")
}

func TestUpdate_AllowList(t *testing.T) {
	bs := &mockBankStore{}
	ifsc := "ICIC0004321"
	bs.On("Update", mock.Anything, "B1", "U1", map[string]interface{}{
		fieldIFSCCode: ifsc,
	}).Return(&domain.Bank{BankID: "B1", IFSCCode: ifsc}, nil)

	svc := NewService(bs, &mockCustomerStore{})
	got, err := svc.Update(context.Background(), "B1", "U1", domain.UpdateBankRequest{IFSCCode: &ifsc})

	require.NoError(t, err)
	assert.Equal(t, ifsc, got.IFSCCode)
	bs.AssertExpectations(t)
}

func TestDelete_ForeignBank_NotFound(t *testing.T) {
	bs := &mockBankStore{}
	bs.On("Delete", mock.Anything, "B1", "U2").Return(domain.ErrNotFound)

	svc := NewService(bs, &mockCustomerStore{})
	err := svc.Delete(context.Background(), "B1", "U2")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
