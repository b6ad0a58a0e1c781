package loan

import (
	"context"
	"errors"
	"testing"

	"github.com/amanpandey8120/vlocker-app/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockLoanStore struct{ mock.Mock }

func (m *mockLoanStore) Put(ctx context.Context, l *domain.Loan) error {
	return m.Called(ctx, l).Error(0)
}
func (m *mockLoanStore) GetOwned(ctx context.Context, loanID, owner string) (*domain.Loan, error) {
	args := m.Called(ctx, loanID, owner)
	if l, _ := args.Get(0).(*domain.Loan); l != nil {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockLoanStore) ListByCustomer(ctx context.Context, customerID, owner string) ([]domain.Loan, error) {
	args := m.Called(ctx, customerID, owner)
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *mockLoanStore) Update(ctx context.Context, loanID, owner string, updates map[string]interface{}) (*domain.Loan, error) {
	args := m.Called(ctx, loanID, owner, updates)
	if l, _ := args.Get(0).(*domain.Loan); l != nil {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockLoanStore) Delete(ctx context.Context, loanID, owner, imei string) error {
	return m.Called(ctx, loanID, owner, imei).Error(0)
}

type mockCustomerStore struct{ mock.Mock }

func (m *mockCustomerStore) GetOwned(ctx context.Context, customerID, owner string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID, owner)
	if c, _ := args.Get(0).(*domain.Customer); c != nil {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func createReq() domain.CreateLoanRequest {
	return domain.CreateLoanRequest{
		IMEI:         "356938035643809",
		DeviceModel:  "Redmi Note 12",
		LoanAmount:   15000,
		DownPayment:  3000,
		TenureMonths: 6,
		EMIAmount:    2100,
	}
}

func TestCreate_HappyPath(t *testing.T) {
	ls := &mockLoanStore{}
	cs := &mockCustomerStore{}
	cs.On("GetOwned", mock.Anything, "C1", "U1").Return(&domain.Customer{CustomerID: "C1"}, nil)
	ls.On("Put", mock.Anything, mock.AnythingOfType("*domain.Loan")).Return(nil)

	svc := NewService(ls, cs)
	l, err := svc.Create(context.Background(), "C1", "U1", createReq())

	require.NoError(t, err)
	assert.NotEmpty(t, l.LoanID)
	assert.Equal(t, "C1", l.CustomerID)
	assert.Equal(t, "U1", l.CreatedBy)
	assert.Equal(t, "356938035643809", l.IMEI)
	ls.AssertExpectations(t)
	cs.AssertExpectations(t)
}

func TestCreate_ForeignCustomer_NotFound(t *testing.T) {
	ls := &mockLoanStore{}
	cs := &mockCustomerStore{}
	cs.On("GetOwned", mock.Anything, "C1", "U2").Return(nil, domain.ErrNotFound)

	svc := NewService(ls, cs)
	_, err := svc.Create(context.Background(), "C1", "U2", createReq())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	ls.AssertNotCalled(t, "Put")
}

func TestCreate_DuplicateIMEI_Conflict(t *testing.T) {
	ls := &mockLoanStore{}
	cs := &mockCustomerStore{}
	cs.On("GetOwned", mock.Anything, "C1", "U1").Return(&domain.Customer{CustomerID: "C1"}, nil)
	ls.On("Put", mock.Anything, mock.Anything).Return(domain.ErrConflict)

	svc := NewService(ls, cs)
	_, err := svc.Create(context.Background(), "C1", "U1", createReq())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConflict))
}

func TestListByCustomer_ChecksParentOwnership(t *testing.T) {
	ls := &mockLoanStore{}
	cs := &mockCustomerStore{}
	cs.On("GetOwned", mock.Anything, "C1", "U2").Return(nil, domain.ErrNotFound)

	svc := NewService(ls, cs)
	_, _, err := svc.ListByCustomer(context.Background(), "C1", "U2", 1, 10)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	ls.AssertNotCalled(t, "ListByCustomer")
}

func TestListByCustomer_Paginates(t *testing.T) {
	ls := &mockLoanStore{}
	cs := &mockCustomerStore{}
	cs.On("GetOwned", mock.Anything, "C1", "U1").Return(&domain.Customer{CustomerID: "C1"}, nil)
	all := []domain.Loan{{LoanID: "L1"}, {LoanID: "L2"}, {LoanID: "L3"}}
	ls.On("ListByCustomer", mock.Anything, "C1", "U1").Return(all, nil)

	svc := NewService(ls, cs)
	pageItems, total, err := svc.ListByCustomer(context.Background(), "C1", "U1", 2, 2)

	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, pageItems, 1)
	assert.Equal(t, "L3", pageItems[0].LoanID)
}

func TestUpdate_AllowListIgnoresIMEI(t *testing.T) {
	ls := &mockLoanStore{}
	model := "Pixel 7a"
	amount := 20000.0
	ls.On("Update", mock.Anything, "L1", "U1", map[string]interface{}{
		fieldDeviceModel: model,
		fieldLoanAmount:  amount,
	}).Return(&domain.Loan{LoanID: "L1", DeviceModel: model}, nil)

	svc := NewService(ls, &mockCustomerStore{})
	got, err := svc.Update(context.Background(), "L1", "U1", domain.UpdateLoanRequest{
		DeviceModel: &model,
		LoanAmount:  &amount,
	})

	require.NoError(t, err)
	assert.Equal(t, model, got.DeviceModel)
	ls.AssertExpectations(t)
}

func TestUpdate_EmptyPatch_ReturnsExisting(t *testing.T) {
	ls := &mockLoanStore{}
	existing := &domain.Loan{LoanID: "L1"}
	ls.On("GetOwned", mock.Anything, "L1", "U1").Return(existing, nil)

	svc := NewService(ls, &mockCustomerStore{})
	got, err := svc.Update(context.Background(), "L1", "U1", domain.UpdateLoanRequest{})

	require.NoError(t, err)
	assert.Equal(t, existing, got)
	ls.AssertNotCalled(t, "Update")
}

func TestDelete_ReleasesIMEIGuard(t *testing.T) {
	ls := &mockLoanStore{}
	ls.On("GetOwned", mock.Anything, "L1", "U1").
		Return(&domain.Loan{LoanID: "L1", CreatedBy: "U1", IMEI: "356938035643809"}, nil)
	ls.On("Delete", mock.Anything, "L1", "U1", "356938035643809").Return(nil)

	svc := NewService(ls, &mockCustomerStore{})
	err := svc.Delete(context.Background(), "L1", "U1")

	require.NoError(t, err)
	ls.AssertExpectations(t)
}

func TestDelete_ForeignLoan_NotFound(t *testing.T) {
	ls := &mockLoanStore{}
	ls.On("GetOwned", mock.Anything, "L1", "U2").Return(nil, domain.ErrNotFound)

	svc := NewService(ls, &mockCustomerStore{})
	err := svc.Delete(context.Background(), "L1", "U2")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	ls.AssertNotCalled(t, "Delete")
}
