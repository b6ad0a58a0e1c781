package loan

import (
	"context"
	"time"

	"github.com/amanpandey8120/vlocker-app/internal/domain"
	"github.com/amanpandey8120/vlocker-app/internal/pkg/id"
	"github.com/amanpandey8120/vlocker-app/internal/pkg/paging"
)

const (
	fieldDeviceModel  = "device_model"
	fieldLoanAmount   = "loan_amount"
	fieldDownPayment  = "down_payment"
	fieldTenureMonths = "tenure_months"
	fieldEMIAmount    = "emi_amount"
)

type Service interface {
	Create(ctx context.Context, customerID, owner string, req domain.CreateLoanRequest) (*domain.Loan, error)
	ListByCustomer(ctx context.Context, customerID, owner string, page, limit int) ([]domain.Loan, int, error)
	Get(ctx context.Context, loanID, owner string) (*domain.Loan, error)
	Update(ctx context.Context, loanID, owner string, req domain.UpdateLoanRequest) (*domain.Loan, error)
	Delete(ctx context.Context, loanID, owner string) error
}

type loanStore interface {
	Put(ctx context.Context, l *domain.Loan) error
	GetOwned(ctx context.Context, loanID, owner string) (*domain.Loan, error)
	ListByCustomer(ctx context.Context, customerID, owner string) ([]domain.Loan, error)
	Update(ctx context.Context, loanID, owner string, updates map[string]interface{}) (*domain.Loan, error)
	Delete(ctx context.Context, loanID, owner, imei string) error
}

type customerStore interface {
	GetOwned(ctx context.Context, customerID, owner string) (*domain.Customer, error)
}

type service struct {
	repo      loanStore
	customers customerStore
}

func NewService(repo loanStore, customers customerStore) Service {
	return &service{repo: repo, customers: customers}
}

// Create attaches a loan to one of the caller's customers. The parent lookup
// doubles as the ownership check; a customer owned by someone else reads as
// not found.
func (s *service) Create(ctx context.Context, customerID, owner string, req domain.CreateLoanRequest) (*domain.Loan, error) {
	if _, err := s.customers.GetOwned(ctx, customerID, owner); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	l := &domain.Loan{
		LoanID:       id.New(),
		CustomerID:   customerID,
		CreatedBy:    owner,
		IMEI:         req.IMEI,
		DeviceModel:  req.DeviceModel,
		LoanAmount:   req.LoanAmount,
		DownPayment:  req.DownPayment,
		TenureMonths: req.TenureMonths,
		EMIAmount:    req.EMIAmount,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Put(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *service) ListByCustomer(ctx context.Context, customerID, owner string, page, limit int) ([]domain.Loan, int, error) {
	if _, err := s.customers.GetOwned(ctx, customerID, owner); err != nil {
		return nil, 0, err
	}
	page, limit = paging.Clamp(page, limit)
	all, err := s.repo.ListByCustomer(ctx, customerID, owner)
	if err != nil {
		return nil, 0, err
	}
	return paging.Slice(all, page, limit), len(all), nil
}

func (s *service) Get(ctx context.Context, loanID, owner string) (*domain.Loan, error) {
	return s.repo.GetOwned(ctx, loanID, owner)
}

// Update applies an allow-listed patch. IMEI is deliberately not patchable:
// changing it would orphan the uniqueness guard.
func (s *service) Update(ctx context.Context, loanID, owner string, req domain.UpdateLoanRequest) (*domain.Loan, error) {
	updates := map[string]interface{}{}
	if req.DeviceModel != nil {
		updates[fieldDeviceModel] = *req.DeviceModel
	}
	if req.LoanAmount != nil {
		updates[fieldLoanAmount] = *req.LoanAmount
	}
	if req.DownPayment != nil {
		updates[fieldDownPayment] = *req.DownPayment
	}
	if req.TenureMonths != nil {
		updates[fieldTenureMonths] = *req.TenureMonths
	}
	if req.EMIAmount != nil {
		updates[fieldEMIAmount] = *req.EMIAmount
	}
	if len(updates) == 0 {
		return s.repo.GetOwned(ctx, loanID, owner)
	}
	return s.repo.Update(ctx, loanID, owner, updates)
}

// Delete fetches first so the repo can release the IMEI guard along with the
// loan item.
func (s *service) Delete(ctx context.Context, loanID, owner string) error {
	l, err := s.repo.GetOwned(ctx, loanID, owner)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, loanID, owner, l.IMEI)
}
