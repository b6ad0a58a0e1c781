package bank

import (
	"context"
	"time"

	"github.com/amanpandey8120/vlocker-app/internal/domain"
	"github.com/amanpandey8120/vlocker-app/internal/pkg/id"
	"github.com/amanpandey8120/vlocker-app/internal/pkg/paging"
)

const (
	fieldBankName          = "bank_name"
	fieldAccountNumber     = "account_number"
	fieldAccountHolderName = "account_holder_name"
	fieldIFSCCode          = "ifsc_code"
)

type Service interface {
	Create(ctx context.Context, customerID, owner string, req domain.CreateBankRequest) (*domain.Bank, error)
	ListByCustomer(ctx context.Context, customerID, owner string, page, limit int) ([]domain.Bank, int, error)
	Get(ctx context.Context, bankID, owner string) (*domain.Bank, error)
	Update(ctx context.Context, bankID, owner string, req domain.UpdateBankRequest) (*domain.Bank, error)
	Delete(ctx context.Context, bankID, owner string) error
}

type bankStore interface {
	Put(ctx context.Context, b *domain.Bank) error
	GetOwned(ctx context.Context, bankID, owner string) (*domain.Bank, error)
	ListByCustomer(ctx context.Context, customerID, owner string) ([]domain.Bank, error)
	Update(ctx context.Context, bankID, owner string, updates map[string]interface{}) (*domain.Bank, error)
	Delete(ctx context.Context, bankID, owner string) error
}

type customerStore interface {
	GetOwned(ctx context.Context, customerID, owner string) (*domain.Customer, error)
}

type service struct {
	repo      bankStore
	customers customerStore
}

func NewService(repo bankStore, customers customerStore) Service {
	return &service{repo: repo, customers: customers}
}

func (s *service) Create(ctx context.Context, customerID, owner string, req domain.CreateBankRequest) (*domain.Bank, error) {
	if _, err := s.customers.GetOwned(ctx, customerID, owner); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	b := &domain.Bank{
		BankID:            id.New(),
		CustomerID:        customerID,
		CreatedBy:         owner,
		BankName:          req.BankName,
		AccountNumber:     req.AccountNumber,
		AccountHolderName: req.AccountHolderName,
		IFSCCode:          req.IFSCCode,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.repo.Put(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) ListByCustomer(ctx context.Context, customerID, owner string, page, limit int) ([]domain.Bank, int, error) {
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

func (s *service) Get(ctx context.Context, bankID, owner string) (*domain.Bank, error) {
	return s.repo.GetOwned(ctx, bankID, owner)
}

func (s *service) Update(ctx context.Context, bankID, owner string, req domain.UpdateBankRequest) (*domain.Bank, error) {
	updates := map[string]interface{}{}
	if req.BankName != nil {
		updates[fieldBankName] = *req.BankName
	}
	if req.AccountNumber != nil {
		updates[fieldAccountNumber] = *req.AccountNumber
	}
	if req.AccountHolderName != nil {
		updates[fieldAccountHolderName] = *req.AccountHolderName
	}
	if req.IFSCCode != nil {
		updates[fieldIFSCCode] = *req.IFSCCode
	}
	if len(updates) == 0 {
		return s.repo.GetOwned(ctx, bankID, owner)
	}
	return s.repo.Update(ctx, bankID, owner, updates)
}

func (s *service) Delete(ctx context.Context, bankID, owner string) error {
	return s.repo.Delete(ctx, bankID, owner)
}
