package address

import (
	"context"
	"time"

	"github.com/amanpandey8120/vlocker-app/internal/domain"
	"github.com/amanpandey8120/vlocker-app/internal/pkg/id"
	"github.com/amanpandey8120/vlocker-app/internal/pkg/paging"
)

const (
	fieldAddressLine = "address_line"
	fieldCity        = "city"
	fieldState       = "state"
	fieldPincode     = "pincode"
)

type Service interface {
	Create(ctx context.Context, customerID, owner string, req domain.CreateAddressRequest) (*domain.Address, error)
	List(ctx context.Context, owner string, page, limit int) ([]domain.Address, int, error)
	Get(ctx context.Context, addressID, owner string) (*domain.Address, error)
	Update(ctx context.Context, addressID, owner string, req domain.UpdateAddressRequest) (*domain.Address, error)
	Delete(ctx context.Context, addressID, owner string) error
}

type addressStore interface {
	Put(ctx context.Context, a *domain.Address) error
	GetOwned(ctx context.Context, addressID, owner string) (*domain.Address, error)
	ListByOwner(ctx context.Context, owner string) ([]domain.Address, error)
	Update(ctx context.Context, addressID, owner string, updates map[string]interface{}) (*domain.Address, error)
	Delete(ctx context.Context, addressID, owner string) error
}

type customerStore interface {
	GetOwned(ctx context.Context, customerID, owner string) (*domain.Customer, error)
}

type service struct {
	repo      addressStore
	customers customerStore
}

func NewService(repo addressStore, customers customerStore) Service {
	return &service{repo: repo, customers: customers}
}

func (s *service) Create(ctx context.Context, customerID, owner string, req domain.CreateAddressRequest) (*domain.Address, error) {
	if _, err := s.customers.GetOwned(ctx, customerID, owner); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	a := &domain.Address{
		AddressID:   id.New(),
		CustomerID:  customerID,
		CreatedBy:   owner,
		AddressLine: req.AddressLine,
		City:        req.City,
		State:       req.State,
		Pincode:     req.Pincode,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Put(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// List returns every address the caller created, across customers.
func (s *service) List(ctx context.Context, owner string, page, limit int) ([]domain.Address, int, error) {
	page, limit = paging.Clamp(page, limit)
	all, err := s.repo.ListByOwner(ctx, owner)
	if err != nil {
		return nil, 0, err
	}
	return paging.Slice(all, page, limit), len(all), nil
}

func (s *service) Get(ctx context.Context, addressID, owner string) (*domain.Address, error) {
	return s.repo.GetOwned(ctx, addressID, owner)
}

func (s *service) Update(ctx context.Context, addressID, owner string, req domain.UpdateAddressRequest) (*domain.Address, error) {
	updates := map[string]interface{}{}
	if req.AddressLine != nil {
		updates[fieldAddressLine] = *req.AddressLine
	}
	if req.City != nil {
		updates[fieldCity] = *req.City
	}
	if req.State != nil {
		updates[fieldState] = *req.State
	}
	if req.Pincode != nil {
		updates[fieldPincode] = *req.Pincode
	}
	if len(updates) == 0 {
		return s.repo.GetOwned(ctx, addressID, owner)
	}
	return s.repo.Update(ctx, addressID, owner, updates)
}

func (s *service) Delete(ctx context.Context, addressID, owner string) error {
	return s.repo.Delete(ctx, addressID, owner)
}
