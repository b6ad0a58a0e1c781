package support

import (
	"context"
	"time"

	"github.com/amanpandey8120/vlocker-app/internal/domain"
)

const (
	fieldPhone    = "phone"
	fieldEmail    = "email"
	fieldWhatsApp = "whatsapp"
	fieldAddress  = "address"
)

type Service interface {
	Create(ctx context.Context, req domain.CreateSupportRequest) (*domain.CompanySupport, error)
	Get(ctx context.Context) (*domain.CompanySupport, error)
	Update(ctx context.Context, req domain.UpdateSupportRequest) (*domain.CompanySupport, error)
}

type supportStore interface {
	Create(ctx context.Context, s *domain.CompanySupport) error
	Get(ctx context.Context) (*domain.CompanySupport, error)
	Update(ctx context.Context, supportID string, updates map[string]interface{}) (*domain.CompanySupport, error)
}

type service struct {
	repo supportStore
}

func NewService(repo supportStore) Service {
	return &service{repo: repo}
}

// Create inserts the singleton support record. The store's conditional write
// is what actually rejects a second create, so two racing creates still
// resolve to exactly one record.
func (s *service) Create(ctx context.Context, req domain.CreateSupportRequest) (*domain.CompanySupport, error) {
	now := time.Now().UTC()
	rec := &domain.CompanySupport{
		SupportID: domain.SupportDocKey,
		Phone:     req.Phone,
		Email:     req.Email,
		WhatsApp:  req.WhatsApp,
		Address:   req.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *service) Get(ctx context.Context) (*domain.CompanySupport, error) {
	return s.repo.Get(ctx)
}

func (s *service) Update(ctx context.Context, req domain.UpdateSupportRequest) (*domain.CompanySupport, error) {
	updates := map[string]interface{}{}
	if req.Phone != nil {
		updates[fieldPhone] = *req.Phone
	}
	if req.Email != nil {
		updates[fieldEmail] = *req.Email
	}
	if req.WhatsApp != nil {
		updates[fieldWhatsApp] = *req.WhatsApp
	}
	if req.Address != nil {
		updates[fieldAddress] = *req.Address
	}
	if len(updates) == 0 {
		return s.repo.Get(ctx)
	}
	return s.repo.Update(ctx, domain.SupportDocKey, updates)
}
