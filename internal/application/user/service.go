package user

import (
	"context"
	"errors"
	"time"

	"github.com/amanpandey8120/vlocker-app/internal/domain"
	"github.com/amanpandey8120/vlocker-app/internal/pkg/paging"
)

const (
	fieldName               = "name"
	fieldEmail              = "email"
	fieldIsProfileCompleted = "is_profile_completed"
)

type Service interface {
	CompleteProfile(ctx context.Context, userID, phone string, req domain.CompleteProfileRequest) (*domain.User, error)
	Get(ctx context.Context, userID string) (*domain.User, error)
	List(ctx context.Context, page, limit int) ([]domain.User, int, error)
	UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (*domain.User, error)
}

type userStore interface {
	Put(ctx context.Context, u *domain.User) error
	Get(ctx context.Context, userID string) (*domain.User, error)
	ListAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, userID string, updates map[string]interface{}) (*domain.User, error)
}

type service struct {
	repo userStore
}

func NewService(repo userStore) Service {
	return &service{repo: repo}
}

// CompleteProfile fills in name/email after first login. The identity
// provider mints the user id before any app record exists, so a missing row
// is created here rather than treated as an error.
func (s *service) CompleteProfile(ctx context.Context, userID, phone string, req domain.CompleteProfileRequest) (*domain.User, error) {
	existing, err := s.repo.Get(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing == nil {
		now := time.Now().UTC()
		u := &domain.User{
			UserID:             userID,
			Name:               req.Name,
			Email:              req.Email,
			Phone:              phone,
			Role:               domain.RoleUser,
			IsProfileCompleted: true,
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		if err := s.repo.Put(ctx, u); err != nil {
			return nil, err
		}
		return u, nil
	}
	return s.repo.Update(ctx, userID, map[string]interface{}{
		fieldName:               req.Name,
		fieldEmail:              req.Email,
		fieldIsProfileCompleted: true,
	})
}

func (s *service) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.Get(ctx, userID)
}

func (s *service) List(ctx context.Context, page, limit int) ([]domain.User, int, error) {
	page, limit = paging.Clamp(page, limit)
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, 0, err
	}
	return paging.Slice(all, page, limit), len(all), nil
}

func (s *service) UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (*domain.User, error) {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates[fieldName] = *req.Name
	}
	if req.Email != nil {
		updates[fieldEmail] = *req.Email
	}
	if len(updates) == 0 {
		return s.repo.Get(ctx, userID)
	}
	return s.repo.Update(ctx, userID, updates)
}
