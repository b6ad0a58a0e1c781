package feedback

import (
	"context"
	"time"

	"github.com/amanpandey8120/vlocker-app/internal/domain"
	"github.com/amanpandey8120/vlocker-app/internal/pkg/id"
	"github.com/amanpandey8120/vlocker-app/internal/pkg/paging"
)

type Service interface {
	Create(ctx context.Context, userID string, req domain.CreateFeedbackRequest) (*domain.Feedback, error)
	ListByUser(ctx context.Context, userID string, page, limit int) ([]domain.Feedback, int, error)
	ListAll(ctx context.Context, page, limit int) ([]domain.FeedbackWithUser, int, error)
	Get(ctx context.Context, feedbackID string) (*domain.FeedbackWithUser, error)
}

type feedbackStore interface {
	Put(ctx context.Context, f *domain.Feedback) error
	Get(ctx context.Context, feedbackID string) (*domain.Feedback, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Feedback, error)
	ListAll(ctx context.Context) ([]domain.Feedback, error)
}

type userStore interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	BatchGet(ctx context.Context, userIDs []string) (map[string]domain.User, error)
}

type service struct {
	repo  feedbackStore
	users userStore
}

func NewService(repo feedbackStore, users userStore) Service {
	return &service{repo: repo, users: users}
}

func (s *service) Create(ctx context.Context, userID string, req domain.CreateFeedbackRequest) (*domain.Feedback, error) {
	f := &domain.Feedback{
		FeedbackID: id.New(),
		UserID:     userID,
		Feedback:   req.Feedback,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Put(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *service) ListByUser(ctx context.Context, userID string, page, limit int) ([]domain.Feedback, int, error) {
	page, limit = paging.Clamp(page, limit)
	all, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return paging.Slice(all, page, limit), len(all), nil
}

// ListAll returns every feedback row annotated with submitter name and email.
// Users are fetched in one batch; a deleted user leaves the annotation empty
// rather than failing the listing.
func (s *service) ListAll(ctx context.Context, page, limit int) ([]domain.FeedbackWithUser, int, error) {
	page, limit = paging.Clamp(page, limit)
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, 0, err
	}
	total := len(all)
	pageItems := paging.Slice(all, page, limit)

	seen := map[string]struct{}{}
	ids := make([]string, 0, len(pageItems))
	for _, f := range pageItems {
		if _, ok := seen[f.UserID]; !ok {
			seen[f.UserID] = struct{}{}
			ids = append(ids, f.UserID)
		}
	}
	users, err := s.users.BatchGet(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	out := make([]domain.FeedbackWithUser, 0, len(pageItems))
	for _, f := range pageItems {
		row := domain.FeedbackWithUser{Feedback: f}
		if u, ok := users[f.UserID]; ok {
			row.UserName = u.Name
			row.UserEmail = u.Email
		}
		out = append(out, row)
	}
	return out, total, nil
}

func (s *service) Get(ctx context.Context, feedbackID string) (*domain.FeedbackWithUser, error) {
	f, err := s.repo.Get(ctx, feedbackID)
	if err != nil {
		return nil, err
	}
	row := &domain.FeedbackWithUser{Feedback: *f}
	if u, err := s.users.Get(ctx, f.UserID); err == nil {
		row.UserName = u.Name
		row.UserEmail = u.Email
	}
	return row, nil
}
