package video

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/amanpandey8120/vlocker-app/internal/domain"
	"github.com/amanpandey8120/vlocker-app/internal/pkg/id"
	"github.com/amanpandey8120/vlocker-app/internal/pkg/paging"
)

type Service interface {
	Create(ctx context.Context, owner string, in CreateInput) (*domain.InstallationVideo, error)
	List(ctx context.Context, page, limit int) ([]domain.InstallationVideo, int, error)
}

// CreateInput carries the video metadata plus the uploaded file streams.
// Thumbnail is optional.
type CreateInput struct {
	Title       string
	Description string
	ChannelName string
	Video       io.Reader
	VideoName   string
	Thumbnail   io.Reader
	ThumbName   string
}

type videoStore interface {
	Put(ctx context.Context, v *domain.InstallationVideo) error
	ListAll(ctx context.Context) ([]domain.InstallationVideo, error)
}

type objectStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
}

type service struct {
	repo    videoStore
	objects objectStore
}

func NewService(repo videoStore, objects objectStore) Service {
	return &service{repo: repo, objects: objects}
}

func (s *service) Create(ctx context.Context, owner string, in CreateInput) (*domain.InstallationVideo, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("title is required: %w", domain.ErrBadRequest)
	}
	if in.Video == nil {
		return nil, fmt.Errorf("video file is required: %w", domain.ErrBadRequest)
	}

	videoID := id.New()
	videoRef, err := s.objects.Upload(ctx, "videos/"+videoID+"/"+in.VideoName, in.Video, "")
	if err != nil {
		return nil, fmt.Errorf("upload video: %w", err)
	}
	var thumbRef string
	if in.Thumbnail != nil {
		thumbRef, err = s.objects.Upload(ctx, "videos/"+videoID+"/thumb/"+in.ThumbName, in.Thumbnail, "")
		if err != nil {
			return nil, fmt.Errorf("upload thumbnail: %w", err)
		}
	}

	v := &domain.InstallationVideo{
		VideoID:     videoID,
		Title:       in.Title,
		Description: in.Description,
		ChannelName: in.ChannelName,
		VideoPath:   videoRef,
		Thumbnail:   thumbRef,
		CreatedBy:   owner,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Put(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *service) List(ctx context.Context, page, limit int) ([]domain.InstallationVideo, int, error) {
	page, limit = paging.Clamp(page, limit)
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, 0, err
	}
	return paging.Slice(all, page, limit), len(all), nil
}
