package video

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/amanpandey8120/vlocker-app/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockVideoStore struct{ mock.Mock }

func (m *mockVideoStore) Put(ctx context.Context, v *domain.InstallationVideo) error {
	return m.Called(ctx, v).Error(0)
}
func (m *mockVideoStore) ListAll(ctx context.Context) ([]domain.InstallationVideo, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.InstallationVideo), args.Error(1)
}

type mockObjectStore struct{ mock.Mock }

func (m *mockObjectStore) Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	args := m.Called(ctx, key, r, contentType)
	return args.String(0), args.Error(1)
}

func TestCreate_HappyPath(t *testing.T) {
	vs := &mockVideoStore{}
	os := &mockObjectStore{}
	os.On("Upload", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasSuffix(key, "/howto.mp4")
	}), mock.Anything, "").Return("s3://b/videos/v/howto.mp4", nil)
	os.On("Upload", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasSuffix(key, "/thumb.jpg")
	}), mock.Anything, "").Return("s3://b/videos/v/thumb/thumb.jpg", nil)
	vs.On("Put", mock.Anything, mock.AnythingOfType("*domain.InstallationVideo")).Return(nil)

	svc := NewService(vs, os)
	v, err := svc.Create(context.Background(), "admin1", CreateInput{
		Title:     "Install the locker app",
		Video:     strings.NewReader("video-bytes"),
		VideoName: "howto.mp4",
		Thumbnail: strings.NewReader("thumb-bytes"),
		ThumbName: "thumb.jpg",
	})

	require.NoError(t, err)
	assert.Equal(t, "s3://b/videos/v/howto.mp4", v.VideoPath)
	assert.Equal(t, "s3://b/videos/v/thumb/thumb.jpg", v.Thumbnail)
	assert.Equal(t, "admin1", v.CreatedBy)
	vs.AssertExpectations(t)
	os.AssertExpectations(t)
}

func TestCreate_MissingTitle_BadRequest(t *testing.T) {
	svc := NewService(&mockVideoStore{}, &mockObjectStore{})
	_, err := svc.Create(context.Background(), "admin1", CreateInput{
		Video:     strings.NewReader("video-bytes"),
		VideoName: "howto.mp4",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

func TestCreate_MissingVideo_BadRequest(t *testing.T) {
	svc := NewService(&mockVideoStore{}, &mockObjectStore{})
	_, err := svc.Create(context.Background(), "admin1", CreateInput{Title: "Install"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

func TestCreate_ThumbnailOptional(t *testing.T) {
	vs := &mockVideoStore{}
	os := &mockObjectStore{}
	os.On("Upload", mock.Anything, mock.Anything, mock.Anything, "").Return("s3://b/videos/v/howto.mp4", nil).Once()
	vs.On("Put", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(vs, os)
	v, err := svc.Create(context.Background(), "admin1", CreateInput{
		Title:     "Install the locker app",
		Video:     strings.NewReader("video-bytes"),
		VideoName: "howto.mp4",
	})

	require.NoError(t, err)
	assert.Empty(t, v.Thumbnail)
	os.AssertNumberOfCalls(t, "Upload", 1)
}

func TestList_Paginates(t *testing.T) {
	vs := &mockVideoStore{}
	vs.On("ListAll", mock.Anything).Return([]domain.InstallationVideo{
		{VideoID: "V1"}, {VideoID: "V2"}, {VideoID: "V3"},
	}, nil)

	svc := NewService(vs, &mockObjectStore{})
	videos, total, err := svc.List(context.Background(), 1, 2)

	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, videos, 2)
}
