package image_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/fproduction/studio-backend/internal/image"
	"github.com/fproduction/studio-backend/internal/revalidate"
	"github.com/fproduction/studio-backend/internal/storage"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListPaginated(ctx context.Context, page, limit int, sortBy, sortOrder string) ([]image.Image, int64, error) {
	args := m.Called(ctx, page, limit, sortBy, sortOrder)
	return args.Get(0).([]image.Image), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) ListRecent(ctx context.Context, limit int) ([]image.Image, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]image.Image), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*image.Image, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*image.Image), args.Error(1)
}

func (m *MockRepository) CreateBatch(ctx context.Context, images []*image.Image) error {
	args := m.Called(ctx, images)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, img *image.Image, fields map[string]interface{}) error {
	args := m.Called(ctx, img, fields)
	return args.Error(0)
}

func (m *MockRepository) ReplaceEvents(ctx context.Context, img *image.Image, eventIDs []string) error {
	args := m.Called(ctx, img, eventIDs)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockStore struct {
	mock.Mock
}

func (m *MockStore) PresignUpload(ctx context.Context, req storage.UploadRequest) (storage.PresignedUpload, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(storage.PresignedUpload), args.Error(1)
}

func (m *MockStore) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockStore) PublicURL(key string) string {
	return "https://cdn.test/" + key
}

func TestSaveBatchRejectsMissingObjects(t *testing.T) {
	repo := new(MockRepository)
	store := new(MockStore)
	store.On("Exists", mock.Anything, "images/2025/06/a.jpg").Return(true, nil)
	store.On("Exists", mock.Anything, "images/2025/06/b.jpg").Return(false, nil)

	svc := image.NewService(repo, store, revalidate.NopNotifier{})

	_, err := svc.SaveBatch(context.Background(), []image.BatchItem{
		{S3Key: "images/2025/06/a.jpg"},
		{S3Key: "images/2025/06/b.jpg"},
	})

	var missing *image.MissingFilesError
	assert.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"images/2025/06/b.jpg"}, missing.Keys)
	repo.AssertNotCalled(t, "CreateBatch")
}

func TestSaveBatchInsertsVerifiedObjects(t *testing.T) {
	repo := new(MockRepository)
	store := new(MockStore)
	store.On("Exists", mock.Anything, mock.Anything).Return(true, nil)
	repo.On("CreateBatch", mock.Anything, mock.MatchedBy(func(images []*image.Image) bool {
		return len(images) == 2 && images[0].ShowOnLanding && images[1].ShowOnLanding
	})).Return(nil)

	svc := image.NewService(repo, store, revalidate.NopNotifier{})

	saved, err := svc.SaveBatch(context.Background(), []image.BatchItem{
		{S3Key: "images/2025/06/a.jpg", Title: "Sân khấu chính", Format: "jpg", FileSize: 1024},
		{S3Key: "images/2025/06/b.jpg"},
	})

	assert.NoError(t, err)
	assert.Len(t, saved, 2)
	assert.Equal(t, "https://cdn.test/images/2025/06/a.jpg", saved[0].URL)
	repo.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestDeleteContinuesWhenS3DeleteFails(t *testing.T) {
	repo := new(MockRepository)
	store := new(MockStore)

	img := &image.Image{ID: "I1", S3Key: "images/2025/06/a.jpg"}
	repo.On("GetByID", mock.Anything, "I1").Return(img, nil)
	store.On("Delete", mock.Anything, "images/2025/06/a.jpg").Return(assert.AnError)
	repo.On("Delete", mock.Anything, "I1").Return(nil)

	svc := image.NewService(repo, store, revalidate.NopNotifier{})

	err := svc.Delete(context.Background(), "I1")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
