package landing_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/fproduction/studio-backend/internal/catalog"
	"github.com/fproduction/studio-backend/internal/image"
	"github.com/fproduction/studio-backend/internal/landing"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) FindServiceByName(ctx context.Context, name string) (*catalog.Service, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Service), args.Error(1)
}

func (m *MockRepository) FindEventsWithLandingImages(ctx context.Context, eventIDs []string) ([]landing.EventMedia, error) {
	args := m.Called(ctx, eventIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]landing.EventMedia), args.Error(1)
}

func testURL(key string) string {
	return "https://cdn.test/" + key
}

func img(id string, createdAt time.Time) image.Image {
	return image.Image{ID: id, S3Key: "images/2025/01/" + id + ".jpg", CreatedAt: createdAt}
}

func TestResolveUnknownFilter(t *testing.T) {
	repo := new(MockRepository)
	svc := landing.NewService(repo, landing.DefaultFilterMap(), testURL)

	_, err := svc.Resolve(context.Background(), landing.Query{FilterType: "KHÔNG TỒN TẠI", Page: 1, Limit: 6})

	assert.ErrorIs(t, err, landing.ErrUnknownFilter)
	repo.AssertNotCalled(t, "FindServiceByName")
}

func TestResolveFilterIsCaseInsensitive(t *testing.T) {
	repo := new(MockRepository)
	repo.On("FindServiceByName", mock.Anything, "Chụp Ảnh Sự Kiện").
		Return(nil, gorm.ErrRecordNotFound)
	svc := landing.NewService(repo, landing.DefaultFilterMap(), testURL)

	result, err := svc.Resolve(context.Background(), landing.Query{FilterType: "ảnh event", Page: 1, Limit: 6})

	assert.NoError(t, err)
	assert.Equal(t, landing.ReasonServiceNotFound, result.Reason)
	repo.AssertExpectations(t)
}

func TestResolveServiceNotFoundIsEmptyNotError(t *testing.T) {
	repo := new(MockRepository)
	repo.On("FindServiceByName", mock.Anything, "Chụp Ảnh Sự Kiện").
		Return(nil, gorm.ErrRecordNotFound)
	svc := landing.NewService(repo, landing.DefaultFilterMap(), testURL)

	result, err := svc.Resolve(context.Background(), landing.Query{FilterType: "ẢNH EVENT", Page: 1, Limit: 6})

	assert.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.False(t, result.HasMore)
	assert.Equal(t, landing.ReasonServiceNotFound, result.Reason)
	assert.Equal(t, `Không tìm thấy service "Chụp Ảnh Sự Kiện"`, result.Note)
}

func TestResolveEmptyManifestIsEmptyNotError(t *testing.T) {
	repo := new(MockRepository)
	repo.On("FindServiceByName", mock.Anything, "Chụp Ảnh Sự Kiện").
		Return(&catalog.Service{ID: "S1", Name: "Chụp Ảnh Sự Kiện"}, nil)
	svc := landing.NewService(repo, landing.DefaultFilterMap(), testURL)

	result, err := svc.Resolve(context.Background(), landing.Query{FilterType: "ẢNH EVENT", Page: 1, Limit: 6})

	assert.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.Equal(t, landing.ReasonNoEvents, result.Reason)
	assert.Equal(t, "Service chưa có event nào được liên kết", result.Note)
	repo.AssertNotCalled(t, "FindEventsWithLandingImages")
}

func orderedFixture() (*MockRepository, *landing.Service) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	repo := new(MockRepository)
	repo.On("FindServiceByName", mock.Anything, "Chụp Ảnh Sự Kiện").
		Return(&catalog.Service{
			ID:         "S1",
			Name:       "Chụp Ảnh Sự Kiện",
			EventOrder: datatypes.JSONSlice[string]{"E2", "E1"},
		}, nil)

	// repo returns events in storage order, images newest first per event
	repo.On("FindEventsWithLandingImages", mock.Anything, []string{"E2", "E1"}).
		Return([]landing.EventMedia{
			{
				ID:    "E1",
				Title: "Lễ cưới Minh & Lan",
				Images: []image.Image{
					img("i3", base.Add(3*time.Hour)),
					img("i2", base.Add(2*time.Hour)),
					img("i1", base.Add(1*time.Hour)),
				},
			},
			{
				ID:     "E2",
				Title:  "Hội nghị ABC",
				Images: []image.Image{img("i5", base.Add(5*time.Hour))},
			},
		}, nil)

	return repo, landing.NewService(repo, landing.DefaultFilterMap(), testURL)
}

func TestResolveOrdersByManifestThenImageRecency(t *testing.T) {
	_, svc := orderedFixture()

	result, err := svc.Resolve(context.Background(), landing.Query{FilterType: "ẢNH EVENT", Page: 1, Limit: 10})

	assert.NoError(t, err)
	ids := make([]string, 0, len(result.Items))
	for _, it := range result.Items {
		ids = append(ids, it.ID)
	}
	// E2 comes first per the manifest, then E1's images newest first
	assert.Equal(t, []string{"i5", "i3", "i2", "i1"}, ids)
	assert.Equal(t, "Hội nghị ABC", result.Items[0].Event.Title)
	assert.Equal(t, "https://cdn.test/images/2025/01/i5.jpg", result.Items[0].URL)
	assert.Equal(t, "images/2025/01/i5.jpg", result.Items[0].S3Key)
	assert.Equal(t, "image", result.Items[0].Type)
}

func TestResolvePagination(t *testing.T) {
	_, svc := orderedFixture()

	page1, err := svc.Resolve(context.Background(), landing.Query{FilterType: "ẢNH EVENT", Page: 1, Limit: 2})
	assert.NoError(t, err)
	assert.Equal(t, []string{"i5", "i3"}, itemIDs(page1.Items))
	assert.Equal(t, 4, page1.Total)
	assert.True(t, page1.HasMore)

	page2, err := svc.Resolve(context.Background(), landing.Query{FilterType: "ẢNH EVENT", Page: 2, Limit: 2})
	assert.NoError(t, err)
	assert.Equal(t, []string{"i2", "i1"}, itemIDs(page2.Items))
	assert.False(t, page2.HasMore)

	page3, err := svc.Resolve(context.Background(), landing.Query{FilterType: "ẢNH EVENT", Page: 3, Limit: 2})
	assert.NoError(t, err)
	assert.Empty(t, page3.Items)
	assert.False(t, page3.HasMore)
}

func TestResolveIsIdempotent(t *testing.T) {
	_, svc := orderedFixture()

	first, err := svc.Resolve(context.Background(), landing.Query{FilterType: "ẢNH EVENT", Page: 1, Limit: 2})
	assert.NoError(t, err)
	second, err := svc.Resolve(context.Background(), landing.Query{FilterType: "ẢNH EVENT", Page: 1, Limit: 2})
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestResolveSkipsDeletedManifestEntries(t *testing.T) {
	repo := new(MockRepository)
	repo.On("FindServiceByName", mock.Anything, "Chụp Ảnh Sự Kiện").
		Return(&catalog.Service{
			ID:         "S1",
			Name:       "Chụp Ảnh Sự Kiện",
			EventOrder: datatypes.JSONSlice[string]{"GONE", "E1"},
		}, nil)
	repo.On("FindEventsWithLandingImages", mock.Anything, []string{"GONE", "E1"}).
		Return([]landing.EventMedia{
			{ID: "E1", Title: "Sự kiện", Images: []image.Image{img("i1", time.Now())}},
		}, nil)
	svc := landing.NewService(repo, landing.DefaultFilterMap(), testURL)

	result, err := svc.Resolve(context.Background(), landing.Query{FilterType: "ẢNH EVENT", Page: 1, Limit: 6})

	assert.NoError(t, err)
	assert.Equal(t, []string{"i1"}, itemIDs(result.Items))
}

func TestResolveDefaultsPageAndLimit(t *testing.T) {
	_, svc := orderedFixture()

	result, err := svc.Resolve(context.Background(), landing.Query{FilterType: "ẢNH EVENT"})

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, landing.DefaultLimit, result.Limit)
}

func itemIDs(items []landing.FeedItem) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}

func TestResolveByExplicitServiceName(t *testing.T) {
	repo := new(MockRepository)
	repo.On("FindServiceByName", mock.Anything, "Quay Phim Sự Kiện").
		Return(&catalog.Service{ID: "S2", Name: "Quay Phim Sự Kiện"}, nil)
	svc := landing.NewService(repo, landing.DefaultFilterMap(), testURL)

	result, err := svc.Resolve(context.Background(), landing.Query{ServiceName: "Quay Phim Sự Kiện", Page: 1, Limit: 6})

	assert.NoError(t, err)
	assert.Equal(t, landing.ReasonNoEvents, result.Reason)
	assert.Equal(t, &landing.ServiceBrief{ID: "S2", Name: "Quay Phim Sự Kiện"}, result.Service)
	repo.AssertExpectations(t)
}
