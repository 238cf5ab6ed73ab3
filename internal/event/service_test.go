package event_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/fproduction/studio-backend/internal/event"
	"github.com/fproduction/studio-backend/internal/revalidate"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListPaginated(ctx context.Context, page, limit int, search string) ([]event.Event, int64, error) {
	args := m.Called(ctx, page, limit, search)
	return args.Get(0).([]event.Event), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*event.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*event.Event), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, e *event.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, e *event.Event, fields map[string]interface{}) error {
	args := m.Called(ctx, e, fields)
	return args.Error(0)
}

func (m *MockRepository) ReplaceImages(ctx context.Context, e *event.Event, imageIDs []string) error {
	args := m.Called(ctx, e, imageIDs)
	return args.Error(0)
}

func (m *MockRepository) ReplaceVideos(ctx context.Context, e *event.Event, videoIDs []string) error {
	args := m.Called(ctx, e, videoIDs)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, e *event.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockStripper struct {
	mock.Mock
}

func (m *MockStripper) StripEvent(ctx context.Context, eventID string) error {
	args := m.Called(ctx, eventID)
	return args.Error(0)
}

func TestDeleteStripsEventFromManifests(t *testing.T) {
	repo := new(MockRepository)
	stripper := new(MockStripper)

	e := &event.Event{ID: "E1", Title: "Hội nghị ABC"}
	repo.On("GetByID", mock.Anything, "E1").Return(e, nil)
	repo.On("Delete", mock.Anything, e).Return(nil)
	stripper.On("StripEvent", mock.Anything, "E1").Return(nil)

	svc := event.NewService(repo, stripper, revalidate.NopNotifier{})

	assert.NoError(t, svc.Delete(context.Background(), "E1"))
	stripper.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestDeleteSucceedsWhenStripFails(t *testing.T) {
	repo := new(MockRepository)
	stripper := new(MockStripper)

	e := &event.Event{ID: "E1"}
	repo.On("GetByID", mock.Anything, "E1").Return(e, nil)
	repo.On("Delete", mock.Anything, e).Return(nil)
	stripper.On("StripEvent", mock.Anything, "E1").Return(assert.AnError)

	svc := event.NewService(repo, stripper, revalidate.NopNotifier{})

	assert.NoError(t, svc.Delete(context.Background(), "E1"))
}

func TestDeleteMissingEvent(t *testing.T) {
	repo := new(MockRepository)
	stripper := new(MockStripper)

	repo.On("GetByID", mock.Anything, "nope").Return(nil, gorm.ErrRecordNotFound)

	svc := event.NewService(repo, stripper, revalidate.NopNotifier{})

	assert.ErrorIs(t, svc.Delete(context.Background(), "nope"), gorm.ErrRecordNotFound)
	stripper.AssertNotCalled(t, "StripEvent")
	repo.AssertNotCalled(t, "Delete")
}

func TestListReturnsCountsWithoutMediaPayloads(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListPaginated", mock.Anything, 1, 20, "").Return([]event.Event{
		{ID: "E1", Title: "Sự kiện 1"},
	}, int64(1), nil)

	svc := event.NewService(repo, new(MockStripper), revalidate.NopNotifier{})

	out, total, err := svc.List(context.Background(), 1, 20, "")

	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, out, 1)
	assert.Nil(t, out[0].Images)
	assert.Nil(t, out[0].Videos)
}

func TestCreateKeepsScheduleFields(t *testing.T) {
	repo := new(MockRepository)
	stripper := new(MockStripper)

	place := "Đà Nẵng"
	start := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 8, 3, 0, 0, 0, 0, time.UTC)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *event.Event) bool {
		return e.Title == "Hội nghị ABC" &&
			e.Place != nil && *e.Place == place &&
			e.StartDate != nil && e.StartDate.Equal(start) &&
			e.EndDate != nil && e.EndDate.Equal(end)
	})).Return(nil)
	repo.On("GetByID", mock.Anything, mock.Anything).Return(&event.Event{ID: "E1"}, nil)

	svc := event.NewService(repo, stripper, revalidate.NopNotifier{})
	_, err := svc.Create(context.Background(), event.CreateRequest{
		Title:     "Hội nghị ABC",
		Place:     &place,
		StartDate: &start,
		EndDate:   &end,
	})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateWritesScheduleColumns(t *testing.T) {
	repo := new(MockRepository)
	stripper := new(MockStripper)

	e := &event.Event{ID: "E1", Title: "Hội nghị ABC"}
	place := "Hà Nội"
	start := time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 9, 12, 0, 0, 0, 0, time.UTC)

	repo.On("GetByID", mock.Anything, "E1").Return(e, nil)
	repo.On("Update", mock.Anything, e, mock.MatchedBy(func(fields map[string]interface{}) bool {
		return fields["place"] == place && fields["start_date"] == start && fields["end_date"] == end
	})).Return(nil)

	svc := event.NewService(repo, stripper, revalidate.NopNotifier{})
	_, err := svc.Update(context.Background(), "E1", event.UpdateRequest{
		Place:     &place,
		StartDate: &start,
		EndDate:   &end,
	})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
