package auditlog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/fproduction/studio-backend/internal/auditlog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, entry *auditlog.AdminActionLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockRepository) GetByFilter(ctx context.Context, filter auditlog.Filter) ([]auditlog.AdminActionLog, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]auditlog.AdminActionLog), args.Get(1).(int64), args.Error(2)
}

func TestLogActionMarshalsDetails(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *auditlog.AdminActionLog) bool {
		return e.Action == "EVENT_DELETE" &&
			e.TargetID == "E1" &&
			e.Status == "success" &&
			e.Details == `{"title":"Hội nghị ABC"}`
	})).Return(nil)

	svc := auditlog.NewService(repo)
	svc.LogAction(context.Background(), "EVENT_DELETE", "event", "E1",
		map[string]interface{}{"title": "Hội nghị ABC"}, "10.0.0.1", "success")

	repo.AssertExpectations(t)
}

func TestLogActionSwallowsRepositoryErrors(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)

	svc := auditlog.NewService(repo)

	assert.NotPanics(t, func() {
		svc.LogAction(context.Background(), "X", "y", "", nil, "", "failure")
	})
}

func TestGetLogsClampsPagination(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetByFilter", mock.Anything, mock.MatchedBy(func(f auditlog.Filter) bool {
		return f.Page == 1 && f.Limit == 20
	})).Return([]auditlog.AdminActionLog{}, int64(45), nil)

	svc := auditlog.NewService(repo)
	out, err := svc.GetLogs(context.Background(), auditlog.Filter{Page: 0, Limit: 500})

	assert.NoError(t, err)
	assert.Equal(t, 3, out.TotalPages)
	repo.AssertExpectations(t)
}
