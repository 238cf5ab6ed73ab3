package auditlog

import (
	"context"
	"encoding/json"
	"math"
)

type Service interface {
	LogAction(ctx context.Context, action, targetType, targetID string, details map[string]interface{}, ip, status string)
	GetLogs(ctx context.Context, filter Filter) (*PaginatedLogs, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// LogAction persists an audit entry. Audit failures are intentionally
// swallowed: they must never break the operation being audited.
func (s *service) LogAction(ctx context.Context, action, targetType, targetID string, details map[string]interface{}, ip, status string) {
	if details == nil {
		details = map[string]interface{}{}
	}
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		detailsJSON = []byte("{}")
	}

	_ = s.repo.Create(ctx, &AdminActionLog{
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Details:    string(detailsJSON),
		IPAddress:  ip,
		Status:     status,
	})
}

func (s *service) GetLogs(ctx context.Context, filter Filter) (*PaginatedLogs, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}

	logs, total, err := s.repo.GetByFilter(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))

	return &PaginatedLogs{
		Data:       logs,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}
