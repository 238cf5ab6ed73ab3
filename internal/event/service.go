package event

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/fproduction/studio-backend/internal/revalidate"
)

var ErrMissingTitle = errors.New("event title is required")

// ManifestStripper removes a deleted event from every service order manifest.
// Implemented by the catalog.
type ManifestStripper interface {
	StripEvent(ctx context.Context, eventID string) error
}

type Service struct {
	repo     Repository
	catalog  ManifestStripper
	notifier revalidate.Notifier
}

func NewService(repo Repository, cat ManifestStripper, notifier revalidate.Notifier) *Service {
	return &Service{repo: repo, catalog: cat, notifier: notifier}
}

func (s *Service) List(ctx context.Context, page, limit int, search string) ([]Response, int64, error) {
	events, total, err := s.repo.ListPaginated(ctx, page, limit, search)
	if err != nil {
		return nil, 0, err
	}

	out := make([]Response, 0, len(events))
	for _, e := range events {
		resp := Response{Event: e, ImageCount: len(e.Images), VideoCount: len(e.Videos)}
		// the list view only needs counts, not the media payloads
		resp.Images = nil
		resp.Videos = nil
		out = append(out, resp)
	}
	return out, total, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*Event, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrMissingTitle
	}

	e := &Event{
		Title:       title,
		Client:      req.Client,
		Place:       req.Place,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	if len(req.ImageIDs) > 0 {
		if err := s.repo.ReplaceImages(ctx, e, req.ImageIDs); err != nil {
			return nil, err
		}
	}
	if len(req.VideoIDs) > 0 {
		if err := s.repo.ReplaceVideos(ctx, e, req.VideoIDs); err != nil {
			return nil, err
		}
	}

	s.notifier.PathStale(ctx, "/admin/events", "event created")
	return s.repo.GetByID(ctx, e.ID)
}

func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*Event, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		if t := strings.TrimSpace(*req.Title); t != "" {
			fields["title"] = t
		}
	}
	if req.Client != nil {
		fields["client"] = *req.Client
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Place != nil {
		fields["place"] = *req.Place
	}
	if req.StartDate != nil {
		fields["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		fields["end_date"] = *req.EndDate
	}
	if len(fields) > 0 {
		if err := s.repo.Update(ctx, e, fields); err != nil {
			return nil, err
		}
	}
	if req.ImageIDs != nil {
		if err := s.repo.ReplaceImages(ctx, e, *req.ImageIDs); err != nil {
			return nil, err
		}
	}
	if req.VideoIDs != nil {
		if err := s.repo.ReplaceVideos(ctx, e, *req.VideoIDs); err != nil {
			return nil, err
		}
	}

	s.notifier.PathStale(ctx, "/", "event updated")
	return s.repo.GetByID(ctx, id)
}

// Delete removes the event, its join rows, and every reference to it in the
// service order manifests. Manifest stripping failure does not roll back the
// delete; stale manifest IDs are skipped by consumers anyway.
func (s *Service) Delete(ctx context.Context, id string) error {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, e); err != nil {
		return err
	}
	if err := s.catalog.StripEvent(ctx, id); err != nil {
		log.Printf("event delete: failed to strip %s from service manifests: %v", id, err)
	}

	s.notifier.PathStale(ctx, "/", "event deleted")
	return nil
}
