package video

import (
	"context"
	"errors"

	"github.com/fproduction/studio-backend/internal/revalidate"
)

var ErrInvalidYoutubeURL = errors.New("invalid youtube url")

type Service struct {
	repo     Repository
	notifier revalidate.Notifier
}

func NewService(repo Repository, notifier revalidate.Notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

func (s *Service) List(ctx context.Context) ([]Video, error) {
	return s.repo.ListRecent(ctx, 60)
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*Video, error) {
	if !IsValidYoutubeURL(req.YoutubeURL) {
		return nil, ErrInvalidYoutubeURL
	}

	v := &Video{
		Title:         req.Title,
		YoutubeURL:    req.YoutubeURL,
		ThumbnailURL:  req.ThumbnailURL,
		ShowOnLanding: true,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	if len(req.EventIDs) > 0 {
		if err := s.repo.ReplaceEvents(ctx, v, req.EventIDs); err != nil {
			return nil, err
		}
	}

	s.notifier.PathStale(ctx, "/admin/media/videos", "video created")
	return s.repo.GetByID(ctx, v.ID)
}

func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*Video, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.YoutubeURL != nil {
		if !IsValidYoutubeURL(*req.YoutubeURL) {
			return nil, ErrInvalidYoutubeURL
		}
		fields["youtube_url"] = *req.YoutubeURL
	}
	if req.ThumbnailURL != nil {
		fields["thumbnail_url"] = *req.ThumbnailURL
	}
	landingChanged := false
	if req.ShowOnLanding != nil && *req.ShowOnLanding != v.ShowOnLanding {
		fields["show_on_landing"] = *req.ShowOnLanding
		landingChanged = true
	}
	if len(fields) > 0 {
		if err := s.repo.Update(ctx, v, fields); err != nil {
			return nil, err
		}
	}
	if req.EventIDs != nil {
		if err := s.repo.ReplaceEvents(ctx, v, *req.EventIDs); err != nil {
			return nil, err
		}
	}

	if landingChanged {
		s.notifier.PathStale(ctx, "/", "video landing visibility changed")
	}
	s.notifier.PathStale(ctx, "/admin/media/videos", "video updated")
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, v); err != nil {
		return err
	}
	s.notifier.PathStale(ctx, "/admin/media/videos", "video deleted")
	return nil
}
