package image

import (
	"context"
	"fmt"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/fproduction/studio-backend/internal/revalidate"
	"github.com/fproduction/studio-backend/internal/storage"
)

// MissingFilesError reports batch items whose objects never arrived in S3.
type MissingFilesError struct {
	Keys []string
}

func (e *MissingFilesError) Error() string {
	return fmt.Sprintf("%d file(s) missing in S3", len(e.Keys))
}

type Service struct {
	repo     Repository
	store    storage.ObjectStore
	notifier revalidate.Notifier
}

func NewService(repo Repository, store storage.ObjectStore, notifier revalidate.Notifier) *Service {
	return &Service{repo: repo, store: store, notifier: notifier}
}

func (s *Service) List(ctx context.Context, page, limit int, sortBy, sortOrder string) ([]Response, int64, error) {
	images, total, err := s.repo.ListPaginated(ctx, page, limit, sortBy, sortOrder)
	if err != nil {
		return nil, 0, err
	}
	return s.toResponses(images), total, nil
}

func (s *Service) ListRecent(ctx context.Context, limit int) ([]Response, error) {
	images, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	return s.toResponses(images), nil
}

// PresignUploads mints one PUT URL per requested file.
func (s *Service) PresignUploads(ctx context.Context, files []storage.UploadRequest) ([]storage.PresignedUpload, error) {
	out := make([]storage.PresignedUpload, len(files))
	for i, f := range files {
		presigned, err := s.store.PresignUpload(ctx, f)
		if err != nil {
			return nil, err
		}
		out[i] = presigned
	}
	return out, nil
}

// SaveBatch verifies every uploaded object exists, then inserts all rows in
// one transaction. A missing object means the client's PUT failed; the whole
// batch is rejected so the admin can retry it.
func (s *Service) SaveBatch(ctx context.Context, items []BatchItem) ([]Response, error) {
	exists := make([]bool, len(items))

	g, gctx := errgroup.WithContext(ctx)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			ok, err := s.store.Exists(gctx, item.S3Key)
			if err != nil {
				return err
			}
			exists[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("verify uploads: %w", err)
	}

	var missing []string
	for i, ok := range exists {
		if !ok {
			missing = append(missing, items[i].S3Key)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingFilesError{Keys: missing}
	}

	images := make([]*Image, len(items))
	for i, item := range items {
		img := &Image{
			S3Key:         item.S3Key,
			ShowOnLanding: true,
		}
		if t := strings.TrimSpace(item.Title); t != "" {
			img.Title = &t
		}
		if f := strings.TrimSpace(item.Format); f != "" {
			img.Format = &f
		}
		if item.FileSize > 0 {
			size := item.FileSize
			img.FileSize = &size
		}
		if item.Width > 0 {
			w := item.Width
			img.Width = &w
		}
		if item.Height > 0 {
			h := item.Height
			img.Height = &h
		}
		images[i] = img
	}

	if err := s.repo.CreateBatch(ctx, images); err != nil {
		return nil, err
	}

	s.notifier.PathStale(ctx, "/admin/media/images", "images uploaded")

	saved := make([]Image, len(images))
	for i, img := range images {
		saved[i] = *img
	}
	return s.toResponses(saved), nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*Response, error) {
	img, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		if t := strings.TrimSpace(*req.Title); t != "" {
			fields["title"] = t
		} else {
			fields["title"] = nil
		}
	}
	if req.ShowOnLanding != nil {
		fields["show_on_landing"] = *req.ShowOnLanding
	}
	if len(fields) > 0 {
		if err := s.repo.Update(ctx, img, fields); err != nil {
			return nil, err
		}
	}
	if req.EventIDs != nil {
		if err := s.repo.ReplaceEvents(ctx, img, *req.EventIDs); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.notifier.PathStale(ctx, "/admin/media/images", "image updated")
	if req.ShowOnLanding != nil {
		s.notifier.PathStale(ctx, "/", "landing visibility changed")
	}

	resp := s.toResponse(*updated)
	return &resp, nil
}

// Delete removes the S3 object best-effort, then the row. A failed S3
// delete only leaves an orphan object behind.
func (s *Service) Delete(ctx context.Context, id string) error {
	img, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, img.S3Key); err != nil {
		log.Printf("S3 delete failed for %s: %v", img.S3Key, err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.notifier.PathStale(ctx, "/admin/media/images", "image deleted")
	return nil
}

func (s *Service) toResponse(img Image) Response {
	return Response{Image: img, URL: s.store.PublicURL(img.S3Key)}
}

func (s *Service) toResponses(images []Image) []Response {
	out := make([]Response, len(images))
	for i, img := range images {
		out[i] = s.toResponse(img)
	}
	return out
}
