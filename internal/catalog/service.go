package catalog

import (
	"context"
	"errors"

	"gorm.io/datatypes"

	"github.com/fproduction/studio-backend/internal/revalidate"
)

var ErrNameTaken = errors.New("service name already exists")

type Catalog struct {
	repo     Repository
	notifier revalidate.Notifier
}

func NewCatalog(repo Repository, notifier revalidate.Notifier) *Catalog {
	return &Catalog{repo: repo, notifier: notifier}
}

// Detail is a service plus the resolved events of its order manifest,
// in manifest order, for the admin ordering UI.
type Detail struct {
	Service
	Events []EventRef `json:"events"`
}

func (c *Catalog) List(ctx context.Context) ([]Detail, error) {
	services, err := c.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Detail, 0, len(services))
	for _, s := range services {
		manifest := s.Manifest()
		refs, err := c.repo.ListEventRefs(ctx, []string(manifest))
		if err != nil {
			return nil, err
		}
		ordered := SortByManifest(refs, manifest, func(r EventRef) string { return r.ID })
		out = append(out, Detail{Service: s, Events: ordered})
	}
	return out, nil
}

func (c *Catalog) Get(ctx context.Context, id string) (*Service, error) {
	return c.repo.GetByID(ctx, id)
}

// FindByName matches case-insensitively, used by the landing resolver.
func (c *Catalog) FindByName(ctx context.Context, name string) (*Service, error) {
	return c.repo.FindByName(ctx, name)
}

func (c *Catalog) Create(ctx context.Context, req CreateRequest) (*Service, error) {
	if existing, err := c.repo.FindByName(ctx, req.Name); err == nil && existing != nil {
		return nil, ErrNameTaken
	}

	s := &Service{
		Name:        req.Name,
		Description: req.Description,
		EventOrder:  datatypes.JSONSlice[string]{},
	}
	if err := c.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	c.notifier.PathStale(ctx, "/admin/services", "service created")
	return s, nil
}

func (c *Catalog) Update(ctx context.Context, id string, req UpdateRequest) (*Service, error) {
	s, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Name != nil && *req.Name != s.Name {
		if existing, err := c.repo.FindByName(ctx, *req.Name); err == nil && existing != nil && existing.ID != id {
			return nil, ErrNameTaken
		}
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	orderChanged := false
	if req.EventOrder != nil {
		// manifest is normalized before persisting; IDs of deleted
		// events are tolerated and skipped by consumers
		normalized := OrderManifest(*req.EventOrder).Normalize()
		fields["event_order"] = datatypes.JSONSlice[string](normalized)
		orderChanged = true
	}
	if len(fields) > 0 {
		if err := c.repo.Update(ctx, s, fields); err != nil {
			return nil, err
		}
	}

	if orderChanged {
		c.notifier.PathStale(ctx, "/", "service event order changed")
	}
	c.notifier.PathStale(ctx, "/admin/services", "service updated")
	return c.repo.GetByID(ctx, id)
}

func (c *Catalog) Delete(ctx context.Context, id string) error {
	s, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := c.repo.Delete(ctx, s); err != nil {
		return err
	}
	c.notifier.PathStale(ctx, "/admin/services", "service deleted")
	return nil
}

// StripEvent removes a deleted event's ID from every service manifest.
func (c *Catalog) StripEvent(ctx context.Context, eventID string) error {
	return c.repo.StripEventFromAll(ctx, eventID)
}
