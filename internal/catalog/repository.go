// Package catalog turns the loosely-typed values of the local store into
// validated records and implements the site's read and write operations.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/gravitrone/skyline/internal/logging"
	"github.com/gravitrone/skyline/internal/store"
	"github.com/gravitrone/skyline/internal/theme"
)

// Backend is the key-value store the repository reads from.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	PutJSON(ctx context.Context, key string, v any) error
	Add(ctx context.Context, collection string, item any) (string, error)
	List(ctx context.Context, collection string) ([]store.Item, error)
}

// Repository reads and writes site records.
type Repository struct {
	backend Backend
	logger  *zap.Logger
}

// NewRepository wraps backend.
func NewRepository(backend Backend, logger *zap.Logger) *Repository {
	logger = logging.OrNop(logger)
	return &Repository{backend: backend, logger: logger.Named("catalog")}
}

// Settings returns the stored settings, or DefaultSettings when none exist or
// the stored value is invalid.
func (r *Repository) Settings(ctx context.Context) (Settings, error) {
	data, err := r.backend.Get(ctx, KeySettings)
	if err != nil {
		return DefaultSettings(), err
	}
	if data == nil {
		return DefaultSettings(), nil
	}
	s, err := decodeOne[Settings](KeySettings, data)
	if err != nil {
		r.logger.Warn("settings invalid, using defaults", zap.Error(err))
		return DefaultSettings(), nil
	}
	return s, nil
}

// SaveSettings validates and stores s.
func (r *Repository) SaveSettings(ctx context.Context, s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	return r.backend.PutJSON(ctx, KeySettings, s)
}

// SaveTheme overlays patch on the stored theme.
func (r *Repository) SaveTheme(ctx context.Context, patch theme.Theme) (theme.Theme, error) {
	s, err := r.Settings(ctx)
	if err != nil {
		return theme.Theme{}, err
	}
	merged, err := s.Theme.Merge(patch).Normalize()
	if err != nil {
		return theme.Theme{}, err
	}
	s.Theme = merged
	if err := r.SaveSettings(ctx, s); err != nil {
		return theme.Theme{}, fmt.Errorf("save theme: %w", err)
	}
	return merged, nil
}

// Banners returns the hero slides.
func (r *Repository) Banners(ctx context.Context) ([]Banner, error) {
	return loadList[Banner](ctx, r, KeyBanners)
}

// Projects returns the project catalog.
func (r *Repository) Projects(ctx context.Context) ([]Project, error) {
	return loadList[Project](ctx, r, KeyProjects)
}

// Project returns the project with id.
func (r *Repository) Project(ctx context.Context, id string) (Project, error) {
	projects, err := r.Projects(ctx)
	if err != nil {
		return Project{}, err
	}
	for _, p := range projects {
		if p.ID == id {
			return p, nil
		}
	}
	return Project{}, fmt.Errorf("project %s: %w", id, ErrNotFound)
}

// Gallery returns the gallery images.
func (r *Repository) Gallery(ctx context.Context) ([]GalleryImage, error) {
	return loadList[GalleryImage](ctx, r, KeyGallery)
}

// Blog returns the blog posts.
func (r *Repository) Blog(ctx context.Context) ([]BlogPost, error) {
	return loadList[BlogPost](ctx, r, KeyBlog)
}

// Testimonials returns the customer quotes.
func (r *Repository) Testimonials(ctx context.Context) ([]Testimonial, error) {
	return loadList[Testimonial](ctx, r, KeyTestimonials)
}

// Leads returns every stored lead with its store id.
func (r *Repository) Leads(ctx context.Context) ([]Lead, error) {
	items, err := r.backend.List(ctx, CollectionLeads)
	if err != nil {
		return nil, err
	}
	leads := make([]Lead, 0, len(items))
	for _, it := range items {
		var l Lead
		if err := json.Unmarshal(it.Body, &l); err != nil {
			r.logger.Warn("dropping undecodable lead", zap.String("id", it.ID), zap.Error(err))
			continue
		}
		if err := l.Validate(); err != nil {
			r.logger.Warn("dropping invalid lead", zap.String("id", it.ID), zap.Error(err))
			continue
		}
		l.ID = it.ID
		if l.UpdatedAt.IsZero() {
			l.UpdatedAt = it.CreatedAt
		}
		leads = append(leads, l)
	}
	return leads, nil
}

func loadList[T any, P record[T]](ctx context.Context, r *Repository, key string) ([]T, error) {
	data, err := r.backend.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	return decodeList[T, P](key, data, r.logger)
}
