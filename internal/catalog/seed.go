package catalog

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed fixture.yaml
var defaultFixture []byte

// Fixture is the YAML shape accepted by `skyline seed`.
type Fixture struct {
	Settings     *Settings      `yaml:"settings"`
	Banners      []Banner       `yaml:"banners"`
	Projects     []Project      `yaml:"projects"`
	Gallery      []GalleryImage `yaml:"gallery"`
	Blog         []BlogPost     `yaml:"blog"`
	Testimonials []Testimonial  `yaml:"testimonials"`
}

// DefaultFixture returns the fixture shipped with the binary.
func DefaultFixture() (Fixture, error) {
	return ParseFixture(defaultFixture)
}

// ParseFixture decodes a YAML fixture.
func ParseFixture(data []byte) (Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Fixture{}, fmt.Errorf("parse fixture: %w", err)
	}
	return f, nil
}

// SeedCounts reports how many records of each kind were written.
type SeedCounts struct {
	Banners      int
	Projects     int
	Gallery      int
	Blog         int
	Testimonials int
}

// Seed writes every non-empty section of f to the store, replacing what was
// there. Sections left out of f are untouched.
func (r *Repository) Seed(ctx context.Context, f Fixture) (SeedCounts, error) {
	var counts SeedCounts
	if f.Settings != nil {
		if err := r.SaveSettings(ctx, *f.Settings); err != nil {
			return counts, fmt.Errorf("seed settings: %w", err)
		}
	}
	if err := seedList(ctx, r, KeyBanners, f.Banners, &counts.Banners); err != nil {
		return counts, err
	}
	if err := seedList(ctx, r, KeyProjects, f.Projects, &counts.Projects); err != nil {
		return counts, err
	}
	if err := seedList(ctx, r, KeyGallery, f.Gallery, &counts.Gallery); err != nil {
		return counts, err
	}
	if err := seedList(ctx, r, KeyBlog, f.Blog, &counts.Blog); err != nil {
		return counts, err
	}
	if err := seedList(ctx, r, KeyTestimonials, f.Testimonials, &counts.Testimonials); err != nil {
		return counts, err
	}
	return counts, nil
}

func seedList[T any, P record[T]](ctx context.Context, r *Repository, key string, items []T, count *int) error {
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		if err := P(&items[i]).Validate(); err != nil {
			return fmt.Errorf("seed %s[%d]: %w", key, i, err)
		}
	}
	if err := r.backend.PutJSON(ctx, key, items); err != nil {
		return fmt.Errorf("seed %s: %w", key, err)
	}
	*count = len(items)
	return nil
}
