package ui

import (
	"context"

	"github.com/gravitrone/skyline/internal/carousel"
	"github.com/gravitrone/skyline/internal/catalog"
	"github.com/gravitrone/skyline/internal/theme"
)

// Catalog is the data the TUI reads and writes.
type Catalog interface {
	Settings(ctx context.Context) (catalog.Settings, error)
	Banners(ctx context.Context) ([]catalog.Banner, error)
	Projects(ctx context.Context) ([]catalog.Project, error)
	Gallery(ctx context.Context) ([]catalog.GalleryImage, error)
	Blog(ctx context.Context) ([]catalog.BlogPost, error)
	Testimonials(ctx context.Context) ([]catalog.Testimonial, error)
	SubmitEnquiry(ctx context.Context, e catalog.Enquiry) (string, error)
	TrackLeads(ctx context.Context, query string) ([]catalog.Lead, error)
}

// env is what every tab needs from the App. The App pushes a fresh copy to
// each tab whenever the theme or window size changes.
type env struct {
	repo     Catalog
	styles   theme.Styles
	nav      navKeys
	carousel []carousel.Option
	width    int
	height   int
}

func (e env) newCarousel(count int) carousel.Model {
	return carousel.New(count, e.carousel...)
}
