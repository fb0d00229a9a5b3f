package catalog

import (
	"strings"
	"time"

	"github.com/gravitrone/skyline/internal/theme"
)

// Store keys and collections.
const (
	KeySettings     = "settings"
	KeyBanners      = "banners"
	KeyProjects     = "projects"
	KeyGallery      = "gallery"
	KeyBlog         = "blog"
	KeyTestimonials = "testimonials"

	CollectionEnquiries = "enquiries"
	CollectionLeads     = "leads"
)

// Project statuses.
const (
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
	StatusUpcoming  = "upcoming"
)

// Project kinds.
const (
	KindResidential = "residential"
	KindCommercial  = "commercial"
	KindPlotted     = "plotted"
)

// Lead statuses.
const (
	LeadNew       = "new"
	LeadContacted = "contacted"
	LeadVisited   = "site_visit"
	LeadClosed    = "closed"
)

// Link is a labelled footer or call-to-action target.
type Link struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// Settings is the header/footer and theme data of the site.
type Settings struct {
	Company     string      `json:"company" yaml:"company"`
	Tagline     string      `json:"tagline" yaml:"tagline"`
	Phone       string      `json:"phone" yaml:"phone"`
	Email       string      `json:"email" yaml:"email"`
	Address     string      `json:"address" yaml:"address"`
	FooterLinks []Link      `json:"footerLinks" yaml:"footerLinks"`
	Theme       theme.Theme `json:"theme" yaml:"theme"`
}

// Validate checks required fields and normalizes the theme.
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.Company) == "" {
		return invalid("company", "is required")
	}
	th, err := s.Theme.Normalize()
	if err != nil {
		return invalid("theme", err.Error())
	}
	s.Theme = th
	return nil
}

// DefaultSettings is used when the store holds no settings.
func DefaultSettings() Settings {
	return Settings{
		Company: "Skyline Developers",
		Tagline: "Homes built around you",
		Theme:   theme.Default(),
	}
}

// Banner is one hero slide.
type Banner struct {
	Title       string `json:"title" yaml:"title"`
	Subtitle    string `json:"subtitle" yaml:"subtitle"`
	Description string `json:"description" yaml:"description"`
	Image       string `json:"image" yaml:"image"`
	CTA         Link   `json:"cta" yaml:"cta"`
}

// Validate requires a title.
func (b *Banner) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return invalid("title", "is required")
	}
	return nil
}

// Project is one development in the catalog.
type Project struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Location    string   `json:"location" yaml:"location"`
	Status      string   `json:"status" yaml:"status"`
	Kind        string   `json:"kind" yaml:"kind"`
	Price       string   `json:"price" yaml:"price"`
	Units       int      `json:"units" yaml:"units"`
	Description string   `json:"description" yaml:"description"`
	Amenities   []string `json:"amenities" yaml:"amenities"`
	Images      []string `json:"images" yaml:"images"`
	Featured    bool     `json:"featured" yaml:"featured"`
}

// Validate requires id and name and normalizes status and kind.
func (p *Project) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return invalid("id", "is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return invalid("name", "is required")
	}
	p.Status = strings.ToLower(strings.TrimSpace(p.Status))
	switch p.Status {
	case StatusOngoing, StatusCompleted, StatusUpcoming:
	case "":
		p.Status = StatusUpcoming
	default:
		return invalid("status", "unknown status "+p.Status)
	}
	p.Kind = strings.ToLower(strings.TrimSpace(p.Kind))
	if p.Kind == "" {
		p.Kind = KindResidential
	}
	return nil
}

// GalleryImage is one gallery entry.
type GalleryImage struct {
	Image    string `json:"image" yaml:"image"`
	Caption  string `json:"caption" yaml:"caption"`
	Category string `json:"category" yaml:"category"`
}

// Validate requires an image reference.
func (g *GalleryImage) Validate() error {
	if strings.TrimSpace(g.Image) == "" {
		return invalid("image", "is required")
	}
	if g.Category == "" {
		g.Category = "general"
	}
	return nil
}

// BlogPost is one article.
type BlogPost struct {
	Slug      string    `json:"slug" yaml:"slug"`
	Title     string    `json:"title" yaml:"title"`
	Author    string    `json:"author" yaml:"author"`
	Published time.Time `json:"published" yaml:"published"`
	Summary   string    `json:"summary" yaml:"summary"`
	Body      string    `json:"body" yaml:"body"`
	Tags      []string  `json:"tags" yaml:"tags"`
}

// Validate requires slug and title.
func (b *BlogPost) Validate() error {
	if strings.TrimSpace(b.Slug) == "" {
		return invalid("slug", "is required")
	}
	if strings.TrimSpace(b.Title) == "" {
		return invalid("title", "is required")
	}
	return nil
}

// Testimonial is one customer quote.
type Testimonial struct {
	Name    string `json:"name" yaml:"name"`
	Project string `json:"project" yaml:"project"`
	Quote   string `json:"quote" yaml:"quote"`
	Rating  int    `json:"rating" yaml:"rating"`
}

// Validate requires name and quote and clamps the rating to 0..5.
func (t *Testimonial) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return invalid("name", "is required")
	}
	if strings.TrimSpace(t.Quote) == "" {
		return invalid("quote", "is required")
	}
	if t.Rating < 0 {
		t.Rating = 0
	}
	if t.Rating > 5 {
		t.Rating = 5
	}
	return nil
}

// Enquiry is a submission of the contact form.
type Enquiry struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	ProjectID string    `json:"projectId,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Lead tracks an enquiry through the sales pipeline.
type Lead struct {
	ID        string    `json:"id"`
	EnquiryID string    `json:"enquiryId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	ProjectID string    `json:"projectId,omitempty"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate requires some way to match the lead.
func (l *Lead) Validate() error {
	if strings.TrimSpace(l.Email) == "" && strings.TrimSpace(l.Phone) == "" {
		return invalid("contact", "email or phone is required")
	}
	if l.Status == "" {
		l.Status = LeadNew
	}
	return nil
}
