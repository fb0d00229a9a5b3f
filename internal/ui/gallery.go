package ui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/skyline/internal/carousel"
	"github.com/gravitrone/skyline/internal/catalog"
	"github.com/gravitrone/skyline/internal/ui/components"
)

type galleryLoadedMsg struct{ images []catalog.GalleryImage }

// GalleryModel shows gallery images in a strip carousel, one category at a
// time.
type GalleryModel struct {
	env
	images     []catalog.GalleryImage
	categories []string
	category   string
	shown      []catalog.GalleryImage

	slides  carousel.Model
	mounted bool
}

// NewGalleryModel creates the gallery tab.
func NewGalleryModel(e env) GalleryModel {
	return GalleryModel{env: e}
}

func (m GalleryModel) Init() tea.Cmd {
	return m.load
}

func (m GalleryModel) load() tea.Msg {
	images, err := m.repo.Gallery(context.Background())
	if err != nil {
		return errMsg{fmt.Errorf("load gallery: %w", err)}
	}
	return galleryLoadedMsg{images: images}
}

func (m GalleryModel) Update(msg tea.Msg) (GalleryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case galleryLoadedMsg:
		m.images = msg.images
		m.categories = catalog.Categories(msg.images)
		if !slices.Contains(m.categories, m.category) {
			m.category = ""
		}
		return m.remount()
	case carousel.TickMsg, carousel.SettledMsg:
		if !m.mounted {
			return m, nil
		}
		var cmd tea.Cmd
		m.slides, cmd = m.slides.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if !m.mounted {
			return m, nil
		}
		if isKey(msg, "c") {
			m.category = cycle(append([]string{""}, m.categories...), m.category)
			return m.remount()
		}
		var cmd tea.Cmd
		m.slides, cmd = m.slides.Update(msg)
		return m, cmd
	}
	return m, nil
}

// remount rebuilds the carousel over the images of the current category.
func (m GalleryModel) remount() (GalleryModel, tea.Cmd) {
	m = m.Unmount()
	m.shown = catalog.ImagesInCategory(m.images, m.category)
	m.slides = m.newCarousel(len(m.shown))
	m.mounted = true
	return m, m.slides.Init()
}

// Unmount disposes the carousel.
func (m GalleryModel) Unmount() GalleryModel {
	if m.mounted {
		m.slides = m.slides.Dispose()
		m.mounted = false
	}
	return m
}

func (m GalleryModel) wantsDigits() bool {
	return m.mounted && m.slides.Controls()
}

func (m GalleryModel) View() string {
	if !m.mounted {
		return components.Indent(components.CenterLine(m.styles.Muted.Render("Loading gallery..."), m.width), 1)
	}

	category := m.category
	if category == "" {
		category = "all"
	}
	header := m.styles.Muted.Render("category: ") + m.styles.Accented.Render(category)
	if len(m.categories) > 1 {
		header += m.styles.Muted.Render(fmt.Sprintf("  (%d categories, c to cycle)", len(m.categories)))
	}

	body := m.styles.Muted.Render("No images yet.")
	if len(m.shown) > 0 {
		frames := make([]carousel.Frame, len(m.shown))
		for i, img := range m.shown {
			frames[i] = carousel.Frame{
				Image:   components.SanitizeOneLine(img.Image),
				Caption: components.SanitizeOneLine(img.Caption),
			}
		}
		body = carousel.NewStrip(frames, m.styles).View(m.slides, components.BoxContentWidth(m.width))
	}

	content := strings.Join([]string{header, "", body}, "\n")
	return components.Indent(components.TitledBox(m.styles, "Gallery", content, m.width), 1)
}
