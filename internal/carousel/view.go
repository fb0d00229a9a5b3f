package carousel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/gravitrone/skyline/internal/theme"
)

const defaultWidth = 60

// Slide is the content of one banner slide.
type Slide struct {
	Title       string
	Subtitle    string
	Description string
	Image       string
	CTA         string
}

// Banner renders slides as a stack: every slide is laid out so the frame
// takes the height of the tallest one, but only the current slide is drawn.
// The slide is drawn faint while the transition lock is held.
type Banner struct {
	slides []Slide
	styles theme.Styles
}

// NewBanner creates a banner view over slides.
func NewBanner(slides []Slide, styles theme.Styles) Banner {
	return Banner{slides: slides, styles: styles}
}

// View renders the current slide of m and its controls.
func (b Banner) View(m Model, width int) string {
	if m.Count() == 0 || m.Index() >= len(b.slides) {
		return ""
	}
	if width <= 0 {
		width = defaultWidth
	}
	st := b.styles

	height := 0
	for _, s := range b.slides {
		height = max(height, lipgloss.Height(b.slide(s, false, width)))
	}
	body := lipgloss.NewStyle().Height(height).Render(b.slide(b.slides[m.Index()], m.Transitioning(), width))

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(st.Primary).
		Padding(0, 1).
		Width(width - 2).
		Render(body)

	if !m.Controls() {
		return frame
	}
	return frame + "\n" + controls(m, st, width)
}

func (b Banner) slide(s Slide, fade bool, width int) string {
	st := b.styles
	var lines []string
	if s.Image != "" {
		lines = append(lines, st.Muted.Faint(fade).Render("▣ "+s.Image), "")
	}
	lines = append(lines, st.Title.Faint(fade).Render(s.Title))
	if s.Subtitle != "" {
		lines = append(lines, st.Subtitle.Faint(fade).Render(s.Subtitle))
	}
	if s.Description != "" {
		lines = append(lines, "", st.Body.Faint(fade).Width(width-4).Render(s.Description))
	}
	if s.CTA != "" {
		lines = append(lines, "", st.Button.Faint(fade).Render(s.CTA+" →"))
	}
	return strings.Join(lines, "\n")
}

// Frame is one slide of a strip: an image reference and its caption.
type Frame struct {
	Image   string
	Caption string
}

// Renderer draws frame i of a strip within width columns.
type Renderer func(i int, f Frame, width int) string

// StripOption configures a Strip.
type StripOption func(*Strip)

// WithRenderer replaces the default image frame.
func WithRenderer(r Renderer) StripOption {
	return func(s *Strip) { s.render = r }
}

// Strip lays every frame side by side and shows the window of the strip that
// starts at the current frame.
type Strip struct {
	frames []Frame
	styles theme.Styles
	render Renderer
}

// NewStrip creates a strip view over frames.
func NewStrip(frames []Frame, styles theme.Styles, opts ...StripOption) Strip {
	s := Strip{frames: frames, styles: styles}
	s.render = s.defaultFrame
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// View renders the window of the strip at the current frame of m.
func (s Strip) View(m Model, width int) string {
	if m.Count() == 0 || len(s.frames) == 0 {
		return ""
	}
	if width <= 0 {
		width = defaultWidth
	}

	blocks := make([][]string, len(s.frames))
	height := 0
	for i, f := range s.frames {
		blocks[i] = strings.Split(s.render(i, f, width), "\n")
		height = max(height, len(blocks[i]))
	}

	left := m.Index() * width
	rows := make([]string, height)
	for r := 0; r < height; r++ {
		var strip strings.Builder
		for _, block := range blocks {
			line := ""
			if r < len(block) {
				line = block[r]
			}
			strip.WriteString(fit(line, width))
		}
		rows[r] = ansi.Cut(strip.String(), left, left+width)
	}

	view := strings.Join(rows, "\n")
	if !m.Controls() {
		return view
	}
	return view + "\n" + controls(m, s.styles, width)
}

func (s Strip) defaultFrame(i int, f Frame, width int) string {
	image := s.styles.Muted.Render("▣ " + f.Image)
	body := lipgloss.NewStyle().
		Width(width-4).
		Height(3).
		Align(lipgloss.Center, lipgloss.Center).
		Render(image)
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.styles.Secondary).
		Padding(0, 1).
		Render(body)
	caption := s.styles.Body.Width(width).Align(lipgloss.Center).Render(f.Caption)
	return frame + "\n" + caption
}

// fit pads or truncates line to exactly width columns.
func fit(line string, width int) string {
	w := ansi.StringWidth(line)
	if w > width {
		return ansi.Truncate(line, width, "")
	}
	return line + strings.Repeat(" ", width-w)
}

// controls renders the arrows and one dot per slide, the current dot
// elongated.
func controls(m Model, st theme.Styles, width int) string {
	dots := make([]string, m.Count())
	for i := range dots {
		if i == m.Index() {
			dots[i] = lipgloss.NewStyle().Foreground(st.Primary).Render("━━")
		} else {
			dots[i] = st.Muted.Render("•")
		}
	}
	row := st.Accented.Render("‹") + "  " + strings.Join(dots, " ") + "  " + st.Accented.Render("›")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, row)
}
