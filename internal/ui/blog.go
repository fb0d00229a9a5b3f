package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/skyline/internal/catalog"
	"github.com/gravitrone/skyline/internal/ui/components"
)

type blogLoadedMsg struct{ posts []catalog.BlogPost }

const blogDateLayout = "2 Jan 2006"

// BlogModel lists posts as cards and opens one at a time.
type BlogModel struct {
	env
	loaded bool
	posts  []catalog.BlogPost
	list   *components.List
	detail *catalog.BlogPost
}

// NewBlogModel creates the blog tab.
func NewBlogModel(e env) BlogModel {
	return BlogModel{env: e, list: components.NewList(4)}
}

func (m BlogModel) Init() tea.Cmd {
	return m.load
}

func (m BlogModel) load() tea.Msg {
	posts, err := m.repo.Blog(context.Background())
	if err != nil {
		return errMsg{fmt.Errorf("load blog: %w", err)}
	}
	return blogLoadedMsg{posts: posts}
}

func (m BlogModel) Update(msg tea.Msg) (BlogModel, tea.Cmd) {
	switch msg := msg.(type) {
	case blogLoadedMsg:
		m.loaded = true
		m.posts = msg.posts
		m.list.SetLen(len(msg.posts))
		m.detail = nil
	case tea.KeyMsg:
		if m.detail != nil {
			if isBack(msg) {
				m.detail = nil
			}
			return m, nil
		}
		switch {
		case m.nav.isDown(msg):
			m.list.Down()
		case m.nav.isUp(msg):
			m.list.Up()
		case isEnter(msg):
			if idx := m.list.Selected(); idx >= 0 {
				post := m.posts[idx]
				m.detail = &post
			}
		}
	}
	return m, nil
}

func (m BlogModel) atTop() bool {
	return m.detail == nil && m.list.Selected() <= 0
}

func (m BlogModel) View() string {
	if m.detail != nil {
		return m.renderDetail()
	}
	if !m.loaded {
		return components.Indent(components.CenterLine(m.styles.Muted.Render("Loading posts..."), m.width), 1)
	}
	if len(m.posts) == 0 {
		return components.Indent(components.TitledBox(m.styles, "Blog", m.styles.Muted.Render("No posts yet."), m.width), 1)
	}

	start, end := m.list.Window()
	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		p := m.posts[i]
		lines := []string{
			m.styles.Title.Render(components.SanitizeOneLine(p.Title)),
			m.styles.Muted.Render(m.byline(p)),
		}
		if summary := components.SanitizeOneLine(p.Summary); summary != "" {
			lines = append(lines, m.styles.Body.Render(summary))
		}
		cards = append(cards, components.Card(m.styles, strings.Join(lines, "\n"), m.width, i == m.list.Selected()))
	}
	header := m.styles.Muted.Render(fmt.Sprintf("%d posts", len(m.posts)))
	return components.Indent(header+"\n\n"+strings.Join(cards, "\n"), 1)
}

func (m BlogModel) byline(p catalog.BlogPost) string {
	parts := nonEmpty(p.Author)
	if !p.Published.IsZero() {
		parts = append(parts, p.Published.Format(blogDateLayout))
	}
	return strings.Join(parts, " · ")
}

func (m BlogModel) renderDetail() string {
	p := m.detail
	var b strings.Builder
	var meta []string
	if p.Author != "" {
		meta = append(meta, components.InfoRow(m.styles, "By", p.Author))
	}
	if !p.Published.IsZero() {
		meta = append(meta, components.InfoRow(m.styles, "Published", p.Published.Format(blogDateLayout)))
	}
	b.WriteString(strings.Join(meta, "\n"))
	if len(p.Tags) > 0 {
		if len(meta) > 0 {
			b.WriteString("\n")
		}
		tags := make([]string, 0, len(p.Tags))
		for _, tag := range p.Tags {
			tags = append(tags, m.styles.Badge.Render(components.SanitizeOneLine(tag)))
		}
		b.WriteString(strings.Join(tags, " "))
	}
	b.WriteString("\n\n")
	body := strings.TrimSpace(components.SanitizeText(p.Body))
	if body == "" {
		body = components.SanitizeText(p.Summary)
	}
	b.WriteString(m.styles.Body.Width(components.BoxContentWidth(m.width)).Render(body))
	return components.Indent(components.TitledBox(m.styles, components.SanitizeOneLine(p.Title), b.String(), m.width), 1)
}
