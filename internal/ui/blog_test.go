package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedBlog(t *testing.T) BlogModel {
	t.Helper()
	m := NewBlogModel(testEnv(seededCatalog(t)))
	m, _ = m.Update(m.load())
	return m
}

func TestBlogListsPostCards(t *testing.T) {
	m := loadedBlog(t)

	out := plain(m.View())
	assert.Contains(t, out, "2 posts")
	assert.Contains(t, out, "Choosing the right floor for your family")
	assert.Contains(t, out, "Priya Menon · 11 Feb 2025")
	assert.Contains(t, out, "Tower B bookings start this month.")
}

func TestBlogOpensAndClosesDetail(t *testing.T) {
	m := loadedBlog(t)

	m, _ = m.Update(keyOf(tea.KeyDown))
	assert.False(t, m.atTop())
	m, _ = m.Update(keyOf(tea.KeyEnter))
	require.NotNil(t, m.detail)
	assert.Equal(t, "heights-phase-two", m.detail.Slug)

	out := plain(m.View())
	assert.Contains(t, out, "Skyline Heights phase two is open")
	assert.Contains(t, out, "Tower B adds 210 homes")
	assert.Contains(t, out, "news")
	assert.Contains(t, out, "By: Skyline Team")
	assert.Contains(t, out, "Published: 2 Jun 2025")

	m, _ = m.Update(keyOf(tea.KeyEsc))
	assert.Nil(t, m.detail)
	assert.Contains(t, plain(m.View()), "2 posts")
}

func TestBlogEmpty(t *testing.T) {
	m := NewBlogModel(testEnv(seededCatalog(t)))
	assert.Contains(t, plain(m.View()), "Loading posts")

	m, _ = m.Update(blogLoadedMsg{})
	m, _ = m.Update(keyOf(tea.KeyEnter))
	assert.Nil(t, m.detail)
	assert.Contains(t, plain(m.View()), "No posts yet.")
}
