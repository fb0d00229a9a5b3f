package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedHome(t *testing.T) HomeModel {
	t.Helper()
	m := NewHomeModel(testEnv(seededCatalog(t)))
	m, cmd := m.Update(m.load())
	require.NotNil(t, cmd)
	t.Cleanup(func() { m.Unmount() })
	return m
}

func TestHomeMountsBannerCarousel(t *testing.T) {
	m := loadedHome(t)

	assert.True(t, m.mounted)
	assert.Equal(t, 3, m.slides.Count())
	assert.True(t, m.wantsDigits())

	out := plain(m.View())
	assert.Contains(t, out, "Skyline Heights")
	assert.Contains(t, out, "Book a site visit")
	assert.Contains(t, out, "Featured")
	assert.Contains(t, out, "Lakeview Commons")
	assert.NotContains(t, out, "Offices on the water")
}

func TestHomeArrowAdvancesAndLocks(t *testing.T) {
	m := loadedHome(t)

	m, _ = m.Update(keyOf(tea.KeyRight))
	assert.Equal(t, 1, m.slides.Index())
	assert.True(t, m.slides.Transitioning())
	assert.Contains(t, plain(m.View()), "Offices on the water")

	m, _ = m.Update(keyOf(tea.KeyRight))
	assert.Equal(t, 1, m.slides.Index())
}

func TestHomeDigitJumps(t *testing.T) {
	m := loadedHome(t)

	m, _ = m.Update(runeKey('3'))
	assert.Equal(t, 2, m.slides.Index())
	assert.Contains(t, plain(m.View()), "Build your own")
}

func TestHomeUnmountDisposesCarousel(t *testing.T) {
	m := loadedHome(t)
	slides := m.slides

	m = m.Unmount()
	assert.False(t, m.mounted)
	assert.True(t, slides.Disposed())
	assert.Contains(t, plain(m.View()), "Loading")

	m, cmd := m.Update(keyOf(tea.KeyRight))
	assert.Nil(t, cmd)
	assert.False(t, m.mounted)
}

func TestHomeReloadReplacesCarousel(t *testing.T) {
	m := loadedHome(t)
	first := m.slides

	m, _ = m.Update(m.load())
	assert.True(t, first.Disposed())
	assert.NotEqual(t, first.ID(), m.slides.ID())
	assert.False(t, m.slides.Disposed())
}

func TestHomeWithoutBanners(t *testing.T) {
	m := NewHomeModel(testEnv(seededCatalog(t)))
	m, _ = m.Update(homeLoadedMsg{})
	t.Cleanup(func() { m.Unmount() })

	assert.False(t, m.wantsDigits())
	assert.Contains(t, plain(m.View()), "No banners yet")
}
