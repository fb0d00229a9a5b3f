package ui

import (
	"context"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/skyline/internal/carousel"
	"github.com/gravitrone/skyline/internal/catalog"
	"github.com/gravitrone/skyline/internal/store"
	"github.com/gravitrone/skyline/internal/theme"
	"github.com/gravitrone/skyline/internal/ui/components"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "skyline.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func seededCatalog(t *testing.T) *catalog.Repository {
	t.Helper()
	repo := catalog.NewRepository(openTestStore(t), nil)
	f, err := catalog.DefaultFixture()
	require.NoError(t, err)
	_, err = repo.Seed(context.Background(), f)
	require.NoError(t, err)
	return repo
}

func testEnv(repo Catalog) env {
	return env{
		repo:     repo,
		styles:   theme.New(theme.Default()),
		nav:      newNavKeys(false),
		carousel: []carousel.Option{carousel.WithClock(carousel.NewFakeClock())},
		width:    100,
		height:   40,
	}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// typed returns one key message per rune of s.
func typed(s string) []tea.KeyMsg {
	msgs := make([]tea.KeyMsg, 0, len(s))
	for _, r := range s {
		if r == ' ' {
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		msgs = append(msgs, runeKey(r))
	}
	return msgs
}

func plain(s string) string {
	return components.SanitizeText(s)
}
