package catalog

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/skyline/internal/store"
	"github.com/gravitrone/skyline/internal/theme"
)

func newTestRepo(t *testing.T) (*Repository, *store.Store) {
	t.Helper()
	s, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "skyline.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return NewRepository(s, nil), s
}

func seededRepo(t *testing.T) *Repository {
	t.Helper()
	repo, _ := newTestRepo(t)
	f, err := DefaultFixture()
	require.NoError(t, err)
	_, err = repo.Seed(context.Background(), f)
	require.NoError(t, err)
	return repo
}

func TestSettingsDefaultsWhenMissing(t *testing.T) {
	repo, _ := newTestRepo(t)

	s, err := repo.Settings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestSettingsDefaultsWhenInvalid(t *testing.T) {
	repo, st := newTestRepo(t)
	require.NoError(t, st.Put(context.Background(), KeySettings, []byte(`{"company":""}`)))

	s, err := repo.Settings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings().Company, s.Company)
}

func TestEmptyCollectionsReturnNil(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	banners, err := repo.Banners(ctx)
	require.NoError(t, err)
	assert.Empty(t, banners)

	projects, err := repo.Projects(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestSeedDefaultFixture(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	f, err := DefaultFixture()
	require.NoError(t, err)

	counts, err := repo.Seed(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, 3, counts.Banners)
	assert.Equal(t, 4, counts.Projects)
	assert.Equal(t, 5, counts.Gallery)
	assert.Equal(t, 2, counts.Blog)
	assert.Equal(t, 4, counts.Testimonials)

	settings, err := repo.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Skyline Developers", settings.Company)
	assert.Len(t, settings.FooterLinks, 2)

	banners, err := repo.Banners(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Skyline Heights", banners[0].Title)
	assert.Equal(t, "Book a site visit", banners[0].CTA.Label)

	blog, err := repo.Blog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2025, blog[0].Published.Year())

	p, err := repo.Project(ctx, "lakeview")
	require.NoError(t, err)
	assert.Equal(t, KindCommercial, p.Kind)
	assert.Len(t, p.Images, 2)
}

func TestSeedRejectsInvalidRecord(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.Seed(context.Background(), Fixture{Projects: []Project{{ID: "x"}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "projects[0]")
}

func TestProjectNotFound(t *testing.T) {
	repo := seededRepo(t)

	_, err := repo.Project(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestSaveThemeMergesTokens(t *testing.T) {
	repo := seededRepo(t)
	ctx := context.Background()

	got, err := repo.SaveTheme(ctx, theme.Theme{Accent: "#00FF00"})
	require.NoError(t, err)
	assert.Equal(t, "#00ff00", got.Accent)

	settings, err := repo.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "#00ff00", settings.Theme.Accent)
	assert.Equal(t, "#c8a25a", settings.Theme.Primary)

	_, err = repo.SaveTheme(ctx, theme.Theme{Primary: "gold"})
	assert.Error(t, err)
}

func TestSaveThemePublishesSettingsEvent(t *testing.T) {
	repo, st := newTestRepo(t)
	sub := st.Bus().Subscribe()
	defer sub.Close()

	_, err := repo.SaveTheme(context.Background(), theme.Theme{Primary: "#111111"})
	require.NoError(t, err)
	assert.Equal(t, KeySettings, (<-sub.C()).Key)
}
