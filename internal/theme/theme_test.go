package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFillsBlanksFromDefault(t *testing.T) {
	got, err := Theme{Primary: "#ABCDEF"}.Normalize()
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, "#abcdef", got.Primary)
	assert.Equal(t, def.Secondary, got.Secondary)
	assert.Equal(t, def.Accent, got.Accent)
	assert.Equal(t, def.Text, got.Text)
	assert.Equal(t, def.Heading, got.Heading)
}

func TestNormalizeRejectsNonHex(t *testing.T) {
	_, err := Theme{Accent: "tomato"}.Normalize()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accentColor")
}

func TestNormalizeAcceptsShortHex(t *testing.T) {
	got, err := Theme{Heading: " #FFF "}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, "#fff", got.Heading)
}

func TestMergeOverlaysNonEmpty(t *testing.T) {
	base := Default()
	merged := base.Merge(Theme{Accent: "#000000"})
	assert.Equal(t, "#000000", merged.Accent)
	assert.Equal(t, base.Primary, merged.Primary)
}

func TestStylesFollowTheme(t *testing.T) {
	th := Default()
	s := New(th)
	assert.Equal(t, lipgloss.Color(th.Primary), s.Primary)
	assert.Equal(t, lipgloss.Color(th.Heading), s.Title.GetForeground())
}

func TestFieldStyleDependsOnFocus(t *testing.T) {
	s := New(Default())
	assert.Equal(t, s.Primary, s.Field(true).GetBorderTopForeground())
	assert.Equal(t, ColorBorder, s.Field(false).GetBorderTopForeground())
	assert.Equal(t, s.Accent, s.Card(true).GetBorderTopForeground())
	assert.NotEqual(t, s.Label(true).GetForeground(), s.Label(false).GetForeground())
}
