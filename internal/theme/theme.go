// Package theme holds the five color tokens the site is styled with and the
// lipgloss styles derived from them.
package theme

import (
	"fmt"
	"regexp"
	"strings"
)

// Theme is the color context supplied to presentation code.
type Theme struct {
	Primary   string `json:"primaryColor" yaml:"primaryColor"`
	Secondary string `json:"secondaryColor" yaml:"secondaryColor"`
	Accent    string `json:"accentColor" yaml:"accentColor"`
	Text      string `json:"textColor" yaml:"textColor"`
	Heading   string `json:"headingColor" yaml:"headingColor"`
}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Default returns the stock palette.
func Default() Theme {
	return Theme{
		Primary:   "#c8a25a", // brass
		Secondary: "#2f4858", // slate
		Accent:    "#d97b4a", // terracotta
		Text:      "#d7d9da",
		Heading:   "#f2efe6",
	}
}

// Normalize fills blank tokens from Default and rejects values that are not
// hex colors.
func (t Theme) Normalize() (Theme, error) {
	def := Default()
	out := t
	fields := []struct {
		name string
		val  *string
		def  string
	}{
		{"primaryColor", &out.Primary, def.Primary},
		{"secondaryColor", &out.Secondary, def.Secondary},
		{"accentColor", &out.Accent, def.Accent},
		{"textColor", &out.Text, def.Text},
		{"headingColor", &out.Heading, def.Heading},
	}
	for _, f := range fields {
		v := strings.TrimSpace(*f.val)
		if v == "" {
			*f.val = f.def
			continue
		}
		if !hexColor.MatchString(v) {
			return def, fmt.Errorf("%s: %q is not a hex color", f.name, v)
		}
		*f.val = strings.ToLower(v)
	}
	return out, nil
}

// Merge overlays the non-empty tokens of patch onto t.
func (t Theme) Merge(patch Theme) Theme {
	if patch.Primary != "" {
		t.Primary = patch.Primary
	}
	if patch.Secondary != "" {
		t.Secondary = patch.Secondary
	}
	if patch.Accent != "" {
		t.Accent = patch.Accent
	}
	if patch.Text != "" {
		t.Text = patch.Text
	}
	if patch.Heading != "" {
		t.Heading = patch.Heading
	}
	return t
}
