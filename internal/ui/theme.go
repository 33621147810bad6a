package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// compactTheme wraps the default Fyne theme with tighter sizing and a fixed
// light or dark variant taken from the saved preferences.
type compactTheme struct {
	base    fyne.Theme
	variant *fyne.ThemeVariant // nil follows the system
}

// newCompactTheme maps the preference value "light", "dark" or "system".
func newCompactTheme(pref string) *compactTheme {
	t := &compactTheme{base: theme.DefaultTheme()}
	switch pref {
	case "light":
		v := theme.VariantLight
		t.variant = &v
	case "dark":
		v := theme.VariantDark
		t.variant = &v
	}
	return t
}

func (t *compactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.variant != nil {
		variant = *t.variant
	}
	return t.base.Color(name, variant)
}

func (t *compactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *compactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *compactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 13
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	default:
		return t.base.Size(name)
	}
}
