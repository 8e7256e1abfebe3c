package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Theme and navigation choices.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"

	NavPage   = "page"
	NavDialog = "dialog"
)

const (
	prefTheme = "ui.theme"
	prefNav   = "ui.nav"
)

// Settings selects the look and navigation style of the main window.
type Settings struct {
	Theme string
	Nav   string
}

// DefaultSettings returns the dark theme with page navigation.
func DefaultSettings() Settings {
	return Settings{Theme: ThemeDark, Nav: NavPage}
}

// LoadSettings reads settings from preferences, using fallback for any value
// that is missing or unknown.
func LoadSettings(prefs fyne.Preferences, fallback Settings) Settings {
	s := Settings{
		Theme: prefs.StringWithFallback(prefTheme, fallback.Theme),
		Nav:   prefs.StringWithFallback(prefNav, fallback.Nav),
	}
	if s.Theme != ThemeDark && s.Theme != ThemeLight {
		s.Theme = fallback.Theme
	}
	if s.Nav != NavPage && s.Nav != NavDialog {
		s.Nav = fallback.Nav
	}
	return s
}

// Override replaces the theme and navigation style with any non-empty
// value given, such as a flag on the command line.
func (s Settings) Override(theme, nav string) Settings {
	if theme != "" {
		s.Theme = theme
	}
	if nav != "" {
		s.Nav = nav
	}
	return s
}

// Save persists the settings.
func (s Settings) Save(prefs fyne.Preferences) {
	prefs.SetString(prefTheme, s.Theme)
	prefs.SetString(prefNav, s.Nav)
}

// variantTheme pins the default theme to one variant and uses the accent
// colour for primary elements.
type variantTheme struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

func newVariantTheme(name string) fyne.Theme {
	v := theme.VariantDark
	if name == ThemeLight {
		v = theme.VariantLight
	}
	return &variantTheme{Theme: theme.DefaultTheme(), variant: v}
}

func (t *variantTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	if name == theme.ColorNamePrimary {
		return accentColor
	}
	return t.Theme.Color(name, t.variant)
}

// ApplyTheme switches the running app to the named theme.
func ApplyTheme(app fyne.App, name string) {
	app.Settings().SetTheme(newVariantTheme(name))
}
