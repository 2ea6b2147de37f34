package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for the TUI chrome; disc colors always come
// from the object palette.
type Theme struct {
	Name   string
	Accent lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Star   string
	Trail  string
	Warn   lipgloss.Color
}

var (
	ThemeNebula = Theme{
		Name:   "nebula",
		Accent: lipgloss.Color("#cc5de8"),
		Text:   lipgloss.Color("#e8e8ff"),
		Muted:  lipgloss.Color("#666688"),
		Star:   "#44446a",
		Trail:  "#555577",
		Warn:   lipgloss.Color("#ffaa00"),
	}

	ThemeMono = Theme{
		Name:   "mono",
		Accent: lipgloss.Color("#ffffff"),
		Text:   lipgloss.Color("#dddddd"),
		Muted:  lipgloss.Color("#777777"),
		Star:   "#444444",
		Trail:  "#666666",
		Warn:   lipgloss.Color("#ffffff"),
	}

	ThemePhosphor = Theme{
		Name:   "phosphor",
		Accent: lipgloss.Color("#00ff00"),
		Text:   lipgloss.Color("#88ff88"),
		Muted:  lipgloss.Color("#005500"),
		Star:   "#003300",
		Trail:  "#007700",
		Warn:   lipgloss.Color("#ffff00"),
	}

	Themes = []Theme{ThemeNebula, ThemeMono, ThemePhosphor}
)

// GetTheme returns the theme with the given name, falling back to nebula.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeNebula
}

// NextTheme cycles through the theme table.
func NextTheme(current string) Theme {
	for i, t := range Themes {
		if t.Name == current {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
