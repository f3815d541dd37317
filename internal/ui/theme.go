package ui

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme is an immutable named palette. Every color role used anywhere in the
// UI is declared here; widgets never hard-code colors.
type Theme struct {
	Name string

	Primary    lipgloss.Color // brand color: titles, borders of focused elements
	Background lipgloss.Color

	HeaderFg lipgloss.Color
	HeaderBg lipgloss.Color

	PaneFg     lipgloss.Color
	PaneBg     lipgloss.Color
	PaneBorder lipgloss.Color

	InputFg lipgloss.Color
	InputBg lipgloss.Color

	SelectedFg lipgloss.Color
	SelectedBg lipgloss.Color

	ButtonFg      lipgloss.Color
	ButtonBg      lipgloss.Color
	ButtonFocusBg lipgloss.Color

	LogFg     lipgloss.Color
	SuccessFg lipgloss.Color
	WarnFg    lipgloss.Color
	ErrorFg   lipgloss.Color
	MutedFg   lipgloss.Color

	StatusFg lipgloss.Color
	StatusBg lipgloss.Color
}

// giteaGreen is the brand color shared by both built-in palettes.
const giteaGreen = lipgloss.Color("#6cc644")

// ThemeDark returns the default dark palette.
func ThemeDark() *Theme {
	return &Theme{
		Name:          "dark",
		Primary:       giteaGreen,
		Background:    lipgloss.Color("#000000"),
		HeaderFg:      lipgloss.Color("#ffffff"),
		HeaderBg:      giteaGreen,
		PaneFg:        lipgloss.Color("#ffffff"),
		PaneBg:        lipgloss.Color("#000000"),
		PaneBorder:    giteaGreen,
		InputFg:       lipgloss.Color("#ffffff"),
		InputBg:       lipgloss.Color("#333333"),
		SelectedFg:    lipgloss.Color("#ffffff"),
		SelectedBg:    giteaGreen,
		ButtonFg:      lipgloss.Color("#ffffff"),
		ButtonBg:      giteaGreen,
		ButtonFocusBg: lipgloss.Color("#8edd6f"),
		LogFg:         giteaGreen,
		SuccessFg:     lipgloss.Color("#a6e3a1"),
		WarnFg:        lipgloss.Color("#f9e2af"),
		ErrorFg:       lipgloss.Color("#f38ba8"),
		MutedFg:       lipgloss.Color("#6c7086"),
		StatusFg:      lipgloss.Color("#ffffff"),
		StatusBg:      lipgloss.Color("#222222"),
	}
}

// ThemeLight returns the light palette.
func ThemeLight() *Theme {
	return &Theme{
		Name:          "light",
		Primary:       giteaGreen,
		Background:    lipgloss.Color("#ffffff"),
		HeaderFg:      lipgloss.Color("#ffffff"),
		HeaderBg:      giteaGreen,
		PaneFg:        lipgloss.Color("#000000"),
		PaneBg:        lipgloss.Color("#ffffff"),
		PaneBorder:    lipgloss.Color("#aaaaaa"),
		InputFg:       lipgloss.Color("#000000"),
		InputBg:       lipgloss.Color("#f0f0f0"),
		SelectedFg:    lipgloss.Color("#ffffff"),
		SelectedBg:    giteaGreen,
		ButtonFg:      lipgloss.Color("#ffffff"),
		ButtonBg:      giteaGreen,
		ButtonFocusBg: lipgloss.Color("#4cae4c"),
		LogFg:         lipgloss.Color("#000000"),
		SuccessFg:     lipgloss.Color("#2e7d32"),
		WarnFg:        lipgloss.Color("#b26a00"),
		ErrorFg:       lipgloss.Color("#c62828"),
		MutedFg:       lipgloss.Color("#767676"),
		StatusFg:      lipgloss.Color("#000000"),
		StatusBg:      lipgloss.Color("#eeeeee"),
	}
}

// themes is the immutable registry of built-in palettes.
var themes = map[string]func() *Theme{
	"dark":  ThemeDark,
	"light": ThemeLight,
}

// ThemeNames returns the registered theme names, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupTheme returns a fresh copy of the named theme. Unknown names report
// an error and leave the caller's current theme in place.
func LookupTheme(name string) (*Theme, error) {
	ctor, ok := themes[name]
	if !ok {
		return nil, fmt.Errorf("no such theme: %q", name)
	}
	return ctor(), nil
}
