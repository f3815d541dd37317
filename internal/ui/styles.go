package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Styles contains every shared style definition, derived from the active
// Theme. A theme switch discards the old Styles and builds a new one; nothing
// caches individual styles across a switch.
type Styles struct {
	Header    lipgloss.Style // top header bar
	Title     lipgloss.Style // pane labels, widget titles
	Pane      lipgloss.Style // bordered pane box
	Selected  lipgloss.Style // highlighted list/table row
	Normal    lipgloss.Style // normal text
	Muted     lipgloss.Style // dimmed text, hints
	Empty     lipgloss.Style // empty-state text
	TableHead lipgloss.Style // column header line

	Input       lipgloss.Style // text input field
	Label       lipgloss.Style // form field labels
	Button      lipgloss.Style
	ButtonFocus lipgloss.Style
	Checked     lipgloss.Style // picker/toggle marks

	Log        lipgloss.Style
	LogSuccess lipgloss.Style
	LogWarn    lipgloss.Style
	LogError   lipgloss.Style

	StatusBar   lipgloss.Style
	StatusError lipgloss.Style

	OverlayBox lipgloss.Style // centered bordered box for overlays
}

// NewStyles builds the style set for a theme.
func NewStyles(t *Theme) Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.HeaderFg).
			Background(t.HeaderBg),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary),
		Pane: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(t.PaneBorder).
			Foreground(t.PaneFg),
		Selected: lipgloss.NewStyle().
			Foreground(t.SelectedFg).
			Background(t.SelectedBg).
			Bold(true),
		Normal: lipgloss.NewStyle().
			Foreground(t.PaneFg),
		Muted: lipgloss.NewStyle().
			Foreground(t.MutedFg),
		Empty: lipgloss.NewStyle().
			Foreground(t.MutedFg).
			Italic(true),
		TableHead: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary),
		Input: lipgloss.NewStyle().
			Foreground(t.InputFg).
			Background(t.InputBg),
		Label: lipgloss.NewStyle().
			Foreground(t.PaneFg),
		Button: lipgloss.NewStyle().
			Foreground(t.ButtonFg).
			Background(t.ButtonBg).
			Padding(0, 1),
		ButtonFocus: lipgloss.NewStyle().
			Foreground(t.ButtonFg).
			Background(t.ButtonFocusBg).
			Bold(true).
			Padding(0, 1),
		Checked: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Log: lipgloss.NewStyle().
			Foreground(t.LogFg),
		LogSuccess: lipgloss.NewStyle().
			Foreground(t.SuccessFg),
		LogWarn: lipgloss.NewStyle().
			Foreground(t.WarnFg),
		LogError: lipgloss.NewStyle().
			Foreground(t.ErrorFg),
		StatusBar: lipgloss.NewStyle().
			Foreground(t.StatusFg).
			Background(t.StatusBg),
		StatusError: lipgloss.NewStyle().
			Foreground(t.ErrorFg).
			Background(t.StatusBg).
			Bold(true),
		OverlayBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Primary).
			Padding(1, 2),
	}
}

// NewMenuDelegate returns a list delegate with zero spacing styled from the
// theme. This factory standardizes menu delegate configuration.
func NewMenuDelegate(s Styles) list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = false
	d.Styles.SelectedTitle = s.Selected
	d.Styles.SelectedDesc = s.Selected
	d.Styles.NormalTitle = s.Normal
	d.Styles.NormalDesc = s.Normal
	return d
}
