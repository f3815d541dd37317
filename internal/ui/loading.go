package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// LoadingView is the centered loading indicator: a bordered box with a
// rotating glyph next to a message. The composer holds at most one; it
// captures all input while visible.
type LoadingView struct {
	text    string
	spinner spinner.Model
	styles  Styles
}

var _ View = (*LoadingView)(nil)

// NewLoadingView creates a loading indicator with the theme's spinner style.
func NewLoadingView(text string, styles Styles) *LoadingView {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Title
	return &LoadingView{text: text, spinner: sp, styles: styles}
}

// Init implements View; it starts the spinner tick.
func (l *LoadingView) Init() tea.Cmd {
	return l.spinner.Tick
}

// Update implements View. Only spinner ticks matter; keys are swallowed by
// the composer while loading is active.
func (l *LoadingView) Update(msg tea.Msg) (View, tea.Cmd) {
	if tick, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		l.spinner, cmd = l.spinner.Update(tick)
		return l, cmd
	}
	return l, nil
}

// View implements View.
func (l *LoadingView) View() string {
	return l.styles.OverlayBox.Render(l.spinner.View() + " " + l.text)
}
