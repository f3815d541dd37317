package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// Each View represents a pane body or overlay with its own model, update, and view.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// resolver is implemented by widgets that settle a one-shot result for a
// blocked Session call. Cancel resolves the pending result as cancelled; it
// must be safe to call on an already-resolved widget.
type resolver interface {
	Cancel()
}
