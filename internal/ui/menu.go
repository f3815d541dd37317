package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// menuItem implements list.Item for a Choice.
type menuItem struct {
	choice Choice
}

func (m menuItem) FilterValue() string { return m.choice.Label }
func (m menuItem) Title() string       { return m.choice.Label }
func (m menuItem) Description() string { return "" }

// MenuView is the single-column selectable list used for small, fixed choice
// sets. It resolves exactly once with the highlighted entry's token, or
// cancelled on Escape. No search, no sort.
type MenuView struct {
	list    list.Model
	choices []Choice
	styles  Styles
	done    oneshot[MenuResult]
}

var _ View = (*MenuView)(nil)
var _ resolver = (*MenuView)(nil)

// NewMenuView creates a menu over the given choices. result must be buffered
// with capacity 1.
func NewMenuView(title string, choices []Choice, styles Styles, result chan MenuResult) *MenuView {
	items := make([]list.Item, len(choices))
	for i, c := range choices {
		items[i] = menuItem{choice: c}
	}
	l := list.New(items, NewMenuDelegate(styles), 0, 0)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = styles.Title
	return &MenuView{
		list:    l,
		choices: choices,
		styles:  styles,
		done:    oneshot[MenuResult]{ch: result},
	}
}

// Cancel resolves the pending result as cancelled (pane cleared, theme
// switched, or program quitting).
func (m *MenuView) Cancel() {
	m.done.resolve(MenuResult{Cancelled: true})
}

// SetSize sets the list's rendering area.
func (m *MenuView) SetSize(w, h int) {
	m.list.SetWidth(w)
	m.list.SetHeight(h)
}

// Init implements View.
func (m *MenuView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *MenuView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.done.resolve(MenuResult{Cancelled: true})
			return m, nil
		case "enter":
			if i := m.list.Index(); i >= 0 && i < len(m.choices) {
				m.done.resolve(MenuResult{Token: m.choices[i].Token})
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements View.
func (m *MenuView) View() string {
	return m.list.View()
}
