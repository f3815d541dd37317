package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Pane identifiers.
const (
	PaneMenu    = "menu"
	PaneContent = "content"
)

// sizable widgets are told their pane's interior dimensions on attach and on
// every terminal resize.
type sizable interface {
	SetSize(w, h int)
}

// pane is a named fixed region owning at most one interactive widget at a
// time. The generation counter enforces the clear-before-attach discipline:
// clearing resolves any still-pending widget as cancelled and drops it, so no
// widget of a previous generation survives and no Session call can deadlock.
type pane struct {
	id     string
	title  string
	gen    int
	widget View
}

// clear destroys the pane's current widget, resolving its pending result.
// Safe on an already-empty pane.
func (p *pane) clear() {
	if r, ok := p.widget.(resolver); ok {
		r.Cancel()
	}
	p.widget = nil
	p.title = ""
	p.gen++
}

// Composer is the root Bubble Tea model: it owns the pane tree (header, menu
// pane, content pane, log pane, status bar), the overlay stack, the single
// loading-indicator slot, and the active theme. There are no package-level
// screen globals; every widget receives its styles from here.
type Composer struct {
	theme  *Theme
	styles Styles

	width, height int
	layout        screenLayout

	menuPane    pane
	contentPane pane
	focus       string // pane id of the focused widget

	logs      *LogView
	status    string
	statusErr bool
	stats     string

	overlays OverlayStack
	loading  *LoadingView

	keys *KeybindRegistry
}

var _ tea.Model = (*Composer)(nil)

// NewComposer builds the composed screen with the given theme. The reserved
// quit combination is bound here and checked before any widget sees input.
func NewComposer(theme *Theme) *Composer {
	styles := NewStyles(theme)
	keys := NewKeybindRegistry()
	keys.BindWithDesc("ctrl+c", tea.Quit, "quit")
	return &Composer{
		theme:       theme,
		styles:      styles,
		menuPane:    pane{id: PaneMenu},
		contentPane: pane{id: PaneContent},
		focus:       PaneMenu,
		logs:        NewLogView(styles),
		status:      "Ready",
		keys:        keys,
	}
}

// Theme returns the active theme.
func (c *Composer) Theme() *Theme {
	return c.theme
}

// Init implements tea.Model.
func (c *Composer) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (c *Composer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return c.handleResize(msg)
	case tea.KeyMsg:
		return c.handleKey(msg)

	case attachMenuMsg:
		w := NewMenuView(msg.title, msg.choices, c.styles, msg.result)
		return c.attach(&c.menuPane, msg.title, w)
	case attachBrowserMsg:
		w := NewBrowserView(msg.title, msg.rows, msg.opts, c.styles, msg.result)
		return c.attach(&c.contentPane, msg.title, w)
	case attachPickerMsg:
		w := NewPickerView(msg.title, msg.rows, c.styles, msg.result)
		return c.attach(&c.contentPane, msg.title, w)
	case attachFormMsg:
		w := NewFormView(msg.title, msg.fields, c.styles, msg.result)
		return c.attach(&c.contentPane, msg.title, w)

	case showLoadingMsg:
		if c.loading != nil {
			return c, nil // single shared slot
		}
		c.loading = NewLoadingView(msg.text, c.styles)
		return c, c.loading.Init()
	case hideLoadingMsg:
		c.loading = nil
		return c, nil
	case spinner.TickMsg:
		if c.loading == nil {
			return c, nil
		}
		v, cmd := c.loading.Update(msg)
		c.loading = v.(*LoadingView)
		return c, cmd

	case logLineMsg:
		c.logs.Append(msg.level, msg.text)
		return c, nil
	case setStatusMsg:
		c.status = msg.text
		c.statusErr = msg.isErr
		return c, nil
	case setStatsMsg:
		c.stats = msg.text
		return c, nil

	case switchThemeMsg:
		return c.handleSwitchTheme(msg)

	case showSortPickerMsg:
		c.overlays.Push(Overlay{View: newSortPickerView(msg.columns, c.styles), Dismiss: "esc"})
		return c, nil
	case sortPickedMsg:
		c.overlays.Pop()
		return c, c.forwardTo(&c.contentPane, msg)
	case dismissOverlayMsg:
		c.overlays.Pop()
		return c, nil

	case selectDoneMsg:
		if msg.err != nil {
			c.logs.Append(levelError, "Operation failed: "+msg.err.Error())
		}
		return c, c.forwardTo(&c.contentPane, msg)
	}

	// Anything else (cursor blink and friends) goes to the focused widget.
	return c, c.forwardTo(c.focused(), msg)
}

func (c *Composer) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	c.width, c.height = msg.Width, msg.Height
	c.layout = computeLayout(msg.Width, msg.Height)
	c.logs.SetSize(c.layout.log.innerWidth(), c.layout.log.innerHeight())
	c.sizeWidget(&c.menuPane)
	c.sizeWidget(&c.contentPane)
	return c, nil
}

func (c *Composer) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Reserved global bindings win over everything, including overlays.
	if cmd := c.keys.Lookup(msg.String()); cmd != nil {
		c.shutdown()
		return c, cmd
	}
	// The loading indicator blocks all interaction until hidden.
	if c.loading != nil {
		return c, nil
	}
	// Overlays fully capture focus while open.
	if top, ok := c.overlays.Peek(); ok {
		if top.IsDismissKey(msg.String()) {
			c.overlays.Pop()
			return c, nil
		}
		cmd, _ := c.overlays.UpdateTop(msg)
		return c, cmd
	}
	return c, c.forwardTo(c.focused(), msg)
}

func (c *Composer) handleSwitchTheme(msg switchThemeMsg) (tea.Model, tea.Cmd) {
	if msg.name == c.theme.Name {
		msg.result <- nil // already active; no rebuild
		return c, nil
	}
	theme, err := LookupTheme(msg.name)
	if err != nil {
		msg.result <- err // screen unchanged
		return c, nil
	}
	// Tear down before rebuilding: widgets awaiting input are abandoned
	// (resolved as cancelled) rather than carried across the switch.
	c.menuPane.clear()
	c.contentPane.clear()
	c.overlays = OverlayStack{}
	c.loading = nil
	c.theme = theme
	c.styles = NewStyles(theme)
	c.logs.Restyle(c.styles)
	msg.result <- nil
	return c, nil
}

// attach clears the target pane, installs the widget, and moves focus to it.
func (c *Composer) attach(p *pane, title string, w View) (tea.Model, tea.Cmd) {
	p.clear()
	p.title = title
	p.widget = w
	c.focus = p.id
	c.sizeWidget(p)
	return c, w.Init()
}

func (c *Composer) sizeWidget(p *pane) {
	if p.widget == nil {
		return
	}
	rect := c.layout.menu
	if p.id == PaneContent {
		rect = c.layout.content
	}
	if s, ok := p.widget.(sizable); ok {
		s.SetSize(rect.innerWidth(), rect.innerHeight())
	}
}

func (c *Composer) focused() *pane {
	if c.focus == PaneContent {
		return &c.contentPane
	}
	return &c.menuPane
}

func (c *Composer) forwardTo(p *pane, msg tea.Msg) tea.Cmd {
	if p == nil || p.widget == nil {
		return nil
	}
	v, cmd := p.widget.Update(msg)
	p.widget = v
	return cmd
}

// shutdown resolves every pending widget so no Session caller stays blocked
// past the program's exit.
func (c *Composer) shutdown() {
	c.menuPane.clear()
	c.contentPane.clear()
	c.overlays = OverlayStack{}
	c.loading = nil
}

// View implements tea.Model.
func (c *Composer) View() string {
	if c.width == 0 || c.height == 0 {
		return ""
	}

	header := c.renderHeader()
	middle := lipgloss.JoinHorizontal(lipgloss.Top,
		c.renderPane(&c.menuPane, c.layout.menu, ""),
		c.renderPane(&c.contentPane, c.layout.content, "Select an operation from the left."),
	)
	logBox := c.styles.Pane.
		Width(c.layout.log.innerWidth()).
		Height(c.layout.log.innerHeight()).
		Render(c.logs.View())
	status := c.renderStatus()

	return lipgloss.JoinVertical(lipgloss.Left, header, middle, logBox, status)
}

func (c *Composer) renderHeader() string {
	title := " Gitea Admin "
	hint := strings.Join(c.keys.Hints(), "  ") + " "
	gap := c.width - lipgloss.Width(title) - lipgloss.Width(hint)
	if gap < 0 {
		gap = 0
	}
	return c.styles.Header.Width(c.width).Render(title + strings.Repeat(" ", gap) + hint)
}

// renderPane draws one bordered pane. The content pane hosts the overlay
// layer: while the loading indicator or a modal overlay is active it is
// rendered centered above the pane's area, capturing the visual space without
// destroying the widget beneath.
func (c *Composer) renderPane(p *pane, rect paneRect, emptyHint string) string {
	w, h := rect.innerWidth(), rect.innerHeight()
	var body string
	switch {
	case p.id == PaneContent && c.loading != nil:
		body = lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, c.loading.View())
	case p.id == PaneContent && c.overlays.Len() > 0:
		top, _ := c.overlays.Peek()
		body = lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, top.View.View())
	case p.widget != nil:
		body = p.widget.View()
	default:
		body = c.styles.Muted.Render(emptyHint)
	}
	return c.styles.Pane.Width(w).Height(h).Render(body)
}

func (c *Composer) renderStatus() string {
	style := c.styles.StatusBar
	if c.statusErr {
		style = c.styles.StatusError
	}
	left := " " + c.status
	right := c.stats + " "
	gap := c.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return style.Width(c.width).Render(left + strings.Repeat(" ", gap) + right)
}
