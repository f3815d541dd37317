package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// BrowserView is the interactive list/table widget: it renders a homogeneous
// collection with optional column definitions, live substring search, single
// key column sort with direction toggle, and a selection callback. The
// derived view is recomputed on every committed query edit, sort change, or
// direction toggle; selection always hands back the original Row.
//
// States: browsing (navigation, confirm) and searching (single-line query
// edit). Sort picking runs as a composer overlay; while it is open the
// browser receives no input.
type BrowserView struct {
	title  string
	sess   *listSession
	opts   BrowseOptions
	styles Styles

	search    textinput.Model
	searching bool

	cursor int
	offset int
	width  int
	height int

	busy bool // OnSelect (or external open) in flight
	done oneshot[struct{}]
}

var _ View = (*BrowserView)(nil)
var _ resolver = (*BrowserView)(nil)

// NewBrowserView creates a browser over a static snapshot of rows. result
// must be buffered with capacity 1.
func NewBrowserView(title string, rows []Row, opts BrowseOptions, styles Styles, result chan struct{}) *BrowserView {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "search"
	ti.TextStyle = styles.Input
	return &BrowserView{
		title:  title,
		sess:   newListSession(rows, opts.Columns),
		opts:   opts,
		styles: styles,
		search: ti,
		done:   oneshot[struct{}]{ch: result},
	}
}

// Cancel resolves the pending show call; the widget renders until the pane is
// cleared by the next attach.
func (b *BrowserView) Cancel() {
	b.done.resolve(struct{}{})
}

// SetSize sets the widget's rendering area.
func (b *BrowserView) SetSize(w, h int) {
	b.width, b.height = w, h
	b.search.Width = w - 4
	b.ensureVisible()
}

// Derived exposes the current derived view for tests.
func (b *BrowserView) Derived() []Row {
	return b.sess.derived
}

// Init implements View.
func (b *BrowserView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (b *BrowserView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if b.searching {
			return b.updateSearching(msg)
		}
		return b.updateBrowsing(msg)
	case sortPickedMsg:
		b.sess.sortKey = msg.key
		b.sess.sortDesc = false
		b.sess.recompute()
		b.resetCursor()
		return b, nil
	case selectDoneMsg:
		b.busy = false
		// The callback may have mutated row fields; reflect that now.
		b.sess.recompute()
		b.clampCursor()
		return b, nil
	}
	if b.searching {
		var cmd tea.Cmd
		b.search, cmd = b.search.Update(msg)
		return b, cmd
	}
	return b, nil
}

func (b *BrowserView) updateSearching(msg tea.KeyMsg) (View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Discard the edit; the committed query is unchanged.
		b.searching = false
		return b, nil
	case "enter":
		b.sess.query = b.search.Value()
		b.sess.recompute()
		b.resetCursor()
		b.searching = false
		return b, nil
	}
	var cmd tea.Cmd
	b.search, cmd = b.search.Update(msg)
	return b, cmd
}

func (b *BrowserView) updateBrowsing(msg tea.KeyMsg) (View, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		b.moveCursor(1)
	case "k", "up":
		b.moveCursor(-1)
	case "g", "home":
		b.cursor = 0
		b.ensureVisible()
	case "G", "end":
		b.cursor = len(b.sess.derived) - 1
		b.clampCursor()
	case "/":
		b.searching = true
		b.search.SetValue(b.sess.query)
		b.search.CursorEnd()
		b.search.Focus()
		return b, textinput.Blink
	case "s":
		if len(b.sess.columns) > 0 {
			cols := b.sess.columns
			return b, func() tea.Msg { return showSortPickerMsg{columns: cols} }
		}
	case "r":
		b.sess.sortDesc = !b.sess.sortDesc
		b.sess.recompute()
		b.clampCursor()
	case "enter":
		return b, b.confirm()
	case "q", "esc":
		b.done.resolve(struct{}{})
	}
	return b, nil
}

// confirm runs the selection action for the highlighted row. Out-of-range
// selections are a no-op, never a crash; while an action is in flight further
// confirms are ignored.
func (b *BrowserView) confirm() tea.Cmd {
	if b.busy || b.cursor < 0 || b.cursor >= len(b.sess.derived) {
		return nil
	}
	row := b.sess.derived[b.cursor]
	if b.opts.OnSelect != nil {
		b.busy = true
		onSelect := b.opts.OnSelect
		return func() tea.Msg {
			return selectDoneMsg{err: onSelect(row)}
		}
	}
	if linked, ok := row.(Linked); ok {
		if url := linked.ExternalURL(); url != "" && b.opts.OpenURL != nil {
			b.busy = true
			open := b.opts.OpenURL
			return func() tea.Msg {
				if err := open(url); err != nil {
					return selectDoneMsg{err: fmt.Errorf("open %s: %w", url, err)}
				}
				return selectDoneMsg{}
			}
		}
	}
	return nil
}

func (b *BrowserView) moveCursor(delta int) {
	b.cursor += delta
	b.clampCursor()
}

func (b *BrowserView) clampCursor() {
	if b.cursor >= len(b.sess.derived) {
		b.cursor = len(b.sess.derived) - 1
	}
	if b.cursor < 0 {
		b.cursor = 0
	}
	b.ensureVisible()
}

func (b *BrowserView) resetCursor() {
	b.cursor = 0
	b.offset = 0
}

// visibleRows is the number of data lines that fit under the chrome (title,
// optional header, optional search line, hint line).
func (b *BrowserView) visibleRows() int {
	chrome := 2 // title + hint
	if len(b.sess.columns) > 0 {
		chrome++
	}
	if b.searching {
		chrome++
	}
	n := b.height - chrome
	if n < 1 {
		n = 1
	}
	return n
}

func (b *BrowserView) ensureVisible() {
	vis := b.visibleRows()
	if b.cursor < b.offset {
		b.offset = b.cursor
	}
	if b.cursor >= b.offset+vis {
		b.offset = b.cursor - vis + 1
	}
	if b.offset < 0 {
		b.offset = 0
	}
}

// View implements View.
func (b *BrowserView) View() string {
	var sb strings.Builder

	title := b.title
	if b.sess.query != "" {
		title += fmt.Sprintf(" (filter: %q)", b.sess.query)
	}
	sb.WriteString(b.styles.Title.Render(title) + "\n")

	if b.searching {
		sb.WriteString(b.search.View() + "\n")
	}

	if len(b.sess.columns) > 0 {
		sb.WriteString(b.styles.TableHead.Render(headerCells(b.sess.columns)) + "\n")
	}

	if len(b.sess.derived) == 0 {
		if len(b.sess.source) == 0 {
			sb.WriteString(b.styles.Empty.Render("no items") + "\n")
		} else {
			sb.WriteString(b.styles.Empty.Render("no matches") + "\n")
		}
	} else {
		vis := b.visibleRows()
		end := b.offset + vis
		if end > len(b.sess.derived) {
			end = len(b.sess.derived)
		}
		for i := b.offset; i < end; i++ {
			line := b.rowLine(b.sess.derived[i])
			if i == b.cursor {
				sb.WriteString(b.styles.Selected.Render(line))
			} else {
				sb.WriteString(b.styles.Normal.Render(line))
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString(b.styles.Muted.Render(b.hint()))
	return sb.String()
}

func (b *BrowserView) rowLine(row Row) string {
	if len(b.sess.columns) > 0 {
		return rowCells(b.sess.columns, row)
	}
	return rowLabel(row)
}

func (b *BrowserView) hint() string {
	if b.searching {
		return "Enter: apply  Esc: cancel"
	}
	h := "j/k: move  /: search  Enter: select  q: back"
	if len(b.sess.columns) > 0 {
		h += "  s: sort  r: reverse"
	}
	return h
}

// sortPickerView is the modal sub-menu listing column headers. Selecting one
// emits sortPickedMsg; the composer pops the overlay and routes the message
// to the browser beneath it. Esc dismisses without changing the sort.
type sortPickerView struct {
	list    list.Model
	columns []Column
	styles  Styles
}

var _ View = (*sortPickerView)(nil)

type sortItem string

func (s sortItem) FilterValue() string { return string(s) }
func (s sortItem) Title() string       { return string(s) }
func (s sortItem) Description() string { return "" }

func newSortPickerView(columns []Column, styles Styles) *sortPickerView {
	items := make([]list.Item, len(columns))
	for i, c := range columns {
		items[i] = sortItem(c.Header)
	}
	l := list.New(items, NewMenuDelegate(styles), 30, len(columns)+4)
	l.Title = "Sort by"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = styles.Title
	return &sortPickerView{list: l, columns: columns, styles: styles}
}

func (p *sortPickerView) Init() tea.Cmd {
	return nil
}

func (p *sortPickerView) Update(msg tea.Msg) (View, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		if i := p.list.Index(); i >= 0 && i < len(p.columns) {
			picked := p.columns[i].Key
			return p, func() tea.Msg { return sortPickedMsg{key: picked} }
		}
		return p, nil
	}
	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return p, cmd
}

func (p *sortPickerView) View() string {
	help := p.styles.Muted.Render("Enter: sort  Esc: cancel")
	return p.styles.OverlayBox.Render(p.list.View() + "\n" + help)
}
