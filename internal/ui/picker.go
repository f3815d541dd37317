package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// PickerView is the multi-select variant of the list widget: space/x toggles
// the highlighted row, Enter resolves with the checked subset of the original
// rows (in source order), Esc cancels with none. Used by bulk operations.
type PickerView struct {
	title   string
	rows    []Row
	checked map[int]bool
	styles  Styles

	cursor int
	offset int
	width  int
	height int

	done oneshot[PickResult]
}

var _ View = (*PickerView)(nil)
var _ resolver = (*PickerView)(nil)

// NewPickerView creates a picker over rows. result must be buffered with
// capacity 1.
func NewPickerView(title string, rows []Row, styles Styles, result chan PickResult) *PickerView {
	return &PickerView{
		title:   title,
		rows:    rows,
		checked: make(map[int]bool),
		styles:  styles,
		done:    oneshot[PickResult]{ch: result},
	}
}

// Cancel resolves the pending result as cancelled.
func (p *PickerView) Cancel() {
	p.done.resolve(PickResult{Cancelled: true})
}

// SetSize sets the widget's rendering area.
func (p *PickerView) SetSize(w, h int) {
	p.width, p.height = w, h
	p.ensureVisible()
}

// Init implements View.
func (p *PickerView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (p *PickerView) Update(msg tea.Msg) (View, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	switch key.String() {
	case "j", "down":
		p.move(1)
	case "k", "up":
		p.move(-1)
	case "g", "home":
		p.cursor = 0
		p.ensureVisible()
	case "G", "end":
		p.cursor = len(p.rows) - 1
		p.clamp()
	case " ", "x":
		if p.cursor >= 0 && p.cursor < len(p.rows) {
			p.checked[p.cursor] = !p.checked[p.cursor]
		}
	case "enter":
		picked := make([]Row, 0, len(p.checked))
		for i, row := range p.rows {
			if p.checked[i] {
				picked = append(picked, row)
			}
		}
		p.done.resolve(PickResult{Rows: picked})
	case "q", "esc":
		p.done.resolve(PickResult{Cancelled: true})
	}
	return p, nil
}

func (p *PickerView) move(delta int) {
	p.cursor += delta
	p.clamp()
}

func (p *PickerView) clamp() {
	if p.cursor >= len(p.rows) {
		p.cursor = len(p.rows) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
	p.ensureVisible()
}

func (p *PickerView) visibleRows() int {
	n := p.height - 2 // title + hint
	if n < 1 {
		n = 1
	}
	return n
}

func (p *PickerView) ensureVisible() {
	vis := p.visibleRows()
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+vis {
		p.offset = p.cursor - vis + 1
	}
	if p.offset < 0 {
		p.offset = 0
	}
}

// View implements View.
func (p *PickerView) View() string {
	var sb strings.Builder
	sb.WriteString(p.styles.Title.Render(fmt.Sprintf("%s (%d checked)", p.title, p.countChecked())) + "\n")

	if len(p.rows) == 0 {
		sb.WriteString(p.styles.Empty.Render("no items") + "\n")
	} else {
		vis := p.visibleRows()
		end := p.offset + vis
		if end > len(p.rows) {
			end = len(p.rows)
		}
		for i := p.offset; i < end; i++ {
			mark := "[ ]"
			if p.checked[i] {
				mark = "[x]"
			}
			line := mark + " " + rowLabel(p.rows[i])
			if i == p.cursor {
				sb.WriteString(p.styles.Selected.Render(line))
			} else if p.checked[i] {
				sb.WriteString(p.styles.Checked.Render(line))
			} else {
				sb.WriteString(p.styles.Normal.Render(line))
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString(p.styles.Muted.Render("x/Space: toggle  Enter: confirm  Esc: cancel"))
	return sb.String()
}

func (p *PickerView) countChecked() int {
	n := 0
	for _, ok := range p.checked {
		if ok {
			n++
		}
	}
	return n
}
