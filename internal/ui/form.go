package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formInput is one materialized form field: the field definition plus its input state.
type formInput struct {
	spec    Field
	input   textinput.Model // text and password kinds
	checked bool            // toggle kind
}

// FormView composes labeled text/password/toggle inputs into a submittable
// form. Tab or Enter advances; Enter on the submit button (or the last
// field) submits; Esc cancels. The form performs no validation; resolution
// hands the raw values to the caller.
type FormView struct {
	title  string
	fields []formInput
	styles Styles

	focus int // index into fields; len(fields) = submit button
	width int

	done oneshot[FormResult]
}

var _ View = (*FormView)(nil)
var _ resolver = (*FormView)(nil)

// NewFormView creates a form from field specs. result must be buffered with
// capacity 1.
func NewFormView(title string, specs []Field, styles Styles, result chan FormResult) *FormView {
	fields := make([]formInput, len(specs))
	for i, spec := range specs {
		fi := formInput{spec: spec, checked: spec.Checked}
		if spec.Kind != FieldToggle {
			ti := textinput.New()
			ti.SetValue(spec.Initial)
			ti.Width = 40
			ti.TextStyle = styles.Input
			if spec.Kind == FieldPassword {
				ti.EchoMode = textinput.EchoPassword
				ti.EchoCharacter = '*'
			}
			fi.input = ti
		}
		fields[i] = fi
	}
	f := &FormView{
		title:  title,
		fields: fields,
		styles: styles,
		done:   oneshot[FormResult]{ch: result},
	}
	f.setFocus(0)
	return f
}

// Cancel resolves the pending result as cancelled.
func (f *FormView) Cancel() {
	f.done.resolve(FormResult{Cancelled: true})
}

// SetSize sets the widget's rendering area.
func (f *FormView) SetSize(w, _ int) {
	f.width = w
}

// Init implements View.
func (f *FormView) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (f *FormView) Update(msg tea.Msg) (View, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, f.updateFocused(msg)
	}

	switch key.String() {
	case "esc":
		f.done.resolve(FormResult{Cancelled: true})
		return f, nil
	case "tab", "down":
		return f, f.setFocus(f.focus + 1)
	case "shift+tab", "up":
		return f, f.setFocus(f.focus - 1)
	case "enter":
		if f.focus >= len(f.fields) || f.focus == len(f.fields)-1 {
			f.submit()
			return f, nil
		}
		return f, f.setFocus(f.focus + 1)
	case " ":
		if f.focus < len(f.fields) && f.fields[f.focus].spec.Kind == FieldToggle {
			f.fields[f.focus].checked = !f.fields[f.focus].checked
			return f, nil
		}
	}
	return f, f.updateFocused(msg)
}

func (f *FormView) updateFocused(msg tea.Msg) tea.Cmd {
	if f.focus >= len(f.fields) || f.fields[f.focus].spec.Kind == FieldToggle {
		return nil
	}
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd
}

// setFocus moves focus, wrapping over fields plus the submit button.
func (f *FormView) setFocus(idx int) tea.Cmd {
	n := len(f.fields) + 1
	idx = ((idx % n) + n) % n
	for i := range f.fields {
		f.fields[i].input.Blur()
	}
	f.focus = idx
	if idx < len(f.fields) && f.fields[idx].spec.Kind != FieldToggle {
		f.fields[idx].input.Focus()
		return textinput.Blink
	}
	return nil
}

func (f *FormView) submit() {
	values := make(map[string]string, len(f.fields))
	for _, fi := range f.fields {
		if fi.spec.Kind == FieldToggle {
			values[fi.spec.Name] = strconv.FormatBool(fi.checked)
		} else {
			values[fi.spec.Name] = fi.input.Value()
		}
	}
	f.done.resolve(FormResult{Values: values})
}

// View implements View.
func (f *FormView) View() string {
	var sb strings.Builder
	sb.WriteString(f.styles.Title.Render(f.title) + "\n\n")

	labelWidth := 0
	for _, fi := range f.fields {
		if len(fi.spec.Label) > labelWidth {
			labelWidth = len(fi.spec.Label)
		}
	}

	for i, fi := range f.fields {
		label := f.styles.Label.Render(fitWidth(fi.spec.Label+":", labelWidth+1))
		switch fi.spec.Kind {
		case FieldToggle:
			mark := "[ ]"
			if fi.checked {
				mark = "[x]"
			}
			if i == f.focus {
				mark = f.styles.Checked.Render(mark)
			}
			sb.WriteString(label + " " + mark + "\n")
		default:
			sb.WriteString(label + " " + fi.fieldView(i == f.focus) + "\n")
		}
	}

	sb.WriteString("\n")
	if f.focus == len(f.fields) {
		sb.WriteString(f.styles.ButtonFocus.Render("Submit"))
	} else {
		sb.WriteString(f.styles.Button.Render("Submit"))
	}
	sb.WriteString("\n\n" + f.styles.Muted.Render("Tab: next  Enter: submit  Esc: cancel"))
	return sb.String()
}

func (fi formInput) fieldView(focused bool) string {
	_ = focused // the textinput renders its own cursor when focused
	return fi.input.View()
}
