package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

// Row is one caller-supplied domain object. Field returns the raw value for a
// column key, or nil when the row has no such field. The same Row value the
// caller passed in is handed back on selection, never a rendered copy.
type Row interface {
	Field(key string) any
}

// Labeled rows supply their own single-line representation for lists rendered
// without column definitions.
type Labeled interface {
	DisplayLabel() string
}

// Linked rows carry an external URL. When a browser has no OnSelect callback,
// confirming a Linked row opens the URL with the system browser.
type Linked interface {
	ExternalURL() string
}

// CellRenderer formats one raw field value into cell text. The set of
// renderers is closed: use the Render* constructors below rather than
// arbitrary callables.
type CellRenderer func(value any, row Row) string

// RenderDefault stringifies the raw value; nil renders empty.
func RenderDefault() CellRenderer {
	return func(value any, _ Row) string {
		return stringify(value)
	}
}

// RenderYesNo renders booleans as "Yes"/"No".
func RenderYesNo() CellRenderer {
	return func(value any, _ Row) string {
		if b, ok := value.(bool); ok && b {
			return "Yes"
		}
		return "No"
	}
}

// RenderLogin renders a user-ish value by its login name.
func RenderLogin() CellRenderer {
	return func(value any, _ Row) string {
		if u, ok := value.(interface{ LoginName() string }); ok {
			return u.LoginName()
		}
		return stringify(value)
	}
}

// RenderTime renders time values with the given layout; zero times render empty.
func RenderTime(layout string) CellRenderer {
	return func(value any, _ Row) string {
		if t, ok := value.(time.Time); ok {
			if t.IsZero() {
				return ""
			}
			return t.Format(layout)
		}
		return stringify(value)
	}
}

// Column describes one table column. Width is in display cells; every
// rendered cell is padded or truncated to exactly Width so rows stay aligned.
type Column struct {
	Header string
	Key    string
	Width  int
	Render CellRenderer // nil = RenderDefault
}

// Cell renders the row's value for this column at the fixed width.
func (c Column) Cell(row Row) string {
	render := c.Render
	if render == nil {
		render = RenderDefault()
	}
	return fitWidth(render(row.Field(c.Key), row), c.Width)
}

// headerCells renders the fixed-width header line for a column set.
func headerCells(cols []Column) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = fitWidth(c.Header, c.Width)
	}
	return strings.Join(parts, " ")
}

// rowCells renders one row as a fixed-width line for a column set.
func rowCells(cols []Column, row Row) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = c.Cell(row)
	}
	return strings.Join(parts, " ")
}

// fitWidth truncates or pads s to exactly w display columns.
func fitWidth(s string, w int) string {
	if w <= 0 {
		return ""
	}
	s = strings.ReplaceAll(s, "\n", " ")
	if runewidth.StringWidth(s) > w {
		return runewidth.Truncate(s, w, "…")
	}
	return runewidth.FillRight(s, w)
}

// stringify converts a raw field value to its display string. nil is empty,
// not "<nil>".
func stringify(v any) string {
	if v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// rowLabel is the no-columns fallback representation of a row: the row's own
// display label when it has one, otherwise a structural stringification.
func rowLabel(row Row) string {
	if l, ok := row.(Labeled); ok {
		return l.DisplayLabel()
	}
	return fmt.Sprintf("%+v", row)
}
