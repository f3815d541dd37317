package ui

import (
	"sort"
	"strings"
	"time"
)

// listSession is the transient state of one browser invocation: the source
// snapshot plus the query/sort inputs of the derived view. It is created when
// the widget opens and discarded when it resolves.
type listSession struct {
	source  []Row
	columns []Column

	query    string
	sortKey  string
	sortDesc bool

	derived []Row
}

func newListSession(rows []Row, cols []Column) *listSession {
	s := &listSession{source: rows, columns: cols}
	if len(cols) > 0 {
		s.sortKey = cols[0].Key
	}
	s.recompute()
	return s
}

// recompute rebuilds the derived view: filter, then sort. Called on every
// committed query edit, sort key change, or direction toggle, and after an
// OnSelect callback may have mutated row fields.
func (s *listSession) recompute() {
	s.derived = sortRows(filterRows(s.source, s.columns, s.query), s.sortKey, s.sortDesc)
}

// filterRows keeps rows whose raw values contain query case-insensitively in
// at least one column (structural stringification when no columns are
// configured). An empty query keeps every row in source order.
func filterRows(rows []Row, cols []Column, query string) []Row {
	if query == "" {
		return append([]Row(nil), rows...)
	}
	q := strings.ToLower(query)
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		if rowMatches(row, cols, q) {
			out = append(out, row)
		}
	}
	return out
}

func rowMatches(row Row, cols []Column, loweredQuery string) bool {
	if len(cols) == 0 {
		return strings.Contains(strings.ToLower(rowLabel(row)), loweredQuery)
	}
	for _, c := range cols {
		if strings.Contains(strings.ToLower(stringify(row.Field(c.Key))), loweredQuery) {
			return true
		}
	}
	return false
}

// sortRows totally orders rows by the raw value of key, stably, so rows that
// compare equal keep their filtered order. An empty key returns the input
// unchanged.
func sortRows(rows []Row, key string, desc bool) []Row {
	if key == "" {
		return rows
	}
	out := append([]Row(nil), rows...)
	sort.SliceStable(out, func(i, j int) bool {
		c := compareValues(out[i].Field(key), out[j].Field(key))
		if desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

// compareValues orders two raw field values by their natural type ordering.
// nil sorts lowest; mismatched or unordered types fall back to string
// comparison of their display forms.
func compareValues(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	switch av := a.(type) {
	case bool:
		if bv, ok := b.(bool); ok {
			switch {
			case av == bv:
				return 0
			case bv: // false < true
				return -1
			default:
				return 1
			}
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv)
		}
	}

	if an, aok := toFloat(a); aok {
		if bn, bok := toFloat(b); bok {
			switch {
			case an < bn:
				return -1
			case an > bn:
				return 1
			default:
				return 0
			}
		}
	}

	as, bs := strings.ToLower(stringify(a)), strings.ToLower(stringify(b))
	if c := strings.Compare(as, bs); c != 0 {
		return c
	}
	// Case-insensitive tie: fall back to the exact forms for a total order.
	return strings.Compare(stringify(a), stringify(b))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
