package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
)

// maxLogLines caps the rolling log so repeated operations never grow memory
// without bound.
const maxLogLines = 500

type logEntry struct {
	level logLevel
	text  string
}

// LogView is the append-only scrolling log pane. Lines are styled by level
// and the view stays pinned to the newest entry.
type LogView struct {
	entries []logEntry
	vp      viewport.Model
	styles  Styles
}

// NewLogView creates an empty log surface.
func NewLogView(styles Styles) *LogView {
	return &LogView{vp: viewport.New(0, 0), styles: styles}
}

// SetSize sets the scrolling region's dimensions.
func (l *LogView) SetSize(w, h int) {
	l.vp.Width = w
	l.vp.Height = h
	l.refresh()
}

// Restyle swaps in a new style set after a theme change. Log history
// survives a theme switch; only its presentation is rebuilt.
func (l *LogView) Restyle(styles Styles) {
	l.styles = styles
	l.refresh()
}

// Append adds one line at the given level and scrolls to it.
func (l *LogView) Append(level logLevel, text string) {
	l.entries = append(l.entries, logEntry{level: level, text: text})
	if len(l.entries) > maxLogLines {
		l.entries = l.entries[len(l.entries)-maxLogLines:]
	}
	l.refresh()
}

func (l *LogView) styleFor(level logLevel) func(...string) string {
	switch level {
	case levelSuccess:
		return l.styles.LogSuccess.Render
	case levelWarn:
		return l.styles.LogWarn.Render
	case levelError:
		return l.styles.LogError.Render
	default:
		return l.styles.Log.Render
	}
}

func (l *LogView) refresh() {
	lines := make([]string, len(l.entries))
	for i, e := range l.entries {
		lines[i] = l.styleFor(e.level)(e.text)
	}
	l.vp.SetContent(strings.Join(lines, "\n"))
	l.vp.GotoBottom()
}

// View renders the visible window of the log.
func (l *LogView) View() string {
	return l.vp.View()
}

// Len returns the number of retained lines.
func (l *LogView) Len() int {
	return len(l.entries)
}
