package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"
)

// sender delivers messages into the running Bubble Tea program. *tea.Program
// satisfies it; tests substitute a fake.
type sender interface {
	Send(msg tea.Msg)
}

// Session is the blocking facade controllers drive the screen through. Each
// interactive call sends an attach message to the composer and blocks the
// calling goroutine until the widget resolves: a confirmation, a cancel, or
// the widget being torn down (pane cleared, theme switched, program quit) --
// all of which resolve as cancelled, so callers never block forever.
//
// Session methods must not be called from inside Update; they are for the
// controller goroutine only.
type Session struct {
	prog sender
}

// NewSession wraps a running program.
func NewSession(prog sender) *Session {
	return &Session{prog: prog}
}

// Menu shows a menu in the menu pane and blocks until an entry is confirmed
// or the menu is cancelled.
func (s *Session) Menu(title string, choices []Choice) MenuResult {
	ch := make(chan MenuResult, 1)
	s.prog.Send(attachMenuMsg{title: title, choices: choices, result: ch})
	return <-ch
}

// Browse shows the interactive list/table widget in the content pane and
// blocks until the user quits it. Selection side effects run through
// opts.OnSelect while the widget stays open; Browse itself has no result
// beyond "the user is done".
func (s *Session) Browse(title string, rows []Row, opts BrowseOptions) {
	if opts.OpenURL == nil {
		opts.OpenURL = browser.OpenURL
	}
	ch := make(chan struct{}, 1)
	s.prog.Send(attachBrowserMsg{title: title, rows: rows, opts: opts, result: ch})
	<-ch
}

// Pick shows a multi-select picker in the content pane and blocks until
// confirmed or cancelled.
func (s *Session) Pick(title string, rows []Row) PickResult {
	ch := make(chan PickResult, 1)
	s.prog.Send(attachPickerMsg{title: title, rows: rows, result: ch})
	return <-ch
}

// Form shows a form in the content pane and blocks until submitted or
// cancelled.
func (s *Session) Form(title string, fields []Field) FormResult {
	ch := make(chan FormResult, 1)
	s.prog.Send(attachFormMsg{title: title, fields: fields, result: ch})
	return <-ch
}

// Loading shows the centered loading indicator; input is blocked until Done.
func (s *Session) Loading(text string) {
	s.prog.Send(showLoadingMsg{text: text})
}

// Done hides the loading indicator.
func (s *Session) Done() {
	s.prog.Send(hideLoadingMsg{})
}

// Log appends an informational line to the log pane.
func (s *Session) Log(text string) {
	s.prog.Send(logLineMsg{level: levelInfo, text: text})
}

// Success appends a success-styled line to the log pane.
func (s *Session) Success(text string) {
	s.prog.Send(logLineMsg{level: levelSuccess, text: text})
}

// Warn appends a warning-styled line to the log pane.
func (s *Session) Warn(text string) {
	s.prog.Send(logLineMsg{level: levelWarn, text: text})
}

// Error appends an error-styled line to the log pane.
func (s *Session) Error(text string) {
	s.prog.Send(logLineMsg{level: levelError, text: text})
}

// SetStatus overwrites the status bar text.
func (s *Session) SetStatus(text string) {
	s.prog.Send(setStatusMsg{text: text})
}

// SetError overwrites the status bar text in the error style.
func (s *Session) SetError(text string) {
	s.prog.Send(setStatusMsg{text: text, isErr: true})
}

// SetStats overwrites the right-hand stats segment of the status bar.
func (s *Session) SetStats(text string) {
	s.prog.Send(setStatsMsg{text: text})
}

// SwitchTheme activates the named theme, tearing down open widgets. Unknown
// names return an error and leave the screen untouched; re-activating the
// current theme is a cheap no-op.
func (s *Session) SwitchTheme(name string) error {
	ch := make(chan error, 1)
	s.prog.Send(switchThemeMsg{name: name, result: ch})
	return <-ch
}
