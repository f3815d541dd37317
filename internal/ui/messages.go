package ui

// Choice is one menu entry: a display label and the opaque token the menu
// resolves with when the entry is confirmed.
type Choice struct {
	Label string
	Token string
}

// MenuResult is the resolution of a menu: the chosen token, or cancelled.
type MenuResult struct {
	Token     string
	Cancelled bool
}

// PickResult is the resolution of a multi-select picker: the checked subset
// of the original rows (possibly empty), or cancelled.
type PickResult struct {
	Rows      []Row
	Cancelled bool
}

// FormResult is the resolution of a form: field name to entered value
// ("true"/"false" for toggles), or cancelled. The widget performs no
// validation; that is the caller's job.
type FormResult struct {
	Values    map[string]string
	Cancelled bool
}

// FieldKind enumerates the supported form field kinds.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldPassword
	FieldToggle
)

// Field describes one form input.
type Field struct {
	Name    string
	Label   string
	Kind    FieldKind
	Initial string // pre-filled value for text fields
	Checked bool   // initial state for toggles
}

// BrowseOptions configures the interactive list/table widget.
type BrowseOptions struct {
	// Columns defines the table layout. Empty = rows render via their own
	// display label.
	Columns []Column
	// OnSelect runs when a row is confirmed; its error is logged, never
	// re-thrown, and the widget stays open. Nil = confirming a Linked row
	// opens its URL externally instead.
	OnSelect func(Row) error
	// OpenURL opens an external link; defaults to the system browser.
	OpenURL func(string) error
}

// attachMenuMsg asks the composer to clear the menu pane and attach a menu.
type attachMenuMsg struct {
	title   string
	choices []Choice
	result  chan MenuResult
}

// attachBrowserMsg asks the composer to clear the content pane and attach the
// interactive list/table widget.
type attachBrowserMsg struct {
	title  string
	rows   []Row
	opts   BrowseOptions
	result chan struct{}
}

// attachPickerMsg asks the composer to attach the multi-select picker.
type attachPickerMsg struct {
	title  string
	rows   []Row
	result chan PickResult
}

// attachFormMsg asks the composer to attach a form.
type attachFormMsg struct {
	title  string
	fields []Field
	result chan FormResult
}

// showLoadingMsg shows the centered loading indicator. A second show while
// one is active is a no-op; the indicator is a single shared slot.
type showLoadingMsg struct {
	text string
}

// hideLoadingMsg hides the loading indicator; a no-op when none is active.
type hideLoadingMsg struct{}

// logLevel classifies log surface entries.
type logLevel int

const (
	levelInfo logLevel = iota
	levelSuccess
	levelWarn
	levelError
)

// logLineMsg appends one line to the log pane.
type logLineMsg struct {
	level logLevel
	text  string
}

// setStatusMsg overwrites the status bar's left-hand text. No history.
type setStatusMsg struct {
	text  string
	isErr bool
}

// setStatsMsg overwrites the status bar's right-hand text.
type setStatsMsg struct {
	text string
}

// switchThemeMsg activates a named theme. The composer replies on result:
// nil for success (including re-activating the current theme, which does not
// rebuild), an error for unknown names (screen unchanged).
type switchThemeMsg struct {
	name   string
	result chan error
}

// showSortPickerMsg is emitted by the browser to open the sort-column picker
// overlay. Only sent when columns are configured.
type showSortPickerMsg struct {
	columns []Column
}

// sortPickedMsg carries the chosen sort column back to the browser.
type sortPickedMsg struct {
	key string
}

// dismissOverlayMsg closes the top overlay and returns focus to the widget
// beneath it.
type dismissOverlayMsg struct{}

// selectDoneMsg reports completion of an OnSelect callback (or an external
// open). A non-nil err is surfaced on the log pane; the browser stays open.
type selectDoneMsg struct {
	err error
}

// oneshot resolves a buffered result channel exactly once. Resolution happens
// inside Update (single goroutine), so no locking is needed; the channel is
// created with capacity 1 so the send never blocks the UI loop.
type oneshot[T any] struct {
	ch   chan<- T
	done bool
}

func (o *oneshot[T]) resolve(v T) {
	if o.done || o.ch == nil {
		return
	}
	o.done = true
	o.ch <- v
}
