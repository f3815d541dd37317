package ui

// paneRect is a pane's position and size in terminal cells.
type paneRect struct {
	x, y, w, h int
}

// screenLayout fixes the five regions of the composed screen: a one-line
// header, the menu pane (left) and content pane (right), the log pane above a
// one-line status bar.
type screenLayout struct {
	header  paneRect
	menu    paneRect
	content paneRect
	log     paneRect
	status  paneRect
}

// menuWidthPercent and logHeightPercent mirror the fixed proportions of the
// screen: menu 30% of the width, log 20% of the height.
const (
	menuWidthPercent  = 30
	logHeightPercent  = 20
	minLogHeight      = 3
	minMiddleHeight   = 3
	minTerminalWidth  = 40
	minTerminalHeight = 10
)

// computeLayout splits the terminal into the fixed regions. Undersized
// terminals are clamped to the minimums rather than collapsing panes.
func computeLayout(width, height int) screenLayout {
	if width < minTerminalWidth {
		width = minTerminalWidth
	}
	if height < minTerminalHeight {
		height = minTerminalHeight
	}

	logH := height * logHeightPercent / 100
	if logH < minLogHeight {
		logH = minLogHeight
	}
	middleH := height - 2 - logH // header + status
	if middleH < minMiddleHeight {
		middleH = minMiddleHeight
		logH = height - 2 - middleH
	}

	menuW := width * menuWidthPercent / 100
	contentW := width - menuW

	return screenLayout{
		header:  paneRect{x: 0, y: 0, w: width, h: 1},
		menu:    paneRect{x: 0, y: 1, w: menuW, h: middleH},
		content: paneRect{x: menuW, y: 1, w: contentW, h: middleH},
		log:     paneRect{x: 0, y: 1 + middleH, w: width, h: logH},
		status:  paneRect{x: 0, y: height - 1, w: width, h: 1},
	}
}

// innerWidth and innerHeight are a bordered pane's usable interior.
func (r paneRect) innerWidth() int {
	if r.w < 2 {
		return 0
	}
	return r.w - 2
}

func (r paneRect) innerHeight() int {
	if r.h < 2 {
		return 0
	}
	return r.h - 2
}
