// Package ui implements the composed terminal screen and its interactive
// widgets with Bubble Tea.
//
// Core abstractions:
//   - View: a screen region with its own model, update, view (Elm-style)
//   - Composer: the root model owning the fixed panes (header, menu pane,
//     content pane, log pane, status bar) and the overlay stack
//   - Session: a blocking facade for controllers; each Show call suspends the
//     calling goroutine until the widget resolves exactly once
//   - MenuView / BrowserView / PickerView / FormView: the interactive widgets
//   - Theme: named immutable palettes; switching rebuilds all visual state
//
// Only one widget holds input focus at a time. Overlays (the loading
// indicator, the sort-column picker) capture all input while open and always
// return focus to the widget beneath them.
package ui
