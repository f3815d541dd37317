package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestComposer() *Composer {
	c := NewComposer(ThemeDark())
	c.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return c
}

func attachTestMenu(c *Composer) chan MenuResult {
	ch := make(chan MenuResult, 1)
	c.Update(attachMenuMsg{title: "Main Menu", choices: testChoices(), result: ch})
	return ch
}

func attachTestBrowser(c *Composer) chan struct{} {
	ch := make(chan struct{}, 1)
	c.Update(attachBrowserMsg{
		title:  "Repositories",
		rows:   testRepos(),
		opts:   BrowseOptions{Columns: repoColumns()},
		result: ch,
	})
	return ch
}

func TestComposer_AttachMenuFocusesMenuPane(t *testing.T) {
	c := newTestComposer()
	attachTestMenu(c)

	if c.focus != PaneMenu {
		t.Errorf("expected menu focus, got %q", c.focus)
	}
	if !strings.Contains(c.View(), "Main Menu") {
		t.Error("expected menu title in composed view")
	}
}

func TestComposer_AttachBrowserFocusesContentPane(t *testing.T) {
	c := newTestComposer()
	attachTestBrowser(c)

	if c.focus != PaneContent {
		t.Errorf("expected content focus, got %q", c.focus)
	}
	if !strings.Contains(c.View(), "Repositories") {
		t.Error("expected browser title in composed view")
	}
}

func TestComposer_ReattachCancelsPreviousWidget(t *testing.T) {
	c := newTestComposer()
	first := attachTestMenu(c)
	attachTestMenu(c)

	select {
	case res := <-first:
		if !res.Cancelled {
			t.Error("displaced widget must resolve as cancelled")
		}
	default:
		t.Fatal("attaching over a pending widget must resolve it")
	}
}

func TestComposer_PaneGenerationAdvancesOnClear(t *testing.T) {
	c := newTestComposer()
	attachTestMenu(c)
	gen := c.menuPane.gen
	attachTestMenu(c)
	if c.menuPane.gen <= gen {
		t.Error("pane generation must advance on every clear")
	}
}

func TestComposer_KeysRouteToFocusedWidget(t *testing.T) {
	c := newTestComposer()
	ch := attachTestMenu(c)

	c.Update(keyMsg("enter"))
	select {
	case res := <-ch:
		if res.Token != "repos" {
			t.Errorf("expected first choice token, got %q", res.Token)
		}
	default:
		t.Fatal("enter should reach the focused menu")
	}
}

func TestComposer_LoadingBlocksInputAndIsSingleSlot(t *testing.T) {
	c := newTestComposer()
	ch := attachTestMenu(c)

	c.Update(showLoadingMsg{text: "Creating repository"})
	c.Update(showLoadingMsg{text: "Another"}) // no-op: single slot

	if !strings.Contains(c.View(), "Creating repository") {
		t.Error("expected the first loading text on screen")
	}
	if strings.Contains(c.View(), "Another") {
		t.Error("a second show while active must be ignored")
	}

	c.Update(keyMsg("enter"))
	select {
	case <-ch:
		t.Fatal("input must be blocked while loading")
	default:
	}

	c.Update(hideLoadingMsg{})
	c.Update(hideLoadingMsg{}) // hide without active indicator: no-op
	c.Update(keyMsg("enter"))
	select {
	case <-ch:
	default:
		t.Fatal("input should flow again after the indicator is hidden")
	}
}

func TestComposer_SortOverlayFlow(t *testing.T) {
	c := newTestComposer()
	attachTestBrowser(c)

	// "s" in the browser opens the sort picker as an overlay.
	_, cmd := c.Update(keyMsg("s"))
	if cmd == nil {
		t.Fatal("expected sort picker command from the browser")
	}
	c.Update(cmd())
	if c.overlays.Len() != 1 {
		t.Fatalf("expected one overlay, got %d", c.overlays.Len())
	}

	// While the overlay is open, keys go to it, not the browser.
	c.Update(keyMsg("j"))
	_, cmd = c.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("enter in the picker should emit the chosen column")
	}
	c.Update(cmd())

	if c.overlays.Len() != 0 {
		t.Error("picking a column must pop the overlay")
	}
	b := c.contentPane.widget.(*BrowserView)
	if b.sess.sortKey != "stars" {
		t.Errorf("expected sort key forwarded to the browser, got %q", b.sess.sortKey)
	}
}

func TestComposer_OverlayDismissKey(t *testing.T) {
	c := newTestComposer()
	attachTestBrowser(c)

	_, cmd := c.Update(keyMsg("s"))
	c.Update(cmd())
	c.Update(keyMsg("esc"))

	if c.overlays.Len() != 0 {
		t.Error("esc must dismiss the overlay")
	}
	b := c.contentPane.widget.(*BrowserView)
	if b.sess.sortKey != "name" {
		t.Errorf("dismiss must leave the sort unchanged, got %q", b.sess.sortKey)
	}
}

func TestComposer_ThemeSwitchTearsDownWidgets(t *testing.T) {
	c := newTestComposer()
	menuCh := attachTestMenu(c)

	reply := make(chan error, 1)
	c.Update(switchThemeMsg{name: "light", result: reply})

	if err := <-reply; err != nil {
		t.Fatalf("switching to a known theme: %v", err)
	}
	if c.theme.Name != "light" {
		t.Errorf("expected light theme active, got %q", c.theme.Name)
	}
	select {
	case res := <-menuCh:
		if !res.Cancelled {
			t.Error("widgets pending across a theme switch resolve as cancelled")
		}
	default:
		t.Fatal("theme switch must resolve pending widgets")
	}
}

func TestComposer_ThemeSwitchUnknownNameLeavesScreen(t *testing.T) {
	c := newTestComposer()
	menuCh := attachTestMenu(c)

	reply := make(chan error, 1)
	c.Update(switchThemeMsg{name: "solarized", result: reply})

	if err := <-reply; err == nil {
		t.Fatal("unknown theme must return an error")
	}
	if c.theme.Name != "dark" {
		t.Error("failed switch must not change the active theme")
	}
	select {
	case <-menuCh:
		t.Error("failed switch must not disturb open widgets")
	default:
	}
}

func TestComposer_ThemeSwitchSameNameIsNoOp(t *testing.T) {
	c := newTestComposer()
	menuCh := attachTestMenu(c)

	reply := make(chan error, 1)
	c.Update(switchThemeMsg{name: "dark", result: reply})

	if err := <-reply; err != nil {
		t.Fatalf("re-activating the current theme: %v", err)
	}
	select {
	case <-menuCh:
		t.Error("re-activating the current theme must not rebuild")
	default:
	}
}

func TestComposer_CtrlCResolvesEverythingAndQuits(t *testing.T) {
	c := newTestComposer()
	menuCh := attachTestMenu(c)
	c.Update(showLoadingMsg{text: "working"})

	_, cmd := c.Update(keyMsg("ctrl+c"))
	if cmd == nil {
		t.Fatal("ctrl+c must produce the quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", cmd())
	}
	select {
	case res := <-menuCh:
		if !res.Cancelled {
			t.Error("quit resolves pending widgets as cancelled")
		}
	default:
		t.Fatal("quit must unblock pending show calls")
	}
	if c.loading != nil {
		t.Error("quit clears the loading indicator")
	}
}

func TestComposer_LogAndStatusSurfaces(t *testing.T) {
	c := newTestComposer()

	c.Update(logLineMsg{level: levelSuccess, text: "Repository created: alpha"})
	c.Update(setStatusMsg{text: "3 repositories"})
	c.Update(setStatsMsg{text: "repos: 3  users: 2"})

	out := c.View()
	if !strings.Contains(out, "Repository created: alpha") {
		t.Error("expected log line in the log pane")
	}
	if !strings.Contains(out, "3 repositories") {
		t.Error("expected status text in the status bar")
	}
	if !strings.Contains(out, "repos: 3") {
		t.Error("expected stats in the status bar")
	}
}

func TestComposer_SelectErrorIsLogged(t *testing.T) {
	c := newTestComposer()
	attachTestBrowser(c)

	c.Update(selectDoneMsg{err: errTest})

	if !strings.Contains(c.View(), "network down") {
		t.Error("selection errors must surface on the log pane")
	}
}

var errTest = &testError{"network down"}

type testError struct{ s string }

func (e *testError) Error() string { return e.s }

func TestComposer_EmptyContentPaneHint(t *testing.T) {
	c := newTestComposer()
	if !strings.Contains(c.View(), "Select an operation") {
		t.Error("expected placeholder hint in the empty content pane")
	}
}

func TestComposer_ZeroSizeRendersNothing(t *testing.T) {
	c := NewComposer(ThemeDark())
	if c.View() != "" {
		t.Error("rendering before the first WindowSizeMsg should be empty")
	}
}
