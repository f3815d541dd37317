package ui

import (
	"strings"
	"testing"
)

func testChoices() []Choice {
	return []Choice{
		{Label: "Repository Management", Token: "repos"},
		{Label: "User Management", Token: "users"},
		{Label: "Exit", Token: "exit"},
	}
}

func newTestMenu() (*MenuView, chan MenuResult) {
	ch := make(chan MenuResult, 1)
	m := NewMenuView("Main Menu", testChoices(), NewStyles(ThemeDark()), ch)
	m.SetSize(30, 12)
	return m, ch
}

func TestMenu_EnterResolvesHighlightedToken(t *testing.T) {
	m, ch := newTestMenu()

	m.Update(keyMsg("j"))
	m.Update(keyMsg("enter"))

	select {
	case res := <-ch:
		if res.Cancelled {
			t.Error("enter should not cancel")
		}
		if res.Token != "users" {
			t.Errorf("expected token 'users', got %q", res.Token)
		}
	default:
		t.Fatal("enter should resolve the menu")
	}
}

func TestMenu_EscCancels(t *testing.T) {
	m, ch := newTestMenu()

	m.Update(keyMsg("esc"))

	select {
	case res := <-ch:
		if !res.Cancelled {
			t.Error("esc should resolve as cancelled")
		}
	default:
		t.Fatal("esc should resolve the menu")
	}
}

func TestMenu_ResolvesExactlyOnce(t *testing.T) {
	m, ch := newTestMenu()

	m.Update(keyMsg("enter"))
	<-ch

	// Later input and teardown must not double-send.
	m.Update(keyMsg("enter"))
	m.Cancel()
	select {
	case <-ch:
		t.Error("menu must resolve exactly once")
	default:
	}
}

func TestMenu_ViewShowsAllChoices(t *testing.T) {
	m, _ := newTestMenu()

	out := m.View()
	for _, c := range testChoices() {
		if !strings.Contains(out, c.Label) {
			t.Errorf("expected %q in menu view", c.Label)
		}
	}
}
