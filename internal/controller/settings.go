package controller

import (
	"context"
	"fmt"

	"giteadm/internal/gitea"
	"giteadm/internal/ui"
)

// SettingsController shows the authenticated user's profile and switches the
// active theme, persisting the choice.
type SettingsController struct {
	screen    Screen
	service   Service
	saveTheme func(name string) error
}

func NewSettingsController(screen Screen, service Service, saveTheme func(name string) error) *SettingsController {
	return &SettingsController{screen: screen, service: service, saveTheme: saveTheme}
}

// Run drives the settings menu until Back. The profile fetch failing is
// reported but does not block theme switching.
func (c *SettingsController) Run(ctx context.Context) {
	c.screen.Loading("Fetching profile...")
	user, err := c.service.CurrentUser(ctx)
	c.screen.Done()
	if err != nil {
		c.screen.Error("Failed to fetch user profile: " + err.Error())
	}

	for {
		c.screen.SetStatus("Settings")
		res := c.screen.Menu("Settings", []ui.Choice{
			{Label: "Show Profile", Token: "profile"},
			{Label: "Switch Theme", Token: "change_theme"},
			{Label: "Back", Token: "back"},
		})
		if res.Cancelled || res.Token == "back" {
			return
		}

		switch res.Token {
		case "profile":
			c.showProfile(user)
		case "change_theme":
			c.changeTheme()
		}
	}
}

func (c *SettingsController) showProfile(user *gitea.User) {
	if user == nil {
		c.screen.Warn("User info unavailable.")
		return
	}
	c.screen.Log("Username: " + user.Login)
	c.screen.Log("Email: " + user.Email)
	admin := "No"
	if user.IsAdmin {
		admin = "Yes"
	}
	c.screen.Log("Admin: " + admin)
}

func (c *SettingsController) changeTheme() {
	choices := make([]ui.Choice, 0, len(ui.ThemeNames()))
	for _, name := range ui.ThemeNames() {
		choices = append(choices, ui.Choice{Label: name, Token: name})
	}

	res := c.screen.Menu("Theme", choices)
	if res.Cancelled {
		return
	}
	if err := c.screen.SwitchTheme(res.Token); err != nil {
		c.screen.Error("Failed to switch theme: " + err.Error())
		return
	}
	if c.saveTheme != nil {
		if err := c.saveTheme(res.Token); err != nil {
			c.screen.Warn(fmt.Sprintf("Theme active but not saved: %v", err))
			return
		}
	}
	c.screen.Success("Theme switched to " + res.Token)
}
