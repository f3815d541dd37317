package controller

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"giteadm/internal/gitea"
	"giteadm/internal/logging"
	"giteadm/internal/ui"
)

// UserController covers account administration: listing all accounts and
// creating new ones. Both require an admin token.
type UserController struct {
	screen  Screen
	service Service
}

func NewUserController(screen Screen, service Service) *UserController {
	return &UserController{screen: screen, service: service}
}

func userColumns() []ui.Column {
	return []ui.Column{
		{Header: "ID", Key: "id", Width: 5},
		{Header: "Username", Key: "login", Width: 18},
		{Header: "Email", Key: "email", Width: 28},
		{Header: "Admin", Key: "admin", Width: 6, Render: ui.RenderYesNo()},
	}
}

func userRows(users []*gitea.User) []ui.Row {
	rows := make([]ui.Row, len(users))
	for i, u := range users {
		rows[i] = u
	}
	return rows
}

// Run drives the user menu until Back.
func (c *UserController) Run(ctx context.Context) {
	for {
		c.screen.SetStatus("User Management")
		res := c.screen.Menu("Users", []ui.Choice{
			{Label: "List Users", Token: "list"},
			{Label: "Add User", Token: "add"},
			{Label: "Back", Token: "back"},
		})
		if res.Cancelled || res.Token == "back" {
			return
		}

		var err error
		switch res.Token {
		case "list":
			err = c.list(ctx)
		case "add":
			err = c.add(ctx)
		}
		if err != nil {
			c.screen.Error("Operation failed: " + err.Error())
			c.screen.SetError("Operation failed")
		}
	}
}

func (c *UserController) list(ctx context.Context) error {
	c.screen.Loading("Fetching users...")
	users, err := c.service.ListUsers(ctx)
	c.screen.Done()
	if err != nil {
		return err
	}
	c.screen.SetStats(fmt.Sprintf("users: %d", len(users)))
	c.screen.Browse("Users", userRows(users), ui.BrowseOptions{
		Columns: userColumns(),
	})
	return nil
}

func (c *UserController) add(ctx context.Context) error {
	res := c.screen.Form("Add User", []ui.Field{
		{Name: "username", Label: "Username", Kind: ui.FieldText},
		{Name: "email", Label: "Email", Kind: ui.FieldText},
		{Name: "password", Label: "Password", Kind: ui.FieldPassword},
	})
	if res.Cancelled {
		return nil
	}
	if res.Values["username"] == "" || res.Values["password"] == "" {
		c.screen.Warn("Username and password are required.")
		return nil
	}

	c.screen.Loading("Creating user...")
	user, err := c.service.CreateUser(ctx, gitea.CreateUserOptions{
		LoginName: res.Values["username"],
		Username:  res.Values["username"],
		Email:     res.Values["email"],
		Password:  res.Values["password"],
	})
	c.screen.Done()
	if err != nil {
		return err
	}
	logging.Info("user created", zap.String("login", user.Login))
	c.screen.Success(fmt.Sprintf("User %s created.", user.Login))
	return nil
}
