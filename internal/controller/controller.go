// Package controller holds the operation flows of the admin console. Each
// controller runs on the session goroutine, walking the user through menus,
// forms and lists via the blocking screen facade and calling the Gitea API
// between interactions.
package controller

import (
	"context"

	"giteadm/internal/gitea"
	"giteadm/internal/ui"
)

// Screen is the slice of the UI session the controllers drive. *ui.Session
// satisfies it; tests use a scripted fake.
type Screen interface {
	Menu(title string, choices []ui.Choice) ui.MenuResult
	Browse(title string, rows []ui.Row, opts ui.BrowseOptions)
	Pick(title string, rows []ui.Row) ui.PickResult
	Form(title string, fields []ui.Field) ui.FormResult
	Loading(text string)
	Done()
	Log(text string)
	Success(text string)
	Warn(text string)
	Error(text string)
	SetStatus(text string)
	SetError(text string)
	SetStats(text string)
	SwitchTheme(name string) error
}

// Service is the slice of the Gitea API the controllers call. *gitea.Client
// satisfies it.
type Service interface {
	ListRepos(ctx context.Context) ([]*gitea.Repository, error)
	CreateRepo(ctx context.Context, opts gitea.CreateRepoOptions) (*gitea.Repository, error)
	DeleteRepo(ctx context.Context, owner, repo string) error
	ListUsers(ctx context.Context) ([]*gitea.User, error)
	CreateUser(ctx context.Context, opts gitea.CreateUserOptions) (*gitea.User, error)
	CurrentUser(ctx context.Context) (*gitea.User, error)
	ListOrgs(ctx context.Context) ([]*gitea.Organization, error)
	OrgRepos(ctx context.Context, org string) ([]*gitea.Repository, error)
	OrgMembers(ctx context.Context, org string) ([]*gitea.User, error)
	CreateBranch(ctx context.Context, owner, repo string, opts gitea.CreateBranchOptions) (*gitea.Branch, error)
	CreateMilestone(ctx context.Context, owner, repo string, opts gitea.CreateMilestoneOptions) (*gitea.Milestone, error)
}

var _ Screen = (*ui.Session)(nil)
var _ Service = (*gitea.Client)(nil)

// App is the root controller: the main menu loop dispatching to the domain
// controllers until the user exits.
type App struct {
	screen   Screen
	repos    *RepoController
	users    *UserController
	orgs     *OrgController
	settings *SettingsController
}

// NewApp wires the controllers. saveTheme persists the theme choice made in
// settings.
func NewApp(screen Screen, service Service, saveTheme func(name string) error) *App {
	return &App{
		screen:   screen,
		repos:    NewRepoController(screen, service),
		users:    NewUserController(screen, service),
		orgs:     NewOrgController(screen, service),
		settings: NewSettingsController(screen, service, saveTheme),
	}
}

// Run drives the main menu until Exit is chosen or the session is torn down.
func (a *App) Run(ctx context.Context) {
	for {
		a.screen.SetStatus("Main Menu")
		res := a.screen.Menu("Main Menu", []ui.Choice{
			{Label: "Repository Operations", Token: "repo"},
			{Label: "User Operations", Token: "user"},
			{Label: "Organizations", Token: "org"},
			{Label: "Settings", Token: "settings"},
			{Label: "Exit", Token: "exit"},
		})
		if res.Cancelled || res.Token == "exit" {
			return
		}

		switch res.Token {
		case "repo":
			a.repos.Run(ctx)
		case "user":
			a.users.Run(ctx)
		case "org":
			a.orgs.Run(ctx)
		case "settings":
			a.settings.Run(ctx)
		}
	}
}
