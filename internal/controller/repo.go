package controller

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"giteadm/internal/gitea"
	"giteadm/internal/logging"
	"giteadm/internal/ui"
)

// RepoController covers repository operations: listing, creation, deletion,
// and the bulk branch/milestone flows.
type RepoController struct {
	screen  Screen
	service Service
}

func NewRepoController(screen Screen, service Service) *RepoController {
	return &RepoController{screen: screen, service: service}
}

func repoColumns() []ui.Column {
	return []ui.Column{
		{Header: "Name", Key: "full_name", Width: 30},
		{Header: "Private", Key: "private", Width: 8, Render: ui.RenderYesNo()},
		{Header: "Updated", Key: "updated", Width: 12, Render: ui.RenderTime("2006-01-02")},
	}
}

func repoRows(repos []*gitea.Repository) []ui.Row {
	rows := make([]ui.Row, len(repos))
	for i, r := range repos {
		rows[i] = r
	}
	return rows
}

// Run drives the repository menu until Back.
func (c *RepoController) Run(ctx context.Context) {
	for {
		c.screen.SetStatus("Repository Management")
		res := c.screen.Menu("Repositories", []ui.Choice{
			{Label: "List Repositories", Token: "list"},
			{Label: "Create Repository", Token: "create"},
			{Label: "Delete Repository", Token: "delete"},
			{Label: "Bulk Create Branch", Token: "bulk_branch"},
			{Label: "Bulk Create Milestone", Token: "bulk_milestone"},
			{Label: "Back", Token: "back"},
		})
		if res.Cancelled || res.Token == "back" {
			return
		}

		var err error
		switch res.Token {
		case "list":
			err = c.list(ctx)
		case "create":
			err = c.create(ctx)
		case "delete":
			err = c.delete(ctx)
		case "bulk_branch":
			err = c.bulkBranch(ctx)
		case "bulk_milestone":
			err = c.bulkMilestone(ctx)
		}
		if err != nil {
			c.screen.Error("Operation failed: " + err.Error())
			c.screen.SetError("Operation failed")
		}
	}
}

// fetchRepos loads the repository list behind the loading indicator.
func (c *RepoController) fetchRepos(ctx context.Context) ([]*gitea.Repository, error) {
	c.screen.Loading("Fetching repositories...")
	defer c.screen.Done()
	return c.service.ListRepos(ctx)
}

func (c *RepoController) list(ctx context.Context) error {
	repos, err := c.fetchRepos(ctx)
	if err != nil {
		return err
	}
	c.screen.SetStats(fmt.Sprintf("repos: %d", len(repos)))
	// Confirming a repository opens it in the system browser.
	c.screen.Browse("Repositories", repoRows(repos), ui.BrowseOptions{
		Columns: repoColumns(),
	})
	return nil
}

func (c *RepoController) create(ctx context.Context) error {
	res := c.screen.Form("Create Repository", []ui.Field{
		{Name: "name", Label: "Name", Kind: ui.FieldText},
		{Name: "description", Label: "Description", Kind: ui.FieldText},
		{Name: "private", Label: "Private", Kind: ui.FieldToggle},
	})
	if res.Cancelled {
		return nil
	}
	if res.Values["name"] == "" {
		c.screen.Warn("Repository name is required.")
		return nil
	}

	c.screen.Loading("Creating repository...")
	repo, err := c.service.CreateRepo(ctx, gitea.CreateRepoOptions{
		Name:        res.Values["name"],
		Description: res.Values["description"],
		Private:     res.Values["private"] == "true",
		AutoInit:    true,
	})
	c.screen.Done()
	if err != nil {
		return err
	}
	logging.Info("repository created", zap.String("full_name", repo.FullName))
	c.screen.Success("Repository created: " + repo.FullName)
	return nil
}

func (c *RepoController) delete(ctx context.Context) error {
	repos, err := c.fetchRepos(ctx)
	if err != nil {
		return err
	}
	picked := c.screen.Pick("Select Repositories to DELETE", repoRows(repos))
	if picked.Cancelled || len(picked.Rows) == 0 {
		return nil
	}

	// Per-repository failures are reported and the batch continues.
	for _, row := range picked.Rows {
		repo := row.(*gitea.Repository)
		if err := c.service.DeleteRepo(ctx, repo.OwnerLogin(), repo.Name); err != nil {
			c.screen.Error(fmt.Sprintf("Failed to delete %s: %v", repo.FullName, err))
			continue
		}
		c.screen.Success("Deleted " + repo.FullName)
	}
	return nil
}

func (c *RepoController) bulkBranch(ctx context.Context) error {
	repos, err := c.fetchRepos(ctx)
	if err != nil {
		return err
	}
	picked := c.screen.Pick("Select Repositories for New Branch", repoRows(repos))
	if picked.Cancelled || len(picked.Rows) == 0 {
		return nil
	}

	form := c.screen.Form("New Branch", []ui.Field{
		{Name: "new_branch", Label: "New branch", Kind: ui.FieldText},
		{Name: "old_branch", Label: "From branch", Kind: ui.FieldText, Initial: "main"},
	})
	if form.Cancelled || form.Values["new_branch"] == "" {
		return nil
	}
	opts := gitea.CreateBranchOptions{
		NewBranchName: form.Values["new_branch"],
		OldBranchName: form.Values["old_branch"],
	}

	for _, row := range picked.Rows {
		repo := row.(*gitea.Repository)
		if _, err := c.service.CreateBranch(ctx, repo.OwnerLogin(), repo.Name, opts); err != nil {
			c.screen.Error(fmt.Sprintf("Failed in %s: %v", repo.FullName, err))
			continue
		}
		c.screen.Success(fmt.Sprintf("Created branch %q in %s", opts.NewBranchName, repo.FullName))
	}
	return nil
}

func (c *RepoController) bulkMilestone(ctx context.Context) error {
	repos, err := c.fetchRepos(ctx)
	if err != nil {
		return err
	}
	picked := c.screen.Pick("Select Repositories for New Milestone", repoRows(repos))
	if picked.Cancelled || len(picked.Rows) == 0 {
		return nil
	}

	form := c.screen.Form("New Milestone", []ui.Field{
		{Name: "title", Label: "Title", Kind: ui.FieldText},
		{Name: "description", Label: "Description", Kind: ui.FieldText},
		{Name: "due_on", Label: "Due (YYYY-MM-DD)", Kind: ui.FieldText},
	})
	if form.Cancelled || form.Values["title"] == "" {
		return nil
	}
	opts := gitea.CreateMilestoneOptions{
		Title:       form.Values["title"],
		Description: form.Values["description"],
		DueOn:       parseDueDate(c.screen, form.Values["due_on"]),
	}

	for _, row := range picked.Rows {
		repo := row.(*gitea.Repository)
		if _, err := c.service.CreateMilestone(ctx, repo.OwnerLogin(), repo.Name, opts); err != nil {
			c.screen.Error(fmt.Sprintf("Failed in %s: %v", repo.FullName, err))
			continue
		}
		c.screen.Success(fmt.Sprintf("Created milestone %q in %s", opts.Title, repo.FullName))
	}
	return nil
}

// parseDueDate interprets the optional due-date field. Unparseable input is
// reported and treated as no due date rather than aborting the batch.
func parseDueDate(screen Screen, value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		screen.Warn(fmt.Sprintf("Ignoring invalid due date %q (want YYYY-MM-DD)", value))
		return nil
	}
	return &t
}
