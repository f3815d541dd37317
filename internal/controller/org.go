package controller

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkg/browser"

	"giteadm/internal/gitea"
	"giteadm/internal/ui"
)

// OrgController covers organization browsing: the org list with a drill-down
// into each organization's repositories, members and website.
type OrgController struct {
	screen  Screen
	service Service

	// openURL opens the org website externally; swapped out in tests.
	openURL func(url string) error
}

func NewOrgController(screen Screen, service Service) *OrgController {
	return &OrgController{screen: screen, service: service, openURL: browser.OpenURL}
}

func orgColumns() []ui.Column {
	return []ui.Column{
		{Header: "Name", Key: "username", Width: 18},
		{Header: "Full Name", Key: "full_name", Width: 24},
		{Header: "Description", Key: "description", Width: 36},
	}
}

// Run drives the organization menu until Back.
func (c *OrgController) Run(ctx context.Context) {
	for {
		c.screen.SetStatus("Organizations")
		res := c.screen.Menu("Organizations", []ui.Choice{
			{Label: "List Organizations", Token: "list"},
			{Label: "Back", Token: "back"},
		})
		if res.Cancelled || res.Token == "back" {
			return
		}

		if res.Token == "list" {
			if err := c.list(ctx); err != nil {
				c.screen.Error("Operation failed: " + err.Error())
				c.screen.SetError("Operation failed")
			}
		}
	}
}

// list shows the organization browser. Confirming an organization starts its
// detail flow on the selection goroutine; the pending browse resolves when
// the detail flow replaces it on screen, and list waits for the detail flow
// to finish before returning so only one flow drives the session at a time.
func (c *OrgController) list(ctx context.Context) error {
	c.screen.Loading("Fetching organizations...")
	orgs, err := c.service.ListOrgs(ctx)
	c.screen.Done()
	if err != nil {
		return err
	}

	rows := make([]ui.Row, len(orgs))
	for i, o := range orgs {
		rows[i] = o
	}

	var detail sync.WaitGroup
	c.screen.Browse("Organizations", rows, ui.BrowseOptions{
		Columns: orgColumns(),
		OnSelect: func(row ui.Row) error {
			detail.Add(1)
			defer detail.Done()
			c.detail(ctx, row.(*gitea.Organization))
			return nil
		},
	})
	detail.Wait()
	return nil
}

// detail is the per-organization menu loop.
func (c *OrgController) detail(ctx context.Context, org *gitea.Organization) {
	for {
		c.screen.SetStatus("Organization: " + org.UserName)
		res := c.screen.Menu("Org: "+org.UserName, []ui.Choice{
			{Label: "View Repositories", Token: "repos"},
			{Label: "View Members", Token: "members"},
			{Label: "Open Website", Token: "website"},
			{Label: "Back", Token: "back"},
		})
		if res.Cancelled || res.Token == "back" {
			return
		}

		var err error
		switch res.Token {
		case "repos":
			err = c.listRepos(ctx, org)
		case "members":
			err = c.listMembers(ctx, org)
		case "website":
			c.openWebsite(org)
		}
		if err != nil {
			c.screen.Error("Operation failed: " + err.Error())
		}
	}
}

func (c *OrgController) listRepos(ctx context.Context, org *gitea.Organization) error {
	c.screen.Loading("Fetching repos for " + org.UserName + "...")
	repos, err := c.service.OrgRepos(ctx, org.UserName)
	c.screen.Done()
	if err != nil {
		return err
	}
	c.screen.Browse("Repos: "+org.UserName, repoRows(repos), ui.BrowseOptions{
		Columns: []ui.Column{
			{Header: "Name", Key: "name", Width: 24},
			{Header: "Private", Key: "private", Width: 8, Render: ui.RenderYesNo()},
			{Header: "Description", Key: "description", Width: 36},
		},
	})
	return nil
}

func (c *OrgController) listMembers(ctx context.Context, org *gitea.Organization) error {
	c.screen.Loading("Fetching members for " + org.UserName + "...")
	members, err := c.service.OrgMembers(ctx, org.UserName)
	c.screen.Done()
	if err != nil {
		return err
	}
	c.screen.Browse("Members: "+org.UserName, userRows(members), ui.BrowseOptions{
		Columns: []ui.Column{
			{Header: "Username", Key: "login", Width: 18},
			{Header: "Email", Key: "email", Width: 28},
			{Header: "Full Name", Key: "full_name", Width: 24},
		},
	})
	return nil
}

func (c *OrgController) openWebsite(org *gitea.Organization) {
	if org.Website == "" {
		c.screen.Warn("No website URL found for organization.")
		return
	}
	if err := c.openURL(org.Website); err != nil {
		c.screen.Error(fmt.Sprintf("Failed to open %s: %v", org.Website, err))
		return
	}
	c.screen.Success("Opened " + org.Website)
}
