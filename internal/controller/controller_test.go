package controller

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"giteadm/internal/gitea"
	"giteadm/internal/ui"
)

// fakeScreen replays scripted interaction results and records everything the
// controllers put on the log and status surfaces.
type fakeScreen struct {
	t *testing.T

	menuResults []ui.MenuResult
	pickResults []ui.PickResult
	formResults []ui.FormResult

	menus    []string // titles, in order
	browses  []string
	forms    []string
	picks    []string
	logs     []string
	statuses []string
	stats    []string

	browseOpts  []ui.BrowseOptions
	browseRows  [][]ui.Row
	loadingOpen int

	themeErr     error
	themeSwitch  []string
	switchCalled int
}

func (f *fakeScreen) Menu(title string, choices []ui.Choice) ui.MenuResult {
	f.menus = append(f.menus, title)
	if len(f.menuResults) == 0 {
		f.t.Fatalf("unscripted Menu(%q)", title)
	}
	res := f.menuResults[0]
	f.menuResults = f.menuResults[1:]
	return res
}

func (f *fakeScreen) Browse(title string, rows []ui.Row, opts ui.BrowseOptions) {
	f.browses = append(f.browses, title)
	f.browseRows = append(f.browseRows, rows)
	f.browseOpts = append(f.browseOpts, opts)
}

func (f *fakeScreen) Pick(title string, rows []ui.Row) ui.PickResult {
	f.picks = append(f.picks, title)
	if len(f.pickResults) == 0 {
		f.t.Fatalf("unscripted Pick(%q)", title)
	}
	res := f.pickResults[0]
	f.pickResults = f.pickResults[1:]
	return res
}

func (f *fakeScreen) Form(title string, fields []ui.Field) ui.FormResult {
	f.forms = append(f.forms, title)
	if len(f.formResults) == 0 {
		f.t.Fatalf("unscripted Form(%q)", title)
	}
	res := f.formResults[0]
	f.formResults = f.formResults[1:]
	return res
}

func (f *fakeScreen) Loading(text string) { f.loadingOpen++ }
func (f *fakeScreen) Done()               { f.loadingOpen-- }

func (f *fakeScreen) Log(text string)     { f.logs = append(f.logs, "info: "+text) }
func (f *fakeScreen) Success(text string) { f.logs = append(f.logs, "success: "+text) }
func (f *fakeScreen) Warn(text string)    { f.logs = append(f.logs, "warn: "+text) }
func (f *fakeScreen) Error(text string)   { f.logs = append(f.logs, "error: "+text) }

func (f *fakeScreen) SetStatus(text string) { f.statuses = append(f.statuses, text) }
func (f *fakeScreen) SetError(text string)  { f.statuses = append(f.statuses, "error: "+text) }
func (f *fakeScreen) SetStats(text string)  { f.stats = append(f.stats, text) }

func (f *fakeScreen) SwitchTheme(name string) error {
	f.switchCalled++
	f.themeSwitch = append(f.themeSwitch, name)
	return f.themeErr
}

func (f *fakeScreen) hasLog(substr string) bool {
	for _, l := range f.logs {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

// fakeService records API calls and replays scripted results.
type fakeService struct {
	repos []*gitea.Repository
	users []*gitea.User
	orgs  []*gitea.Organization
	me    *gitea.User
	err   error

	deleted        []string
	createdRepos   []gitea.CreateRepoOptions
	createdUsers   []gitea.CreateUserOptions
	branchCalls    []string
	milestoneCalls []string
	milestoneOpts  []gitea.CreateMilestoneOptions

	deleteErrFor string // FullName whose deletion fails
}

func (s *fakeService) ListRepos(context.Context) ([]*gitea.Repository, error) {
	return s.repos, s.err
}

func (s *fakeService) CreateRepo(_ context.Context, opts gitea.CreateRepoOptions) (*gitea.Repository, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.createdRepos = append(s.createdRepos, opts)
	return &gitea.Repository{Name: opts.Name, FullName: "admin/" + opts.Name}, nil
}

func (s *fakeService) DeleteRepo(_ context.Context, owner, repo string) error {
	full := owner + "/" + repo
	if full == s.deleteErrFor {
		return errors.New("permission denied")
	}
	s.deleted = append(s.deleted, full)
	return nil
}

func (s *fakeService) ListUsers(context.Context) ([]*gitea.User, error) {
	return s.users, s.err
}

func (s *fakeService) CreateUser(_ context.Context, opts gitea.CreateUserOptions) (*gitea.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.createdUsers = append(s.createdUsers, opts)
	return &gitea.User{Login: opts.Username}, nil
}

func (s *fakeService) CurrentUser(context.Context) (*gitea.User, error) {
	if s.me == nil {
		return nil, errors.New("unauthorized")
	}
	return s.me, nil
}

func (s *fakeService) ListOrgs(context.Context) ([]*gitea.Organization, error) {
	return s.orgs, s.err
}

func (s *fakeService) OrgRepos(_ context.Context, org string) ([]*gitea.Repository, error) {
	return s.repos, s.err
}

func (s *fakeService) OrgMembers(_ context.Context, org string) ([]*gitea.User, error) {
	return s.users, s.err
}

func (s *fakeService) CreateBranch(_ context.Context, owner, repo string, opts gitea.CreateBranchOptions) (*gitea.Branch, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.branchCalls = append(s.branchCalls, owner+"/"+repo+":"+opts.NewBranchName)
	return &gitea.Branch{Name: opts.NewBranchName}, nil
}

func (s *fakeService) CreateMilestone(_ context.Context, owner, repo string, opts gitea.CreateMilestoneOptions) (*gitea.Milestone, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.milestoneCalls = append(s.milestoneCalls, owner+"/"+repo)
	s.milestoneOpts = append(s.milestoneOpts, opts)
	return &gitea.Milestone{Title: opts.Title}, nil
}

func sampleRepos() []*gitea.Repository {
	return []*gitea.Repository{
		{Name: "alpha", FullName: "admin/alpha", Owner: &gitea.User{Login: "admin"}},
		{Name: "beta", FullName: "admin/beta", Owner: &gitea.User{Login: "admin"}},
	}
}

func menu(tokens ...string) []ui.MenuResult {
	out := make([]ui.MenuResult, len(tokens))
	for i, tok := range tokens {
		if tok == "" {
			out[i] = ui.MenuResult{Cancelled: true}
		} else {
			out[i] = ui.MenuResult{Token: tok}
		}
	}
	return out
}

func TestRepoController_ListShowsBrowser(t *testing.T) {
	svc := &fakeService{repos: sampleRepos()}
	screen := &fakeScreen{t: t, menuResults: menu("list", "back")}

	NewRepoController(screen, svc).Run(context.Background())

	if len(screen.browses) != 1 || screen.browses[0] != "Repositories" {
		t.Fatalf("browses: %v", screen.browses)
	}
	if len(screen.browseRows[0]) != 2 {
		t.Errorf("expected both repos listed, got %d", len(screen.browseRows[0]))
	}
	if screen.loadingOpen != 0 {
		t.Error("loading indicator must be balanced")
	}
	if len(screen.stats) == 0 || screen.stats[0] != "repos: 2" {
		t.Errorf("stats: %v", screen.stats)
	}
}

func TestRepoController_CreateCallsService(t *testing.T) {
	svc := &fakeService{}
	screen := &fakeScreen{
		t:           t,
		menuResults: menu("create", "back"),
		formResults: []ui.FormResult{{Values: map[string]string{
			"name": "new-repo", "description": "desc", "private": "true",
		}}},
	}

	NewRepoController(screen, svc).Run(context.Background())

	if len(svc.createdRepos) != 1 {
		t.Fatalf("expected one create call, got %d", len(svc.createdRepos))
	}
	opts := svc.createdRepos[0]
	if opts.Name != "new-repo" || !opts.Private || !opts.AutoInit {
		t.Errorf("create options: %+v", opts)
	}
	if !screen.hasLog("success: Repository created: admin/new-repo") {
		t.Errorf("logs: %v", screen.logs)
	}
}

func TestRepoController_CreateCancelledDoesNothing(t *testing.T) {
	svc := &fakeService{}
	screen := &fakeScreen{
		t:           t,
		menuResults: menu("create", "back"),
		formResults: []ui.FormResult{{Cancelled: true}},
	}

	NewRepoController(screen, svc).Run(context.Background())

	if len(svc.createdRepos) != 0 {
		t.Error("cancelled form must not create anything")
	}
}

func TestRepoController_DeleteContinuesPastFailures(t *testing.T) {
	repos := sampleRepos()
	svc := &fakeService{repos: repos, deleteErrFor: "admin/alpha"}
	screen := &fakeScreen{
		t:           t,
		menuResults: menu("delete", "back"),
		pickResults: []ui.PickResult{{Rows: []ui.Row{repos[0], repos[1]}}},
	}

	NewRepoController(screen, svc).Run(context.Background())

	if len(svc.deleted) != 1 || svc.deleted[0] != "admin/beta" {
		t.Errorf("deleted: %v", svc.deleted)
	}
	if !screen.hasLog("error: Failed to delete admin/alpha") {
		t.Errorf("logs: %v", screen.logs)
	}
	if !screen.hasLog("success: Deleted admin/beta") {
		t.Errorf("logs: %v", screen.logs)
	}
}

func TestRepoController_BulkBranch(t *testing.T) {
	repos := sampleRepos()
	svc := &fakeService{repos: repos}
	screen := &fakeScreen{
		t:           t,
		menuResults: menu("bulk_branch", "back"),
		pickResults: []ui.PickResult{{Rows: []ui.Row{repos[0], repos[1]}}},
		formResults: []ui.FormResult{{Values: map[string]string{
			"new_branch": "release", "old_branch": "main",
		}}},
	}

	NewRepoController(screen, svc).Run(context.Background())

	want := []string{"admin/alpha:release", "admin/beta:release"}
	if len(svc.branchCalls) != 2 || svc.branchCalls[0] != want[0] || svc.branchCalls[1] != want[1] {
		t.Errorf("branch calls: %v", svc.branchCalls)
	}
}

func TestRepoController_BulkMilestoneParsesDueDate(t *testing.T) {
	repos := sampleRepos()
	svc := &fakeService{repos: repos}
	screen := &fakeScreen{
		t:           t,
		menuResults: menu("bulk_milestone", "back"),
		pickResults: []ui.PickResult{{Rows: []ui.Row{repos[0]}}},
		formResults: []ui.FormResult{{Values: map[string]string{
			"title": "v1.0", "description": "first", "due_on": "2026-12-31",
		}}},
	}

	NewRepoController(screen, svc).Run(context.Background())

	if len(svc.milestoneOpts) != 1 {
		t.Fatalf("milestone calls: %v", svc.milestoneCalls)
	}
	due := svc.milestoneOpts[0].DueOn
	if due == nil || !due.Equal(time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("due date: %v", due)
	}
}

func TestRepoController_BulkMilestoneBadDueDateWarns(t *testing.T) {
	repos := sampleRepos()
	svc := &fakeService{repos: repos}
	screen := &fakeScreen{
		t:           t,
		menuResults: menu("bulk_milestone", "back"),
		pickResults: []ui.PickResult{{Rows: []ui.Row{repos[0]}}},
		formResults: []ui.FormResult{{Values: map[string]string{
			"title": "v1.0", "due_on": "tomorrow",
		}}},
	}

	NewRepoController(screen, svc).Run(context.Background())

	if len(svc.milestoneOpts) != 1 || svc.milestoneOpts[0].DueOn != nil {
		t.Error("invalid due date should fall back to none")
	}
	if !screen.hasLog("warn: Ignoring invalid due date") {
		t.Errorf("logs: %v", screen.logs)
	}
}

func TestRepoController_ServiceErrorSurfaces(t *testing.T) {
	svc := &fakeService{err: errors.New("connection refused")}
	screen := &fakeScreen{t: t, menuResults: menu("list", "back")}

	NewRepoController(screen, svc).Run(context.Background())

	if !screen.hasLog("error: Operation failed: connection refused") {
		t.Errorf("logs: %v", screen.logs)
	}
	if screen.loadingOpen != 0 {
		t.Error("loading indicator must close on the error path")
	}
}

func TestUserController_ListAndAdd(t *testing.T) {
	svc := &fakeService{users: []*gitea.User{{Login: "admin", IsAdmin: true}}}
	screen := &fakeScreen{
		t:           t,
		menuResults: menu("list", "add", "back"),
		formResults: []ui.FormResult{{Values: map[string]string{
			"username": "bob", "email": "bob@example.com", "password": "hunter2",
		}}},
	}

	NewUserController(screen, svc).Run(context.Background())

	if len(screen.browses) != 1 || screen.browses[0] != "Users" {
		t.Errorf("browses: %v", screen.browses)
	}
	if len(svc.createdUsers) != 1 {
		t.Fatalf("expected one user created")
	}
	created := svc.createdUsers[0]
	if created.Username != "bob" || created.LoginName != "bob" || created.Email != "bob@example.com" {
		t.Errorf("create user options: %+v", created)
	}
	if created.MustChangePassword {
		t.Error("created users should not be forced to rotate the password")
	}
	if !screen.hasLog("success: User bob created.") {
		t.Errorf("logs: %v", screen.logs)
	}
}

func TestUserController_AddRequiresUsernameAndPassword(t *testing.T) {
	svc := &fakeService{}
	screen := &fakeScreen{
		t:           t,
		menuResults: menu("add", "back"),
		formResults: []ui.FormResult{{Values: map[string]string{"username": "", "password": ""}}},
	}

	NewUserController(screen, svc).Run(context.Background())

	if len(svc.createdUsers) != 0 {
		t.Error("empty username must not reach the service")
	}
	if !screen.hasLog("warn: Username and password are required.") {
		t.Errorf("logs: %v", screen.logs)
	}
}

func TestSettingsController_ThemeSwitchPersists(t *testing.T) {
	var saved string
	svc := &fakeService{me: &gitea.User{Login: "admin", Email: "a@example.com", IsAdmin: true}}
	screen := &fakeScreen{
		t:           t,
		menuResults: menu("change_theme", "light", "back"),
	}

	NewSettingsController(screen, svc, func(name string) error {
		saved = name
		return nil
	}).Run(context.Background())

	if len(screen.themeSwitch) != 1 || screen.themeSwitch[0] != "light" {
		t.Errorf("switches: %v", screen.themeSwitch)
	}
	if saved != "light" {
		t.Errorf("saved theme: %q", saved)
	}
	if !screen.hasLog("success: Theme switched to light") {
		t.Errorf("logs: %v", screen.logs)
	}
}

func TestSettingsController_ThemeSwitchFailureNotSaved(t *testing.T) {
	saveCalled := false
	svc := &fakeService{me: &gitea.User{Login: "admin"}}
	screen := &fakeScreen{
		t:           t,
		menuResults: menu("change_theme", "dark", "back"),
		themeErr:    errors.New("no such theme"),
	}

	NewSettingsController(screen, svc, func(string) error {
		saveCalled = true
		return nil
	}).Run(context.Background())

	if saveCalled {
		t.Error("failed switch must not persist the theme")
	}
	if !screen.hasLog("error: Failed to switch theme") {
		t.Errorf("logs: %v", screen.logs)
	}
}

func TestSettingsController_ProfileUnavailable(t *testing.T) {
	svc := &fakeService{} // CurrentUser errors
	screen := &fakeScreen{
		t:           t,
		menuResults: menu("profile", "back"),
	}

	NewSettingsController(screen, svc, nil).Run(context.Background())

	if !screen.hasLog("error: Failed to fetch user profile") {
		t.Errorf("logs: %v", screen.logs)
	}
	if !screen.hasLog("warn: User info unavailable.") {
		t.Errorf("logs: %v", screen.logs)
	}
}

func TestSettingsController_ShowProfile(t *testing.T) {
	svc := &fakeService{me: &gitea.User{Login: "admin", Email: "a@example.com", IsAdmin: true}}
	screen := &fakeScreen{
		t:           t,
		menuResults: menu("profile", "back"),
	}

	NewSettingsController(screen, svc, nil).Run(context.Background())

	if !screen.hasLog("info: Username: admin") || !screen.hasLog("info: Admin: Yes") {
		t.Errorf("logs: %v", screen.logs)
	}
}

func TestAppController_DispatchAndExit(t *testing.T) {
	svc := &fakeService{repos: sampleRepos()}
	screen := &fakeScreen{
		t:           t,
		menuResults: menu("repo", "list", "back", "exit"),
	}

	NewApp(screen, svc, nil).Run(context.Background())

	if len(screen.browses) != 1 {
		t.Errorf("expected the repo list flow to run, browses: %v", screen.browses)
	}
	if screen.menus[0] != "Main Menu" || screen.menus[len(screen.menus)-1] != "Main Menu" {
		t.Errorf("menus: %v", screen.menus)
	}
}

func TestAppController_CancelledMenuExits(t *testing.T) {
	screen := &fakeScreen{t: t, menuResults: menu("")}
	NewApp(screen, &fakeService{}, nil).Run(context.Background())
	// Reaching here without an unscripted call is the assertion.
}
