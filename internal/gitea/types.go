package gitea

import "time"

// User is a Gitea account as returned by /user and /admin/users.
type User struct {
	ID        int64     `json:"id"`
	Login     string    `json:"login"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	AvatarURL string    `json:"avatar_url"`
	Created   time.Time `json:"created"`
}

// Field exposes the user's raw values to list widgets by column key.
func (u *User) Field(key string) any {
	switch key {
	case "id":
		return u.ID
	case "login", "username":
		return u.Login
	case "full_name":
		return u.FullName
	case "email":
		return u.Email
	case "admin":
		return u.IsAdmin
	case "created":
		return u.Created
	}
	return nil
}

func (u *User) DisplayLabel() string { return u.Login }
func (u *User) LoginName() string    { return u.Login }

// Repository is a Gitea repository.
type Repository struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	Description string    `json:"description"`
	Private     bool      `json:"private"`
	HTMLURL     string    `json:"html_url"`
	StarsCount  int       `json:"stars_count"`
	Owner       *User     `json:"owner"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r *Repository) Field(key string) any {
	switch key {
	case "id":
		return r.ID
	case "name":
		return r.Name
	case "full_name":
		return r.FullName
	case "description":
		return r.Description
	case "private":
		return r.Private
	case "stars":
		return r.StarsCount
	case "updated":
		return r.UpdatedAt
	case "url":
		return r.HTMLURL
	}
	return nil
}

func (r *Repository) DisplayLabel() string { return r.FullName }
func (r *Repository) ExternalURL() string  { return r.HTMLURL }

// OwnerLogin returns the owner's login, or empty for ownerless payloads.
func (r *Repository) OwnerLogin() string {
	if r.Owner == nil {
		return ""
	}
	return r.Owner.Login
}

// Organization is a Gitea organization.
type Organization struct {
	ID          int64  `json:"id"`
	UserName    string `json:"username"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	Website     string `json:"website"`
	AvatarURL   string `json:"avatar_url"`
}

func (o *Organization) Field(key string) any {
	switch key {
	case "id":
		return o.ID
	case "username":
		return o.UserName
	case "full_name":
		return o.FullName
	case "description":
		return o.Description
	case "website":
		return o.Website
	}
	return nil
}

func (o *Organization) DisplayLabel() string { return o.UserName }
func (o *Organization) ExternalURL() string  { return o.Website }

// Branch is a repository branch.
type Branch struct {
	Name string `json:"name"`
}

// Milestone is a repository milestone.
type Milestone struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	State       string     `json:"state"`
	DueOn       *time.Time `json:"due_on"`
}

// CreateRepoOptions is the payload for creating a repository under the
// authenticated user.
type CreateRepoOptions struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Private     bool   `json:"private"`
	AutoInit    bool   `json:"auto_init"`
}

// CreateUserOptions is the admin payload for creating a user.
type CreateUserOptions struct {
	LoginName          string `json:"login_name"`
	Username           string `json:"username"`
	Email              string `json:"email"`
	Password           string `json:"password"`
	MustChangePassword bool   `json:"must_change_password"`
}

// CreateBranchOptions is the payload for branching from an existing ref.
type CreateBranchOptions struct {
	NewBranchName string `json:"new_branch_name"`
	OldBranchName string `json:"old_branch_name"`
}

// CreateMilestoneOptions is the payload for creating a milestone. DueOn is
// omitted when nil.
type CreateMilestoneOptions struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueOn       *time.Time `json:"due_on,omitempty"`
}
