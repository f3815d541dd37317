// Package gitea is a minimal client for the slice of the Gitea REST API the
// admin console drives: repositories, users, organizations, branches and
// milestones under /api/v1.
package gitea

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"

	"giteadm/internal/logging"
)

// APIError is a non-2xx response from the server, carrying the server's own
// message when the body provides one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("gitea: %s", http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("gitea: %s: %s", http.StatusText(e.StatusCode), e.Message)
}

// Client talks to one Gitea instance with a fixed access token.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	tracer  oteltrace.Tracer
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient substitutes the transport, mainly for tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTracer records a span per API call on the given tracer.
func WithTracer(t oteltrace.Tracer) Option {
	return func(c *Client) { c.tracer = t }
}

// NewClient creates a client for the instance at baseURL. A trailing slash on
// the URL is tolerated.
func NewClient(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
		tracer:  noop.NewTracerProvider().Tracer("giteadm/gitea"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured instance URL without the API prefix.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do performs one API call: marshals body (if any), sets auth headers,
// decodes the JSON response into out (if non-nil), and converts non-2xx
// statuses into *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	ctx, span := c.tracer.Start(ctx, "gitea."+method+" "+path,
		oteltrace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("http.target", path),
		))
	defer span.End()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/api/v1"+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "token "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logging.Warn("gitea request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
			apiErr.Message = payload.Message
		}
		logging.Warn("gitea api error",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message))
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// ListRepos lists the repositories accessible to the authenticated user.
func (c *Client) ListRepos(ctx context.Context) ([]*Repository, error) {
	var repos []*Repository
	if err := c.do(ctx, http.MethodGet, "/user/repos?limit=500", nil, &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// CreateRepo creates a repository under the authenticated user.
func (c *Client) CreateRepo(ctx context.Context, opts CreateRepoOptions) (*Repository, error) {
	var repo Repository
	if err := c.do(ctx, http.MethodPost, "/user/repos", opts, &repo); err != nil {
		return nil, err
	}
	return &repo, nil
}

// DeleteRepo deletes owner/repo.
func (c *Client) DeleteRepo(ctx context.Context, owner, repo string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/repos/%s/%s", owner, repo), nil, nil)
}

// ListUsers lists all accounts; requires admin rights.
func (c *Client) ListUsers(ctx context.Context) ([]*User, error) {
	var users []*User
	if err := c.do(ctx, http.MethodGet, "/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser creates an account; requires admin rights.
func (c *Client) CreateUser(ctx context.Context, opts CreateUserOptions) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPost, "/admin/users", opts, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CurrentUser returns the authenticated account.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/user", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListOrgs lists the organizations visible to the authenticated user.
func (c *Client) ListOrgs(ctx context.Context) ([]*Organization, error) {
	var orgs []*Organization
	if err := c.do(ctx, http.MethodGet, "/orgs", nil, &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

// OrgRepos lists an organization's repositories.
func (c *Client) OrgRepos(ctx context.Context, org string) ([]*Repository, error) {
	var repos []*Repository
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orgs/%s/repos", org), nil, &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// OrgMembers lists an organization's members.
func (c *Client) OrgMembers(ctx context.Context, org string) ([]*User, error) {
	var members []*User
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orgs/%s/members", org), nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// CreateBranch creates a branch in owner/repo from an existing one.
func (c *Client) CreateBranch(ctx context.Context, owner, repo string, opts CreateBranchOptions) (*Branch, error) {
	var branch Branch
	path := fmt.Sprintf("/repos/%s/%s/branches", owner, repo)
	if err := c.do(ctx, http.MethodPost, path, opts, &branch); err != nil {
		return nil, err
	}
	return &branch, nil
}

// CreateMilestone creates a milestone in owner/repo.
func (c *Client) CreateMilestone(ctx context.Context, owner, repo string, opts CreateMilestoneOptions) (*Milestone, error) {
	var milestone Milestone
	path := fmt.Sprintf("/repos/%s/%s/milestones", owner, repo)
	if err := c.do(ctx, http.MethodPost, path, opts, &milestone); err != nil {
		return nil, err
	}
	return &milestone, nil
}
