// Package googletasks implements service.Store on top of the Google Tasks API.
//
// Each key is a task whose title is the key and whose notes hold the value.
// All such tasks live in one dedicated task list, created on first write.
package googletasks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	tasks "google.golang.org/api/tasks/v1"

	"tasklist/internal/config"
	"tasklist/internal/service"
)

const (
	// PageSize is the number of items requested per API page.
	PageSize = 100

	// APITimeout is the timeout for API calls.
	APITimeout = 5 * time.Second

	// MaxValueLen is the longest value a task's notes can hold.
	MaxValueLen = 8192

	// Scope is the OAuth scope for Google Tasks.
	Scope = "https://www.googleapis.com/auth/tasks"
)

// Client implements service.Store using the Google Tasks API.
type Client struct {
	svc       *tasks.Service
	listTitle string
	listID    string // cached after the first successful lookup
}

// New creates a new Google Tasks client.
// Requires oauth_client.json and token.json to exist.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	clientJSON, err := os.ReadFile(cfg.OAuthClientPath())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read oauth_client.json: %v", service.ErrUnauthorized, err)
	}

	oauthConfig, err := google.ConfigFromJSON(clientJSON, Scope)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid oauth_client.json: %v", service.ErrUnauthorized, err)
	}

	tokenData, err := os.ReadFile(cfg.TokenPath())
	if err != nil {
		return nil, fmt.Errorf("%w: not logged in: failed to read token.json: %v", service.ErrUnauthorized, err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(tokenData, &token); err != nil {
		return nil, fmt.Errorf("%w: invalid token.json: %v", service.ErrUnauthorized, err)
	}

	// Create token source that auto-refreshes
	tokenSource := oauthConfig.TokenSource(ctx, &token)
	httpClient := oauth2.NewClient(ctx, tokenSource)

	svc, err := tasks.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}

	return &Client{svc: svc, listTitle: cfg.Settings.GoogleTasks.List}, nil
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(ctx context.Context, httpClient *http.Client, listTitle string, opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)
	svc, err := tasks.NewService(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{svc: svc, listTitle: listTitle}, nil
}

// Get implements service.Store.
func (c *Client) Get(ctx context.Context, key string) (string, bool, error) {
	listID, err := c.resolveList(ctx, false)
	if err != nil {
		if err == service.ErrNotFound {
			return "", false, nil
		}
		return "", false, err
	}

	task, err := c.findTask(ctx, listID, key)
	if err != nil {
		if err == service.ErrNotFound {
			return "", false, nil
		}
		return "", false, err
	}
	return task.Notes, true, nil
}

// Set implements service.Store.
func (c *Client) Set(ctx context.Context, key, value string) error {
	if len(value) > MaxValueLen {
		return fmt.Errorf("value for %s too large for task notes (%d > %d bytes)", key, len(value), MaxValueLen)
	}

	listID, err := c.resolveList(ctx, true)
	if err != nil {
		return err
	}

	task, err := c.findTask(ctx, listID, key)
	if err != nil && err != service.ErrNotFound {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	if err == service.ErrNotFound {
		_, err = c.svc.Tasks.Insert(listID, &tasks.Task{Title: key, Notes: value}).Context(ctx).Do()
		return wrapError(err)
	}

	patch := &tasks.Task{Notes: value, ForceSendFields: []string{"Notes"}}
	_, err = c.svc.Tasks.Patch(listID, task.Id, patch).Context(ctx).Do()
	return wrapError(err)
}

// resolveList finds the snapshot list by title (case-insensitive, trimmed).
// With create set, a missing list is created.
func (c *Client) resolveList(ctx context.Context, create bool) (string, error) {
	if c.listID != "" {
		return c.listID, nil
	}

	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	want := strings.ToLower(strings.TrimSpace(c.listTitle))
	var matches []string
	err := c.svc.Tasklists.List().MaxResults(PageSize).Pages(ctx, func(resp *tasks.TaskLists) error {
		for _, list := range resp.Items {
			if strings.ToLower(strings.TrimSpace(list.Title)) == want {
				matches = append(matches, list.Id)
			}
		}
		return nil
	})
	if err != nil {
		return "", wrapError(err)
	}

	switch len(matches) {
	case 0:
		if !create {
			return "", service.ErrNotFound
		}
		list, err := c.svc.Tasklists.Insert(&tasks.TaskList{Title: c.listTitle}).Context(ctx).Do()
		if err != nil {
			return "", wrapError(err)
		}
		c.listID = list.Id
	case 1:
		c.listID = matches[0]
	default:
		return "", fmt.Errorf("ambiguous list name: %s", c.listTitle)
	}
	return c.listID, nil
}

// findTask returns the first open task titled key.
func (c *Client) findTask(ctx context.Context, listID, key string) (*tasks.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	var found *tasks.Task
	err := c.svc.Tasks.List(listID).
		MaxResults(PageSize).
		ShowCompleted(false).
		ShowDeleted(false).
		ShowHidden(false).
		Pages(ctx, func(resp *tasks.Tasks) error {
			for _, task := range resp.Items {
				if found == nil && task.Title == key {
					found = task
				}
			}
			return nil
		})
	if err != nil {
		return nil, wrapError(err)
	}
	if found == nil {
		return nil, service.ErrNotFound
	}
	return found, nil
}

// wrapError wraps API errors with user-friendly messages.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()

	// Check for timeout
	if strings.Contains(errStr, "context deadline exceeded") {
		return fmt.Errorf("request timed out")
	}

	// Check for auth errors
	if strings.Contains(errStr, "401") || strings.Contains(errStr, "403") {
		return fmt.Errorf("%w: token expired or revoked (run: tasklist login)", service.ErrUnauthorized)
	}

	if strings.Contains(errStr, "404") {
		return service.ErrNotFound
	}

	return err
}
