// Package client implements the core ERC3 client: benchmark discovery,
// session and task lifecycle, and LLM usage logging. Benchmark-specific
// facades for a task are obtained through StoreClient and DemoClient.
package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/erc3/erc3-go/pkg/api"
	"github.com/erc3/erc3-go/pkg/demo"
	"github.com/erc3/erc3-go/pkg/store"
)

// DefaultBaseURL is the production API host used when Config.BaseURL is
// left empty.
const DefaultBaseURL = "https://erc3.agenticbenchmarks.com/api"

const defaultArchitecture = "x86_64"

// Config carries everything a Client needs. It is immutable after
// construction; environment lookup belongs to the CLI boundary, never here.
type Config struct {
	// APIKey authenticates session operations. Required. Per the server
	// contract it is sent inside request bodies, not as a header.
	APIKey string
	// BaseURL overrides DefaultBaseURL.
	BaseURL string
	// HTTPClient overrides http.DefaultClient. Mainly for tests.
	HTTPClient *http.Client
}

// Client holds only its configuration and is safe for concurrent use.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	req        *api.Requester
}

// New builds a Client from cfg. It fails when the API key is absent and
// performs no network call.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("api key is required")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	req := api.NewRequester(baseURL, cfg.HTTPClient)
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    req.Prefix(),
		httpClient: cfg.HTTPClient,
		req:        req,
	}, nil
}

// ListBenchmarks returns the benchmark catalog. The catalog schema is
// server-defined and passed through undecoded beyond JSON.
func (c *Client) ListBenchmarks(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := c.req.Post(ctx, "/benchmarks/list", map[string]any{}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ViewBenchmark returns the detail for a single benchmark.
func (c *Client) ViewBenchmark(ctx context.Context, benchmark string) (map[string]any, error) {
	var out map[string]any
	err := c.req.Post(ctx, "/benchmarks/view", map[string]any{"benchmark": benchmark}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// StartSession creates a session for a benchmark. The configured API key is
// embedded in the request body as account_key.
func (c *Client) StartSession(ctx context.Context, req StartSessionRequest) (*Session, error) {
	arch := req.Architecture
	if arch == "" {
		arch = defaultArchitecture
	}
	body := map[string]any{
		"account_key":  c.apiKey,
		"benchmark":    req.Benchmark,
		"workspace":    req.Workspace,
		"name":         req.Name,
		"architecture": arch,
	}
	var out Session
	if err := c.req.Post(ctx, "/sessions/start", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SessionStatus returns the tasks of a session.
func (c *Client) SessionStatus(ctx context.Context, sessionID string) (*SessionStatus, error) {
	var out SessionStatus
	err := c.req.Post(ctx, "/sessions/status", map[string]any{"session_id": sessionID}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchSessions queries past sessions. Criteria fields are passed through
// alongside the account key; their vocabulary is server-defined.
func (c *Client) SearchSessions(ctx context.Context, criteria map[string]any) (map[string]any, error) {
	body := map[string]any{"account_key": c.apiKey}
	for k, v := range criteria {
		body[k] = v
	}
	var out map[string]any
	if err := c.req.Post(ctx, "/sessions/search", body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SubmitSession submits a finished session for evaluation.
func (c *Client) SubmitSession(ctx context.Context, sessionID string) (map[string]any, error) {
	var out map[string]any
	err := c.req.Post(ctx, "/sessions/submit", map[string]any{"session_id": sessionID}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// StartTask marks a task as started. ref may be a task ID string, a Task,
// or a decoded object with a task_id field.
func (c *Client) StartTask(ctx context.Context, ref any) (*TaskResult, error) {
	return c.taskCall(ctx, "/tasks/start", ref)
}

// CompleteTask marks a task as complete and returns the server's evaluation.
func (c *Client) CompleteTask(ctx context.Context, ref any) (*TaskResult, error) {
	return c.taskCall(ctx, "/tasks/complete", ref)
}

func (c *Client) taskCall(ctx context.Context, path string, ref any) (*TaskResult, error) {
	id, err := TaskID(ref)
	if err != nil {
		return nil, err
	}
	var out TaskResult
	if err := c.req.Post(ctx, path, map[string]any{"task_id": id}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ViewTask returns a task's current state and logs. A non-nil since narrows
// the log window; when nil the field is omitted from the request entirely.
func (c *Client) ViewTask(ctx context.Context, ref any, since *string) (*Task, error) {
	id, err := TaskID(ref)
	if err != nil {
		return nil, err
	}
	body := map[string]any{"task_id": id}
	if since != nil {
		body["since"] = *since
	}
	var out Task
	if err := c.req.Post(ctx, "/tasks/view", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LogLLM records one model call against a task, normalizing the usage
// naming before sending.
func (c *Client) LogLLM(ctx context.Context, ref any, entry LLMLog) (map[string]any, error) {
	id, err := TaskID(ref)
	if err != nil {
		return nil, err
	}
	body := map[string]any{
		"task_id":      id,
		"model":        entry.Model,
		"usage":        entry.Usage.normalize(),
		"duration_sec": entry.DurationSec,
	}
	var out map[string]any
	if err := c.req.Post(ctx, "/tasks/log", body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetKey requests an API key for an email address. This is the one
// unauthenticated helper endpoint, so it is usable before New.
func GetKey(ctx context.Context, baseURL, email string) (map[string]any, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	req := api.NewRequester(baseURL, nil)
	var out map[string]any
	if err := req.Post(ctx, "/get_key", map[string]any{"email": email}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// StoreClient builds the store facade bound to the resolved task ID. No
// network call is made.
func (c *Client) StoreClient(ref any) (*store.Client, error) {
	id, err := TaskID(ref)
	if err != nil {
		return nil, err
	}
	return store.NewClient(c.baseURL, id, c.httpClient), nil
}

// DemoClient builds the demo facade bound to the resolved task ID. No
// network call is made.
func (c *Client) DemoClient(ref any) (*demo.Client, error) {
	id, err := TaskID(ref)
	if err != nil {
		return nil, err
	}
	return demo.NewClient(c.baseURL, id, c.httpClient), nil
}
