// Package demo implements the trivial demo benchmark facade: fetch a
// secret, submit it back as the answer.
package demo

import (
	"context"
	"fmt"
	"net/http"

	"github.com/erc3/erc3-go/pkg/api"
)

// Tool names for the demo endpoints. As with the store, each body
// duplicates the endpoint path in a tool field per the server contract.
const (
	ToolSecret = "/secret"
	ToolAnswer = "/answer"
)

// Secret is the response to a secret fetch.
type Secret struct {
	Value string `json:"value"`
}

// Client is the demo facade for one task.
type Client struct {
	taskID string
	req    *api.Requester
}

// NewClient binds a demo facade to baseURL's /demo/{taskID} prefix. A nil
// httpClient falls back to http.DefaultClient.
func NewClient(baseURL, taskID string, httpClient *http.Client) *Client {
	return &Client{
		taskID: taskID,
		req:    api.NewRequester(baseURL+"/demo/"+taskID, httpClient),
	}
}

// TaskID returns the task this facade is bound to.
func (c *Client) TaskID() string {
	return c.taskID
}

// GetSecret fetches the task's secret value.
func (c *Client) GetSecret(ctx context.Context) (*Secret, error) {
	body := struct {
		Tool string `json:"tool"`
	}{ToolSecret}

	var out Secret
	if err := c.req.Post(ctx, ToolSecret, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitAnswer sends the answer for evaluation. Non-string answers are
// coerced to their string representation before sending.
func (c *Client) SubmitAnswer(ctx context.Context, answer any) error {
	body := struct {
		Tool   string `json:"tool"`
		Answer string `json:"answer"`
	}{ToolAnswer, fmt.Sprintf("%v", answer)}

	return c.req.Post(ctx, ToolAnswer, body, nil)
}
