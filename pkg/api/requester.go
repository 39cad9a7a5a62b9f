// Package api implements the request/response contract shared by every ERC3
// client: one JSON-over-POST exchange per operation, with server-declared
// failures and transport failures translated into a single error type.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Requester issues single JSON POST requests against a fixed URL prefix.
// Each client facade owns one Requester bound to its own prefix, e.g.
// "<base>/store/<taskId>". A Requester holds no mutable state and is safe
// for concurrent use.
type Requester struct {
	prefix string
	client *http.Client
}

// NewRequester creates a Requester bound to the given URL prefix. A nil
// httpClient falls back to http.DefaultClient; tests inject their own.
func NewRequester(prefix string, httpClient *http.Client) *Requester {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Requester{
		prefix: strings.TrimRight(prefix, "/"),
		client: httpClient,
	}
}

// Prefix returns the URL prefix this Requester is bound to.
func (r *Requester) Prefix() string {
	return r.prefix
}

// statusProbe picks out the failure fields the server declares inside an
// otherwise arbitrary JSON body.
type statusProbe struct {
	Status *float64 `json:"status"`
	Error  string   `json:"error"`
	Code   string   `json:"code"`
}

// Post sends body as JSON to prefix+path and decodes the response into out
// (a nil out discards the response). The API key, where an endpoint requires
// one, travels inside the body as a field; no authentication header is sent.
//
// Failures surface once, on the first attempt, always as *Error: transport
// and parse failures with status 500 and code REQUEST_FAILED, and any parsed
// body whose declared status is >= 400 with the body's own message, status,
// and code. No retries, and no timeout beyond ctx and the transport default.
func (r *Requester) Post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return RequestFailed(fmt.Errorf("failed to encode request body: %w", err))
	}

	url := r.prefix + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return RequestFailed(fmt.Errorf("failed to build request for %s: %w", url, err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return RequestFailed(fmt.Errorf("failed to reach %s: %w", url, err))
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return RequestFailed(fmt.Errorf("failed to read response from %s: %w", url, err))
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return RequestFailed(fmt.Errorf("response from %s is not valid JSON: %w", url, err))
	}

	if _, isObject := parsed.(map[string]any); isObject {
		var probe statusProbe
		if err := json.Unmarshal(raw, &probe); err == nil && probe.Status != nil && *probe.Status >= 400 {
			msg := probe.Error
			if msg == "" {
				msg = "API Error"
			}
			return &Error{
				Message: msg,
				Status:  int(*probe.Status),
				Code:    probe.Code,
				Detail:  string(raw),
			}
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return RequestFailed(fmt.Errorf("failed to decode response from %s: %w", url, err))
	}
	return nil
}
