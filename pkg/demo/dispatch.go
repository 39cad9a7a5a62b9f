package demo

import (
	"context"
	"fmt"
)

// ToolRequest is a name-driven invocation of one demo operation.
type ToolRequest struct {
	Tool   string `json:"tool"`
	Answer any    `json:"answer,omitempty"`
}

// UnknownToolError reports a tool name outside the demo's two-tool set.
type UnknownToolError struct {
	Tool string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown demo tool '%s'", e.Tool)
}

// Dispatch routes req to GetSecret or SubmitAnswer by tool name.
func (c *Client) Dispatch(ctx context.Context, req ToolRequest) (any, error) {
	switch req.Tool {
	case ToolSecret:
		return c.GetSecret(ctx)
	case ToolAnswer:
		if err := c.SubmitAnswer(ctx, req.Answer); err != nil {
			return nil, err
		}
		return map[string]any{}, nil
	default:
		return nil, &UnknownToolError{Tool: req.Tool}
	}
}
