package store

import (
	"context"
	"fmt"
)

// ToolRequest is a name-driven invocation of one store operation. Only the
// fields the named tool uses are read; the rest are ignored.
type ToolRequest struct {
	Tool     string `json:"tool"`
	SKU      string `json:"sku,omitempty"`
	Quantity int    `json:"quantity,omitempty"`
	Coupon   string `json:"coupon,omitempty"`
	Offset   int    `json:"offset,omitempty"`
	Limit    int    `json:"limit,omitempty"`
}

// UnknownToolError reports a tool name outside the store's closed tool set.
// It is deliberately not an api.Error: the request never leaves the client.
type UnknownToolError struct {
	Tool string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown store tool '%s'", e.Tool)
}

type handler func(*Client, context.Context, ToolRequest) (any, error)

// handlers is the closed mapping from tool name to operation. Adding an
// endpoint means adding exactly one entry here.
var handlers = map[string]handler{
	ToolListProducts: func(c *Client, ctx context.Context, r ToolRequest) (any, error) {
		return c.ListProducts(ctx, r.Offset, r.Limit)
	},
	ToolViewBasket: func(c *Client, ctx context.Context, r ToolRequest) (any, error) {
		return c.ViewBasket(ctx)
	},
	ToolAddItem: func(c *Client, ctx context.Context, r ToolRequest) (any, error) {
		return c.AddToBasket(ctx, r.SKU, r.Quantity)
	},
	ToolRemoveItem: func(c *Client, ctx context.Context, r ToolRequest) (any, error) {
		return c.RemoveFromBasket(ctx, r.SKU, r.Quantity)
	},
	ToolApplyCoupon: func(c *Client, ctx context.Context, r ToolRequest) (any, error) {
		if err := c.ApplyCoupon(ctx, r.Coupon); err != nil {
			return nil, err
		}
		return map[string]any{}, nil
	},
	ToolRemoveCoupon: func(c *Client, ctx context.Context, r ToolRequest) (any, error) {
		if err := c.RemoveCoupon(ctx); err != nil {
			return nil, err
		}
		return map[string]any{}, nil
	},
	ToolCheckout: func(c *Client, ctx context.Context, r ToolRequest) (any, error) {
		return c.Checkout(ctx)
	},
}

// Dispatch routes req to the method matching its tool name. It adds no
// behavior beyond the methods it forwards to.
func (c *Client) Dispatch(ctx context.Context, req ToolRequest) (any, error) {
	h, ok := handlers[req.Tool]
	if !ok {
		return nil, &UnknownToolError{Tool: req.Tool}
	}
	return h(c, ctx, req)
}
