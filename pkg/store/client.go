// Package store implements the store benchmark facade: a simulated
// e-commerce catalog, basket, and coupon API scoped to a single task.
package store

import (
	"context"
	"net/http"

	"github.com/erc3/erc3-go/pkg/api"
)

// Tool names for the store endpoints. Each request body duplicates the
// endpoint path in a tool field; the server contract requires this even
// though the URL already encodes it, so it is reproduced verbatim.
const (
	ToolListProducts = "/products/list"
	ToolViewBasket   = "/basket/view"
	ToolAddItem      = "/basket/add"
	ToolRemoveItem   = "/basket/remove"
	ToolCheckout     = "/basket/checkout"
	ToolApplyCoupon  = "/coupon/apply"
	ToolRemoveCoupon = "/coupon/remove"
)

const (
	defaultLimit    = 20
	defaultQuantity = 1
)

// Client is the store facade for one task. It holds only its bound
// requester and is safe for concurrent use.
type Client struct {
	taskID string
	req    *api.Requester
}

// NewClient binds a store facade to baseURL's /store/{taskID} prefix. A nil
// httpClient falls back to http.DefaultClient.
func NewClient(baseURL, taskID string, httpClient *http.Client) *Client {
	return &Client{
		taskID: taskID,
		req:    api.NewRequester(baseURL+"/store/"+taskID, httpClient),
	}
}

// TaskID returns the task this facade is bound to.
func (c *Client) TaskID() string {
	return c.taskID
}

// ListProducts returns one page of the catalog. A non-positive limit
// defaults to 20 and a negative offset to 0.
func (c *Client) ListProducts(ctx context.Context, offset, limit int) (*ProductPage, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	body := struct {
		Tool   string `json:"tool"`
		Offset int    `json:"offset"`
		Limit  int    `json:"limit"`
	}{ToolListProducts, offset, limit}

	var out ProductPage
	if err := c.req.Post(ctx, ToolListProducts, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAllProducts walks the catalog page by page, following each returned
// next_offset until the server signals the end with -1.
func (c *Client) ListAllProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	offset := 0
	for {
		page, err := c.ListProducts(ctx, offset, defaultLimit)
		if err != nil {
			return nil, err
		}
		products = append(products, page.Products...)
		if page.NextOffset == -1 {
			return products, nil
		}
		offset = page.NextOffset
	}
}

// ViewBasket returns the full basket snapshot.
func (c *Client) ViewBasket(ctx context.Context) (*Basket, error) {
	var out Basket
	if err := c.post(ctx, ToolViewBasket, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddToBasket adds quantity units of a SKU. A non-positive quantity
// defaults to 1.
func (c *Client) AddToBasket(ctx context.Context, sku string, quantity int) (*BasketCounts, error) {
	return c.lineCall(ctx, ToolAddItem, sku, quantity)
}

// RemoveFromBasket removes quantity units of a SKU. A non-positive quantity
// defaults to 1.
func (c *Client) RemoveFromBasket(ctx context.Context, sku string, quantity int) (*BasketCounts, error) {
	return c.lineCall(ctx, ToolRemoveItem, sku, quantity)
}

func (c *Client) lineCall(ctx context.Context, tool, sku string, quantity int) (*BasketCounts, error) {
	if quantity <= 0 {
		quantity = defaultQuantity
	}
	body := struct {
		Tool     string `json:"tool"`
		SKU      string `json:"sku"`
		Quantity int    `json:"quantity"`
	}{tool, sku, quantity}

	var out BasketCounts
	if err := c.req.Post(ctx, tool, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ApplyCoupon activates a coupon on the basket, replacing any coupon
// already active.
func (c *Client) ApplyCoupon(ctx context.Context, coupon string) error {
	body := struct {
		Tool   string `json:"tool"`
		Coupon string `json:"coupon"`
	}{ToolApplyCoupon, coupon}
	return c.req.Post(ctx, ToolApplyCoupon, body, nil)
}

// RemoveCoupon clears the active coupon.
func (c *Client) RemoveCoupon(ctx context.Context) error {
	return c.post(ctx, ToolRemoveCoupon, nil)
}

// Checkout finalizes the basket and returns the order snapshot. The basket
// is emptied server-side.
func (c *Client) Checkout(ctx context.Context) (*Order, error) {
	var out Order
	if err := c.post(ctx, ToolCheckout, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// post sends a body carrying only the tool field.
func (c *Client) post(ctx context.Context, tool string, out any) error {
	body := struct {
		Tool string `json:"tool"`
	}{tool}
	return c.req.Post(ctx, tool, body, out)
}
