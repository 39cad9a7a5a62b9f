package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"

	"github.com/erc3/erc3-go/pkg/api"
)

func TestClient_ToolFieldMatchesPath(t *testing.T) {
	tt := map[string]struct {
		call func(*Client, context.Context) error
		tool string
		body map[string]any
	}{
		"list products": {
			call: func(c *Client, ctx context.Context) error {
				_, err := c.ListProducts(ctx, 40, 10)
				return err
			},
			tool: ToolListProducts,
			body: map[string]any{"tool": ToolListProducts, "offset": float64(40), "limit": float64(10)},
		},
		"view basket": {
			call: func(c *Client, ctx context.Context) error {
				_, err := c.ViewBasket(ctx)
				return err
			},
			tool: ToolViewBasket,
			body: map[string]any{"tool": ToolViewBasket},
		},
		"add to basket": {
			call: func(c *Client, ctx context.Context) error {
				_, err := c.AddToBasket(ctx, "sku-1", 2)
				return err
			},
			tool: ToolAddItem,
			body: map[string]any{"tool": ToolAddItem, "sku": "sku-1", "quantity": float64(2)},
		},
		"remove defaults quantity": {
			call: func(c *Client, ctx context.Context) error {
				_, err := c.RemoveFromBasket(ctx, "sku-1", 0)
				return err
			},
			tool: ToolRemoveItem,
			body: map[string]any{"tool": ToolRemoveItem, "sku": "sku-1", "quantity": float64(1)},
		},
		"apply coupon": {
			call: func(c *Client, ctx context.Context) error {
				return c.ApplyCoupon(ctx, "SAVE10")
			},
			tool: ToolApplyCoupon,
			body: map[string]any{"tool": ToolApplyCoupon, "coupon": "SAVE10"},
		},
		"remove coupon": {
			call: func(c *Client, ctx context.Context) error {
				return c.RemoveCoupon(ctx)
			},
			tool: ToolRemoveCoupon,
			body: map[string]any{"tool": ToolRemoveCoupon},
		},
		"checkout": {
			call: func(c *Client, ctx context.Context) error {
				_, err := c.Checkout(ctx)
				return err
			},
			tool: ToolCheckout,
			body: map[string]any{"tool": ToolCheckout},
		},
	}

	for tn, tc := range tt {
		t.Run(tn, func(t *testing.T) {
			var gotPath string
			var gotBody map[string]any
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
				fmt.Fprint(w, `{"next_offset": -1}`)
			}))
			defer srv.Close()

			c := NewClient(srv.URL, "t1", nil)
			require.NoError(t, tc.call(c, context.Background()))

			assert.Equal(t, "/store/t1"+tc.tool, gotPath)
			assert.Equal(t, tc.body, gotBody, "the body duplicates the endpoint path as the tool field")
		})
	}
}

func TestClient_ListProducts_Defaults(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		fmt.Fprint(w, `{"products": [], "next_offset": -1}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "t1", nil)
	_, err := c.ListProducts(context.Background(), -5, 0)
	require.NoError(t, err)

	assert.Equal(t, float64(0), gotBody["offset"])
	assert.Equal(t, float64(20), gotBody["limit"])
}

func TestClient_ListAllProducts(t *testing.T) {
	// Three pages; the middle next_offset deliberately skips ahead, which
	// the client passes through unvalidated.
	pages := map[int]string{
		0:  `{"products": [{"sku": "a"}, {"sku": "b"}], "next_offset": 2}`,
		2:  `{"products": [{"sku": "c"}], "next_offset": 40}`,
		40: `{"products": [], "next_offset": -1}`,
	}

	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		var body struct {
			Offset int `json:"offset"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		page, ok := pages[body.Offset]
		require.True(t, ok, "unexpected offset %d", body.Offset)
		fmt.Fprint(w, page)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "t1", nil)
	products, err := c.ListAllProducts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, calls, "pagination ends exactly when next_offset is -1")
	skus := make([]string, 0, len(products))
	for _, p := range products {
		skus = append(skus, p.SKU)
	}
	assert.Equal(t, []string{"a", "b", "c"}, skus)
}

func TestClient_SurfacesAPIErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status": 422, "error": "quantity exceeds stock", "code": "INSUFFICIENT_STOCK"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "t1", nil)
	_, err := c.AddToBasket(context.Background(), "sku-1", 99)

	apiErr, ok := api.AsError(err)
	require.True(t, ok)
	assert.Equal(t, 422, apiErr.Status)
	assert.Equal(t, "INSUFFICIENT_STOCK", apiErr.Code)
}

// fakeStore is a minimal in-memory rendition of the server-side basket:
// enough behavior to exercise the round-trip, coupon, and checkout
// contracts end to end through the client.
type fakeStore struct {
	lines  map[string]int
	prices map[string]int
	coupon string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		lines:  map[string]int{},
		prices: map[string]int{"sku-1": 500, "sku-2": 1200},
	}
}

func (f *fakeStore) subtotal() int {
	total := 0
	for sku, qty := range f.lines {
		total += f.prices[sku] * qty
	}
	return total
}

func (f *fakeStore) discount() int {
	if f.coupon == "" {
		return 0
	}
	return f.subtotal() / 10
}

func (f *fakeStore) basketJSON() map[string]any {
	items := []map[string]any{}
	for sku, qty := range f.lines {
		items = append(items, map[string]any{"sku": sku, "quantity": qty, "price": f.prices[sku]})
	}
	basket := map[string]any{
		"items":    items,
		"subtotal": f.subtotal(),
		"discount": f.discount(),
		"total":    f.subtotal() - f.discount(),
	}
	if f.coupon != "" {
		basket["coupon"] = f.coupon
	} else {
		basket["coupon"] = nil
	}
	return basket
}

func (f *fakeStore) counts() map[string]any {
	items := 0
	for _, qty := range f.lines {
		items += qty
	}
	return map[string]any{"line_count": len(f.lines), "item_count": items}
}

func (f *fakeStore) handler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Tool     string `json:"tool"`
			SKU      string `json:"sku"`
			Quantity int    `json:"quantity"`
			Coupon   string `json:"coupon"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.True(t, strings.HasSuffix(r.URL.Path, body.Tool))

		var resp any
		switch body.Tool {
		case ToolViewBasket:
			resp = f.basketJSON()
		case ToolAddItem:
			f.lines[body.SKU] += body.Quantity
			resp = f.counts()
		case ToolRemoveItem:
			f.lines[body.SKU] -= body.Quantity
			if f.lines[body.SKU] <= 0 {
				delete(f.lines, body.SKU)
			}
			resp = f.counts()
		case ToolApplyCoupon:
			f.coupon = body.Coupon
			resp = map[string]any{}
		case ToolRemoveCoupon:
			f.coupon = ""
			resp = map[string]any{}
		case ToolCheckout:
			resp = f.basketJSON()
			f.lines = map[string]int{}
			f.coupon = ""
		default:
			t.Fatalf("unexpected tool %q", body.Tool)
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})
}

func TestClient_AddRemoveRoundTrip(t *testing.T) {
	srv := httptest.NewServer(newFakeStore().handler(t))
	defer srv.Close()

	c := NewClient(srv.URL, "t1", nil)
	ctx := context.Background()

	before, err := c.ViewBasket(ctx)
	require.NoError(t, err)
	require.Empty(t, before.Items)

	_, err = c.AddToBasket(ctx, "sku-1", 3)
	require.NoError(t, err)

	counts, err := c.RemoveFromBasket(ctx, "sku-1", 3)
	require.NoError(t, err)

	assert.Equal(t, 0, counts.LineCount, "add then remove returns the basket to its pre-add state")
	assert.Equal(t, 0, counts.ItemCount)
}

func TestClient_CouponReplacesNotStacks(t *testing.T) {
	srv := httptest.NewServer(newFakeStore().handler(t))
	defer srv.Close()

	c := NewClient(srv.URL, "t1", nil)
	ctx := context.Background()

	_, err := c.AddToBasket(ctx, "sku-2", 1)
	require.NoError(t, err)

	require.NoError(t, c.ApplyCoupon(ctx, "SAVE-A"))
	require.NoError(t, c.ApplyCoupon(ctx, "SAVE-B"))

	basket, err := c.ViewBasket(ctx)
	require.NoError(t, err)
	assert.Equal(t, ptr.To("SAVE-B"), basket.Coupon)
	assert.Equal(t, 120, basket.Discount, "a single discount, from the replacing coupon")
	assert.Equal(t, basket.Subtotal-basket.Discount, basket.Total)
}

func TestClient_Checkout(t *testing.T) {
	srv := httptest.NewServer(newFakeStore().handler(t))
	defer srv.Close()

	c := NewClient(srv.URL, "t1", nil)
	ctx := context.Background()

	_, err := c.AddToBasket(ctx, "sku-1", 2)
	require.NoError(t, err)
	require.NoError(t, c.ApplyCoupon(ctx, "SAVE10"))

	order, err := c.Checkout(ctx)
	require.NoError(t, err)
	assert.Equal(t, order.Subtotal-order.Discount, order.Total)
	assert.NotEmpty(t, order.Items)

	after, err := c.ViewBasket(ctx)
	require.NoError(t, err)
	assert.Empty(t, after.Items, "checkout empties the basket server-side")
	assert.Nil(t, after.Coupon)
}
