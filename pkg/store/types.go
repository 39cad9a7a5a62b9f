package store

// Product is an immutable catalog entry for one task. Price is in the
// smallest currency unit.
type Product struct {
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Available int    `json:"available"`
}

// ProductPage is one page of the catalog listing. NextOffset of -1 is the
// sole termination signal; any other value, including one that repeats or
// exceeds the catalog, is passed back to the server unvalidated.
type ProductPage struct {
	Products   []Product `json:"products"`
	NextOffset int       `json:"next_offset"`
}

// BasketItem is one line of the basket.
type BasketItem struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
	Price    int    `json:"price"`
}

// Basket is the server-held cart snapshot for one task. The server
// guarantees Total == Subtotal - Discount; the client never recomputes it.
// At most one coupon is active; applying another replaces it.
type Basket struct {
	Items    []BasketItem `json:"items"`
	Subtotal int          `json:"subtotal"`
	Discount int          `json:"discount"`
	Total    int          `json:"total"`
	Coupon   *string      `json:"coupon"`
}

// BasketCounts is the response to basket add/remove calls.
type BasketCounts struct {
	LineCount int `json:"line_count"`
	ItemCount int `json:"item_count"`
}

// Order is the final snapshot returned by checkout. The server empties the
// basket as a side effect.
type Order struct {
	Items    []BasketItem `json:"items"`
	Subtotal int          `json:"subtotal"`
	Discount int          `json:"discount"`
	Total    int          `json:"total"`
	Coupon   *string      `json:"coupon"`
}
