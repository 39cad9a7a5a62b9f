package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/erc3/erc3-go/pkg/api"
	"github.com/erc3/erc3-go/pkg/store"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// printResult renders v according to the output format flag. JSON mode is
// always indented JSON; text mode uses a type-aware rendering where one
// exists and falls back to JSON otherwise.
func printResult(v any, format string) error {
	switch format {
	case outputJSON:
		return printJSON(v)
	case outputText:
		if printed := printText(v); printed {
			return nil
		}
		return printJSON(v)
	default:
		return fmt.Errorf("unknown output format '%s' (want text or json)", format)
	}
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func printText(v any) bool {
	switch t := v.(type) {
	case []store.Product:
		printProducts(t)
	case *store.ProductPage:
		printProducts(t.Products)
		if t.NextOffset != -1 {
			fmt.Printf("more products available at offset %d\n", t.NextOffset)
		}
	case *store.Basket:
		printBasket(t.Items, t.Subtotal, t.Discount, t.Total, t.Coupon)
	case *store.Order:
		color.New(color.Bold).Println("Order placed")
		printBasket(t.Items, t.Subtotal, t.Discount, t.Total, t.Coupon)
	default:
		return false
	}
	return true
}

func printProducts(products []store.Product) {
	if len(products) == 0 {
		fmt.Println("no products")
		return
	}
	for _, p := range products {
		fmt.Printf("%-16s %-32s price=%d available=%d\n", p.SKU, p.Name, p.Price, p.Available)
	}
}

func printBasket(items []store.BasketItem, subtotal, discount, total int, coupon *string) {
	if len(items) == 0 {
		fmt.Println("basket is empty")
	}
	for _, it := range items {
		fmt.Printf("%-16s x%-4d price=%d\n", it.SKU, it.Quantity, it.Price)
	}
	fmt.Printf("subtotal=%d discount=%d total=%d", subtotal, discount, total)
	if coupon != nil {
		fmt.Printf(" coupon=%s", *coupon)
	}
	fmt.Println()
}

// printCommandError renders an error the way the command front-end reports
// it: API errors with their status and code, anything else generically.
func printCommandError(err error) {
	red := color.New(color.FgRed)
	if apiErr, ok := api.AsError(err); ok {
		red.Fprintf(os.Stderr, "API error: %s (status %d, code %s)\n", apiErr.Message, apiErr.Status, apiErr.Code)
		return
	}
	red.Fprintf(os.Stderr, "Error: %v\n", err)
}
