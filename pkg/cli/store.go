package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/erc3/erc3-go/pkg/store"
)

// NewStoreCmd creates the store command group. Every subcommand is scoped
// to one task via the --task flag.
func NewStoreCmd(outputFormat *string) *cobra.Command {
	var taskID string

	cmd := &cobra.Command{
		Use:   "store",
		Short: "Exercise the store benchmark endpoints for a task",
	}
	cmd.PersistentFlags().StringVar(&taskID, "task", "", "Task ID the store is scoped to (required)")
	_ = cmd.MarkPersistentFlagRequired("task")

	storeClient := func() (*store.Client, error) {
		c, err := clientFromEnv()
		if err != nil {
			return nil, err
		}
		return c.StoreClient(taskID)
	}

	productsCmd := &cobra.Command{
		Use:   "products",
		Short: "List the product catalog",
		Args:  cobra.NoArgs,
	}
	var offset, limit int
	var all bool
	productsCmd.RunE = func(cmd *cobra.Command, args []string) error {
		sc, err := storeClient()
		if err != nil {
			return err
		}
		if all {
			products, err := sc.ListAllProducts(cmd.Context())
			if err != nil {
				return err
			}
			return printResult(products, *outputFormat)
		}
		page, err := sc.ListProducts(cmd.Context(), offset, limit)
		if err != nil {
			return err
		}
		return printResult(page, *outputFormat)
	}
	productsCmd.Flags().IntVar(&offset, "offset", 0, "Page offset")
	productsCmd.Flags().IntVar(&limit, "limit", 20, "Page size")
	productsCmd.Flags().BoolVar(&all, "all", false, "Follow pagination and list the whole catalog")

	basketCmd := &cobra.Command{
		Use:   "basket",
		Short: "View and edit the basket",
	}

	basketViewCmd := &cobra.Command{
		Use:   "view",
		Short: "Show the basket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := storeClient()
			if err != nil {
				return err
			}
			basket, err := sc.ViewBasket(cmd.Context())
			if err != nil {
				return err
			}
			return printResult(basket, *outputFormat)
		},
	}

	var quantity int
	basketAddCmd := &cobra.Command{
		Use:   "add <sku>",
		Short: "Add a product to the basket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := storeClient()
			if err != nil {
				return err
			}
			counts, err := sc.AddToBasket(cmd.Context(), args[0], quantity)
			if err != nil {
				return err
			}
			return printResult(counts, *outputFormat)
		},
	}
	basketAddCmd.Flags().IntVar(&quantity, "quantity", 1, "Units to add")

	var removeQuantity int
	basketRemoveCmd := &cobra.Command{
		Use:   "remove <sku>",
		Short: "Remove a product from the basket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := storeClient()
			if err != nil {
				return err
			}
			counts, err := sc.RemoveFromBasket(cmd.Context(), args[0], removeQuantity)
			if err != nil {
				return err
			}
			return printResult(counts, *outputFormat)
		},
	}
	basketRemoveCmd.Flags().IntVar(&removeQuantity, "quantity", 1, "Units to remove")

	basketCheckoutCmd := &cobra.Command{
		Use:   "checkout",
		Short: "Check out the basket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := storeClient()
			if err != nil {
				return err
			}
			order, err := sc.Checkout(cmd.Context())
			if err != nil {
				return err
			}
			return printResult(order, *outputFormat)
		},
	}

	basketCmd.AddCommand(basketViewCmd)
	basketCmd.AddCommand(basketAddCmd)
	basketCmd.AddCommand(basketRemoveCmd)
	basketCmd.AddCommand(basketCheckoutCmd)

	couponCmd := &cobra.Command{
		Use:   "coupon",
		Short: "Apply and remove coupons",
	}

	couponApplyCmd := &cobra.Command{
		Use:   "apply <code>",
		Short: "Apply a coupon (replaces any active one)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := storeClient()
			if err != nil {
				return err
			}
			if err := sc.ApplyCoupon(cmd.Context(), args[0]); err != nil {
				return err
			}
			color.New(color.FgGreen).Printf("Coupon %s applied\n", args[0])
			return nil
		},
	}

	couponRemoveCmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove the active coupon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := storeClient()
			if err != nil {
				return err
			}
			if err := sc.RemoveCoupon(cmd.Context()); err != nil {
				return err
			}
			color.New(color.FgGreen).Println("Coupon removed")
			return nil
		},
	}

	couponCmd.AddCommand(couponApplyCmd)
	couponCmd.AddCommand(couponRemoveCmd)

	cmd.AddCommand(productsCmd)
	cmd.AddCommand(basketCmd)
	cmd.AddCommand(couponCmd)

	return cmd
}
