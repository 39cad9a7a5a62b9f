package cli

import (
	"github.com/spf13/cobra"
)

// NewBenchmarksCmd creates the benchmarks command group
func NewBenchmarksCmd(outputFormat *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "benchmarks",
		Short: "Discover available benchmarks",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the benchmark catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := clientFromEnv()
			if err != nil {
				return err
			}
			catalog, err := c.ListBenchmarks(cmd.Context())
			if err != nil {
				return err
			}
			return printResult(catalog, *outputFormat)
		},
	}

	viewCmd := &cobra.Command{
		Use:   "view <benchmark>",
		Short: "Show the detail of one benchmark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := clientFromEnv()
			if err != nil {
				return err
			}
			detail, err := c.ViewBenchmark(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printResult(detail, *outputFormat)
		},
	}

	cmd.AddCommand(listCmd)
	cmd.AddCommand(viewCmd)

	return cmd
}
