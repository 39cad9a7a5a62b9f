// Package cli wires the ERC3 client into a cobra command tree. This is the
// only layer that reads the environment or renders output; everything below
// it takes explicit configuration and returns values.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root erc3 command
func NewRootCmd() *cobra.Command {
	var outputFormat string

	rootCmd := &cobra.Command{
		Use:   "erc3",
		Short: "Client for the ERC3 benchmark evaluation API",
		Long: `erc3 drives benchmark evaluation runs against the remote ERC3 API:
starting sessions, working tasks, exercising the store and demo benchmark
endpoints, and submitting results.

Configuration comes from the environment (or a .env file):
  ERC3_API_KEY   API key (required for most commands)
  ERC3_BASE_URL  API host override (optional)`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", outputText, "Output format (text, json)")

	// Add subcommands
	rootCmd.AddCommand(NewBenchmarksCmd(&outputFormat))
	rootCmd.AddCommand(NewSessionCmd(&outputFormat))
	rootCmd.AddCommand(NewTaskCmd(&outputFormat))
	rootCmd.AddCommand(NewStoreCmd(&outputFormat))
	rootCmd.AddCommand(NewDemoCmd(&outputFormat))
	rootCmd.AddCommand(NewGetKeyCmd(&outputFormat))

	return rootCmd
}

// Execute runs the root command, rendering any failure before returning the
// process exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		printCommandError(err)
		return 1
	}
	return 0
}
