package cli

import (
	"github.com/spf13/cobra"

	"github.com/erc3/erc3-go/pkg/client"
)

// NewGetKeyCmd creates the get-key command. This is the one command that
// works without ERC3_API_KEY set.
func NewGetKeyCmd(outputFormat *string) *cobra.Command {
	return &cobra.Command{
		Use:   "get-key <email>",
		Short: "Request an API key for an email address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := client.GetKey(cmd.Context(), baseURLFromEnv(), args[0])
			if err != nil {
				return err
			}
			return printResult(result, *outputFormat)
		},
	}
}
