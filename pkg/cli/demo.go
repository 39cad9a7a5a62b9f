package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewDemoCmd creates the demo command group
func NewDemoCmd(outputFormat *string) *cobra.Command {
	var taskID string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Exercise the demo benchmark endpoints for a task",
	}
	cmd.PersistentFlags().StringVar(&taskID, "task", "", "Task ID the demo is scoped to (required)")
	_ = cmd.MarkPersistentFlagRequired("task")

	secretCmd := &cobra.Command{
		Use:   "secret",
		Short: "Fetch the task's secret value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := clientFromEnv()
			if err != nil {
				return err
			}
			dc, err := c.DemoClient(taskID)
			if err != nil {
				return err
			}
			secret, err := dc.GetSecret(cmd.Context())
			if err != nil {
				return err
			}
			return printResult(secret, *outputFormat)
		},
	}

	answerCmd := &cobra.Command{
		Use:   "answer <text>",
		Short: "Submit the answer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := clientFromEnv()
			if err != nil {
				return err
			}
			dc, err := c.DemoClient(taskID)
			if err != nil {
				return err
			}
			if err := dc.SubmitAnswer(cmd.Context(), args[0]); err != nil {
				return err
			}
			color.New(color.FgGreen).Println("Answer submitted")
			return nil
		},
	}

	cmd.AddCommand(secretCmd)
	cmd.AddCommand(answerCmd)

	return cmd
}
