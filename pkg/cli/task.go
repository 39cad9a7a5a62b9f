package cli

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/erc3/erc3-go/pkg/client"
)

// NewTaskCmd creates the task command group
func NewTaskCmd(outputFormat *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Work individual tasks of a session",
	}

	cmd.AddCommand(newTaskStartCmd(outputFormat))
	cmd.AddCommand(newTaskCompleteCmd(outputFormat))
	cmd.AddCommand(newTaskViewCmd(outputFormat))
	cmd.AddCommand(newTaskLogCmd(outputFormat))

	return cmd
}

func newTaskStartCmd(outputFormat *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start <task-id>",
		Short: "Mark a task as started",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := clientFromEnv()
			if err != nil {
				return err
			}
			result, err := c.StartTask(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printResult(result, *outputFormat)
		},
	}
}

func newTaskCompleteCmd(outputFormat *string) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <task-id>",
		Short: "Mark a task as complete and show its evaluation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := clientFromEnv()
			if err != nil {
				return err
			}
			result, err := c.CompleteTask(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if *outputFormat == outputText && result.Eval != nil {
				if result.Eval.Success {
					color.New(color.FgGreen).Println("✓ Task passed")
				} else {
					color.New(color.FgRed).Println("✗ Task failed")
				}
				return nil
			}
			return printResult(result, *outputFormat)
		},
	}
}

func newTaskViewCmd(outputFormat *string) *cobra.Command {
	var since string

	cmd := &cobra.Command{
		Use:   "view <task-id>",
		Short: "Show a task's state and logs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := clientFromEnv()
			if err != nil {
				return err
			}
			var sincePtr *string
			if cmd.Flags().Changed("since") {
				sincePtr = &since
			}
			task, err := c.ViewTask(cmd.Context(), args[0], sincePtr)
			if err != nil {
				return err
			}
			return printResult(task, *outputFormat)
		},
	}

	cmd.Flags().StringVar(&since, "since", "", "Only include logs after this marker")

	return cmd
}

func newTaskLogCmd(outputFormat *string) *cobra.Command {
	var model, usageJSON string
	var durationSec float64

	cmd := &cobra.Command{
		Use:   "log <task-id>",
		Short: "Record an LLM call against a task",
		Long: `Record one LLM call against a task.

Usage is given as a JSON object; both the prompt/completion and the
input/output token field naming are accepted:

  erc3 task log t1 --model gpt-4 --duration 2.5 \
    --usage '{"prompt_tokens": 100, "completion_tokens": 20}'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := clientFromEnv()
			if err != nil {
				return err
			}
			var usage client.Usage
			if usageJSON != "" {
				if err := json.Unmarshal([]byte(usageJSON), &usage); err != nil {
					return fmt.Errorf("invalid --usage JSON: %w", err)
				}
			}
			result, err := c.LogLLM(cmd.Context(), args[0], client.LLMLog{
				Model:       model,
				Usage:       usage,
				DurationSec: durationSec,
			})
			if err != nil {
				return err
			}
			return printResult(result, *outputFormat)
		},
	}

	cmd.Flags().StringVar(&model, "model", "", "Model name (required)")
	cmd.Flags().StringVar(&usageJSON, "usage", "", "Token usage as a JSON object")
	cmd.Flags().Float64Var(&durationSec, "duration", 0, "Call duration in seconds")
	_ = cmd.MarkFlagRequired("model")

	return cmd
}
