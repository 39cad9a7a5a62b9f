package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"sigs.k8s.io/yaml"

	"github.com/erc3/erc3-go/pkg/client"
)

// NewSessionCmd creates the session command group
func NewSessionCmd(outputFormat *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Start, inspect, and submit benchmark sessions",
	}

	cmd.AddCommand(newSessionStartCmd(outputFormat))
	cmd.AddCommand(newSessionStatusCmd(outputFormat))
	cmd.AddCommand(newSessionSearchCmd(outputFormat))
	cmd.AddCommand(newSessionSubmitCmd(outputFormat))

	return cmd
}

func newSessionStartCmd(outputFormat *string) *cobra.Command {
	var benchmark, workspace, name, arch string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a new session for a benchmark",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := clientFromEnv()
			if err != nil {
				return err
			}
			if name == "" {
				name = fmt.Sprintf("%s-%s", benchmark, uuid.NewString()[:8])
			}
			session, err := c.StartSession(cmd.Context(), client.StartSessionRequest{
				Benchmark:    benchmark,
				Workspace:    workspace,
				Name:         name,
				Architecture: arch,
			})
			if err != nil {
				return err
			}
			if *outputFormat == outputText {
				color.New(color.FgGreen).Printf("Session %s started (%d tasks)\n", session.SessionID, session.TaskCount)
				return nil
			}
			return printResult(session, *outputFormat)
		},
	}

	cmd.Flags().StringVar(&benchmark, "benchmark", "", "Benchmark to run (required)")
	cmd.Flags().StringVar(&workspace, "workspace", "", "Workspace to run in (required)")
	cmd.Flags().StringVar(&name, "name", "", "Session name (defaults to a generated one)")
	cmd.Flags().StringVar(&arch, "arch", "", "Target architecture (defaults to x86_64)")
	_ = cmd.MarkFlagRequired("benchmark")
	_ = cmd.MarkFlagRequired("workspace")

	return cmd
}

func newSessionStatusCmd(outputFormat *string) *cobra.Command {
	var detailed bool

	cmd := &cobra.Command{
		Use:   "status <session-id>",
		Short: "Show the tasks of a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := clientFromEnv()
			if err != nil {
				return err
			}
			status, err := c.SessionStatus(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if !detailed {
				return printResult(status, *outputFormat)
			}

			// Fan out one tasks/view call per task; ordering across the
			// calls does not matter, only that all complete.
			detailedTasks := make([]client.Task, len(status.Tasks))
			g, ctx := errgroup.WithContext(cmd.Context())
			for i, t := range status.Tasks {
				i, t := i, t
				g.Go(func() error {
					view, err := c.ViewTask(ctx, t.TaskID, nil)
					if err != nil {
						return fmt.Errorf("failed to view task %s: %w", t.TaskID, err)
					}
					detailedTasks[i] = *view
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			return printResult(&client.SessionStatus{Tasks: detailedTasks}, *outputFormat)
		},
	}

	cmd.Flags().BoolVar(&detailed, "detailed", false, "Fetch full state and logs for every task")

	return cmd
}

func newSessionSearchCmd(outputFormat *string) *cobra.Command {
	var criteria []string
	var criteriaFile string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search past sessions",
		Long: `Search past sessions by server-defined criteria.

Criteria can be given inline as repeated key=value flags, or loaded from a
YAML file. Inline criteria win over file entries with the same key.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := clientFromEnv()
			if err != nil {
				return err
			}

			merged := map[string]any{}
			if criteriaFile != "" {
				data, err := os.ReadFile(criteriaFile)
				if err != nil {
					return fmt.Errorf("failed to read criteria file: %w", err)
				}
				if err := yaml.Unmarshal(data, &merged); err != nil {
					return fmt.Errorf("failed to parse criteria file: %w", err)
				}
			}
			for _, kv := range criteria {
				key, value, ok := strings.Cut(kv, "=")
				if !ok || key == "" {
					return fmt.Errorf("invalid criteria '%s' (want key=value)", kv)
				}
				merged[key] = value
			}

			results, err := c.SearchSessions(cmd.Context(), merged)
			if err != nil {
				return err
			}
			return printResult(results, *outputFormat)
		},
	}

	cmd.Flags().StringArrayVar(&criteria, "criteria", nil, "Search criteria as key=value (repeatable)")
	cmd.Flags().StringVar(&criteriaFile, "criteria-file", "", "YAML file of search criteria")

	return cmd
}

func newSessionSubmitCmd(outputFormat *string) *cobra.Command {
	return &cobra.Command{
		Use:   "submit <session-id>",
		Short: "Submit a session for evaluation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := clientFromEnv()
			if err != nil {
				return err
			}
			result, err := c.SubmitSession(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if *outputFormat == outputText {
				color.New(color.FgGreen).Printf("Session %s submitted\n", args[0])
				return nil
			}
			return printResult(result, *outputFormat)
		},
	}
}
