package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"atena/internal/prompt"
)

var promptDemand string

// promptCmd prints the assembled system prompt, or a task prompt when a task
// key is given.
var promptCmd = &cobra.Command{
	Use:   "prompt [task-key]",
	Short: "Print the assembled system or task prompt",
	Long: `Without arguments, prints the agent system prompt assembled from the
parsed profile. With a task key (Task1..Task9), prints that task's brief with
knowledge base placeholders substituted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, err := newProvider()
		if err != nil {
			return err
		}
		defer provider.Close()

		agent := provider.Agent()
		if len(args) == 0 {
			fmt.Print(prompt.SystemPrompt(agent))
			return nil
		}

		task, ok := provider.Task(args[0])
		if !ok {
			return fmt.Errorf("task %q not found; available: %v",
				args[0], sortedTaskKeys(provider.Tasks()))
		}
		fmt.Print(prompt.TaskPrompt(agent, task, promptDemand))
		return nil
	},
}

func init() {
	promptCmd.Flags().StringVar(&promptDemand, "demand", "", "user demand to embed in the task prompt")
	rootCmd.AddCommand(promptCmd)
}
