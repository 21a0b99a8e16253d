package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/convai/elevenlabs"
)

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connection to the ElevenLabs API",
	Long:  `Test the connection and credentials and display basic account information.`,
	Args:  cobra.NoArgs,
	RunE:  runTest,
}

func init() {
	rootCmd.AddCommand(testCmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	ctx := cmd.Context()

	fmt.Fprintf(out, "Testing connection to ElevenLabs at %s...\n", elClient.BaseURL())

	models, err := elClient.Models.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}
	fmt.Fprintln(out, "✓ Connection successful!")

	agents, err := elClient.Agents.List(ctx, elevenlabs.ListAgentsParams{
		Pagination: elevenlabs.Pagination{PageSize: 100},
	})
	if err != nil {
		return fmt.Errorf("failed to list agents: %w", err)
	}

	fmt.Fprintf(out, "\nAccount:\n")
	fmt.Fprintf(out, "- Models: %d\n", len(models))
	if list, ok := agents["agents"].([]any); ok {
		fmt.Fprintf(out, "- Agents: %d", len(list))
		if more, _ := agents["has_more"].(bool); more {
			fmt.Fprint(out, "+")
		}
		fmt.Fprintln(out)
	}

	if names := filters.ListFilters(); len(names) > 0 {
		fmt.Fprintf(out, "\nConfigured filters:\n")
		for _, name := range names {
			f, _ := filters.GetFilter(name)
			fmt.Fprintf(out, "  • %s: %s\n", name, f.Expression())
		}
	}

	return nil
}
