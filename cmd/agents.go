package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/convai/elevenlabs"
)

var agentSearch string

// agentsCmd groups agent commands
var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "Inspect conversational agents",
}

var agentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List agents, optionally narrowed by a filter expression",
	Long: `List the agents in your workspace.

The --filter expression is evaluated against every agent in the returned page:

  convai agents list --filter 'icontains(name, "support") and daysSince(created_at_unix_secs) < 30'`,
	Args: cobra.NoArgs,
	RunE: runAgentsList,
}

var agentsGetCmd = &cobra.Command{
	Use:   "get AGENT_ID...",
	Short: "Show the full configuration of one or more agents",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAgentsGet,
}

func init() {
	addListFlags(agentsListCmd)
	agentsListCmd.Flags().StringVar(&agentSearch, "search", "", "search agents by name")

	agentsCmd.AddCommand(agentsListCmd, agentsGetCmd)
	rootCmd.AddCommand(agentsCmd)
}

func runAgentsList(cmd *cobra.Command, args []string) error {
	f, err := resolveFilter()
	if err != nil {
		return err
	}

	params := elevenlabs.ListAgentsParams{
		Pagination: elevenlabs.Pagination{PageSize: pageSize},
		Sorting:    elevenlabs.Sorting{Search: agentSearch},
	}
	resp, err := elClient.Agents.List(cmd.Context(), params)
	if err != nil {
		return err
	}

	resp, err = filterListing(resp, "agents", f)
	if err != nil {
		return err
	}
	return printResult(cmd.OutOrStdout(), resp)
}

func runAgentsGet(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		agent, err := elClient.Agents.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), agent)
	}

	agents, err := elClient.Agents.GetMany(cmd.Context(), args)
	if err != nil {
		return err
	}
	return printResult(cmd.OutOrStdout(), agents)
}
