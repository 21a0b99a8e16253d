package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/convai/elevenlabs"
)

var (
	promptLength  int
	numberOfPages int
	ragEnabled    bool
)

// usageCmd groups cost estimation commands
var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Estimate LLM usage cost",
}

var usageCalcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Show the per-minute price of each LLM for a hypothetical agent",
	Long: `Estimate the LLM cost of an agent with the given prompt length and
knowledge base size. Values are sent as given and validated by the API.`,
	Args: cobra.NoArgs,
	RunE: runUsageCalc,
}

func init() {
	usageCalcCmd.Flags().IntVar(&promptLength, "prompt-length", 0, "length of the agent prompt in characters")
	usageCalcCmd.Flags().IntVar(&numberOfPages, "pages", 0, "number of knowledge base pages")
	usageCalcCmd.Flags().BoolVar(&ragEnabled, "rag", false, "whether RAG is enabled")

	usageCmd.AddCommand(usageCalcCmd)
	rootCmd.AddCommand(usageCmd)
}

func runUsageCalc(cmd *cobra.Command, args []string) error {
	resp, err := elClient.LLMUsage.Calculate(cmd.Context(), elevenlabs.LLMUsageParams{
		PromptLength:  promptLength,
		NumberOfPages: numberOfPages,
		RAGEnabled:    ragEnabled,
	})
	if err != nil {
		return err
	}
	return printResult(cmd.OutOrStdout(), resp)
}
