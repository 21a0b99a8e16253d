package cmd

import (
	"github.com/spf13/cobra"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the models available to the account",
	Args:  cobra.NoArgs,
	RunE:  runModels,
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

func runModels(cmd *cobra.Command, args []string) error {
	models, err := elClient.Models.List(cmd.Context())
	if err != nil {
		return err
	}
	return printResult(cmd.OutOrStdout(), models)
}
