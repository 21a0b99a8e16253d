package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/s0up4200/convai/elevenlabs"
)

var documentName string

// kbCmd groups knowledge base commands
var kbCmd = &cobra.Command{
	Use:     "kb",
	Aliases: []string{"knowledge-base"},
	Short:   "Manage knowledge base documents",
}

var kbListCmd = &cobra.Command{
	Use:   "list",
	Short: "List knowledge base documents",
	Args:  cobra.NoArgs,
	RunE:  runKBList,
}

var kbAddURLCmd = &cobra.Command{
	Use:   "add-url URL",
	Short: "Create a document by scraping a web page",
	Args:  cobra.ExactArgs(1),
	RunE:  runKBAddURL,
}

var kbAddFileCmd = &cobra.Command{
	Use:   "add-file PATH",
	Short: "Create a document by uploading a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runKBAddFile,
}

func init() {
	addListFlags(kbListCmd)
	kbAddURLCmd.Flags().StringVar(&documentName, "name", "", "document name")
	kbAddFileCmd.Flags().StringVar(&documentName, "name", "", "document name")

	kbCmd.AddCommand(kbListCmd, kbAddURLCmd, kbAddFileCmd)
	rootCmd.AddCommand(kbCmd)
}

func runKBList(cmd *cobra.Command, args []string) error {
	f, err := resolveFilter()
	if err != nil {
		return err
	}

	params := elevenlabs.ListKnowledgeBaseParams{
		Pagination: elevenlabs.Pagination{PageSize: pageSize},
	}
	resp, err := elClient.KnowledgeBase.List(cmd.Context(), params)
	if err != nil {
		return err
	}

	resp, err = filterListing(resp, "documents", f)
	if err != nil {
		return err
	}
	return printResult(cmd.OutOrStdout(), resp)
}

func runKBAddURL(cmd *cobra.Command, args []string) error {
	doc, err := elClient.KnowledgeBase.CreateFromURL(cmd.Context(), args[0], documentName)
	if err != nil {
		return err
	}
	return printResult(cmd.OutOrStdout(), doc)
}

func runKBAddFile(cmd *cobra.Command, args []string) error {
	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open document: %w", err)
	}
	defer file.Close()

	doc, err := elClient.KnowledgeBase.CreateFromFile(cmd.Context(), filepath.Base(args[0]), file, documentName)
	if err != nil {
		return err
	}
	return printResult(cmd.OutOrStdout(), doc)
}
