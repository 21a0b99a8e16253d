package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/s0up4200/convai/elevenlabs"
)

var (
	conversationAgent string
	outFile           string
)

// conversationsCmd groups conversation history commands
var conversationsCmd = &cobra.Command{
	Use:     "conversations",
	Aliases: []string{"conv"},
	Short:   "Inspect conversation history",
}

var conversationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List conversations, optionally for a single agent",
	Args:  cobra.NoArgs,
	RunE:  runConversationsList,
}

var conversationsAudioCmd = &cobra.Command{
	Use:   "audio CONVERSATION_ID",
	Short: "Download the recording of a conversation",
	Args:  cobra.ExactArgs(1),
	RunE:  runConversationsAudio,
}

func init() {
	addListFlags(conversationsListCmd)
	conversationsListCmd.Flags().StringVar(&conversationAgent, "agent", "", "only list conversations of this agent")

	conversationsAudioCmd.Flags().StringVarP(&outFile, "out-file", "O", "", "file to write the audio to (required)")
	_ = conversationsAudioCmd.MarkFlagRequired("out-file")

	conversationsCmd.AddCommand(conversationsListCmd, conversationsAudioCmd)
	rootCmd.AddCommand(conversationsCmd)
}

func runConversationsList(cmd *cobra.Command, args []string) error {
	f, err := resolveFilter()
	if err != nil {
		return err
	}

	params := elevenlabs.ListConversationsParams{
		Pagination: elevenlabs.Pagination{PageSize: pageSize},
		AgentID:    conversationAgent,
	}
	resp, err := elClient.Conversations.List(cmd.Context(), params)
	if err != nil {
		return err
	}

	resp, err = filterListing(resp, "conversations", f)
	if err != nil {
		return err
	}
	return printResult(cmd.OutOrStdout(), resp)
}

func runConversationsAudio(cmd *cobra.Command, args []string) error {
	audio, err := elClient.Conversations.GetAudio(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if err := os.WriteFile(outFile, audio, 0o644); err != nil {
		return fmt.Errorf("failed to write audio: %w", err)
	}
	logger.Info().
		Str("conversation_id", args[0]).
		Str("file", outFile).
		Int("bytes", len(audio)).
		Msg("Saved conversation audio")
	return nil
}
