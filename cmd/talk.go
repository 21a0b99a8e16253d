package cmd

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/s0up4200/convai/realtime"
)

var (
	talkTextOnly bool
	talkWait     time.Duration
)

var talkCmd = &cobra.Command{
	Use:   "talk AGENT_ID",
	Short: "Chat with an agent over a live conversation session",
	Long: `Start a conversation with an agent and exchange text messages.

Each line read from stdin is sent as a user message and agent replies are
printed as they arrive. After stdin closes the session stays open for --wait
so late replies are still shown.`,
	Args: cobra.ExactArgs(1),
	RunE: runTalk,
}

func init() {
	talkCmd.Flags().BoolVar(&talkTextOnly, "text-only", true, "ask the agent to reply without audio")
	talkCmd.Flags().DurationVar(&talkWait, "wait", 10*time.Second, "how long to wait for replies after input ends")

	rootCmd.AddCommand(talkCmd)
}

func runTalk(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	signed, err := elClient.Conversations.GetSignedURL(ctx, args[0])
	if err != nil {
		return err
	}
	signedURL, _ := signed["signed_url"].(string)
	if signedURL == "" {
		return fmt.Errorf("no signed_url in response for agent %s", args[0])
	}

	opts := []realtime.Option{realtime.WithLogger(logger)}
	if talkTextOnly {
		opts = append(opts, realtime.WithInitiationData(map[string]any{
			"conversation_config_override": map[string]any{
				"conversation": map[string]any{"text_only": true},
			},
		}))
	}

	sess, err := realtime.Dial(ctx, signedURL, opts...)
	if err != nil {
		return err
	}
	defer sess.Close()

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			select {
			case lines <- strings.TrimSpace(scanner.Text()):
			case <-sess.Done():
				return
			}
		}
	}()

	out := cmd.OutOrStdout()
	started := sess.Started()
	responses := sess.AgentResponses()
	audio := sess.Audio()
	var linger <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-started:
			started = nil
			logger.Info().Str("conversation_id", sess.ConversationID()).Msg("Conversation started")

		case line, ok := <-lines:
			if !ok {
				lines = nil
				linger = time.After(talkWait)
				continue
			}
			if line == "" {
				continue
			}
			if err := sess.SendText(line); err != nil {
				return fmt.Errorf("failed to send message: %w", err)
			}

		case r, ok := <-responses:
			if !ok {
				return sess.Err()
			}
			fmt.Fprintf(out, "agent: %s\n", r.Text)

		case _, ok := <-audio:
			if !ok {
				audio = nil
			}

		case <-linger:
			return nil
		}
	}
}
