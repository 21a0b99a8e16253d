package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/s0up4200/convai/elevenlabs"
)

var isolateFormat string

var isolateCmd = &cobra.Command{
	Use:   "isolate INPUT",
	Short: "Remove background noise from a recording",
	Long: `Upload a recording to the audio isolation endpoint and stream the cleaned
audio into --out-file as it is produced.`,
	Args: cobra.ExactArgs(1),
	RunE: runIsolate,
}

func init() {
	isolateCmd.Flags().StringVarP(&outFile, "out-file", "O", "", "file to write the cleaned audio to (required)")
	isolateCmd.Flags().StringVar(&isolateFormat, "file-format", "", "input format, e.g. "+elevenlabs.FileFormatPCM16k)
	_ = isolateCmd.MarkFlagRequired("out-file")

	rootCmd.AddCommand(isolateCmd)
}

func runIsolate(cmd *cobra.Command, args []string) error {
	in, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close()

	stream, err := elClient.AudioIsolation.IsolateStream(cmd.Context(), elevenlabs.IsolateParams{
		Filename:   filepath.Base(args[0]),
		Audio:      in,
		FileFormat: isolateFormat,
	})
	if err != nil {
		return err
	}
	defer stream.Close()

	out, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer out.Close()

	var written int
	for chunk := range stream.Chunks() {
		n, err := out.Write(chunk)
		written += n
		if err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if err := stream.Err(); err != nil {
		return err
	}

	logger.Info().Str("file", outFile).Int("bytes", written).Msg("Saved isolated audio")
	return out.Close()
}
