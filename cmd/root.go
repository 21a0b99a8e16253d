package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/convai/client"
	"github.com/s0up4200/convai/config"
	"github.com/s0up4200/convai/elevenlabs"
	"github.com/s0up4200/convai/filter"
)

var (
	cfgFile  string
	cfg      *config.Config
	logger   zerolog.Logger
	elClient *elevenlabs.Client
	filters  *filter.Manager

	// Command flags
	outputFormat string
	apiKey       string
	baseURL      string
	filterExpr   string
	pageSize     int
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "convai",
	Short: "A command line client for the ElevenLabs Conversational AI API",
	Long: `convai manages ElevenLabs conversational agents, their conversations,
knowledge base and tooling from the command line.

Credentials are read from --api-key, the config file, a .env file or the
ELEVENLABS_API_KEY environment variable, in that order.`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "output", "", "output format: json or yaml")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "ElevenLabs API key")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "API base URL")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// initializeApp loads the configuration and builds the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Command line overrides
	if outputFormat != "" {
		if outputFormat != "json" && outputFormat != "yaml" {
			return fmt.Errorf("invalid output format: %s (must be 'json' or 'yaml')", outputFormat)
		}
		cfg.Output.Format = outputFormat
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	filters = filter.NewManager()
	if err := filters.RegisterFilters(cfg.Filters); err != nil {
		return err
	}

	// Commands that never reach the API skip client creation
	if cmd.Annotations["offline"] == "true" {
		return nil
	}

	elClient, err = newAPIClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to create ElevenLabs client: %w", err)
	}
	logger.Debug().Str("base_url", elClient.BaseURL()).Msg("ElevenLabs client ready")

	return nil
}

// newAPIClient resolves credentials from flags and config and applies the
// client tuning options
func newAPIClient(cfg *config.Config) (*elevenlabs.Client, error) {
	opts := []client.Option{
		client.WithLogger(logger),
		client.WithUserAgent("convai/" + version),
	}
	if cfg.Client.Timeout > 0 {
		opts = append(opts, client.WithTimeout(cfg.Client.Timeout))
	}
	if cfg.Client.RateLimit > 0 {
		opts = append(opts, client.WithRateLimit(cfg.Client.RateLimit, cfg.Client.Burst))
	}
	if cfg.Client.UserAgent != "" {
		opts = append(opts, client.WithUserAgent(cfg.Client.UserAgent))
	}

	creds := config.Credentials{APIKey: apiKey, BaseURL: baseURL}
	return elevenlabs.New(cfg.Settings(), creds, opts...)
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format, colored only on a terminal
	fd := os.Stderr.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !tty,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// resolveFilter returns the --filter value as a compiled filter, or nil when
// no filter was given. The value may name a filter from the config.
func resolveFilter() (filter.Filter, error) {
	if filterExpr == "" {
		return nil, nil
	}
	f, err := filters.Resolve(filterExpr)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	logger.Debug().Str("filter", f.Expression()).Msg("Filtering results")
	return f, nil
}

// filterListing narrows the array under key in a listing response
func filterListing(resp elevenlabs.Object, key string, f filter.Filter) (elevenlabs.Object, error) {
	if f == nil {
		return resp, nil
	}
	items, err := filter.Items(resp, key)
	if err != nil {
		return nil, err
	}
	matches, err := filter.Apply(f, items)
	if err != nil {
		return nil, err
	}

	out := make(elevenlabs.Object, len(resp))
	for k, v := range resp {
		out[k] = v
	}
	out[key] = matches
	return out, nil
}

func addListFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression or name of a configured filter")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "number of items to request")
}
