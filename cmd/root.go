package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/onering/config"
	"github.com/s0up4200/onering/oneapi"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *oneapi.Client

	// Global flags
	outputFormat string
	whereExpr    string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "onering",
	Short: "Query The One API for Lord of the Rings movies and quotes",
	Long: `onering is a CLI for The One API (https://the-one-api.dev).

It fetches movies and quotes, passes server-side filters through verbatim
and can narrow the returned docs further with a local --where expression.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: console or json (overrides output.format)")
	rootCmd.PersistentFlags().StringVarP(&whereExpr, "where", "w", "", "local expression applied to returned docs, e.g. 'runtimeInMinutes > 200'")
}

// initializeApp loads the configuration and builds the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if outputFormat != "" {
		if outputFormat != "console" && outputFormat != "json" {
			return fmt.Errorf("invalid output format: %s (must be 'console' or 'json')", outputFormat)
		}
		cfg.Output.Format = outputFormat
	}

	logger = setupLogger(cfg.Logging)

	opts := []oneapi.Option{oneapi.WithTimeout(cfg.API.Timeout)}
	if cfg.API.BaseURL != "" {
		opts = append(opts, oneapi.WithBaseURL(cfg.API.BaseURL))
	}

	client, err = oneapi.NewClient(cfg.API.Key, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create One API client: %w", err)
	}

	logger.Debug().
		Str("base_url", client.BaseURL()).
		Dur("timeout", cfg.API.Timeout).
		Msg("One API client ready")

	return nil
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

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
