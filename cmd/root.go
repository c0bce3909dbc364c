package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/paperforge/paperforge-go/config"
	"github.com/paperforge/paperforge-go/paperforge"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *paperforge.Client

	version   = "dev"
	buildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "paperforge",
	Short: "A tool to generate PDF documents from Paperforge templates",
	Long: `paperforge is a CLI for the Paperforge document generation API.
It renders server-side templates into PDF documents using template data
supplied as JSON, and writes the generated files to disk.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion records build information injected from main
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
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
	rootCmd.PersistentFlags().Bool("debug", false, "log request and response diagnostics")
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Self-update needs no configuration
	if cmd == updateCmd {
		return nil
	}

	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Override debug from command line if specified
	if cmd.Flags().Changed("debug") {
		cfg.Paperforge.Debug, _ = cmd.Flags().GetBool("debug")
	}

	opts := []paperforge.Option{
		paperforge.WithBaseURL(cfg.Paperforge.URL),
		paperforge.WithTimeout(time.Duration(cfg.Paperforge.TimeoutSeconds) * time.Second),
		paperforge.WithLogger(logger),
	}
	if len(cfg.Paperforge.Headers) > 0 {
		opts = append(opts, paperforge.WithHeaders(cfg.Paperforge.Headers))
	}
	if cfg.Paperforge.Debug {
		opts = append(opts, paperforge.WithDebug())
	}

	client, err = paperforge.NewClient(cfg.Paperforge.APIKey, opts...)
	if err != nil {
		return fmt.Errorf("failed to create Paperforge client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format, color only on real terminals
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
