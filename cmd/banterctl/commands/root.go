// Package commands implements the CLI commands for banterctl.
package commands

import (
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/banter-mcp/banterctl/internal/config"
	banterrors "github.com/banter-mcp/banterctl/internal/errors"
	"github.com/banter-mcp/banterctl/internal/logging"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// settingsFile holds the value of the --settings flag.
var settingsFile string

// settings holds the tool settings resolved during initialization.
var settings *config.Settings

// settingsLoadErr holds any error that occurred during settings loading.
var settingsLoadErr error

func init() {
	cobra.OnInitialize(initSettings)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&settingsFile, "settings", "",
		"path to a banterctl settings file")

	// Silence errors and usage so main can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initSettings() {
	config.Init()
	settings, settingsLoadErr = config.Load(settingsFile)
}

var rootCmd = &cobra.Command{
	Use:   "banterctl",
	Short: "Backend CLI for the Banter MCP launcher",
	Long: `banterctl manages the configuration that connects Unity editor
projects to the Banter MCP server consumed by an AI coding assistant.

It persists launcher channels (Unity project/scene associations),
validates Unity scene paths, registers or removes the banter MCP server
entry in the assistant's own registry file, and installs the Unity
editor bridge into a project.`,
	Example: `  # Create a channel from a scene and activate it
  banterctl channel add main-scene /proj/Assets/Scenes/Main.unity --activate

  # Register the active channel with the assistant
  banterctl register

  # Install the Unity editor bridge into the active project
  banterctl extension install

  # Overview of channels, registration, and extension state
  banterctl status`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}
		if settingsLoadErr != nil {
			return banterrors.NewUserError(settingsLoadErr, "check your banterctl settings file")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return banterrors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity
		if v == 0 {
			if val, ok := os.LookupEnv("BANTER_DEBUG"); ok && (val == "1" || val == "true") {
				v = 1
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{Level: level}

	var primary slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primary = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primary = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primary}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return banterrors.NewUserError(err, "failed to open log file")
		}
		handlers = append(handlers, slog.NewJSONHandler(f, opts))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	slog.SetDefault(slog.New(handler))

	return nil
}

// Settings returns the tool settings resolved at startup.
// Falls back to defaults when initialization has not run (tests).
func Settings() *config.Settings {
	if settings == nil {
		config.Init()
		s, err := config.Load("")
		if err != nil {
			return &config.Settings{}
		}
		settings = s
	}
	return settings
}

// Execute runs the root command.
func Execute() error {
	return errors.Wrap(rootCmd.Execute(), "executing root command")
}
