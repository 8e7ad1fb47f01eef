package commands

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/banter-mcp/banterctl/internal/config"
	banterrors "github.com/banter-mcp/banterctl/internal/errors"
	"github.com/banter-mcp/banterctl/internal/launcher"
)

var configShowOutput string

func init() {
	configShowCmd.Flags().StringVarP(&configShowOutput, "output", "o", outputText,
		"output format: text, json, yaml, toml")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit the launcher configuration",
	Long: `Inspect and edit the launcher configuration.

Settable keys:
  mcp_server_path   path of the MCP server entry script
  auto_start        whether the launcher starts the server on boot`,
	Example: `  banterctl config show
  banterctl config show -o yaml
  banterctl config set auto_start true
  banterctl config set mcp_server_path /srv/banter-mcp/dist/index.js`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the launcher configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runConfigShow(cmd.OutOrStdout(), Settings(), configShowOutput)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a launcher configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigSet(cmd.OutOrStdout(), Settings(), args[0], args[1])
	},
}

func runConfigShow(w io.Writer, s *config.Settings, format string) error {
	store := launcher.NewStore(s.LauncherConfig)
	cfg, err := store.Load()
	if err != nil {
		return err
	}

	if format != outputText {
		return renderValue(w, format, cfg)
	}

	fmt.Fprintf(w, "config file:      %s\n", store.Path())
	fmt.Fprintf(w, "mcp_server_path:  %s\n", cfg.MCPServerPath)
	fmt.Fprintf(w, "auto_start:       %v\n", cfg.AutoStart)
	fmt.Fprintf(w, "channels:         %d\n", len(cfg.Channels))
	if active := cfg.ActiveChannel(); active != nil {
		fmt.Fprintf(w, "active channel:   %s (%s)\n", active.Name, active.ID)
	} else {
		fmt.Fprintln(w, "active channel:   none")
	}
	return nil
}

func runConfigSet(w io.Writer, s *config.Settings, key, value string) error {
	store := launcher.NewStore(s.LauncherConfig)
	cfg, err := store.Load()
	if err != nil {
		return err
	}

	switch key {
	case "mcp_server_path":
		cfg.MCPServerPath = value
	case "auto_start":
		switch value {
		case "true":
			cfg.AutoStart = true
		case "false":
			cfg.AutoStart = false
		default:
			err := errors.Wrapf(banterrors.ErrValidation, "auto_start must be true or false, got %q", value)
			return banterrors.NewExitError(err, banterrors.ExitUser)
		}
	default:
		err := errors.Wrapf(banterrors.ErrValidation, "unknown key %q", key)
		return banterrors.NewUserError(err, "settable keys: mcp_server_path, auto_start")
	}

	if err := store.Save(cfg); err != nil {
		return err
	}

	fmt.Fprintf(w, "%s = %s\n", key, value)
	return nil
}
