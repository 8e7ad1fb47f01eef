package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/banter-mcp/banterctl/internal/config"
	"github.com/banter-mcp/banterctl/internal/launcher"
	"github.com/banter-mcp/banterctl/internal/registry"
)

var registerServerPath string

func init() {
	registerCmd.Flags().StringVar(&registerServerPath, "server-path", "",
		"MCP server script path (default: mcp_server_path from the launcher config)")
	rootCmd.AddCommand(registerCmd)
}

var registerCmd = &cobra.Command{
	Use:   "register [id-or-name]",
	Short: "Register the banter MCP server with the assistant",
	Long: `Register the banter MCP server with the assistant.

Writes the launch descriptor for the given channel (or the active
channel) under mcpServers.banter in the assistant's registry file.
Every other entry in the registry is left untouched.

Examples:
  banterctl register
  banterctl register main-scene
  banterctl register --server-path /srv/banter-mcp/dist/index.js`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := ""
		if len(args) > 0 {
			key = args[0]
		}
		return runRegister(cmd.OutOrStdout(), Settings(), key)
	},
}

func runRegister(w io.Writer, s *config.Settings, key string) error {
	cfg, err := launcher.NewStore(s.LauncherConfig).Load()
	if err != nil {
		return err
	}

	ch, err := resolveChannel(cfg, key)
	if err != nil {
		return err
	}

	serverPath := registerServerPath
	if serverPath == "" {
		serverPath = cfg.MCPServerPath
	}

	editor := registry.NewEditor(s.ClaudeConfig)
	if err := editor.Upsert(ch, serverPath); err != nil {
		return err
	}
	slog.Debug("registry updated", "path", editor.Path(), "channel", ch.ID)

	fmt.Fprintf(w, "Registered '%s' for channel '%s'\n", registry.ServerName, ch.Name)
	fmt.Fprintf(w, "  server:  %s\n", serverPath)
	fmt.Fprintf(w, "  project: %s\n", ch.UnityProjectPath)
	return nil
}
