package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/banter-mcp/banterctl/internal/config"
	"github.com/banter-mcp/banterctl/internal/registry"
)

func init() {
	rootCmd.AddCommand(unregisterCmd)
}

var unregisterCmd = &cobra.Command{
	Use:   "unregister",
	Short: "Remove the banter MCP server from the assistant",
	Long: `Remove the banter MCP server entry from the assistant's registry.

A registry without the entry, or no registry file at all, is a
successful no-op. Every other entry is left untouched.

Examples:
  banterctl unregister`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runUnregister(cmd.OutOrStdout(), Settings())
	},
}

func runUnregister(w io.Writer, s *config.Settings) error {
	if err := registry.NewEditor(s.ClaudeConfig).Remove(); err != nil {
		return err
	}

	fmt.Fprintf(w, "Removed '%s' from the assistant registry\n", registry.ServerName)
	return nil
}
