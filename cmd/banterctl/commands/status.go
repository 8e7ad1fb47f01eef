package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/banter-mcp/banterctl/internal/config"
	"github.com/banter-mcp/banterctl/internal/extension"
	"github.com/banter-mcp/banterctl/internal/launcher"
	"github.com/banter-mcp/banterctl/internal/registry"
)

var statusJSON bool

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show launcher and registration overview",
	Long: `Show an overview of the launcher state.

Reports configured channels, the active channel, whether the banter MCP
server is registered with the assistant, and whether the Unity bridge is
installed in the active project.

Examples:
  banterctl status
  banterctl status --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runStatus(cmd.OutOrStdout(), Settings())
	},
}

// statusReport is the JSON shape of the status command output.
type statusReport struct {
	ConfigPath      string `json:"config_path"`
	RegistryPath    string `json:"registry_path"`
	Channels        int    `json:"channels"`
	ActiveChannel   string `json:"active_channel,omitempty"`
	MCPServerPath   string `json:"mcp_server_path"`
	AutoStart       bool   `json:"auto_start"`
	Registered      bool   `json:"registered"`
	BridgeInstalled bool   `json:"bridge_installed"`
}

func runStatus(w io.Writer, s *config.Settings) error {
	store := launcher.NewStore(s.LauncherConfig)
	cfg, err := store.Load()
	if err != nil {
		return err
	}

	editor := registry.NewEditor(s.ClaudeConfig)
	registered, err := editor.Registered()
	if err != nil {
		return err
	}

	report := statusReport{
		ConfigPath:    store.Path(),
		RegistryPath:  editor.Path(),
		Channels:      len(cfg.Channels),
		MCPServerPath: cfg.MCPServerPath,
		AutoStart:     cfg.AutoStart,
		Registered:    registered,
	}

	active := cfg.ActiveChannel()
	if active != nil {
		report.ActiveChannel = active.Name
		report.BridgeInstalled = extension.Check(active.UnityProjectPath)
	}

	if statusJSON {
		return renderValue(w, outputJSON, report)
	}

	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	yesNo := func(ok bool) string {
		if ok {
			return green.Sprint("yes")
		}
		return yellow.Sprint("no")
	}

	fmt.Fprintf(w, "Launcher config:  %s\n", report.ConfigPath)
	fmt.Fprintf(w, "Registry:         %s\n", report.RegistryPath)
	fmt.Fprintf(w, "Channels:         %d\n", report.Channels)
	if active != nil {
		fmt.Fprintf(w, "Active channel:   %s\n", report.ActiveChannel)
	} else {
		fmt.Fprintln(w, "Active channel:   none")
	}
	fmt.Fprintf(w, "Server script:    %s\n", report.MCPServerPath)
	fmt.Fprintf(w, "Auto start:       %v\n", report.AutoStart)
	fmt.Fprintf(w, "Registered:       %s\n", yesNo(report.Registered))
	if active != nil {
		fmt.Fprintf(w, "Bridge installed: %s\n", yesNo(report.BridgeInstalled))
	}

	return nil
}
