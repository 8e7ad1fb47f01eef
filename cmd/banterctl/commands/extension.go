package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/banter-mcp/banterctl/internal/config"
	banterrors "github.com/banter-mcp/banterctl/internal/errors"
	"github.com/banter-mcp/banterctl/internal/extension"
	"github.com/banter-mcp/banterctl/internal/launcher"
)

var extensionMCPRoot string

func init() {
	extensionInstallCmd.Flags().StringVar(&extensionMCPRoot, "mcp-root", "",
		"MCP server distribution root containing the bridge source")
	extensionCmd.AddCommand(extensionCheckCmd)
	extensionCmd.AddCommand(extensionInstallCmd)
	rootCmd.AddCommand(extensionCmd)
}

var extensionCmd = &cobra.Command{
	Use:   "extension",
	Short: "Manage the Unity editor bridge",
	Long: `Manage the Unity editor bridge.

The bridge is a C# file (` + extension.BridgeFile + `) the MCP server
talks to from inside the Unity editor. It lives in the project's
Assets/Editor folder.`,
	Example: `  banterctl extension check
  banterctl extension install
  banterctl extension install /proj --mcp-root /srv/banter-mcp`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var extensionCheckCmd = &cobra.Command{
	Use:   "check [project-path]",
	Short: "Check whether the bridge is installed in a project",
	Long: `Check whether the bridge is installed in a Unity project.

Defaults to the active channel's project when no path is given. Exits
with status 1 when the bridge is missing.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExtensionCheck(cmd.OutOrStdout(), Settings(), optionalArg(args))
	},
}

var extensionInstallCmd = &cobra.Command{
	Use:   "install [project-path]",
	Short: "Install the bridge into a project",
	Long: `Copy the bridge from the MCP server distribution into a Unity
project's Assets/Editor folder, overwriting any existing copy.

Defaults to the active channel's project when no path is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExtensionInstall(cmd.OutOrStdout(), Settings(), optionalArg(args))
	},
}

func optionalArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

// resolveProjectPath returns the explicit project path, or the active
// channel's project when none was given.
func resolveProjectPath(s *config.Settings, projectPath string) (string, error) {
	if projectPath != "" {
		return projectPath, nil
	}

	cfg, err := launcher.NewStore(s.LauncherConfig).Load()
	if err != nil {
		return "", err
	}
	ch, err := resolveChannel(cfg, "")
	if err != nil {
		return "", err
	}
	return ch.UnityProjectPath, nil
}

func runExtensionCheck(w io.Writer, s *config.Settings, projectPath string) error {
	project, err := resolveProjectPath(s, projectPath)
	if err != nil {
		return err
	}

	if extension.Check(project) {
		fmt.Fprintf(w, "Bridge installed: %s\n", extension.BridgePath(project))
		return nil
	}

	return banterrors.NewUserError(
		banterrors.ErrNotFound,
		fmt.Sprintf("install it with: banterctl extension install %s", project))
}

func runExtensionInstall(w io.Writer, s *config.Settings, projectPath string) error {
	project, err := resolveProjectPath(s, projectPath)
	if err != nil {
		return err
	}

	mcpRoot := extensionMCPRoot
	if mcpRoot == "" {
		mcpRoot = s.MCPRoot
	}

	if err := extension.Install(project, mcpRoot); err != nil {
		return err
	}

	fmt.Fprintf(w, "Installed bridge to %s\n", extension.BridgePath(project))
	return nil
}
