package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/banter-mcp/banterctl/internal/config"
	"github.com/banter-mcp/banterctl/internal/launcher"
	"github.com/banter-mcp/banterctl/internal/registry"
)

// Package-level flag variables for channel add.
var (
	channelAddActivate bool
	channelAddRegister bool
)

func init() {
	channelAddCmd.Flags().BoolVar(&channelAddActivate, "activate", false,
		"make the new channel the active one")
	channelAddCmd.Flags().BoolVar(&channelAddRegister, "register", false,
		"also register the channel with the assistant (implies --activate)")
	channelCmd.AddCommand(channelAddCmd)
}

var channelAddCmd = &cobra.Command{
	Use:   "add <name> <scene-path>",
	Short: "Create a channel from a Unity scene file",
	Long: `Create a channel from a Unity scene file.

The scene must exist, end in .unity, and live under an Assets folder;
the Unity project root is derived from the Assets folder's parent. The
channel is appended to the launcher config.

Examples:
  banterctl channel add main-scene /proj/Assets/Scenes/Main.unity
  banterctl channel add lobby /proj/Assets/Lobby.unity --activate
  banterctl channel add demo /proj/Assets/Demo.unity --register`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChannelAdd(cmd.OutOrStdout(), Settings(), args[0], args[1])
	},
}

func runChannelAdd(w io.Writer, s *config.Settings, name, scenePath string) error {
	ch, err := launcher.NewChannel(name, scenePath)
	if err != nil {
		return err
	}

	store := launcher.NewStore(s.LauncherConfig)
	cfg, err := store.Load()
	if err != nil {
		return err
	}

	cfg.Channels = append(cfg.Channels, *ch)
	if channelAddActivate || channelAddRegister {
		cfg.ActiveChannelID = ch.ID
	}

	if err := store.Save(cfg); err != nil {
		return err
	}
	slog.Debug("channel saved", "id", ch.ID, "project", ch.UnityProjectPath)

	if channelAddRegister {
		editor := registry.NewEditor(s.ClaudeConfig)
		if err := editor.Upsert(ch, cfg.MCPServerPath); err != nil {
			return err
		}
		fmt.Fprintf(w, "Registered '%s' with the assistant\n", ch.Name)
	}

	fmt.Fprintf(w, "Added channel '%s' (%s)\n", ch.Name, ch.ID)
	fmt.Fprintf(w, "  project: %s\n", ch.UnityProjectPath)
	if !launcher.ValidateScene(scenePath) {
		// NewChannel accepted it, so only the /Assets/ substring heuristic
		// can disagree here; worth a heads-up, not a failure.
		fmt.Fprintln(os.Stderr, "warning: scene path does not look like a standard Unity layout")
	}

	return nil
}
