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

func init() {
	channelCmd.AddCommand(channelActivateCmd)
}

var channelActivateCmd = &cobra.Command{
	Use:   "activate [id-or-name]",
	Short: "Set the active channel",
	Long: `Set the active channel.

Without an argument, an interactive picker is shown when more than one
channel is configured.

Examples:
  banterctl channel activate main-scene
  banterctl channel activate`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := ""
		if len(args) > 0 {
			key = args[0]
		}
		return runChannelActivate(cmd.OutOrStdout(), Settings(), key)
	},
}

func runChannelActivate(w io.Writer, s *config.Settings, key string) error {
	store := launcher.NewStore(s.LauncherConfig)
	cfg, err := store.Load()
	if err != nil {
		return err
	}

	var ch *launcher.ProjectChannel
	switch {
	case key != "":
		ch = cfg.FindChannel(key)
		if ch == nil {
			return errors.Wrapf(banterrors.ErrChannelNotFound, "%q", key)
		}
	case len(cfg.Channels) == 0:
		return banterrors.NewUserError(banterrors.ErrNoActiveChannel,
			"add one with: banterctl channel add <name> <scene-path>")
	case len(cfg.Channels) == 1:
		ch = &cfg.Channels[0]
	default:
		ch, err = pickChannel(cfg.Channels)
		if err != nil {
			return err
		}
	}

	cfg.ActiveChannelID = ch.ID
	if err := store.Save(cfg); err != nil {
		return err
	}

	fmt.Fprintf(w, "Active channel: %s (%s)\n", ch.Name, ch.ID)
	return nil
}
