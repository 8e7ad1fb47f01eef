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
	channelCmd.AddCommand(channelRemoveCmd)
}

var channelRemoveCmd = &cobra.Command{
	Use:   "remove <id-or-name>",
	Short: "Delete a channel",
	Long: `Delete a channel from the launcher config.

When the removed channel was the active one, the active channel is
cleared. The assistant registry is not touched; run 'banterctl
unregister' to remove the registration as well.

Examples:
  banterctl channel remove main-scene`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChannelRemove(cmd.OutOrStdout(), Settings(), args[0])
	},
}

func runChannelRemove(w io.Writer, s *config.Settings, key string) error {
	store := launcher.NewStore(s.LauncherConfig)
	cfg, err := store.Load()
	if err != nil {
		return err
	}

	ch := cfg.FindChannel(key)
	if ch == nil {
		return errors.Wrapf(banterrors.ErrChannelNotFound, "%q", key)
	}
	removedID := ch.ID
	removedName := ch.Name

	kept := cfg.Channels[:0]
	for _, c := range cfg.Channels {
		if c.ID != removedID {
			kept = append(kept, c)
		}
	}
	cfg.Channels = kept

	if cfg.ActiveChannelID == removedID {
		cfg.ActiveChannelID = ""
	}

	if err := store.Save(cfg); err != nil {
		return err
	}

	fmt.Fprintf(w, "Removed channel '%s'\n", removedName)
	return nil
}
