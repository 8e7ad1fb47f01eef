package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/banter-mcp/banterctl/internal/config"
	"github.com/banter-mcp/banterctl/internal/launcher"
)

var channelListOutput string

func init() {
	channelListCmd.Flags().StringVarP(&channelListOutput, "output", "o", outputText,
		"output format: text, json, yaml, toml")
	channelCmd.AddCommand(channelListCmd)
}

var channelListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured channels",
	Long: `List configured channels.

The active channel is marked with an asterisk.

Examples:
  banterctl channel list
  banterctl channel list -o json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runChannelList(cmd.OutOrStdout(), Settings(), channelListOutput)
	},
}

// channelListDoc wraps the list for structured output; TOML cannot
// represent a top-level array.
type channelListDoc struct {
	Channels        []launcher.ProjectChannel `json:"channels" yaml:"channels" toml:"channels"`
	ActiveChannelID string                    `json:"active_channel_id,omitempty" yaml:"active_channel_id,omitempty" toml:"active_channel_id,omitempty"`
}

func runChannelList(w io.Writer, s *config.Settings, format string) error {
	cfg, err := launcher.NewStore(s.LauncherConfig).Load()
	if err != nil {
		return err
	}

	if format != outputText {
		return renderValue(w, format, channelListDoc{
			Channels:        cfg.Channels,
			ActiveChannelID: cfg.ActiveChannelID,
		})
	}

	if len(cfg.Channels) == 0 {
		fmt.Fprintln(w, "No channels configured.")
		return nil
	}

	bold := color.New(color.Bold)
	dim := color.New(color.FgHiBlack)
	for _, ch := range cfg.Channels {
		marker := " "
		if ch.ID == cfg.ActiveChannelID {
			marker = "*"
		}
		state := ""
		if !ch.Enabled {
			state = dim.Sprint(" (disabled)")
		}
		fmt.Fprintf(w, "%s %s%s\n", marker, bold.Sprint(ch.Name), state)
		fmt.Fprintf(w, "    id:      %s\n", ch.ID)
		fmt.Fprintf(w, "    project: %s\n", ch.UnityProjectPath)
		if ch.ScenePath != "" {
			fmt.Fprintf(w, "    scene:   %s\n", ch.ScenePath)
		}
	}

	return nil
}
