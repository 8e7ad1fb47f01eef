package commands

import "github.com/spf13/cobra"

func init() {
	rootCmd.AddCommand(channelCmd)
}

var channelCmd = &cobra.Command{
	Use:   "channel",
	Short: "Manage launcher channels",
	Long: `Manage launcher channels.

A channel associates a name with a Unity project/scene pair. Channels
are stored in the launcher's own config file and drive what gets
registered with the AI assistant.`,
	Example: `  # Create a channel from a scene file
  banterctl channel add main-scene /proj/Assets/Scenes/Main.unity

  # List channels
  banterctl channel list

  # Pick the active channel interactively
  banterctl channel activate

  See Also:
    banterctl channel add       - Create a channel from a scene
    banterctl channel list      - List configured channels
    banterctl channel remove    - Delete a channel
    banterctl channel activate  - Set the active channel
    banterctl channel validate  - Check a scene path`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}
