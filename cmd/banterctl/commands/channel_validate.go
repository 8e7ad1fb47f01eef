package commands

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	banterrors "github.com/banter-mcp/banterctl/internal/errors"
	"github.com/banter-mcp/banterctl/internal/launcher"
)

func init() {
	channelCmd.AddCommand(channelValidateCmd)
}

var channelValidateCmd = &cobra.Command{
	Use:   "validate <scene-path>",
	Short: "Check whether a path is a usable Unity scene",
	Long: `Check whether a path is a usable Unity scene.

A path is valid when the file exists, ends in .unity, and sits under an
Assets folder. Exits with status 1 when invalid.

Examples:
  banterctl channel validate /proj/Assets/Scenes/Main.unity`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChannelValidate(cmd.OutOrStdout(), args[0])
	},
}

func runChannelValidate(w io.Writer, scenePath string) error {
	if launcher.ValidateScene(scenePath) {
		fmt.Fprintf(w, "%s: valid Unity scene\n", scenePath)
		return nil
	}

	err := errors.Wrapf(banterrors.ErrValidation, "%s is not a usable Unity scene", scenePath)
	return banterrors.NewUserError(err,
		"scenes must exist, end in .unity, and live under an Assets folder")
}
