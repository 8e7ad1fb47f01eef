package commands

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/ktr0731/go-fuzzyfinder"

	banterrors "github.com/banter-mcp/banterctl/internal/errors"
	"github.com/banter-mcp/banterctl/internal/launcher"
)

// resolveChannel finds the channel named by key, or falls back to the
// active channel when key is empty. With no key, no active channel, and
// more than one channel configured, an interactive fuzzy picker is shown.
func resolveChannel(cfg *launcher.LauncherConfig, key string) (*launcher.ProjectChannel, error) {
	if key != "" {
		ch := cfg.FindChannel(key)
		if ch == nil {
			return nil, errors.Wrapf(banterrors.ErrChannelNotFound, "%q", key)
		}
		return ch, nil
	}

	if ch := cfg.ActiveChannel(); ch != nil {
		return ch, nil
	}

	switch len(cfg.Channels) {
	case 0:
		return nil, banterrors.NewUserError(banterrors.ErrNoActiveChannel,
			"add one with: banterctl channel add <name> <scene-path>")
	case 1:
		return &cfg.Channels[0], nil
	}

	return pickChannel(cfg.Channels)
}

// pickChannel opens an interactive fuzzy finder over the given channels.
func pickChannel(channels []launcher.ProjectChannel) (*launcher.ProjectChannel, error) {
	idx, err := fuzzyfinder.Find(
		channels,
		func(i int) string {
			return fmt.Sprintf("%s (%s)", channels[i].Name, channels[i].UnityProjectPath)
		},
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			ch := channels[i]
			return fmt.Sprintf("Name: %s\nProject: %s\nScene: %s\nEnabled: %v",
				ch.Name,
				ch.UnityProjectPath,
				ch.ScenePath,
				ch.Enabled,
			)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, banterrors.NewUserError(errors.New("selection cancelled"), "")
		}
		return nil, errors.Wrap(err, "selecting channel")
	}

	return &channels[idx], nil
}
