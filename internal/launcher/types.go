package launcher

import "github.com/banter-mcp/banterctl/internal/paths"

// ProjectChannel is a named association between a launcher entry and a
// Unity project/scene pair.
type ProjectChannel struct {
	// ID is an opaque unique identifier, generated once at creation
	// and never recomputed.
	ID string `json:"id" yaml:"id" toml:"id"`

	// Name is the user-facing channel name.
	Name string `json:"name" yaml:"name" toml:"name"`

	// UnityProjectPath is the Unity project root, derived from the
	// scene path at creation time.
	UnityProjectPath string `json:"unity_project_path" yaml:"unity_project_path" toml:"unity_project_path"`

	// ScenePath is the scene file the channel was created from.
	ScenePath string `json:"scene_path,omitempty" yaml:"scene_path,omitempty" toml:"scene_path,omitempty"`

	// Enabled reports whether the channel is active in the launcher UI.
	Enabled bool `json:"enabled" yaml:"enabled" toml:"enabled"`
}

// LauncherConfig is the launcher's whole configuration document.
// It is loaded and replaced as a unit; there is no partial update.
type LauncherConfig struct {
	// Channels is the ordered list of configured channels.
	Channels []ProjectChannel `json:"channels" yaml:"channels" toml:"channels"`

	// ActiveChannelID references the id of the active channel, if any.
	// Advisory: it should point at an existing channel, but the store
	// does not enforce it.
	ActiveChannelID string `json:"active_channel_id,omitempty" yaml:"active_channel_id,omitempty" toml:"active_channel_id,omitempty"`

	// MCPServerPath is the path of the MCP server entry script.
	MCPServerPath string `json:"mcp_server_path" yaml:"mcp_server_path" toml:"mcp_server_path"`

	// AutoStart indicates whether the launcher starts the server on boot.
	AutoStart bool `json:"auto_start" yaml:"auto_start" toml:"auto_start"`
}

// DefaultConfig returns the configuration used when no file exists yet:
// no channels, no active channel, the fixed default server script path,
// and auto-start disabled.
func DefaultConfig() *LauncherConfig {
	return &LauncherConfig{
		Channels:      []ProjectChannel{},
		MCPServerPath: paths.DefaultServerScript,
		AutoStart:     false,
	}
}

// FindChannel returns the channel whose ID or Name matches key, or nil.
// IDs are matched first so a channel named like another's id cannot
// shadow it.
func (c *LauncherConfig) FindChannel(key string) *ProjectChannel {
	for i := range c.Channels {
		if c.Channels[i].ID == key {
			return &c.Channels[i]
		}
	}
	for i := range c.Channels {
		if c.Channels[i].Name == key {
			return &c.Channels[i]
		}
	}
	return nil
}

// ActiveChannel returns the channel referenced by ActiveChannelID, or nil
// when unset or dangling.
func (c *LauncherConfig) ActiveChannel() *ProjectChannel {
	if c.ActiveChannelID == "" {
		return nil
	}
	for i := range c.Channels {
		if c.Channels[i].ID == c.ActiveChannelID {
			return &c.Channels[i]
		}
	}
	return nil
}
