// Package config provides tool settings for banterctl using Viper.
//
// Settings control where banterctl looks for the launcher config file,
// the assistant registry, and the MCP server distribution. Every value
// can be overridden by a BANTER_* environment variable or an optional
// config.yaml, which keeps the fixed per-user paths injectable for
// tests and unusual setups.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/banter-mcp/banterctl/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = "banterctl"

// Settings keys understood by banterctl.
const (
	// KeyLauncherConfig is the path of the launcher's own JSON config file.
	KeyLauncherConfig = "launcher_config"

	// KeyClaudeConfig is the path of the assistant registry file.
	KeyClaudeConfig = "claude_config"

	// KeyMCPRoot is the root of the MCP server distribution.
	KeyMCPRoot = "mcp_root"
)

// Settings represents the resolved tool settings.
type Settings struct {
	// LauncherConfig is the path of the launcher config file.
	LauncherConfig string `mapstructure:"launcher_config" yaml:"launcher_config"`

	// ClaudeConfig is the path of the assistant registry file.
	ClaudeConfig string `mapstructure:"claude_config" yaml:"claude_config"`

	// MCPRoot is the root directory of the MCP server distribution,
	// used as the source for the Unity extension install.
	MCPRoot string `mapstructure:"mcp_root" yaml:"mcp_root"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	// Environment variable support: BANTER_LAUNCHER_CONFIG etc.
	viper.SetEnvPrefix("BANTER")
	viper.AutomaticEnv()

	viper.SetDefault(KeyLauncherConfig, paths.LauncherConfigPath())
	viper.SetDefault(KeyClaudeConfig, paths.ClaudeConfigPath())
	viper.SetDefault(KeyMCPRoot, paths.DefaultMCPRoot)
}

// Load reads the configuration file and resolves settings.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back
// to defaults when no file is found.
func Load(path string) (*Settings, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If the user specified a path, a missing file is an error;
			// an implicit search with no file just means defaults.
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
		} else {
			// Real read error (parsing, permissions, etc)
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshaling settings: %w", err)
	}

	// Viper defaults cover these, but guard against empty overrides
	if s.LauncherConfig == "" {
		s.LauncherConfig = paths.LauncherConfigPath()
	}
	if s.ClaudeConfig == "" {
		s.ClaudeConfig = paths.ClaudeConfigPath()
	}
	if s.MCPRoot == "" {
		s.MCPRoot = paths.DefaultMCPRoot
	}

	return &s, nil
}
