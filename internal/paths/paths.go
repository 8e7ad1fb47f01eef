package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// AppDir is the directory name used under the per-user config directory.
const AppDir = "banter-mcp"

// LauncherConfigFile is the file name of the launcher's own configuration.
const LauncherConfigFile = "launcher-config.json"

// ClaudeConfigFile is the file name of the assistant registry in the
// user's home directory.
const ClaudeConfigFile = ".claude.json"

// DefaultMCPRoot is the fixed default install location of the MCP server
// distribution. Overridable via BANTER_MCP_ROOT.
const DefaultMCPRoot = "C:/tools/banter-mcp"

// DefaultServerScript is the fixed default path of the MCP server entry
// script used when no launcher config exists yet.
const DefaultServerScript = DefaultMCPRoot + "/dist/index.js"

// ErrHomeDirNotFound indicates the user's home directory could not be determined.
var ErrHomeDirNotFound = errors.New("home directory not found")

// DefaultDirPerm is the default permission for newly created directories.
const DefaultDirPerm = 0o755

// EnsureDir creates the directory and any necessary parents with specified
// permissions. If perm is 0, DefaultDirPerm is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// Home returns the user's home directory, or an empty string if it cannot
// be determined. Use ResolveHome for proper error handling.
func Home() string {
	h, _ := ResolveHome()
	return h
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
// Falls back to the current directory when undeterminable.
func ConfigHome() string {
	if xdg.ConfigHome != "" {
		return xdg.ConfigHome
	}
	return "."
}

// ConfigDir returns the launcher's own config directory.
// Returns: <ConfigHome>/banter-mcp/
func ConfigDir() string {
	return filepath.Join(ConfigHome(), AppDir)
}

// LauncherConfigPath returns the default location of the launcher config file.
// Returns: <ConfigHome>/banter-mcp/launcher-config.json
func LauncherConfigPath() string {
	return filepath.Join(ConfigDir(), LauncherConfigFile)
}

// ClaudeConfigPath returns the default location of the assistant's MCP
// registry file.
//
// Claude Code keeps its MCP server registry in ~/.claude.json (the main
// user config file, NOT inside the .claude directory). Falls back to the
// current directory when the home directory cannot be determined.
func ClaudeConfigPath() string {
	home := Home()
	if home == "" {
		home = "."
	}
	return filepath.Join(home, ClaudeConfigFile)
}
