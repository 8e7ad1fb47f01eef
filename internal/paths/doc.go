// Package paths centralizes filesystem path resolution for banterctl.
//
// It resolves the per-user config directory via the XDG specification,
// the assistant registry location in the user's home directory, and the
// fixed default install paths of the MCP server distribution. All
// consumers accept explicit paths, so these defaults are injection
// points rather than hardcoded lookups.
package paths
