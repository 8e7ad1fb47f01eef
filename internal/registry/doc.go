// Package registry edits the AI assistant's MCP server registry file
// (~/.claude.json by default).
//
// The file is owned by the assistant, not by this tool: only the
// mcpServers.banter entry is ever touched. Every other key — top-level
// settings and sibling server entries alike — is carried through
// read-modify-write cycles as raw JSON, never decoded into typed
// structs, so nothing this tool does not understand can be lost.
package registry
