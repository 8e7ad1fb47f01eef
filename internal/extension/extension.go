// Package extension installs the Unity editor bridge into a project.
//
// The bridge is a single fixed C# file the MCP server talks to from
// inside the Unity editor. Install copies it from the MCP server
// distribution into the project's Assets/Editor folder.
package extension

import (
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/banter-mcp/banterctl/internal/paths"
)

// BridgeFile is the file name of the Unity editor bridge.
const BridgeFile = "BanterMCPBridge.cs"

// sourceRel is the bridge location inside the MCP server distribution.
var sourceRel = filepath.Join("unity-extension", "Editor", BridgeFile)

// ErrSourceMissing indicates the bridge file is absent from the MCP root.
var ErrSourceMissing = errors.New("unity extension source not found")

// BridgePath returns the expected bridge location inside a Unity project:
// <project>/Assets/Editor/BanterMCPBridge.cs
func BridgePath(unityProjectPath string) string {
	return filepath.Join(unityProjectPath, "Assets", "Editor", BridgeFile)
}

// Check reports whether the bridge file is present in the Unity project.
func Check(unityProjectPath string) bool {
	_, err := os.Stat(BridgePath(unityProjectPath))
	return err == nil
}

// Install copies the bridge file from the MCP server distribution at
// mcpRoot into the project's Assets/Editor directory, creating the
// directory if needed. An existing bridge file is overwritten
// unconditionally; there is no version check.
func Install(unityProjectPath, mcpRoot string) error {
	source := filepath.Join(mcpRoot, sourceRel)
	if _, err := os.Stat(source); err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(ErrSourceMissing, "%s", source)
		}
		return errors.Wrap(err, "checking extension source")
	}

	destDir := filepath.Join(unityProjectPath, "Assets", "Editor")
	if err := paths.EnsureDir(destDir, 0); err != nil {
		return errors.Wrap(err, "creating Editor directory")
	}

	if err := copyFile(source, filepath.Join(destDir, BridgeFile)); err != nil {
		return errors.Wrap(err, "copying extension")
	}

	return nil
}

// copyFile copies a single file from src to dst, truncating dst if it exists.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, "opening %s", src)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return errors.Wrapf(err, "creating %s", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return errors.Wrapf(err, "copying to %s", dst)
	}

	return errors.Wrapf(out.Close(), "closing %s", dst)
}
