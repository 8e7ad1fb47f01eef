package registry

import (
	"encoding/json"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/banter-mcp/banterctl/internal/launcher"
	"github.com/banter-mcp/banterctl/internal/paths"
	"github.com/banter-mcp/banterctl/pkg/fileutil"
)

// ServerCommand is the executable registered for the banter entry.
const ServerCommand = "node"

// Editor reads and rewrites the assistant registry file.
type Editor struct {
	path string
}

// NewEditor creates an Editor bound to the given registry file path.
// If path is empty, the default ~/.claude.json location is used.
func NewEditor(path string) *Editor {
	if path == "" {
		path = paths.ClaudeConfigPath()
	}
	return &Editor{path: path}
}

// Path returns the registry file path the editor is bound to.
func (e *Editor) Path() string {
	return e.path
}

// Read returns the registry document. A missing file yields an empty
// document; unreadable files surface an I/O error and invalid JSON a
// parse error.
func (e *Editor) Read() (*Document, error) {
	data, err := os.ReadFile(e.path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewDocument(), nil
		}
		return nil, errors.Wrap(err, "reading assistant registry")
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "parsing assistant registry")
	}

	return &doc, nil
}

// Upsert registers the banter MCP server for the given channel, replacing
// any previous banter entry and leaving every other key untouched.
//
// Unlike Read, a registry file that fails to parse is replaced by an
// empty document rather than surfacing an error. The leniency is
// deliberate: registering must succeed even when the assistant left the
// file in a state this tool cannot read.
func (e *Editor) Upsert(channel *launcher.ProjectChannel, serverPath string) error {
	doc := NewDocument()
	if data, err := os.ReadFile(e.path); err == nil {
		if parseErr := json.Unmarshal(data, doc); parseErr != nil {
			doc = NewDocument()
		}
	} else if !os.IsNotExist(err) {
		return errors.Wrap(err, "reading assistant registry")
	}

	env := map[string]string{
		EnvProjectPath: channel.UnityProjectPath,
	}
	if channel.ScenePath != "" {
		env[EnvScenePath] = channel.ScenePath
	}

	entry := &ServerEntry{
		Command: ServerCommand,
		Args:    []string{serverPath},
		Env:     env,
	}
	if err := doc.SetServer(ServerName, entry); err != nil {
		return errors.Wrap(err, "encoding server entry")
	}

	return errors.Wrap(fileutil.AtomicWriteJSON(e.path, doc), "writing assistant registry")
}

// Remove deletes the banter entry from the registry. A missing registry
// file is a successful no-op and is not created; a file that fails to
// parse surfaces the error — no leniency on this path, since rewriting a
// document we could not read would destroy it.
func (e *Editor) Remove() error {
	data, err := os.ReadFile(e.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(err, "reading assistant registry")
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return errors.Wrap(err, "parsing assistant registry")
	}

	doc.RemoveServer(ServerName)

	return errors.Wrap(fileutil.AtomicWriteJSON(e.path, &doc), "writing assistant registry")
}

// Registered reports whether the banter entry currently exists.
func (e *Editor) Registered() (bool, error) {
	doc, err := e.Read()
	if err != nil {
		return false, err
	}
	return doc.Server(ServerName) != nil, nil
}
