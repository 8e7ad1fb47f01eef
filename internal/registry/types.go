package registry

import "encoding/json"

// ServerName is the registry key this tool owns under mcpServers.
const ServerName = "banter"

// Environment variable names passed to the MCP server process.
const (
	// EnvProjectPath tells the server which Unity project to attach to.
	EnvProjectPath = "UNITY_PROJECT_PATH"

	// EnvScenePath tells the server which scene to open, when known.
	EnvScenePath = "UNITY_SCENE_PATH"
)

// ServerEntry is the launch descriptor for the banter MCP server.
// Only the banter entry is decoded into this type; sibling entries stay
// raw.
type ServerEntry struct {
	// Command is the executable the assistant launches.
	Command string `json:"command"`

	// Args are the command-line arguments, typically the server script path.
	Args []string `json:"args"`

	// Env contains environment variables passed to the server process.
	Env map[string]string `json:"env"`
}

// Document is the assistant's registry file as a whole.
//
// Servers holds the entries under "mcpServers" keyed by name, each kept
// as raw JSON. Unknown top-level fields are preserved through a custom
// Marshal/Unmarshal pair for forward compatibility with the assistant's
// own schema.
type Document struct {
	// Servers maps server names to their raw launch descriptors.
	// nil means the document has no mcpServers key at all.
	Servers map[string]json.RawMessage

	// unknownFields stores top-level JSON fields this tool does not model.
	unknownFields map[string]json.RawMessage
}

// NewDocument returns an empty registry document.
func NewDocument() *Document {
	return &Document{}
}

// MarshalJSON implements json.Marshaler, emitting unknown fields alongside
// the mcpServers key.
func (d *Document) MarshalJSON() ([]byte, error) {
	result := make(map[string]any, len(d.unknownFields)+1)

	for k, v := range d.unknownFields {
		result[k] = v
	}

	if d.Servers != nil {
		result["mcpServers"] = d.Servers
	}

	return json.Marshal(result)
}

// UnmarshalJSON implements json.Unmarshaler, capturing unknown fields.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if serversData, ok := raw["mcpServers"]; ok {
		if err := json.Unmarshal(serversData, &d.Servers); err != nil {
			return err
		}
		delete(raw, "mcpServers")
	}

	if len(raw) > 0 {
		d.unknownFields = raw
	}

	return nil
}

// Server returns the named entry decoded as a ServerEntry, or nil when
// absent or undecodable.
func (d *Document) Server(name string) *ServerEntry {
	raw, ok := d.Servers[name]
	if !ok {
		return nil
	}
	var entry ServerEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil
	}
	return &entry
}

// SetServer stores entry under name, allocating the mcpServers map if the
// document did not have one.
func (d *Document) SetServer(name string, entry *ServerEntry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	if d.Servers == nil {
		d.Servers = make(map[string]json.RawMessage)
	}
	d.Servers[name] = raw
	return nil
}

// RemoveServer deletes the named entry. Removing a missing entry is a no-op.
func (d *Document) RemoveServer(name string) {
	delete(d.Servers, name)
}
