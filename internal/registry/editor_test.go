package registry

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/banter-mcp/banterctl/internal/launcher"
)

func testChannel() *launcher.ProjectChannel {
	return &launcher.ProjectChannel{
		ID:               "ch-1",
		Name:             "Main",
		UnityProjectPath: "/proj",
		ScenePath:        "/proj/Assets/Scenes/Main.unity",
		Enabled:          true,
	}
}

func readDoc(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("registry is not valid JSON: %v\n%s", err, data)
	}
	return doc
}

func TestEditor_Read_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".claude.json")

	doc, err := NewEditor(path).Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if doc.Servers != nil {
		t.Errorf("Servers = %v, want nil", doc.Servers)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Read() should not create the registry file")
	}
}

func TestEditor_Read_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".claude.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, err := NewEditor(path).Read(); err == nil {
		t.Error("Read() should fail on invalid JSON")
	}
}

func TestEditor_Upsert_NewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".claude.json")
	editor := NewEditor(path)

	if err := editor.Upsert(testChannel(), "/srv/banter-mcp/dist/index.js"); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	doc, err := editor.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	entry := doc.Server(ServerName)
	if entry == nil {
		t.Fatal("banter entry missing after Upsert")
	}
	if entry.Command != "node" {
		t.Errorf("Command = %q, want node", entry.Command)
	}
	if !reflect.DeepEqual(entry.Args, []string{"/srv/banter-mcp/dist/index.js"}) {
		t.Errorf("Args = %v", entry.Args)
	}
	wantEnv := map[string]string{
		EnvProjectPath: "/proj",
		EnvScenePath:   "/proj/Assets/Scenes/Main.unity",
	}
	if !reflect.DeepEqual(entry.Env, wantEnv) {
		t.Errorf("Env = %v, want %v", entry.Env, wantEnv)
	}
}

func TestEditor_Upsert_OmitsScenePathWhenAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".claude.json")
	editor := NewEditor(path)

	ch := testChannel()
	ch.ScenePath = ""

	if err := editor.Upsert(ch, "/srv/index.js"); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	doc, _ := editor.Read()
	entry := doc.Server(ServerName)
	if entry == nil {
		t.Fatal("banter entry missing")
	}
	if _, ok := entry.Env[EnvScenePath]; ok {
		t.Errorf("Env should omit %s, got %v", EnvScenePath, entry.Env)
	}
}

func TestEditor_Upsert_PreservesSiblings(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".claude.json")
	existing := `{
  "otherSetting": true,
  "numRuns": 42,
  "mcpServers": {
    "other-tool": {
      "command": "python",
      "args": ["-m", "other_tool"],
      "nonStandardField": {"nested": [1, 2, 3]}
    }
  }
}`
	if err := os.WriteFile(path, []byte(existing), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	editor := NewEditor(path)
	if err := editor.Upsert(testChannel(), "/srv/index.js"); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	doc := readDoc(t, path)

	if doc["otherSetting"] != true {
		t.Errorf("otherSetting = %v, want true", doc["otherSetting"])
	}
	if doc["numRuns"] != float64(42) {
		t.Errorf("numRuns = %v, want 42", doc["numRuns"])
	}

	servers, ok := doc["mcpServers"].(map[string]any)
	if !ok {
		t.Fatalf("mcpServers = %v", doc["mcpServers"])
	}
	other, ok := servers["other-tool"].(map[string]any)
	if !ok {
		t.Fatal("other-tool entry lost")
	}
	if other["command"] != "python" {
		t.Errorf("other-tool.command = %v", other["command"])
	}
	if _, ok := other["nonStandardField"]; !ok {
		t.Error("other-tool.nonStandardField lost")
	}
	if _, ok := servers[ServerName]; !ok {
		t.Error("banter entry missing")
	}
}

func TestEditor_Upsert_ReplacesExistingEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".claude.json")
	editor := NewEditor(path)

	if err := editor.Upsert(testChannel(), "/old/index.js"); err != nil {
		t.Fatalf("first Upsert() error = %v", err)
	}
	if err := editor.Upsert(testChannel(), "/new/index.js"); err != nil {
		t.Fatalf("second Upsert() error = %v", err)
	}

	doc, _ := editor.Read()
	entry := doc.Server(ServerName)
	if !reflect.DeepEqual(entry.Args, []string{"/new/index.js"}) {
		t.Errorf("Args = %v, want replaced path", entry.Args)
	}
}

func TestEditor_Upsert_ToleratesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".claude.json")
	if err := os.WriteFile(path, []byte("not json at all"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	editor := NewEditor(path)
	if err := editor.Upsert(testChannel(), "/srv/index.js"); err != nil {
		t.Fatalf("Upsert() should tolerate a corrupt registry, got %v", err)
	}

	doc := readDoc(t, path)
	servers := doc["mcpServers"].(map[string]any)
	if _, ok := servers[ServerName]; !ok {
		t.Error("banter entry missing after corrupt-file recovery")
	}
}

func TestEditor_Remove_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".claude.json")

	if err := NewEditor(path).Remove(); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Remove() must not create the registry file")
	}
}

func TestEditor_Remove_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".claude.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if err := NewEditor(path).Remove(); err == nil {
		t.Error("Remove() should fail on invalid JSON")
	}
}

func TestEditor_Remove_EntryAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".claude.json")
	existing := `{"otherSetting": "kept", "mcpServers": {"other-tool": {"command": "x"}}}`
	if err := os.WriteFile(path, []byte(existing), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if err := NewEditor(path).Remove(); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	doc := readDoc(t, path)
	if doc["otherSetting"] != "kept" {
		t.Errorf("otherSetting = %v", doc["otherSetting"])
	}
	servers := doc["mcpServers"].(map[string]any)
	if _, ok := servers["other-tool"]; !ok {
		t.Error("other-tool entry lost")
	}
	if len(servers) != 1 {
		t.Errorf("servers = %v, want only other-tool", servers)
	}
}

func TestEditor_Remove_DeletesEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".claude.json")
	editor := NewEditor(path)

	if err := editor.Upsert(testChannel(), "/srv/index.js"); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if err := editor.Remove(); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	registered, err := editor.Registered()
	if err != nil {
		t.Fatalf("Registered() error = %v", err)
	}
	if registered {
		t.Error("banter entry should be gone")
	}
}

func TestEditor_Remove_NoMCPServersKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".claude.json")
	if err := os.WriteFile(path, []byte(`{"theme": "dark"}`), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if err := NewEditor(path).Remove(); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	doc := readDoc(t, path)
	if doc["theme"] != "dark" {
		t.Errorf("theme = %v", doc["theme"])
	}
	// A document without mcpServers keeps not having one
	if _, ok := doc["mcpServers"]; ok {
		t.Error("Remove() should not introduce an mcpServers key")
	}
}

func TestEditor_Registered(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".claude.json")
	editor := NewEditor(path)

	registered, err := editor.Registered()
	if err != nil {
		t.Fatalf("Registered() error = %v", err)
	}
	if registered {
		t.Error("fresh registry should not be registered")
	}

	if err := editor.Upsert(testChannel(), "/srv/index.js"); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	registered, err = editor.Registered()
	if err != nil {
		t.Fatalf("Registered() error = %v", err)
	}
	if !registered {
		t.Error("registry should be registered after Upsert")
	}
}
