package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banter-mcp/banterctl/internal/config"
	"github.com/banter-mcp/banterctl/internal/launcher"
	"github.com/banter-mcp/banterctl/internal/registry"
)

// testSettings returns settings pointing all paths into a temp dir.
func testSettings(t *testing.T) *config.Settings {
	t.Helper()
	dir := t.TempDir()
	return &config.Settings{
		LauncherConfig: filepath.Join(dir, "launcher-config.json"),
		ClaudeConfig:   filepath.Join(dir, ".claude.json"),
		MCPRoot:        filepath.Join(dir, "banter-mcp"),
	}
}

// makeScene writes a scene file under an Assets tree and returns its path.
func makeScene(t *testing.T, rel string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("%YAML 1.1\n"), 0o644))
	return path
}

func TestRunChannelAdd(t *testing.T) {
	s := testSettings(t)
	scene := makeScene(t, "proj/Assets/Scenes/Main.unity")

	var out bytes.Buffer
	require.NoError(t, runChannelAdd(&out, s, "main-scene", scene))
	assert.Contains(t, out.String(), "Added channel 'main-scene'")

	cfg, err := launcher.NewStore(s.LauncherConfig).Load()
	require.NoError(t, err)
	require.Len(t, cfg.Channels, 1)
	assert.Equal(t, "main-scene", cfg.Channels[0].Name)
	assert.Equal(t, scene, cfg.Channels[0].ScenePath)
	assert.True(t, cfg.Channels[0].Enabled)
	assert.Empty(t, cfg.ActiveChannelID, "add without --activate should not set the active channel")
}

func TestRunChannelAdd_Activate(t *testing.T) {
	s := testSettings(t)
	scene := makeScene(t, "proj/Assets/Main.unity")

	channelAddActivate = true
	defer func() { channelAddActivate = false }()

	var out bytes.Buffer
	require.NoError(t, runChannelAdd(&out, s, "main-scene", scene))

	cfg, err := launcher.NewStore(s.LauncherConfig).Load()
	require.NoError(t, err)
	require.Len(t, cfg.Channels, 1)
	assert.Equal(t, cfg.Channels[0].ID, cfg.ActiveChannelID)
}

func TestRunChannelAdd_Register(t *testing.T) {
	s := testSettings(t)
	scene := makeScene(t, "proj/Assets/Main.unity")

	channelAddRegister = true
	defer func() { channelAddRegister = false }()

	var out bytes.Buffer
	require.NoError(t, runChannelAdd(&out, s, "main-scene", scene))

	registered, err := registry.NewEditor(s.ClaudeConfig).Registered()
	require.NoError(t, err)
	assert.True(t, registered)
}

func TestRunChannelAdd_InvalidScene(t *testing.T) {
	s := testSettings(t)
	scene := makeScene(t, "proj/Assets/Main.scene")

	var out bytes.Buffer
	err := runChannelAdd(&out, s, "bad", scene)
	assert.ErrorIs(t, err, launcher.ErrNotSceneFile)

	// Nothing persisted on failure
	_, statErr := os.Stat(s.LauncherConfig)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunChannelAdd_AppendsToExisting(t *testing.T) {
	s := testSettings(t)
	sceneA := makeScene(t, "a/Assets/A.unity")
	sceneB := makeScene(t, "b/Assets/B.unity")

	var out bytes.Buffer
	require.NoError(t, runChannelAdd(&out, s, "alpha", sceneA))
	require.NoError(t, runChannelAdd(&out, s, "beta", sceneB))

	cfg, err := launcher.NewStore(s.LauncherConfig).Load()
	require.NoError(t, err)
	require.Len(t, cfg.Channels, 2)
	assert.Equal(t, "alpha", cfg.Channels[0].Name)
	assert.Equal(t, "beta", cfg.Channels[1].Name)
	assert.NotEqual(t, cfg.Channels[0].ID, cfg.Channels[1].ID)
}
