package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	banterrors "github.com/banter-mcp/banterctl/internal/errors"
	"github.com/banter-mcp/banterctl/internal/launcher"
)

func TestRunConfigSet_AutoStart(t *testing.T) {
	s := testSettings(t)

	var out bytes.Buffer
	require.NoError(t, runConfigSet(&out, s, "auto_start", "true"))

	cfg, err := launcher.NewStore(s.LauncherConfig).Load()
	require.NoError(t, err)
	assert.True(t, cfg.AutoStart)

	require.NoError(t, runConfigSet(&out, s, "auto_start", "false"))
	cfg, err = launcher.NewStore(s.LauncherConfig).Load()
	require.NoError(t, err)
	assert.False(t, cfg.AutoStart)
}

func TestRunConfigSet_AutoStartInvalid(t *testing.T) {
	s := testSettings(t)

	var out bytes.Buffer
	err := runConfigSet(&out, s, "auto_start", "yes")
	assert.ErrorIs(t, err, banterrors.ErrValidation)
}

func TestRunConfigSet_ServerPath(t *testing.T) {
	s := testSettings(t)

	var out bytes.Buffer
	require.NoError(t, runConfigSet(&out, s, "mcp_server_path", "/srv/banter/index.js"))

	cfg, err := launcher.NewStore(s.LauncherConfig).Load()
	require.NoError(t, err)
	assert.Equal(t, "/srv/banter/index.js", cfg.MCPServerPath)
}

func TestRunConfigSet_UnknownKey(t *testing.T) {
	s := testSettings(t)

	var out bytes.Buffer
	err := runConfigSet(&out, s, "nope", "1")
	assert.ErrorIs(t, err, banterrors.ErrValidation)
}

func TestRunConfigShow_Text(t *testing.T) {
	s := testSettings(t)

	var out bytes.Buffer
	require.NoError(t, runConfigShow(&out, s, outputText))
	assert.Contains(t, out.String(), "auto_start:")
	assert.Contains(t, out.String(), "active channel:   none")
}

func TestRunConfigShow_StructuredFormats(t *testing.T) {
	s := testSettings(t)
	seedConfig(t, s.LauncherConfig, &launcher.LauncherConfig{
		Channels:      []launcher.ProjectChannel{},
		MCPServerPath: "/srv/index.js",
		AutoStart:     true,
	})

	for _, format := range []string{outputJSON, outputYAML, outputTOML} {
		var out bytes.Buffer
		require.NoError(t, runConfigShow(&out, s, format), format)
		assert.NotEmpty(t, out.String(), format)
	}

	var out bytes.Buffer
	err := runConfigShow(&out, s, "xml")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "invalid output format"))
}
