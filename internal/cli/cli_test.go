package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trinoise/noise"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "trinoise", cmd.Use)
	assert.Contains(t, cmd.Long, "identity map")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"signature", "stats", "render"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err, "command %s should exist", name)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestSignature_TextOutput(t *testing.T) {
	out, err := execute(t, "signature", "--base", "3")
	require.NoError(t, err)
	assert.Equal(t, "120101201012010\n", out)
}

func TestSignature_Limit(t *testing.T) {
	out, err := execute(t, "signature", "--base", "3", "--limit", "5")
	require.NoError(t, err)
	assert.Equal(t, "12010\n", out)
}

func TestSignature_JSONOutput(t *testing.T) {
	out, err := execute(t, "signature", "--base", "2", "--format", "json")
	require.NoError(t, err)

	var res struct {
		Base    int    `json:"base"`
		Runs    int    `json:"runs"`
		Period  uint64 `json:"period"`
		Symbols []int  `json:"symbols"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 2, res.Base)
	assert.Equal(t, 4, res.Runs)
	assert.Equal(t, uint64(4), res.Period)
	assert.Equal(t, []int{0, 0, 0, 0}, res.Symbols)
}

func TestSignature_DomainErrors(t *testing.T) {
	_, err := execute(t, "signature", "--base", "1")
	assert.ErrorIs(t, err, noise.ErrBaseTooSmall)

	_, err = execute(t, "signature", "--base", "16")
	assert.ErrorIs(t, err, noise.ErrBaseOverflow)
}

func TestStats_TextOutput(t *testing.T) {
	out, err := execute(t, "stats", "--base", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "zero     6")
	assert.Contains(t, out, "low      6")
	assert.Contains(t, out, "high     3")
	assert.Contains(t, out, "balanced true")
	assert.Contains(t, out, "ratio    2.0000")
}

func TestStats_Base2OmitsRatio(t *testing.T) {
	out, err := execute(t, "stats", "--base", "2", "--format", "json")
	require.NoError(t, err)
	assert.NotContains(t, out, "ratio", "no High symbols, no ratio")
}

func TestRender_Dimensions(t *testing.T) {
	out, err := execute(t, "render", "--base", "3", "--width", "5", "--height", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Len(t, line, 5)
	}
	// First row reads the wheel from offset 0: symbols 1,2,0,1,0.
	assert.Equal(t, ".# . ", lines[0])
}

func TestRender_RejectsEmptyArea(t *testing.T) {
	_, err := execute(t, "render", "--base", "3", "--width", "0", "--height", "4")
	assert.Error(t, err)
}

func TestInvalidFormatRejected(t *testing.T) {
	_, err := execute(t, "signature", "--base", "3", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestConfigFile_SuppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trinoise.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: json\nstrict: true\n"), 0o600))

	out, err := execute(t, "signature", "--base", "2", "--config", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "{"), "config should switch output to JSON")
}

func TestConfigFile_FlagsWin(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trinoise.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: json\n"), 0o600))

	out, err := execute(t, "signature", "--base", "3", "--config", path, "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, "120101201012010\n", out)
}

func TestConfigFile_Missing(t *testing.T) {
	_, err := execute(t, "signature", "--config", "/nonexistent/trinoise.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}
