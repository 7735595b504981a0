package orbyte

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVars_Blank(t *testing.T) {
	t.Parallel()
	for _, raw := range []string{"", "  ", "\t\n"} {
		vars, err := ParseVars(raw)
		require.NoError(t, err)
		assert.Empty(t, vars)
		assert.NotNil(t, vars)
	}
}

func TestParseVars_InlineJSON(t *testing.T) {
	t.Parallel()
	vars, err := ParseVars(`{"name": "World", "count": 3}`)
	require.NoError(t, err)
	assert.Equal(t, "World", vars["name"])
	assert.Equal(t, 3, vars["count"])
}

func TestParseVars_InlineYAML(t *testing.T) {
	t.Parallel()
	vars, err := ParseVars("name: World\ncount: 3")
	require.NoError(t, err)
	assert.Equal(t, "World", vars["name"])
	assert.Equal(t, 3, vars["count"])
}

func TestParseVars_File(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	jsonFile := filepath.Join(dir, "vars.json")
	require.NoError(t, os.WriteFile(jsonFile, []byte(`{"name": "World"}`), 0o600))
	vars, err := ParseVars("@" + jsonFile)
	require.NoError(t, err)
	assert.Equal(t, "World", vars["name"])

	yamlFile := filepath.Join(dir, "vars.yaml")
	require.NoError(t, os.WriteFile(yamlFile, []byte("name: World"), 0o600))
	vars, err = ParseVars("@" + yamlFile)
	require.NoError(t, err)
	assert.Equal(t, "World", vars["name"])

	tomlFile := filepath.Join(dir, "vars.toml")
	require.NoError(t, os.WriteFile(tomlFile, []byte(`name = "World"`), 0o600))
	vars, err = ParseVars("@" + tomlFile)
	require.NoError(t, err)
	assert.Equal(t, "World", vars["name"])
}

func TestParseVars_FileNotFound(t *testing.T) {
	t.Parallel()
	_, err := ParseVars("@" + filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestParseVars_Malformed(t *testing.T) {
	t.Parallel()
	for _, raw := range []string{
		`{"name": `,       // truncated JSON
		"[1, 2, 3]",       // a list, not a mapping
		"just some words", // a bare scalar, not a mapping
	} {
		_, err := ParseVars(raw)
		require.Error(t, err, "input %q", raw)
		assert.ErrorIs(t, err, ErrConfig)
	}
}

func TestParseVars_MalformedFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("name = "), 0o600))
	_, err := ParseVars("@" + bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfig)
}
