package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeConfigFile(t, `{"crypto":{"secret":"file-passphrase"}}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "file-passphrase", cfg.Crypto.Secret)
	// The parsed file never re-points to another file
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	path := writeConfigFile(t, `{}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Empty(t, cfg.Crypto.Secret)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "does-not-exist.json"))
	assert.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeConfigFile(t, `{"crypto":`)

	_, err := parseJSON(path)
	assert.Error(t, err)
}
