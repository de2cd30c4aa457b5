package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateHome points the home directory at a temp dir so a developer's real
// ~/.odcheck/config.json cannot leak into tests.
func isolateHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	isolateHome(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "dataproduct.yaml", cfg.ProductFile)
	assert.Equal(t, "contracts", cfg.ContractsDir)
	assert.Equal(t, "", cfg.SchemaDir)
	assert.Equal(t, "localhost:8311", cfg.ListenAddr)
	assert.True(t, cfg.ShowProgress)
}

func TestLoad_LocalConfigOverridesDefaults(t *testing.T) {
	isolateHome(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{"contracts_dir": "agreements", "show_progress": false}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "agreements", cfg.ContractsDir)
	assert.False(t, cfg.ShowProgress)
	assert.Equal(t, "dataproduct.yaml", cfg.ProductFile, "untouched keys keep defaults")
}

func TestLoad_EnvOverridesLocalConfig(t *testing.T) {
	isolateHome(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"contracts_dir": "agreements"}`), 0o644))
	t.Setenv("ODCHECK_CONTRACTS_DIR", "env-contracts")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-contracts", cfg.ContractsDir)
}

func TestLoad_GlobalConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	globalDir := filepath.Join(home, ".odcheck")
	require.NoError(t, os.MkdirAll(globalDir, 0o755))
	content := `{"listen_addr": "localhost:9999"}`
	require.NoError(t, os.WriteFile(filepath.Join(globalDir, "config.json"), []byte(content), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "localhost:9999", cfg.ListenAddr)
}

func TestLoad_MissingLocalConfigIsIgnored(t *testing.T) {
	isolateHome(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	require.NoError(t, err)
	assert.Equal(t, "contracts", cfg.ContractsDir)
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := map[string]string{
		"empty product file":  `{"product_file": ""}`,
		"empty contracts dir": `{"contracts_dir": ""}`,
		"bad listen addr":     `{"listen_addr": "no-port-here"}`,
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			isolateHome(t)
			path := filepath.Join(t.TempDir(), "config.json")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config validation failed")
		})
	}
}

func TestLoad_ExpandsHomePaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"schema_dir": "~/schemas"}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "schemas"), cfg.SchemaDir)
}

func TestGetDefaults_CoversAllKoanfKeys(t *testing.T) {
	defaults := GetDefaults()
	for _, key := range []string{"product_file", "contracts_dir", "schema_dir", "listen_addr", "show_progress"} {
		assert.Contains(t, defaults, key)
	}
}
