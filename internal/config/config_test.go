package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/modelsql/internal/adapter"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantErr   bool
		errSubstr string
	}{
		{
			name: "defaults are valid",
			cfg:  Config{CatalogPath: DefaultCatalogPath, Output: DefaultOutput},
		},
		{
			name:      "invalid output",
			cfg:       Config{Output: "xml"},
			wantErr:   true,
			errSubstr: "invalid output format",
		},
		{
			name: "valid duckdb target",
			cfg:  Config{Output: "table", Target: &adapter.Config{Type: "duckdb"}},
		},
		{
			name: "target type is case insensitive",
			cfg:  Config{Output: "json", Target: &adapter.Config{Type: "DuckDB"}},
		},
		{
			name: "empty target type is allowed",
			cfg:  Config{Output: "csv", Target: &adapter.Config{}},
		},
		{
			name:      "unknown target type",
			cfg:       Config{Output: "table", Target: &adapter.Config{Type: "mysql"}},
			wantErr:   true,
			errSubstr: "unknown adapter type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				if tt.errSubstr != "" {
					assert.Contains(t, err.Error(), tt.errSubstr)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err, "explicit missing config file should fail")

	// No config file at all falls back to defaults.
	chdir(t, t.TempDir())
	cfg, err = Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultCatalogPath, cfg.CatalogPath)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.False(t, cfg.Verbose)
	assert.Nil(t, cfg.Target)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `
catalog_path: catalog/models.db
output: json
target:
  type: duckdb
  path: warehouse.duckdb
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(yaml), 0o644))
	chdir(t, dir)

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "catalog/models.db", cfg.CatalogPath)
	assert.Equal(t, "json", cfg.Output)
	require.NotNil(t, cfg.Target)
	assert.Equal(t, "duckdb", cfg.Target.Type)
	assert.Equal(t, "warehouse.duckdb", cfg.Target.Path)
}

func TestLoadConfigFileDiscoveredUpward(t *testing.T) {
	root := t.TempDir()
	yaml := "output: csv\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, ConfigFileName), []byte(yaml), 0o644))

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	chdir(t, nested)

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "csv", cfg.Output)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("output: json\n"), 0o644))
	chdir(t, dir)

	t.Setenv("MODELSQL_OUTPUT", "csv")
	t.Setenv("MODELSQL_TARGET_TYPE", "postgres")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "csv", cfg.Output)
	require.NotNil(t, cfg.Target)
	assert.Equal(t, "postgres", cfg.Target.Type)
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("MODELSQL_CATALOG_PATH", "env.db")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("catalog", "", "")
	flags.String("output", "", "")
	require.NoError(t, flags.Parse([]string{"--catalog", "flag.db"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "flag.db", cfg.CatalogPath, "--catalog maps to catalog_path and wins over env")
	assert.Equal(t, DefaultOutput, cfg.Output, "unset flags do not override")
}

// chdir moves into dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
