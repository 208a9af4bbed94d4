package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/catalog/shell/config"
)

func Test_Load_WithoutPath_ReturnsDefaults(t *testing.T) {
	// arrange
	clearEnv(t)

	// act
	cfg, err := config.Load("")

	// assert
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, config.BackendJSONFile, cfg.Backend)
	assert.Equal(t, config.DBAdapterPGX, cfg.Postgres.Adapter)
}

func Test_Load_When_FileIsMissing_ReturnsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))

	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func Test_Load_ReadsYAMLOnTopOfDefaults(t *testing.T) {
	// arrange
	clearEnv(t)
	path := givenConfigFile(t, `
data_dir: /var/lib/library
strict_decoding: true
postgres:
  adapter: sqlx
log:
  level: debug
  format: json
`)

	// act
	cfg, err := config.Load(path)

	// assert
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/library", cfg.DataDir)
	assert.True(t, cfg.StrictDecoding)
	assert.Equal(t, config.DBAdapterSQLX, cfg.Postgres.Adapter)
	assert.Equal(t, config.Default().Postgres.DSN, cfg.Postgres.DSN, "unset keys keep their default")
	assert.Equal(t, config.BackendJSONFile, cfg.Backend)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, config.LogFormatJSON, cfg.Log.Format)
}

func Test_Load_EnvironmentOverridesFile(t *testing.T) {
	// arrange
	clearEnv(t)
	path := givenConfigFile(t, "data_dir: from-file\n")
	t.Setenv(config.EnvDataDir, "from-env")
	t.Setenv(config.EnvBackend, "POSTGRES")
	t.Setenv(config.EnvDBAdapter, "sql")
	t.Setenv(config.EnvPostgresDSN, "postgres://u:p@db:5432/lib")
	t.Setenv(config.EnvLogLevel, "warn")

	// act
	cfg, err := config.Load(path)

	// assert
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.DataDir)
	assert.Equal(t, config.BackendPostgres, cfg.Backend)
	assert.Equal(t, config.DBAdapterSQL, cfg.Postgres.Adapter)
	assert.Equal(t, "postgres://u:p@db:5432/lib", cfg.Postgres.DSN)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func Test_Load_When_YAMLIsMalformed_ShouldFail(t *testing.T) {
	clearEnv(t)
	path := givenConfigFile(t, "data_dir: [unclosed\n")

	_, err := config.Load(path)

	assert.ErrorIs(t, err, config.ErrReadingConfigFailed)
}

func Test_Load_When_PathIsADirectory_ShouldFail(t *testing.T) {
	clearEnv(t)

	_, err := config.Load(t.TempDir())

	assert.ErrorIs(t, err, config.ErrReadingConfigFailed)
}

func Test_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(cfg *config.Config)
		wantErr error
	}{
		{name: "defaults", mutate: func(*config.Config) {}},
		{name: "postgres with pgx", mutate: func(cfg *config.Config) { cfg.Backend = config.BackendPostgres }},
		{
			name:    "unknown backend",
			mutate:  func(cfg *config.Config) { cfg.Backend = "sqlite" },
			wantErr: config.ErrUnknownBackend,
		},
		{
			name: "unknown adapter",
			mutate: func(cfg *config.Config) {
				cfg.Backend = config.BackendPostgres
				cfg.Postgres.Adapter = "gorm"
			},
			wantErr: config.ErrUnknownDBAdapter,
		},
		{
			name:   "adapter is ignored for jsonfile",
			mutate: func(cfg *config.Config) { cfg.Postgres.Adapter = "gorm" },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)

			err := cfg.Validate()

			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func givenConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "library.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600), "error in arranging test data")

	return path
}

// clearEnv blanks every override so the developer's environment cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		config.EnvDataDir,
		config.EnvBackend,
		config.EnvDBAdapter,
		config.EnvPostgresDSN,
		config.EnvLogLevel,
	} {
		t.Setenv(key, "")
	}
}
