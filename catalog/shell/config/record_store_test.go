package config_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/catalog/shell/config"
	"github.com/AntonStoeckl/library-catalog-go/recordstore"
)

func Test_NewRecordStore_JSONFile_StoresInDataDir(t *testing.T) {
	// arrange
	ctx := context.Background()
	cfg := config.Default()
	cfg.DataDir = t.TempDir()

	// act
	store, closeStore, err := config.NewRecordStore(ctx, cfg, nil, nil)
	require.NoError(t, err)
	defer closeStore()

	saveErr := store.Save(ctx, recordstore.Books, recordstore.Documents{{"item_id": "100000000000001"}})
	docs, loadErr := store.Load(ctx, recordstore.Books)

	// assert
	require.NoError(t, saveErr)
	require.NoError(t, loadErr)
	assert.Len(t, docs, 1)
	assert.FileExists(t, filepath.Join(cfg.DataDir, "books.json"))
}

func Test_NewRecordStore_JSONFile_WithEmptyDataDir_ShouldFail(t *testing.T) {
	cfg := config.Default()
	cfg.DataDir = ""

	_, closeStore, err := config.NewRecordStore(context.Background(), cfg, nil, nil)

	assert.ErrorIs(t, err, recordstore.ErrEmptyDataDir)
	assert.NotNil(t, closeStore)
}

func Test_NewRecordStore_WithUnknownBackend_ShouldFail(t *testing.T) {
	cfg := config.Default()
	cfg.Backend = "sqlite"

	_, _, err := config.NewRecordStore(context.Background(), cfg, nil, nil)

	assert.ErrorIs(t, err, config.ErrUnknownBackend)
}

func Test_NewRecordStore_Postgres_WithInvalidDSN_ShouldFail(t *testing.T) {
	cfg := config.Default()
	cfg.Backend = config.BackendPostgres
	cfg.Postgres.DSN = "postgres://bad dsn with spaces"

	_, closeStore, err := config.NewRecordStore(context.Background(), cfg, nil, nil)

	assert.Error(t, err)
	assert.NotPanics(t, closeStore)
}

func Test_PostgresPGXPoolConfig_AppliesPoolSettings(t *testing.T) {
	// act
	dbConfig, err := config.PostgresPGXPoolConfig(config.Default().Postgres.DSN)

	// assert
	require.NoError(t, err)
	assert.Equal(t, int32(8), dbConfig.MaxConns)
	assert.Equal(t, int32(2), dbConfig.MinConns)
	assert.Equal(t, time.Hour, dbConfig.MaxConnLifetime)
	assert.Equal(t, 5*time.Minute, dbConfig.MaxConnIdleTime)
	assert.Equal(t, 5*time.Second, dbConfig.ConnConfig.ConnectTimeout)
	assert.Equal(t, "library", dbConfig.ConnConfig.Database)
}
