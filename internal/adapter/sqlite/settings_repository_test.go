package sqlite

import (
	"context"
	"encoding/json"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adperf/internal/config/configs"
	"adperf/internal/db"
)

func newTestRepository(t *testing.T) *SettingsRepository {
	t.Helper()
	conn, err := db.OpenSQLite(configs.SQLite{Path: filepath.Join(t.TempDir(), "data", "settings.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, db.MigrateSQLite(conn))
	return NewSettingsRepository(conn)
}

func TestLoadEmpty(t *testing.T) {
	repo := newTestRepository(t)

	doc, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestSaveReplacesDocument(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, json.RawMessage(`{"employees":[]}`)))
	require.NoError(t, repo.Save(ctx, json.RawMessage(`{"employees":[{"acronym":"HM"}],"unknown":true}`)))

	doc, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"employees":[{"acronym":"HM"}],"unknown":true}`, string(doc))

	var rows int
	require.NoError(t, repo.db.QueryRow(`SELECT COUNT(*) FROM settings`).Scan(&rows))
	assert.Equal(t, 1, rows)
}

func TestConcurrentSaves(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.Save(ctx, json.RawMessage(`{"periods":["P1"]}`)))
		}()
	}
	wg.Wait()

	doc, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"periods":["P1"]}`, string(doc))
}

func TestMigrateTwice(t *testing.T) {
	repo := newTestRepository(t)
	assert.NoError(t, db.MigrateSQLite(repo.db))
}
