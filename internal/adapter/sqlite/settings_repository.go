package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

const settingsKey = "app"

// SettingsRepository implements port.SettingsRepository on a SQLite
// database opened with the modernc.org/sqlite driver.
type SettingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository returns a new repository instance. The settings
// table must exist.
func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Load returns the stored document, or nil when none has been saved.
func (r *SettingsRepository) Load(ctx context.Context) (json.RawMessage, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, settingsKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return json.RawMessage(value), nil
}

// Save replaces the stored document.
func (r *SettingsRepository) Save(ctx context.Context, doc json.RawMessage) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO settings (key, value, updated_at) VALUES (?, ?, datetime('now'))`,
		settingsKey, string(doc))
	return err
}
