package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// settingsKey is the single row holding the settings document.
const settingsKey = "app"

// SettingsRepository implements port.SettingsRepository using pgxpool for
// PostgreSQL. The document is stored verbatim as text.
type SettingsRepository struct {
	pool *pgxpool.Pool
}

// NewSettingsRepository returns a new repository instance.
func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

// Load returns the stored document, or nil when none has been saved.
func (r *SettingsRepository) Load(ctx context.Context) (json.RawMessage, error) {
	var value string
	err := r.pool.QueryRow(ctx, `SELECT value FROM settings WHERE key = $1`, settingsKey).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return json.RawMessage(value), nil
}

// Save replaces the stored document.
func (r *SettingsRepository) Save(ctx context.Context, doc json.RawMessage) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO settings (key, value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		settingsKey, string(doc))
	return err
}
