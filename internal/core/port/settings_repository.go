package port

import (
	"context"
	"encoding/json"
)

// SettingsRepository persists the settings document verbatim.
// Implementations must be safe for concurrent use.
type SettingsRepository interface {
	// Load returns the stored document, or nil without error when nothing
	// has been stored yet.
	Load(ctx context.Context) (json.RawMessage, error)
	// Save replaces the stored document.
	Save(ctx context.Context, doc json.RawMessage) error
}
