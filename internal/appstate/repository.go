// Package appstate persists per-user application state as JSON blobs in a
// namespaced key-value table, with optional expiry.
package appstate

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/creditgo/creditgo/internal/domain"
	"github.com/creditgo/creditgo/internal/utils"
)

// Repository provides key-value operations within one storage namespace.
type Repository struct {
	db        *sql.DB
	namespace string
	log       zerolog.Logger
	now       func() time.Time
}

// NewRepository creates a repository bound to namespace.
func NewRepository(db *sql.DB, namespace string, log zerolog.Logger) *Repository {
	return &Repository{
		db:        db,
		namespace: namespace,
		log:       log.With().Str("repo", "app_state").Str("namespace", namespace).Logger(),
		now:       time.Now,
	}
}

// Namespace returns the storage namespace this repository writes to
func (r *Repository) Namespace() string {
	return r.namespace
}

// Store saves data under key, replacing any previous value.
// A ttl of zero (NoExpiry) keeps the entry until it is deleted.
func (r *Repository) Store(key string, data interface{}, ttl time.Duration) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal data for %s: %w", key, err)
	}

	now := r.now()
	_, err = r.db.Exec(
		`INSERT OR REPLACE INTO app_state (namespace, key, data, updated_at, expires_at)
		 VALUES (?, ?, ?, ?, ?)`,
		r.namespace, key, string(jsonData), now.Unix(), expiresAt(now, ttl),
	)
	if err != nil {
		return fmt.Errorf("failed to store %s: %w", key, err)
	}

	return nil
}

// GetIfFresh returns data only if it has not expired.
// Returns nil, nil if the key doesn't exist or data is expired.
func (r *Repository) GetIfFresh(key string) (json.RawMessage, error) {
	var data string
	err := r.db.QueryRow(
		`SELECT data FROM app_state
		 WHERE namespace = ? AND key = ? AND (expires_at = 0 OR expires_at > ?)`,
		r.namespace, key, r.now().Unix(),
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}

	return json.RawMessage(data), nil
}

// Get returns data regardless of expiration status.
// Returns nil, nil if the key doesn't exist.
func (r *Repository) Get(key string) (json.RawMessage, error) {
	var data string
	err := r.db.QueryRow(
		"SELECT data FROM app_state WHERE namespace = ? AND key = ?",
		r.namespace, key,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}

	return json.RawMessage(data), nil
}

// Delete removes a specific entry. Deleting a missing key is not an error.
func (r *Repository) Delete(key string) error {
	_, err := r.db.Exec("DELETE FROM app_state WHERE namespace = ? AND key = ?", r.namespace, key)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// DeleteExpired removes expired entries in this namespace.
// Returns the number of rows deleted.
func (r *Repository) DeleteExpired() (int64, error) {
	done := utils.MeasureDBQuery("app_state_delete_expired", r.log)

	result, err := r.db.Exec(
		"DELETE FROM app_state WHERE namespace = ? AND expires_at > 0 AND expires_at <= ?",
		r.namespace, r.now().Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired state: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	done(deleted)
	return deleted, nil
}

// SaveState stores the full application state for a user
func (r *Repository) SaveState(userID string, state domain.AppState, ttl time.Duration) error {
	return r.Store(stateKey(userID), state, ttl)
}

// LoadState returns the stored state for a user, or nil if there is none
// or it has expired.
func (r *Repository) LoadState(userID string) (*domain.AppState, error) {
	raw, err := r.GetIfFresh(stateKey(userID))
	if err != nil || raw == nil {
		return nil, err
	}

	var state domain.AppState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("failed to decode state for %s: %w", userID, err)
	}

	return &state, nil
}

// DeleteState removes a user's stored state
func (r *Repository) DeleteState(userID string) error {
	return r.Delete(stateKey(userID))
}

func stateKey(userID string) string {
	return "user:" + userID
}
