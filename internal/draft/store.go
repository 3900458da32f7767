// Package draft persists the in-progress report wizard state so it survives
// page reloads. Persistence is best-effort: a citizen never sees a draft
// storage error, they just lose the convenience.
package draft

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mavrin/citizen-report-portal/internal/models"
	"github.com/sirupsen/logrus"
)

const draftKeyPrefix = "crime_report_draft"

// KV is the durable key-value backend a Store writes to. Production uses
// Redis; tests substitute an in-memory map.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
}

// ErrNotFound is returned by KV.Get when the key does not exist.
var ErrNotFound = fmt.Errorf("draft: key not found")

// Store serializes drafts to an injected KV backend, one key per citizen.
type Store struct {
	kv     KV
	logger *logrus.Logger
}

func NewStore(kv KV, logger *logrus.Logger) *Store {
	return &Store{kv: kv, logger: logger}
}

func draftKey(userID string) string {
	return fmt.Sprintf("%s:%s", draftKeyPrefix, userID)
}

// Save writes the draft, replacing any prior value. All failures are
// swallowed: every form change triggers a save and none of them may disturb
// the citizen.
func (s *Store) Save(ctx context.Context, userID string, d *models.Draft) {
	payload, err := json.Marshal(d)
	if err != nil {
		s.logger.WithError(err).Debug("Failed to marshal draft, skipping save")
		return
	}
	if err := s.kv.Set(ctx, draftKey(userID), payload); err != nil {
		s.logger.WithError(err).Debug("Failed to persist draft, skipping save")
	}
}

// Load returns the stored draft, or nil when there is none. A missing key,
// a malformed value and a failing backend all read as "no draft".
func (s *Store) Load(ctx context.Context, userID string) *models.Draft {
	payload, err := s.kv.Get(ctx, draftKey(userID))
	if err != nil {
		if err != ErrNotFound {
			s.logger.WithError(err).Debug("Failed to read draft, treating as absent")
		}
		return nil
	}
	d := &models.Draft{}
	if err := json.Unmarshal(payload, d); err != nil {
		s.logger.WithError(err).Debug("Stored draft is malformed, treating as absent")
		return nil
	}
	return d
}

// Clear removes the stored draft. Called only after a confirmed successful
// submission or an explicit discard.
func (s *Store) Clear(ctx context.Context, userID string) {
	if err := s.kv.Del(ctx, draftKey(userID)); err != nil {
		s.logger.WithError(err).Debug("Failed to clear draft")
	}
}
