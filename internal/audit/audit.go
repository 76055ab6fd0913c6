// Package audit records a best-effort trail of ledger mutations.
package audit

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aelwazan-Hawx/Clarity/internal/logger"
)

type Entry struct {
	UserID     string
	Action     string // created | updated | deleted
	EntityType string // transaction | category | payment_method | budget | opening_balance | settings
	EntityID   string
}

// Write records an audit entry. The trail is advisory: a failure is
// logged and swallowed so it never blocks the mutation it describes.
func Write(ctx context.Context, db *pgxpool.Pool, e Entry) {
	if db == nil {
		return
	}

	_, err := db.Exec(ctx, `
INSERT INTO audit_log (user_id, action, entity_type, entity_id)
VALUES ($1::uuid, $2, $3, $4)
`, e.UserID, e.Action, e.EntityType, e.EntityID)
	if err != nil {
		logger.Log.Warn().Err(err).
			Str("action", e.Action).
			Str("entity_type", e.EntityType).
			Msg("audit write failed")
	}
}
