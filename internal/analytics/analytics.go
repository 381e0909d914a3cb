package analytics

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"

	"github.com/google/uuid"
)

// Log stores one event row. Props go in as JSONB.
func Log(ctx context.Context, dbx *sql.DB, event, userID string, props map[string]any) error {
	raw, err := json.Marshal(props)
	if err != nil {
		return err
	}

	_, err = dbx.ExecContext(ctx, `
		INSERT INTO analytics_events (id, event, user_id, props, created_at)
		VALUES ($1, $2, $3, $4, now())
	`, uuid.NewString(), event, userID, raw)
	return err
}

// Recorder is the best-effort sink handed to the generator. Analytics
// must never fail a generation request.
type Recorder struct {
	DB *sql.DB
}

func (r *Recorder) Record(ctx context.Context, event, userID string, props map[string]any) {
	if err := Log(ctx, r.DB, event, userID, props); err != nil {
		log.Printf("[WARN] analytics log failed event=%s: %v", event, err)
	}
}
