package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"shorts_feed/internal/domain"
)

type ImpressionStore struct {
	db *sqlx.DB
}

func NewImpressionStore(db *sqlx.DB) *ImpressionStore {
	return &ImpressionStore{db: db}
}

// Insert stores one activation. Inserting an event id twice leaves the first
// row in place, returns its id and reports inserted=false. No statement fails
// on a duplicate, so the surrounding transaction stays usable.
func (s *ImpressionStore) Insert(ctx context.Context, activation *domain.Activation) (int64, bool, error) {
	query := `
		INSERT INTO impressions (event_id, viewer_id, item_id, feed_index, viewed_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (event_id) DO NOTHING
		RETURNING id`

	exec := GetExecutor(ctx, s.db)

	var id int64
	err := sqlx.GetContext(ctx, exec, &id, query,
		activation.EventID,
		activation.ViewerID,
		activation.ItemID,
		activation.Index,
		activation.At,
	)
	if err == nil {
		return id, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, false, fmt.Errorf("insert impression %s: %w", activation.EventID, err)
	}

	err = sqlx.GetContext(ctx, exec, &id,
		"SELECT id FROM impressions WHERE event_id = $1", activation.EventID)
	if err != nil {
		return 0, false, fmt.Errorf("get impression %s: %w", activation.EventID, err)
	}
	return id, false, nil
}

func (s *ImpressionStore) CountByViewer(ctx context.Context, viewerID string) (int64, error) {
	var count int64
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &count,
		"SELECT COUNT(*) FROM impressions WHERE viewer_id = $1", viewerID)
	if err != nil {
		return 0, fmt.Errorf("count impressions: %w", err)
	}
	return count, nil
}
