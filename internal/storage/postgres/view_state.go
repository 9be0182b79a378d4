package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"shorts_feed/internal/domain"
)

type ViewStateStore struct {
	db *sqlx.DB
}

func NewViewStateStore(db *sqlx.DB) *ViewStateStore {
	return &ViewStateStore{db: db}
}

func (s *ViewStateStore) Get(ctx context.Context, viewerID string) (*domain.ViewState, error) {
	var state domain.ViewState
	query := `
		SELECT id, viewer_id, last_item_id, total_views, last_viewed_at
		FROM view_state
		WHERE viewer_id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &state, query, viewerID)
	if errors.Is(err, sql.ErrNoRows) {
		// Return empty state for new viewers
		return &domain.ViewState{ViewerID: viewerID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *ViewStateStore) Update(ctx context.Context, state *domain.ViewState) error {
	query := `
		INSERT INTO view_state (viewer_id, last_item_id, total_views, last_viewed_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (viewer_id) DO UPDATE SET
			last_item_id = EXCLUDED.last_item_id,
			total_views = EXCLUDED.total_views,
			last_viewed_at = EXCLUDED.last_viewed_at`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		state.ViewerID,
		state.LastItemID,
		state.TotalViews,
		state.LastViewedAt,
	)
	return err
}
