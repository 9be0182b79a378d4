package domain

import "time"

// Activation is emitted every time an entry becomes the active one.
type Activation struct {
	EventID  string    `json:"event_id"`
	ViewerID string    `json:"viewer_id"`
	ItemID   int64     `json:"item_id"`
	Index    int       `json:"index"`
	At       time.Time `json:"at"`
}

type ViewState struct {
	ID           int64     `db:"id"`
	ViewerID     string    `db:"viewer_id"`
	LastItemID   int64     `db:"last_item_id"`
	TotalViews   int64     `db:"total_views"`
	LastViewedAt time.Time `db:"last_viewed_at"`
}

// ImpressionStats holds counters for the recorder.
type ImpressionStats struct {
	Recorded   int
	Published  int
	Duplicates int
	Errors     int
}
