// Package feed drives the shorts feed: cursor pagination, the single active
// entry, and the media sessions that follow it.
package feed

import (
	"context"
	"log/slog"
	"slices"

	"shorts_feed/internal/domain"
)

// State is the paginated sequence owned by the Container.
type State struct {
	// Entries are unique by ItemID, in arrival order.
	Entries []domain.FeedEntry
	// ActiveIndex is -1 while Entries is empty.
	ActiveIndex int
	// NextCursor is the ItemID of the last entry of the last non-empty page;
	// nil means start from the beginning.
	NextCursor *int64
	IsLoading  bool
	// HasMore turns false on the first empty page and never turns back.
	HasMore bool
}

func NewState() State {
	return State{ActiveIndex: -1, HasMore: true}
}

// IndexOf returns the position of itemID, or -1.
func (s State) IndexOf(itemID int64) int {
	for i := range s.Entries {
		if s.Entries[i].ItemID == itemID {
			return i
		}
	}
	return -1
}

// Loader proposes the next State for each page. It never mutates the State it
// is given.
type Loader struct {
	fetcher  PageFetcher
	pageSize int
	logger   *slog.Logger
}

func NewLoader(fetcher PageFetcher, pageSize int, logger *slog.Logger) *Loader {
	if pageSize <= 0 {
		pageSize = domain.PageSize
	}
	return &Loader{
		fetcher:  fetcher,
		pageSize: pageSize,
		logger:   logger.With("component", "loader"),
	}
}

// Begin marks a fetch as in flight. ok is false when a fetch is already running
// or the stream has ended.
func (l *Loader) Begin(s State) (next State, ok bool) {
	if s.IsLoading || !s.HasMore {
		return s, false
	}
	s.IsLoading = true
	return s, true
}

func (l *Loader) Fetch(ctx context.Context, cursor *int64) ([]domain.FeedEntry, error) {
	return l.fetcher.FetchPage(ctx, cursor, l.pageSize)
}

// Complete applies the outcome of a fetch started with Begin.
func (l *Loader) Complete(s State, page []domain.FeedEntry, err error) State {
	s.IsLoading = false

	if err != nil {
		l.logger.Warn("failed to fetch page", "cursor", s.NextCursor, "error", err)
		return s
	}

	if len(page) == 0 {
		s.HasMore = false
		l.logger.Debug("end of feed", "entries", len(s.Entries))
		return s
	}

	seen := make(map[int64]struct{}, len(s.Entries)+len(page))
	for i := range s.Entries {
		seen[s.Entries[i].ItemID] = struct{}{}
	}

	// Clip forces a fresh backing array so earlier States stay intact.
	entries := slices.Clip(s.Entries)
	dropped := 0
	for _, e := range page {
		if _, dup := seen[e.ItemID]; dup {
			dropped++
			continue
		}
		seen[e.ItemID] = struct{}{}
		entries = append(entries, e)
	}
	s.Entries = entries

	// The cursor follows the raw page so an all-duplicate page still advances.
	cursor := page[len(page)-1].ItemID
	s.NextCursor = &cursor

	l.logger.Debug("page applied",
		"received", len(page),
		"duplicates", dropped,
		"total", len(s.Entries),
		"next_cursor", cursor,
	)
	return s
}

// LoadMore fetches and applies one page synchronously.
func (l *Loader) LoadMore(ctx context.Context, s State) State {
	s, ok := l.Begin(s)
	if !ok {
		return s
	}
	page, err := l.Fetch(ctx, s.NextCursor)
	return l.Complete(s, page, err)
}
