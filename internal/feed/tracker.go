package feed

import "shorts_feed/internal/domain"

// DefaultPrefetchThreshold is how close to the end of the loaded sequence the
// active index may get before the next page is requested.
const DefaultPrefetchThreshold = 3

// Tracker maps the focus signal to the active index.
type Tracker struct {
	threshold int
}

func NewTracker(threshold int) Tracker {
	if threshold <= 0 {
		threshold = DefaultPrefetchThreshold
	}
	return Tracker{threshold: threshold}
}

// Focus makes index active. changed is false when index is already active or
// outside the loaded sequence.
func (t Tracker) Focus(s State, index int) (next State, changed bool) {
	if index < 0 || index >= len(s.Entries) || index == s.ActiveIndex {
		return s, false
	}
	s.ActiveIndex = index
	return s, true
}

func (t Tracker) ShouldPrefetch(s State) bool {
	if s.ActiveIndex < 0 {
		return false
	}
	return s.HasMore && !s.IsLoading && len(s.Entries)-s.ActiveIndex <= t.threshold
}

// DeepLink opens the feed on a given item, resolved once against the first
// successfully loaded sequence.
type DeepLink struct {
	target   *int64
	resolved bool
}

func NewDeepLink(target *int64) *DeepLink {
	return &DeepLink{target: target}
}

// Resolve returns the starting index. ok is true only on the first call with a
// non-empty sequence; a missing target falls back to 0.
func (d *DeepLink) Resolve(entries []domain.FeedEntry) (index int, ok bool) {
	if d.resolved || len(entries) == 0 {
		return 0, false
	}
	d.resolved = true

	if d.target == nil {
		return 0, true
	}
	for i := range entries {
		if entries[i].ItemID == *d.target {
			return i, true
		}
	}
	return 0, true
}
