package engagement

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// LikeState is what the like button renders for one item.
type LikeState struct {
	Count      int
	Liked      bool
	Processing bool
}

// Likes caches like counts and the viewer's own likes, keyed by item.
type Likes struct {
	mu         sync.Mutex
	api        LikeAPI
	identity   Identity
	counts     map[int64]int
	liked      map[int64]bool
	mineLoaded bool
	processing map[int64]bool
	logger     *slog.Logger
}

func NewLikes(api LikeAPI, identity Identity, logger *slog.Logger) *Likes {
	return &Likes{
		api:        api,
		identity:   identity,
		counts:     make(map[int64]int),
		liked:      make(map[int64]bool),
		processing: make(map[int64]bool),
		logger:     logger.With("component", "likes"),
	}
}

// Refresh reloads the count for itemID and, once per login, the viewer's likes.
func (l *Likes) Refresh(ctx context.Context, itemID int64) error {
	count, err := l.api.LikeCount(ctx, itemID)
	if err != nil {
		return fmt.Errorf("refresh likes: %w", err)
	}

	l.mu.Lock()
	l.counts[itemID] = count
	needMine := !l.mineLoaded
	l.mu.Unlock()

	if _, ok := l.identity.Current(); !ok || !needMine {
		return nil
	}

	ids, err := l.api.MyLikes(ctx)
	if err != nil {
		return fmt.Errorf("refresh my likes: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.liked = make(map[int64]bool, len(ids))
	for _, id := range ids {
		l.liked[id] = true
	}
	l.mineLoaded = true
	return nil
}

func (l *Likes) State(itemID int64) LikeState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return LikeState{
		Count:      l.counts[itemID],
		Liked:      l.liked[itemID],
		Processing: l.processing[itemID],
	}
}

// Toggle likes or unlikes itemID. Validation errors are returned before any
// request is made; a toggle already in flight for the item is a no-op.
func (l *Likes) Toggle(ctx context.Context, itemID, sellerID int64) error {
	user, ok := l.identity.Current()
	if err := CheckLike(user, ok, sellerID); err != nil {
		return err
	}

	l.mu.Lock()
	if l.processing[itemID] {
		l.mu.Unlock()
		return nil
	}
	l.processing[itemID] = true
	wasLiked := l.liked[itemID]
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		delete(l.processing, itemID)
		l.mu.Unlock()
	}()

	var err error
	if wasLiked {
		err = l.api.Unlike(ctx, itemID)
	} else {
		err = l.api.Like(ctx, itemID)
	}
	if err != nil {
		return fmt.Errorf("toggle like: %w", err)
	}

	l.mu.Lock()
	l.liked[itemID] = !wasLiked
	if wasLiked {
		l.counts[itemID]--
	} else {
		l.counts[itemID]++
	}
	l.mu.Unlock()

	if count, err := l.api.LikeCount(ctx, itemID); err == nil {
		l.mu.Lock()
		l.counts[itemID] = count
		l.mu.Unlock()
	} else {
		l.logger.Debug("like count refresh failed", "item_id", itemID, "error", err)
	}

	return nil
}

// Reset forgets the viewer's own likes, e.g. after logout.
func (l *Likes) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.liked = make(map[int64]bool)
	l.mineLoaded = false
}
