package feed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"shorts_feed/internal/domain"
	"shorts_feed/internal/engagement"
	"shorts_feed/internal/media"
)

// DefaultMountRadius is how many positions on each side of the active entry
// keep their players open.
const DefaultMountRadius = 2

var ErrClosed = errors.New("feed container closed")

type Config struct {
	PageSize          int
	PrefetchThreshold int
	// MountRadius bounds the mounted sessions to [active-R, active+R]. A
	// negative radius mounts every loaded entry.
	MountRadius      int
	AutoplayInterval time.Duration
	InitialItemID    *int64
	ViewerID         string
	StartMuted       bool
}

func DefaultConfig() Config {
	return Config{
		PageSize:          domain.PageSize,
		PrefetchThreshold: DefaultPrefetchThreshold,
		MountRadius:       DefaultMountRadius,
		AutoplayInterval:  DefaultAutoplayInterval,
		ViewerID:          "anonymous",
		StartMuted:        true,
	}
}

// Deps are the collaborators of a Container. Pages, Music, Comments and Likes
// are required; the rest may be nil.
type Deps struct {
	Pages    PageFetcher
	Music    MusicResolver
	Comments CommentAPI
	Likes    LikeToggler
	Identity Identity
	Players  media.PlayerFactory
	Sink     ActivationSink
	Notifier Notifier
	Now      func() time.Time
}

// Container owns the feed sequence, the active index and the global mute
// flag, and drives one Session per reachable entry.
//
// Every exported method is safe for concurrent use. Network work runs on
// goroutines owned by the Container; results are applied under the same lock
// as user input, so state changes are serialized like events on a single loop.
type Container struct {
	cfg      Config
	deps     Deps
	loader   *Loader
	tracker  Tracker
	deepLink *DeepLink
	logger   *slog.Logger

	mu       sync.Mutex
	state    State
	muted    bool
	sessions map[int64]*Session
	started  bool
	closed   bool

	ctx       context.Context
	cancel    context.CancelFunc
	stopAfter func() bool
	wg        sync.WaitGroup
}

func NewContainer(cfg Config, deps Deps, logger *slog.Logger) *Container {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	logger = logger.With("component", "feed")

	ctx, cancel := context.WithCancel(context.Background())
	return &Container{
		cfg:      cfg,
		deps:     deps,
		loader:   NewLoader(deps.Pages, cfg.PageSize, logger),
		tracker:  NewTracker(cfg.PrefetchThreshold),
		deepLink: NewDeepLink(cfg.InitialItemID),
		logger:   logger,
		state:    NewState(),
		muted:    cfg.StartMuted,
		sessions: make(map[int64]*Session),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start issues the initial page load. Cancelling ctx aborts in-flight work;
// Close must still be called to release players.
func (c *Container) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started || c.closed {
		return
	}
	c.started = true
	c.stopAfter = context.AfterFunc(ctx, c.cancel)

	c.logger.Info("feed started",
		"page_size", c.loader.pageSize,
		"mount_radius", c.cfg.MountRadius,
		"initial_item_id", c.cfg.InitialItemID,
	)
	c.requestMore()
}

// Close releases every player and waits for background work to finish.
// Results still in flight are dropped.
func (c *Container) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.cancel()
	if c.stopAfter != nil {
		c.stopAfter()
	}
	for _, s := range c.sessions {
		s.unmount()
	}
	c.mu.Unlock()

	c.wg.Wait()
	c.logger.Info("feed closed")
}

// Wait blocks until no background work is in flight.
func (c *Container) Wait() {
	c.wg.Wait()
}

// Focus reports the index the viewer is looking at. Focusing the active index
// again is a no-op. An index outside the loaded entries fails with
// domain.ErrUnknownEntry.
func (c *Container) Focus(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if index < 0 || index >= len(c.state.Entries) {
		return fmt.Errorf("focus %d: %w", index, domain.ErrUnknownEntry)
	}
	if !c.setActive(index) {
		return nil
	}
	if c.tracker.ShouldPrefetch(c.state) {
		c.requestMore()
	}
	return nil
}

// LoadMore requests the next page on explicit user demand, for example after
// the initial load failed and there is nothing to focus.
func (c *Container) LoadMore() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || !c.started {
		return
	}
	c.requestMore()
}

// ToggleMute flips the global mute flag and returns the new value.
func (c *Container) ToggleMute() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.muted = !c.muted
	for _, s := range c.sessions {
		s.setMuted(c.muted)
	}
	c.logger.Debug("mute toggled", "muted", c.muted)
	return c.muted
}

func (c *Container) Muted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.muted
}

// Tick advances the active carousel when its autoplay interval has elapsed.
func (c *Container) Tick(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	s := c.activeSessionLocked()
	if s == nil {
		return nil
	}
	if s.carousel.Tick(c.deps.Now()) {
		s.logger.Debug("autoplay advanced", "image", s.carousel.Current())
	}
	return nil
}

// View is a read-only copy of the container state.
type View struct {
	State
	Muted bool
	// Mounted lists the item ids currently holding players, in feed order.
	Mounted []int64
}

func (c *Container) Snapshot() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := View{State: c.state, Muted: c.muted}
	v.Entries = slices.Clone(c.state.Entries)
	if c.state.NextCursor != nil {
		cursor := *c.state.NextCursor
		v.NextCursor = &cursor
	}
	for _, e := range c.state.Entries {
		if s := c.sessions[e.ItemID]; s != nil && s.mounted {
			v.Mounted = append(v.Mounted, e.ItemID)
		}
	}
	return v
}

// Session returns the view of the session for itemID. Entries that were never
// inside the mount window have no session.
func (c *Container) Session(itemID int64) (SessionView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.sessions[itemID]
	if !ok {
		return SessionView{}, domain.ErrUnknownEntry
	}
	return s.view(), nil
}

// Touch records a manual carousel interaction on the active entry.
func (c *Container) Touch(itemID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, err := c.activeSession(itemID)
	if err != nil {
		return err
	}
	s.carousel.Touch()
	return nil
}

// Swipe moves the active carousel to image. Out of range swipes still count as
// an interaction.
func (c *Container) Swipe(itemID int64, image int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, err := c.activeSession(itemID)
	if err != nil {
		return err
	}
	s.carousel.SwipeTo(image, c.deps.Now())
	return nil
}

func (c *Container) OpenDescription(itemID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, err := c.activeSession(itemID)
	if err != nil {
		return err
	}
	s.descriptionOpen = true
	return nil
}

func (c *Container) CloseDescription(itemID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.sessions[itemID]
	if !ok {
		return domain.ErrUnknownEntry
	}
	s.descriptionOpen = false
	return nil
}

// OpenComments opens the comment panel of the active entry and fetches its
// comments in the background.
func (c *Container) OpenComments(itemID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, err := c.activeSession(itemID)
	if err != nil {
		return err
	}

	gen := s.beginComments()
	c.spawn(func(ctx context.Context) {
		comments, err := c.deps.Comments.Comments(ctx, itemID)
		c.dispatch(func() {
			s.finishComments(gen, comments, err)
		})
	})
	return nil
}

func (c *Container) CloseComments(itemID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.sessions[itemID]
	if !ok {
		return domain.ErrUnknownEntry
	}
	s.closeComments()
	return nil
}

// PostComment validates synchronously and posts in the background. A failed
// post is reported through the Notifier.
func (c *Container) PostComment(itemID int64, body string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, err := c.activeSession(itemID)
	if err != nil {
		return err
	}
	user, loggedIn := c.currentUser()
	if err := engagement.CheckComment(loggedIn, body); err != nil {
		return err
	}

	body = strings.TrimSpace(body)
	c.spawn(func(ctx context.Context) {
		comment, err := c.deps.Comments.PostComment(ctx, itemID, body)
		c.dispatch(func() {
			if err != nil {
				s.logger.Warn("failed to post comment", "error", err)
				c.notify("Failed to post comment")
				return
			}
			if comment.AuthorName == "" {
				comment.AuthorID = &user.ID
				comment.AuthorName = displayName(user)
				if user.IconURL != nil {
					comment.AvatarURL = *user.IconURL
				}
			}
			// A fetch that finished first may already list the new comment.
			if _, dup := s.findComment(comment.ID); s.commentsOpen && !dup {
				s.comments = append(slices.Clip(s.comments), comment)
			}
		})
	})
	return nil
}

// DeleteComment removes the current user's own comment from the active entry.
func (c *Container) DeleteComment(itemID int64, commentID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, err := c.activeSession(itemID)
	if err != nil {
		return err
	}
	comment, ok := s.findComment(commentID)
	if !ok {
		return domain.ErrUnknownComment
	}
	user, loggedIn := c.currentUser()
	if err := engagement.CheckDelete(comment, user, loggedIn); err != nil {
		return err
	}

	c.spawn(func(ctx context.Context) {
		err := c.deps.Comments.DeleteComment(ctx, itemID, commentID)
		c.dispatch(func() {
			if err != nil {
				s.logger.Warn("failed to delete comment", "comment_id", commentID, "error", err)
				c.notify("Failed to delete comment")
				return
			}
			s.removeComment(commentID)
		})
	})
	return nil
}

// ToggleLike likes or unlikes the active entry. Permission failures are
// returned before any network call.
func (c *Container) ToggleLike(itemID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, err := c.activeSession(itemID)
	if err != nil {
		return err
	}
	user, loggedIn := c.currentUser()
	if err := engagement.CheckLike(user, loggedIn, s.entry.Seller.ID); err != nil {
		return err
	}

	sellerID := s.entry.Seller.ID
	c.spawn(func(ctx context.Context) {
		if err := c.deps.Likes.Toggle(ctx, itemID, sellerID); err != nil {
			s.logger.Warn("failed to toggle like", "error", err)
			c.dispatch(func() {
				c.notify("Failed to update like")
			})
		}
	})
	return nil
}

// requestMore starts a page fetch unless one is running or the feed ended.
func (c *Container) requestMore() {
	next, ok := c.loader.Begin(c.state)
	if !ok {
		return
	}
	c.state = next

	cursor := c.state.NextCursor
	c.spawn(func(ctx context.Context) {
		page, err := c.loader.Fetch(ctx, cursor)
		c.dispatch(func() {
			c.applyPage(page, err)
		})
	})
}

func (c *Container) applyPage(page []domain.FeedEntry, err error) {
	c.state = c.loader.Complete(c.state, page, err)
	if err != nil {
		return
	}

	if c.state.ActiveIndex < 0 {
		if index, ok := c.deepLink.Resolve(c.state.Entries); ok {
			c.logger.Info("initial position", "index", index, "item_id", c.state.Entries[index].ItemID)
			c.setActive(index)
		}
	} else {
		c.remount()
	}

	if c.tracker.ShouldPrefetch(c.state) {
		c.requestMore()
	}
}

func (c *Container) setActive(index int) bool {
	prev := c.state.ActiveIndex
	next, changed := c.tracker.Focus(c.state, index)
	if !changed {
		return false
	}
	c.state = next

	// The outgoing session stops before the incoming one starts.
	if prev >= 0 {
		if s := c.sessions[c.state.Entries[prev].ItemID]; s != nil {
			s.deactivate()
		}
	}
	c.remount()

	entry := c.state.Entries[index]
	c.sessions[entry.ItemID].activate(c.deps.Now())
	c.logger.Debug("entry activated", "index", index, "item_id", entry.ItemID)
	c.record(entry.ItemID, index)
	return true
}

// remount keeps players open only inside the window around the active index.
func (c *Container) remount() {
	active := c.state.ActiveIndex
	if active < 0 {
		return
	}

	lo, hi := 0, len(c.state.Entries)-1
	if r := c.cfg.MountRadius; r >= 0 {
		lo, hi = max(lo, active-r), min(hi, active+r)
	}

	for _, s := range c.sessions {
		if s.mounted && (s.index < lo || s.index > hi) {
			s.unmount()
		}
	}
	for i := lo; i <= hi; i++ {
		entry := c.state.Entries[i]
		s, ok := c.sessions[entry.ItemID]
		if !ok {
			s = newSession(entry, i, c.cfg.AutoplayInterval, c.muted, c.logger)
			c.sessions[entry.ItemID] = s
		}
		c.mount(s)
	}
}

func (c *Container) mount(s *Session) {
	needMusic, gen := s.mount(c.deps.Players, c.deps.Music != nil)
	if !needMusic {
		return
	}

	trackID := domain.MusicTrackID(s.entry.ItemID)
	c.spawn(func(ctx context.Context) {
		url, err := c.deps.Music.MusicURL(ctx, trackID)
		c.dispatch(func() {
			s.finishMusic(gen, url, err, c.deps.Players)
		})
	})
}

func (c *Container) record(itemID int64, index int) {
	if c.deps.Sink == nil {
		return
	}
	activation := domain.Activation{
		ViewerID: c.cfg.ViewerID,
		ItemID:   itemID,
		Index:    index,
		At:       c.deps.Now(),
	}
	c.spawn(func(ctx context.Context) {
		if err := c.deps.Sink.Record(ctx, activation); err != nil {
			c.logger.Warn("failed to record activation", "item_id", itemID, "error", err)
		}
	})
}

func (c *Container) activeSessionLocked() *Session {
	if c.state.ActiveIndex < 0 {
		return nil
	}
	return c.sessions[c.state.Entries[c.state.ActiveIndex].ItemID]
}

func (c *Container) activeSession(itemID int64) (*Session, error) {
	s, ok := c.sessions[itemID]
	if !ok {
		return nil, domain.ErrUnknownEntry
	}
	if !s.active {
		return nil, domain.ErrInactiveEntry
	}
	return s, nil
}

func (c *Container) currentUser() (domain.User, bool) {
	if c.deps.Identity == nil {
		return domain.User{}, false
	}
	return c.deps.Identity.Current()
}

func (c *Container) notify(message string) {
	if c.deps.Notifier != nil {
		c.deps.Notifier.Notify(message)
	}
}

// spawn runs fn on a tracked goroutine. Callers hold c.mu.
func (c *Container) spawn(fn func(ctx context.Context)) {
	if c.closed {
		return
	}
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		fn(c.ctx)
	}()
}

// dispatch applies a result under the lock, or drops it after Close.
func (c *Container) dispatch(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	fn()
}

func displayName(u domain.User) string {
	if u.Username != nil && *u.Username != "" {
		return *u.Username
	}
	return u.Email
}
