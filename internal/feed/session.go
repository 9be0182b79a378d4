package feed

import (
	"log/slog"
	"slices"
	"time"

	"shorts_feed/internal/domain"
	"shorts_feed/internal/media"
)

type musicStatus int

const (
	musicUnresolved musicStatus = iota
	musicResolving
	musicResolved
	musicFailed
)

// Session is the media controller of one entry. It is created the first time
// the entry is mounted and lives as long as the Container; mounting only
// decides whether it currently holds players.
//
// All methods are called with the Container lock held.
type Session struct {
	entry    domain.FeedEntry
	index    int
	carousel Carousel

	active  bool
	muted   bool
	mounted bool
	// mountGen invalidates lookups started under an earlier mount.
	mountGen uint64

	descriptionOpen bool
	commentsOpen    bool
	commentsLoading bool
	commentsGen     uint64
	comments        []domain.Comment

	voice *Track
	music *Track

	musicURL    string
	musicStatus musicStatus

	logger *slog.Logger
}

func newSession(entry domain.FeedEntry, index int, autoplay time.Duration, muted bool, logger *slog.Logger) *Session {
	return &Session{
		entry:    entry,
		index:    index,
		carousel: newCarousel(len(entry.Images), autoplay),
		muted:    muted,
		logger:   logger.With("item_id", entry.ItemID),
	}
}

// mount acquires players. needMusic reports that the caller should start a
// background music lookup tagged with gen; it is never set unless lookup is
// true.
func (s *Session) mount(players media.PlayerFactory, lookup bool) (needMusic bool, gen uint64) {
	if s.mounted {
		return false, s.mountGen
	}
	s.mounted = true
	s.mountGen++

	if players != nil {
		if s.entry.VoiceoverURL != nil {
			s.voice = s.openTrack(players, TrackVoiceover, *s.entry.VoiceoverURL)
		}
		if s.musicStatus == musicResolved {
			s.music = s.openTrack(players, TrackMusic, s.musicURL)
		}
	}

	if lookup && s.musicStatus == musicUnresolved {
		s.musicStatus = musicResolving
		return true, s.mountGen
	}
	return false, s.mountGen
}

// unmount releases players and invalidates every lookup in flight.
func (s *Session) unmount() {
	if !s.mounted {
		return
	}
	s.deactivate()
	for _, t := range s.tracks() {
		t.close()
	}
	s.voice, s.music = nil, nil
	s.mounted = false
	s.mountGen++
	s.commentsGen++
	s.commentsLoading = false
	if s.musicStatus == musicResolving {
		s.musicStatus = musicUnresolved
	}
}

func (s *Session) openTrack(players media.PlayerFactory, kind TrackKind, src string) *Track {
	p, err := players.Open(src)
	if err != nil {
		s.logger.Warn("failed to open player", "kind", kind, "error", err)
		return nil
	}
	return newTrack(kind, src, p, s.muted)
}

func (s *Session) finishMusic(gen uint64, url string, err error, players media.PlayerFactory) {
	if gen != s.mountGen || !s.mounted || s.musicStatus != musicResolving {
		s.logger.Debug("discarding stale music lookup")
		return
	}
	if err != nil {
		s.musicStatus = musicFailed
		s.logger.Warn("failed to resolve background music", "error", err)
		return
	}

	s.musicURL = url
	s.musicStatus = musicResolved
	if players == nil {
		return
	}
	s.music = s.openTrack(players, TrackMusic, url)
	if s.music != nil && s.active {
		s.startTrack(s.music)
	}
}

func (s *Session) activate(now time.Time) {
	if s.active {
		return
	}
	s.active = true
	s.carousel.restart(now)
	for _, t := range s.tracks() {
		s.startTrack(t)
	}
}

func (s *Session) startTrack(t *Track) {
	if res := t.start(); res == media.PlayRejected {
		s.logger.Debug("autoplay prevented", "kind", t.kind)
	}
}

// deactivate stops audio and resets the transient UI. The carousel position
// is kept.
func (s *Session) deactivate() {
	if !s.active {
		return
	}
	s.active = false
	for _, t := range s.tracks() {
		t.stop()
	}
	s.descriptionOpen = false
	s.closeComments()
	s.carousel.resetInteraction()
}

func (s *Session) setMuted(muted bool) {
	s.muted = muted
	for _, t := range s.tracks() {
		t.setMuted(muted)
	}
}

func (s *Session) tracks() []*Track {
	var out []*Track
	if s.voice != nil {
		out = append(out, s.voice)
	}
	if s.music != nil {
		out = append(out, s.music)
	}
	return out
}

func (s *Session) beginComments() uint64 {
	s.commentsOpen = true
	s.commentsLoading = true
	s.commentsGen++
	return s.commentsGen
}

func (s *Session) finishComments(gen uint64, comments []domain.Comment, err error) {
	if gen != s.commentsGen || !s.commentsOpen {
		s.logger.Debug("discarding stale comments")
		return
	}
	s.commentsLoading = false
	if err != nil {
		s.logger.Warn("failed to fetch comments", "error", err)
		return
	}
	s.comments = comments
}

func (s *Session) closeComments() {
	s.commentsOpen = false
	s.commentsLoading = false
	s.commentsGen++
}

func (s *Session) findComment(id string) (domain.Comment, bool) {
	for _, c := range s.comments {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Comment{}, false
}

func (s *Session) removeComment(id string) {
	s.comments = slices.DeleteFunc(slices.Clone(s.comments), func(c domain.Comment) bool {
		return c.ID == id
	})
}

// SessionView is a read-only copy of a session.
type SessionView struct {
	ItemID  int64
	Index   int
	Active  bool
	Muted   bool
	Mounted bool

	CurrentImage int
	ImageURL     string
	// Caption is the slide for CurrentImage, nil when the image has none.
	Caption           *domain.Slide
	HasUserInteracted bool
	AutoplayEnabled   bool
	// Decorated is true while the pan/zoom effect should run.
	Decorated bool

	DescriptionOpen bool
	CommentsOpen    bool
	CommentsLoading bool
	Comments        []domain.Comment

	Tracks   []TrackView
	MusicURL string
}

func (s *Session) view() SessionView {
	v := SessionView{
		ItemID:            s.entry.ItemID,
		Index:             s.index,
		Active:            s.active,
		Muted:             s.muted,
		Mounted:           s.mounted,
		CurrentImage:      s.carousel.Current(),
		HasUserInteracted: s.carousel.interacted,
		AutoplayEnabled:   s.carousel.AutoplayEnabled(),
		Decorated:         s.active && !s.carousel.interacted,
		DescriptionOpen:   s.descriptionOpen,
		CommentsOpen:      s.commentsOpen,
		CommentsLoading:   s.commentsLoading,
		Comments:          slices.Clone(s.comments),
		MusicURL:          s.musicURL,
	}
	if cur := s.carousel.Current(); cur < len(s.entry.Images) {
		v.ImageURL = s.entry.Images[cur]
	}
	if slide, ok := s.entry.SlideAt(s.carousel.Current()); ok {
		v.Caption = &slide
	}
	for _, t := range s.tracks() {
		v.Tracks = append(v.Tracks, t.view())
	}
	return v
}
