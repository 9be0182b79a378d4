package feed

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"shorts_feed/internal/domain"
	"shorts_feed/internal/media"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func ptr[T any](v T) *T { return &v }

func entry(id int64) domain.FeedEntry {
	return domain.FeedEntry{
		ItemID: id,
		Title:  fmt.Sprintf("item %d", id),
		Price:  int(id) * 100,
		Seller: domain.Seller{ID: 100, Name: "seller"},
		Images: []string{
			fmt.Sprintf("https://cdn.test/%d/0.jpg", id),
			fmt.Sprintf("https://cdn.test/%d/1.jpg", id),
			fmt.Sprintf("https://cdn.test/%d/2.jpg", id),
		},
		Slides: []domain.Slide{
			{Index: 1, Caption: "caption", Position: domain.PositionBottom, Style: domain.StyleLight},
		},
		VoiceoverURL: ptr(fmt.Sprintf("https://cdn.test/%d/voice.mp3", id)),
		Status:       domain.StatusCompleted,
	}
}

// entries returns entries with ids from..to inclusive.
func entries(from, to int64) []domain.FeedEntry {
	var out []domain.FeedEntry
	for id := from; id <= to; id++ {
		out = append(out, entry(id))
	}
	return out
}

func ids(es []domain.FeedEntry) []int64 {
	out := make([]int64, 0, len(es))
	for _, e := range es {
		out = append(out, e.ItemID)
	}
	return out
}

type fakePlayer struct {
	mu      sync.Mutex
	src     string
	playing bool
	muted   bool
	volume  float64
	pos     time.Duration
	closed  bool
	reject  bool
}

func (p *fakePlayer) Play() media.PlayResult {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || p.reject {
		return media.PlayRejected
	}
	p.playing = true
	return media.PlayStarted
}

func (p *fakePlayer) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = false
}

func (p *fakePlayer) Seek(pos time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pos = pos
}

func (p *fakePlayer) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

func (p *fakePlayer) SetVolume(volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = volume
}

func (p *fakePlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	p.playing = false
}

type playerState struct {
	Playing bool
	Muted   bool
	Volume  float64
	Pos     time.Duration
	Closed  bool
}

func (p *fakePlayer) state() playerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return playerState{Playing: p.playing, Muted: p.muted, Volume: p.volume, Pos: p.pos, Closed: p.closed}
}

type fakeFactory struct {
	mu      sync.Mutex
	players []*fakePlayer
	reject  bool
}

func (f *fakeFactory) Open(src string) (media.Player, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := &fakePlayer{src: src, reject: f.reject}
	f.players = append(f.players, p)
	return p, nil
}

// latest returns the most recently opened player for src.
func (f *fakeFactory) latest(src string) *fakePlayer {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.players) - 1; i >= 0; i-- {
		if f.players[i].src == src {
			return f.players[i]
		}
	}
	return nil
}

// open returns every player not closed yet.
func (f *fakeFactory) open() []*fakePlayer {
	f.mu.Lock()
	players := append([]*fakePlayer(nil), f.players...)
	f.mu.Unlock()

	var out []*fakePlayer
	for _, p := range players {
		if !p.state().Closed {
			out = append(out, p)
		}
	}
	return out
}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}
