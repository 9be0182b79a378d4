package media

import (
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// LogPlayerFactory opens headless players that log every command. Playback
// follows the common browser autoplay policy: muted playback always starts,
// audible playback starts only after a user gesture has been seen.
type LogPlayerFactory struct {
	gestured atomic.Bool
	open     atomic.Int64
	logger   *slog.Logger
}

func NewLogPlayerFactory(logger *slog.Logger) *LogPlayerFactory {
	return &LogPlayerFactory{logger: logger.With("component", "player")}
}

// Gesture records a user interaction, lifting the autoplay restriction.
func (f *LogPlayerFactory) Gesture() {
	if !f.gestured.Swap(true) {
		f.logger.Debug("user gesture seen, audible autoplay allowed")
	}
}

func (f *LogPlayerFactory) Open(src string) (Player, error) {
	if src == "" {
		return nil, errors.New("open player: empty source")
	}
	f.open.Add(1)
	return &LogPlayer{
		src:     src,
		volume:  1,
		factory: f,
		logger:  f.logger.With("src", src),
	}, nil
}

// OpenPlayers returns the number of players currently open.
func (f *LogPlayerFactory) OpenPlayers() int64 {
	return f.open.Load()
}

type LogPlayer struct {
	mu       sync.Mutex
	src      string
	playing  bool
	muted    bool
	volume   float64
	position time.Duration
	closed   bool
	factory  *LogPlayerFactory
	logger   *slog.Logger
}

func (p *LogPlayer) Play() PlayResult {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return PlayRejected
	}
	if !p.muted && !p.factory.gestured.Load() {
		p.logger.Debug("autoplay prevented")
		return PlayRejected
	}
	p.playing = true
	p.logger.Debug("play", "muted", p.muted, "volume", p.volume)
	return PlayStarted
}

func (p *LogPlayer) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = false
	p.logger.Debug("pause")
}

func (p *LogPlayer) Seek(pos time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.position = pos
}

func (p *LogPlayer) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
	p.logger.Debug("mute", "muted", muted)
}

func (p *LogPlayer) SetVolume(volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = volume
}

func (p *LogPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	p.playing = false
	p.factory.open.Add(-1)
	p.logger.Debug("close")
}

// Playing reports whether the transport is running.
func (p *LogPlayer) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

func (p *LogPlayer) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}
