// Package media abstracts the platform's audio elements.
package media

import "time"

// PlayResult is the outcome of asking a player to start.
type PlayResult int

const (
	PlayNotAttempted PlayResult = iota
	PlayStarted
	// PlayRejected means the platform refused playback, typically an autoplay
	// policy without a prior user gesture. It is expected and not an error.
	PlayRejected
)

func (r PlayResult) String() string {
	switch r {
	case PlayStarted:
		return "started"
	case PlayRejected:
		return "rejected"
	default:
		return "not_attempted"
	}
}

// Player is one platform media element playing a single looping source.
type Player interface {
	Play() PlayResult
	Pause()
	Seek(pos time.Duration)
	SetMuted(muted bool)
	SetVolume(volume float64)
	Close()
}

type PlayerFactory interface {
	Open(src string) (Player, error)
}
