package feed

import (
	"shorts_feed/internal/media"
)

// MusicVolumeRatio scales background music against the voice-over so the two
// never compete.
const MusicVolumeRatio = 0.35

// VoiceoverVolume is the nominal voice-over volume.
const VoiceoverVolume = 1.0

type TrackKind string

const (
	TrackVoiceover TrackKind = "voiceover"
	TrackMusic     TrackKind = "music"
)

type TrackState int

const (
	Stopped TrackState = iota
	Playing
)

func (s TrackState) String() string {
	if s == Playing {
		return "playing"
	}
	return "stopped"
}

// Track drives one player. Muting never changes the transport state.
type Track struct {
	kind       TrackKind
	src        string
	player     media.Player
	state      TrackState
	muted      bool
	volume     float64
	lastResult media.PlayResult
}

func newTrack(kind TrackKind, src string, player media.Player, muted bool) *Track {
	volume := VoiceoverVolume
	if kind == TrackMusic {
		volume = VoiceoverVolume * MusicVolumeRatio
	}
	player.SetVolume(volume)
	player.SetMuted(muted)
	return &Track{
		kind:   kind,
		src:    src,
		player: player,
		muted:  muted,
		volume: volume,
	}
}

// start is best-effort: a rejected play leaves the track Stopped.
func (t *Track) start() media.PlayResult {
	if t.state == Playing {
		return media.PlayStarted
	}
	t.lastResult = t.player.Play()
	if t.lastResult == media.PlayStarted {
		t.state = Playing
	}
	return t.lastResult
}

// stop pauses and rewinds, so the next start plays from zero.
func (t *Track) stop() {
	t.player.Pause()
	t.player.Seek(0)
	t.state = Stopped
}

func (t *Track) setMuted(muted bool) {
	t.muted = muted
	t.player.SetMuted(muted)
}

func (t *Track) close() {
	t.stop()
	t.player.Close()
}

// TrackView is a read-only copy of a track's state.
type TrackView struct {
	Kind       TrackKind
	Src        string
	State      TrackState
	Muted      bool
	Volume     float64
	LastResult media.PlayResult
}

func (t *Track) view() TrackView {
	return TrackView{
		Kind:       t.kind,
		Src:        t.src,
		State:      t.state,
		Muted:      t.muted,
		Volume:     t.volume,
		LastResult: t.lastResult,
	}
}
