package media

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFactory() *LogPlayerFactory {
	return NewLogPlayerFactory(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError})))
}

func TestLogPlayer_AutoplayPolicy(t *testing.T) {
	f := newFactory()
	p, err := f.Open("https://cdn.test/a.mp3")
	require.NoError(t, err)
	lp := p.(*LogPlayer)

	assert.Equal(t, PlayRejected, p.Play())
	assert.False(t, lp.Playing())

	p.SetMuted(true)
	assert.Equal(t, PlayStarted, p.Play())
	assert.True(t, lp.Playing())

	p.Pause()
	p.SetMuted(false)
	f.Gesture()
	assert.Equal(t, PlayStarted, p.Play())
	assert.True(t, lp.Playing())
	assert.False(t, lp.Muted())
}

func TestLogPlayer_CloseTracksOpenCount(t *testing.T) {
	f := newFactory()
	a, err := f.Open("a")
	require.NoError(t, err)
	b, err := f.Open("b")
	require.NoError(t, err)
	assert.Equal(t, int64(2), f.OpenPlayers())

	a.Close()
	a.Close()
	assert.Equal(t, int64(1), f.OpenPlayers())

	f.Gesture()
	assert.Equal(t, PlayRejected, a.Play())
	b.Seek(2 * time.Second)
	b.Close()
	assert.Equal(t, int64(0), f.OpenPlayers())
}

func TestLogPlayerFactory_RejectsEmptySource(t *testing.T) {
	_, err := newFactory().Open("")
	assert.Error(t, err)
}

func TestPlayResult_String(t *testing.T) {
	assert.Equal(t, "started", PlayStarted.String())
	assert.Equal(t, "rejected", PlayRejected.String())
	assert.Equal(t, "not_attempted", PlayNotAttempted.String())
}
