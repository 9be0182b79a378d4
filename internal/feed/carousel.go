package feed

import "time"

// DefaultAutoplayInterval is how long each image is shown before autoplay
// moves on.
const DefaultAutoplayInterval = 5 * time.Second

// Carousel is the per-entry image pager.
type Carousel struct {
	images   int
	current  int
	interval time.Duration
	lastMove time.Time

	// interacted suppresses the pan/zoom decoration; cleared on deactivation.
	interacted bool
	// manual latches on the first touch and disables autoplay for good.
	manual bool
}

func newCarousel(images int, interval time.Duration) Carousel {
	if interval <= 0 {
		interval = DefaultAutoplayInterval
	}
	return Carousel{images: images, interval: interval}
}

func (c *Carousel) Current() int { return c.current }

// Touch records a manual interaction.
func (c *Carousel) Touch() {
	c.interacted = true
	c.manual = true
}

// SwipeTo moves to image i on user input.
func (c *Carousel) SwipeTo(i int, now time.Time) bool {
	c.Touch()
	if i < 0 || i >= c.images || i == c.current {
		return false
	}
	c.current = i
	c.lastMove = now
	return true
}

// Tick advances one image when the autoplay interval has elapsed, wrapping at
// the end.
func (c *Carousel) Tick(now time.Time) bool {
	if c.manual || c.images < 2 {
		return false
	}
	if now.Sub(c.lastMove) < c.interval {
		return false
	}
	c.current = (c.current + 1) % c.images
	c.lastMove = now
	return true
}

func (c *Carousel) AutoplayEnabled() bool { return !c.manual }

func (c *Carousel) restart(now time.Time) { c.lastMove = now }

func (c *Carousel) resetInteraction() { c.interacted = false }
