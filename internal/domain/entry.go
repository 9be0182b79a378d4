package domain

import "time"

// PageSize is the number of entries requested per feed page.
const PageSize = 10

// MusicRotation is the number of background music tracks entries rotate through.
const MusicRotation = 10

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusProcessing Status = "PROCESSING"
	StatusCompleted  Status = "COMPLETED"
	StatusFailed     Status = "FAILED"
)

// Position is where a caption is drawn over its image.
type Position int

const (
	PositionTop Position = iota
	PositionBottom
)

func (p Position) String() string {
	if p == PositionTop {
		return "top"
	}
	return "bottom"
}

// Style selects the caption colour scheme.
type Style int

const (
	StyleDark Style = iota
	StyleLight
)

func (s Style) String() string {
	if s == StyleDark {
		return "dark"
	}
	return "light"
}

type Slide struct {
	Index    int
	Caption  string
	Position Position
	Style    Style
}

type Seller struct {
	ID        int64
	Name      string
	AvatarURL *string
}

// FeedEntry is one listing rendered as a short. It is never mutated after arrival.
type FeedEntry struct {
	ItemID       int64
	Title        string
	Price        int
	Description  *string
	Seller       Seller
	Images       []string
	Slides       []Slide
	VoiceoverURL *string
	Status       Status
}

// SlideAt returns the caption slide for the given image index, if any.
func (e *FeedEntry) SlideAt(imageIndex int) (Slide, bool) {
	for _, s := range e.Slides {
		if s.Index == imageIndex {
			return s, true
		}
	}
	return Slide{}, false
}

// MusicTrackID picks the background track for an item: (itemID mod 10) + 1.
func MusicTrackID(itemID int64) int {
	m := itemID % MusicRotation
	if m < 0 {
		m += MusicRotation
	}
	return int(m) + 1
}

type User struct {
	ID        int64
	Username  *string
	Email     string
	IconURL   *string
	CreatedAt time.Time
}
