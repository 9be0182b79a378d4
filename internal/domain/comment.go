package domain

import "time"

// Comment is the normalized form of both comment shapes the API has served.
type Comment struct {
	ID         string
	ItemID     int64
	AuthorID   *int64
	AuthorName string
	AvatarURL  string
	Body       string
	CreatedAt  time.Time
	// Timestamp is the server's display string when CreatedAt could not be parsed.
	Timestamp string
	Likes     int
}
