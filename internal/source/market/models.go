package market

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"shorts_feed/internal/domain"
)

type ShortDTO struct {
	ItemID      int64      `json:"item_id"`
	Title       string     `json:"title"`
	Price       int        `json:"price"`
	Description *string    `json:"description"`
	AudioURL    *string    `json:"audio_url"`
	Slides      []SlideDTO `json:"slides"`
	Status      string     `json:"status"`
	Images      []string   `json:"images"`
	Seller      SellerDTO  `json:"seller"`
}

type SlideDTO struct {
	Index    int    `json:"index"`
	Subtitle string `json:"subtitle"`
	Position int    `json:"position"` // 0 top, 1 bottom
	Color    int    `json:"color"`    // 0 black, 1 white
}

type SellerDTO struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatar_url"`
}

type UserDTO struct {
	ID        int64   `json:"id"`
	Username  *string `json:"username"`
	Email     string  `json:"email"`
	CreatedAt string  `json:"created_at"`
	IconURL   *string `json:"icon_url"`
}

type MusicDTO struct {
	URL string `json:"url"`
}

type LikeDTO struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`
	ItemID int64 `json:"item_id"`
}

// CommentDTO accepts both comment payloads the API has served: the nested form
// (id, item_id, user_id, body, created_at, user) and the flattened form
// (id, author, avatar, content, timestamp, likes).
type CommentDTO struct {
	ID        json.RawMessage `json:"id"`
	ItemID    int64           `json:"item_id"`
	UserID    *int64          `json:"user_id"`
	Body      *string         `json:"body"`
	CreatedAt string          `json:"created_at"`
	User      *UserDTO        `json:"user"`

	Author    string  `json:"author"`
	Avatar    string  `json:"avatar"`
	Content   *string `json:"content"`
	Timestamp string  `json:"timestamp"`
	Likes     int     `json:"likes"`
}

type postCommentRequest struct {
	Body string `json:"body"`
}

var errUnknownCommentShape = errors.New("unrecognized comment shape")

func toEntry(s ShortDTO) domain.FeedEntry {
	entry := domain.FeedEntry{
		ItemID:       s.ItemID,
		Title:        s.Title,
		Price:        s.Price,
		Description:  s.Description,
		VoiceoverURL: s.AudioURL,
		Status:       domain.Status(s.Status),
		Images:       s.Images,
		Seller: domain.Seller{
			ID:        s.Seller.ID,
			Name:      s.Seller.Name,
			AvatarURL: s.Seller.AvatarURL,
		},
	}
	if entry.VoiceoverURL != nil && *entry.VoiceoverURL == "" {
		entry.VoiceoverURL = nil
	}

	seen := make(map[int]struct{}, len(s.Slides))
	for _, sl := range s.Slides {
		// at most one caption per image
		if _, dup := seen[sl.Index]; dup {
			continue
		}
		seen[sl.Index] = struct{}{}

		slide := domain.Slide{
			Index:    sl.Index,
			Caption:  sl.Subtitle,
			Position: domain.PositionBottom,
			Style:    domain.StyleLight,
		}
		if sl.Position == 0 {
			slide.Position = domain.PositionTop
		}
		if sl.Color == 0 {
			slide.Style = domain.StyleDark
		}
		entry.Slides = append(entry.Slides, slide)
	}

	return entry
}

func toUser(u UserDTO) domain.User {
	user := domain.User{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		IconURL:  u.IconURL,
	}
	if t, err := time.Parse(time.RFC3339, u.CreatedAt); err == nil {
		user.CreatedAt = t
	}
	return user
}

func toComment(itemID int64, c CommentDTO) (domain.Comment, error) {
	id, err := rawID(c.ID)
	if err != nil {
		return domain.Comment{}, err
	}

	comment := domain.Comment{ID: id, ItemID: itemID}
	if c.ItemID != 0 {
		comment.ItemID = c.ItemID
	}

	switch {
	case c.Body != nil:
		comment.Body = *c.Body
		comment.AuthorID = c.UserID
		setTime(&comment, c.CreatedAt)
		if c.User != nil {
			if comment.AuthorID == nil {
				uid := c.User.ID
				comment.AuthorID = &uid
			}
			if c.User.Username != nil {
				comment.AuthorName = *c.User.Username
			}
			if c.User.IconURL != nil {
				comment.AvatarURL = *c.User.IconURL
			}
		}
	case c.Content != nil:
		comment.Body = *c.Content
		comment.AuthorName = c.Author
		comment.AvatarURL = c.Avatar
		comment.Likes = c.Likes
		setTime(&comment, c.Timestamp)
	default:
		return domain.Comment{}, fmt.Errorf("comment %s: %w", id, errUnknownCommentShape)
	}

	return comment, nil
}

func setTime(c *domain.Comment, raw string) {
	if raw == "" {
		return
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		c.CreatedAt = t
		return
	}
	c.Timestamp = raw
}

func rawID(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", fmt.Errorf("comment id: %w", errUnknownCommentShape)
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", fmt.Errorf("decode comment id: %w", err)
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("decode comment id: %w", err)
	}
	return n.String(), nil
}
