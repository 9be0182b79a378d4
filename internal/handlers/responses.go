package handlers

import (
	"time"

	"shorts_feed/internal/domain"
	"shorts_feed/internal/engagement"
	"shorts_feed/internal/feed"
	"shorts_feed/internal/service"
)

type entryResponse struct {
	ItemID      int64   `json:"item_id"`
	Index       int     `json:"index"`
	Title       string  `json:"title"`
	Price       int     `json:"price"`
	Description *string `json:"description,omitempty"`
	SellerID    int64   `json:"seller_id"`
	SellerName  string  `json:"seller_name"`
	Images      int     `json:"images"`
	Mounted     bool    `json:"mounted"`
}

type feedResponse struct {
	Entries     []entryResponse `json:"entries"`
	ActiveIndex int             `json:"active_index"`
	NextCursor  *int64          `json:"next_cursor"`
	IsLoading   bool            `json:"is_loading"`
	HasMore     bool            `json:"has_more"`
	Muted       bool            `json:"muted"`
}

func newFeedResponse(v feed.View) feedResponse {
	mounted := make(map[int64]bool, len(v.Mounted))
	for _, id := range v.Mounted {
		mounted[id] = true
	}

	resp := feedResponse{
		Entries:     make([]entryResponse, 0, len(v.Entries)),
		ActiveIndex: v.ActiveIndex,
		NextCursor:  v.NextCursor,
		IsLoading:   v.IsLoading,
		HasMore:     v.HasMore,
		Muted:       v.Muted,
	}
	for i, e := range v.Entries {
		resp.Entries = append(resp.Entries, entryResponse{
			ItemID:      e.ItemID,
			Index:       i,
			Title:       e.Title,
			Price:       e.Price,
			Description: e.Description,
			SellerID:    e.Seller.ID,
			SellerName:  e.Seller.Name,
			Images:      len(e.Images),
			Mounted:     mounted[e.ItemID],
		})
	}
	return resp
}

type captionResponse struct {
	Text     string `json:"text"`
	Position string `json:"position"`
	Style    string `json:"style"`
}

type trackResponse struct {
	Kind       string  `json:"kind"`
	Src        string  `json:"src"`
	State      string  `json:"state"`
	Muted      bool    `json:"muted"`
	Volume     float64 `json:"volume"`
	LastResult string  `json:"last_result"`
}

type commentResponse struct {
	ID         string     `json:"id"`
	AuthorID   *int64     `json:"author_id"`
	AuthorName string     `json:"author_name"`
	AvatarURL  string     `json:"avatar_url,omitempty"`
	Body       string     `json:"body"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	Timestamp  string     `json:"timestamp,omitempty"`
	Likes      int        `json:"likes"`
}

type sessionResponse struct {
	ItemID            int64             `json:"item_id"`
	Index             int               `json:"index"`
	Active            bool              `json:"active"`
	Muted             bool              `json:"muted"`
	Mounted           bool              `json:"mounted"`
	CurrentImage      int               `json:"current_image"`
	ImageURL          string            `json:"image_url"`
	Caption           *captionResponse  `json:"caption"`
	HasUserInteracted bool              `json:"has_user_interacted"`
	AutoplayEnabled   bool              `json:"autoplay_enabled"`
	Decorated         bool              `json:"decorated"`
	DescriptionOpen   bool              `json:"description_open"`
	CommentsOpen      bool              `json:"comments_open"`
	CommentsLoading   bool              `json:"comments_loading"`
	Comments          []commentResponse `json:"comments"`
	Tracks            []trackResponse   `json:"tracks"`
	MusicURL          string            `json:"music_url,omitempty"`
}

func newSessionResponse(v feed.SessionView) sessionResponse {
	resp := sessionResponse{
		ItemID:            v.ItemID,
		Index:             v.Index,
		Active:            v.Active,
		Muted:             v.Muted,
		Mounted:           v.Mounted,
		CurrentImage:      v.CurrentImage,
		ImageURL:          v.ImageURL,
		HasUserInteracted: v.HasUserInteracted,
		AutoplayEnabled:   v.AutoplayEnabled,
		Decorated:         v.Decorated,
		DescriptionOpen:   v.DescriptionOpen,
		CommentsOpen:      v.CommentsOpen,
		CommentsLoading:   v.CommentsLoading,
		Comments:          make([]commentResponse, 0, len(v.Comments)),
		Tracks:            make([]trackResponse, 0, len(v.Tracks)),
		MusicURL:          v.MusicURL,
	}
	if v.Caption != nil {
		resp.Caption = &captionResponse{
			Text:     v.Caption.Caption,
			Position: v.Caption.Position.String(),
			Style:    v.Caption.Style.String(),
		}
	}
	for _, c := range v.Comments {
		resp.Comments = append(resp.Comments, newCommentResponse(c))
	}
	for _, t := range v.Tracks {
		resp.Tracks = append(resp.Tracks, trackResponse{
			Kind:       string(t.Kind),
			Src:        t.Src,
			State:      t.State.String(),
			Muted:      t.Muted,
			Volume:     t.Volume,
			LastResult: t.LastResult.String(),
		})
	}
	return resp
}

func newCommentResponse(c domain.Comment) commentResponse {
	resp := commentResponse{
		ID:         c.ID,
		AuthorID:   c.AuthorID,
		AuthorName: c.AuthorName,
		AvatarURL:  c.AvatarURL,
		Body:       c.Body,
		Timestamp:  c.Timestamp,
		Likes:      c.Likes,
	}
	if !c.CreatedAt.IsZero() {
		t := c.CreatedAt
		resp.CreatedAt = &t
	}
	return resp
}

type likeResponse struct {
	ItemID     int64 `json:"item_id"`
	Count      int   `json:"count"`
	Liked      bool  `json:"liked"`
	Processing bool  `json:"processing"`
}

func newLikeResponse(itemID int64, s engagement.LikeState) likeResponse {
	return likeResponse{ItemID: itemID, Count: s.Count, Liked: s.Liked, Processing: s.Processing}
}

type userResponse struct {
	ID       int64   `json:"id"`
	Username *string `json:"username"`
	Email    string  `json:"email"`
	IconURL  *string `json:"icon_url"`
}

func newUserResponse(u domain.User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username, Email: u.Email, IconURL: u.IconURL}
}

type summaryResponse struct {
	ViewerID     string     `json:"viewer_id"`
	LastItemID   int64      `json:"last_item_id"`
	TotalViews   int64      `json:"total_views"`
	LastViewedAt *time.Time `json:"last_viewed_at"`
	Impressions  int64      `json:"impressions"`
}

func newSummaryResponse(s *service.ViewerSummary) summaryResponse {
	resp := summaryResponse{
		ViewerID:    s.State.ViewerID,
		LastItemID:  s.State.LastItemID,
		TotalViews:  s.State.TotalViews,
		Impressions: s.Impressions,
	}
	if !s.State.LastViewedAt.IsZero() {
		t := s.State.LastViewedAt
		resp.LastViewedAt = &t
	}
	return resp
}
