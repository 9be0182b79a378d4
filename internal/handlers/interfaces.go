package handlers

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"shorts_feed/internal/domain"
	"shorts_feed/internal/engagement"
	"shorts_feed/internal/feed"
	"shorts_feed/internal/service"
)

type Feed interface {
	Snapshot() feed.View
	LoadMore()
	Focus(index int) error
	ToggleMute() bool
	Session(itemID int64) (feed.SessionView, error)
	Touch(itemID int64) error
	Swipe(itemID int64, image int) error
	OpenDescription(itemID int64) error
	CloseDescription(itemID int64) error
	OpenComments(itemID int64) error
	CloseComments(itemID int64) error
	PostComment(itemID int64, body string) error
	DeleteComment(itemID int64, commentID string) error
	ToggleLike(itemID int64) error
}

type LikeStates interface {
	Refresh(ctx context.Context, itemID int64) error
	State(itemID int64) engagement.LikeState
	Reset()
}

type Auth interface {
	Login(ctx context.Context, token string) error
	Logout()
	Current() (domain.User, bool)
}

// Gesturer is told about every user input, lifting autoplay restrictions.
type Gesturer interface {
	Gesture()
}

type Summaries interface {
	Summary(ctx context.Context, viewerID string) (*service.ViewerSummary, error)
}
