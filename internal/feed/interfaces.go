package feed

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"shorts_feed/internal/domain"
)

// PageFetcher returns up to limit entries after cursor; nil cursor means start.
type PageFetcher interface {
	FetchPage(ctx context.Context, cursor *int64, limit int) ([]domain.FeedEntry, error)
}

type MusicResolver interface {
	MusicURL(ctx context.Context, trackID int) (string, error)
}

type CommentAPI interface {
	Comments(ctx context.Context, itemID int64) ([]domain.Comment, error)
	PostComment(ctx context.Context, itemID int64, body string) (domain.Comment, error)
	DeleteComment(ctx context.Context, itemID int64, commentID string) error
}

type Identity interface {
	Current() (domain.User, bool)
}

type LikeToggler interface {
	Toggle(ctx context.Context, itemID, sellerID int64) error
}

// ActivationSink receives an event each time an entry becomes active.
type ActivationSink interface {
	Record(ctx context.Context, activation domain.Activation) error
}

// Notifier shows transient notices for failed user-initiated actions.
type Notifier interface {
	Notify(message string)
}
