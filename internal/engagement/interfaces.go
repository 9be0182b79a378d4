package engagement

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"shorts_feed/internal/domain"
)

type LikeAPI interface {
	LikeCount(ctx context.Context, itemID int64) (int, error)
	MyLikes(ctx context.Context) ([]int64, error)
	Like(ctx context.Context, itemID int64) error
	Unlike(ctx context.Context, itemID int64) error
}

type Identity interface {
	Current() (domain.User, bool)
}
