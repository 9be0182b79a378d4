package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"shorts_feed/internal/domain"
)

type ImpressionStore interface {
	// Insert reports inserted=false when the event id was already stored.
	Insert(ctx context.Context, activation *domain.Activation) (id int64, inserted bool, err error)
	CountByViewer(ctx context.Context, viewerID string) (int64, error)
}

type ViewStateStore interface {
	Get(ctx context.Context, viewerID string) (*domain.ViewState, error)
	Update(ctx context.Context, state *domain.ViewState) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, activation *domain.Activation) error
	Close() error
}
