package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"shorts_feed/internal/domain"
)

// ImpressionService persists every activation of a feed entry and fans it
// out to the broker.
type ImpressionService struct {
	impressions ImpressionStore
	viewState   ViewStateStore
	txManager   TransactionManager
	publisher   Publisher
	logger      *slog.Logger

	mu    sync.Mutex
	stats domain.ImpressionStats
}

// NewImpressionService creates the recorder. publisher may be nil.
func NewImpressionService(
	impressions ImpressionStore,
	viewState ViewStateStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
) *ImpressionService {
	return &ImpressionService{
		impressions: impressions,
		viewState:   viewState,
		txManager:   txManager,
		publisher:   publisher,
		logger:      logger.With("component", "impressions"),
	}
}

// Record stores the impression and the viewer's progress in one transaction,
// then publishes it. A publish failure is counted but does not fail Record.
// An event id that was already stored changes nothing and is not republished.
func (s *ImpressionService) Record(ctx context.Context, activation domain.Activation) error {
	if activation.EventID == "" {
		activation.EventID = uuid.NewString()
	}
	if activation.At.IsZero() {
		activation.At = time.Now()
	}

	var duplicate bool
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		_, inserted, err := s.impressions.Insert(txCtx, &activation)
		if err != nil {
			return fmt.Errorf("insert impression: %w", err)
		}
		if !inserted {
			duplicate = true
			return nil
		}
		return s.advanceViewState(txCtx, &activation)
	})
	if err != nil {
		s.count(func(st *domain.ImpressionStats) { st.Errors++ })
		return fmt.Errorf("record impression: %w", err)
	}
	if duplicate {
		s.count(func(st *domain.ImpressionStats) { st.Duplicates++ })
		s.logger.Debug("duplicate impression ignored", "event_id", activation.EventID)
		return nil
	}
	s.count(func(st *domain.ImpressionStats) { st.Recorded++ })

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, &activation); err != nil {
			s.logger.Warn("failed to publish impression", "event_id", activation.EventID, "error", err)
			s.count(func(st *domain.ImpressionStats) { st.Errors++ })
		} else {
			s.count(func(st *domain.ImpressionStats) { st.Published++ })
		}
	}

	s.logger.Debug("impression recorded",
		"event_id", activation.EventID,
		"viewer_id", activation.ViewerID,
		"item_id", activation.ItemID,
		"index", activation.Index,
	)
	return nil
}

func (s *ImpressionService) advanceViewState(ctx context.Context, activation *domain.Activation) error {
	state, err := s.viewState.Get(ctx, activation.ViewerID)
	if err != nil {
		return fmt.Errorf("get view state: %w", err)
	}

	state.ViewerID = activation.ViewerID
	state.LastItemID = activation.ItemID
	state.TotalViews++
	if activation.At.After(state.LastViewedAt) {
		state.LastViewedAt = activation.At
	}

	if err := s.viewState.Update(ctx, state); err != nil {
		return fmt.Errorf("update view state: %w", err)
	}
	return nil
}

// ViewerSummary is what the recorder knows about one viewer.
type ViewerSummary struct {
	State       domain.ViewState
	Impressions int64
}

func (s *ImpressionService) Summary(ctx context.Context, viewerID string) (*ViewerSummary, error) {
	state, err := s.viewState.Get(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("get view state: %w", err)
	}
	count, err := s.impressions.CountByViewer(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("count impressions: %w", err)
	}
	return &ViewerSummary{State: *state, Impressions: count}, nil
}

// Stats returns the counters since start.
func (s *ImpressionService) Stats() domain.ImpressionStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

func (s *ImpressionService) count(fn func(*domain.ImpressionStats)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.stats)
}
