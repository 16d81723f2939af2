package placement

import (
	"context"

	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/placement"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/domain/shared"
	"go.uber.org/zap"
)

// SummaryCacheInvalidator drops the cached dashboard summary whenever a
// placement mutation is published on the event bus
type SummaryCacheInvalidator struct {
	dashboard *DashboardService
	logger    *zap.Logger
}

// NewSummaryCacheInvalidator creates a new cache invalidation handler
func NewSummaryCacheInvalidator(dashboard *DashboardService, logger *zap.Logger) *SummaryCacheInvalidator {
	return &SummaryCacheInvalidator{
		dashboard: dashboard,
		logger:    logger,
	}
}

// Handle drops the cached summary in response to a placement event
func (h *SummaryCacheInvalidator) Handle(ctx context.Context, event shared.DomainEvent) error {
	h.logger.Debug("Invalidating dashboard summary cache",
		zap.String("event_type", event.EventType()),
		zap.String("aggregate_id", event.AggregateID().String()))

	h.dashboard.InvalidateSummary(ctx)
	return nil
}

// EventTypes returns the placement mutations that stale the dashboard
func (h *SummaryCacheInvalidator) EventTypes() []string {
	return []string{
		placement.EventTypeStudentCreated,
		placement.EventTypeStudentPlaced,
		placement.EventTypeStudentDeleted,
	}
}

// Ensure SummaryCacheInvalidator implements EventHandler
var _ shared.EventHandler = (*SummaryCacheInvalidator)(nil)
