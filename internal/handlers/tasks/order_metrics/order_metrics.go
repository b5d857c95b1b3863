package order_metrics

import (
	"context"
	"time"

	"marketplace/internal/entities"
	"marketplace/internal/pkg/metrics"
	"marketplace/pkg/logger"
)

type Service interface {
	StatusCounts(ctx context.Context) (map[entities.OrderStatusType]int64, error)
}

// OrderMetrics periodically refreshes the per-status order gauges.
// Statuses with no orders are reset to zero so a drained status does not
// keep reporting its last value.
type OrderMetrics struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewOrderMetrics(log logger.Logger, service Service, interval time.Duration) *OrderMetrics {
	return &OrderMetrics{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (t *OrderMetrics) TTL() time.Duration {
	return t.interval
}

func (t *OrderMetrics) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, t.interval)
	defer cancel()

	counts, err := t.service.StatusCounts(ctxWithTimeout)
	if err != nil {
		return err
	}

	statuses := []entities.OrderStatusType{
		entities.OrderAwaitingPrice,
		entities.OrderInProgress,
		entities.OrderAwaitingConfirmation,
		entities.OrderCompleted,
		entities.OrderCancelled,
	}
	for _, status := range statuses {
		metrics.OrdersByStatus.WithLabelValues(status.String()).Set(float64(counts[status]))
	}

	return nil
}

func (t *OrderMetrics) Info() string {
	return "order metrics refresh"
}
