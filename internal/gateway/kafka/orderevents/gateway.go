package orderevents

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"marketplace/internal/entities"
	"marketplace/pkg/logger"
	retrierconfig "marketplace/pkg/retrier"
	"marketplace/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// Gateway publishes order status changes to Kafka. Publishing is
// fire-and-forget: an order transition already committed must never be rolled
// back because the broker was down, so failures are retried briefly, then
// logged and dropped.
type Gateway struct {
	log      logger.Logger
	producer producer
	retrier  retrier
	topic    string
}

func New(log logger.Logger, producer producer, topic string) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     nil, // retry every error
	}

	return &Gateway{
		log:      log,
		producer: producer,
		retrier:  backoff_adapter.New(retryConfig),
		topic:    topic,
	}
}

func (g *Gateway) PublishStatusChanged(ctx context.Context, event entities.OrderStatusChanged) {
	payload, err := json.Marshal(FromDomain(event))
	if err != nil {
		g.log.Error("failed to encode order event",
			logger.NewField("order_id", event.OrderID),
			logger.NewField("error", err),
		)
		return
	}

	message := &sarama.ProducerMessage{
		Topic: g.topic,
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(payload),
	}

	var attempt uint64
	start := time.Now()

	err = g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		_, _, err := g.producer.SendMessage(message)
		return err
	})

	result := "ok"
	if err != nil {
		result = "error"
	}
	PublishDuration.WithLabelValues(g.topic, result).Observe(time.Since(start).Seconds())
	if attempt > 1 {
		PublishRetriesTotal.WithLabelValues(g.topic, result).Inc()
	}

	if err != nil {
		PublishDroppedTotal.WithLabelValues(g.topic).Inc()
		g.log.Error("order event dropped after retries",
			logger.NewField("order_id", event.OrderID),
			logger.NewField("status", event.Status.String()),
			logger.NewField("attempts", attempt),
			logger.NewField("error", err),
		)
		return
	}

	g.log.Debug("order event published",
		logger.NewField("order_id", event.OrderID),
		logger.NewField("status", event.Status.String()),
	)
}
