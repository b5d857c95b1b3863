//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_price_post_test
package order_price_post

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	FixPrice(ctx context.Context, orderID string, amount int64, actingProviderID string) (*entities.Order, error)
}
