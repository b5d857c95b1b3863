//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=provider_stats_get_test
package provider_stats_get

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
	ProviderStats(ctx context.Context, providerID string) (*entities.ProviderStats, error)
}
