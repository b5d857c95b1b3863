//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=services_get_test
package services_get

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
	GetServices(ctx context.Context, category string) ([]entities.ServiceListing, error)
}
