//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_from_proposal_post_test
package order_from_proposal_post

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
	CreateOrderFromProposal(ctx context.Context, proposalID string, buyer entities.Participant, note string) (*entities.Order, error)
}
