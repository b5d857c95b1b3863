//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"marketplace/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, order entities.Order) (*entities.Order, error)
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	// UpdateWhereStatus applies the modification only when the stored status
	// still equals expectedStatus; no matching row means the transition lost
	// the race and nothing changes.
	UpdateWhereStatus(ctx context.Context, orderModify entities.OrderModify, expectedStatus entities.OrderStatusType) (*entities.Order, error)

	GetByBuyer(ctx context.Context, buyerID string) ([]entities.Order, error)
	GetByProvider(ctx context.Context, providerID string) ([]entities.Order, error)
	ProviderStats(ctx context.Context, providerID string) (*entities.ProviderStats, error)
	ActiveCountByParticipant(ctx context.Context, participantID string) (int64, error)
	CountByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error)
}

type Catalog interface {
	GetService(ctx context.Context, id string) (*entities.ServiceListing, error)
	GetRequest(ctx context.Context, id string) (*entities.Request, error)
	GetProposal(ctx context.Context, id string) (*entities.Proposal, error)
}

// EventPublisher is fire-and-forget: the implementation owns retries and
// failure logging, a lost event never fails the transition that produced it.
type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, event entities.OrderStatusChanged)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
