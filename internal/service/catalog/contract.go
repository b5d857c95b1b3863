//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=catalog_test
package catalog

import (
	"context"

	"marketplace/internal/entities"
)

type Repository interface {
	GetServiceByID(ctx context.Context, id string) (*entities.ServiceListing, error)
	GetServices(ctx context.Context, category string) ([]entities.ServiceListing, error)
	GetRequestByID(ctx context.Context, id string) (*entities.Request, error)
	GetRequests(ctx context.Context, status entities.RequestStatusType) ([]entities.Request, error)
	GetProposalByID(ctx context.Context, id string) (*entities.Proposal, error)
	GetProposalsByRequest(ctx context.Context, requestID string) ([]entities.Proposal, error)
}
