package catalog

import (
	"context"
	"fmt"
	"strings"

	"marketplace/internal/entities"
)

// Catalog is the read side of the marketplace: listed services, buyer
// requests and provider proposals. Orders are opened against its entries but
// it never mutates them itself.
type Catalog struct {
	repository Repository
}

func New(repository Repository) *Catalog {
	return &Catalog{
		repository: repository,
	}
}

func (s *Catalog) GetService(ctx context.Context, id string) (*entities.ServiceListing, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrMissingRequiredFields
	}

	listing, err := s.repository.GetServiceByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get service listing: %w", err)
	}
	return listing, nil
}

// GetServices returns listings, optionally narrowed to one category.
func (s *Catalog) GetServices(ctx context.Context, category string) ([]entities.ServiceListing, error) {
	listings, err := s.repository.GetServices(ctx, strings.TrimSpace(category))
	if err != nil {
		return nil, fmt.Errorf("get service listings: %w", err)
	}
	return listings, nil
}

func (s *Catalog) GetRequest(ctx context.Context, id string) (*entities.Request, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrMissingRequiredFields
	}

	request, err := s.repository.GetRequestByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}
	return request, nil
}

// GetOpenRequests returns the requests still accepting proposals.
func (s *Catalog) GetOpenRequests(ctx context.Context) ([]entities.Request, error) {
	requests, err := s.repository.GetRequests(ctx, entities.RequestOpen)
	if err != nil {
		return nil, fmt.Errorf("get open requests: %w", err)
	}
	return requests, nil
}

func (s *Catalog) GetProposal(ctx context.Context, id string) (*entities.Proposal, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrMissingRequiredFields
	}

	proposal, err := s.repository.GetProposalByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get proposal: %w", err)
	}
	return proposal, nil
}

func (s *Catalog) GetProposalsForRequest(ctx context.Context, requestID string) ([]entities.Proposal, error) {
	if strings.TrimSpace(requestID) == "" {
		return nil, ErrMissingRequiredFields
	}

	proposals, err := s.repository.GetProposalsByRequest(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get proposals for request: %w", err)
	}
	return proposals, nil
}
