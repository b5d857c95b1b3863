package catalog

import (
	"marketplace/internal/entities"
)

func ToServiceDomain(s *ServiceDB) *entities.ServiceListing {
	if s == nil {
		return nil
	}

	return &entities.ServiceListing{
		ID: s.ID,
		Provider: entities.Participant{
			ID:     s.ProviderID,
			Name:   s.ProviderName,
			Avatar: s.ProviderAvatar,
		},
		Title:       s.Title,
		Description: s.Description,
		Category:    s.Category,
		Price:       s.Price,
		PriceType:   entities.PriceType(s.PriceType),
		CreatedAt:   s.CreatedAt,
	}
}

func ToRequestDomain(r *RequestDB) *entities.Request {
	if r == nil {
		return nil
	}

	return &entities.Request{
		ID: r.ID,
		Requester: entities.Participant{
			ID:     r.RequesterID,
			Name:   r.RequesterName,
			Avatar: r.RequesterAvatar,
		},
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		BudgetMin:   r.BudgetMin,
		BudgetMax:   r.BudgetMax,
		Status:      entities.RequestStatusType(r.Status),
		CreatedAt:   r.CreatedAt,
	}
}

func ToProposalDomain(p *ProposalDB) *entities.Proposal {
	if p == nil {
		return nil
	}

	return &entities.Proposal{
		ID:        p.ID,
		RequestID: p.RequestID,
		Provider: entities.Participant{
			ID:     p.ProviderID,
			Name:   p.ProviderName,
			Avatar: p.ProviderAvatar,
		},
		ProviderRating:  p.ProviderRating,
		ProviderReviews: p.ProviderReviews,
		Price:           p.Price,
		Message:         p.Message,
		Timeline:        p.Timeline,
		CreatedAt:       p.CreatedAt,
	}
}

func ToServiceDomainList(servicesDB []ServiceDB) []entities.ServiceListing {
	if len(servicesDB) == 0 {
		return []entities.ServiceListing{}
	}

	result := make([]entities.ServiceListing, len(servicesDB))
	for i, serviceDB := range servicesDB {
		result[i] = *ToServiceDomain(&serviceDB)
	}
	return result
}

func ToRequestDomainList(requestsDB []RequestDB) []entities.Request {
	if len(requestsDB) == 0 {
		return []entities.Request{}
	}

	result := make([]entities.Request, len(requestsDB))
	for i, requestDB := range requestsDB {
		result[i] = *ToRequestDomain(&requestDB)
	}
	return result
}

func ToProposalDomainList(proposalsDB []ProposalDB) []entities.Proposal {
	if len(proposalsDB) == 0 {
		return []entities.Proposal{}
	}

	result := make([]entities.Proposal, len(proposalsDB))
	for i, proposalDB := range proposalsDB {
		result[i] = *ToProposalDomain(&proposalDB)
	}
	return result
}
