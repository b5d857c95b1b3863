package catalog

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/service/catalog"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const serviceColumns = `id, provider_id, provider_name, provider_avatar,
		title, description, category, price, price_type, created_at`

const requestColumns = `id, requester_id, requester_name, requester_avatar,
		title, description, category, budget_min, budget_max, status, created_at`

const proposalColumns = `id, request_id, provider_id, provider_name, provider_avatar,
		provider_rating, provider_reviews, price, message, timeline, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetServiceByID(ctx context.Context, id string) (*entities.ServiceListing, error) {
	query := `
		SELECT ` + serviceColumns + `
		FROM services
		WHERE id = $1`

	var serviceModel ServiceDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&serviceModel.ID,
		&serviceModel.ProviderID,
		&serviceModel.ProviderName,
		&serviceModel.ProviderAvatar,
		&serviceModel.Title,
		&serviceModel.Description,
		&serviceModel.Category,
		&serviceModel.Price,
		&serviceModel.PriceType,
		&serviceModel.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrServiceNotFound
		}
		return nil, fmt.Errorf("unexpected catalog repository get service error: %w", err)
	}

	return ToServiceDomain(&serviceModel), nil
}

func (r *Repository) GetServices(ctx context.Context, category string) ([]entities.ServiceListing, error) {
	builder := qb.
		Select(serviceColumns).
		From("services").
		OrderBy("created_at DESC")

	if category != "" {
		builder = builder.Where(sq.Eq{"category": category})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected catalog repository list services error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected catalog repository list services error: %w", err)
	}
	defer rows.Close()

	serviceModels := make([]ServiceDB, 0, 8)
	for rows.Next() {
		var serviceModel ServiceDB
		err := rows.Scan(
			&serviceModel.ID,
			&serviceModel.ProviderID,
			&serviceModel.ProviderName,
			&serviceModel.ProviderAvatar,
			&serviceModel.Title,
			&serviceModel.Description,
			&serviceModel.Category,
			&serviceModel.Price,
			&serviceModel.PriceType,
			&serviceModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected catalog repository list services error: %w", err)
		}
		serviceModels = append(serviceModels, serviceModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected catalog repository list services error: %w", err)
	}

	return ToServiceDomainList(serviceModels), nil
}

func (r *Repository) GetRequestByID(ctx context.Context, id string) (*entities.Request, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM requests
		WHERE id = $1`

	var requestModel RequestDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&requestModel.ID,
		&requestModel.RequesterID,
		&requestModel.RequesterName,
		&requestModel.RequesterAvatar,
		&requestModel.Title,
		&requestModel.Description,
		&requestModel.Category,
		&requestModel.BudgetMin,
		&requestModel.BudgetMax,
		&requestModel.Status,
		&requestModel.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrRequestNotFound
		}
		return nil, fmt.Errorf("unexpected catalog repository get request error: %w", err)
	}

	return ToRequestDomain(&requestModel), nil
}

func (r *Repository) GetRequests(ctx context.Context, status entities.RequestStatusType) ([]entities.Request, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM requests
		WHERE status = $1
		ORDER BY created_at DESC`

	rows, err := r.querier.Query(ctx, query, status.String())
	if err != nil {
		return nil, fmt.Errorf("unexpected catalog repository list requests error: %w", err)
	}
	defer rows.Close()

	requestModels := make([]RequestDB, 0, 8)
	for rows.Next() {
		var requestModel RequestDB
		err := rows.Scan(
			&requestModel.ID,
			&requestModel.RequesterID,
			&requestModel.RequesterName,
			&requestModel.RequesterAvatar,
			&requestModel.Title,
			&requestModel.Description,
			&requestModel.Category,
			&requestModel.BudgetMin,
			&requestModel.BudgetMax,
			&requestModel.Status,
			&requestModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected catalog repository list requests error: %w", err)
		}
		requestModels = append(requestModels, requestModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected catalog repository list requests error: %w", err)
	}

	return ToRequestDomainList(requestModels), nil
}

func (r *Repository) GetProposalByID(ctx context.Context, id string) (*entities.Proposal, error) {
	query := `
		SELECT ` + proposalColumns + `
		FROM proposals
		WHERE id = $1`

	var proposalModel ProposalDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&proposalModel.ID,
		&proposalModel.RequestID,
		&proposalModel.ProviderID,
		&proposalModel.ProviderName,
		&proposalModel.ProviderAvatar,
		&proposalModel.ProviderRating,
		&proposalModel.ProviderReviews,
		&proposalModel.Price,
		&proposalModel.Message,
		&proposalModel.Timeline,
		&proposalModel.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrProposalNotFound
		}
		return nil, fmt.Errorf("unexpected catalog repository get proposal error: %w", err)
	}

	return ToProposalDomain(&proposalModel), nil
}

func (r *Repository) GetProposalsByRequest(ctx context.Context, requestID string) ([]entities.Proposal, error) {
	query := `
		SELECT ` + proposalColumns + `
		FROM proposals
		WHERE request_id = $1
		ORDER BY created_at ASC`

	rows, err := r.querier.Query(ctx, query, requestID)
	if err != nil {
		return nil, fmt.Errorf("unexpected catalog repository list proposals error: %w", err)
	}
	defer rows.Close()

	proposalModels := make([]ProposalDB, 0, 8)
	for rows.Next() {
		var proposalModel ProposalDB
		err := rows.Scan(
			&proposalModel.ID,
			&proposalModel.RequestID,
			&proposalModel.ProviderID,
			&proposalModel.ProviderName,
			&proposalModel.ProviderAvatar,
			&proposalModel.ProviderRating,
			&proposalModel.ProviderReviews,
			&proposalModel.Price,
			&proposalModel.Message,
			&proposalModel.Timeline,
			&proposalModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected catalog repository list proposals error: %w", err)
		}
		proposalModels = append(proposalModels, proposalModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected catalog repository list proposals error: %w", err)
	}

	return ToProposalDomainList(proposalModels), nil
}
