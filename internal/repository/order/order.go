package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, service_id,
		buyer_id, buyer_name, buyer_avatar,
		provider_id, provider_name, provider_avatar,
		status, base_price, final_price, price_fixed, note,
		rating, review, created_at, updated_at, completed_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	orderModel := FromDomain(&orderEntity)

	query := `
		INSERT INTO orders (id, service_id,
			buyer_id, buyer_name, buyer_avatar,
			provider_id, provider_name, provider_avatar,
			status, base_price, final_price, price_fixed, note,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + orderColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		orderModel.ID,
		orderModel.ServiceID,
		orderModel.BuyerID,
		orderModel.BuyerName,
		orderModel.BuyerAvatar,
		orderModel.ProviderID,
		orderModel.ProviderName,
		orderModel.ProviderAvatar,
		orderModel.Status,
		orderModel.BasePrice,
		orderModel.FinalPrice,
		orderModel.PriceFixed,
		orderModel.Note,
		orderModel.CreatedAt,
		orderModel.UpdatedAt,
	)

	created, err := scanOrder(row)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return nil, order.ErrInvalidParticipants
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	orderEntity, err := scanOrder(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return orderEntity, nil
}

// UpdateWhereStatus is the compare-and-set behind every transition: the row is
// updated only while its status still matches what the caller observed. A
// vanished row after a successful read means the status changed underneath.
func (r *Repository) UpdateWhereStatus(ctx context.Context, orderModifyEntity entities.OrderModify, expectedStatus entities.OrderStatusType) (*entities.Order, error) {
	orderModifyModel := FromDomainModify(&orderModifyEntity)
	if orderModifyModel.ID == nil {
		return nil, order.ErrMissingRequiredFields
	}

	builder := qb.Update("orders")

	if orderModifyModel.Status != nil {
		builder = builder.Set("status", orderModifyModel.Status)
	}
	if orderModifyModel.FinalPrice != nil {
		builder = builder.Set("final_price", orderModifyModel.FinalPrice)
	}
	if orderModifyModel.PriceFixed != nil {
		builder = builder.Set("price_fixed", orderModifyModel.PriceFixed)
	}
	if orderModifyModel.Rating != nil {
		builder = builder.Set("rating", orderModifyModel.Rating)
	}
	if orderModifyModel.Review != nil {
		builder = builder.Set("review", orderModifyModel.Review)
	}
	if orderModifyModel.CompletedAt != nil {
		builder = builder.Set("completed_at", orderModifyModel.CompletedAt)
	}
	if orderModifyModel.UpdatedAt != nil {
		builder = builder.Set("updated_at", orderModifyModel.UpdatedAt)
	} else {
		builder = builder.Set("updated_at", sq.Expr("NOW()"))
	}

	builder = builder.
		Where(sq.Eq{"id": orderModifyModel.ID, "status": expectedStatus.String()}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	updated, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyMissedUpdate(ctx, *orderModifyModel.ID)
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return updated, nil
}

// classifyMissedUpdate distinguishes a missing order from a lost status race.
func (r *Repository) classifyMissedUpdate(ctx context.Context, id string) error {
	_, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return order.ErrInvalidTransition
}

func (r *Repository) GetByBuyer(ctx context.Context, buyerID string) ([]entities.Order, error) {
	return r.getByParticipant(ctx, "buyer_id", buyerID)
}

func (r *Repository) GetByProvider(ctx context.Context, providerID string) ([]entities.Order, error) {
	return r.getByParticipant(ctx, "provider_id", providerID)
}

func (r *Repository) getByParticipant(ctx context.Context, column, participantID string) ([]entities.Order, error) {
	query, args, err := qb.
		Select(orderColumns).
		From("orders").
		Where(sq.Eq{column: participantID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderModel OrderDB
		if err := scanOrderInto(rows, &orderModel); err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	return ToDomainList(orderModels), nil
}

func (r *Repository) ProviderStats(ctx context.Context, providerID string) (*entities.ProviderStats, error) {
	query := `
		SELECT
			COALESCE(SUM(COALESCE(final_price, base_price)), 0),
			COALESCE(AVG(rating), 0),
			COUNT(rating),
			COUNT(*)
		FROM orders
		WHERE provider_id = $1 AND status = 'completed'`

	var statsModel ProviderStatsDB
	err := r.querier.QueryRow(ctx, query, providerID).Scan(
		&statsModel.TotalEarnings,
		&statsModel.AverageRating,
		&statsModel.RatingsCount,
		&statsModel.CompletedOrders,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository stats error: %w", err)
	}

	breakdown, err := r.ratingBreakdown(ctx, providerID)
	if err != nil {
		return nil, err
	}

	return &entities.ProviderStats{
		TotalEarnings:   statsModel.TotalEarnings,
		AverageRating:   statsModel.AverageRating,
		RatingsCount:    statsModel.RatingsCount,
		CompletedOrders: statsModel.CompletedOrders,
		RatingBreakdown: breakdown,
	}, nil
}

func (r *Repository) ratingBreakdown(ctx context.Context, providerID string) (map[int]int64, error) {
	query := `
		SELECT rating, COUNT(*)
		FROM orders
		WHERE provider_id = $1 AND status = 'completed' AND rating IS NOT NULL
		GROUP BY rating`

	rows, err := r.querier.Query(ctx, query, providerID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository stats error: %w", err)
	}
	defer rows.Close()

	breakdown := make(map[int]int64, 5)
	for rows.Next() {
		var rating int
		var count int64
		if err := rows.Scan(&rating, &count); err != nil {
			return nil, fmt.Errorf("unexpected order repository stats error: %w", err)
		}
		breakdown[rating] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository stats error: %w", err)
	}

	return breakdown, nil
}

func (r *Repository) ActiveCountByParticipant(ctx context.Context, participantID string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM orders
		WHERE (buyer_id = $1 OR provider_id = $1)
		AND status NOT IN ('completed', 'cancelled')`

	var count int64
	err := r.querier.QueryRow(ctx, query, participantID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository active count error: %w", err)
	}

	return count, nil
}

func (r *Repository) CountByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error) {
	query := `
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository count by status error: %w", err)
	}
	defer rows.Close()

	counts := make(map[entities.OrderStatusType]int64, 5)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("unexpected order repository count by status error: %w", err)
		}
		counts[entities.OrderStatusType(status)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository count by status error: %w", err)
	}

	return counts, nil
}

func scanOrder(row pgx.Row) (*entities.Order, error) {
	var orderModel OrderDB
	if err := scanOrderInto(row, &orderModel); err != nil {
		return nil, err
	}
	return ToDomain(&orderModel), nil
}

func scanOrderInto(row pgx.Row, orderModel *OrderDB) error {
	return row.Scan(
		&orderModel.ID,
		&orderModel.ServiceID,
		&orderModel.BuyerID,
		&orderModel.BuyerName,
		&orderModel.BuyerAvatar,
		&orderModel.ProviderID,
		&orderModel.ProviderName,
		&orderModel.ProviderAvatar,
		&orderModel.Status,
		&orderModel.BasePrice,
		&orderModel.FinalPrice,
		&orderModel.PriceFixed,
		&orderModel.Note,
		&orderModel.Rating,
		&orderModel.Review,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
		&orderModel.CompletedAt,
	)
}
