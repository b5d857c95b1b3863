package order

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type OrderDB struct {
	ID             string
	ServiceID      *string
	BuyerID        string
	BuyerName      string
	BuyerAvatar    string
	ProviderID     string
	ProviderName   string
	ProviderAvatar string
	Status         string
	BasePrice      int64
	FinalPrice     *int64
	PriceFixed     bool
	Note           string
	Rating         *int
	Review         *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	CompletedAt    *time.Time
}

type OrderModifyDB struct {
	ID          *string
	Status      *string
	FinalPrice  *int64
	PriceFixed  *bool
	Rating      *int
	Review      *string
	UpdatedAt   *time.Time
	CompletedAt *time.Time
}

type ProviderStatsDB struct {
	TotalEarnings   int64
	AverageRating   float64
	RatingsCount    int64
	CompletedOrders int64
}
