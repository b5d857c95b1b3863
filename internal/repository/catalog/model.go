package catalog

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

type ServiceDB struct {
	ID             string
	ProviderID     string
	ProviderName   string
	ProviderAvatar string
	Title          string
	Description    string
	Category       string
	Price          int64
	PriceType      string
	CreatedAt      time.Time
}

type RequestDB struct {
	ID              string
	RequesterID     string
	RequesterName   string
	RequesterAvatar string
	Title           string
	Description     string
	Category        string
	BudgetMin       int64
	BudgetMax       int64
	Status          string
	CreatedAt       time.Time
}

type ProposalDB struct {
	ID              string
	RequestID       string
	ProviderID      string
	ProviderName    string
	ProviderAvatar  string
	ProviderRating  float64
	ProviderReviews int
	Price           int64
	Message         string
	Timeline        string
	CreatedAt       time.Time
}
