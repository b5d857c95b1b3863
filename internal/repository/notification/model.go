package notification

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

type NotificationDB struct {
	ID          string
	RecipientID string
	OrderID     string
	OrderStatus string
	Message     string
	CreatedAt   time.Time
}

type NotificationModifyDB struct {
	ID          *string
	RecipientID *string
	OrderID     *string
	OrderStatus *string
	Message     *string
	CreatedAt   *time.Time
}
