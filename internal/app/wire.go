//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"marketplace/internal/gateway/kafka/orderevents"
	notifications_get "marketplace/internal/handlers/rest/notifications_get"
	order_cancel_post "marketplace/internal/handlers/rest/order_cancel_post"
	order_confirm_post "marketplace/internal/handlers/rest/order_confirm_post"
	order_done_post "marketplace/internal/handlers/rest/order_done_post"
	order_from_proposal_post "marketplace/internal/handlers/rest/order_from_proposal_post"
	order_get "marketplace/internal/handlers/rest/order_get"
	order_post "marketplace/internal/handlers/rest/order_post"
	order_price_post "marketplace/internal/handlers/rest/order_price_post"
	orders_get "marketplace/internal/handlers/rest/orders_get"
	provider_stats_get "marketplace/internal/handlers/rest/provider_stats_get"
	request_proposals_get "marketplace/internal/handlers/rest/request_proposals_get"
	requests_get "marketplace/internal/handlers/rest/requests_get"
	services_get "marketplace/internal/handlers/rest/services_get"
	"marketplace/internal/handlers/tasks/order_metrics"
	"marketplace/internal/pkg/config"

	catalogRepo "marketplace/internal/repository/catalog"
	notificationRepo "marketplace/internal/repository/notification"
	orderRepo "marketplace/internal/repository/order"
	catalogService "marketplace/internal/service/catalog"
	notificationService "marketplace/internal/service/notification"
	orderService "marketplace/internal/service/order"

	"marketplace/pkg/background"
	"marketplace/pkg/logger"
	"marketplace/pkg/querier"
	"marketplace/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	MetricsRefreshInterval time.Duration
)

type Application struct {
	ServiceOrder        ServiceOrder
	ServiceCatalog      ServiceCatalog
	ServiceNotification ServiceNotification
	BackgroundWorkers   *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	order_from_proposal_post.Service
	order_get.Service
	orders_get.Service
	order_price_post.Service
	order_done_post.Service
	order_confirm_post.Service
	order_cancel_post.Service
	provider_stats_get.Service
}

type ServiceCatalog interface {
	services_get.Service
	requests_get.Service
	request_proposals_get.Service
}

type ServiceNotification interface {
	notifications_get.Service
}

// InitializeApplication for the HTTP service (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideMetricsRefreshInterval,

		provideOrderRepository,
		provideCatalogRepository,
		provideNotificationRepository,

		provideOrderEventsGateway,

		provideServiceCatalog,
		provideServiceOrder,
		provideServiceNotification,

		provideOrderMetricsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Orders)),
		wire.Bind(new(ServiceCatalog), new(*catalogService.Catalog)),
		wire.Bind(new(ServiceNotification), new(*notificationService.Notification)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.Catalog), new(*catalogService.Catalog)),
		wire.Bind(new(orderService.EventPublisher), new(*orderevents.Gateway)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(catalogService.Repository), new(*catalogRepo.Repository)),
		wire.Bind(new(notificationService.Repository), new(*notificationRepo.Repository)),

		wire.Bind(new(order_metrics.Service), new(*orderService.Orders)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	NotificationService *notificationService.Notification
}

// InitializeKafkaWorkerApp for the Kafka worker (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,

		provideNotificationRepository,
		provideServiceNotification,

		wire.Bind(new(notificationService.Repository), new(*notificationRepo.Repository)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideCatalogRepository(querier *querier.Querier) *catalogRepo.Repository {
	return catalogRepo.New(querier)
}

func provideNotificationRepository(querier *querier.Querier) *notificationRepo.Repository {
	return notificationRepo.New(querier)
}

func provideOrderEventsGateway(log logger.Logger, producer sarama.SyncProducer, cfg *config.Config) *orderevents.Gateway {
	return orderevents.New(log, producer, cfg.Kafka.Topic)
}

func provideServiceCatalog(repository catalogService.Repository) *catalogService.Catalog {
	return catalogService.New(repository)
}

func provideServiceOrder(
	repository orderService.Repository,
	catalog orderService.Catalog,
	events orderService.EventPublisher,
	txManager orderService.TxManager,
) *orderService.Orders {
	return orderService.New(
		repository,
		catalog,
		events,
		txManager,
	)
}

func provideServiceNotification(repository notificationService.Repository) *notificationService.Notification {
	return notificationService.New(repository)
}

func provideMetricsRefreshInterval(cfg *config.Config) MetricsRefreshInterval {
	return MetricsRefreshInterval(cfg.Tasks.OrderMetricsRefreshInterval)
}

func provideOrderMetricsTask(
	log logger.Logger,
	orderService order_metrics.Service,
	interval MetricsRefreshInterval,
) *order_metrics.OrderMetrics {
	return order_metrics.NewOrderMetrics(log, orderService, time.Duration(interval))
}

func provideTaskList(
	orderMetricsTask *order_metrics.OrderMetrics,
) []background.Task {
	return []background.Task{
		orderMetricsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
