package cmd

import (
	"log/slog"
	"os"

	httpin "retail/internal/adapters/in/http"
	"retail/internal/adapters/out/notification"
	"retail/internal/adapters/out/payment"
	"retail/internal/adapters/out/postgres/snapshotrepo"
	"retail/internal/core/application/usecases/commands"
	"retail/internal/core/application/usecases/queries"
	"retail/internal/core/domain/model/order"
	"retail/internal/core/domain/services"
	"retail/internal/core/ports"
	"retail/internal/jobs"
	"retail/internal/pkg/retry"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	logger *slog.Logger

	orderManager   *services.OrderManager
	productCatalog *services.ProductCatalog

	paymentGateway     order.PaymentGateway
	notificationSender ports.NotificationSender
	snapshotRepository ports.SnapshotRepository
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gateway, err := payment.NewHTTPGateway(config.PaymentGatewayURL, nil)
	if err != nil {
		return CompositionRoot{}, err
	}

	policy := retry.DefaultPolicy()
	if config.NotificationMaxAttempts > 0 {
		policy.MaxAttempts = config.NotificationMaxAttempts
	}
	sender, err := notification.NewEmailSender(
		notification.NewLogTransport(logger), policy, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		logger:             logger,
		orderManager:       services.NewOrderManager(),
		productCatalog:     services.NewProductCatalog(),
		paymentGateway:     gateway,
		notificationSender: sender,
		snapshotRepository: snapshotrepo.NewGormSnapshotRepository(gormDB),
	}, nil
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) OrderManager() *services.OrderManager {
	return c.orderManager
}

func (c *CompositionRoot) ProductCatalog() *services.ProductCatalog {
	return c.productCatalog
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.orderManager, c.snapshotRepository, c.logger)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		commands.NewCreateOrderCommandHandler(c.orderManager),
		commands.NewAddItemCommandHandler(c.orderManager, c.productCatalog),
		commands.NewRemoveItemCommandHandler(c.orderManager),
		commands.NewApplyDiscountCommandHandler(c.orderManager, c.logger),
		commands.NewProcessPaymentCommandHandler(
			c.orderManager, c.paymentGateway, c.notificationSender, c.logger),
		commands.NewShipOrderCommandHandler(c.orderManager),
		commands.NewCancelOrderCommandHandler(c.orderManager),
		commands.NewCreateProductCommandHandler(c.productCatalog),
		commands.NewUpdateStockCommandHandler(c.productCatalog),
		queries.NewGetCustomerOrdersQueryHandler(c.orderManager),
		queries.NewGetOrdersByStatusQueryHandler(c.orderManager),
		queries.NewGetTotalRevenueQueryHandler(c.orderManager),
		queries.NewGetSalesReportQueryHandler(c.orderManager),
	)
}
