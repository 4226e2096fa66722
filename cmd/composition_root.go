package cmd

import (
	"log/slog"

	httpin "orders/internal/adapters/in/http"
	"orders/internal/adapters/out/kafka"
	"orders/internal/adapters/out/postgres"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. Handlers are
// created per call; the shared pieces are the database handle, the unit of
// work factory and the event publisher.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewCompositionRoot(gormDB *gorm.DB, publisher *kafka.Publisher, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		logger:     logger,
	}
}

func (c *CompositionRoot) commandUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.commandUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.commandUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.commandUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateRequestReturnCommandHandler() commands.RequestReturnCommandHandler {
	return commands.NewRequestReturnCommandHandler(c.commandUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFindOrderByPaymentQueryHandler() queries.FindOrderByPaymentQueryHandler {
	return queries.NewFindOrderByPaymentQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the REST adapter with every handler wired.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateRequestReturnCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetOrderHistoryQueryHandler(),
		c.CreateFindOrderByPaymentQueryHandler(),
		c.logger,
	)
}

// FuncUoWFactory adapts a closure over the concrete unit of work factory
// to the commands' factory interface.
type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
