package cmd

import (
	"log/slog"

	"sales/internal/adapters/out/cache"
	"sales/internal/adapters/out/postgres"
	"sales/internal/adapters/out/postgres/orderrequestrepo"
	"sales/internal/adapters/out/postgres/ordersalerepo"
	"sales/internal/adapters/out/postgres/transferreceiptrepo"
	"sales/internal/adapters/out/postgres/userrolerepo"
	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/application/usecases/queries"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/services"
	"sales/internal/core/ports"
	"sales/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	roles      ports.RoleProvider
	gatekeeper services.LifecycleGatekeeper
	cache      ports.ProductQuantityCache
	publisher  ports.EventPublisher
	configs    Config
	logger     *slog.Logger
}

func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CompositionRoot {
	capability := services.NewNamedRoleCapability(kernel.Role(configs.AdminRole))
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		roles:      userrolerepo.NewGormRoleProvider(gormDB),
		gatekeeper: services.NewLifecycleGatekeeper(capability),
		cache:      cache.NewLRUProductQuantityCache(configs.CacheSize, configs.CacheTTL),
		publisher:  publisher,
		configs:    configs,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateUpsertOrderSaleCommandHandler() *commands.UpsertOrderSaleCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	validator := services.NewOrderSaleValidator(c.gatekeeper, services.NewQuantityReconciler())
	h := commands.NewUpsertOrderSaleCommandHandler(f, c.roles, validator, c.cache, c.publisher, c.logger)
	return &h
}

func (c *CompositionRoot) CreateDeleteOrderSaleCommandHandler() *commands.DeleteOrderSaleCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	h := commands.NewDeleteOrderSaleCommandHandler(f, c.roles, c.gatekeeper, c.cache, c.publisher, c.logger)
	return &h
}

func (c *CompositionRoot) CreateGetOrderSaleTotalsQueryHandler() queries.GetOrderSaleTotalsQueryHandler {
	return queries.NewGetOrderSaleTotalsQueryHandler(c.gormDB, services.NewTotalsCalculator())
}

func (c *CompositionRoot) CreateGetOrderSaleLifecycleQueryHandler() queries.GetOrderSaleLifecycleQueryHandler {
	return queries.NewGetOrderSaleLifecycleQueryHandler(
		orderrequestrepo.NewGormOrderRequestRepository(c.gormDB),
		ordersalerepo.NewGormOrderSaleRepository(c.gormDB),
		transferreceiptrepo.NewGormTransferReceiptRepository(c.gormDB),
		c.roles,
		c.gatekeeper,
	)
}

func (c *CompositionRoot) CreateGetSalesWithPaymentDisparitiesQueryHandler() queries.GetSalesWithPaymentDisparitiesQueryHandler {
	return queries.NewGetSalesWithPaymentDisparitiesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderSaleMaxOrderCodeQueryHandler() queries.GetOrderSaleMaxOrderCodeQueryHandler {
	return queries.NewGetOrderSaleMaxOrderCodeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderRequestRemainingProductsQueryHandler() queries.GetOrderRequestRemainingProductsQueryHandler {
	return queries.NewGetOrderRequestRemainingProductsQueryHandler(c.gormDB, services.NewQuantityReconciler())
}

func (c *CompositionRoot) CreateGetProductSoldQuantityQueryHandler() queries.GetProductSoldQuantityQueryHandler {
	return queries.NewGetProductSoldQuantityQueryHandler(c.gormDB, c.cache)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetSalesWithPaymentDisparitiesQueryHandler(),
		c.publisher,
		c.configs.DisparityJobSchedule,
		c.logger,
	)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
