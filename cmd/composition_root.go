package cmd

import (
	"log/slog"

	"atelier/internal/adapters/out/audit"
	"atelier/internal/adapters/out/postgres"
	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	auditLog   ports.AuditLog
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		auditLog:   audit.NewSlogAuditLog(logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateApproveOrderCommandHandler() commands.ApproveOrderCommandHandler {
	return commands.NewApproveOrderCommandHandler(c.orderUoWFactory(), c.auditLog, c.logger)
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	return commands.NewRejectOrderCommandHandler(c.orderUoWFactory(), c.auditLog, c.logger)
}

func (c *CompositionRoot) CreateAdvanceProductionCommandHandler() commands.AdvanceProductionCommandHandler {
	return commands.NewAdvanceProductionCommandHandler(c.productionUoWFactory(), c.auditLog, c.logger)
}

func (c *CompositionRoot) CreateSetChecklistStageCommandHandler() commands.SetChecklistStageCommandHandler {
	return commands.NewSetChecklistStageCommandHandler(c.productionUoWFactory(), c.auditLog, c.logger)
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.orderUoWFactory(), c.auditLog, c.logger)
}

func (c *CompositionRoot) CreatePayCommissionCommandHandler() commands.PayCommissionCommandHandler {
	return commands.NewPayCommissionCommandHandler(c.commissionUoWFactory(), c.auditLog, c.logger)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersInProductionQueryHandler() queries.GetOrdersInProductionQueryHandler {
	return queries.NewGetOrdersInProductionQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnpaidDeliveredOrdersQueryHandler() queries.GetUnpaidDeliveredOrdersQueryHandler {
	return queries.NewGetUnpaidDeliveredOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productionUoWFactory() commands.ProductionUoWFactory {
	return FuncProductionUoWFactory(func() commands.ProductionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) commissionUoWFactory() commands.CommissionUoWFactory {
	return FuncCommissionUoWFactory(func() commands.CommissionUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProductionUoWFactory func() commands.ProductionUoW

func (f FuncProductionUoWFactory) Create() commands.ProductionUoW {
	return f()
}

type FuncCommissionUoWFactory func() commands.CommissionUoW

func (f FuncCommissionUoWFactory) Create() commands.CommissionUoW {
	return f()
}
