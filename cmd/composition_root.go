package cmd

import (
	"log/slog"

	httpin "shiptrack/internal/adapters/in/http"
	"shiptrack/internal/adapters/out/postgres"
	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB       *gorm.DB
	storeFactory postgres.GormDualStoreFactory
	logger       *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:       gormDB,
		storeFactory: *postgres.NewGormDualStoreFactory(gormDB),
		logger:       logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.dualStoreFactory())
}

func (c *CompositionRoot) CreateRemoveOrderCommandHandler() commands.RemoveOrderCommandHandler {
	return commands.NewRemoveOrderCommandHandler(c.dualStoreFactory())
}

func (c *CompositionRoot) CreateUpdateParcelStatusCommandHandler() commands.UpdateParcelStatusCommandHandler {
	return commands.NewUpdateParcelStatusCommandHandler(c.dualStoreFactory())
}

func (c *CompositionRoot) CreateFlagParcelIssueCommandHandler() commands.FlagParcelIssueCommandHandler {
	return commands.NewFlagParcelIssueCommandHandler(c.dualStoreFactory())
}

func (c *CompositionRoot) CreateRepairMirrorCommandHandler() commands.RepairMirrorCommandHandler {
	return commands.NewRepairMirrorCommandHandler(c.dualStoreFactory())
}

func (c *CompositionRoot) CreateGetAllowedTransitionsQueryHandler() queries.GetAllowedTransitionsQueryHandler {
	return queries.NewGetAllowedTransitionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTrackingHistoryQueryHandler() queries.GetTrackingHistoryQueryHandler {
	return queries.NewGetTrackingHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderSummaryQueryHandler() queries.GetOrderSummaryQueryHandler {
	return queries.NewGetOrderSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateRemoveOrderCommandHandler(),
		c.CreateUpdateParcelStatusCommandHandler(),
		c.CreateFlagParcelIssueCommandHandler(),
		c.CreateGetAllowedTransitionsQueryHandler(),
		c.CreateGetTrackingHistoryQueryHandler(),
		c.CreateGetOrderSummaryQueryHandler(),
		c.CreateGetOrdersByStatusQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateRepairMirrorCommandHandler(), c.logger)
}

func (c *CompositionRoot) dualStoreFactory() commands.DualStoreFactory {
	return FuncDualStoreFactory(func() commands.DualStore {
		return c.storeFactory.Create()
	})
}

type FuncDualStoreFactory func() commands.DualStore

func (f FuncDualStoreFactory) Create() commands.DualStore {
	return f()
}
