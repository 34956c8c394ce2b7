package cmd

import (
	"fmt"
	"log/slog"

	httpadapter "dispatch/internal/adapters/in/http"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires handlers on top of one unit of work factory. It owns the single
// OrderAssigner of the process, which every assigning handler must share.
type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory ports.UnitOfWorkFactory
	clock      kernel.Clock
	assigner   *commands.OrderAssigner
	logger     *slog.Logger
}

func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	uowFactory ports.UnitOfWorkFactory,
	notifier ports.Notifier,
	clock kernel.Clock,
	logger *slog.Logger,
) (*CompositionRoot, error) {
	adminNumber, err := kernel.NewPhoneNumber(cfg.AdminWhatsAppNumber)
	if err != nil {
		return nil, fmt.Errorf("ADMIN_WHATSAPP_NUMBER: %w", err)
	}

	location, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	c := &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: uowFactory,
		clock:      clock,
		logger:     logger,
	}

	c.assigner, err = commands.NewOrderAssigner(
		c.uow(),
		notifier,
		services.NewMessageComposer(location),
		clock,
		commands.AssignmentSettings{
			AdminNumber:    adminNumber,
			MaxAttempts:    cfg.AssignmentMaxAttempts,
			InitialBackoff: cfg.AssignmentInitialBackoff,
			MaxBackoff:     cfg.AssignmentMaxBackoff,
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("assignment settings: %w", err)
	}

	return c, nil
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoW() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) workerUoW() commands.WorkerUoWFactory {
	return FuncWorkerUoWFactory(func() commands.WorkerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) offerUoW() commands.OfferUoWFactory {
	return FuncOfferUoWFactory(func() commands.OfferUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(c.orderUoW(), c.assigner, c.clock)
}

func (c *CompositionRoot) CreateRetryOrderAssignmentCommandHandler() commands.RetryOrderAssignmentCommandHandler {
	return commands.NewRetryOrderAssignmentCommandHandler(c.assigner)
}

func (c *CompositionRoot) CreateAssignNextPendingOrderCommandHandler() commands.AssignNextPendingOrderCommandHandler {
	return commands.NewAssignNextPendingOrderCommandHandler(c.orderUoW(), c.assigner)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderUoW())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoW())
}

func (c *CompositionRoot) CreateAddWorkerCommandHandler() commands.AddWorkerCommandHandler {
	return commands.NewAddWorkerCommandHandler(c.workerUoW(), c.clock)
}

func (c *CompositionRoot) CreateUpdateWorkerCommandHandler() commands.UpdateWorkerCommandHandler {
	return commands.NewUpdateWorkerCommandHandler(c.workerUoW())
}

func (c *CompositionRoot) CreateSetWorkerStatusCommandHandler() commands.SetWorkerStatusCommandHandler {
	return commands.NewSetWorkerStatusCommandHandler(c.workerUoW())
}

func (c *CompositionRoot) CreateDeleteWorkerCommandHandler() commands.DeleteWorkerCommandHandler {
	return commands.NewDeleteWorkerCommandHandler(c.workerUoW())
}

func (c *CompositionRoot) CreateCreateOfferCommandHandler() commands.CreateOfferCommandHandler {
	return commands.NewCreateOfferCommandHandler(c.offerUoW(), c.clock)
}

func (c *CompositionRoot) CreateUpdateOfferCommandHandler() commands.UpdateOfferCommandHandler {
	return commands.NewUpdateOfferCommandHandler(c.offerUoW())
}

func (c *CompositionRoot) CreateSetOfferStatusCommandHandler() commands.SetOfferStatusCommandHandler {
	return commands.NewSetOfferStatusCommandHandler(c.offerUoW())
}

func (c *CompositionRoot) CreateDeleteOfferCommandHandler() commands.DeleteOfferCommandHandler {
	return commands.NewDeleteOfferCommandHandler(c.offerUoW())
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllWorkersQueryHandler() queries.GetAllWorkersQueryHandler {
	return queries.NewGetAllWorkersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOffersQueryHandler() queries.GetOffersQueryHandler {
	return queries.NewGetOffersQueryHandler(c.gormDB, c.clock)
}

func (c *CompositionRoot) CreateAdminGate() (*httpadapter.AdminGate, error) {
	return httpadapter.NewAdminGate(c.cfg.AdminPassword, c.cfg.AdminTokenSecret, c.cfg.AdminTokenTTL, c.clock)
}

// CreateServer bundles every handler behind the REST API.
func (c *CompositionRoot) CreateServer() (*httpadapter.Server, error) {
	gate, err := c.CreateAdminGate()
	if err != nil {
		return nil, err
	}

	return httpadapter.NewServer(
		httpadapter.CommandHandlers{
			SubmitOrder:     c.CreateSubmitOrderCommandHandler(),
			RetryAssignment: c.CreateRetryOrderAssignmentCommandHandler(),
			CompleteOrder:   c.CreateCompleteOrderCommandHandler(),
			DeleteOrder:     c.CreateDeleteOrderCommandHandler(),
			AddWorker:       c.CreateAddWorkerCommandHandler(),
			UpdateWorker:    c.CreateUpdateWorkerCommandHandler(),
			SetWorkerStatus: c.CreateSetWorkerStatusCommandHandler(),
			DeleteWorker:    c.CreateDeleteWorkerCommandHandler(),
			CreateOffer:     c.CreateCreateOfferCommandHandler(),
			UpdateOffer:     c.CreateUpdateOfferCommandHandler(),
			SetOfferStatus:  c.CreateSetOfferStatusCommandHandler(),
			DeleteOffer:     c.CreateDeleteOfferCommandHandler(),
		},
		httpadapter.QueryHandlers{
			Orders:  c.CreateGetAllOrdersQueryHandler(),
			Workers: c.CreateGetAllWorkersQueryHandler(),
			Offers:  c.CreateGetOffersQueryHandler(),
		},
		gate,
	), nil
}

// CreateJobManager returns a manager without the sweep when its schedule is empty.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	if c.cfg.AssignmentSweepSchedule == "" {
		return jobs.NewJobManager(nil, c.logger), nil
	}

	sweep, err := jobs.NewPendingOrderAssignmentJob(
		c.CreateAssignNextPendingOrderCommandHandler(),
		c.cfg.AssignmentSweepSchedule,
		c.cfg.AssignmentSweepBatch,
		c.logger,
	)
	if err != nil {
		return nil, fmt.Errorf("ASSIGNMENT_SWEEP_BATCH: %w", err)
	}

	return jobs.NewJobManager(sweep, c.logger), nil
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncWorkerUoWFactory func() commands.WorkerUoW

func (f FuncWorkerUoWFactory) Create() commands.WorkerUoW {
	return f()
}

type FuncOfferUoWFactory func() commands.OfferUoW

func (f FuncOfferUoWFactory) Create() commands.OfferUoW {
	return f()
}
