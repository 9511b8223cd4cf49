package cmd

import (
	"context"
	"errors"
	"log/slog"

	httpapi "atelier/internal/adapters/in/http"
	"atelier/internal/adapters/out/memory"
	"atelier/internal/adapters/out/postgres/atelierrepo"
	"atelier/internal/adapters/out/remote"
	"atelier/internal/core/application/synchronizer"
	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/services"
	"atelier/internal/core/ports"
	"atelier/internal/jobs"
	"atelier/internal/pkg/clock"

	"gorm.io/gorm"
)

var ErrNoAtelierStore = errors.New("either REMOTE_STORE_URL or DB_HOST must be set")

type CompositionRoot struct {
	configs Config
	gormDB  *gorm.DB
	logger  *slog.Logger
	clock   clock.Clock

	ledger       *memory.Ledger
	uowFactory   *memory.UnitOfWorkFactory
	sessions     *memory.SessionRepository
	synchronizer *synchronizer.Synchronizer

	pipeline services.Pipeline
	emitter  services.NotificationEmitter
}

// NewCompositionRoot wires the ledger and its synchronizer. gormDB may be nil
// when the aggregate lives behind a remote backend.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	policy, err := order.ParseTransitionPolicy(configs.PipelineTransitions)
	if err != nil {
		return CompositionRoot{}, err
	}

	var store ports.AtelierStore
	switch {
	case configs.UsesRemoteStore():
		if store, err = remote.NewStore(configs.RemoteStoreURL, nil); err != nil {
			return CompositionRoot{}, err
		}
	case gormDB != nil:
		store = atelierrepo.NewGormAtelierStore(gormDB)
	default:
		return CompositionRoot{}, ErrNoAtelierStore
	}

	c := clock.NewSystem()
	syncer := synchronizer.New(store, c, logger, synchronizer.WithDebounce(configs.SyncDebounce()))
	ledger := memory.NewLedger(syncer)

	return CompositionRoot{
		configs:      configs,
		gormDB:       gormDB,
		logger:       logger,
		clock:        c,
		ledger:       ledger,
		uowFactory:   memory.NewUnitOfWorkFactory(ledger),
		sessions:     memory.NewSessionRepository(),
		synchronizer: syncer,
		pipeline:     services.NewPipeline(policy),
		emitter:      services.NewNotificationEmitter(c),
	}, nil
}

// Hydrate loads the configured atelier into the ledger.
func (c *CompositionRoot) Hydrate(ctx context.Context) error {
	return c.synchronizer.Hydrate(ctx, c.ledger, c.configs.AtelierID)
}

// Flush writes any pending snapshot. It is called on shutdown.
func (c *CompositionRoot) Flush(ctx context.Context) error {
	return c.synchronizer.Flush(ctx)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.synchronizer, c.logger)
}

func (c *CompositionRoot) CreateServer() *httpapi.Server {
	handlers := httpapi.Handlers{
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		SetStatus:         c.CreateSetStatusCommandHandler(),
		SetPrice:          c.CreateSetPriceCommandHandler(),
		AssignOrder:       c.CreateAssignOrderCommandHandler(),
		ClaimOrder:        c.CreateClaimOrderCommandHandler(),
		CreateWorkstation: c.CreateCreateWorkstationCommandHandler(),
		MarkRead:          c.CreateMarkNotificationReadCommandHandler(),
		EnterMode:         c.CreateEnterModeCommandHandler(),
		ExitMode:          commands.NewExitModeCommandHandler(c.sessions),
		Navigate:          c.CreateNavigateCommandHandler(),
		Kanban:            queries.NewGetKanbanQueryHandler(c.ledger),
		Orders:            queries.NewGetOrdersQueryHandler(c.ledger, c.clock),
		Notifications:     queries.NewGetNotificationsQueryHandler(c.ledger),
	}

	// the aggregate store routes are only hosted next to the database
	var backend ports.AtelierStore
	if c.gormDB != nil {
		backend = atelierrepo.NewGormAtelierStore(c.gormDB)
	}
	return httpapi.NewServer(handlers, c.sessions, backend)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateSetStatusCommandHandler() commands.SetStatusCommandHandler {
	return commands.NewSetStatusCommandHandler(c.uow(), c.pipeline, c.emitter)
}

func (c *CompositionRoot) CreateSetPriceCommandHandler() commands.SetPriceCommandHandler {
	return commands.NewSetPriceCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	return commands.NewAssignOrderCommandHandler(c.uow(), c.emitter)
}

func (c *CompositionRoot) CreateClaimOrderCommandHandler() commands.ClaimOrderCommandHandler {
	return commands.NewClaimOrderCommandHandler(c.uow(), c.emitter)
}

func (c *CompositionRoot) CreateCreateWorkstationCommandHandler() commands.CreateWorkstationCommandHandler {
	var f commands.WorkstationUoWFactory = FuncWorkstationUoWFactory(func() commands.WorkstationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateWorkstationCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() commands.MarkNotificationReadCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkNotificationReadCommandHandler(f)
}

func (c *CompositionRoot) CreateEnterModeCommandHandler() commands.EnterModeCommandHandler {
	return commands.NewEnterModeCommandHandler(c.access(), c.sessions, c.clock)
}

func (c *CompositionRoot) CreateNavigateCommandHandler() commands.NavigateCommandHandler {
	return commands.NewNavigateCommandHandler(c.access(), c.sessions, c.clock)
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) access() commands.AccessUoWFactory {
	return FuncAccessUoWFactory(func() commands.AccessUoW {
		return c.uowFactory.Create()
	})
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncWorkstationUoWFactory func() commands.WorkstationUoW

func (f FuncWorkstationUoWFactory) Create() commands.WorkstationUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}

type FuncAccessUoWFactory func() commands.AccessUoW

func (f FuncAccessUoWFactory) Create() commands.AccessUoW {
	return f()
}
