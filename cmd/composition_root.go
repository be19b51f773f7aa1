package cmd

import (
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	httpin "freightgate/internal/adapters/in/http"
	"freightgate/internal/adapters/out/carriers"
	"freightgate/internal/adapters/out/httpx"
	"freightgate/internal/adapters/out/memory"
	redisout "freightgate/internal/adapters/out/redis"
	"freightgate/internal/adapters/out/postgres/consignmentrepo"
	"freightgate/internal/adapters/out/postgres/outletdir"
	"freightgate/internal/core/application/creds"
	"freightgate/internal/core/application/usecases/commands"
	"freightgate/internal/core/application/usecases/queries"
	"freightgate/internal/core/domain/model/carrier"
	"freightgate/internal/core/ports"
	"freightgate/internal/jobs"
)

// CompositionRoot wires adapters into use case handlers. All process-scoped
// dependencies are built once here; request-scoped configuration flows
// through the credential resolver at call time.
type CompositionRoot struct {
	cfg    Config
	gormDB *gorm.DB
	logger *slog.Logger
	clock  ports.Clock

	consignments    *consignmentrepo.GormConsignmentRepository
	resolver        *creds.Resolver
	registryFactory ports.AdapterRegistryFactory
	replay          ports.ReplayCache
	rate            ports.RateCounter
}

// FuncAdapterRegistryFactory adapts a closure to the registry factory port.
type FuncAdapterRegistryFactory func(cfg carrier.GatewayConfig) ports.AdapterRegistry

// Registry builds a registry for one request's configuration.
func (f FuncAdapterRegistryFactory) Registry(cfg carrier.GatewayConfig) ports.AdapterRegistry {
	return f(cfg)
}

// NewCompositionRoot assembles the object graph.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	clock := ports.Clock(time.Now)

	factory := carriers.NewFactory(httpx.NewClient(), clock)
	var registryFactory ports.AdapterRegistryFactory = FuncAdapterRegistryFactory(
		func(cfg carrier.GatewayConfig) ports.AdapterRegistry {
			return factory.Registry(cfg)
		})

	root := CompositionRoot{
		cfg:    cfg,
		gormDB: gormDB,
		logger: logger,
		clock:  clock,

		consignments:    consignmentrepo.NewGormConsignmentRepository(gormDB),
		registryFactory: registryFactory,
	}

	root.resolver = creds.NewResolver(
		outletdir.NewGormOutletDirectory(gormDB), root.defaults(), logger)

	if cfg.RedisAddr != "" {
		client := goredis.NewClient(&goredis.Options{Addr: cfg.RedisAddr})
		root.replay = redisout.NewReplayCache(client)
		root.rate = redisout.NewRateCounter(client)
	} else {
		root.replay = memory.NewReplayCache(clock)
		root.rate = memory.NewRateCounter(clock)
	}

	return root
}

// defaults translates environment configuration into the resolver's fallback.
func (c *CompositionRoot) defaults() creds.Defaults {
	d := creds.Defaults{
		Rules:     c.cfg.Rules,
		DimFactor: c.cfg.DimFactor,
		NZPost: creds.CarrierDefaults{
			Enabled:    c.cfg.NZPostAPIKey != "" && c.cfg.NZPostSubscriptionKey != "",
			ForcedMode: carrier.Mode(c.cfg.NZPostMode),
			BaseURL:    c.cfg.NZPostBase,
			Keys: carrier.Credentials{
				APIKey:          c.cfg.NZPostAPIKey,
				SubscriptionKey: c.cfg.NZPostSubscriptionKey,
			},
		},
		NZCouriers: creds.CarrierDefaults{
			Enabled:    c.cfg.NZCGSSToken != "",
			ForcedMode: carrier.Mode(c.cfg.NZCMode),
			BaseURL:    c.cfg.NZCBase,
			Keys: carrier.Credentials{
				APIKey:        c.cfg.NZCGSSToken,
				AccountNumber: c.cfg.NZCAccountNumber,
			},
		},
	}

	if d.Rules == "" {
		d.Rules = "cheapest"
	}
	if d.DimFactor <= 0 {
		d.DimFactor = 5000
	}

	return d
}

// Resolver exposes the credential resolver for jobs.
func (c *CompositionRoot) Resolver() *creds.Resolver {
	return c.resolver
}

// CreateServer wires the HTTP gateway.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		httpin.Config{
			CORSOrigins: c.cfg.CORSOrigins,
			APIKey:      c.cfg.APIKey,
		},
		c.resolver,
		c.replay,
		c.rate,
		httpin.HeaderStaffAuth{},
		c.clock,
		c.logger,
		httpin.Handlers{
			Reserve: c.CreateReserveShipmentCommandHandler(),
			Create:  c.CreateCreateLabelCommandHandler(),
			Void:    c.CreateVoidLabelCommandHandler(),
			Track:   c.CreateTrackShipmentCommandHandler(),

			Rates:          c.CreateGetRatesQueryHandler(),
			Carriers:       queries.NewGetCarriersQueryHandler(),
			Strategies:     queries.NewGetStrategiesQueryHandler(),
			Health:         queries.NewGetHealthQueryHandler(c.clock),
			Expired:        c.CreateGetExpiredQueryHandler(),
			Audit:          queries.NewAuditPackagesQueryHandler(),
			History:        queries.NewGetHistoryQueryHandler(c.gormDB),
			Export:         queries.NewExportHistoryQueryHandler(c.gormDB, c.clock),
			BulkPrint:      queries.NewBulkPrintQueryHandler(),
			TrackingEvents: queries.NewGetTrackingEventsQueryHandler(c.gormDB),
		},
	)
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetExpiredQueryHandler(), c.resolver, c.logger)
}

func (c *CompositionRoot) CreateReserveShipmentCommandHandler() commands.ReserveShipmentCommandHandler {
	return commands.NewReserveShipmentCommandHandler(c.registryFactory, c.consignments, c.clock)
}

func (c *CompositionRoot) CreateCreateLabelCommandHandler() commands.CreateLabelCommandHandler {
	return commands.NewCreateLabelCommandHandler(c.registryFactory, c.consignments, c.clock)
}

func (c *CompositionRoot) CreateVoidLabelCommandHandler() commands.VoidLabelCommandHandler {
	return commands.NewVoidLabelCommandHandler(c.registryFactory, c.consignments, c.clock, c.logger)
}

func (c *CompositionRoot) CreateTrackShipmentCommandHandler() commands.TrackShipmentCommandHandler {
	return commands.NewTrackShipmentCommandHandler(c.registryFactory, c.consignments, c.logger)
}

func (c *CompositionRoot) CreateGetRatesQueryHandler() queries.GetRatesQueryHandler {
	return queries.NewGetRatesQueryHandler(c.registryFactory, c.logger)
}

func (c *CompositionRoot) CreateGetExpiredQueryHandler() queries.GetExpiredQueryHandler {
	return queries.NewGetExpiredQueryHandler(c.registryFactory, c.logger)
}
