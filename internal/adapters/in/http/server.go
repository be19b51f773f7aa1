// Package http exposes the gateway's single-endpoint action API over echo.
// Every call goes through the same pipeline: CORS, body cap, verb rules,
// authentication, rate limiting and idempotency replay, then dispatch to the
// command or query handler behind the requested action.
package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"freightgate/internal/core/application/creds"
	"freightgate/internal/core/application/usecases/commands"
	"freightgate/internal/core/application/usecases/queries"
	"freightgate/internal/core/ports"
)

const (
	defaultRateLimit      = 180
	defaultRateWindow     = time.Minute
	defaultBodyLimit      = 1_500_000
	defaultIdempotencyTTL = time.Hour
)

// Config carries the gateway's edge policy knobs.
type Config struct {
	// CORSOrigins is "*", a comma-separated allowlist, or empty to deny all
	// cross-origin callers.
	CORSOrigins string

	// APIKey, when set, must match the X-API-Key header on every request.
	APIKey string

	// RateLimit is the per-caller request budget per window. Zero means the
	// default of 180.
	RateLimit int64

	// RateWindow is the fixed rate-limit window. Zero means one minute.
	RateWindow time.Duration

	// BodyLimit caps the JSON request body in bytes. Zero means ~1.5MB.
	BodyLimit int64

	// IdempotencyTTL is how long replayed responses stay cached. Zero means
	// one hour.
	IdempotencyTTL time.Duration
}

func (c Config) withDefaults() Config {
	if c.RateLimit <= 0 {
		c.RateLimit = defaultRateLimit
	}
	if c.RateWindow <= 0 {
		c.RateWindow = defaultRateWindow
	}
	if c.BodyLimit <= 0 {
		c.BodyLimit = defaultBodyLimit
	}
	if c.IdempotencyTTL <= 0 {
		c.IdempotencyTTL = defaultIdempotencyTTL
	}
	return c
}

// StaffAuthenticator establishes the staff identity of a request. The gateway
// trusts the upstream auth layer; zero means unauthenticated.
type StaffAuthenticator interface {
	StaffID(c echo.Context) int64
}

// HeaderStaffAuth reads the staff id the auth proxy sets on forwarded
// requests.
type HeaderStaffAuth struct{}

// StaffID returns the X-Staff-Id header as an integer, zero when absent.
func (HeaderStaffAuth) StaffID(c echo.Context) int64 {
	id, err := strconv.ParseInt(c.Request().Header.Get("X-Staff-Id"), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// Server coordinates the action pipeline and the use case handlers.
type Server struct {
	cfg      Config
	resolver *creds.Resolver
	replay   ports.ReplayCache
	rate     ports.RateCounter
	auth     StaffAuthenticator
	clock    ports.Clock
	logger   *slog.Logger

	// Command handlers
	reserveHandler commands.ReserveShipmentCommandHandler
	createHandler  commands.CreateLabelCommandHandler
	voidHandler    commands.VoidLabelCommandHandler
	trackHandler   commands.TrackShipmentCommandHandler

	// Query handlers
	ratesHandler          queries.GetRatesQueryHandler
	carriersHandler       queries.GetCarriersQueryHandler
	strategiesHandler     queries.GetStrategiesQueryHandler
	healthHandler         queries.GetHealthQueryHandler
	expiredHandler        queries.GetExpiredQueryHandler
	auditHandler          queries.AuditPackagesQueryHandler
	historyHandler        queries.GetHistoryQueryHandler
	exportHandler         queries.ExportHistoryQueryHandler
	bulkPrintHandler      queries.BulkPrintQueryHandler
	trackingEventsHandler queries.GetTrackingEventsQueryHandler

	actions map[string]actionSpec
}

// Handlers bundles the use case handlers the server dispatches to.
type Handlers struct {
	Reserve commands.ReserveShipmentCommandHandler
	Create  commands.CreateLabelCommandHandler
	Void    commands.VoidLabelCommandHandler
	Track   commands.TrackShipmentCommandHandler

	Rates          queries.GetRatesQueryHandler
	Carriers       queries.GetCarriersQueryHandler
	Strategies     queries.GetStrategiesQueryHandler
	Health         queries.GetHealthQueryHandler
	Expired        queries.GetExpiredQueryHandler
	Audit          queries.AuditPackagesQueryHandler
	History        queries.GetHistoryQueryHandler
	Export         queries.ExportHistoryQueryHandler
	BulkPrint      queries.BulkPrintQueryHandler
	TrackingEvents queries.GetTrackingEventsQueryHandler
}

// NewServer creates the gateway server.
func NewServer(
	cfg Config,
	resolver *creds.Resolver,
	replay ports.ReplayCache,
	rate ports.RateCounter,
	auth StaffAuthenticator,
	clock ports.Clock,
	logger *slog.Logger,
	handlers Handlers,
) *Server {
	s := &Server{
		cfg:      cfg.withDefaults(),
		resolver: resolver,
		replay:   replay,
		rate:     rate,
		auth:     auth,
		clock:    clock,
		logger:   logger,

		reserveHandler: handlers.Reserve,
		createHandler:  handlers.Create,
		voidHandler:    handlers.Void,
		trackHandler:   handlers.Track,

		ratesHandler:          handlers.Rates,
		carriersHandler:       handlers.Carriers,
		strategiesHandler:     handlers.Strategies,
		healthHandler:         handlers.Health,
		expiredHandler:        handlers.Expired,
		auditHandler:          handlers.Audit,
		historyHandler:        handlers.History,
		exportHandler:         handlers.Export,
		bulkPrintHandler:      handlers.BulkPrint,
		trackingEventsHandler: handlers.TrackingEvents,
	}
	s.actions = s.actionTable()

	return s
}

// RegisterRoutes mounts the action endpoint and a bare liveness probe.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Any("/api/pack-ship", s.handleAction)
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "healthy")
	})
}
