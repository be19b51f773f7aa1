package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"freightgate/internal/core/domain/model/carrier"
	"freightgate/internal/core/domain/model/consignment"
	"freightgate/internal/core/domain/model/kernel"
	"freightgate/internal/core/domain/model/parcel"
	"freightgate/internal/core/domain/model/quote"
	"freightgate/internal/core/ports"
	"freightgate/internal/pkg/errs"
)

type MockConsignmentRepository struct{ mock.Mock }

func (m *MockConsignmentRepository) Record(ctx context.Context, cons *consignment.Consignment) error {
	args := m.Called(ctx, cons)
	return args.Error(0)
}

func (m *MockConsignmentRepository) Update(ctx context.Context, cons *consignment.Consignment) error {
	args := m.Called(ctx, cons)
	return args.Error(0)
}

func (m *MockConsignmentRepository) FindByReservation(ctx context.Context, reservationID string) (*consignment.Consignment, error) {
	args := m.Called(ctx, reservationID)
	if cons := args.Get(0); cons != nil {
		return cons.(*consignment.Consignment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockConsignmentRepository) FindByLabel(ctx context.Context, labelID string) (*consignment.Consignment, error) {
	args := m.Called(ctx, labelID)
	if cons := args.Get(0); cons != nil {
		return cons.(*consignment.Consignment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockConsignmentRepository) FindByTracking(ctx context.Context, tracking string) (*consignment.Consignment, error) {
	args := m.Called(ctx, tracking)
	if cons := args.Get(0); cons != nil {
		return cons.(*consignment.Consignment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockConsignmentRepository) StoreTrackingEvents(ctx context.Context, consignmentID *kernel.UUID, tracking string, events []consignment.TrackingEvent) (int, error) {
	args := m.Called(ctx, consignmentID, tracking, events)
	return args.Int(0), args.Error(1)
}

type MockCarrierAdapter struct {
	mock.Mock
	carrier carrier.Carrier
}

func (m *MockCarrierAdapter) Carrier() carrier.Carrier { return m.carrier }

func (m *MockCarrierAdapter) Rates(ctx context.Context, packages []parcel.Package, options parcel.Options, shipCtx parcel.Context, dimFactor float64) ([]quote.RateQuote, error) {
	args := m.Called(ctx, packages, options, shipCtx, dimFactor)
	if quotes := args.Get(0); quotes != nil {
		return quotes.([]quote.RateQuote), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCarrierAdapter) Reserve(ctx context.Context, payload ports.Payload) (ports.ReserveResult, error) {
	args := m.Called(ctx, payload)
	return args.Get(0).(ports.ReserveResult), args.Error(1)
}

func (m *MockCarrierAdapter) Create(ctx context.Context, payload ports.Payload) (ports.CreateResult, error) {
	args := m.Called(ctx, payload)
	return args.Get(0).(ports.CreateResult), args.Error(1)
}

func (m *MockCarrierAdapter) Void(ctx context.Context, labelID string) (ports.VoidResult, error) {
	args := m.Called(ctx, labelID)
	return args.Get(0).(ports.VoidResult), args.Error(1)
}

func (m *MockCarrierAdapter) Expired(ctx context.Context) ([]ports.ExpiredTicket, error) {
	args := m.Called(ctx)
	if tickets := args.Get(0); tickets != nil {
		return tickets.([]ports.ExpiredTicket), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCarrierAdapter) Track(ctx context.Context, tracking string) (ports.TrackResult, error) {
	args := m.Called(ctx, tracking)
	return args.Get(0).(ports.TrackResult), args.Error(1)
}

// stubRegistry serves one adapter per carrier without consulting enablement.
type stubRegistry struct {
	adapters map[carrier.Carrier]ports.CarrierAdapter
}

func (r stubRegistry) Adapter(c carrier.Carrier) (ports.CarrierAdapter, error) {
	a, ok := r.adapters[c]
	if !ok {
		return nil, errs.NewBadCarrierError(c.String())
	}
	return a, nil
}

func (r stubRegistry) Enabled() []ports.CarrierAdapter { return r.all() }
func (r stubRegistry) All() []ports.CarrierAdapter     { return r.all() }

func (r stubRegistry) all() []ports.CarrierAdapter {
	out := make([]ports.CarrierAdapter, 0, len(r.adapters))
	for _, c := range carrier.All() {
		if a, ok := r.adapters[c]; ok {
			out = append(out, a)
		}
	}
	return out
}

type stubRegistryFactory struct {
	registry stubRegistry
}

func (f stubRegistryFactory) Registry(_ carrier.GatewayConfig) ports.AdapterRegistry {
	return f.registry
}

func newStubFactory(adapters map[carrier.Carrier]ports.CarrierAdapter) stubRegistryFactory {
	return stubRegistryFactory{registry: stubRegistry{adapters: adapters}}
}

func fixedClock(at time.Time) ports.Clock {
	return func() time.Time { return at }
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newReservedConsignment(t *testing.T, reservationID string, now time.Time) *consignment.Consignment {
	t.Helper()

	cons, err := consignment.NewConsignment(
		kernel.NewUUID(), 9123, carrier.NZPost, "overnight", reservationID,
		nil, carrier.ModeSimulate, 42,
		consignment.Snapshot{"service": "overnight"}, nil, now,
	)
	require.NoError(t, err)

	return cons
}

func newLabelledConsignment(t *testing.T, labelID, tracking string, now time.Time) *consignment.Consignment {
	t.Helper()

	cons := newReservedConsignment(t, "RES-"+labelID, now)
	require.NoError(t, cons.UpgradeToLabel(labelID, tracking, nil, now))

	return cons
}

func simulateConfig() carrier.GatewayConfig {
	return carrier.GatewayConfig{
		Rules:     quote.StrategyCheapest,
		DimFactor: parcel.DefaultDimFactor,
		Carriers: map[carrier.Carrier]carrier.Config{
			carrier.NZPost: {
				Name: "NZ Post", Color: "#3b82f6", Enabled: true, Mode: carrier.ModeSimulate,
			},
			carrier.NZCouriers: {
				Name: "NZ Couriers", Color: "#06b6d4", Enabled: true, Mode: carrier.ModeSimulate,
			},
		},
	}
}
