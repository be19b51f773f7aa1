package queries_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightgate/internal/core/application/usecases/queries"
	"freightgate/internal/core/domain/model/carrier"
	"freightgate/internal/core/domain/model/quote"
	"freightgate/internal/core/ports"
)

func TestGetCarriersQueryHandler_Handle_ListsRosterInStableOrder(t *testing.T) {
	cfg := simulateConfig()
	cfg.Carriers[carrier.NZCouriers] = carrier.Config{Name: "NZ Couriers", Color: "#06b6d4"}

	roster, err := queries.NewGetCarriersQueryHandler().Handle(
		t.Context(), queries.NewGetCarriersQuery(cfg))

	require.NoError(t, err)
	require.Len(t, roster, 2)

	assert.Equal(t, "nz_post", roster[0].Code)
	assert.Equal(t, "NZ Post", roster[0].Name)
	assert.True(t, roster[0].Enabled)
	assert.Equal(t, "simulate", roster[0].Mode)
	assert.Equal(t, "#3b82f6", roster[0].Color)

	assert.Equal(t, "nzc", roster[1].Code)
	assert.False(t, roster[1].Enabled)
}

func TestGetCarriersQueryHandler_Handle_NotConstructedQuery(t *testing.T) {
	_, err := queries.NewGetCarriersQueryHandler().Handle(t.Context(), queries.GetCarriersQuery{})
	require.ErrorIs(t, err, queries.ErrGetCarriersQueryIsNotConstructed)
}

func TestGetStrategiesQueryHandler_Handle(t *testing.T) {
	strategies, err := queries.NewGetStrategiesQueryHandler().Handle(
		t.Context(), queries.NewGetStrategiesQuery())

	require.NoError(t, err)
	assert.Equal(t, quote.Strategies(), strategies)
}

func TestGetHealthQueryHandler_Handle_ReportsConfigurationState(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	cfg := simulateConfig()
	cfg.Outlet = &carrier.Outlet{ID: 7, Name: "Downtown"}
	cfg.Carriers[carrier.NZCouriers] = carrier.Config{Name: "NZ Couriers"}

	handler := queries.NewGetHealthQueryHandler(func() time.Time { return now })

	checks, err := handler.Handle(t.Context(), queries.NewGetHealthQuery(cfg))

	require.NoError(t, err)
	assert.Equal(t, "2026-03-14T09:30:00Z", checks["time"])
	assert.Equal(t, map[string]any{"id": int64(7), "name": "Downtown"}, checks["outlet"])
	assert.Equal(t, "ENABLED", checks["nz_post"])
	assert.Equal(t, "CONFIGURED", checks["nz_post_keys"])
	assert.Equal(t, "DISABLED", checks["nzc"])
	assert.Equal(t, "MISSING", checks["nzc_keys"])
}

func TestGetHealthQueryHandler_Handle_DefaultConfigWithoutOutlet(t *testing.T) {
	handler := queries.NewGetHealthQueryHandler(time.Now)

	checks, err := handler.Handle(t.Context(), queries.NewGetHealthQuery(simulateConfig()))

	require.NoError(t, err)
	assert.Equal(t, "DEFAULT_CONFIG", checks["outlet"])
}

func TestGetExpiredQueryHandler_Handle_MergesAndSkipsFailures(t *testing.T) {
	nzpost := &MockCarrierAdapter{carrier: carrier.NZPost}
	nzpost.On("Expired", t.Context()).
		Return([]ports.ExpiredTicket{{Carrier: "nz_post", Number: "CN1"}}, nil).Once()

	nzc := &MockCarrierAdapter{carrier: carrier.NZCouriers}
	nzc.On("Expired", t.Context()).Return(nil, errors.New("unreachable")).Once()

	factory := newStubFactory(map[carrier.Carrier]ports.CarrierAdapter{
		carrier.NZPost:     nzpost,
		carrier.NZCouriers: nzc,
	})
	handler := queries.NewGetExpiredQueryHandler(factory, discardLogger())

	rows, err := handler.Handle(t.Context(), queries.NewGetExpiredQuery(simulateConfig()))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "CN1", rows[0].Number)
}

func TestNewGetHistoryQuery_ClampsLimit(t *testing.T) {
	assert.Equal(t, 50, queries.NewGetHistoryQuery(0, 0).Limit())
	assert.Equal(t, 50, queries.NewGetHistoryQuery(0, -5).Limit())
	assert.Equal(t, 50, queries.NewGetHistoryQuery(0, 999).Limit())
	assert.Equal(t, 200, queries.NewGetHistoryQuery(0, 200).Limit())
	assert.Equal(t, 25, queries.NewGetHistoryQuery(9123, 25).Limit())
}

func TestNewExportHistoryQuery_ClampsLimit(t *testing.T) {
	assert.Equal(t, 500, queries.NewExportHistoryQuery(0, 0).Limit())
	assert.Equal(t, 500, queries.NewExportHistoryQuery(0, 5000).Limit())
	assert.Equal(t, 2000, queries.NewExportHistoryQuery(0, 2000).Limit())
}

func TestNewGetTrackingEventsQuery_RequiresTracking(t *testing.T) {
	_, err := queries.NewGetTrackingEventsQuery("")
	require.Error(t, err)

	query, err := queries.NewGetTrackingEventsQuery("TRK001NZ")
	require.NoError(t, err)
	assert.Equal(t, "TRK001NZ", query.Tracking())
}
