package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightgate/internal/core/application/usecases/queries"
	"freightgate/internal/core/domain/model/parcel"
)

func TestAuditPackagesQueryHandler_Handle_MetersEveryBox(t *testing.T) {
	query, err := queries.NewAuditPackagesQuery([]parcel.Package{
		{Length: 30, Width: 20, Height: 15, Weight: 2, Items: 3},
		{Length: 40, Width: 40, Height: 40, Weight: 12.5, Items: 1},
	})
	require.NoError(t, err)

	resp, err := queries.NewAuditPackagesQueryHandler().Handle(t.Context(), query)

	require.NoError(t, err)
	assert.Empty(t, resp.Suggestions)
	require.Len(t, resp.Meters, 2)

	assert.Equal(t, 1, resp.Meters[0].Box)
	assert.InDelta(t, 2.0, resp.Meters[0].Kg, 0.001)
	assert.InDelta(t, 25.0, resp.Meters[0].Cap, 0.001)
	assert.Equal(t, 8, resp.Meters[0].Percent)

	assert.Equal(t, 2, resp.Meters[1].Box)
	assert.Equal(t, 50, resp.Meters[1].Percent)
}

func TestAuditPackagesQueryHandler_Handle_FlagsOverweightBox(t *testing.T) {
	query, err := queries.NewAuditPackagesQuery([]parcel.Package{
		{Length: 60, Width: 50, Height: 50, Weight: 24, Items: 2},
	})
	require.NoError(t, err)

	resp, err := queries.NewAuditPackagesQueryHandler().Handle(t.Context(), query)

	require.NoError(t, err)
	require.Len(t, resp.Suggestions, 1)
	assert.Equal(t, "Box 1 is 24kg (>23). Consider split or larger box.", resp.Suggestions[0])
	assert.Equal(t, 96, resp.Meters[0].Percent)
}

func TestAuditPackagesQueryHandler_Handle_FlagsEmptyBox(t *testing.T) {
	query, err := queries.NewAuditPackagesQuery([]parcel.Package{
		{Length: 30, Width: 20, Height: 15, Weight: 1, Items: 0},
	})
	require.NoError(t, err)

	resp, err := queries.NewAuditPackagesQueryHandler().Handle(t.Context(), query)

	require.NoError(t, err)
	require.Len(t, resp.Suggestions, 1)
	assert.Equal(t, "Box 1 has zero items. Remove or assign.", resp.Suggestions[0])
}

func TestAuditPackagesQueryHandler_Handle_PercentCapsAtHundred(t *testing.T) {
	query, err := queries.NewAuditPackagesQuery([]parcel.Package{
		{Length: 60, Width: 60, Height: 60, Weight: 40, Items: 1},
	})
	require.NoError(t, err)

	resp, err := queries.NewAuditPackagesQueryHandler().Handle(t.Context(), query)

	require.NoError(t, err)
	assert.Equal(t, 100, resp.Meters[0].Percent)
}

func TestNewAuditPackagesQuery_RejectsEmptySet(t *testing.T) {
	_, err := queries.NewAuditPackagesQuery(nil)
	require.Error(t, err)
}

func TestAuditPackagesQueryHandler_Handle_NotConstructedQuery(t *testing.T) {
	_, err := queries.NewAuditPackagesQueryHandler().Handle(t.Context(), queries.AuditPackagesQuery{})
	require.ErrorIs(t, err, queries.ErrAuditPackagesQueryIsNotConstructed)
}
