package parcel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightgate/internal/core/domain/model/parcel"
)

func TestNewPackage_ClampsToSafeMinimums(t *testing.T) {
	p := parcel.NewPackage(0, -3, 10, 0, -1)

	assert.Equal(t, 1, p.Length)
	assert.Equal(t, 1, p.Width)
	assert.Equal(t, 10, p.Height)
	assert.InDelta(t, 0.01, p.Weight, 0.0001)
	assert.Equal(t, 0, p.Items)
}

func TestPackage_VolumetricWeight(t *testing.T) {
	p := parcel.NewPackage(50, 40, 30, 2, 1)

	// 60000 cm3 / 5000 = 12kg dimensional beats 2kg actual.
	assert.InDelta(t, 12.0, p.VolumetricWeight(parcel.DefaultDimFactor), 0.001)

	heavy := parcel.NewPackage(10, 10, 10, 9, 1)
	assert.InDelta(t, 9.0, heavy.VolumetricWeight(parcel.DefaultDimFactor), 0.001)
}

func TestPackage_VolumetricWeight_InvalidDimFactorFallsBack(t *testing.T) {
	p := parcel.NewPackage(50, 40, 30, 2, 1)

	assert.InDelta(t, 12.0, p.VolumetricWeight(0), 0.001)
	assert.InDelta(t, 12.0, p.VolumetricWeight(-1), 0.001)
}

func TestTotalVolumetricWeight(t *testing.T) {
	packages := []parcel.Package{
		parcel.NewPackage(50, 40, 30, 2, 1),
		parcel.NewPackage(10, 10, 10, 3, 1),
	}

	assert.InDelta(t, 15.0, parcel.TotalVolumetricWeight(packages, parcel.DefaultDimFactor), 0.001)
}

func TestValidatePackages(t *testing.T) {
	require.NoError(t, parcel.ValidatePackages([]parcel.Package{
		parcel.NewPackage(30, 20, 15, 2, 1),
	}))

	require.Error(t, parcel.ValidatePackages(nil))

	tooMany := make([]parcel.Package, parcel.MaxPackages+1)
	for i := range tooMany {
		tooMany[i] = parcel.NewPackage(10, 10, 10, 1, 1)
	}
	require.Error(t, parcel.ValidatePackages(tooMany))

	require.Error(t, parcel.ValidatePackages([]parcel.Package{
		parcel.NewPackage(parcel.MaxDimensionCM+1, 10, 10, 1, 1),
	}))

	require.Error(t, parcel.ValidatePackages([]parcel.Package{
		parcel.NewPackage(10, 10, 10, parcel.MaxWeightKG+0.1, 1),
	}))
}

func TestNewContext_ClampsDeclaredValue(t *testing.T) {
	ctx := parcel.NewContext("Auckland", "Wellington", -10, true, false)

	assert.Equal(t, "Auckland", ctx.From)
	assert.Equal(t, "Wellington", ctx.To)
	assert.Zero(t, ctx.DeclaredValue)
	assert.True(t, ctx.Rural)
	assert.False(t, ctx.Saturday)
}
