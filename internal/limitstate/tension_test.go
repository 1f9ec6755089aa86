package limitstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrossYield(t *testing.T) {
	r := GrossYield(36, 5.0)
	assert.Equal(t, 180.0, r.Rn)
	assert.Equal(t, 0.90, r.Phi)
	assert.Equal(t, 1.67, r.Omega)
}

func TestGrossYield_Degenerate(t *testing.T) {
	assert.Zero(t, GrossYield(36, 0).Rn)
	assert.Zero(t, GrossYield(0, 5).Rn)
}

func TestNetFracture(t *testing.T) {
	r := NetFracture(NetFractureInput{
		Fu:           58,
		GrossArea:    5.0,
		BoltsInLine:  4,
		HoleDiameter: 0.9375,
		Thickness:    0.5,
	})
	assert.InDelta(t, 1.875, r.AreaHoles, 1e-9)
	assert.InDelta(t, 3.125, r.An, 1e-9)
	assert.InDelta(t, 181.25, r.Rn, 1e-9)
	assert.Equal(t, 0.75, r.Phi)
	assert.Equal(t, 2.00, r.Omega)
}

func TestNetFracture_AllHoles(t *testing.T) {
	// Holes exceed the gross area: zero capacity, Fu preserved for the report
	r := NetFracture(NetFractureInput{
		Fu:           58,
		GrossArea:    1.0,
		BoltsInLine:  4,
		HoleDiameter: 0.9375,
		Thickness:    1.0,
	})
	assert.Zero(t, r.Rn)
	assert.Zero(t, r.An)
	assert.Equal(t, 58.0, r.Fu)
}

func TestFlexuralRupture_DoesNotGovern(t *testing.T) {
	// Fu·Afn well above Yt·Fy·Afg: the limit state cannot govern
	r := FlexuralRupture(FlexuralRuptureInput{
		Fy: 36, Fu: 58, Afg: 4.0, Afn: 3.5, Sx: 60,
	})
	assert.False(t, r.Limited)
	assert.Equal(t, 1.0, r.Yt)
}

func TestFlexuralRupture_Governs(t *testing.T) {
	r := FlexuralRupture(FlexuralRuptureInput{
		Fy: 50, Fu: 65, Afg: 4.0, Afn: 2.0, Sx: 60,
	})
	// Fu·Afn = 130 < 1.0·50·4 = 200
	assert.True(t, r.Limited)
	assert.InDelta(t, 65*2.0/4.0*60, r.Rn, 1e-9)
}

func TestFlexuralRupture_YtSwitch(t *testing.T) {
	// Fy/Fu > 0.8 switches Yt to 1.1
	r := FlexuralRupture(FlexuralRuptureInput{
		Fy: 60, Fu: 65, Afg: 4.0, Afn: 2.0, Sx: 60,
	})
	assert.Equal(t, 1.1, r.Yt)
}
