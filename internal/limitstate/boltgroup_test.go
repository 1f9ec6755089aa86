package limitstate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoltGroup_PolarMoment(t *testing.T) {
	r := BoltGroup(BoltGroupInput{
		Rows: 3, Columns: 2,
		RowSpacing: 3, ColumnSpacing: 3,
		Vertical: 50, Eccentricity: 3.25,
	})

	// dx = ±1.5 for 6 bolts, dy = {−3, 0, 3} for each column pair
	assert.Equal(t, 6, r.BoltCount)
	assert.InDelta(t, 6*1.5*1.5+2*(9+0+9), r.Ip, 1e-9)
	assert.InDelta(t, 1.5, r.CriticalDx, 1e-12)
	assert.InDelta(t, 3.0, r.CriticalDy, 1e-12)
	assert.InDelta(t, 162.5, r.Moment, 1e-9)
}

func TestBoltGroup_ResultantComposition(t *testing.T) {
	r := BoltGroup(BoltGroupInput{
		Rows: 3, Columns: 2,
		RowSpacing: 3, ColumnSpacing: 3,
		Vertical: 50, Horizontal: 12, Eccentricity: 3.25,
	})

	wantX := 12.0/6 + r.Moment*r.CriticalDy/r.Ip
	wantY := 50.0/6 + r.Moment*r.CriticalDx/r.Ip
	assert.InDelta(t, math.Hypot(wantX, wantY), r.Resultant, 1e-9)
	assert.False(t, r.PureDirect)
}

func TestBoltGroup_SingleBoltPureDirect(t *testing.T) {
	r := BoltGroup(BoltGroupInput{
		Rows: 1, Columns: 1,
		Vertical: 30, Horizontal: 40, Eccentricity: 5,
	})

	assert.Zero(t, r.Ip)
	assert.True(t, r.PureDirect)
	// No division by the zero polar moment: plain vector sum
	assert.InDelta(t, 50.0, r.Resultant, 1e-9)
}

func TestBoltGroup_NoEccentricity(t *testing.T) {
	r := BoltGroup(BoltGroupInput{
		Rows: 2, Columns: 2,
		RowSpacing: 3, ColumnSpacing: 3,
		Vertical: 40,
	})
	assert.Zero(t, r.Moment)
	assert.InDelta(t, 10.0, r.Resultant, 1e-9)
}
