package aisc

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFnv(t *testing.T) {
	assert.Equal(t, 54.0, Fnv(GradeA325, true))
	assert.Equal(t, 68.0, Fnv(GradeA325, false))
	assert.Equal(t, 68.0, Fnv(GradeA490, true))
	assert.Equal(t, 84.0, Fnv(GradeA490, false))
}

func TestFnv_UnknownGradeFallsBackToA325(t *testing.T) {
	assert.Equal(t, 54.0, Fnv(BoltGrade("F3125"), true))
}

func TestFnt(t *testing.T) {
	assert.Equal(t, 90.0, Fnt(GradeA325))
	assert.Equal(t, 113.0, Fnt(GradeA490))
	assert.Equal(t, 90.0, Fnt(BoltGrade("unknown")))
}

func TestBoltArea(t *testing.T) {
	assert.InDelta(t, 0.4418, BoltArea(0.75), 1e-4)
	assert.InDelta(t, math.Pi/4, BoltArea(1.0), 1e-12)
	assert.Zero(t, BoltArea(0))
	assert.Zero(t, BoltArea(-0.5))
}

func TestStandardDiametersAscending(t *testing.T) {
	assert.True(t, sort.Float64sAreSorted(StandardDiameters))
	assert.Equal(t, 0.625, StandardDiameters[0])
	assert.Equal(t, 1.25, StandardDiameters[len(StandardDiameters)-1])
}
