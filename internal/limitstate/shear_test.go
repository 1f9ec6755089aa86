package limitstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShearYield(t *testing.T) {
	r := ShearYield(36, 4.5)
	assert.InDelta(t, 97.2, r.Rn, 1e-9) // 0.6·36·4.5
	assert.Equal(t, 1.00, r.Phi)
	assert.Equal(t, 1.50, r.Omega)
	assert.Equal(t, 4.5, r.Agv)
}

func TestShearYield_Degenerate(t *testing.T) {
	assert.Zero(t, ShearYield(36, 0).Rn)
	assert.Zero(t, ShearYield(0, 4.5).Rn)
}

func TestShearRupture(t *testing.T) {
	r := ShearRupture(58, 3.586)
	assert.InDelta(t, 0.6*58*3.586, r.Rn, 1e-9)
	assert.Equal(t, 0.75, r.Phi)
	assert.Equal(t, 2.00, r.Omega)
}

func TestShearRupture_Degenerate(t *testing.T) {
	assert.Zero(t, ShearRupture(58, -1).Rn)
	assert.Zero(t, ShearRupture(0, 3).Rn)
}
