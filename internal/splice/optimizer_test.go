package splice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimize_FindsMinimalPatterns(t *testing.T) {
	conn := testConnection()
	res := Optimize(conn)

	require.True(t, res.Found)
	require.NotNil(t, res.Best)

	// Smallest flange group carrying 68.85 kips at 17.9 kips per bolt is
	// 4 bolts; 2×2 is the first valid factorization in enumeration order
	// (1×4 exceeds the plate width at 4 in row spacing).
	assert.Equal(t, 2, res.Best.FlangeBolts.Rows)
	assert.Equal(t, 2, res.Best.FlangeBolts.Columns)
	assert.Equal(t, 0.75, res.Best.FlangeBolts.Diameter)

	// Web group: a single column of 4 keeps the critical-bolt resultant
	// under the single-bolt capacity.
	assert.Equal(t, 4, res.Best.WebBolts.Rows)
	assert.Equal(t, 1, res.Best.WebBolts.Columns)

	assert.Equal(t, 8, res.Best.BoltCount)
}

func TestOptimize_BestConfigurationIsValid(t *testing.T) {
	conn := testConnection()
	res := Optimize(conn)
	require.True(t, res.Found)

	// Re-evaluating the returned pattern reproduces a fully valid design
	verify := *conn
	verify.FlangeBolts = res.Best.FlangeBolts
	verify.WebBolts = res.Best.WebBolts
	cfg, err := EvaluateConfiguration(&verify)
	require.NoError(t, err)
	assert.True(t, cfg.Valid)
	assert.True(t, res.Best.Valid)
}

func TestOptimize_NeverReturnsLargerThanNeeded(t *testing.T) {
	conn := testConnection()
	res := Optimize(conn)
	require.True(t, res.Found)

	// Every strictly smaller flange pattern must fail a check or a rule
	best := res.Best.FlangeBolts.Count()
	for cols := 1; cols <= 3; cols++ {
		for rows := 1; rows <= 3; rows++ {
			trial := *conn
			trial.FlangeBolts.Rows = rows
			trial.FlangeBolts.Columns = cols
			if trial.FlangeBolts.Count() >= best {
				continue
			}
			cfg, err := EvaluateConfiguration(&trial)
			require.NoError(t, err)
			assert.False(t, groupValid(cfg, false), "%d×%d should not pass", rows, cols)
		}
	}
}

func TestOptimize_LogRecordsStages(t *testing.T) {
	res := Optimize(testConnection())
	require.True(t, res.Found)

	log := strings.Join(res.Log, "\n")
	assert.Contains(t, log, "flange stage")
	assert.Contains(t, log, "Web stage")
	assert.Contains(t, log, "Optimization complete")
	assert.Contains(t, log, "enumeration order")
}

func TestOptimize_InfeasibleDemand(t *testing.T) {
	conn := testConnection()
	conn.Loads.Moment = 10000 // far beyond any pattern within the bounds

	res := Optimize(conn)
	assert.False(t, res.Found)
	assert.Nil(t, res.Best)

	log := strings.Join(res.Log, "\n")
	assert.Contains(t, log, "Flange stage failed")
}

func TestOptimize_DiameterSearch(t *testing.T) {
	conn := testConnection()
	conn.OptimizeDiameter = true

	res := Optimize(conn)
	require.True(t, res.Found)

	// 5/8 in bolts need 6 to carry the flange force (16.6 kips each at
	// φRn = 12.4), so the 4-bolt answer keeps a larger diameter.
	assert.LessOrEqual(t, res.Best.FlangeBolts.Count(), 6)
	assert.True(t, res.Best.Valid)
}

func TestOptimize_DoesNotMutateInput(t *testing.T) {
	conn := testConnection()
	before := *conn
	_ = Optimize(conn)
	assert.Equal(t, before, *conn)
}
