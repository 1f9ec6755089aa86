package splice

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInput = `{
  "name": "beam splice",
  "method": "ASD",
  "member": {
    "depth": 18.0,
    "flange_width": 7.5,
    "flange_thickness": 0.57,
    "web_thickness": 0.355,
    "fy": 50,
    "fu": 65,
    "sx": 88.9,
    "zx": 101
  },
  "flange_outer_plate": {"thickness": 0.5, "width": 7.0, "length": 12.0, "fy": 36, "fu": 58},
  "web_plate": {"thickness": 0.375, "width": 12.0, "length": 10.0, "fy": 36, "fu": 58},
  "flange_bolts": {
    "diameter": 0.75, "grade": "A325", "threads_included": true,
    "rows": 2, "columns": 3, "pitch": 3.0, "row_spacing": 4.0, "end_distance": 1.5
  },
  "web_bolts": {
    "diameter": 0.75, "grade": "A325", "threads_included": true,
    "rows": 3, "columns": 2, "pitch": 3.0, "row_spacing": 3.0, "end_distance": 1.5
  },
  "loads": {"moment": 100, "shear": 50},
  "gap": 0.5
}`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "splice.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	conn, err := LoadFromFile(writeTemp(t, sampleInput))
	require.NoError(t, err)

	assert.Equal(t, "beam splice", conn.Name)
	assert.Equal(t, "ASD", conn.Method)
	assert.Equal(t, 18.0, conn.Member.Depth)
	assert.Equal(t, 0.75, conn.FlangeBolts.Diameter)
	assert.Equal(t, 3, conn.WebBolts.Rows)
	assert.Equal(t, 100.0, conn.Loads.Moment)
	assert.Nil(t, conn.FlangeInnerPlate)
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/splice.json")
	assert.Error(t, err)
}

func TestLoadFromFile_BadJSON(t *testing.T) {
	_, err := LoadFromFile(writeTemp(t, "{not json"))
	assert.Error(t, err)
}

func TestLoadFromFile_GradeNamesResolved(t *testing.T) {
	byGrade := strings.Replace(sampleInput,
		`"fy": 50,
    "fu": 65,`,
		`"grade": "A992",`, 1)
	conn, err := LoadFromFile(writeTemp(t, byGrade))
	require.NoError(t, err)

	assert.Equal(t, 50.0, conn.Member.Fy)
	assert.Equal(t, 65.0, conn.Member.Fu)
}

func TestLoadFromFile_InvalidConnection(t *testing.T) {
	bad := `{"method": "LRFD", "member": {"depth": 0}}`
	_, err := LoadFromFile(writeTemp(t, bad))
	assert.ErrorContains(t, err, "invalid member geometry")
}
