package diagram

import (
	"fmt"
	"strings"
)

// BoltPatternData holds data for drawing one splice plate with its bolt grid
type BoltPatternData struct {
	Title string

	// Plate dimensions (in)
	PlateLength float64 // Along the member axis
	PlateHeight float64 // Transverse

	// Grid
	Rows        int
	Columns     int
	Pitch       float64 // Column spacing (in)
	RowSpacing  float64 // Row spacing (in)
	EndDistance float64 // First column to the plate end (in)

	BoltDiameter float64 // in
	HoleDiameter float64 // in

	// Highlight the critical corner bolt of an eccentric group
	MarkCritical bool
}

// DrawBoltPattern creates an ASCII plan view of the plate and its bolt grid.
// The scale is character-cell based, so proportions are approximate.
func DrawBoltPattern(data BoltPatternData) string {
	var sb strings.Builder

	const width = 57 // interior character cells
	const height = 13

	if data.PlateLength <= 0 || data.PlateHeight <= 0 {
		return ""
	}

	sb.WriteString("\n")
	if data.Title != "" {
		sb.WriteString(fmt.Sprintf("  %s\n", data.Title))
	}
	sb.WriteString(fmt.Sprintf("  Plate %.2f × %.2f in, bolts φ%.3f in (holes %.4f in)\n\n",
		data.PlateLength, data.PlateHeight, data.BoltDiameter, data.HoleDiameter))

	// Paint bolts into a cell grid
	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	patternH := float64(data.Rows-1) * data.RowSpacing
	topY := (data.PlateHeight - patternH) / 2

	for r := 0; r < data.Rows; r++ {
		y := topY + float64(r)*data.RowSpacing
		row := int(y / data.PlateHeight * float64(height-1))
		if row < 0 {
			row = 0
		}
		if row >= height {
			row = height - 1
		}
		for c := 0; c < data.Columns; c++ {
			x := data.EndDistance + float64(c)*data.Pitch
			col := int(x / data.PlateLength * float64(width-1))
			if col < 0 {
				col = 0
			}
			if col >= width {
				col = width - 1
			}
			mark := 'o'
			if data.MarkCritical && r == 0 && c == data.Columns-1 {
				mark = '@'
			}
			grid[row][col] = mark
		}
	}

	// Frame
	sb.WriteString("  ┌" + strings.Repeat("─", width) + "┐\n")
	for _, row := range grid {
		sb.WriteString("  │" + string(row) + "│\n")
	}
	sb.WriteString("  └" + strings.Repeat("─", width) + "┘\n")

	sb.WriteString(fmt.Sprintf("\n  %d rows × %d columns = %d bolts", data.Rows, data.Columns, data.Rows*data.Columns))
	if data.MarkCritical {
		sb.WriteString("   (@ = critical bolt)")
	}
	sb.WriteString("\n")

	return sb.String()
}

// RatioBar holds one check's demand/capacity ratio for the summary chart
type RatioBar struct {
	Name   string
	Ratio  float64
	Passed bool
}

// DrawRatioSummary renders a horizontal bar per check; the full bar width
// marks ratio 1.0, the pass/fail boundary
func DrawRatioSummary(bars []RatioBar) string {
	var sb strings.Builder

	const barWidth = 30 // cells up to ratio 1.0
	nameWidth := 0
	for _, b := range bars {
		if n := len([]rune(b.Name)); n > nameWidth {
			nameWidth = n
		}
	}

	sb.WriteString("\n")
	for _, b := range bars {
		filled := int(b.Ratio * barWidth)
		if filled > barWidth+10 {
			filled = barWidth + 10
		}
		empty := barWidth - filled
		if empty < 0 {
			empty = 0
		}
		mark := "✓"
		if !b.Passed {
			mark = "✗"
		}
		sb.WriteString(fmt.Sprintf("  %-*s  %s%s %s %.3f\n",
			nameWidth, b.Name,
			strings.Repeat("█", filled),
			strings.Repeat("░", empty),
			mark, b.Ratio))
	}
	sb.WriteString("\n")

	return sb.String()
}
