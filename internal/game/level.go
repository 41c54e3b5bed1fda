package game

import (
	"github.com/vovakirdan/tui-breaker/internal/config"
	"github.com/vovakirdan/tui-breaker/internal/core"
)

// rowColors cycles per brick row, top to bottom.
var rowColors = []core.Color{
	core.ColorBrightRed,
	core.ColorOrange,
	core.ColorBrightYellow,
	core.ColorBrightGreen,
	core.ColorBrightBlue,
	core.ColorBrightMagenta,
	core.ColorWhite,
}

// BuildGrid lays out the brick grid for a field of the given width.
// Brick width is derived from the field width so the grid always spans
// the area between the side margins. The top rows (cfg.HardRows) take
// two hits; point value grows with row index.
func BuildGrid(cfg config.Bricks, fieldW float64) []Brick {
	areaW := fieldW - 2*cfg.MarginX
	bw := (areaW - float64(cfg.Cols-1)*cfg.Gap) / float64(cfg.Cols)
	bh := cfg.Height

	bricks := make([]Brick, 0, cfg.Rows*cfg.Cols)
	for r := 0; r < cfg.Rows; r++ {
		hp := 1
		if r < cfg.HardRows {
			hp = 2
		}
		for c := 0; c < cfg.Cols; c++ {
			bricks = append(bricks, Brick{
				X:      cfg.MarginX + float64(c)*(bw+cfg.Gap) + bw/2,
				Y:      cfg.MarginY + float64(r)*(bh+cfg.Gap) + bh/2,
				W:      bw,
				H:      bh,
				Alive:  true,
				HP:     hp,
				Color:  rowColors[r%len(rowColors)],
				Points: cfg.BasePoints + cfg.PointsPerRow*r,
			})
		}
	}
	return bricks
}

// countAliveBricks returns the number of bricks still standing.
func countAliveBricks(bricks []Brick) int {
	count := 0
	for i := range bricks {
		if bricks[i].Alive {
			count++
		}
	}
	return count
}
