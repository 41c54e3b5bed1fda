package game

import (
	"testing"

	"github.com/vovakirdan/tui-breaker/internal/config"
)

func TestBuildGridLayout(t *testing.T) {
	cfg := config.DefaultBreakerConfig().Bricks
	bricks := BuildGrid(cfg, 900)

	if len(bricks) != cfg.Rows*cfg.Cols {
		t.Fatalf("Grid has %d bricks, expected %d", len(bricks), cfg.Rows*cfg.Cols)
	}

	// First brick sits flush against the left margin
	first := bricks[0]
	if got := first.X - first.W/2; got != cfg.MarginX {
		t.Errorf("First brick left edge = %v, expected %v", got, cfg.MarginX)
	}
	if got := first.Y - first.H/2; got != cfg.MarginY {
		t.Errorf("First brick top edge = %v, expected %v", got, cfg.MarginY)
	}

	// Last brick in the first row ends flush against the right margin
	last := bricks[cfg.Cols-1]
	want := 900 - cfg.MarginX
	if got := last.X + last.W/2; !almostEq(got, want) {
		t.Errorf("First row right edge = %v, expected %v", got, want)
	}

	// All bricks start alive
	for i := range bricks {
		if !bricks[i].Alive {
			t.Fatalf("Brick %d not alive after build", i)
		}
	}
}

func TestBuildGridHitPointsAndScore(t *testing.T) {
	cfg := config.DefaultBreakerConfig().Bricks
	bricks := BuildGrid(cfg, 900)

	for r := 0; r < cfg.Rows; r++ {
		b := bricks[r*cfg.Cols]

		wantHP := 1
		if r < cfg.HardRows {
			wantHP = 2
		}
		if b.HP != wantHP {
			t.Errorf("Row %d HP = %d, expected %d", r, b.HP, wantHP)
		}

		wantPoints := cfg.BasePoints + cfg.PointsPerRow*r
		if b.Points != wantPoints {
			t.Errorf("Row %d points = %d, expected %d", r, b.Points, wantPoints)
		}
	}
}

func TestBuildGridScalesWithFieldWidth(t *testing.T) {
	cfg := config.DefaultBreakerConfig().Bricks

	narrow := BuildGrid(cfg, 600)
	wide := BuildGrid(cfg, 1200)

	if narrow[0].W >= wide[0].W {
		t.Errorf("Brick width should grow with field width: narrow=%v wide=%v", narrow[0].W, wide[0].W)
	}
}

func TestCountAliveBricks(t *testing.T) {
	cfg := config.DefaultBreakerConfig().Bricks
	bricks := BuildGrid(cfg, 900)

	if got := countAliveBricks(bricks); got != len(bricks) {
		t.Errorf("countAliveBricks = %d, expected %d", got, len(bricks))
	}

	bricks[0].Alive = false
	bricks[5].Alive = false
	if got := countAliveBricks(bricks); got != len(bricks)-2 {
		t.Errorf("countAliveBricks = %d, expected %d", got, len(bricks)-2)
	}
}
