package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-breaker/internal/core"
	"github.com/vovakirdan/tui-breaker/internal/game"
)

// Visual characters for rendering
const (
	PaddleChar = '='
	BallChar   = '●'
	BulletChar = '|'
	BrickChar  = '█'
	HardChar   = '▓'
	HeartChar  = '♥'
)

// View draws a game snapshot into the screen buffer. The play field is
// in logical units; positions are scaled to the cell grid here, at the
// presentation boundary.
type View struct {
	screen *core.Screen
}

// NewView creates a view rendering into the given screen buffer.
func NewView(screen *core.Screen) *View {
	return &View{screen: screen}
}

// Draw renders the snapshot for the current screen state.
func (v *View) Draw(snap game.Snapshot) {
	dst := v.screen
	dst.Clear()

	switch snap.Screen {
	case game.ScreenMenu:
		v.drawMenu(snap)
	case game.ScreenHelp:
		v.drawHelp()
	case game.ScreenHighScores:
		v.drawHighScores(snap)
	case game.ScreenPlaying, game.ScreenPaused, game.ScreenWin, game.ScreenGameOver:
		v.drawField(snap)
		v.drawOverlay(snap)
	}
}

// cellX converts a logical x coordinate to a screen column.
func (v *View) cellX(snap game.Snapshot, x float64) int {
	if snap.FieldW <= 0 {
		return 0
	}
	return int(x * float64(v.screen.Width()) / snap.FieldW)
}

// cellY converts a logical y coordinate to a screen row.
func (v *View) cellY(snap game.Snapshot, y float64) int {
	if snap.FieldH <= 0 {
		return 0
	}
	return int(y * float64(v.screen.Height()) / snap.FieldH)
}

// drawField renders the HUD and all live entities.
func (v *View) drawField(snap game.Snapshot) {
	v.drawHUD(snap)
	v.drawBricks(snap)
	v.drawPerks(snap)
	v.drawBullets(snap)
	v.drawPaddle(snap)
	v.drawBall(snap)
}

// drawHUD draws score, lives, elapsed time, and active effects.
func (v *View) drawHUD(snap game.Snapshot) {
	dst := v.screen

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Score))

	lives := strings.Repeat(string(HeartChar), snap.Lives)
	dst.DrawTextColor((dst.Width()-snap.Lives)/2, 0, lives, core.ColorBrightRed)

	mins := int(snap.PlayTime) / 60
	secs := int(snap.PlayTime) % 60
	timeText := fmt.Sprintf("%02d:%02d", mins, secs)
	dst.DrawText(dst.Width()-len(timeText)-1, 0, timeText)

	effects := buildEffectsString(snap)
	if effects != "" {
		dst.DrawText(1, 1, effects)
	} else {
		dst.DrawHLine(0, 1, dst.Width(), '─')
	}
}

// buildEffectsString creates a compact display of active effect timers.
func buildEffectsString(snap game.Snapshot) string {
	parts := make([]string, 0, 4)
	if snap.Ball.Fireball {
		parts = append(parts, fmt.Sprintf("Fireball(%.0f)", snap.Ball.FireballTimer))
	} else if snap.Ball.Through {
		parts = append(parts, fmt.Sprintf("Through(%.0f)", snap.Ball.ThroughTimer))
	}
	if snap.Paddle.WidthTimer > 0 {
		parts = append(parts, fmt.Sprintf("Width(%.0f)", snap.Paddle.WidthTimer))
	}
	if snap.Paddle.Shooting {
		parts = append(parts, fmt.Sprintf("Guns(%.0f)", snap.Paddle.ShootingTimer))
	}
	return strings.Join(parts, " ")
}

// drawBricks draws all live bricks, colored per row.
func (v *View) drawBricks(snap game.Snapshot) {
	for i := range snap.Bricks {
		b := &snap.Bricks[i]
		if !b.Alive {
			continue
		}

		glyph := BrickChar
		if b.HP > 1 {
			glyph = HardChar
		}

		x0 := v.cellX(snap, b.X-b.W/2)
		x1 := v.cellX(snap, b.X+b.W/2)
		y := v.cellY(snap, b.Y)
		for x := x0; x <= x1; x++ {
			v.screen.SetColor(x, y, glyph, b.Color)
		}
	}
}

// drawPaddle draws the paddle, highlighted while shooting.
func (v *View) drawPaddle(snap game.Snapshot) {
	p := snap.Paddle
	x0 := v.cellX(snap, p.Pos.X-p.W/2)
	x1 := v.cellX(snap, p.Pos.X+p.W/2)
	y := v.cellY(snap, p.Pos.Y)

	color := core.ColorBrightWhite
	if p.Shooting {
		color = core.ColorBrightBlue
	}
	for x := x0; x <= x1; x++ {
		v.screen.SetColor(x, y, PaddleChar, color)
	}
}

// drawBall draws the ball, orange while a fireball is active.
func (v *View) drawBall(snap game.Snapshot) {
	b := snap.Ball
	color := core.ColorBrightWhite
	switch {
	case b.Fireball:
		color = core.ColorOrange
	case b.Through:
		color = core.ColorBrightCyan
	}
	v.screen.SetColor(v.cellX(snap, b.Pos.X), v.cellY(snap, b.Pos.Y), BallChar, color)
}

// drawPerks draws falling power-ups.
func (v *View) drawPerks(snap game.Snapshot) {
	for i := range snap.Perks {
		p := &snap.Perks[i]
		if !p.Alive {
			continue
		}
		v.screen.SetColor(v.cellX(snap, p.Pos.X), v.cellY(snap, p.Pos.Y), p.Type.Glyph(), p.Type.Color())
	}
}

// drawBullets draws bullets in flight.
func (v *View) drawBullets(snap game.Snapshot) {
	for i := range snap.Bullets {
		b := &snap.Bullets[i]
		if !b.Alive {
			continue
		}
		v.screen.SetColor(v.cellX(snap, b.Pos.X), v.cellY(snap, b.Pos.Y), BulletChar, core.ColorBrightYellow)
	}
}

// drawMenu draws the main menu with the highlighted entry.
func (v *View) drawMenu(snap game.Snapshot) {
	dst := v.screen
	top := dst.Height()/2 - len(snap.MenuItems)/2 - 2

	dst.DrawTextCenteredColor(top, "T U I   B R E A K E R", core.ColorBrightCyan)

	for i, item := range snap.MenuItems {
		y := top + 2 + i
		if i == snap.MenuIndex {
			dst.DrawTextCenteredColor(y, "> "+item+" <", core.ColorBrightYellow)
		} else {
			dst.DrawTextCentered(y, item)
		}
	}

	if snap.HaveBest {
		best := fmt.Sprintf("Best: %d in %.1fs", snap.Best.Score, snap.Best.Seconds)
		dst.DrawTextCenteredColor(top+4+len(snap.MenuItems), best, core.ColorGray)
	}
}

// drawHelp draws the controls reference.
func (v *View) drawHelp() {
	dst := v.screen
	lines := []string{
		"HELP",
		"",
		"a/left, d/right  move paddle",
		"space            launch ball",
		"f                fire (with guns power-up)",
		"p, esc           pause",
		"enter            select / confirm",
		"q                quit",
		"",
		"Clear every brick to win. Catch falling",
		"power-ups with the paddle. Beware of the skull.",
		"",
		"Press enter or esc to return",
	}
	top := (dst.Height() - len(lines)) / 2
	for i, line := range lines {
		dst.DrawTextCentered(top+i, line)
	}
}

// drawHighScores draws the session's sorted run history.
func (v *View) drawHighScores(snap game.Snapshot) {
	dst := v.screen
	dst.DrawTextCenteredColor(2, "HIGH SCORES", core.ColorBrightCyan)

	if len(snap.Runs) == 0 {
		dst.DrawTextCentered(dst.Height()/2, "No runs yet")
		dst.DrawTextCentered(dst.Height()-2, "Press enter or esc to return")
		return
	}

	shown := len(snap.Runs)
	if shown > 10 {
		shown = 10
	}
	for i := 0; i < shown; i++ {
		r := snap.Runs[i]
		line := fmt.Sprintf("%2d. %6d pts  %6.1fs", i+1, r.Score, r.Seconds)
		dst.DrawTextCentered(4+i, line)
	}
	dst.DrawTextCentered(dst.Height()-2, "Press enter or esc to return")
}

// drawOverlay draws the pause menu and terminal-screen message boxes on
// top of the field.
func (v *View) drawOverlay(snap game.Snapshot) {
	switch snap.Screen {
	case game.ScreenPlaying:
		if snap.Ball.Stuck {
			v.screen.DrawTextCentered(v.screen.Height()-1, "Press SPACE to launch")
		}

	case game.ScreenPaused:
		v.drawPauseMenu(snap)

	case game.ScreenGameOver:
		v.drawCenteredBox("GAME OVER", fmt.Sprintf("Score: %d  |  Press enter", snap.Score))

	case game.ScreenWin:
		v.drawCenteredBox("YOU WIN!", fmt.Sprintf("Final Score: %d  |  Press enter", snap.Score))
	}
}

// drawPauseMenu draws the two-entry pause menu box.
func (v *View) drawPauseMenu(snap game.Snapshot) {
	dst := v.screen
	boxW := 24
	boxH := 4 + len(snap.PauseItems)
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawText(boxX+(boxW-6)/2, boxY+1, "PAUSED")

	for i, item := range snap.PauseItems {
		y := boxY + 3 + i
		if i == snap.PauseIndex {
			dst.DrawTextColor(boxX+2, y, "> "+item, core.ColorBrightYellow)
		} else {
			dst.DrawText(boxX+4, y, item)
		}
	}
}

// drawCenteredBox draws a centered message box.
func (v *View) drawCenteredBox(title, subtitle string) {
	dst := v.screen
	boxW := len(subtitle) + 4
	if len(title)+4 > boxW {
		boxW = len(title) + 4
	}
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
