package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breaker/internal/config"
	"github.com/vovakirdan/tui-breaker/internal/core"
	"github.com/vovakirdan/tui-breaker/internal/game"
	"github.com/vovakirdan/tui-breaker/internal/storage"
)

// Logical play-field units per terminal cell. An 80x24 terminal maps to
// the classic 900x700 field the physics constants are tuned for.
const (
	unitsPerCellX = 900.0 / 80.0
	unitsPerCellY = 700.0 / 24.0
)

// holdTicks is how many simulation ticks a movement key counts as held
// after its last press. Terminals deliver key repeats, not key-up
// events; this bridges repeat gaps so movement stays smooth.
const holdTicks = 6

// Model is the Bubble Tea model driving one game session.
type Model struct {
	session  *game.Session
	screen   *core.Screen
	view     *View
	store    *storage.Store
	keys     *KeyMapper
	tickRate int

	snap      game.Snapshot
	lastTick  time.Time
	holdLeft  int
	holdRight int

	quitting bool
	runSaved bool // Whether the current finished run was mirrored to storage
}

// NewModel creates a Bubble Tea model for the given terminal size.
// A zero seed is replaced with the current time.
func NewModel(gameCfg config.BreakerConfig, store *storage.Store, screenW, screenH, tickRate int, seed int64) Model {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if tickRate <= 0 {
		tickRate = 60
	}

	runtime := core.RuntimeConfig{
		FieldW:   float64(screenW) * unitsPerCellX,
		FieldH:   float64(screenH) * unitsPerCellY,
		TickRate: tickRate,
		Seed:     seed,
	}

	screen := core.NewScreen(screenW, screenH)
	session := game.NewSession(gameCfg, runtime)

	return Model{
		session:  session,
		screen:   screen,
		view:     NewView(screen),
		store:    store,
		keys:     NewKeyMapper(),
		tickRate: tickRate,
		snap:     session.Snapshot(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionMotion {
			m.session.PointerMove(float64(msg.X) * unitsPerCellX)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		m.session.Resize(float64(msg.Width)*unitsPerCellX, float64(msg.Height)*unitsPerCellY)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey maps a key press to an intent on the session.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg, m.snap.Screen)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionMoveLeft:
		m.holdLeft = holdTicks
		m.holdRight = 0
	case core.ActionMoveRight:
		m.holdRight = holdTicks
		m.holdLeft = 0
	case core.ActionNone:
	default:
		m.session.Apply(action)
	}

	return m, nil
}

// handleTick advances the simulation by the wall-clock delta since the
// previous tick. The session clamps the delta internally.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 0.0
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	m.session.MoveLeft(m.holdLeft > 0)
	m.session.MoveRight(m.holdRight > 0)
	if m.holdLeft > 0 {
		m.holdLeft--
	}
	if m.holdRight > 0 {
		m.holdRight--
	}

	m.session.Advance(dt)
	m.snap = m.session.Snapshot()

	if m.session.ShouldQuit() {
		m.quitting = true
		return m, tea.Quit
	}

	m.saveRunIfFinished()

	return m, tickCmd(m.tickRate)
}

// saveRunIfFinished mirrors a finished run into storage exactly once.
func (m *Model) saveRunIfFinished() {
	switch m.snap.Screen {
	case game.ScreenWin, game.ScreenGameOver:
		if !m.runSaved && m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveRun(m.snap.Score, m.snap.PlayTime)
		}
		m.runSaved = true
	case game.ScreenPlaying:
		m.runSaved = false
	}
}

// View renders the current snapshot to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.view.Draw(m.snap)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(gameCfg config.BreakerConfig, store *storage.Store, screenW, screenH, tickRate int, seed int64) error {
	model := NewModel(gameCfg, store, screenW, screenH, tickRate, seed)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Paddle follows the pointer
	)

	_, err := p.Run()
	return err
}
