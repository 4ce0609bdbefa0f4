package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/game"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// maxFrameDT caps a single simulation frame so a suspended terminal does
// not fast-forward the world when it resumes.
const maxFrameDT = 0.25

// Model is the Bubble Tea model driving the simulation.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	history    *storage.Store // Run history; may be nil
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	status     game.Status
	lastTick   time.Time
	quitting   bool
	scoreSaved bool // Whether the current run has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(g *game.Game, history *storage.Store, cfg core.RuntimeConfig, width, height int) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       g,
		screen:     core.NewScreen(width, height),
		history:    history,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleTick advances the simulation by the wall-clock time elapsed since
// the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
		if dt > maxFrameDT {
			dt = maxFrameDT
		}
	}
	m.lastTick = now

	prevFlow := m.status.Flow
	m.status = m.game.Step(m.inputFrame, dt)

	// Record the run once, at the moment the session ends
	switch {
	case prevFlow == game.StatePlaying && m.status.Flow == game.StateGameOver:
		if !m.scoreSaved && m.history != nil && m.status.Score > 0 {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.history.SaveScore(m.status.Score)
		}
		m.scoreSaved = true
	case m.status.Flow == game.StatePlaying:
		m.scoreSaved = false
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawSnapshot(m.screen, m.game.Snapshot())
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the given game.
func Run(g *game.Game, history *storage.Store, cfg core.RuntimeConfig, width, height int) error {
	model := NewModel(g, history, cfg, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
