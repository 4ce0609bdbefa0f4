package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// FlowState is the game-flow state. Exactly one is active at a time.
type FlowState uint8

const (
	StateStartup FlowState = iota
	StateMainMenu
	StatePlaying
	StateGameOver
)

// String returns a human-readable name for the flow state.
func (s FlowState) String() string {
	switch s {
	case StateStartup:
		return "Startup"
	case StateMainMenu:
		return "MainMenu"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// ScoreStore is the persistence collaborator. Load failures degrade to a
// high score of 0; save failures are ignored by the simulation.
type ScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// Status is returned by Step after each frame.
type Status struct {
	Flow      FlowState
	Score     int
	HighScore int
}

// Game is the simulation core. All state is mutated in place by the system
// phases of Step, in a fixed order, on a single goroutine; the phase order
// is the concurrency contract.
type Game struct {
	cfg    core.RuntimeConfig
	tuning config.InvadersConfig
	rng    *rand.Rand
	store  *Store
	scores ScoreStore // May be nil; persistence is best-effort

	flow       FlowState
	score      int
	highScore  int
	enemyCount int
	enemyCap   int
	capRaised  bool // One-shot latch for the cap step-up
	upgrade    bool // Laser velocity upgrade, latched for the session

	playerID ID
	fireHeld bool // Previous frame's fire level, for edge detection

	spawnTimer float64
	fireTimer  float64
}

// New creates a game with the given tuning. The score store may be nil.
func New(tuning config.InvadersConfig, scores ScoreStore) *Game {
	return &Game{
		tuning: tuning,
		store:  NewStore(),
		scores: scores,
	}
}

// ID returns the identifier used for CLI commands and score storage.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Invaders"
}

// Reset initializes the session. The play-area bounds are known at this
// point, so Startup immediately yields to the main menu.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.store.Clear()

	g.flow = StateStartup
	g.score = 0
	g.highScore = 0
	g.enemyCount = 0
	g.enemyCap = g.tuning.Progression.InitialEnemyCap
	g.capRaised = false
	g.upgrade = false
	g.playerID = NoID
	g.fireHeld = false
	g.spawnTimer = 0
	g.fireTimer = 0

	if g.scores != nil {
		if hs, err := g.scores.LoadHighScore(); err == nil {
			g.highScore = hs
		}
	}

	g.flow = StateMainMenu
}

// Step advances the simulation by one frame of dt elapsed seconds.
// Phase order: input -> flow gating -> player control -> spawners ->
// movement -> collision -> explosion aging -> flow transition checks.
func (g *Game) Step(in core.InputFrame, dt float64) Status {
	if dt < 0 {
		dt = 0
	}

	fireLevel := in.Has(core.ActionFire)
	firePressed := fireLevel && !g.fireHeld
	g.fireHeld = fireLevel

	switch g.flow {
	case StateMainMenu:
		if in.Has(core.ActionConfirm) {
			g.startRun()
		}
	case StatePlaying:
		g.steerPlayer(in)
		g.runSpawners(dt, firePressed)
	}

	// Movement and explosion aging run in every flow state so residual
	// entities keep moving and animating outside Playing.
	g.integrate(dt)

	if g.flow == StatePlaying {
		g.resolveCollisions()
		g.applyProgression()
	}

	g.animateExplosions(dt)

	if g.flow == StateGameOver {
		g.settleGameOver()
	}

	return g.Status()
}

// Status returns the current flow state and scores.
func (g *Game) Status() Status {
	return Status{
		Flow:      g.flow,
		Score:     g.score,
		HighScore: g.highScore,
	}
}

// startRun transitions MainMenu -> Playing: reset the score, clear any
// leftover entities and spawn the player at the bottom center.
func (g *Game) startRun() {
	g.store.Clear()
	g.enemyCount = 0
	g.score = 0
	g.spawnTimer = 0
	g.fireTimer = 0

	scale := g.tuning.Physics.SpriteScale
	bottom := -g.cfg.WorldH / 2
	g.playerID = g.store.Create(Entity{
		Kind:  KindPlayer,
		Pos:   core.Vec2{X: 0, Y: bottom + g.tuning.Player.Height/2*scale + 5},
		Scale: core.Vec2{X: scale, Y: scale},
		Size:  core.Vec2{X: g.tuning.Player.Width, Y: g.tuning.Player.Height},
	})

	g.flow = StatePlaying
}

// steerPlayer applies the level-triggered move input to the player's
// horizontal velocity, refusing to steer past the play-area edge.
func (g *Game) steerPlayer(in core.InputFrame) {
	p, ok := g.store.Get(g.playerID)
	if !ok {
		return
	}

	x := 0.0
	if in.Has(core.ActionMoveLeft) {
		x = -g.tuning.Player.MoveSpeed
	} else if in.Has(core.ActionMoveRight) {
		x = g.tuning.Player.MoveSpeed
	}

	half := g.tuning.Player.Width / 2 * g.tuning.Physics.SpriteScale
	if p.Pos.X < -g.cfg.WorldW/2+half && x < 0 {
		p.Vel.X = 0
		return
	}
	if p.Pos.X > g.cfg.WorldW/2-half && x > 0 {
		p.Vel.X = 0
		return
	}

	p.Vel.X = x
}

// applyProgression checks the score thresholds. Latches fire once per
// session on score >= threshold, so a score jump cannot skip them.
func (g *Game) applyProgression() {
	if !g.capRaised && g.score >= g.tuning.Progression.CapScore {
		g.enemyCap = g.tuning.Progression.RaisedEnemyCap
		g.capRaised = true
	}
	if !g.upgrade && g.score >= g.tuning.Progression.UpgradeScore {
		g.upgrade = true
	}
}

// animateExplosions ages every explosion by dt, advancing one animation
// frame per frame-time interval and destroying the entity after the last.
func (g *Game) animateExplosions(dt float64) {
	frames := g.tuning.Explosion.Frames
	frameTime := g.tuning.Explosion.FrameTime

	g.store.ForEach(KindExplosion, func(id ID, e *Entity) {
		e.FrameTimer += dt
		for e.FrameTimer >= frameTime {
			e.FrameTimer -= frameTime
			e.Frame++
		}
		if e.Frame >= frames {
			g.store.Destroy(id)
		}
	})
}

// settleGameOver runs every frame while in GameOver: the session progression
// is reset and remaining enemies are despawned immediately, but the menu
// only reappears once the last explosion has finished.
func (g *Game) settleGameOver() {
	g.enemyCap = g.tuning.Progression.InitialEnemyCap
	g.capRaised = false
	g.upgrade = false

	g.store.ForEach(KindEnemy, func(id ID, _ *Entity) {
		if g.store.Destroy(id) {
			g.enemyCount--
		}
	})

	if g.store.Count(KindExplosion) > 0 {
		return
	}

	if g.score > g.highScore {
		g.highScore = g.score
		if g.scores != nil {
			// Best-effort persistence; in-memory tracking continues on failure.
			_ = g.scores.SaveHighScore(g.highScore)
		}
	}

	g.flow = StateMainMenu
}
