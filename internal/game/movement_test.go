package game

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestIntegrateAppliesBaseSpeed(t *testing.T) {
	g := newTestGame()

	id := g.store.Create(Entity{
		Kind:  KindEnemyLaser,
		Pos:   core.Vec2{X: 0, Y: 0},
		Scale: core.Vec2{X: 1, Y: 1},
		Size:  core.Vec2{X: 10, Y: 10},
		Vel:   core.Vec2{X: 0, Y: -1},
	})

	g.integrate(1.0 / 60)

	e, _ := g.store.Get(id)
	// 1 unit/s * 600 base speed * 1/60 s = 10 units
	if math.Abs(e.Pos.Y+10) > 1e-9 {
		t.Errorf("Y after one frame = %v, expected -10", e.Pos.Y)
	}
}

func TestAutoDespawnBeyondMargin(t *testing.T) {
	g := newTestGame()

	// World is 800x800 with a 200-unit margin: anything past ±600 is culled
	id := g.store.Create(Entity{
		Kind:        KindEnemyLaser,
		Pos:         core.Vec2{X: 0, Y: -601},
		Scale:       core.Vec2{X: 1, Y: 1},
		Size:        core.Vec2{X: 10, Y: 10},
		AutoDespawn: true,
	})

	g.integrate(testDT)

	if g.store.Alive(id) {
		t.Error("auto-despawn entity beyond bounds+margin should be removed")
	}
}

func TestDespawnInsideMarginKeepsEntity(t *testing.T) {
	g := newTestGame()

	id := g.store.Create(Entity{
		Kind:        KindEnemyLaser,
		Pos:         core.Vec2{X: 0, Y: -550}, // Off-screen but within the margin
		Scale:       core.Vec2{X: 1, Y: 1},
		Size:        core.Vec2{X: 10, Y: 10},
		AutoDespawn: true,
	})

	g.integrate(testDT)

	if !g.store.Alive(id) {
		t.Error("entity inside the margin must survive")
	}
}

func TestEnemyCullDecrementsPopulation(t *testing.T) {
	g := newTestGame()

	g.store.Create(Entity{
		Kind:        KindEnemy,
		Pos:         core.Vec2{X: 700, Y: 0},
		Scale:       core.Vec2{X: 1, Y: 1},
		Size:        core.Vec2{X: 10, Y: 10},
		AutoDespawn: true,
	})
	g.enemyCount = 1

	g.integrate(testDT)

	if g.enemyCount != 0 {
		t.Errorf("enemyCount = %d, expected 0 after the enemy wandered off", g.enemyCount)
	}
	if g.store.Count(KindEnemy) != 0 {
		t.Errorf("live enemies = %d, expected 0", g.store.Count(KindEnemy))
	}
}

func TestPlayerNeverAutoDespawns(t *testing.T) {
	g := newTestGame()
	startPlaying(t, g)

	p, _ := g.store.Get(g.playerID)
	p.Pos = core.Vec2{X: 5000, Y: 5000} // Forced far outside

	g.integrate(testDT)

	if !g.store.Alive(g.playerID) {
		t.Error("the player is not bounds-culled")
	}
}

func TestMovementRunsOutsidePlaying(t *testing.T) {
	g := newTestGame() // MainMenu

	id := g.store.Create(Entity{
		Kind:  KindPlayerLaser,
		Pos:   core.Vec2{X: 0, Y: 0},
		Scale: core.Vec2{X: 1, Y: 1},
		Size:  core.Vec2{X: 10, Y: 10},
		Vel:   core.Vec2{X: 0, Y: 1},
	})

	g.Step(frame(), testDT)

	e, _ := g.store.Get(id)
	if e.Pos.Y <= 0 {
		t.Error("residual entities must keep moving outside Playing")
	}
}

func TestSteerPlayerClampsAtEdges(t *testing.T) {
	g := newTestGame()
	startPlaying(t, g)

	p, _ := g.store.Get(g.playerID)
	half := g.tuning.Player.Width / 2 * g.tuning.Physics.SpriteScale

	// Push the player to the right edge; further right input is refused
	p.Pos.X = g.cfg.WorldW/2 - half + 1
	g.steerPlayer(frame(core.ActionMoveRight))
	if p.Vel.X != 0 {
		t.Errorf("Vel.X = %v, expected 0 at the right edge", p.Vel.X)
	}

	// Steering back toward the center is allowed
	g.steerPlayer(frame(core.ActionMoveLeft))
	if p.Vel.X != -1 {
		t.Errorf("Vel.X = %v, expected -1 steering back inward", p.Vel.X)
	}

	// No input stops the ship
	g.steerPlayer(frame())
	if p.Vel.X != 0 {
		t.Errorf("Vel.X = %v, expected 0 without input", p.Vel.X)
	}
}
