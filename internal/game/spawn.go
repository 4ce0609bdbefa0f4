package game

import (
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// runSpawners handles the time-gated enemy spawn and fire triggers, the
// player's fire input and the per-frame enemy drift. The interval timers
// accumulate elapsed wall-clock seconds, so each trigger fires at most once
// per interval regardless of frame rate.
func (g *Game) runSpawners(dt float64, firePressed bool) {
	g.spawnTimer += dt
	if g.spawnTimer >= g.tuning.Enemy.SpawnInterval {
		g.spawnTimer -= g.tuning.Enemy.SpawnInterval
		g.spawnEnemy()
	}

	g.fireTimer += dt
	if g.fireTimer >= g.tuning.Enemy.FireInterval {
		g.fireTimer -= g.tuning.Enemy.FireInterval
		g.enemyVolley()
	}

	if firePressed {
		g.playerFire()
	}

	g.driftEnemies()
}

// spawnEnemy creates one enemy at a uniformly random position inside the
// play area minus the spawn margin, if the population cap allows.
func (g *Game) spawnEnemy() {
	if g.enemyCount >= g.enemyCap {
		return
	}

	scale := g.tuning.Physics.SpriteScale
	wSpan := g.cfg.WorldW/2 - g.tuning.Enemy.SpawnMargin
	hSpan := g.cfg.WorldH/2 - g.tuning.Enemy.SpawnMargin

	g.store.Create(Entity{
		Kind: KindEnemy,
		Pos: core.Vec2{
			X: -wSpan + g.rng.Float64()*2*wSpan,
			Y: -hSpan + g.rng.Float64()*2*hSpan,
		},
		Scale:       core.Vec2{X: scale, Y: scale},
		Size:        core.Vec2{X: g.tuning.Enemy.Width, Y: g.tuning.Enemy.Height},
		AutoDespawn: true,
	})
	g.enemyCount++
}

// enemyVolley makes every live enemy fire two downward lasers, symmetrically
// offset from its position.
func (g *Game) enemyVolley() {
	scale := g.tuning.Physics.SpriteScale
	xOffset := g.tuning.Enemy.Width/2*scale - g.tuning.Enemy.LaserXInset

	g.store.ForEach(KindEnemy, func(_ ID, e *Entity) {
		for _, off := range [2]float64{xOffset, -xOffset} {
			g.store.Create(Entity{
				Kind:        KindEnemyLaser,
				Pos:         core.Vec2{X: e.Pos.X + off, Y: e.Pos.Y},
				Scale:       core.Vec2{X: scale, Y: scale},
				Size:        core.Vec2{X: g.tuning.Enemy.LaserWidth, Y: g.tuning.Enemy.LaserHeight},
				Vel:         core.Vec2{X: 0, Y: -1},
				AutoDespawn: true,
			})
		}
	})
}

// playerFire spawns two upward lasers on a rising edge of the fire input,
// unless the live-laser cap is reached. The velocity doubles and the sprite
// changes once the laser upgrade is active.
func (g *Game) playerFire() {
	p, ok := g.store.Get(g.playerID)
	if !ok {
		return
	}
	if g.store.Count(KindPlayerLaser) >= g.tuning.Player.MaxLasers {
		return
	}

	scale := g.tuning.Physics.SpriteScale
	xOffset := g.tuning.Player.Width/2*scale - g.tuning.Player.LaserXInset
	speed := 1.0
	if g.upgrade {
		speed = 2.0
	}

	for _, off := range [2]float64{xOffset, -xOffset} {
		g.store.Create(Entity{
			Kind:        KindPlayerLaser,
			Pos:         core.Vec2{X: p.Pos.X + off, Y: p.Pos.Y + g.tuning.Player.LaserYRise},
			Scale:       core.Vec2{X: scale, Y: scale},
			Size:        core.Vec2{X: g.tuning.Player.LaserWidth, Y: g.tuning.Player.LaserHeight},
			Vel:         core.Vec2{X: 0, Y: speed},
			AutoDespawn: true,
			Upgraded:    g.upgrade,
		})
	}
}

// driftEnemies perturbs each enemy's velocity by an independent random
// amount on both axes every frame. The walk is deliberately unclamped:
// enemies that wander past the despawn margin are culled by the movement
// integrator and replaced by the spawner.
func (g *Game) driftEnemies() {
	drift := g.tuning.Enemy.Drift
	g.store.ForEach(KindEnemy, func(_ ID, e *Entity) {
		e.Vel.X += -drift + g.rng.Float64()*2*drift
		e.Vel.Y += -drift + g.rng.Float64()*2*drift
	})
}
