package game

import (
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// resolveCollisions runs the two collision passes. Only called while the
// flow state is Playing.
func (g *Game) resolveCollisions() {
	g.resolvePlayerLasers()
	g.resolveEnemyLasers()
}

// resolvePlayerLasers tests every live player laser against every live
// enemy. The first overlap consumes both: each laser and each enemy resolves
// at most one collision per frame, because destroyed entities are skipped by
// the store for the rest of the walk. Iteration follows slot order, which is
// deterministic for a given input sequence.
func (g *Game) resolvePlayerLasers() {
	g.store.ForEach(KindPlayerLaser, func(laserID ID, laser *Entity) {
		laserBox := laser.Bounds()
		g.store.ForEach(KindEnemy, func(enemyID ID, enemy *Entity) {
			if !g.store.Alive(laserID) {
				return
			}
			if !laserBox.Overlaps(enemy.Bounds()) {
				return
			}

			pos := enemy.Pos
			g.store.Destroy(laserID)
			if g.store.Destroy(enemyID) {
				g.enemyCount--
				g.score++
				g.spawnExplosion(pos)
			}
		})
	})
}

// resolveEnemyLasers tests every live enemy laser against the player. The
// player is a singleton, so resolution stops after the first hit, which
// destroys both entities and transitions the flow to GameOver.
func (g *Game) resolveEnemyLasers() {
	player, ok := g.store.Get(g.playerID)
	if !ok {
		return
	}
	playerBox := player.Bounds()
	playerPos := player.Pos

	g.store.ForEach(KindEnemyLaser, func(laserID ID, laser *Entity) {
		if !g.store.Alive(g.playerID) {
			return
		}
		if !laser.Bounds().Overlaps(playerBox) {
			return
		}

		g.store.Destroy(laserID)
		g.store.Destroy(g.playerID)
		g.spawnExplosion(playerPos)
		g.flow = StateGameOver
	})
}

// spawnExplosion creates an explosion entity at the given position with a
// fresh animation timer.
func (g *Game) spawnExplosion(pos core.Vec2) {
	g.store.Create(Entity{
		Kind:  KindExplosion,
		Pos:   pos,
		Scale: core.Vec2{X: 1, Y: 1},
		Size:  core.Vec2{X: 64, Y: 64},
	})
}
