package game

// integrate advances every movable entity by velocity * base speed * dt and
// culls auto-despawn entities that left the play area plus the despawn
// margin. Runs once per frame in every flow state.
func (g *Game) integrate(dt float64) {
	base := g.tuning.Physics.BaseSpeed
	margin := g.tuning.Physics.DespawnMargin
	maxX := g.cfg.WorldW/2 + margin
	maxY := g.cfg.WorldH/2 + margin

	g.store.ForEachLive(func(id ID, e *Entity) {
		if e.Kind == KindExplosion {
			return
		}

		e.Pos.X += e.Vel.X * base * dt
		e.Pos.Y += e.Vel.Y * base * dt

		if !e.AutoDespawn {
			return
		}
		if e.Pos.X > maxX || e.Pos.X < -maxX || e.Pos.Y > maxY || e.Pos.Y < -maxY {
			wasEnemy := e.Kind == KindEnemy
			if g.store.Destroy(id) && wasEnemy {
				g.enemyCount--
			}
		}
	})
}
