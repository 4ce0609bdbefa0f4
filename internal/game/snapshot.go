package game

// EntitySnapshot is the renderer-facing view of one live entity.
// Primitive fields only, so any front end can draw without touching the
// simulation internals.
type EntitySnapshot struct {
	Kind     Kind
	X, Y     float64 // Center position in world units
	ScaleX   float64
	ScaleY   float64
	W, H     float64 // Base sprite size in world units
	Frame    int     // Explosion animation frame, 0 otherwise
	Upgraded bool    // Player laser fired with the upgrade active
}

// Snapshot contains everything a rendering layer needs for one frame.
type Snapshot struct {
	Flow       FlowState
	Score      int
	HighScore  int
	EnemyCount int
	EnemyCap   int
	Upgrade    bool
	WorldW     float64
	WorldH     float64
	Entities   []EntitySnapshot
}

// Snapshot returns the current observable state of the simulation.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Flow:       g.flow,
		Score:      g.score,
		HighScore:  g.highScore,
		EnemyCount: g.enemyCount,
		EnemyCap:   g.enemyCap,
		Upgrade:    g.upgrade,
		WorldW:     g.cfg.WorldW,
		WorldH:     g.cfg.WorldH,
		Entities:   make([]EntitySnapshot, 0, g.store.Len()),
	}

	g.store.ForEachLive(func(_ ID, e *Entity) {
		snap.Entities = append(snap.Entities, EntitySnapshot{
			Kind:     e.Kind,
			X:        e.Pos.X,
			Y:        e.Pos.Y,
			ScaleX:   e.Scale.X,
			ScaleY:   e.Scale.Y,
			W:        e.Size.X,
			H:        e.Size.Y,
			Frame:    e.Frame,
			Upgraded: e.Upgraded,
		})
	})

	return snap
}
