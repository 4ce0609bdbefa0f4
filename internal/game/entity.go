// Package game implements the invaders simulation: entity lifecycle,
// movement integration, spawning, collision resolution and the game-flow
// state machine. It contains pure logic with no terminal dependencies; the
// platform layer drives it with input frames and elapsed time and renders
// from snapshots.
package game

import (
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Kind identifies the variant of an entity. Exactly one kind per entity;
// the kind determines which systems may mutate it.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
	KindPlayerLaser
	KindEnemyLaser
	KindExplosion
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindEnemy:
		return "Enemy"
	case KindPlayerLaser:
		return "PlayerLaser"
	case KindEnemyLaser:
		return "EnemyLaser"
	case KindExplosion:
		return "Explosion"
	default:
		return "Unknown"
	}
}

// ID is a generation-checked handle into the entity store. A stale ID (one
// whose entity has been destroyed) never resolves to a live entity, even if
// the slot has been reused.
type ID struct {
	index uint32
	gen   uint32
}

// NoID is the zero handle; it never refers to a live entity.
var NoID = ID{}

// Entity is the stored representation of one game object.
// Velocity is in units per second before the base-speed multiplier.
type Entity struct {
	Kind        Kind
	Pos         core.Vec2
	Scale       core.Vec2
	Size        core.Vec2 // Base sprite size; collision extent is Size*Scale/2
	Vel         core.Vec2
	AutoDespawn bool // Removed once outside bounds plus the despawn margin
	Upgraded    bool // Player laser fired while the upgrade is active

	// Explosion animation state
	Frame      int
	FrameTimer float64
}

// Bounds returns the entity's collision box centered at its position.
func (e *Entity) Bounds() core.AABB {
	return core.NewAABB(e.Pos, e.Size, e.Scale)
}
