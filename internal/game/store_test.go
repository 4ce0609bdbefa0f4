package game

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestStoreCreateAndCount(t *testing.T) {
	s := NewStore()

	id := s.Create(Entity{Kind: KindEnemy})
	if !s.Alive(id) {
		t.Fatal("created entity should be alive")
	}
	if s.Count(KindEnemy) != 1 {
		t.Errorf("Count(KindEnemy) = %d, expected 1", s.Count(KindEnemy))
	}
	if s.Count(KindPlayer) != 0 {
		t.Errorf("Count(KindPlayer) = %d, expected 0", s.Count(KindPlayer))
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", s.Len())
	}
}

func TestStoreDestroyIdempotent(t *testing.T) {
	s := NewStore()
	id := s.Create(Entity{Kind: KindEnemy})

	if !s.Destroy(id) {
		t.Error("first Destroy should report a live entity destroyed")
	}
	if s.Destroy(id) {
		t.Error("second Destroy must be a no-op")
	}
	if s.Count(KindEnemy) != 0 {
		t.Errorf("Count after double destroy = %d, expected 0", s.Count(KindEnemy))
	}
}

func TestStoreStaleHandleAfterReuse(t *testing.T) {
	s := NewStore()
	old := s.Create(Entity{Kind: KindEnemy})
	s.Destroy(old)

	// Reuses the freed slot
	fresh := s.Create(Entity{Kind: KindPlayerLaser})

	if s.Alive(old) {
		t.Error("stale handle must not resolve after slot reuse")
	}
	if !s.Alive(fresh) {
		t.Error("fresh handle should resolve")
	}
	if _, ok := s.Get(old); ok {
		t.Error("Get on stale handle should fail")
	}
}

func TestStoreDestroyDuringIteration(t *testing.T) {
	s := NewStore()
	var ids []ID
	for i := 0; i < 5; i++ {
		ids = append(ids, s.Create(Entity{Kind: KindEnemy, Pos: core.Vec2{X: float64(i)}}))
	}

	visited := 0
	s.ForEach(KindEnemy, func(id ID, _ *Entity) {
		visited++
		// Destroy a later entity on the first visit; it must not be revisited.
		if visited == 1 {
			s.Destroy(ids[4])
		}
	})

	if visited != 4 {
		t.Errorf("visited %d entities, expected 4 (one destroyed mid-walk)", visited)
	}
	if s.Count(KindEnemy) != 4 {
		t.Errorf("Count = %d, expected 4", s.Count(KindEnemy))
	}
}

func TestStoreCreateDuringIterationNotVisited(t *testing.T) {
	s := NewStore()
	for i := 0; i < 3; i++ {
		s.Create(Entity{Kind: KindEnemy})
	}
	// Free a slot so Create would normally reuse it
	victim := s.Create(Entity{Kind: KindEnemy})
	s.Destroy(victim)

	visited := 0
	s.ForEach(KindEnemy, func(id ID, _ *Entity) {
		visited++
		s.Create(Entity{Kind: KindEnemy})
	})

	if visited != 3 {
		t.Errorf("visited %d entities, expected 3 (creations deferred to appended slots)", visited)
	}
	if s.Count(KindEnemy) != 6 {
		t.Errorf("Count = %d, expected 6", s.Count(KindEnemy))
	}
}

func TestStoreClearInvalidatesHandles(t *testing.T) {
	s := NewStore()
	id := s.Create(Entity{Kind: KindPlayer})
	s.Clear()

	if s.Len() != 0 {
		t.Errorf("Len after Clear = %d, expected 0", s.Len())
	}
	if s.Alive(id) {
		t.Error("handle should be stale after Clear")
	}

	// A slot reused after Clear must not resurrect the old handle
	s.Create(Entity{Kind: KindEnemy})
	if s.Alive(id) {
		t.Error("pre-Clear handle must stay stale after slot reuse")
	}
}
