package game

// slot holds one arena entry. The generation counter is bumped on destroy so
// stale IDs cannot resolve after the slot is reused.
type slot struct {
	gen  uint32
	live bool
	ent  Entity
}

// Store owns all live entities. It is an arena with generation-checked
// indices: destruction marks the slot dead immediately (so the entity is not
// revisited later in the frame) and recycles the index through a free list.
type Store struct {
	slots     []slot
	free      []uint32
	counts    [5]int // Live entities per kind
	iterDepth int    // Non-zero while a ForEach walk is in progress
}

// NewStore creates an empty entity store.
func NewStore() *Store {
	return &Store{
		slots: make([]slot, 0, 64),
	}
}

// Create inserts an entity and returns its handle. During an active ForEach
// walk new entities always go to appended slots, never reused ones, so a
// walk cannot encounter an entity created while it runs.
func (s *Store) Create(e Entity) ID {
	if n := len(s.free); n > 0 && s.iterDepth == 0 {
		idx := s.free[n-1]
		s.free = s.free[:n-1]
		s.slots[idx].live = true
		s.slots[idx].ent = e
		s.counts[e.Kind]++
		return ID{index: idx, gen: s.slots[idx].gen}
	}

	s.slots = append(s.slots, slot{gen: 1, live: true, ent: e})
	s.counts[e.Kind]++
	return ID{index: uint32(len(s.slots) - 1), gen: 1}
}

// Get returns a pointer to the live entity for the given handle.
func (s *Store) Get(id ID) (*Entity, bool) {
	if int(id.index) >= len(s.slots) {
		return nil, false
	}
	sl := &s.slots[id.index]
	if !sl.live || sl.gen != id.gen {
		return nil, false
	}
	return &sl.ent, true
}

// Alive reports whether the handle refers to a live entity.
func (s *Store) Alive(id ID) bool {
	_, ok := s.Get(id)
	return ok
}

// Destroy removes the entity for the given handle. It is an idempotent no-op
// on a stale or already-destroyed handle; the return value reports whether a
// live entity was actually destroyed, so callers can maintain population
// counters without double-decrementing. Safe to call while iterating: the
// slot is marked dead at once and ForEach will not revisit it this frame.
func (s *Store) Destroy(id ID) bool {
	if int(id.index) >= len(s.slots) {
		return false
	}
	sl := &s.slots[id.index]
	if !sl.live || sl.gen != id.gen {
		return false
	}
	sl.live = false
	sl.gen++
	s.counts[sl.ent.Kind]--
	s.free = append(s.free, id.index)
	return true
}

// ForEach calls fn for every live entity of the given kind, in slot order.
// Entities destroyed during the walk are skipped; entities created during
// the walk are not visited until the next call.
func (s *Store) ForEach(k Kind, fn func(ID, *Entity)) {
	s.iterDepth++
	n := len(s.slots)
	for i := 0; i < n; i++ {
		sl := &s.slots[i]
		if !sl.live || sl.ent.Kind != k {
			continue
		}
		fn(ID{index: uint32(i), gen: sl.gen}, &sl.ent)
	}
	s.iterDepth--
}

// ForEachLive calls fn for every live entity regardless of kind.
func (s *Store) ForEachLive(fn func(ID, *Entity)) {
	s.iterDepth++
	n := len(s.slots)
	for i := 0; i < n; i++ {
		sl := &s.slots[i]
		if !sl.live {
			continue
		}
		fn(ID{index: uint32(i), gen: sl.gen}, &sl.ent)
	}
	s.iterDepth--
}

// Count returns the number of live entities of the given kind.
func (s *Store) Count(k Kind) int {
	return s.counts[k]
}

// Len returns the total number of live entities.
func (s *Store) Len() int {
	total := 0
	for _, c := range s.counts {
		total += c
	}
	return total
}

// Clear destroys every entity. Slots keep their bumped generations so
// handles issued before the clear stay stale after slot reuse.
func (s *Store) Clear() {
	s.free = s.free[:0]
	for i := range s.slots {
		if s.slots[i].live {
			s.slots[i].live = false
			s.slots[i].gen++
		}
		s.free = append(s.free, uint32(i))
	}
	s.counts = [5]int{}
}
