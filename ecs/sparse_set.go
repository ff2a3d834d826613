package ecs

// SparseSet is a cache-friendly storage for components keyed by entity id.
// It stores components as `any`; the generic helpers restore the type.
type SparseSet struct {
	denseEntities []Entity
	denseValues   []any
	sparse        []int
}

// Has returns true if the entity exists in the set with the same generation.
func (s *SparseSet) Has(e Entity) bool {
	idx, ok := s.index(e.id())
	return ok && s.denseEntities[idx] == e
}

// Get returns the component for e, or nil.
func (s *SparseSet) Get(e Entity) any {
	if !s.Has(e) {
		return nil
	}
	return s.denseValues[s.sparse[e.id()-1]]
}

// Set inserts or updates a component for e. A stale generation occupying the
// same id is overwritten.
func (s *SparseSet) Set(e Entity, v any) {
	if s == nil || !e.Valid() {
		return
	}
	id := e.id()
	for int(id) > len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if idx, ok := s.index(id); ok {
		s.denseEntities[idx] = e
		s.denseValues[idx] = v
		return
	}
	s.denseEntities = append(s.denseEntities, e)
	s.denseValues = append(s.denseValues, v)
	s.sparse[id-1] = len(s.denseEntities) - 1
}

// Remove deletes the component for e if present.
func (s *SparseSet) Remove(e Entity) bool {
	if !s.Has(e) {
		return false
	}
	s.removeID(e.id())
	return true
}

func (s *SparseSet) removeID(id entityID) {
	idx, ok := s.index(id)
	if !ok {
		return
	}
	last := len(s.denseEntities) - 1
	lastEnt := s.denseEntities[last]

	s.denseEntities[idx] = lastEnt
	s.denseValues[idx] = s.denseValues[last]
	s.sparse[lastEnt.id()-1] = idx

	s.denseValues[last] = nil
	s.denseEntities = s.denseEntities[:last]
	s.denseValues = s.denseValues[:last]
	s.sparse[id-1] = -1
}

func (s *SparseSet) index(id entityID) (int, bool) {
	if s == nil || id == 0 || int(id) > len(s.sparse) {
		return 0, false
	}
	idx := s.sparse[id-1]
	if idx < 0 || idx >= len(s.denseEntities) || s.denseEntities[idx].id() != id {
		return 0, false
	}
	return idx, true
}

// Len returns the number of stored components.
func (s *SparseSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.denseEntities)
}

// Entities returns the dense entity list. Callers must not mutate it.
func (s *SparseSet) Entities() []Entity {
	if s == nil {
		return nil
	}
	return s.denseEntities
}
