package ecs

import "strconv"

type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e.id()), 10) + "v" + strconv.FormatUint(uint64(e.generation()), 10)
}

func (e Entity) Valid() bool {
	return e.id() > 0
}

// entityStore tracks entity generations and free ids. Ids start at 1 so the
// zero Entity is never alive.
type entityStore struct {
	gens  []generation
	alive []bool
	free  []entityID
}

func (s *entityStore) create() Entity {
	if len(s.free) > 0 {
		id := s.free[len(s.free)-1]
		s.free = s.free[:len(s.free)-1]
		s.alive[id-1] = true
		return makeEntity(id, s.gens[id-1])
	}
	s.gens = append(s.gens, 0)
	s.alive = append(s.alive, true)
	return makeEntity(entityID(len(s.gens)), 0)
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	idx := e.id() - 1
	s.gens[idx]++
	s.alive[idx] = false
	s.free = append(s.free, e.id())
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(s.gens) {
		return false
	}
	return s.alive[id-1] && s.gens[id-1] == e.generation()
}
