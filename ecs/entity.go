package ecs

import "strconv"

// Entity is a generation-checked handle: the low 32 bits index the entity
// slot, the high 32 bits hold the slot generation at creation time. A handle
// to a destroyed entity never aliases the slot's next occupant.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

// NoEntity is the zero handle. It is never alive.
const NoEntity Entity = 0

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
