package ecs

import "github.com/milk9111/graveyardshift/ecs/component"

// World owns entities and their component stores.
type World struct {
	generations []generation
	alive       []bool
	free        []entityID
	live        int

	stores map[component.ComponentID]*SparseSet
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity, reusing freed ids with a bumped generation.
func (w *World) CreateEntity() Entity {
	if w == nil {
		return 0
	}
	var id entityID
	if n := len(w.free); n > 0 {
		id = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		w.generations = append(w.generations, 0)
		w.alive = append(w.alive, false)
		id = entityID(len(w.generations))
	}
	w.alive[id-1] = true
	w.live++
	return makeEntity(id, w.generations[id-1])
}

// DestroyEntity removes e and all of its components. It reports whether e was alive.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.IsAlive(e) {
		return false
	}
	for _, store := range w.stores {
		store.Remove(e)
	}
	id := e.id()
	w.alive[id-1] = false
	w.generations[id-1]++
	w.free = append(w.free, id)
	w.live--
	return true
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil || !e.Valid() {
		return false
	}
	id := int(e.id())
	if id > len(w.generations) {
		return false
	}
	return w.alive[id-1] && w.generations[id-1] == e.generation()
}

// Entities returns every live entity in id order.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.live)
	for i, ok := range w.alive {
		if ok {
			out = append(out, makeEntity(entityID(i+1), w.generations[i]))
		}
	}
	return out
}

// Query returns live entities that have every listed component.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.stores[k.ID()]
		if s == nil || s.Len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}
	smallest := sets[0]
	for _, s := range sets[1:] {
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}
	var out []Entity
	for _, e := range smallest.Entities() {
		if !w.IsAlive(e) {
			continue
		}
		match := true
		for _, s := range sets {
			if s != smallest && !s.Has(e) {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	return out
}

// First returns any live entity with the given component.
func (w *World) First(kind component.Kind) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	for _, e := range w.stores[kind.ID()].Entities() {
		if w.IsAlive(e) {
			return e, true
		}
	}
	return 0, false
}

// RemoveComponent deletes a component from e without type information.
func (w *World) RemoveComponent(e Entity, kind component.Kind) bool {
	if w == nil {
		return false
	}
	return w.stores[kind.ID()].Remove(e)
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	s := w.stores[id]
	if s == nil && create {
		s = newSparseSet()
		w.stores[id] = s
	}
	return s
}
