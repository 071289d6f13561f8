package ecs

import "github.com/milk9111/inkfall/ecs/component"

// Query returns alive entities that have every listed component kind.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	stores := make([]anyStore, 0, len(kinds))
	for _, k := range kinds {
		s, ok := w.stores[k.ID()]
		if !ok || s.len() == 0 {
			return nil
		}
		stores = append(stores, s)
	}
	// iterate the smallest store
	smallest := 0
	for i, s := range stores {
		if s.len() < stores[smallest].len() {
			smallest = i
		}
	}
	var out []Entity
	for _, id := range stores[smallest].ids() {
		if !hasAll(stores, id) {
			continue
		}
		if e, ok := w.entities.current(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first alive entity that has every listed kind.
func (w *World) First(kinds ...component.Kind) (Entity, bool) {
	ents := w.Query(kinds...)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

func hasAll(stores []anyStore, id entityID) bool {
	for _, s := range stores {
		if !s.has(id) {
			return false
		}
	}
	return true
}
