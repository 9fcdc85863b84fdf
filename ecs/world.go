package ecs

import "time"

// World owns a slot sequence of entities and an ordered list of systems, and
// drives one simulation tick at a time. A nil slot is a tombstone left by a
// removed entity; tombstones keep slot indices stable for in-flight iteration
// and are reused by the next insertion.
type World struct {
	slots   []*Entity
	systems []System
	nextID  ID
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{nextID: 1}
}

// AddEntity inserts e into the first tombstoned slot, or appends when none is
// free, and assigns the entity its ID. It returns the slot index. Insertion
// order is not preserved across tombstones.
func (w *World) AddEntity(e *Entity) int {
	if e.id == 0 {
		e.id = w.nextID
		w.nextID++
	}
	for i, s := range w.slots {
		if s == nil {
			w.slots[i] = e
			return i
		}
	}
	w.slots = append(w.slots, e)
	return len(w.slots) - 1
}

// Find returns the first live entity satisfying pred, or nil.
func (w *World) Find(pred func(*Entity) bool) *Entity {
	for _, e := range w.slots {
		if e != nil && pred(e) {
			return e
		}
	}
	return nil
}

// AddSystem appends s to the system list. Order is significant and is the
// caller's responsibility.
func (w *World) AddSystem(s System) {
	if s == nil {
		panic("ecs: cannot register a nil system")
	}
	w.systems = append(w.systems, s)
}

// Update runs every registered system once, in order, against the live slot
// sequence. now is the wall-clock time of this tick and dt the fixed step in
// seconds.
func (w *World) Update(now time.Time, dt float64) {
	frame := &Frame{World: w, Now: now, Dt: dt}
	for _, s := range w.systems {
		s.Update(frame)
	}
}

// Slots returns the live backing slice of entity slots. Callers iterate it by
// index; entries may be nil. Systems that tombstone during iteration observe
// their own removals, which is load-bearing for the collision policy.
func (w *World) Slots() []*Entity {
	return w.slots
}

// Kill tombstones slot i. Out-of-range indices are ignored.
func (w *World) Kill(i int) {
	if i >= 0 && i < len(w.slots) {
		w.slots[i] = nil
	}
}

// Cap returns the slot count, tombstones included.
func (w *World) Cap() int {
	return len(w.slots)
}

// Live returns the number of non-tombstoned slots.
func (w *World) Live() int {
	n := 0
	for _, e := range w.slots {
		if e != nil {
			n++
		}
	}
	return n
}

// Reset clears both the slot sequence and the system list, then invokes
// onReset with the now-empty world so the caller can re-register systems and
// re-seed entities. This is the only bulk-teardown path.
func (w *World) Reset(onReset func(*World)) {
	w.slots = nil
	w.systems = nil
	if onReset != nil {
		onReset(w)
	}
}
