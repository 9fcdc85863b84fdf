package game

import "github.com/calluna/strafe/ecs"

// CollisionSystem tests every ordered pair of live slots for axis-aligned
// rectangle overlap and tombstones both on a hit. Only entities carrying
// Position and Rect participate. A pair is exempt when either side's
// Whitelist allows the other.
//
// The scan reads the slot slice live, not a snapshot: once a pair is
// tombstoned, later comparisons in the same tick see the holes and skip
// them. The earliest-indexed colliding pair therefore claims its victims
// first. O(n²), fine for tens of entities.
type CollisionSystem struct{}

func (CollisionSystem) Update(frame *ecs.Frame) {
	w := frame.World
	slots := w.Slots()
	for i := range slots {
		subject := slots[i]
		if subject == nil {
			continue
		}
		subjPos := ecs.Get[Position](subject)
		subjRect := ecs.Get[Rect](subject)
		if subjPos == nil || subjRect == nil {
			continue
		}
		for j := range slots {
			if j == i {
				continue
			}
			other := slots[j]
			if other == nil {
				continue
			}
			otherPos := ecs.Get[Position](other)
			otherRect := ecs.Get[Rect](other)
			if otherPos == nil || otherRect == nil {
				continue
			}
			if exempt(subject, other) {
				continue
			}
			if overlaps(subjPos, subjRect, otherPos, otherRect) {
				w.Kill(i)
				w.Kill(j)
				break // subject is gone; on to the next slot
			}
		}
	}
}

func exempt(a, b *ecs.Entity) bool {
	if wl := ecs.Get[Whitelist](a); wl != nil && wl.Allows(b.ID()) {
		return true
	}
	if wl := ecs.Get[Whitelist](b); wl != nil && wl.Allows(a.ID()) {
		return true
	}
	return false
}

func overlaps(ap *Position, ar *Rect, bp *Position, br *Rect) bool {
	return ap.X < bp.X+br.W && ap.X+ar.W > bp.X &&
		ap.Y < bp.Y+br.H && ap.Y+ar.H > bp.Y
}
