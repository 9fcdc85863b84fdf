package game

import "github.com/calluna/strafe/ecs"

// BoundarySystem clamps entities inside their Bounds, one axis at a time,
// zeroing the velocity component on any axis that clamped (wall stop, not
// bounce). Entities marked RemovableAtBounds are left alone; those exit
// their bounds and are deleted by BoundaryRemovalSystem instead.
//
// Low-edge clamps snap the position to literal 0, not the bounds origin;
// high-edge clamps reposition by the entity's extent.
type BoundarySystem struct{}

func (BoundarySystem) Update(frame *ecs.Frame) {
	for _, e := range frame.World.Slots() {
		if e == nil || ecs.Has[RemovableAtBounds](e) {
			continue
		}
		pos := ecs.Get[Position](e)
		rect := ecs.Get[Rect](e)
		bounds := ecs.Get[Bounds](e)
		vel := ecs.Get[Velocity](e)
		if pos == nil || rect == nil || bounds == nil || vel == nil {
			continue
		}

		if pos.X < bounds.X {
			pos.X = 0
			vel.X = 0
		}
		if pos.Y < bounds.Y {
			pos.Y = 0
			vel.Y = 0
		}
		if pos.X+rect.W > bounds.X+bounds.W {
			pos.X = bounds.X + bounds.W - rect.W
			vel.X = 0
		}
		if pos.Y+rect.H > bounds.Y+bounds.H {
			pos.Y = bounds.Y + bounds.H - rect.H
			vel.Y = 0
		}
	}
}
