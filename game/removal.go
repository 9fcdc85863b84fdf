package game

import "github.com/calluna/strafe/ecs"

// BoundaryRemovalSystem tombstones entities marked RemovableAtBounds whose
// rectangle lies entirely beyond any edge of their Bounds. Bullets and
// enemies get deleted this way once they fully leave their permitted region.
type BoundaryRemovalSystem struct{}

func (BoundaryRemovalSystem) Update(frame *ecs.Frame) {
	w := frame.World
	for i, e := range w.Slots() {
		if e == nil || !ecs.Has[RemovableAtBounds](e) {
			continue
		}
		pos := ecs.Get[Position](e)
		rect := ecs.Get[Rect](e)
		bounds := ecs.Get[Bounds](e)
		if pos == nil || rect == nil || bounds == nil {
			continue
		}
		if pos.X+rect.W < bounds.X || pos.X > bounds.X+bounds.W ||
			pos.Y+rect.H < bounds.Y || pos.Y > bounds.Y+bounds.H {
			w.Kill(i)
		}
	}
}
