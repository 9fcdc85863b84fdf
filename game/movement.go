package game

import "github.com/calluna/strafe/ecs"

// MovementSystem applies simple Euler integration: one velocity unit per
// fixed step. Entities missing Position or Velocity are skipped.
type MovementSystem struct{}

func (MovementSystem) Update(frame *ecs.Frame) {
	for _, e := range frame.World.Slots() {
		if e == nil {
			continue
		}
		pos := ecs.Get[Position](e)
		vel := ecs.Get[Velocity](e)
		if pos == nil || vel == nil {
			continue
		}
		pos.X += vel.X
		pos.Y += vel.Y
	}
}
