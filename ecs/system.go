package ecs

import "time"

// System is a per-tick behavior unit operating over the World's entity slots.
// Systems run in registration order; they may read and tombstone slots in
// place through the Frame's World.
type System interface {
	Update(frame *Frame)
}

// Frame carries the per-tick context handed to every system: the live World,
// the wall-clock time the tick started at (from the injected Clock), and the
// fixed step length in seconds.
type Frame struct {
	World *World
	Now   time.Time
	Dt    float64
}
