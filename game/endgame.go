package game

import "github.com/calluna/strafe/ecs"

// EndGameSystem is not part of the regular system list; the loop evaluates
// it separately after each tick.
type EndGameSystem struct{}

// GameOver reports whether no live entity carries the Player marker, i.e.
// the player ship has been removed.
func (EndGameSystem) GameOver(w *ecs.World) bool {
	return w.Find(func(e *ecs.Entity) bool { return ecs.Has[Player](e) }) == nil
}
