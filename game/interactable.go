package game

import (
	"time"

	"github.com/calluna/strafe/ecs"
	"github.com/calluna/strafe/input"
)

// InteractableSystem invokes the bound command of every entity carrying an
// Interactable component, once per tick, unconditionally.
type InteractableSystem struct{}

func (InteractableSystem) Update(frame *ecs.Frame) {
	for _, e := range frame.World.Slots() {
		if e == nil {
			continue
		}
		if ia := ecs.Get[Interactable](e); ia != nil && ia.Command != nil {
			ia.Command.Act(frame)
		}
	}
}

// fireCooldown gates bullet spawning per ship.
const fireCooldown = 100 * time.Millisecond

// ShipController is the player ship's per-tick command. It reads the shared
// key-state map, steers the ship, and fires bullets on a wall-clock cooldown.
type ShipController struct {
	Ship  *ecs.Entity
	Input *input.State
	Speed float64
}

func (c *ShipController) Act(frame *ecs.Frame) {
	vel := ecs.Get[Velocity](c.Ship)
	if vel == nil {
		return
	}

	// Releases first, presses after, so a press wins within the same tick.
	if c.Input.Get(input.Left) == input.Released && vel.X < 0 {
		vel.X = 0
	}
	if c.Input.Get(input.Right) == input.Released && vel.X > 0 {
		vel.X = 0
	}
	if c.Input.Get(input.Up) == input.Released && vel.Y < 0 {
		vel.Y = 0
	}
	if c.Input.Get(input.Down) == input.Released && vel.Y > 0 {
		vel.Y = 0
	}
	if c.Input.Pressed(input.Left) {
		vel.X = -c.Speed
	}
	if c.Input.Pressed(input.Right) {
		vel.X = c.Speed
	}
	if c.Input.Pressed(input.Up) {
		vel.Y = -c.Speed
	}
	if c.Input.Pressed(input.Down) {
		vel.Y = c.Speed
	}

	if c.Input.Pressed(input.Fire) {
		c.fire(frame)
	}
}

func (c *ShipController) fire(frame *ecs.Frame) {
	blaster := ecs.Get[Blaster](c.Ship)
	if blaster == nil {
		panic("game: firing ship has no blaster; broken assemblage")
	}
	if frame.Now.Sub(blaster.LastFired) < fireCooldown {
		return
	}
	blaster.LastFired = frame.Now

	bullet := NewBullet(c.Ship, screenBounds(c.Ship))
	frame.World.AddEntity(bullet)
	// Whitelisting is symmetric; the bullet's ID exists only after insertion.
	if wl := ecs.Get[Whitelist](c.Ship); wl != nil {
		wl.Allow(bullet.ID())
	}
}

// screenBounds reuses the ship's own clamp box as the bullet's removal box.
func screenBounds(ship *ecs.Entity) Bounds {
	b := ecs.Get[Bounds](ship)
	if b == nil {
		panic("game: firing ship has no bounds; broken assemblage")
	}
	return *b
}
