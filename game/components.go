package game

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kamstrup/intmap"

	"github.com/calluna/strafe/ecs"
)

// Position is an entity's top-left world position in pixels.
type Position struct {
	X, Y float64
}

// Velocity is per-tick displacement, not per-second. MovementSystem applies
// it once per fixed step.
type Velocity struct {
	X, Y float64
}

// Rect is an entity's axis-aligned extent, used both for drawing and for
// collision.
type Rect struct {
	W, H float64
}

// Renderable marks an entity as drawable. A nil Sprite draws as a filled
// rectangle sized by the entity's Rect; a sprite delegates drawing entirely
// to the image.
type Renderable struct {
	Sprite *ebiten.Image
	Color  color.RGBA
}

// Command is the behavior held by an Interactable, invoked once per tick.
type Command interface {
	Act(frame *ecs.Frame)
}

// Interactable attaches a per-tick command to an entity.
type Interactable struct {
	Command Command
}

// Blaster tracks when the entity last fired, for the wall-clock fire
// cooldown.
type Blaster struct {
	LastFired time.Time
}

// Whitelist holds entity IDs exempt from colliding with the owner. Exemption
// is one-direction-sufficient: the collision pass skips a pair when either
// side allows the other.
type Whitelist struct {
	ids *intmap.Map[ecs.ID, struct{}]
}

func NewWhitelist() *Whitelist {
	return &Whitelist{ids: intmap.New[ecs.ID, struct{}](4)}
}

// Allow exempts the entity with the given ID.
func (w *Whitelist) Allow(id ecs.ID) {
	w.ids.Put(id, struct{}{})
}

// Allows reports whether id is exempt.
func (w *Whitelist) Allows(id ecs.ID) bool {
	_, ok := w.ids.Get(id)
	return ok
}

// Bounds is the world-space box an entity is clamped to (BoundarySystem) or
// removed beyond (BoundaryRemovalSystem).
type Bounds struct {
	X, Y, W, H float64
}

// RemovableAtBounds marks an entity for deletion once its rectangle fully
// exits its Bounds. Entities carrying it are not clamped.
type RemovableAtBounds struct{}

// SpawnTimer tracks when the spawner last became eligible.
type SpawnTimer struct {
	LastSpawn time.Time
}

// Counter counts eligible spawner ticks.
type Counter struct {
	Count int
}

// Player marks the player-controlled entity. The end-game check looks for it.
type Player struct{}

// NewPosition validates and builds a Position. Non-finite coordinates are a
// programmer error in assemblage code.
func NewPosition(x, y float64) *Position {
	mustFinite("position", x, y)
	return &Position{X: x, Y: y}
}

// NewVelocity validates and builds a Velocity.
func NewVelocity(x, y float64) *Velocity {
	mustFinite("velocity", x, y)
	return &Velocity{X: x, Y: y}
}

// NewRect validates and builds a Rect. Dimensions must be finite and
// positive.
func NewRect(w, h float64) *Rect {
	mustFinite("rect", w, h)
	if w <= 0 || h <= 0 {
		panic("game: rect dimensions must be positive")
	}
	return &Rect{W: w, H: h}
}

func mustFinite(what string, vs ...float64) {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			panic("game: " + what + " fields must be finite numbers")
		}
	}
}
