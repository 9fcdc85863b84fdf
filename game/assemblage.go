package game

import (
	"image/color"

	"github.com/calluna/strafe/ecs"
	"github.com/calluna/strafe/input"
)

// Assemblage defaults. Velocities are per-tick pixels (60 ticks/s).
const (
	shipW     = 32.0
	shipH     = 32.0
	shipSpeed = 5.0

	bulletW     = 4.0
	bulletH     = 10.0
	bulletSpeed = 8.0

	enemyW     = 32.0
	enemyH     = 32.0
	enemySpeed = 2.0

	// Enemies may dwell partially off-screen; their removal box is inset
	// outward by this much on every side.
	enemyBoundsInset = 100.0
)

var (
	shipColor   = color.RGBA{R: 0x4e, G: 0xc9, B: 0xb0, A: 0xff}
	bulletColor = color.RGBA{R: 0xff, G: 0xe6, B: 0x6d, A: 0xff}
	enemyColor  = color.RGBA{R: 0xe0, G: 0x6c, B: 0x75, A: 0xff}
)

// NewPlayerShip builds the player-controlled ship, horizontally centered near
// the bottom of the screen, clamped to the screen rectangle.
func NewPlayerShip(screenW, screenH float64, in *input.State) *ecs.Entity {
	ship := ecs.NewEntity(
		NewPosition(screenW/2-shipW/2, screenH-2*shipH),
		NewVelocity(0, 0),
		&Renderable{Color: shipColor},
		NewRect(shipW, shipH),
		&Blaster{},
		NewWhitelist(),
		&Bounds{X: 0, Y: 0, W: screenW, H: screenH},
		&Player{},
	)
	ship.Add(&Interactable{Command: &ShipController{
		Ship:  ship,
		Input: in,
		Speed: shipSpeed,
	}})
	return ship
}

// NewBullet builds a bullet centered on the firing ship's top edge, moving
// straight up, removed once fully outside bounds. The bullet and the ship
// whitelist each other so the shot does not immediately destroy the shooter.
// A ship missing its expected components is a broken assemblage and panics.
func NewBullet(ship *ecs.Entity, bounds Bounds) *ecs.Entity {
	shipPos := ecs.Get[Position](ship)
	shipRect := ecs.Get[Rect](ship)
	if shipPos == nil || shipRect == nil {
		panic("game: firing ship has no position or rect; broken assemblage")
	}

	wl := NewWhitelist()
	wl.Allow(ship.ID())
	bullet := ecs.NewEntity(
		NewPosition(shipPos.X+shipRect.W/2-bulletW/2, shipPos.Y-bulletH),
		NewVelocity(0, -bulletSpeed),
		&Renderable{Color: bulletColor},
		NewRect(bulletW, bulletH),
		wl,
		&bounds,
		&RemovableAtBounds{},
	)
	return bullet
}

// NewEnemyShip builds an enemy at position (x, 0) drifting sideways by driftX
// per tick while descending at fixed speed. Its removal box extends past the
// screen on all sides so it can dwell partially off-screen before deletion.
func NewEnemyShip(x, driftX, screenW, screenH float64) *ecs.Entity {
	return ecs.NewEntity(
		NewPosition(x, 0),
		NewVelocity(driftX, enemySpeed),
		&Renderable{Color: enemyColor},
		NewRect(enemyW, enemyH),
		&Bounds{
			X: -enemyBoundsInset,
			Y: -enemyBoundsInset,
			W: screenW + 2*enemyBoundsInset,
			H: screenH + 2*enemyBoundsInset,
		},
		&RemovableAtBounds{},
	)
}

// NewSpawner builds the invisible enemy spawner.
func NewSpawner() *ecs.Entity {
	return ecs.NewEntity(&SpawnTimer{}, &Counter{})
}
