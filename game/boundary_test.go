package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/calluna/strafe/ecs"
	"github.com/calluna/strafe/game"
)

func clampedEntity(x, y float64) *ecs.Entity {
	return ecs.NewEntity(
		game.NewPosition(x, y),
		game.NewVelocity(-2, -3),
		game.NewRect(10, 10),
		&game.Bounds{X: 0, Y: 0, W: 100, H: 100},
	)
}

func TestBoundaryClampsLowEdgesToZero(t *testing.T) {
	w := ecs.NewWorld()
	w.AddSystem(game.BoundarySystem{})

	e := clampedEntity(-5, -7)
	w.AddEntity(e)
	tick(w)

	pos := ecs.Get[game.Position](e)
	vel := ecs.Get[game.Velocity](e)
	assert.Equal(t, 0.0, pos.X)
	assert.Equal(t, 0.0, pos.Y)
	assert.Equal(t, 0.0, vel.X)
	assert.Equal(t, 0.0, vel.Y)
}

func TestBoundaryClampsHighEdgesByExtent(t *testing.T) {
	w := ecs.NewWorld()
	w.AddSystem(game.BoundarySystem{})

	e := ecs.NewEntity(
		game.NewPosition(95, 98),
		game.NewVelocity(4, 4),
		game.NewRect(10, 10),
		&game.Bounds{X: 0, Y: 0, W: 100, H: 100},
	)
	w.AddEntity(e)
	tick(w)

	pos := ecs.Get[game.Position](e)
	vel := ecs.Get[game.Velocity](e)
	assert.Equal(t, 90.0, pos.X)
	assert.Equal(t, 90.0, pos.Y)
	assert.Equal(t, 0.0, vel.X)
	assert.Equal(t, 0.0, vel.Y)
}

func TestBoundaryClampIsIdempotent(t *testing.T) {
	w := ecs.NewWorld()
	w.AddSystem(game.BoundarySystem{})

	e := clampedEntity(-5, 120)
	w.AddEntity(e)

	tick(w)
	first := *ecs.Get[game.Position](e)
	tick(w)
	second := *ecs.Get[game.Position](e)

	assert.Equal(t, first, second)
}

func TestBoundaryZeroesOnlyClampedAxis(t *testing.T) {
	w := ecs.NewWorld()
	w.AddSystem(game.BoundarySystem{})

	e := ecs.NewEntity(
		game.NewPosition(-1, 50),
		game.NewVelocity(-2, 3),
		game.NewRect(10, 10),
		&game.Bounds{X: 0, Y: 0, W: 100, H: 100},
	)
	w.AddEntity(e)
	tick(w)

	vel := ecs.Get[game.Velocity](e)
	assert.Equal(t, 0.0, vel.X)
	assert.Equal(t, 3.0, vel.Y)
}

func TestBoundaryIgnoresRemovableEntities(t *testing.T) {
	w := ecs.NewWorld()
	w.AddSystem(game.BoundarySystem{})

	// A bullet above the top edge must keep flying out, not snap back.
	e := ecs.NewEntity(
		game.NewPosition(50, -8),
		game.NewVelocity(0, -8),
		game.NewRect(4, 10),
		&game.Bounds{X: 0, Y: 0, W: 100, H: 100},
		&game.RemovableAtBounds{},
	)
	w.AddEntity(e)
	tick(w)

	assert.Equal(t, -8.0, ecs.Get[game.Position](e).Y)
	assert.Equal(t, -8.0, ecs.Get[game.Velocity](e).Y)
}
