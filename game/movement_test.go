package game_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/calluna/strafe/ecs"
	"github.com/calluna/strafe/game"
)

const dt = 1.0 / 60.0

func tick(w *ecs.World) {
	w.Update(time.Now(), dt)
}

func TestMovementIntegratesOneStep(t *testing.T) {
	w := ecs.NewWorld()
	w.AddSystem(game.MovementSystem{})

	e := ecs.NewEntity(game.NewPosition(10, 20), game.NewVelocity(3, -4))
	w.AddEntity(e)

	tick(w)

	pos := ecs.Get[game.Position](e)
	assert.Equal(t, 13.0, pos.X)
	assert.Equal(t, 16.0, pos.Y)
}

func TestMovementSkipsPartialEntities(t *testing.T) {
	w := ecs.NewWorld()
	w.AddSystem(game.MovementSystem{})

	noVel := ecs.NewEntity(game.NewPosition(1, 1))
	noPos := ecs.NewEntity(game.NewVelocity(5, 5))
	w.AddEntity(noVel)
	w.AddEntity(noPos)

	tick(w)

	assert.Equal(t, 1.0, ecs.Get[game.Position](noVel).X)
	assert.Equal(t, 5.0, ecs.Get[game.Velocity](noPos).X)
}
