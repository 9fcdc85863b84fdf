package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/calluna/strafe/ecs"
	"github.com/calluna/strafe/game"
)

func removable(x, y float64) *ecs.Entity {
	return ecs.NewEntity(
		game.NewPosition(x, y),
		game.NewRect(10, 10),
		&game.Bounds{X: 0, Y: 0, W: 100, H: 100},
		&game.RemovableAtBounds{},
	)
}

func TestRemovalTombstonesFullyOutsideEntity(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
	}{
		{"past left", -11, 50},
		{"past right", 101, 50},
		{"past top", 50, -11},
		{"past bottom", 50, 101},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			w.AddSystem(game.BoundaryRemovalSystem{})
			w.AddEntity(removable(tt.x, tt.y))
			tick(w)
			assert.Equal(t, 0, w.Live())
		})
	}
}

func TestRemovalPreservesPartialOverlap(t *testing.T) {
	w := ecs.NewWorld()
	w.AddSystem(game.BoundaryRemovalSystem{})

	w.AddEntity(removable(-5, 50)) // straddles the left edge
	tick(w)

	assert.Equal(t, 1, w.Live())
}

func TestRemovalIgnoresUnmarkedEntities(t *testing.T) {
	w := ecs.NewWorld()
	w.AddSystem(game.BoundaryRemovalSystem{})

	e := ecs.NewEntity(
		game.NewPosition(-50, -50),
		game.NewRect(10, 10),
		&game.Bounds{X: 0, Y: 0, W: 100, H: 100},
	)
	w.AddEntity(e)
	tick(w)

	assert.Equal(t, 1, w.Live())
}
