package game

import (
	"math/rand/v2"
	"time"

	"github.com/calluna/strafe/ecs"
)

const (
	spawnCooldown = 100 * time.Millisecond
	spawnEvery    = 10 // eligible ticks per enemy
)

// SpawnSystem drives the single SpawnTimer+Counter entity. Every eligible
// tick (gated by a wall-clock cooldown) increments the counter; every
// spawnEvery-th count inserts one enemy at a random spot along the top edge
// with a random sideways drift. With no spawner in the world it is a no-op.
type SpawnSystem struct {
	Rand    *rand.Rand
	ScreenW float64
	ScreenH float64
}

func NewSpawnSystem(rng *rand.Rand, screenW, screenH float64) *SpawnSystem {
	return &SpawnSystem{Rand: rng, ScreenW: screenW, ScreenH: screenH}
}

func (s *SpawnSystem) Update(frame *ecs.Frame) {
	spawner := frame.World.Find(func(e *ecs.Entity) bool {
		return ecs.Has[SpawnTimer](e) && ecs.Has[Counter](e)
	})
	if spawner == nil {
		return
	}

	timer := ecs.Get[SpawnTimer](spawner)
	if frame.Now.Sub(timer.LastSpawn) < spawnCooldown {
		return
	}
	timer.LastSpawn = frame.Now

	counter := ecs.Get[Counter](spawner)
	counter.Count++
	if counter.Count%spawnEvery != 0 {
		return
	}

	x := s.Rand.Float64() * (s.ScreenW - enemyW)
	drift := s.Rand.Float64() * enemySpeed
	if s.Rand.IntN(2) == 0 {
		drift = -drift
	}
	frame.World.AddEntity(NewEnemyShip(x, drift, s.ScreenW, s.ScreenH))
}
