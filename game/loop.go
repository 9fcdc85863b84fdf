package game

import (
	"time"

	"go.uber.org/zap"

	"github.com/calluna/strafe/ecs"
)

// Loop is the fixed-timestep driver. Each Advance call banks real elapsed
// time and runs as many logical ticks as the bank covers (zero, one, or
// several when catching up). A separate wall-clock timer resets the whole
// world at a fixed interval regardless of how many ticks ran; its firing is
// therefore nondeterministic relative to simulation state, which is accepted.
// After each tick the end-game check runs; once it trips, no further ticks
// or resets occur.
type Loop struct {
	World *ecs.World

	clock      ecs.Clock
	step       time.Duration
	resetEvery time.Duration
	seed       func(*ecs.World)
	log        *zap.Logger
	endGame    EndGameSystem

	acc       time.Duration
	last      time.Time
	lastReset time.Time
	started   bool
	over      bool
}

// NewLoop seeds the world via seed and arms the reset timer. seed must
// register the tick systems and insert the initial entities; it runs again
// on every periodic reset.
func NewLoop(world *ecs.World, clock ecs.Clock, step, resetEvery time.Duration, seed func(*ecs.World), log *zap.Logger) *Loop {
	l := &Loop{
		World:      world,
		clock:      clock,
		step:       step,
		resetEvery: resetEvery,
		seed:       seed,
		log:        log,
		lastReset:  clock.Now(),
	}
	world.Reset(seed)
	return l
}

// Advance runs the simulation forward to the clock's current time and
// reports whether the game is over.
func (l *Loop) Advance() bool {
	if l.over {
		return true
	}

	now := l.clock.Now()
	if !l.started {
		l.started = true
		l.last = now
	}
	l.acc += now.Sub(l.last)
	l.last = now

	for l.acc >= l.step {
		l.acc -= l.step
		l.World.Update(now, l.step.Seconds())
		if l.endGame.GameOver(l.World) {
			l.over = true
			l.log.Info("game over", zap.Int("capacity", l.World.Cap()))
			return true
		}
	}

	if now.Sub(l.lastReset) >= l.resetEvery {
		l.lastReset = now
		l.World.Reset(l.seed)
		l.log.Info("world reset", zap.Duration("interval", l.resetEvery))
	}
	return false
}

// Over reports whether the end-game signal has been observed.
func (l *Loop) Over() bool {
	return l.over
}
