package ecs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calluna/strafe/ecs"
)

type recordingSystem struct {
	name string
	log  *[]string
}

func (s *recordingSystem) Update(frame *ecs.Frame) {
	*s.log = append(*s.log, s.name)
}

func TestAddEntityReusesTombstones(t *testing.T) {
	w := ecs.NewWorld()
	for i := 0; i < 3; i++ {
		w.AddEntity(ecs.NewEntity(&pos{X: float64(i)}))
	}

	w.Kill(1)
	require.Equal(t, 3, w.Cap())
	require.Equal(t, 2, w.Live())

	e := ecs.NewEntity(&pos{X: 99})
	idx := w.AddEntity(e)
	assert.Equal(t, 1, idx)
	assert.Equal(t, 3, w.Cap())
	assert.Same(t, e, w.Slots()[1])
}

func TestAddEntityAppendsWhenFull(t *testing.T) {
	w := ecs.NewWorld()
	w.AddEntity(ecs.NewEntity(&pos{}))
	idx := w.AddEntity(ecs.NewEntity(&pos{}))
	assert.Equal(t, 1, idx)
	assert.Equal(t, 2, w.Cap())
}

func TestEntityIDsAreUnique(t *testing.T) {
	w := ecs.NewWorld()
	a := ecs.NewEntity(&pos{})
	b := ecs.NewEntity(&pos{})
	w.AddEntity(a)
	w.Kill(0)
	w.AddEntity(b)

	// Slot indices are reused, IDs are not.
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestFind(t *testing.T) {
	w := ecs.NewWorld()
	w.AddEntity(ecs.NewEntity(&pos{}))
	tagged := ecs.NewEntity(&pos{}, &tag{})
	w.AddEntity(tagged)

	found := w.Find(func(e *ecs.Entity) bool { return ecs.Has[tag](e) })
	assert.Same(t, tagged, found)

	assert.Nil(t, w.Find(func(e *ecs.Entity) bool { return ecs.Has[vel](e) }))
}

func TestUpdateRunsSystemsInOrder(t *testing.T) {
	w := ecs.NewWorld()
	var log []string
	w.AddSystem(&recordingSystem{name: "a", log: &log})
	w.AddSystem(&recordingSystem{name: "b", log: &log})
	w.AddSystem(&recordingSystem{name: "c", log: &log})

	w.Update(time.Now(), 1.0/60.0)
	assert.Equal(t, []string{"a", "b", "c"}, log)
}

func TestAddSystemNilPanics(t *testing.T) {
	w := ecs.NewWorld()
	assert.Panics(t, func() { w.AddSystem(nil) })
}

func TestResetClearsAndReseeds(t *testing.T) {
	w := ecs.NewWorld()
	var log []string
	w.AddSystem(&recordingSystem{name: "old", log: &log})
	w.AddEntity(ecs.NewEntity(&pos{}))

	called := false
	w.Reset(func(w *ecs.World) {
		called = true
		assert.Equal(t, 0, w.Cap())
		w.AddSystem(&recordingSystem{name: "new", log: &log})
		w.AddEntity(ecs.NewEntity(&pos{}))
	})

	require.True(t, called)
	assert.Equal(t, 1, w.Live())

	w.Update(time.Now(), 1.0/60.0)
	assert.Equal(t, []string{"new"}, log)
}

func TestManualClock(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := ecs.NewManualClock(start)
	assert.Equal(t, start, c.Now())

	c.Advance(150 * time.Millisecond)
	assert.Equal(t, start.Add(150*time.Millisecond), c.Now())

	c.Set(start)
	assert.Equal(t, start, c.Now())
}
