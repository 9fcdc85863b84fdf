package game

import (
	"go.uber.org/zap"

	"github.com/calluna/strafe/ecs"
)

// CountSink receives the live-entity count and slot capacity once per tick.
type CountSink interface {
	ReportCounts(live, capacity int)
}

// StatsSystem fills the reporting slot of the tick pipeline: it computes
// world occupancy each tick and forwards it to every registered sink.
type StatsSystem struct {
	Sinks []CountSink
}

func NewStatsSystem(sinks ...CountSink) *StatsSystem {
	return &StatsSystem{Sinks: sinks}
}

func (s *StatsSystem) Update(frame *ecs.Frame) {
	live := frame.World.Live()
	capacity := frame.World.Cap()
	for _, sink := range s.Sinks {
		sink.ReportCounts(live, capacity)
	}
}

// LogCountSink logs occupancy through zap, only when it changes.
type LogCountSink struct {
	Log          *zap.Logger
	lastLive     int
	lastCapacity int
	seen         bool
}

func NewLogCountSink(log *zap.Logger) *LogCountSink {
	return &LogCountSink{Log: log}
}

func (s *LogCountSink) ReportCounts(live, capacity int) {
	if s.seen && live == s.lastLive && capacity == s.lastCapacity {
		return
	}
	s.seen = true
	s.lastLive = live
	s.lastCapacity = capacity
	s.Log.Debug("world occupancy",
		zap.Int("live", live),
		zap.Int("capacity", capacity),
	)
}
