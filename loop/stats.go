package loop

import "time"

// Stats describes the loop so far.
type Stats struct {
	Update       PhaseStats
	Draw         PhaseStats
	Steps        int64
	DroppedSteps int64
	DrawErrors   int64
	Entities     int
	Lag          float32
}

// PhaseStats provides timing statistics for one phase of the loop. For the
// update phase every fixed step is one execution; for the draw phase every
// frame is.
type PhaseStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type phaseStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

func newPhaseStats(name string) phaseStatsInternal {
	return phaseStatsInternal{
		name:        name,
		minDuration: time.Duration(1<<63 - 1),
	}
}

func (p *phaseStatsInternal) record(duration time.Duration) {
	p.executionCount++
	p.lastDuration = duration
	p.totalDuration += duration

	if duration < p.minDuration {
		p.minDuration = duration
	}
	if duration > p.maxDuration {
		p.maxDuration = duration
	}
}

func (p *phaseStatsInternal) snapshot() PhaseStats {
	stats := PhaseStats{
		Name:           p.name,
		ExecutionCount: p.executionCount,
		MaxDuration:    p.maxDuration,
		LastDuration:   p.lastDuration,
		TotalDuration:  p.totalDuration,
	}
	if p.executionCount > 0 {
		stats.MinDuration = p.minDuration
		stats.AvgDuration = p.totalDuration / time.Duration(p.executionCount)
	}
	return stats
}
