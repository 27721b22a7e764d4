package metrics

import (
	"time"

	"github.com/mattfbacon/mancala-best-start/searcher"
)

// SearchMetric summarizes one full search run.
type SearchMetric struct {
	StartingStones int
	Duration       time.Duration
	Outcomes       int
	BestScore      int
	LongestChain   int
}

type Collector interface {
	Start(startingStones int)
	Complete(paths []searcher.Path) SearchMetric
}

type collector struct {
	startingStones int
	startTime      time.Time
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(startingStones int) {
	c.startingStones = startingStones
	c.startTime = time.Now()
}

func (c *collector) Complete(paths []searcher.Path) SearchMetric {
	m := SearchMetric{
		StartingStones: c.startingStones,
		Duration:       time.Since(c.startTime),
		Outcomes:       len(paths),
	}
	for _, path := range paths {
		if path.Score > m.BestScore {
			m.BestScore = path.Score
		}
		if len(path.Moves) > m.LongestChain {
			m.LongestChain = len(path.Moves)
		}
	}
	return m
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(startingStones int)                     {}
func (m *dummyCollector) Complete(paths []searcher.Path) SearchMetric { return SearchMetric{} }
