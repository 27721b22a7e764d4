package engine

import (
	"github.com/rs/zerolog/log"

	"github.com/mattfbacon/mancala-best-start/experiments/metrics"
	"github.com/mattfbacon/mancala-best-start/game"
	"github.com/mattfbacon/mancala-best-start/searcher"
)

type Option func(e *Engine)

// Engine runs one exhaustive search from a uniform starting board.
type Engine struct {
	startWith int
	metrics   metrics.Collector
}

func WithMetrics() Option {
	return func(e *Engine) {
		e.metrics = metrics.NewCollector()
	}
}

func New(startWith int, options ...Option) *Engine {
	e := &Engine{ // Default values
		startWith: startWith,
		metrics:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run builds the complete turn tree for the starting board and returns every
// outcome ranked best-first, together with the run's metrics.
func (e *Engine) Run() ([]searcher.Path, metrics.SearchMetric) {
	board := game.NewBoard(e.startWith)
	log.Info().Msgf("searching every turn from %d stones per bin...", e.startWith)

	e.metrics.Start(e.startWith)
	tree := searcher.Build(board)
	paths := searcher.BestPaths(tree)
	metric := e.metrics.Complete(paths)

	log.Info().Msgf("found %d turn outcomes from %d stones per bin", len(paths), e.startWith)
	return paths, metric
}

// Search is the single entry point from a starting stone count to the full
// ranked outcome list. Callers take whatever prefix they want.
func Search(startWith int, options ...Option) []searcher.Path {
	paths, _ := New(startWith, options...).Run()
	return paths
}
