package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"

	"github.com/mattfbacon/mancala-best-start/engine"
	"github.com/mattfbacon/mancala-best-start/experiments/metrics"
	"github.com/mattfbacon/mancala-best-start/meta"
)

const (
	MinStartingStones = 1
	MaxStartingStones = 4
)

// RunStartingStonesExperiment searches every starting count in
// [MinStartingStones, MaxStartingStones], stores per-search and top-path
// records, and logs a score distribution summary per starting count.
func RunStartingStonesExperiment() {
	name := "starting_stones"

	var searchRecords []metrics.SearchRecord
	var pathRecords []metrics.PathRecord
	count := 0

	log.Info().Msgf("starting %s experiment...", name)

	for startWith := MinStartingStones; startWith <= MaxStartingStones; startWith++ {
		log.Info().Msgf("starting search %d of %d with %d stones per bin...", startWith, MaxStartingStones, startWith)

		e := engine.New(startWith, engine.WithMetrics())
		paths, metric := e.Run()
		count++
		searchRecords = append(searchRecords, metrics.SearchRecord{
			ID:           count,
			SearchMetric: metric,
		})

		scores := make([]float64, len(paths))
		for i, path := range paths {
			scores[i] = float64(path.Score)
			if i < meta.TOP_PATHS {
				pathRecords = append(pathRecords, metrics.PathRecord{
					Search: count,
					Rank:   i + 1,
					Score:  path.Score,
					Moves:  path.Notation(),
				})
			}
		}
		logScoreSummary(startWith, scores)
	}

	log.Info().Msgf("completed %s experiment", name)

	// Store experiment results
	writer, err := metrics.NewWriter(name)
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WriteSearchRecords(searchRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to store search records: %v", err))
	}
	log.Info().Msg("stored search records")

	err = writer.WritePathRecords(pathRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to store path records: %v", err))
	}
	log.Info().Msg("stored path records")
}

// logScoreSummary reports how banked scores are distributed over every
// terminal outcome for one starting count.
func logScoreSummary(startWith int, scores []float64) {
	if len(scores) == 0 {
		log.Info().Msgf("%d stones per bin: no outcomes", startWith)
		return
	}

	mean, stddev := stat.MeanStdDev(scores, nil)
	sorted := slices.Clone(scores)
	slices.Sort(sorted) // Quantile needs ascending order
	median := stat.Quantile(0.5, stat.Empirical, sorted, nil)
	best := sorted[len(sorted)-1]

	log.Info().Msgf("%d stones per bin: %d outcomes, best score %.0f, mean %.2f, stddev %.2f, median %.1f",
		startWith, len(scores), best, mean, stddev, median)
}
