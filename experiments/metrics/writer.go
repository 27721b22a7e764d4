package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// SearchRecord is one row of search_records.csv.
type SearchRecord struct {
	ID int
	SearchMetric
}

// PathRecord is one row of path_records.csv.
type PathRecord struct {
	Search int // SearchRecord.ID
	Rank   int
	Score  int
	Moves  string // Bin letters, e.g. "CAF"
}

type Writer struct {
	baseDir string
}

func NewWriter(name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("experiments", name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) WriteSearchRecords(records []SearchRecord) error {
	// Create a file
	path := filepath.Join(w.baseDir, "search_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create search records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	// Write header
	header := []string{"id", "starting_stones", "duration", "outcomes", "best_score", "longest_chain"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write search records header: %w", err)
	}

	// Write each row
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.StartingStones),
			record.Duration.String(),
			strconv.Itoa(record.Outcomes),
			strconv.Itoa(record.BestScore),
			strconv.Itoa(record.LongestChain),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write search record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WritePathRecords(records []PathRecord) error {
	// Create a file
	path := filepath.Join(w.baseDir, "path_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create path records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	// Write header
	header := []string{"search", "rank", "score", "moves"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write path records header: %w", err)
	}

	// Write each row
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Search),
			strconv.Itoa(record.Rank),
			strconv.Itoa(record.Score),
			record.Moves,
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write path record row: %w", err)
		}
	}

	return nil
}
