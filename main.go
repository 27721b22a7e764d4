package main

import (
	"fmt"

	"github.com/mattfbacon/mancala-best-start/engine"
	"github.com/mattfbacon/mancala-best-start/meta"
)

func main() {
	paths := engine.Search(meta.STARTING_STONES)

	limit := min(meta.TOP_PATHS, len(paths))
	for _, path := range paths[:limit] {
		fmt.Printf("%d via %s\n", path.Score, path.Notation())
	}
}
