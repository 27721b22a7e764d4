package searcher

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/mattfbacon/mancala-best-start/game"
)

// Path is one complete turn: the bins chosen in order, the stones banked in
// the player's store when the turn ended, and the terminal board itself.
type Path struct {
	Score int
	Moves []game.Bin
	Board game.Board
}

// Notation renders the move sequence as its bin letters, e.g. "CAF".
func (p Path) Notation() string {
	var sb strings.Builder
	for _, bin := range p.Moves {
		sb.WriteString(bin.String())
	}
	return sb.String()
}

// BestPaths collects one Path per terminal node and ranks them: highest
// score first, then shorter turns first among equal scores. Fully tied
// entries keep their bin-order traversal order (the sort is stable).
func BestPaths(root Node) []Path {
	var paths []Path
	var prefix []game.Bin
	collect(root, &prefix, &paths)

	slices.SortStableFunc(paths, func(a, b Path) int {
		if a.Score != b.Score {
			return b.Score - a.Score
		}
		return len(a.Moves) - len(b.Moves)
	})
	return paths
}

func collect(node Node, prefix *[]game.Bin, out *[]Path) {
	switch node := node.(type) {
	case *terminal:
		*out = append(*out, Path{
			Score: node.board.Sides[0].Store,
			Moves: slices.Clone(*prefix),
			Board: node.board,
		})
	case *branching:
		for i, child := range node.children {
			if child == nil {
				continue
			}
			bin, err := game.BinFromOrdinal(i)
			if err != nil { // The children array is bin-indexed
				panic(err)
			}
			*prefix = append(*prefix, bin)
			collect(child, prefix, out)
			*prefix = (*prefix)[:len(*prefix)-1]
		}
	default:
		panic("Unexpected node type")
	}
}
