package searcher

import "github.com/mattfbacon/mancala-best-start/game"

// Node is one position in a turn tree. A node is either terminal (the turn
// ended here) or branching (a bonus move was granted and the player chooses
// again). The tree is immutable once built.
type Node interface {
	node()
}

// terminal holds a board whose turn is over.
type terminal struct {
	board game.Board
}

// branching holds one child per bin choice, in bin order. A nil child means
// that bin was empty and could not be played.
type branching struct {
	children [6]Node
}

func (*terminal) node()  {}
func (*branching) node() {}

// Build expands every chain of bonus moves reachable from board until each
// branch ends its turn. The board is copied at every branch point, so
// sibling branches never share state.
func Build(board game.Board) Node {
	node := &branching{}
	playable := false
	for i, bin := range game.AllBins {
		next := board
		outcome, err := next.MakeMove(bin)
		if err != nil { // Empty bin, no branch
			continue
		}
		playable = true
		switch outcome {
		case game.ContinueTurn:
			node.children[i] = Build(next)
		case game.EndTurn:
			node.children[i] = &terminal{board: next}
		}
	}
	if !playable {
		// No bin can be played, so the turn is over with the board as-is.
		// This covers the all-empty degenerate start and a bonus move granted
		// with nothing left to sow.
		return &terminal{board: board}
	}
	return node
}
