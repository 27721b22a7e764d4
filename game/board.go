package game

import (
	"fmt"
	"strings"
)

// BoardSide holds one player's six bins plus their store.
type BoardSide struct {
	Bins  [6]int
	Store int
}

func newBoardSide(startWith int) BoardSide {
	var side BoardSide
	for i := range side.Bins {
		side.Bins[i] = startWith
	}
	return side
}

// Board is the full state for one simulated turn. Sides[0] is the player
// whose turn is being searched, Sides[1] is the opponent. Board is a plain
// value: assigning it copies it, so each branch of a search owns its state.
type Board struct {
	Sides [2]BoardSide
}

// NewBoard sets every bin to startWith stones and both stores to zero.
func NewBoard(startWith int) Board {
	return Board{
		Sides: [2]BoardSide{newBoardSide(startWith), newBoardSide(startWith)},
	}
}

// Total sums every bin and both stores. Sowing, capture, and banking only
// redistribute stones, so the total is conserved for the life of a board.
func (b Board) Total() int {
	total := 0
	for _, side := range b.Sides {
		for _, n := range side.Bins {
			total += n
		}
		total += side.Store
	}
	return total
}

// slot gives access to a position through the circular view, so sowing code
// never touches the physical arrays directly.
func (b *Board) slot(f FlatIndex) *int {
	kind, bin := f.kind()
	switch kind {
	case myBin:
		return &b.Sides[0].Bins[bin]
	case myStore:
		return &b.Sides[0].Store
	case theirBin:
		return &b.Sides[1].Bins[bin]
	}
	panic("unreachable flat index kind")
}

// String renders the board with the opponent's side on top, mirrored so that
// facing bins line up vertically.
func (b Board) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%2d]", b.Sides[1].Store)
	for i := len(b.Sides[1].Bins) - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, " %2d", b.Sides[1].Bins[i])
	}
	sb.WriteString("\n    ")
	for _, n := range b.Sides[0].Bins {
		fmt.Fprintf(&sb, " %2d", n)
	}
	fmt.Fprintf(&sb, " [%2d]", b.Sides[0].Store)
	return sb.String()
}
