package game

import "fmt"

// MoveOutcome classifies how a completed move leaves the turn.
type MoveOutcome int

const (
	// ContinueTurn means the last stone landed in the player's store and a
	// bonus move is granted.
	ContinueTurn MoveOutcome = iota
	// EndTurn means the turn is over.
	EndTurn
)

// MakeMove empties the chosen bin and sows its stones one at a time around
// the circular view, mutating the board in place:
//   - last stone in the player's store: bonus move, ContinueTurn
//   - last stone in a bin that was not empty (either side): pick up the whole
//     bin, including what was already there, and keep sowing from it
//   - last stone alone in an opponent bin: EndTurn, nothing captured
//   - last stone alone in an own bin: EndTurn, and the facing bin's contents
//     move into the player's store (the landing stone itself stays put)
//
// Choosing an empty bin is not a legal move and returns an error with no
// mutation.
func (b *Board) MakeMove(bin Bin) (MoveOutcome, error) {
	pos := flatIndexOf(bin)
	if *b.slot(pos) == 0 {
		return 0, fmt.Errorf("no move available: bin %s is empty", bin)
	}

	// The chain is a loop rather than recursion: each pass banks or spreads
	// stones and the in-play total never grows, so it always terminates.
	for {
		inHand := *b.slot(pos)
		*b.slot(pos) = 0
		for inHand > 0 {
			pos = pos.Step()
			*b.slot(pos)++
			inHand--
		}

		kind, _ := pos.kind()
		switch {
		case kind == myStore:
			return ContinueTurn, nil
		case *b.slot(pos) > 1:
			continue
		case kind == theirBin:
			return EndTurn, nil
		default:
			opposite := pos.Opposite()
			b.Sides[0].Store += *b.slot(opposite)
			*b.slot(opposite) = 0
			return EndTurn, nil
		}
	}
}
