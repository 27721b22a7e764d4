package game

// FlatIndex is a position in the 13-slot circular view of the board used
// during sowing: 0-5 are the current player's bins, 6 is their store, and
// 7-12 are the opponent's bins, laid out so that index i and index 12-i
// denote bins that face each other across the board.
type FlatIndex int

type flatIndexKind int

const (
	myBin flatIndexKind = iota
	myStore
	theirBin
)

func flatIndexOf(b Bin) FlatIndex {
	return FlatIndex(b)
}

// Step advances one slot around the board.
func (f FlatIndex) Step() FlatIndex {
	return (f + 1) % 13
}

// Opposite returns the position of the bin directly across the board.
func (f FlatIndex) Opposite() FlatIndex {
	return 12 - f
}

// kind classifies the slot. bin is the physical index on the owning side and
// is only meaningful for myBin and theirBin.
func (f FlatIndex) kind() (kind flatIndexKind, bin int) {
	switch {
	case f <= 5:
		return myBin, int(f)
	case f == 6:
		return myStore, 0
	default:
		return theirBin, int(f) - 7
	}
}
