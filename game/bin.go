package game

import "fmt"

// Bin identifies one of the six stone-holding positions on a player's side.
type Bin int

const (
	BinA Bin = iota
	BinB
	BinC
	BinD
	BinE
	BinF
)

// AllBins lists every bin in sowing order.
var AllBins = [6]Bin{BinA, BinB, BinC, BinD, BinE, BinF}

// BinFromOrdinal converts a 0-5 ordinal back into a Bin.
func BinFromOrdinal(n int) (Bin, error) {
	if n < 0 || n >= len(AllBins) {
		return 0, fmt.Errorf("bin ordinal out of range: %d", n)
	}
	return Bin(n), nil
}

func (b Bin) String() string {
	return string(rune('A' + int(b)))
}
