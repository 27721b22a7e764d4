package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBinFromOrdinal(t *testing.T) {
	t.Run("valid ordinals round-trip", func(t *testing.T) {
		for i, want := range AllBins {
			got, err := BinFromOrdinal(i)
			require.NoError(t, err)
			require.Equal(t, want, got, "Ordinal %d should map back to bin %s", i, want)
		}
	})

	t.Run("out of range ordinals fail", func(t *testing.T) {
		for _, n := range []int{-1, 6, 13} {
			_, err := BinFromOrdinal(n)
			require.Error(t, err, "Ordinal %d should not construct a bin", n)
		}
	})
}

func TestBinString(t *testing.T) {
	letters := []string{"A", "B", "C", "D", "E", "F"}
	for i, bin := range AllBins {
		if bin.String() != letters[i] {
			t.Errorf("expected bin %d to render as %s, got %s", i, letters[i], bin)
		}
	}
}
