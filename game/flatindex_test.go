package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlatIndexStep(t *testing.T) {
	t.Run("advances one slot", func(t *testing.T) {
		require.Equal(t, FlatIndex(1), FlatIndex(0).Step())
		require.Equal(t, FlatIndex(7), FlatIndex(6).Step())
	})

	t.Run("wraps after the last opponent bin", func(t *testing.T) {
		require.Equal(t, FlatIndex(0), FlatIndex(12).Step(),
			"Stepping past position 12 should wrap back to the first own bin")
	})
}

func TestFlatIndexOpposite(t *testing.T) {
	// Position i and position 12-i face each other across the board
	for i := FlatIndex(0); i <= 5; i++ {
		require.Equal(t, 12-i, i.Opposite(), "Own bin %d should face opponent position %d", i, 12-i)
		require.Equal(t, i, i.Opposite().Opposite(), "Opposite should be an involution")
	}
}

func TestFlatIndexKind(t *testing.T) {
	tests := []struct {
		index    FlatIndex
		wantKind flatIndexKind
		wantBin  int
	}{
		{0, myBin, 0},
		{5, myBin, 5},
		{6, myStore, 0},
		{7, theirBin, 0},
		{12, theirBin, 5},
	}
	for _, tt := range tests {
		kind, bin := tt.index.kind()
		if kind != tt.wantKind || bin != tt.wantBin {
			t.Errorf("index %d: expected kind %v bin %d, got kind %v bin %d",
				tt.index, tt.wantKind, tt.wantBin, kind, bin)
		}
	}
}
