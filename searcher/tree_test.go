package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mattfbacon/mancala-best-start/game"
)

func TestBuildEmptyBoard(t *testing.T) {
	tree := Build(game.NewBoard(0))

	leaf, ok := tree.(*terminal)
	require.True(t, ok, "A board with no playable bin should build a terminal node")
	require.Equal(t, game.NewBoard(0), leaf.board)

	paths := BestPaths(tree)
	require.Len(t, paths, 1, "The degenerate start should yield exactly one outcome")
	require.Equal(t, 0, paths[0].Score)
	require.Empty(t, paths[0].Moves, "No legal first move exists")
}

func TestBuildSkipsEmptyBins(t *testing.T) {
	// Only F is playable: its lone stone lands in the store, and the
	// follow-up board has nothing left to sow
	board := game.Board{Sides: [2]game.BoardSide{
		{Bins: [6]int{0, 0, 0, 0, 0, 1}},
		{},
	}}

	tree := Build(board)

	node, ok := tree.(*branching)
	require.True(t, ok, "A playable board should build a branching node")
	for i := 0; i < 5; i++ {
		require.Nil(t, node.children[i], "Empty bin %s should have no branch", game.AllBins[i])
	}
	require.NotNil(t, node.children[5], "Non-empty bin F should have a branch")

	leaf, ok := node.children[5].(*terminal)
	require.True(t, ok, "A bonus move with no playable follow-up should terminate the branch")
	require.Equal(t, 1, leaf.board.Sides[0].Store)
}

func TestBuildChainsBonusMoves(t *testing.T) {
	// F banks its stone for a bonus move, then A remains playable
	board := game.Board{Sides: [2]game.BoardSide{
		{Bins: [6]int{1, 0, 0, 0, 0, 1}},
		{},
	}}

	paths := BestPaths(Build(board))

	require.Len(t, paths, 2)
	require.Equal(t, 1, paths[0].Score, "Banking via F before ending with A should score 1")
	require.Equal(t, []game.Bin{game.BinF, game.BinA}, paths[0].Moves)
	require.Equal(t, 0, paths[1].Score, "Ending immediately with A banks nothing")
	require.Equal(t, []game.Bin{game.BinA}, paths[1].Moves)
}
