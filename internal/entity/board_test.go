package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	// When: a new board is created
	board := NewBoard()

	// Then: every one of the nine cells is empty
	require.Len(t, board, BoardSize)
	for i, cell := range board {
		assert.Equal(t, EmptyCell, cell, "cell %d", i)
	}
}

func TestMarkerForTurn(t *testing.T) {
	// X opens every match, then the markers alternate
	assert.Equal(t, PlayerX, MarkerForTurn(1))
	assert.Equal(t, PlayerO, MarkerForTurn(2))
	assert.Equal(t, PlayerX, MarkerForTurn(3))
	assert.Equal(t, PlayerO, MarkerForTurn(4))
}

func TestBoard_IsValidMove(t *testing.T) {
	board := Board{
		PlayerX, EmptyCell, EmptyCell,
		EmptyCell, PlayerO, EmptyCell,
		EmptyCell, EmptyCell, EmptyCell,
	}

	for cell := -3; cell < BoardSize+3; cell++ {
		expected := cell >= 0 && cell < BoardSize && board[cell] == EmptyCell
		assert.Equal(t, expected, board.IsValidMove(cell), "cell %d", cell)
	}
}

func TestBoard_CheckMove(t *testing.T) {
	t.Run("Returns ErrInvalidCell for a negative index", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// When: a negative index is checked
		err := board.CheckMove(-1)

		// Then: ErrInvalidCell is returned
		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Returns ErrInvalidCell for an index past the board", func(t *testing.T) {
		board := NewBoard()

		err := board.CheckMove(9)

		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Returns ErrCellOccupied for a taken cell", func(t *testing.T) {
		// Given: a board where cell 4 holds O
		board := NewBoard()
		board[4] = PlayerO

		// When: cell 4 is checked
		err := board.CheckMove(4)

		// Then: ErrCellOccupied is returned
		assert.ErrorIs(t, err, apperror.ErrCellOccupied)
	})
}

func TestBoard_PlaceMarker(t *testing.T) {
	t.Run("Places the marker on a free cell", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// When: X is placed in the center
		err := board.PlaceMarker(4, PlayerX)

		// Then: only the center holds X
		require.NoError(t, err)
		expected := Board{
			EmptyCell, EmptyCell, EmptyCell,
			EmptyCell, PlayerX, EmptyCell,
			EmptyCell, EmptyCell, EmptyCell,
		}
		assert.Equal(t, expected, board)
	})

	t.Run("Leaves the board unchanged on an occupied cell", func(t *testing.T) {
		// Given: a board where cell 0 holds X
		board := NewBoard()
		require.NoError(t, board.PlaceMarker(0, PlayerX))
		before := board

		// When: O tries the same cell
		err := board.PlaceMarker(0, PlayerO)

		// Then: the move is refused and nothing changes
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, board)
	})

	t.Run("Leaves the board unchanged on an out of range cell", func(t *testing.T) {
		board := NewBoard()

		err := board.PlaceMarker(20, PlayerX)

		require.ErrorIs(t, err, apperror.ErrInvalidCell)
		assert.Equal(t, NewBoard(), board)
	})
}

func TestBoard_CheckOutcome(t *testing.T) {
	t.Run("Every combo wins on its own", func(t *testing.T) {
		for _, mark := range Markers {
			for _, combo := range WinCombos {
				// Given: a board where only this combo is filled
				board := NewBoard()
				for _, cell := range combo {
					board[cell] = mark
				}

				// When: checking the outcome
				outcome := board.CheckOutcome()

				// Then: the mark wins
				assert.Equal(t, Outcome{Result: ResultWin, Winner: mark}, outcome, "combo %v", combo)
			}
		}
	})

	t.Run("Returns draw on a full board without a line", func(t *testing.T) {
		// Given: a full board with no complete combo
		board := Board{
			PlayerX, PlayerO, PlayerX,
			PlayerO, PlayerX, PlayerO,
			PlayerO, PlayerX, PlayerO,
		}

		// When: checking the outcome
		outcome := board.CheckOutcome()

		// Then: it is a draw
		assert.Equal(t, Outcome{Result: ResultDraw}, outcome)
		assert.True(t, outcome.IsFinished())
	})

	t.Run("Returns continue while cells are free", func(t *testing.T) {
		board := Board{
			PlayerX, PlayerO, EmptyCell,
			EmptyCell, PlayerX, EmptyCell,
			EmptyCell, EmptyCell, PlayerO,
		}

		outcome := board.CheckOutcome()

		assert.Equal(t, Outcome{Result: ResultContinue}, outcome)
		assert.False(t, outcome.IsFinished())
	})

	t.Run("A winning line on a full board is a win, not a draw", func(t *testing.T) {
		board := Board{
			PlayerX, PlayerO, PlayerX,
			PlayerO, PlayerX, PlayerO,
			PlayerO, PlayerX, PlayerX,
		}

		outcome := board.CheckOutcome()

		assert.Equal(t, Outcome{Result: ResultWin, Winner: PlayerX}, outcome)
	})

	t.Run("Is idempotent", func(t *testing.T) {
		board := Board{
			PlayerO, PlayerO, PlayerO,
			PlayerX, PlayerX, EmptyCell,
			EmptyCell, EmptyCell, EmptyCell,
		}
		before := board

		first := board.CheckOutcome()
		second := board.CheckOutcome()

		assert.Equal(t, first, second)
		assert.Equal(t, before, board)
	})

	t.Run("Combos are checked in a fixed order", func(t *testing.T) {
		// Given: a board where X completes [0,1,2] and O completes [6,7,8]
		board := Board{
			PlayerX, PlayerX, PlayerX,
			EmptyCell, EmptyCell, EmptyCell,
			PlayerO, PlayerO, PlayerO,
		}

		// Then: the earlier combo decides
		assert.Equal(t, PlayerX, board.CheckOutcome().Winner)
	})
}

func TestResult_String(t *testing.T) {
	assert.Equal(t, "win", ResultWin.String())
	assert.Equal(t, "draw", ResultDraw.String())
	assert.Equal(t, "continue", ResultContinue.String())
}
