package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// Mark is the content of a single cell: EmptyCell or a player's marker.
type Mark string

const (
	PlayerO Mark = "O"
	PlayerX Mark = "X"

	EmptyCell Mark = ""
)

const BoardSize = 9

var (
	// Markers is indexed by turn parity. Turn 1 picks Markers[1], so X always opens a match.
	Markers = [2]Mark{PlayerO, PlayerX}

	WinCombos = [8][3]int{
		{0, 1, 2},
		{0, 3, 6},
		{0, 4, 8},
		{3, 4, 5},
		{1, 4, 7},
		{2, 4, 6},
		{6, 7, 8},
		{2, 5, 8},
	}
)

// Board holds the cells in row-major order: index = row*3 + col.
type Board [BoardSize]Mark

func NewBoard() Board {
	return Board{}
}

// MarkerForTurn returns the marker that plays the given 1-based turn.
func MarkerForTurn(turn int) Mark {
	return Markers[turn%len(Markers)]
}

// CheckMove reports why a move can't be played, or nil if it can.
func (that Board) CheckMove(cell int) error {
	if cell < 0 || cell >= len(that) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that[cell] != EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	return nil
}

func (that Board) IsValidMove(cell int) bool {
	return that.CheckMove(cell) == nil
}

// PlaceMarker puts mark into cell. An invalid move leaves the board untouched.
func (that *Board) PlaceMarker(cell int, mark Mark) error {
	if err := that.CheckMove(cell); err != nil {
		return err
	}

	that[cell] = mark

	return nil
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// CheckOutcome evaluates WinCombos in order; the first complete combo wins.
func (that Board) CheckOutcome() Outcome {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return Outcome{Result: ResultWin, Winner: a}
		}
	}

	// the game will continue until all the squares are full
	if that.IsFull() {
		return Outcome{Result: ResultDraw}
	}

	return Outcome{Result: ResultContinue}
}
