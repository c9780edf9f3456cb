package tictactoe

import (
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	boardSeparator = "-------"
	boardSide      = 3
)

// RenderBoard - returns the board as text lines: a separator above and below every row.
func RenderBoard(board entity.Board) []string {
	lines := make([]string, 0, 2*boardSide+1)
	lines = append(lines, boardSeparator)

	for row := 0; row < boardSide; row++ {
		var line strings.Builder
		line.WriteString("|")

		for col := 0; col < boardSide; col++ {
			line.WriteString(renderCell(board[row*boardSide+col]))
			line.WriteString("|")
		}

		lines = append(lines, line.String(), boardSeparator)
	}

	return lines
}

func renderCell(cell entity.Mark) string {
	if cell == entity.EmptyCell {
		return " "
	}

	return string(cell)
}
