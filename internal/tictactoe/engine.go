package tictactoe

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/pkg"
)

const (
	instructionsMessage = "Taking turns, type a number between 0 and 8 (in order from topleft to bottom right)"
	invalidInputMessage = "Invalid input..."
	drawMessage         = "It's a draw!"
	playAgainPrompt     = "Play again? [y/n] "
	farewellMessage     = "Thanks for playing! <3"
)

type lineReader interface {
	ReadLine() (string, error)
}

// textWriter may buffer; write errors are expected to surface on Flush.
type textWriter interface {
	Print(text string)
	Println(text string)
	Flush() error
}

// Summary counts the results of a session.
type Summary struct {
	Matches int
	Draws   int
	Wins    map[entity.Mark]int
}

func (that *Summary) record(outcome entity.Outcome) {
	that.Matches++

	switch outcome.Result {
	case entity.ResultWin:
		that.Wins[outcome.Winner]++
	case entity.ResultDraw:
		that.Draws++
	}
}

// Engine runs matches between two players sharing one console.
type Engine struct {
	logger *slog.Logger
	reader lineReader
	writer textWriter
}

func NewEngine(logger *slog.Logger, reader lineReader, writer textWriter) *Engine {
	return &Engine{
		logger: logger.With("component", "engine"),
		reader: reader,
		writer: writer,
	}
}

// RunSession - plays matches until the answer to the replay prompt contains 'n'.
func (that *Engine) RunSession() (Summary, error) {
	summary := Summary{Wins: make(map[entity.Mark]int, len(entity.Markers))}

	for {
		outcome, err := that.RunMatch()
		if err != nil {
			return summary, fmt.Errorf("match failed: %w", err)
		}

		summary.record(outcome)

		answer, err := that.prompt(playAgainPrompt)
		if err != nil {
			return summary, fmt.Errorf("failed to ask for another match: %w", err)
		}

		if strings.Contains(answer, "n") {
			break
		}
	}

	that.writer.Println(farewellMessage)
	if err := that.writer.Flush(); err != nil {
		return summary, fmt.Errorf("failed to say goodbye: %w", err)
	}

	return summary, nil
}

// RunMatch - plays one match on a fresh board until someone wins or the board is full.
func (that *Engine) RunMatch() (entity.Outcome, error) {
	log := that.logger.With("match_id", pkg.GenerateMatchID())

	that.writer.Println(instructionsMessage)

	board := entity.NewBoard()
	turn := 0

	for {
		that.drawBoard(board)

		turn++
		marker := entity.MarkerForTurn(turn)

		cell, err := that.readMove(log, board, marker)
		if err != nil {
			return entity.Outcome{}, err
		}

		// readMove only returns cells that passed CheckMove on this board
		if err = board.PlaceMarker(cell, marker); err != nil {
			return entity.Outcome{}, fmt.Errorf("failed to place marker: %w", err)
		}

		log.Debug("marker placed", "turn", turn, "marker", marker, "cell", cell)

		outcome := board.CheckOutcome()
		switch outcome.Result {
		case entity.ResultWin:
			that.drawBoard(board)
			that.writer.Println(fmt.Sprintf("'%s' wins!", outcome.Winner))
		case entity.ResultDraw:
			that.drawBoard(board)
			that.writer.Println(drawMessage)
		default:
			continue
		}

		if err = that.writer.Flush(); err != nil {
			return outcome, fmt.Errorf("failed to show match result: %w", err)
		}

		log.Info("match finished", "result", outcome.Result.String(), "winner", outcome.Winner, "turns", turn)

		return outcome, nil
	}
}

// readMove - prompts the marker's player until a playable cell is entered.
func (that *Engine) readMove(log *slog.Logger, board entity.Board, marker entity.Mark) (int, error) {
	prompt := fmt.Sprintf("[%s]: ", marker)

	for {
		line, err := that.prompt(prompt)
		if err != nil {
			return 0, fmt.Errorf("failed to read move: %w", err)
		}

		cell, err := ParseMoveInput(line)
		if err == nil {
			err = board.CheckMove(cell)
		}

		if err == nil {
			return cell, nil
		}

		log.Debug("move rejected", "marker", marker, "input", strings.TrimRight(line, "\r\n"), "error", err)
		that.writer.Println(invalidInputMessage)
	}
}

// prompt - shows text and blocks for the answer. Output is flushed first so the prompt is visible.
func (that *Engine) prompt(text string) (string, error) {
	that.writer.Print(text)
	if err := that.writer.Flush(); err != nil {
		return "", err
	}

	line, err := that.reader.ReadLine()
	if err != nil {
		return "", err
	}

	return line, nil
}

func (that *Engine) drawBoard(board entity.Board) {
	for _, line := range RenderBoard(board) {
		that.writer.Println(line)
	}
}
