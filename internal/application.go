package application

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/transport/console"
)

// RunApp - runs a game session on the given console streams.
func RunApp(logger *slog.Logger, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app", "session_id", pkg.GenerateSessionID())

	engine := tictactoe.NewEngine(logger, console.NewReader(in), console.NewWriter(out))

	log.Debug("Starting session")

	summary, err := engine.RunSession()
	if err != nil {
		return fmt.Errorf("session aborted after %d matches: %w", summary.Matches, err)
	}

	log.Info("Session finished",
		"matches", summary.Matches,
		"draws", summary.Draws,
		"x_wins", summary.Wins[entity.PlayerX],
		"o_wins", summary.Wins[entity.PlayerO],
	)

	return nil
}
