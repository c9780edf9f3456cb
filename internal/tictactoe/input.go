package tictactoe

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// ParseMoveInput - parses a raw input line as a non-negative cell index.
// The line terminator is stripped, a single leading '+' is allowed, anything else must be decimal digits.
func ParseMoveInput(rawLine string) (int, error) {
	text := strings.TrimSuffix(rawLine, "\n")
	text = strings.TrimSuffix(text, "\r")

	digits := strings.TrimPrefix(text, "+")
	if digits == "" {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidInput, text)
	}

	// bit size keeps the value within int
	cell, err := strconv.ParseUint(digits, 10, strconv.IntSize-1)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", apperror.ErrInvalidInput, err)
	}

	return int(cell), nil
}
