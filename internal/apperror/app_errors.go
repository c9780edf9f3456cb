package apperror

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInputClosed  = errors.New("input stream closed")
)
