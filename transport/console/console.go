package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// Reader - reads the player's input one line at a time.
type Reader struct {
	reader *bufio.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{reader: bufio.NewReader(r)}
}

// ReadLine - returns the next line including its terminator.
// A last line without terminator is returned as is, the call after it fails with apperror.ErrInputClosed.
func (that *Reader) ReadLine() (string, error) {
	line, err := that.reader.ReadString('\n')
	if err == nil {
		return line, nil
	}

	if errors.Is(err, io.EOF) {
		if line != "" {
			return line, nil
		}

		return "", apperror.ErrInputClosed
	}

	return "", fmt.Errorf("%w: %w", apperror.ErrInputClosed, err)
}

// Writer - buffers game output until Flush.
type Writer struct {
	writer *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{writer: bufio.NewWriter(w)}
}

// Print - writes text without a newline.
func (that *Writer) Print(text string) {
	// bufio.Writer keeps the first error and reports it on Flush
	_, _ = that.writer.WriteString(text)
}

// Println - writes text followed by a newline.
func (that *Writer) Println(text string) {
	that.Print(text + "\n")
}

// Flush - pushes buffered output and returns the first write error, if any.
func (that *Writer) Flush() error {
	if err := that.writer.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
