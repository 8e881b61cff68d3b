package mazemap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	// ErrEmptyGrid is returned when the source contains no lines at all.
	ErrEmptyGrid = errors.New("maze text contains no rows")

	// ErrRaggedGrid is returned when a row's length differs from the first
	// row's length.
	ErrRaggedGrid = errors.New("maze rows differ in length")
)

// ReadFile parses the maze text file at path. Failures here are recoverable:
// the caller may log them and exit cleanly.
func ReadFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening maze file: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses maze text from r, one grid row per line. The grid width is the
// length of the FIRST line; any later line with a different length is a
// malformation and fails with ErrRaggedGrid.
func Read(r io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(r)

	var cells [][]byte
	cols := 0
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(cells) == 0 {
			cols = len(line)
		} else if len(line) != cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", len(cells), len(line), cols, ErrRaggedGrid)
		}
		// scanner.Bytes is only valid until the next Scan
		row := make([]byte, len(line))
		copy(row, line)
		cells = append(cells, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading maze text: %w", err)
	}
	if len(cells) == 0 {
		return nil, ErrEmptyGrid
	}

	return &Grid{
		Rows:  len(cells),
		Cols:  cols,
		Cells: cells,
	}, nil
}
