package generator

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// Game-map symbols, shared with the parser's input format.
const (
	mapStart = 'S'
	mapGoal  = 'G'
	mapOpen  = '.'
	mapWall  = '#'
)

// GameMap renders the wall maze as a character grid with one wall row and
// column between cells, so a WxH maze becomes (2W+1)x(2H+1) characters.
// The start is placed at the top-left cell and the goal at the bottom-right
// cell.
func (m *Maze) GameMap() [][]byte {
	rows := 2*m.Height + 1
	cols := 2*m.Width + 1

	chars := make([][]byte, rows)
	for r := range chars {
		chars[r] = bytes.Repeat([]byte{mapWall}, cols)
	}

	for r := 0; r < m.Height; r++ {
		for c := 0; c < m.Width; c++ {
			chars[2*r+1][2*c+1] = mapOpen
			cell := m.Grid[r][c]
			if !cell.SouthWall && r < m.Height-1 {
				chars[2*r+2][2*c+1] = mapOpen
			}
			if !cell.EastWall && c < m.Width-1 {
				chars[2*r+1][2*c+2] = mapOpen
			}
		}
	}

	chars[1][1] = mapStart
	chars[2*m.Height-1][2*m.Width-1] = mapGoal
	return chars
}

// SaveGameMap writes the rendered game map to path, one grid row per line,
// creating parent directories as needed. Failures are recoverable I/O errors.
func (m *Maze) SaveGameMap(path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating maze file directory: %w", err)
		}
	}

	var buf bytes.Buffer
	for _, row := range m.GameMap() {
		buf.Write(row)
		buf.WriteByte('\n')
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing maze file: %w", err)
	}
	return nil
}
