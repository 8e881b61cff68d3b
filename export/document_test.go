package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Whispering-Stars/labyrinthium-generator/fault"
	"github.com/Whispering-Stars/labyrinthium-generator/mazemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Run("maps the four legal symbols", func(t *testing.T) {
		codes := map[byte]CellKind{
			mazemap.SymbolStart: KindStart,
			mazemap.SymbolGoal:  KindGoal,
			mazemap.SymbolOpen:  KindOpen,
			mazemap.SymbolWall:  KindWall,
		}
		for symbol, want := range codes {
			kind, err := Classify(symbol)
			require.NoError(t, err)
			assert.Equal(t, want, kind)
		}
	})

	t.Run("round-trips back to the original symbol", func(t *testing.T) {
		for _, symbol := range []byte{'S', 'G', '.', '#'} {
			kind, err := Classify(symbol)
			require.NoError(t, err)
			back, err := kind.Symbol()
			require.NoError(t, err)
			assert.Equal(t, symbol, back)
		}
	})

	t.Run("a fifth symbol is a fatal invariant fault", func(t *testing.T) {
		_, err := Classify('?')
		require.Error(t, err)
		assert.True(t, fault.IsInvariant(err))
	})

	t.Run("an out-of-range kind has no symbol", func(t *testing.T) {
		_, err := CellKind(4).Symbol()
		require.Error(t, err)
		assert.True(t, fault.IsInvariant(err))
	})
}

func TestBuild(t *testing.T) {
	grid, err := mazemap.Read(strings.NewReader("S..#\n.#.#\n..G#\n"))
	require.NoError(t, err)
	route := []mazemap.Position{
		{Row: 0, Col: 0},
		{Row: 0, Col: 1},
		{Row: 0, Col: 2},
		{Row: 1, Col: 2},
		{Row: 2, Col: 2},
	}

	t.Run("dimensions match the grid", func(t *testing.T) {
		doc, err := Build(grid, route, false)
		require.NoError(t, err)
		assert.Equal(t, 4, doc.Width)
		assert.Equal(t, 3, doc.Height)
		assert.Nil(t, doc.Start)
		assert.Nil(t, doc.Goal)
	})

	t.Run("cells are listed in row-major order", func(t *testing.T) {
		doc, err := Build(grid, route, false)
		require.NoError(t, err)
		require.Len(t, doc.Maze, 12)

		assert.Equal(t, Cell{X: 0, Y: 0, Type: KindStart}, doc.Maze[0])
		assert.Equal(t, Cell{X: 3, Y: 0, Type: KindWall}, doc.Maze[3])
		assert.Equal(t, Cell{X: 1, Y: 1, Type: KindWall}, doc.Maze[5])
		assert.Equal(t, Cell{X: 2, Y: 2, Type: KindGoal}, doc.Maze[10])

		for i, cell := range doc.Maze {
			assert.Equal(t, i%4, cell.X)
			assert.Equal(t, i/4, cell.Y)
		}
	})

	t.Run("solution uses x=column y=row", func(t *testing.T) {
		doc, err := Build(grid, route, false)
		require.NoError(t, err)
		require.Len(t, doc.Solution, len(route))
		assert.Equal(t, Point{X: 0, Y: 0}, doc.Solution[0])
		assert.Equal(t, Point{X: 2, Y: 1}, doc.Solution[3])
		assert.Equal(t, Point{X: 2, Y: 2}, doc.Solution[4])
	})

	t.Run("enriched endpoints agree with the route", func(t *testing.T) {
		doc, err := Build(grid, route, true)
		require.NoError(t, err)
		require.NotNil(t, doc.Start)
		require.NotNil(t, doc.Goal)
		assert.Equal(t, doc.Solution[0], *doc.Start)
		assert.Equal(t, doc.Solution[len(doc.Solution)-1], *doc.Goal)
	})

	t.Run("round-trip reproduces the grid", func(t *testing.T) {
		doc, err := Build(grid, route, false)
		require.NoError(t, err)

		rebuilt := make([][]byte, doc.Height)
		for i := range rebuilt {
			rebuilt[i] = make([]byte, doc.Width)
		}
		for _, cell := range doc.Maze {
			symbol, err := cell.Type.Symbol()
			require.NoError(t, err)
			rebuilt[cell.Y][cell.X] = symbol
		}
		assert.Equal(t, grid.Cells, rebuilt)
	})

	t.Run("illegal grid symbol is a fatal invariant fault", func(t *testing.T) {
		bad, err := mazemap.Read(strings.NewReader("S?\n.G\n"))
		require.NoError(t, err)

		_, err = Build(bad, nil, false)
		require.Error(t, err)
		assert.True(t, fault.IsInvariant(err))
	})
}

func TestWriteFile(t *testing.T) {
	grid, err := mazemap.Read(strings.NewReader("SG\n"))
	require.NoError(t, err)
	route := []mazemap.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}}

	t.Run("written document parses back identically", func(t *testing.T) {
		doc, err := Build(grid, route, true)
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "out", "maze.json")
		require.NoError(t, WriteFile(doc, path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var decoded Document
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, *doc, decoded)
	})

	t.Run("leaves no temporary files behind", func(t *testing.T) {
		doc, err := Build(grid, route, false)
		require.NoError(t, err)

		dir := t.TempDir()
		require.NoError(t, WriteFile(doc, filepath.Join(dir, "maze.json")))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "maze.json", entries[0].Name())
	})

	t.Run("unwritable destination is a recoverable failure", func(t *testing.T) {
		doc, err := Build(grid, route, false)
		require.NoError(t, err)

		blocker := filepath.Join(t.TempDir(), "occupied")
		require.NoError(t, os.WriteFile(blocker, nil, 0644))

		err = WriteFile(doc, filepath.Join(blocker, "maze.json"))
		require.Error(t, err)
		assert.False(t, fault.IsInvariant(err))
	})
}
