/*
Package generator creates random rectangular mazes with Wilson's algorithm
and persists them in the character game-map format the rest of the pipeline
consumes.

Each maze cell carries its own four wall flags. Generation runs loop-erased
random walks from unvisited cells until every cell has been joined to the
maze, which yields a spanning tree: every cell is reachable from every other,
so a rendered game map always has a route from start to goal.
*/
package generator

import (
	"fmt"
	"math/rand"
)

const maxMazeDimension = 20

// Directions maps compass names to row/column deltas.
var Directions = map[string]Delta{
	"North": {Row: -1, Col: 0},
	"South": {Row: 1, Col: 0},
	"East":  {Row: 0, Col: 1},
	"West":  {Row: 0, Col: -1},
}

// Delta is a row/column offset.
type Delta struct {
	Row int
	Col int
}

// Cell is a single maze cell with a wall flag per side.
type Cell struct {
	NorthWall bool
	SouthWall bool
	EastWall  bool
	WestWall  bool
}

// cellPos identifies a cell inside the wall maze.
type cellPos struct {
	Row int
	Col int
}

// move records a step between two adjacent cells.
type move struct {
	From      cellPos
	To        cellPos
	Direction string
}

// Maze is a rectangular wall maze.
type Maze struct {
	Width  int       // Width of the maze (number of columns)
	Height int       // Height of the maze (number of rows)
	Grid   [][]*Cell // 2D grid of cells forming the maze
}

// New initializes a maze of the given dimensions and generates its layout.
func New(width, height int) (*Maze, error) {
	if min(width, height) <= 0 || max(width, height) > maxMazeDimension {
		return nil, fmt.Errorf("invalid maze dimensions %dx%d", width, height)
	}
	// a single-cell maze cannot hold distinct start and goal cells
	if width*height < 2 {
		return nil, fmt.Errorf("maze must have at least two cells, got %dx%d", width, height)
	}

	grid := make([][]*Cell, height)
	for i := range grid {
		grid[i] = make([]*Cell, width)
		for j := range grid[i] {
			grid[i][j] = &Cell{
				NorthWall: true,
				SouthWall: true,
				EastWall:  true,
				WestWall:  true,
			}
		}
	}

	maze := &Maze{
		Width:  width,
		Height: height,
		Grid:   grid,
	}
	maze.generate()
	return maze, nil
}

// randomCellPos picks a random position within the maze.
func (m *Maze) randomCellPos() cellPos {
	return cellPos{Row: rand.Intn(m.Height), Col: rand.Intn(m.Width)}
}

// randomUnvisitedCellPos picks a random position that has not been visited.
func (m *Maze) randomUnvisitedCellPos(visited map[cellPos]struct{}) cellPos {
	for {
		pos := m.randomCellPos()
		if _, included := visited[pos]; !included {
			return pos
		}
	}
}

// neighbors lists all in-bounds moves from a given cell position.
func (m *Maze) neighbors(pos cellPos) []move {
	var result []move
	for dir, delta := range Directions {
		neighbor := cellPos{Row: pos.Row + delta.Row, Col: pos.Col + delta.Col}
		if neighbor.Row >= 0 && neighbor.Row < m.Height && neighbor.Col >= 0 && neighbor.Col < m.Width {
			result = append(result, move{From: pos, To: neighbor, Direction: dir})
		}
	}
	return result
}

// openWall removes the wall between two adjacent cells in the given direction.
func (m *Maze) openWall(mv move) {
	switch mv.Direction {
	case "North":
		m.Grid[mv.From.Row][mv.From.Col].NorthWall = false
		m.Grid[mv.To.Row][mv.To.Col].SouthWall = false
	case "South":
		m.Grid[mv.From.Row][mv.From.Col].SouthWall = false
		m.Grid[mv.To.Row][mv.To.Col].NorthWall = false
	case "East":
		m.Grid[mv.From.Row][mv.From.Col].EastWall = false
		m.Grid[mv.To.Row][mv.To.Col].WestWall = false
	case "West":
		m.Grid[mv.From.Row][mv.From.Col].WestWall = false
		m.Grid[mv.To.Row][mv.To.Col].EastWall = false
	}
}

// randomWalk performs a random walk starting from an unvisited cell until it
// hits the visited part of the maze. Revisiting a cell overwrites its exit,
// which erases the loop.
func (m *Maze) randomWalk(visited map[cellPos]struct{}) map[cellPos]move {
	start := m.randomUnvisitedCellPos(visited)
	visits := make(map[cellPos]move)
	cell := start

	for {
		neighbors := m.neighbors(cell)
		randomNeighbor := neighbors[rand.Intn(len(neighbors))]
		visits[cell] = randomNeighbor
		if _, included := visited[randomNeighbor.To]; included {
			break
		}
		cell = randomNeighbor.To
	}

	return visits
}

// generate carves the maze with Wilson's algorithm.
func (m *Maze) generate() {
	visited := make(map[cellPos]struct{})
	visited[m.randomCellPos()] = struct{}{}

	for len(visited) < m.Width*m.Height {
		for cell, mv := range m.randomWalk(visited) {
			m.openWall(mv)
			visited[cell] = struct{}{}
		}
	}
}
