/*
Package export classifies maze cells and serializes a solved maze into a
JSON document.

The document carries the grid dimensions, one classified entry per cell in
row-major order, the route from start to goal, and optionally the start and
goal coordinates located by an independent grid scan. Coordinates use
x = column, y = row throughout.
*/
package export

import (
	"github.com/Whispering-Stars/labyrinthium-generator/fault"
	"github.com/Whispering-Stars/labyrinthium-generator/mazemap"
)

// CellKind is the classified type of a maze cell.
type CellKind uint8

// Classification codes. The numeric values are part of the document schema.
const (
	KindStart CellKind = 0
	KindGoal  CellKind = 1
	KindOpen  CellKind = 2
	KindWall  CellKind = 3
)

// Point is a cell coordinate in document convention.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Cell is one classified grid cell.
type Cell struct {
	X    int      `json:"x"`
	Y    int      `json:"y"`
	Type CellKind `json:"type"`
}

// Document is the exported form of a solved maze. Struct field order fixes
// the JSON key order.
type Document struct {
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	Start    *Point  `json:"start,omitempty"`
	Goal     *Point  `json:"goal,omitempty"`
	Maze     []Cell  `json:"maze"`
	Solution []Point `json:"solution"`
}

// Classify maps a grid symbol to its classification code. A symbol outside
// the four legal classes means the input was never validated and is a fatal
// invariant fault, never a silent misclassification.
func Classify(symbol byte) (CellKind, error) {
	switch symbol {
	case mazemap.SymbolStart:
		return KindStart, nil
	case mazemap.SymbolGoal:
		return KindGoal, nil
	case mazemap.SymbolOpen:
		return KindOpen, nil
	case mazemap.SymbolWall:
		return KindWall, nil
	default:
		return 0, fault.Invariantf("unknown cell symbol %q", symbol)
	}
}

// Symbol is the inverse of Classify.
func (k CellKind) Symbol() (byte, error) {
	switch k {
	case KindStart:
		return mazemap.SymbolStart, nil
	case KindGoal:
		return mazemap.SymbolGoal, nil
	case KindOpen:
		return mazemap.SymbolOpen, nil
	case KindWall:
		return mazemap.SymbolWall, nil
	default:
		return 0, fault.Invariantf("unknown cell kind %d", k)
	}
}

// Build assembles the document for g and route. With endpoints enabled the
// start and goal coordinates are located by scanning the grid; they are
// redundant with the route's endpoints but part of the enriched schema.
func Build(g *mazemap.Grid, route []mazemap.Position, withEndpoints bool) (*Document, error) {
	doc := &Document{
		Width:    g.Cols,
		Height:   g.Rows,
		Maze:     make([]Cell, 0, g.Rows*g.Cols),
		Solution: make([]Point, 0, len(route)),
	}

	for y, row := range g.Cells {
		for x, symbol := range row {
			kind, err := Classify(symbol)
			if err != nil {
				return nil, err
			}
			doc.Maze = append(doc.Maze, Cell{X: x, Y: y, Type: kind})

			if !withEndpoints {
				continue
			}
			switch kind {
			case KindStart:
				doc.Start = &Point{X: x, Y: y}
			case KindGoal:
				doc.Goal = &Point{X: x, Y: y}
			}
		}
	}

	for _, pos := range route {
		doc.Solution = append(doc.Solution, Point{X: pos.Col, Y: pos.Row})
	}

	return doc, nil
}
