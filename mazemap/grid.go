/*
Package mazemap models a character-grid maze and parses it from its text
form: one row per line, each character one of 'S' (start), 'G' (goal),
'.' (open) and '#' (wall).

The parser records symbols as-is. Symbol legality is enforced downstream by
the exporter's classifier; presence of a start cell is enforced by the solver.
*/
package mazemap

// Grid symbols a well-formed maze is allowed to contain.
const (
	SymbolStart byte = 'S'
	SymbolGoal  byte = 'G'
	SymbolOpen  byte = '.'
	SymbolWall  byte = '#'
)

// Position identifies a grid cell. Rows grow downward, columns rightward,
// both zero-indexed.
type Position struct {
	Row int
	Col int
}

// Grid is a rectangular maze of single-character cells. It is constructed
// once from the parsed file and never mutated afterwards.
type Grid struct {
	Rows  int
	Cols  int
	Cells [][]byte
}

// InBounds reports whether p falls inside the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.Rows && p.Col >= 0 && p.Col < g.Cols
}

// At returns the symbol at p. The caller must ensure p is in bounds.
func (g *Grid) At(p Position) byte {
	return g.Cells[p.Row][p.Col]
}
