/*
Package solver finds a route through a character-grid maze with a depth-first
search.

The search is intentionally not shortest-path: neighbors are generated in the
fixed order up, down, left, right and pushed onto a last-in-first-out
frontier, so the most recently generated neighbor (right) is explored first.
That ordering decides which of several possible routes is returned and is
part of the output contract.
*/
package solver

import (
	"github.com/Whispering-Stars/labyrinthium-generator/fault"
	"github.com/Whispering-Stars/labyrinthium-generator/mazemap"
)

// Neighbor generation order: up, down, left, right.
var directions = []mazemap.Position{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// Solve searches g for a route from the start cell to the goal cell. It
// returns the route and true when one exists, and false when the goal is
// unreachable; unreachability is a normal outcome, not an error. A grid
// without a start cell violates the input contract and yields a fatal
// invariant error.
func Solve(g *mazemap.Grid) ([]mazemap.Position, bool, error) {
	start, err := findStart(g)
	if err != nil {
		return nil, false, err
	}

	visited := map[mazemap.Position]struct{}{start: {}}
	parents := make(map[mazemap.Position]mazemap.Position)
	stack := []mazemap.Position{start}

	for len(stack) > 0 {
		current := pop(&stack)
		if g.At(current) == mazemap.SymbolGoal {
			return reconstructRoute(current, parents), true, nil
		}

		for _, d := range directions {
			next := mazemap.Position{Row: current.Row + d.Row, Col: current.Col + d.Col}
			if !g.InBounds(next) || g.At(next) == mazemap.SymbolWall {
				continue
			}
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			parents[next] = current
			stack = append(stack, next)
		}
	}

	return nil, false, nil
}

// findStart locates the unique start cell, scanning rows top to bottom and
// columns left to right.
func findStart(g *mazemap.Grid) (mazemap.Position, error) {
	for r, row := range g.Cells {
		for c, sym := range row {
			if sym == mazemap.SymbolStart {
				return mazemap.Position{Row: r, Col: c}, nil
			}
		}
	}
	return mazemap.Position{}, fault.Invariantf("maze has no start cell %q", mazemap.SymbolStart)
}

// reconstructRoute walks the predecessor map backward from goal to the start
// cell (the only visited cell without a predecessor) and reverses the result
// so it reads start to goal. When goal is the start itself the route is the
// single-element sequence containing it.
func reconstructRoute(goal mazemap.Position, parents map[mazemap.Position]mazemap.Position) []mazemap.Position {
	route := []mazemap.Position{}
	current := goal
	for {
		route = append(route, current)
		parent, ok := parents[current]
		if !ok {
			break
		}
		current = parent
	}

	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	return route
}

// pop removes and returns the last element of the frontier stack.
func pop(s *[]mazemap.Position) mazemap.Position {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}
