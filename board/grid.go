package board

import (
	"github.com/daystram/gambit/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = position.TotalCells
)

// Markers stored in a Moves grid.
const (
	Unreachable int8 = 0
	Reachable   int8 = 1  // reachable, counts as a threat
	Quiet       int8 = 2  // reachable, never a threat (pawn pushes)
	Captured    int8 = -1 // occupant is taken by a conditional capture landing elsewhere
)

// Grid holds signed piece identifiers in LERF order. Positive identifiers belong to
// White, negative ones to Black, 0 is an empty square.
type Grid [TotalCells]int8

// Counts holds how many times the piece standing on each square has moved.
type Counts [TotalCells]uint16

// Moves is a grid of markers produced by the move generator.
type Moves [TotalCells]int8

func (g *Grid) Get(p position.Pos) int8 {
	return g[p]
}

func (g *Grid) Set(p position.Pos, id int8) {
	g[p] = id
}

// Relocate moves the occupant of from onto to, leaving from empty.
func (g Grid) Relocate(from, to position.Pos) Grid {
	g[to] = g[from]
	g[from] = 0
	return g
}

// Find returns the first square holding id, or NoPos.
func (g *Grid) Find(id int8) position.Pos {
	for p := position.Pos(0); int(p) < TotalCells; p++ {
		if g[p] == id {
			return p
		}
	}
	return position.NoPos
}

// Invert turns the grid around for the other side: both axes are flipped and every
// identifier changes sign.
func (g Grid) Invert() Grid {
	var inv Grid
	for p := position.Pos(0); int(p) < TotalCells; p++ {
		inv[p.Flip()] = -g[p]
	}
	return inv
}

func (c Counts) Flip() Counts {
	var f Counts
	for p := position.Pos(0); int(p) < TotalCells; p++ {
		f[p.Flip()] = c[p]
	}
	return f
}

// Flip turns a marker grid around without touching the marker values.
func (m Moves) Flip() Moves {
	var f Moves
	for p := position.Pos(0); int(p) < TotalCells; p++ {
		f[p.Flip()] = m[p]
	}
	return f
}

// mark records v at p. A threat marker is never downgraded; otherwise the new marker
// replaces whatever was there.
func (m *Moves) mark(p position.Pos, v int8) {
	if m[p] == Reachable {
		return
	}
	m[p] = v
}

// CanReach reports whether a piece can land on p.
func (m Moves) CanReach(p position.Pos) bool {
	return m[p] > 0
}

func (m Moves) Threatens(p position.Pos) bool {
	return m[p] == Reachable
}

// Any reports whether at least one square is reachable.
func (m Moves) Any() bool {
	for _, v := range m {
		if v > 0 {
			return true
		}
	}
	return false
}

// Position is the read-only input of every move generation or legality query.
type Position struct {
	Grid     Grid
	Counts   Counts
	LastMove position.Pos // square a piece most recently moved to
}

// Invert returns the position seen from the other side.
func (pos Position) Invert() Position {
	return Position{
		Grid:     pos.Grid.Invert(),
		Counts:   pos.Counts.Flip(),
		LastMove: pos.LastMove.Flip(),
	}
}
