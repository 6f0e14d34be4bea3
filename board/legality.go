package board

import (
	"github.com/daystram/gambit/position"
)

// InCheck reports whether the king of s stands on a square threatened by the opponent.
func (c *Catalog) InCheck(s Side, pos Position) bool {
	king := KindKing.ID(s)
	threats := c.GenerateOpponent(s, pos)
	for p := position.Pos(0); int(p) < TotalCells; p++ {
		if pos.Grid[p] == king && threats.Threatens(p) {
			return true
		}
	}
	return false
}

// Castle tries to castle the king on from onto to. The king must not have moved nor be
// in check, the rook on the corner it travels towards must not have moved, every square
// between them must be empty, and the king must not pass through or land on a
// threatened square. Only the two-square king move completes a castle; the rook lands
// on the square the king crossed. When castling is not possible the input grid is
// returned unchanged.
func (c *Catalog) Castle(from, to position.Pos, pos Position) Grid {
	id := pos.Grid[from]
	if KindOf(id) != KindKing || pos.Counts[from] != 0 {
		return pos.Grid
	}
	if to.Y() != from.Y() || Abs(int8(to.X())-int8(from.X())) != 2 {
		return pos.Grid
	}
	side := SideOf(id)
	if c.InCheck(side, pos) {
		return pos.Grid
	}

	rook := KindRook.ID(side)
	y := int8(from.Y())
	for _, dir := range [2]int8{1, -1} {
		cornerX := int8(0)
		if dir > 0 {
			cornerX = int8(Width) - 1
		}
		corner := position.New(cornerX, y)
		if pos.Grid[corner] != rook || pos.Counts[corner] != 0 {
			continue
		}
		if !pathClear(from, corner, dir, &pos.Grid) {
			continue
		}

		cur := from
		for step := 1; step <= 2; step++ {
			next, ok := cur.Step(dir, 0)
			if !ok || pos.Grid[next] != 0 || c.kingThreatenedOn(from, next, pos) {
				break
			}
			if step == 2 && next == to {
				crossed, _ := from.Step(dir, 0)
				return pos.Grid.Relocate(from, next).Relocate(corner, crossed)
			}
			cur = next
		}
	}
	return pos.Grid
}

// pathClear reports whether every square strictly between a and b on a rank is empty.
// The rook crosses those squares too, so b1 blocks a queenside castle the king never passes.
func pathClear(a, b position.Pos, dir int8, g *Grid) bool {
	for p, ok := a.Step(dir, 0); ok && p != b; p, ok = p.Step(dir, 0) {
		if g[p] != 0 {
			return false
		}
	}
	return true
}

// kingThreatenedOn places the king standing on from onto sq and tests it for check.
func (c *Catalog) kingThreatenedOn(from, sq position.Pos, pos Position) bool {
	side := SideOf(pos.Grid[from])
	tentative := pos
	tentative.Grid = pos.Grid.Relocate(from, sq)
	return c.InCheck(side, tentative)
}

// ValidMove checks that moving the piece on from onto to is reachable and does not leave
// the mover's king in check, returning the resulting grid. Castling is attempted first
// for kings. Rejected moves return the input grid unchanged, so callers detect illegal
// moves by comparing grids.
//
// The returned grid is a plain relocation: the victim of a conditional capture is only
// removed for the check test and must be cleared by the caller.
func (c *Catalog) ValidMove(from, to position.Pos, pos Position) Grid {
	id := pos.Grid[from]
	if id == 0 || from == to {
		return pos.Grid
	}
	side := SideOf(id)

	if KindOf(id) == KindKing {
		if castled := c.Castle(from, to, pos); castled != pos.Grid {
			return castled
		}
	}

	moves := c.Generate(from, pos, Moves{})
	if !moves.CanReach(to) {
		return pos.Grid
	}

	tentative := pos
	tentative.Grid = pos.Grid.Relocate(from, to)
	if victim, ok := CapturedBy(from, to, moves); ok {
		tentative.Grid[victim] = 0
	}
	if c.InCheck(side, tentative) {
		return pos.Grid
	}
	return pos.Grid.Relocate(from, to)
}

// CapturedBy returns the square of the piece taken by a conditional capture landing on
// to, if the move from onto to is one.
func CapturedBy(from, to position.Pos, moves Moves) (position.Pos, bool) {
	if from.X() == to.X() {
		return position.NoPos, false
	}
	victim := position.New(int8(to.X()), int8(from.Y()))
	if moves[victim] != Captured {
		return position.NoPos, false
	}
	return victim, true
}

// LegalDestinations lists every square the piece on from can legally move to.
func (c *Catalog) LegalDestinations(from position.Pos, pos Position) []position.Pos {
	id := pos.Grid[from]
	if id == 0 {
		return nil
	}
	candidates := c.Generate(from, pos, Moves{})
	if KindOf(id) == KindKing {
		for _, dx := range [2]int8{2, -2} {
			if to, ok := from.Step(dx, 0); ok {
				candidates.mark(to, Reachable)
			}
		}
	}

	var dests []position.Pos
	for to := position.Pos(0); int(to) < TotalCells; to++ {
		if !candidates.CanReach(to) {
			continue
		}
		if c.ValidMove(from, to, pos) != pos.Grid {
			dests = append(dests, to)
		}
	}
	return dests
}

// HasLegalMove reports whether s has at least one legal move.
func (c *Catalog) HasLegalMove(s Side, pos Position) bool {
	for from := position.Pos(0); int(from) < TotalCells; from++ {
		if !s.Owns(pos.Grid[from]) {
			continue
		}
		if len(c.LegalDestinations(from, pos)) > 0 {
			return true
		}
	}
	return false
}
