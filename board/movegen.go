package board

import (
	"github.com/daystram/gambit/position"
)

// maxSlides is the longest slide an uncapped sliding piece can make.
const maxSlides = int(Width) - 1

// Generate marks every square the piece on from can reach, on top of seed. The result is
// pseudo-legal: the mover's own king may be left in check. Black pieces are generated
// on the inverted position so that directional pieces keep moving forward.
func (c *Catalog) Generate(from position.Pos, pos Position, seed Moves) Moves {
	if pos.Grid[from] < 0 {
		return c.generate(from.Flip(), pos.Invert(), seed.Flip()).Flip()
	}
	return c.generate(from, pos, seed)
}

// generate is the one-directional routine: vectors are applied as written in the
// catalog, so pawns always advance towards higher ranks.
func (c *Catalog) generate(from position.Pos, pos Position, moves Moves) Moves {
	id := pos.Grid[from]
	def, ok := c.Lookup(id)
	if !ok {
		return Moves{}
	}
	side := SideOf(id)

	slides := 1
	switch {
	case def.SlideCap > 0:
		if pos.Counts[from] == 0 {
			slides = def.SlideCap
		}
	case def.Sliding:
		slides = maxSlides
	}

	// unconditional special captures
	if def.Captures != nil {
		for _, v := range def.Captures {
			to, ok := from.Step(v.X, v.Y)
			if !ok {
				continue
			}
			if target := pos.Grid[to]; target != 0 && !side.Owns(target) {
				moves.mark(to, Reachable)
			}
		}
	}

	// conditional captures, landing on Captures[i] when Adjacent[i] holds the victim
	if cond := def.Condition; cond != nil && def.Captures != nil {
		for i, adj := range cond.Adjacent {
			to, okTo := from.Step(def.Captures[i].X, def.Captures[i].Y)
			victim, okVictim := from.Step(adj.X, adj.Y)
			if !okTo || !okVictim {
				continue
			}
			if victim != pos.LastMove {
				continue
			}
			target := pos.Grid[victim]
			if target == 0 || side.Owns(target) {
				continue
			}
			if cond.Victim != KindUnknown && KindOf(target) != cond.Victim {
				continue
			}
			if pos.Counts[victim] != cond.Moves || int8(from.Y()) != cond.Rank {
				continue
			}
			if pos.Grid[to] != 0 {
				continue
			}
			moves.mark(to, Reachable)
			moves.mark(victim, Captured)
		}
	}

	// standard moves
	step := Reachable
	if def.SpecialCapture() {
		step = Quiet
	}
	for i := 0; i < def.DirectionCount; i++ {
		v := def.Directions[i]
		cur := from
		for s := 0; s < slides; s++ {
			to, ok := cur.Step(v.X, v.Y)
			if !ok {
				break
			}
			target := pos.Grid[to]
			if target == 0 {
				moves.mark(to, step)
				cur = to
				continue
			}
			// special capture pieces cannot take by stepping
			if !side.Owns(target) && !def.SpecialCapture() {
				moves.mark(to, step)
			}
			break
		}
	}
	return moves
}

// generateAll unions the moves of every White piece.
func (c *Catalog) generateAll(pos Position) Moves {
	var moves Moves
	for p := position.Pos(0); int(p) < TotalCells; p++ {
		if pos.Grid[p] > 0 {
			moves = c.generate(p, pos, moves)
		}
	}
	return moves
}

// GenerateSide unions the moves of every piece of s. Black is generated from its own
// perspective and flipped back.
func (c *Catalog) GenerateSide(s Side, pos Position) Moves {
	if s == SideBlack {
		return c.generateAll(pos.Invert()).Flip()
	}
	return c.generateAll(pos)
}

// GenerateOpponent returns the moves of the side playing against s.
func (c *Catalog) GenerateOpponent(s Side, pos Position) Moves {
	return c.GenerateSide(s.Opposite(), pos)
}
