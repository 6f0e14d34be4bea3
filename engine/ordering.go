package engine

import (
	"sort"

	"github.com/daystram/gambit/board"
	"github.com/daystram/gambit/game"
	"github.com/daystram/gambit/position"
)

// OrderMoves scores every legal relocation of the side to move by the material it wins,
// minus the value of the moving piece when the destination is threatened by the
// opponent and not defended, and sorts them best first. Ties keep scan order.
func OrderMoves(r game.Rules, st game.State) []BranchValue {
	c := r.Pieces()
	var bvs []BranchValue
	for from := position.Pos(0); int(from) < board.TotalCells; from++ {
		id := st.Position.Grid[from]
		if !st.Turn.Owns(id) {
			continue
		}
		for to := position.Pos(0); int(to) < board.TotalCells; to++ {
			res := r.Apply(from, to, board.KindQueen, st)
			if res.Kind == game.ResultInvalid {
				continue
			}
			value := res.Delta
			if res.Kind == game.ResultTerminal {
				value = res.Score
			} else if hanging(c, st.Turn, to, res.State.Position) {
				value = value.Add(c.Value(id).Neg())
			}
			bvs = append(bvs, BranchValue{From: from, To: to, Value: value})
		}
	}
	sort.SliceStable(bvs, func(i, j int) bool {
		return bvs[i].Value > bvs[j].Value
	})
	return bvs
}

// hanging reports whether the piece of s on p can be taken by the opponent without
// being recaptured. Defenders are found by pretending an enemy piece stands on p.
func hanging(c *board.Catalog, s board.Side, p position.Pos, pos board.Position) bool {
	threats := c.GenerateOpponent(s, pos)
	if !threats.Threatens(p) {
		return false
	}
	probe := pos
	probe.Grid[p] = board.KindPawn.ID(s.Opposite())
	defenders := c.GenerateSide(s, probe)
	return !defenders.Threatens(p)
}
