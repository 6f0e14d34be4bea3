package engine

import (
	"fmt"

	"github.com/daystram/gambit/board"
	"github.com/daystram/gambit/game"
	"github.com/daystram/gambit/position"
)

// Mover applies a relocation to a game state.
type Mover interface {
	Apply(from, to position.Pos, promote board.Kind, st game.State) game.Result
}

// Hasher hashes a grid together with the side to move.
type Hasher func(whiteToMove bool, g board.Grid) uint64

// BranchValue is a relocation and the value of the branch it leads to, expressed for
// the side the root maximizes.
type BranchValue struct {
	From, To position.Pos
	Value    board.Score
}

var nullBranch = BranchValue{From: position.NoPos, To: position.NoPos}

func (bv BranchValue) IsNull() bool {
	return !bv.From.Valid() || !bv.To.Valid()
}

// Move returns the relocation as a move played in st, promoting to a queen when a pawn
// reaches the last rank.
func (bv BranchValue) Move(st game.State) game.Move {
	mv := game.Move{From: bv.From, To: bv.To}
	if !bv.IsNull() && board.KindOf(st.Position.Grid[bv.From]) == board.KindPawn &&
		int8(bv.To.Y()) == st.Turn.Opposite().HomeRank() {
		mv.Promote = board.KindQueen
	}
	return mv
}

func (bv BranchValue) String() string {
	if bv.IsNull() {
		return fmt.Sprintf("0000 (%d)", bv.Value)
	}
	return fmt.Sprintf("%s%s (%d)", bv.From, bv.To, bv.Value)
}

// Searcher runs a depth-limited minimax search with alpha-beta pruning. A zero Mover
// plays game.DefaultRules and a nil Hash uses board.DefaultBitstrings.
type Searcher struct {
	Mover   Mover
	Hash    Hasher
	Pruning bool

	nodes int
}

func (s *Searcher) mover() Mover {
	if s.Mover == nil {
		return game.DefaultRules
	}
	return s.Mover
}

func (s *Searcher) hash(whiteToMove bool, g board.Grid) uint64 {
	if s.Hash == nil {
		return board.Hash(whiteToMove, g, board.DefaultBitstrings)
	}
	return s.Hash(whiteToMove, g)
}

// Nodes returns the number of nodes visited since the last ResetNodes.
func (s *Searcher) Nodes() int {
	return s.nodes
}

func (s *Searcher) ResetNodes() {
	s.nodes = 0
}

// forMaster expresses a score gained by the side to move for the side the root maximizes.
func forMaster(master bool, v board.Score) board.Score {
	if !master {
		return v.Neg()
	}
	return v
}

// BestMove searches st to the given depth budget and returns the best relocation for
// the side to move together with its value. master tells whether this node maximizes,
// init is the material accumulated along the path from the root and bound is the
// running value of the parent node, nil at the root. Every pair of squares is tried;
// pawns always promote to queens.
//
// A checkmate or stalemate met anywhere in the scan ends the node immediately with the
// terminal score.
func (s *Searcher) BestMove(master bool, init board.Score, depth, ply int, bound *board.Score, tt *TranspositionTable, st game.State) BranchValue {
	s.nodes++

	if ply >= depth {
		leaf := nullBranch
		leaf.Value = init
		return leaf
	}

	hash := s.hash(st.WhiteToMove(), st.Position.Grid)
	if e, ok := tt.Get(hash); ok && e.covers(depth, ply) {
		if master {
			return e.Max
		}
		return e.Min
	}

	mover := s.mover()
	best, worst := nullBranch, nullBranch
	explored := false
	var running board.Score // bound handed to children once a child has been explored

	// seed both extremes with the best move of a shallower search
	var seed BranchValue
	seeded := false
	if ply == 0 && depth > 1 {
		seed = s.BestMove(master, init, depth-1, ply, bound, tt, st)
		if res := mover.Apply(seed.From, seed.To, board.KindQueen, st); res.Kind == game.ResultContinuing {
			child := s.BestMove(!master, init.Add(forMaster(master, res.Delta)), depth, ply+1, nil, tt, res.State)
			best = BranchValue{From: seed.From, To: seed.To, Value: child.Value}
			worst = best
			running = child.Value
			explored, seeded = true, true
		}
	}

	cutoff := false
scan:
	for from := position.Pos(0); int(from) < board.TotalCells; from++ {
		for to := position.Pos(0); int(to) < board.TotalCells; to++ {
			if seeded && from == seed.From && to == seed.To {
				continue
			}

			res := mover.Apply(from, to, board.KindQueen, st)
			switch res.Kind {
			case game.ResultInvalid:
				continue
			case game.ResultTerminal:
				return BranchValue{From: from, To: to, Value: forMaster(master, res.Score)}
			}

			var childBound *board.Score
			if explored {
				b := running
				childBound = &b
			}
			child := s.BestMove(!master, init.Add(forMaster(master, res.Delta)), depth, ply+1, childBound, tt, res.State)

			switch {
			case !explored:
				best = BranchValue{From: from, To: to, Value: child.Value}
				worst = best
				running = child.Value
				explored = true
			case child.Value > best.Value:
				best = BranchValue{From: from, To: to, Value: child.Value}
				if master {
					running = best.Value
				}
			case child.Value < worst.Value:
				worst = BranchValue{From: from, To: to, Value: child.Value}
				if !master {
					running = worst.Value
				}
			}

			if s.Pruning && bound != nil {
				if master && best.Value > *bound || !master && worst.Value < *bound {
					cutoff = true
					break scan
				}
			}
		}
	}

	// a node left early only knows a bound on its value
	if !cutoff {
		tt.Set(hash, Entry{Max: best, Min: worst, Depth: depth, Ply: ply})
	}

	if master {
		return best
	}
	return worst
}
