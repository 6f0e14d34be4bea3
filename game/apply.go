package game

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/daystram/gambit/board"
	"github.com/daystram/gambit/position"
)

var (
	// ErrIllegalMove represents a move rejected by the rules.
	ErrIllegalMove = errors.New("illegal move")
)

// ResultKind classifies the outcome of Apply.
type ResultKind uint8

const (
	// ResultInvalid is a move violating the movement or check rules.
	ResultInvalid ResultKind = iota

	// ResultTerminal is a game that ended with checkmate or stalemate.
	ResultTerminal

	// ResultContinuing is a legal move after which the game goes on.
	ResultContinuing
)

func (k ResultKind) String() string {
	switch k {
	case ResultInvalid:
		return "Invalid"
	case ResultTerminal:
		return "Terminal"
	case ResultContinuing:
		return "Continuing"
	default:
		return ""
	}
}

// Result is the outcome of applying a move.
//
// Score is set for terminal results and is expressed for the side that attempted the
// move: a move giving checkmate scores ScoreMate, a side that is already checkmated
// scores ScoreMin, and stalemate scores 0. State is the position after the move for
// continuing results and for moves that end the game. Err is set for invalid results.
type Result struct {
	Kind  ResultKind
	Class Status
	Score board.Score
	State State
	Delta board.Score
	Err   error
}

func invalid(format string, args ...any) Result {
	return Result{
		Kind: ResultInvalid,
		Err:  fmt.Errorf("%w: %s", ErrIllegalMove, fmt.Sprintf(format, args...)),
	}
}

// Apply moves the piece on from onto to for the side to move of st.
func (r Rules) Apply(from, to position.Pos, promote board.Kind, st State) Result {
	switch st.Status {
	case StatusCheckmate:
		return Result{Kind: ResultTerminal, Class: StatusCheckmate, Score: board.ScoreMin, State: st}
	case StatusStalemate:
		return Result{Kind: ResultTerminal, Class: StatusStalemate, State: st}
	}
	if !from.Valid() || !to.Valid() {
		return invalid("square out of board")
	}
	pos := st.Position
	id := pos.Grid[from]
	if id == 0 {
		return invalid("no piece on %s", from)
	}
	if !st.Turn.Owns(id) {
		return invalid("piece on %s does not belong to %s", from, st.Turn)
	}

	c := r.Pieces()
	grid := c.ValidMove(from, to, pos)
	if grid == pos.Grid {
		return invalid("%s cannot move from %s to %s", board.KindOf(id), from, to)
	}

	next := st
	next.Position = board.Position{Grid: grid, Counts: pos.Counts, LastMove: to}
	next.Delta = 0

	// capture, en passant victims are not on the destination
	captured := pos.Grid[to]
	kind := board.KindOf(id)
	if kind == board.KindPawn {
		moves := c.Generate(from, pos, board.Moves{})
		if victim, ok := board.CapturedBy(from, to, moves); ok {
			captured = pos.Grid[victim]
			next.Position.Grid[victim] = 0
			next.Position.Counts[victim] = 0
		}
	}

	// move counts, the castled rook moves along with its king
	next.Position.Counts[to] = pos.Counts[from] + 1
	next.Position.Counts[from] = 0
	if kind == board.KindKing && board.Abs(int8(to.X())-int8(from.X())) == 2 {
		dir := int8(1)
		cornerX := int8(board.Width) - 1
		if to.X() < from.X() {
			dir, cornerX = -1, 0
		}
		corner := position.New(cornerX, int8(from.Y()))
		crossed, _ := from.Step(dir, 0)
		next.Position.Counts[crossed] = pos.Counts[corner] + 1
		next.Position.Counts[corner] = 0
	}

	// promotion
	if kind == board.KindPawn && int8(to.Y()) == st.Turn.Opposite().HomeRank() {
		if !slices.Contains(board.PromoteCandidates, promote) {
			promote = board.KindQueen
		}
		next.Position.Grid[to] = promote.ID(st.Turn)
		next.Delta = next.Delta.Add(c.Value(promote.ID(st.Turn)) - c.Value(id))
	}

	if captured != 0 {
		value := c.Value(captured)
		next.Delta = next.Delta.Add(value)
		pts := next.Points(st.Turn)
		pts.Captured = append(slices.Clone(pts.Captured), captured)
		pts.Total += int16(value)
		if st.Turn == board.SideWhite {
			next.White = pts
		} else {
			next.Black = pts
		}
	}

	next.HalfMove++
	if kind == board.KindPawn || captured != 0 {
		next.HalfMove = 0
	}
	if st.Turn == board.SideBlack {
		next.FullMove++
	}
	next.Turn = st.Turn.Opposite()
	next.Status = r.status(next.Position, next.Turn)

	switch next.Status {
	case StatusCheckmate:
		return Result{Kind: ResultTerminal, Class: StatusCheckmate, Score: board.ScoreMate, State: next, Delta: next.Delta}
	case StatusStalemate:
		return Result{Kind: ResultTerminal, Class: StatusStalemate, State: next, Delta: next.Delta}
	}
	return Result{Kind: ResultContinuing, Class: next.Status, State: next, Delta: next.Delta}
}

func Apply(from, to position.Pos, promote board.Kind, st State) Result {
	return DefaultRules.Apply(from, to, promote, st)
}
