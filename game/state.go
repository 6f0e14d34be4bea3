package game

import (
	"fmt"
	"strings"

	"github.com/daystram/gambit/board"
	"github.com/daystram/gambit/position"
)

// Points tracks the pieces a side has captured.
type Points struct {
	Captured []int8
	Total    int16
}

// State is an immutable game record. Every applied move produces a new State; the
// Captured slices are copied on write so states can be shared between search branches.
type State struct {
	Position board.Position
	Turn     board.Side

	White, Black Points
	Delta        board.Score // material gained by the move that produced this state

	HalfMove uint16
	FullMove uint16
	Status   Status
}

func (st State) WhiteToMove() bool {
	return st.Turn == board.SideWhite
}

// Points returns the points of s.
func (st State) Points(s board.Side) Points {
	if s == board.SideBlack {
		return st.Black
	}
	return st.White
}

func (st State) String() string {
	return fmt.Sprintf("turn: %s\nhalf: %4d\nfull: %4d\nstat: %s\npts : %d/%d",
		st.Turn, st.HalfMove, st.FullMove, st.Status, st.White.Total, st.Black.Total)
}

type stateConfig struct {
	fen string
}

type StateOption func(*stateConfig)

func WithFEN(fen string) StateOption {
	return func(cfg *stateConfig) {
		cfg.fen = fen
	}
}

// Rules applies moves using a piece catalog. The zero value plays orthodox chess.
type Rules struct {
	Catalog *board.Catalog
}

// DefaultRules plays with board.Standard.
var DefaultRules = Rules{}

// Pieces returns the catalog the rules play with.
func (r Rules) Pieces() *board.Catalog {
	if r.Catalog == nil {
		return &board.Standard
	}
	return r.Catalog
}

// NewState creates a state from the starting position, or from the FEN record given by
// WithFEN.
func (r Rules) NewState(opts ...StateOption) (State, error) {
	cfg := &stateConfig{
		fen: board.DefaultStartingPositionFEN,
	}
	for _, f := range opts {
		f(cfg)
	}
	var s board.Setup
	if err := r.Pieces().UnmarshalFEN(cfg.fen, &s); err != nil {
		return State{}, err
	}
	st := State{
		Position: s.Position,
		Turn:     s.Turn,
		HalfMove: s.HalfMove,
		FullMove: s.FullMove,
	}
	st.Status = r.status(st.Position, st.Turn)
	return st, nil
}

func NewState(opts ...StateOption) (State, error) {
	return DefaultRules.NewState(opts...)
}

// FEN encodes st.
func (r Rules) FEN(st State) string {
	fen, err := r.Pieces().MarshalFEN(&board.Setup{
		Position: st.Position,
		Turn:     st.Turn,
		HalfMove: st.HalfMove,
		FullMove: st.FullMove,
	})
	if err != nil {
		return ""
	}
	return fen
}

func (r Rules) status(pos board.Position, turn board.Side) Status {
	c := r.Pieces()
	check := c.InCheck(turn, pos)
	if !c.HasLegalMove(turn, pos) {
		if check {
			return StatusCheckmate
		}
		return StatusStalemate
	}
	if check {
		return StatusCheck
	}
	return StatusRunning
}

// LegalMoves lists every legal (origin, destination) pair for the side to move. A pawn
// reaching the last rank is listed once regardless of the promotion choice.
func (r Rules) LegalMoves(st State) []Move {
	c := r.Pieces()
	var mvs []Move
	for from := position.Pos(0); int(from) < board.TotalCells; from++ {
		if !st.Turn.Owns(st.Position.Grid[from]) {
			continue
		}
		for _, to := range c.LegalDestinations(from, st.Position) {
			mvs = append(mvs, Move{From: from, To: to})
		}
	}
	return mvs
}

func LegalMoves(st State) []Move {
	return DefaultRules.LegalMoves(st)
}

// Draw renders the board of st with its metadata.
func (r Rules) Draw(st State) string {
	builder := strings.Builder{}
	_, _ = builder.WriteString(r.Pieces().Draw(st.Position.Grid, board.Moves{}))
	_, _ = builder.WriteString("\n")
	_, _ = builder.WriteString(st.String())
	return builder.String()
}
