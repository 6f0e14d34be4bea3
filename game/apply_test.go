package game

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/daystram/gambit/board"
	"github.com/daystram/gambit/position"
)

func mustState(t *testing.T, fen string) State {
	t.Helper()
	st, err := NewState(WithFEN(fen))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	return st
}

func mustPos(t *testing.T, n string) position.Pos {
	t.Helper()
	p, err := position.NewPosFromNotation(n)
	if err != nil {
		t.Fatalf("bad notation %q: %v", n, err)
	}
	return p
}

func mustApply(t *testing.T, st State, moves ...string) State {
	t.Helper()
	for _, m := range moves {
		mv, err := ParseUCI(m)
		if err != nil {
			t.Fatal("unexpected error:", err)
		}
		res := Apply(mv.From, mv.To, mv.Promote, st)
		if res.Kind != ResultContinuing {
			t.Fatalf("unexpected result for %s: got=%s want=%s", m, res.Kind, ResultContinuing)
		}
		st = res.State
	}
	return st
}

func TestApply(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		fen       string
		move      string
		wantKind  ResultKind
		wantClass Status
		wantScore board.Score
		wantDelta board.Score
		wantFEN   string
	}{
		{
			name:      "pawn double step",
			fen:       board.DefaultStartingPositionFEN,
			move:      "e2e4",
			wantKind:  ResultContinuing,
			wantClass: StatusRunning,
			wantFEN:   "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			name:      "capture undefended queen",
			fen:       "4k3/8/8/3q4/8/8/3R4/4K3 w - - 0 1",
			move:      "d2d5",
			wantKind:  ResultContinuing,
			wantClass: StatusRunning,
			wantDelta: 9,
			wantFEN:   "4k3/8/8/3R4/8/8/8/4K3 b - - 0 1",
		},
		{
			name:      "en passant",
			fen:       "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2",
			move:      "e5d6",
			wantKind:  ResultContinuing,
			wantClass: StatusRunning,
			wantDelta: 1,
			wantFEN:   "4k3/8/3P4/8/8/8/8/4K3 b - - 0 2",
		},
		{
			name:      "underpromotion",
			fen:       "8/4P3/8/8/8/8/k7/4K3 w - - 3 40",
			move:      "e7e8n",
			wantKind:  ResultContinuing,
			wantClass: StatusRunning,
			wantDelta: 2,
			wantFEN:   "4N3/8/8/8/8/8/k7/4K3 b - - 0 40",
		},
		{
			name:      "promotion defaults to queen",
			fen:       "8/4P3/8/8/8/8/k7/4K3 w - - 3 40",
			move:      "e7e8",
			wantKind:  ResultContinuing,
			wantClass: StatusRunning,
			wantDelta: 8,
			wantFEN:   "4Q3/8/8/8/8/8/k7/4K3 b - - 0 40",
		},
		{
			name:      "black promotes downwards",
			fen:       "4k3/8/8/8/8/8/3p4/K7 b - - 0 60",
			move:      "d2d1b",
			wantKind:  ResultContinuing,
			wantClass: StatusRunning,
			wantDelta: 2,
			wantFEN:   "4k3/8/8/8/8/8/8/K2b4 w - - 0 61",
		},
		{
			name:      "castle",
			fen:       "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 4 9",
			move:      "e1g1",
			wantKind:  ResultContinuing,
			wantClass: StatusRunning,
			wantFEN:   "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 5 9",
		},
		{
			name:      "check",
			fen:       "4k3/8/8/8/8/8/8/R3K3 w - - 0 1",
			move:      "a1a8",
			wantKind:  ResultContinuing,
			wantClass: StatusCheck,
			wantFEN:   "R3k3/8/8/8/8/8/8/4K3 b - - 1 1",
		},
		{
			name:      "checkmate",
			fen:       "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1",
			move:      "a1a8",
			wantKind:  ResultTerminal,
			wantClass: StatusCheckmate,
			wantScore: board.ScoreMate,
			wantFEN:   "R5k1/5ppp/8/8/8/8/8/6K1 b - - 1 1",
		},
		{
			name:      "stalemate",
			fen:       "7k/4Q3/6K1/8/8/8/8/8 w - - 0 1",
			move:      "e7f7",
			wantKind:  ResultTerminal,
			wantClass: StatusStalemate,
			wantFEN:   "7k/5Q2/6K1/8/8/8/8/8 b - - 1 1",
		},
		{
			name:      "already checkmated",
			fen:       "R5k1/5ppp/8/8/8/8/8/6K1 b - - 1 1",
			move:      "g8h8",
			wantKind:  ResultTerminal,
			wantClass: StatusCheckmate,
			wantScore: board.ScoreMin,
			wantFEN:   "R5k1/5ppp/8/8/8/8/8/6K1 b - - 1 1",
		},
		{
			name:      "already stalemated",
			fen:       "7k/5Q2/6K1/8/8/8/8/8 b - - 1 1",
			move:      "h8g8",
			wantKind:  ResultTerminal,
			wantClass: StatusStalemate,
			wantFEN:   "7k/5Q2/6K1/8/8/8/8/8 b - - 1 1",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			st := mustState(t, tt.fen)
			mv, err := ParseUCI(tt.move)
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			res := Apply(mv.From, mv.To, mv.Promote, st)
			if res.Err != nil {
				t.Fatal("unexpected error:", res.Err)
			}
			if res.Kind != tt.wantKind || res.Class != tt.wantClass {
				t.Errorf("unexpected result: got=%s,%s want=%s,%s", res.Kind, res.Class, tt.wantKind, tt.wantClass)
			}
			if res.Score != tt.wantScore {
				t.Errorf("unexpected score: got=%d want=%d", res.Score, tt.wantScore)
			}
			if res.Delta != tt.wantDelta || res.State.Delta != tt.wantDelta {
				t.Errorf("unexpected delta: got=%d,%d want=%d", res.Delta, res.State.Delta, tt.wantDelta)
			}
			if got := DefaultRules.FEN(res.State); got != tt.wantFEN {
				t.Errorf("unexpected FEN: got=%s want=%s", got, tt.wantFEN)
			}
		})
	}
}

func TestApplyInvalid(t *testing.T) {
	t.Parallel()
	start := mustState(t, board.DefaultStartingPositionFEN)
	tests := []struct {
		name     string
		from, to position.Pos
	}{
		{name: "pawn too far", from: mustPos(t, "e2"), to: mustPos(t, "e5")},
		{name: "opponent piece", from: mustPos(t, "e7"), to: mustPos(t, "e5")},
		{name: "empty square", from: mustPos(t, "e4"), to: mustPos(t, "e5")},
		{name: "off board", from: position.NoPos, to: mustPos(t, "e5")},
		{name: "own piece", from: mustPos(t, "a1"), to: mustPos(t, "a2")},
		{name: "null move", from: mustPos(t, "g1"), to: mustPos(t, "g1")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := Apply(tt.from, tt.to, board.KindUnknown, start)
			if res.Kind != ResultInvalid {
				t.Errorf("unexpected result: got=%s want=%s", res.Kind, ResultInvalid)
			}
			if !errors.Is(res.Err, ErrIllegalMove) {
				t.Errorf("unexpected error: got=%v want=%v", res.Err, ErrIllegalMove)
			}
		})
	}
}

func TestApplyBookkeeping(t *testing.T) {
	t.Parallel()
	st := mustState(t, "4k3/8/8/3q4/8/8/3R4/4K3 w - - 0 1")
	next := mustApply(t, st, "d2d5")

	if st.White.Captured != nil || st.Position.Grid[mustPos(t, "d5")] != board.KindQueen.ID(board.SideBlack) {
		t.Error("apply modified its input")
	}
	want := Points{Captured: []int8{board.KindQueen.ID(board.SideBlack)}, Total: 9}
	if diff := cmp.Diff(want, next.White); diff != "" {
		t.Errorf("unexpected points (-want +got):\n%s", diff)
	}
	if got := next.Position.Counts[mustPos(t, "d5")]; got != 2 {
		t.Errorf("unexpected count: got=%d want=2", got)
	}
	if next.Position.LastMove != mustPos(t, "d5") {
		t.Errorf("unexpected last move: got=%v want=d5", next.Position.LastMove)
	}

	// captured lists are not shared between branches
	a := mustApply(t, next, "e8e7", "d5d6")
	b := mustApply(t, next, "e8f7", "d5d4")
	if len(a.White.Captured) != 1 || len(b.White.Captured) != 1 {
		t.Errorf("unexpected captures: got=%v,%v", a.White.Captured, b.White.Captured)
	}
}

func TestApplySequence(t *testing.T) {
	t.Parallel()
	st := mustState(t, board.DefaultStartingPositionFEN)
	st = mustApply(t, st, "e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "g8f6", "e1g1")

	want := "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQ1RK1 b kq - 5 4"
	if got := DefaultRules.FEN(st); got != want {
		t.Errorf("unexpected FEN: got=%s want=%s", got, want)
	}
}
