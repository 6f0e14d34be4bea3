package board

import (
	"testing"

	"github.com/daystram/gambit/position"
)

func mustPos(t *testing.T, n string) position.Pos {
	t.Helper()
	p, err := position.NewPosFromNotation(n)
	if err != nil {
		t.Fatalf("bad notation %q: %v", n, err)
	}
	return p
}

// newTestPosition builds a position from a FEN placement where every piece is unmoved,
// except those listed in moved which count one move per listing.
func newTestPosition(t *testing.T, placement, last string, moved ...string) Position {
	t.Helper()
	g, err := Standard.UnmarshalGrid(placement)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	pos := Position{Grid: g, LastMove: position.NoPos}
	for _, n := range moved {
		pos.Counts[mustPos(t, n)]++
	}
	if last != "" {
		pos.LastMove = mustPos(t, last)
	}
	return pos
}

func movesOf(t *testing.T, marks map[string]int8) Moves {
	t.Helper()
	var m Moves
	for n, v := range marks {
		m[mustPos(t, n)] = v
	}
	return m
}

func mustGrid(t *testing.T, placement string) Grid {
	t.Helper()
	g, err := Standard.UnmarshalGrid(placement)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	return g
}
