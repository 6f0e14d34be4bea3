package board

import (
	"github.com/daystram/gambit/position"
)

// DefaultSeed seeds DefaultBitstrings.
const DefaultSeed uint64 = 7

// Bitstrings holds one random value per square and signed piece identifier, plus the
// value mixed in when White is to move. Index Pieces[p][i] with i = kind-1 for White and
// kind+5 for Black.
type Bitstrings struct {
	Pieces    [TotalCells][12]uint64
	WhiteTurn uint64
}

// DefaultBitstrings is shared by every search that does not bring its own table.
var DefaultBitstrings = NewBitstrings(DefaultSeed)

// NewBitstrings derives a full set of bitstrings from seed. The same seed always yields
// the same set.
func NewBitstrings(seed uint64) *Bitstrings {
	r := NewPseudoRand(seed)
	bs := &Bitstrings{}
	for p := position.Pos(0); int(p) < TotalCells; p++ {
		for i := range bs.Pieces[p] {
			bs.Pieces[p][i] = r.Uint64()
		}
	}
	bs.WhiteTurn = r.Uint64()
	return bs
}

func bitstringIndex(id int8) int {
	if id > 0 {
		return int(id) - 1
	}
	return int(-id) + 5
}

// Hash computes the Zobrist hash of g with the given side to move. Move counts and the
// last move are not part of the hash.
func Hash(whiteToMove bool, g Grid, bs *Bitstrings) uint64 {
	var h uint64
	if whiteToMove {
		h ^= bs.WhiteTurn
	}
	for p := position.Pos(0); int(p) < TotalCells; p++ {
		if id := g[p]; id != 0 {
			h ^= bs.Pieces[p][bitstringIndex(id)]
		}
	}
	return h
}
