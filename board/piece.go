package board

import "fmt"

// Kind identifies a piece kind. The numeric order is part of the board encoding and must
// not change: the magnitude of a Grid cell is a Kind, its sign is the side.
type Kind int8

const (
	KindUnknown Kind = iota
	KindPawn
	KindRook
	KindKnight
	KindBishop
	KindQueen
	KindKing
)

// PromoteCandidates lists the kinds a pawn may become on the last rank.
var PromoteCandidates = []Kind{KindQueen, KindRook, KindBishop, KindKnight}

func (k Kind) String() string {
	switch k {
	case KindPawn:
		return "Pawn"
	case KindRook:
		return "Rook"
	case KindKnight:
		return "Knight"
	case KindBishop:
		return "Bishop"
	case KindQueen:
		return "Queen"
	case KindKing:
		return "King"
	default:
		return ""
	}
}

func (k Kind) Valid() bool {
	return k >= KindPawn && k <= KindKing
}

// ID returns the signed grid identifier of k for side s.
func (k Kind) ID(s Side) int8 {
	return int8(k) * s.Sign()
}

// KindOf strips the side from a grid identifier.
func KindOf(id int8) Kind {
	if id < 0 {
		return Kind(-id)
	}
	return Kind(id)
}

// Vector is a movement offset in files (X) and ranks (Y), from the point of view of the
// side the moves are generated for.
type Vector struct {
	X, Y int8
}

// Condition is the rule bundle of a conditional capture. Adjacent[i] is the square the
// victim must occupy, Captures[i] of the same Definition is where the capturing piece lands.
type Condition struct {
	Adjacent [2]Vector
	Rank     int8   // rank index the capturing piece must stand on
	Moves    uint16 // exact move count of the victim
	Victim   Kind   // kind the victim must be, any kind when KindUnknown
}

// Definition describes one piece kind. Definitions are shared by both sides; the
// direction vectors are always expressed for the side whose moves are being generated.
type Definition struct {
	Kind   Kind
	Symbol rune
	Value  Score

	Sliding  bool
	SlideCap int // maximum slides while the piece has not moved yet, 0 when uncapped

	Directions     [8]Vector
	DirectionCount int

	Captures  *[2]Vector // unconditional capture-only directions
	Condition *Condition
}

// SpecialCapture reports whether the piece only captures along its Captures directions.
func (d Definition) SpecialCapture() bool {
	return d.Captures != nil
}

// Catalog holds the six definitions indexed by Kind-1.
type Catalog [6]Definition

// Standard is the catalog for orthodox chess.
var Standard = Catalog{
	{
		Kind:           KindPawn,
		Symbol:         'P',
		Value:          1,
		Sliding:        true,
		SlideCap:       2,
		Directions:     [8]Vector{{0, 1}},
		DirectionCount: 1,
		Captures:       &[2]Vector{{1, 1}, {-1, 1}},
		Condition: &Condition{
			Adjacent: [2]Vector{{1, 0}, {-1, 0}},
			Rank:     4,
			Moves:    1,
			Victim:   KindPawn,
		},
	},
	{
		Kind:           KindRook,
		Symbol:         'R',
		Value:          5,
		Sliding:        true,
		Directions:     [8]Vector{{1, 0}, {-1, 0}, {0, 1}, {0, -1}},
		DirectionCount: 4,
	},
	{
		Kind:   KindKnight,
		Symbol: 'N',
		Value:  3,
		Directions: [8]Vector{
			{1, 2}, {2, 1}, {1, -2}, {-1, 2},
			{2, -1}, {-2, 1}, {-2, -1}, {-1, -2},
		},
		DirectionCount: 8,
	},
	{
		Kind:           KindBishop,
		Symbol:         'B',
		Value:          3,
		Sliding:        true,
		Directions:     [8]Vector{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}},
		DirectionCount: 4,
	},
	{
		Kind:    KindQueen,
		Symbol:  'Q',
		Value:   9,
		Sliding: true,
		Directions: [8]Vector{
			{1, 0}, {-1, 0}, {0, 1}, {0, -1},
			{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
		},
		DirectionCount: 8,
	},
	{
		Kind:   KindKing,
		Symbol: 'K',
		Value:  ScoreMate,
		Directions: [8]Vector{
			{1, 0}, {-1, 0}, {0, 1}, {0, -1},
			{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
		},
		DirectionCount: 8,
	},
}

// Lookup returns the definition for a signed grid identifier.
func (c *Catalog) Lookup(id int8) (Definition, bool) {
	k := KindOf(id)
	if !k.Valid() {
		return Definition{}, false
	}
	return c[k-1], true
}

// Value returns the material value of the piece identified by id, 0 for an empty square.
func (c *Catalog) Value(id int8) Score {
	d, ok := c.Lookup(id)
	if !ok {
		return 0
	}
	return d.Value
}

// KindFromSymbol resolves a FEN symbol into a signed grid identifier.
func (c *Catalog) KindFromSymbol(sym rune) (int8, error) {
	side, upper := SideWhite, sym
	if sym >= 'a' && sym <= 'z' {
		side = SideBlack
		upper -= 'a' - 'A'
	}
	for _, d := range c {
		if d.Symbol == upper {
			return d.Kind.ID(side), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown symbol '%c'", ErrInvalidFEN, sym)
}

// Symbol returns the FEN symbol of a signed grid identifier, or 0 for an empty square.
func (c *Catalog) Symbol(id int8) rune {
	d, ok := c.Lookup(id)
	if !ok {
		return 0
	}
	if id < 0 {
		return d.Symbol | 0x20 // lowercase is +32 uppercase
	}
	return d.Symbol
}

func (c *Catalog) SymbolUnicode(id int8) string {
	k := KindOf(id)
	if !k.Valid() {
		return ""
	}
	if id > 0 {
		return string([]rune("♙♖♘♗♕♔")[k-1])
	}
	return string([]rune("♟♜♞♝♛♚")[k-1])
}
