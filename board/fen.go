package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/daystram/gambit/position"
)

var (
	DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	// ErrInvalidFEN represents an invalid FEN record.
	ErrInvalidFEN = errors.New("invalid fen")
)

// Setup is everything a FEN record describes.
type Setup struct {
	Position Position
	Turn     Side
	HalfMove uint16
	FullMove uint16
}

// UnmarshalGrid parses the piece placement field of a FEN record.
func (c *Catalog) UnmarshalGrid(placement string) (Grid, error) {
	var g Grid
	rows := strings.Split(placement, "/")
	if len(rows) != int(Height) {
		return g, fmt.Errorf("%w: invalid board configuration", ErrInvalidFEN)
	}
	for y := int8(0); y < int8(Height); y++ {
		row := rows[int8(Height)-y-1]
		x := int8(0)
		for _, cell := range row {
			if x >= int8(Width) {
				return g, fmt.Errorf("%w: rank overflow", ErrInvalidFEN)
			}
			if unicode.IsDigit(cell) {
				skip := int8(cell - '0')
				if skip == 0 || x+skip > int8(Width) {
					return g, fmt.Errorf("%w: skip out of bounds", ErrInvalidFEN)
				}
				x += skip
				continue
			}
			id, err := c.KindFromSymbol(cell)
			if err != nil {
				return g, err
			}
			g[position.New(x, y)] = id
			x++
		}
		if x != int8(Width) {
			return g, fmt.Errorf("%w: missing cells", ErrInvalidFEN)
		}
	}
	return g, nil
}

// UnmarshalFEN decodes a FEN record. Only the placement field is required; missing
// trailing fields default to "w - - 0 1". Kings are optional.
//
// FEN carries no move history, so move counts are derived: pawns on their starting
// rank, and kings and rooks still holding castling rights, count 0 moves; every other
// piece counts 1. An en passant target marks the pawn in front of it as the last piece
// moved.
func (c *Catalog) UnmarshalFEN(fen string, s *Setup) error {
	if s == nil {
		return fmt.Errorf("invalid setup")
	}
	segments := strings.Fields(fen)
	if len(segments) == 0 || len(segments) > 6 {
		return fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}
	defaults := []string{"", "w", "-", "-", "0", "1"}
	segments = append(segments, defaults[len(segments):]...)

	g, err := c.UnmarshalGrid(segments[0])
	if err != nil {
		return err
	}
	pos := Position{Grid: g, LastMove: position.NoPos}
	for p := position.Pos(0); int(p) < TotalCells; p++ {
		id := g[p]
		if id == 0 {
			continue
		}
		pos.Counts[p] = 1
		side := SideOf(id)
		if KindOf(id) == KindPawn && int8(p.Y()) == pawnRank(side) {
			pos.Counts[p] = 0
		}
	}

	switch segments[1] {
	case "w":
		s.Turn = SideWhite
	case "b":
		s.Turn = SideBlack
	default:
		return fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	}

	if len(segments[2]) > 4 {
		return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
	}
	if segments[2] != "-" {
		for _, e := range segments[2] {
			side, dir := SideWhite, int8(0)
			switch e {
			case 'K':
				dir = 1
			case 'Q':
				dir = -1
			case 'k':
				side, dir = SideBlack, 1
			case 'q':
				side, dir = SideBlack, -1
			default:
				return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
			}
			king, rook := castleSquares(side, dir)
			if g[king] != KindKing.ID(side) || g[rook] != KindRook.ID(side) {
				return fmt.Errorf("%w: castling rights without king and rook", ErrInvalidFEN)
			}
			pos.Counts[king], pos.Counts[rook] = 0, 0
		}
	}

	if segments[3] != "-" {
		target, err := position.NewPosFromNotation(segments[3])
		if err != nil {
			return fmt.Errorf("%w: %v", fmt.Errorf("%w: invalid enpassant position", ErrInvalidFEN), err)
		}
		var pawn position.Pos
		switch target.Y() {
		case 2:
			pawn, _ = target.Step(0, 1)
		case 5:
			pawn, _ = target.Step(0, -1)
		default:
			return fmt.Errorf("%w: invalid enpassant position", ErrInvalidFEN)
		}
		if KindOf(g[pawn]) != KindPawn {
			return fmt.Errorf("%w: enpassant target without pawn", ErrInvalidFEN)
		}
		pos.LastMove = pawn
		pos.Counts[pawn] = 1
	}

	halfMove, err := strconv.ParseUint(segments[4], 10, 16)
	if err != nil {
		return fmt.Errorf("%w: invalid half move clock", ErrInvalidFEN)
	}
	fullMove, err := strconv.ParseUint(segments[5], 10, 16)
	if err != nil || fullMove == 0 {
		return fmt.Errorf("%w: invalid full move clock", ErrInvalidFEN)
	}

	s.Position = pos
	s.HalfMove = uint16(halfMove)
	s.FullMove = uint16(fullMove)
	return nil
}

// MarshalGrid encodes the piece placement field of a FEN record.
func (c *Catalog) MarshalGrid(g Grid) string {
	builder := strings.Builder{}
	for y := int8(Height) - 1; y >= 0; y-- {
		skip := 0
		for x := int8(0); x < int8(Width); x++ {
			id := g[position.New(x, y)]
			if id == 0 {
				skip++
				continue
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune(skip + '0'))
				skip = 0
			}
			_, _ = builder.WriteRune(c.Symbol(id))
		}
		if skip != 0 {
			_, _ = builder.WriteRune(rune(skip + '0'))
		}
		if y > 0 {
			_, _ = builder.WriteRune('/')
		}
	}
	return builder.String()
}

// MarshalFEN encodes s. Castling rights are reported for unmoved king and rook pairs on
// their starting squares and the en passant target for a pawn that has just made its
// double step.
func (c *Catalog) MarshalFEN(s *Setup) (string, error) {
	if s == nil {
		return "", fmt.Errorf("invalid setup")
	}
	pos := s.Position
	builder := strings.Builder{}
	_, _ = builder.WriteString(c.MarshalGrid(pos.Grid))

	switch s.Turn {
	case SideWhite:
		_, _ = builder.WriteString(" w ")
	case SideBlack:
		_, _ = builder.WriteString(" b ")
	default:
		return "", fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	}

	rights := ""
	for _, r := range []struct {
		sym  rune
		side Side
		dir  int8
	}{
		{'K', SideWhite, 1}, {'Q', SideWhite, -1}, {'k', SideBlack, 1}, {'q', SideBlack, -1},
	} {
		king, rook := castleSquares(r.side, r.dir)
		if pos.Grid[king] == KindKing.ID(r.side) && pos.Counts[king] == 0 &&
			pos.Grid[rook] == KindRook.ID(r.side) && pos.Counts[rook] == 0 {
			rights += string(r.sym)
		}
	}
	if rights == "" {
		rights = "-"
	}
	_, _ = builder.WriteString(rights)
	_, _ = builder.WriteRune(' ')

	if target, ok := enPassantTarget(pos); ok {
		_, _ = builder.WriteString(target.Notation())
	} else {
		_, _ = builder.WriteRune('-')
	}

	_, _ = builder.WriteString(fmt.Sprintf(" %d %d", s.HalfMove, s.FullMove))
	return builder.String(), nil
}

// pawnRank is the rank index pawns of s start on.
func pawnRank(s Side) int8 {
	if s == SideBlack {
		return int8(Height) - 2
	}
	return 1
}

// castleSquares returns the starting squares of the king and of the rook on the dir
// side of it.
func castleSquares(s Side, dir int8) (king, rook position.Pos) {
	y := s.HomeRank()
	king = position.New(4, y)
	rook = position.New(0, y)
	if dir > 0 {
		rook = position.New(int8(Width)-1, y)
	}
	return king, rook
}

// enPassantTarget returns the square skipped by the pawn that just made a double step.
func enPassantTarget(pos Position) (position.Pos, bool) {
	if !pos.LastMove.Valid() {
		return position.NoPos, false
	}
	id := pos.Grid[pos.LastMove]
	if KindOf(id) != KindPawn || pos.Counts[pos.LastMove] != 1 {
		return position.NoPos, false
	}
	side := SideOf(id)
	if int8(pos.LastMove.Y()) != pawnRank(side)+2*side.Sign() {
		return position.NoPos, false
	}
	target, _ := pos.LastMove.Step(0, -side.Sign())
	return target, true
}
