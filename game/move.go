package game

import (
	"fmt"

	"github.com/daystram/gambit/board"
	"github.com/daystram/gambit/position"
)

// Move is a relocation request. Promote is only meaningful for pawns reaching the last
// rank; an invalid promotion kind falls back to a queen.
type Move struct {
	From, To position.Pos
	Promote  board.Kind
}

func (m Move) String() string {
	return m.UCI()
}

func (m Move) UCI() string {
	nt := m.From.Notation() + m.To.Notation()
	switch m.Promote {
	case board.KindQueen:
		nt += "q"
	case board.KindRook:
		nt += "r"
	case board.KindBishop:
		nt += "b"
	case board.KindKnight:
		nt += "n"
	}
	return nt
}

// ParseUCI reads a move in long algebraic notation, e.g. "e2e4" or "e7e8q".
func ParseUCI(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("%w: bad move %q", ErrIllegalMove, s)
	}
	from, err := position.NewPosFromNotation(s[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %v", ErrIllegalMove, err)
	}
	to, err := position.NewPosFromNotation(s[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %v", ErrIllegalMove, err)
	}
	mv := Move{From: from, To: to}
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			mv.Promote = board.KindQueen
		case 'r':
			mv.Promote = board.KindRook
		case 'b':
			mv.Promote = board.KindBishop
		case 'n':
			mv.Promote = board.KindKnight
		default:
			return Move{}, fmt.Errorf("%w: bad promotion %q", ErrIllegalMove, s[4:])
		}
	}
	return mv, nil
}
