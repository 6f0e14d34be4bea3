package position

import (
	"errors"
)

const (
	// MaxComponentScalar is the maximum component scalar the position system supports.
	MaxComponentScalar Pos = 8

	// TotalCells is the number of squares addressed by Pos.
	TotalCells = int(MaxComponentScalar * MaxComponentScalar)

	// NoPos marks the absence of a square, e.g. before any piece has moved.
	NoPos Pos = -1
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Pos is a little-endian rank-file square index: a1 is 0, h1 is 7 and h8 is 63.
type Pos int8

func New(x, y int8) Pos {
	return Pos(y)*MaxComponentScalar + Pos(x)
}

func NewPosFromNotation(n string) (Pos, error) {
	x, y, err := notationToXY(n)
	if err != nil {
		return 0, err
	}
	return MaxComponentScalar*y + x, nil
}

func (p Pos) String() string {
	if p == NoPos {
		return "-"
	}
	return p.Notation()
}

func (p Pos) Notation() string {
	if !p.Valid() {
		return ""
	}
	return string(rune('a'+p.X())) + string(rune('1'+p.Y()))
}

func (p Pos) Valid() bool {
	return p >= 0 && p < MaxComponentScalar*MaxComponentScalar
}

func (p Pos) X() Pos {
	return p % MaxComponentScalar
}

func (p Pos) Y() Pos {
	return p / MaxComponentScalar
}

// Step offsets p by (dx, dy). The result is only meaningful when ok is true.
func (p Pos) Step(dx, dy int8) (Pos, bool) {
	x, y := int8(p.X())+dx, int8(p.Y())+dy
	if x < 0 || x >= int8(MaxComponentScalar) || y < 0 || y >= int8(MaxComponentScalar) {
		return NoPos, false
	}
	return New(x, y), true
}

// Flip mirrors p on both axes, turning the board around for the other side.
func (p Pos) Flip() Pos {
	if !p.Valid() {
		return p
	}
	return MaxComponentScalar*MaxComponentScalar - 1 - p
}

func notationToXY(n string) (Pos, Pos, error) {
	if len(n) != 2 {
		return 0, 0, ErrInvalidNotation
	}
	pX, err := notationToX(n[0])
	if err != nil {
		return 0, 0, err
	}
	pY, err := notationToY(n[1])
	if err != nil {
		return 0, 0, err
	}
	return pX, pY, nil
}

func notationToX(x byte) (Pos, error) {
	if x < 'a' || x >= 'a'+byte(MaxComponentScalar) {
		return 0, ErrInvalidNotation
	}
	return Pos(x - 'a'), nil
}

func notationToY(y byte) (Pos, error) {
	if y < '1' || y >= '1'+byte(MaxComponentScalar) {
		return 0, ErrInvalidNotation
	}
	return Pos(y - '1'), nil
}

func (p Pos) NotationComponentX() string {
	if p < 0 || MaxComponentScalar <= p {
		return ""
	}
	return string(rune('a' + p))
}

func (p Pos) NotationComponentY() string {
	if p < 0 || MaxComponentScalar <= p {
		return ""
	}
	return string(rune('0' + p + 1))
}
