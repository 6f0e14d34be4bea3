package board

type Side uint8

const (
	SideUnknown Side = iota
	SideWhite
	SideBlack
)

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	default:
		return ""
	}
}

func (s Side) Opposite() Side {
	switch s {
	case SideWhite:
		return SideBlack
	case SideBlack:
		return SideWhite
	default:
		return SideUnknown
	}
}

// Sign is the sign carried by the grid identifiers of s.
func (s Side) Sign() int8 {
	switch s {
	case SideWhite:
		return 1
	case SideBlack:
		return -1
	default:
		return 0
	}
}

// Owns reports whether the grid identifier id belongs to s.
func (s Side) Owns(id int8) bool {
	return id*s.Sign() > 0
}

// SideOf returns the side of a grid identifier, SideUnknown for an empty square.
func SideOf(id int8) Side {
	switch {
	case id > 0:
		return SideWhite
	case id < 0:
		return SideBlack
	default:
		return SideUnknown
	}
}

// HomeRank is the rank index the side's pieces start on.
func (s Side) HomeRank() int8 {
	if s == SideBlack {
		return 7
	}
	return 0
}
