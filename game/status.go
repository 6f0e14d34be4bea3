package game

// Status is the state of the game for the side to move.
type Status uint8

const (
	// StatusUnknown is when game status has not been computed.
	StatusUnknown Status = iota

	// StatusRunning is when game is on progress.
	StatusRunning

	// StatusCheck is when the King of the side to move is in check.
	StatusCheck

	// StatusCheckmate is when the King of the side to move is in check and cannot escape.
	StatusCheckmate

	// StatusStalemate is when the side to move cannot move a piece and its King is not in check.
	StatusStalemate
)

func (s Status) IsRunning() bool {
	switch s {
	case StatusRunning, StatusCheck:
		return true
	default:
		return false
	}
}

func (s Status) IsCheck() bool {
	switch s {
	case StatusCheck, StatusCheckmate:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the game is over.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCheckmate, StatusStalemate:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	switch s {
	case StatusUnknown:
		return "StatusUnknown"
	case StatusRunning:
		return "StatusRunning"
	case StatusCheck:
		return "StatusCheck"
	case StatusCheckmate:
		return "StatusCheckmate"
	case StatusStalemate:
		return "StatusStalemate"
	default:
		return ""
	}
}
