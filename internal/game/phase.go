package game

// Phase is a state of the session state machine
type Phase int

const (
	AwaitingBet Phase = iota
	RoundStart
	Dealt
	HoldSelection
	FinalHand
	Gamble
	Payout
	GameOver
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case AwaitingBet:
		return "awaiting-bet"
	case RoundStart:
		return "round-start"
	case Dealt:
		return "dealt"
	case HoldSelection:
		return "hold-selection"
	case FinalHand:
		return "final-hand"
	case Gamble:
		return "gamble"
	case Payout:
		return "payout"
	case GameOver:
		return "game-over"
	default:
		return "unknown"
	}
}
