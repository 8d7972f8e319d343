package evaluator

// Category is a paying hand class in Jacks or Better. Higher values are
// stronger hands.
type Category int

const (
	NoWin Category = iota
	JacksOrBetter
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the payout table name of the category
func (c Category) String() string {
	switch c {
	case NoWin:
		return "No Win"
	case JacksOrBetter:
		return "Jacks or Better"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// Multiplier returns the payout factor applied to the bet
func (c Category) Multiplier() int {
	switch c {
	case RoyalFlush:
		return 250
	case StraightFlush:
		return 50
	case FourOfAKind:
		return 25
	case FullHouse:
		return 9
	case Flush:
		return 6
	case Straight:
		return 4
	case ThreeOfAKind:
		return 3
	case TwoPair:
		return 2
	case JacksOrBetter:
		return 1
	default:
		return 0
	}
}

// IsWin reports whether the category pays anything
func (c Category) IsWin() bool {
	return c.Multiplier() > 0
}

// Payout is one row of the payout table.
type Payout struct {
	Category   Category
	Multiplier int
}

// PayoutTable returns the paying categories from strongest to weakest.
func PayoutTable() []Payout {
	rows := make([]Payout, 0, RoyalFlush)
	for c := RoyalFlush; c > NoWin; c-- {
		rows = append(rows, Payout{Category: c, Multiplier: c.Multiplier()})
	}
	return rows
}
