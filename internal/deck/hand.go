package deck

import (
	"fmt"
	"strings"
)

// HandSize is the number of cards in a video poker hand.
const HandSize = 5

// Hand is a position-significant five card hand. Position i is shown to the
// player as slot i+1.
type Hand [HandSize]Card

// NewHand builds a Hand from exactly five cards.
func NewHand(cards []Card) (Hand, error) {
	var h Hand
	if len(cards) != HandSize {
		return h, fmt.Errorf("hand needs %d cards, got %d", HandSize, len(cards))
	}
	copy(h[:], cards)
	return h, nil
}

// String returns the cards separated by spaces, e.g. "A♠ K♠ Q♠ J♠ 10♠"
func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
