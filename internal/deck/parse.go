package deck

import (
	"fmt"
	"strings"
)

// ParseCards parses a string of card notation into a slice of cards.
// Format: "AsKsQsJsTs" where each card is [Rank][Suit]. Ranks are
// A K Q J T 9..2 (a ten may also be written "10"); suits are h d c s.
// Both are case-insensitive and spaces are ignored.
func ParseCards(s string) ([]Card, error) {
	s = strings.ReplaceAll(s, " ", "")

	cards := []Card{}
	for i := 0; i < len(s); {
		width := 1
		if strings.HasPrefix(s[i:], "10") {
			width = 2
		}
		if i+width >= len(s) {
			return nil, fmt.Errorf("incomplete card at position %d", i)
		}

		rank, err := parseRank(s[i : i+width])
		if err != nil {
			return nil, fmt.Errorf("invalid rank at position %d: %w", i, err)
		}

		suit, err := parseSuit(s[i+width])
		if err != nil {
			return nil, fmt.Errorf("invalid suit at position %d: %w", i+width, err)
		}

		cards = append(cards, NewCard(suit, rank))
		i += width + 1
	}

	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

// MustParseHand parses exactly five cards into a Hand and panics otherwise
func MustParseHand(s string) Hand {
	hand, err := NewHand(MustParseCards(s))
	if err != nil {
		panic(fmt.Sprintf("failed to parse hand '%s': %v", s, err))
	}
	return hand
}

func parseRank(s string) (Rank, error) {
	if s == "10" {
		return Ten, nil
	}
	switch s[0] {
	case 'A', 'a':
		return Ace, nil
	case 'K', 'k':
		return King, nil
	case 'Q', 'q':
		return Queen, nil
	case 'J', 'j':
		return Jack, nil
	case 'T', 't':
		return Ten, nil
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return Rank(s[0] - '0'), nil
	default:
		return 0, fmt.Errorf("unknown rank %q", s)
	}
}

func parseSuit(c byte) (Suit, error) {
	switch c {
	case 's', 'S':
		return Spades, nil
	case 'h', 'H':
		return Hearts, nil
	case 'd', 'D':
		return Diamonds, nil
	case 'c', 'C':
		return Clubs, nil
	default:
		return 0, fmt.Errorf("unknown suit '%c'", c)
	}
}

// Notation returns the compact form accepted by ParseCards (e.g. "Th", "As")
func (c Card) Notation() string {
	rank := c.Rank.String()
	if c.Rank == Ten {
		rank = "T"
	}
	return rank + strings.ToLower(c.Suit.Name()[:1])
}

// MarshalText encodes the card in compact notation
func (c Card) MarshalText() ([]byte, error) {
	if c.Rank < Two || c.Rank > Ace {
		return nil, fmt.Errorf("invalid card rank %d", c.Rank)
	}
	return []byte(c.Notation()), nil
}

// UnmarshalText decodes a single card in compact notation
func (c *Card) UnmarshalText(text []byte) error {
	cards, err := ParseCards(string(text))
	if err != nil {
		return err
	}
	if len(cards) != 1 {
		return fmt.Errorf("expected one card, got %d in %q", len(cards), text)
	}
	*c = cards[0]
	return nil
}
