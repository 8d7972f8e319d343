package deck

import (
	"errors"
	"fmt"
)

// ErrDeckExhausted is returned when more cards are requested than remain.
// A correctly orchestrated round never deals more than ten cards, so callers
// treat it as a programming error.
var ErrDeckExhausted = errors.New("deck exhausted")

// Rand is the randomness a deck needs to shuffle.
type Rand interface {
	IntN(n int) int
}

// Deck represents a deck of playing cards
type Deck struct {
	cards []Card
	rng   Rand
}

// New creates a standard 52-card deck in canonical order (suit-major,
// rank ascending). It is not shuffled.
func New(rng Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	d.fill()
	return d
}

// NewFromCards creates a deck that deals the given cards in order. Shuffle
// is a no-op unless an rng is attached with WithRand.
func NewFromCards(cards []Card) *Deck {
	c := make([]Card, len(cards))
	copy(c, cards)
	return &Deck{cards: c}
}

// WithRand attaches a random source and returns the deck.
func (d *Deck) WithRand(rng Rand) *Deck {
	d.rng = rng
	return d
}

func (d *Deck) fill() {
	d.cards = d.cards[:0]
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}
}

// Shuffle randomizes the order of cards in place (Fisher-Yates)
func (d *Deck) Shuffle() {
	if d.rng == nil {
		return
	}
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the first n cards from the deck
func (d *Deck) Deal(n int) ([]Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot deal %d cards", n)
	}
	if n > len(d.cards) {
		return nil, fmt.Errorf("dealing %d with %d remaining: %w", n, len(d.cards), ErrDeckExhausted)
	}

	dealt := make([]Card, n)
	copy(dealt, d.cards[:n])
	d.cards = d.cards[n:]
	return dealt, nil
}

// DealOne deals a single card
func (d *Deck) DealOne() (Card, error) {
	cards, err := d.Deal(1)
	if err != nil {
		return Card{}, err
	}
	return cards[0], nil
}

// DealHand deals five cards as a Hand
func (d *Deck) DealHand() (Hand, error) {
	cards, err := d.Deal(HandSize)
	if err != nil {
		return Hand{}, err
	}
	return NewHand(cards)
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Cards returns a copy of the undealt cards in deal order
func (d *Deck) Cards() []Card {
	c := make([]Card, len(d.cards))
	copy(c, d.cards)
	return c
}

// Reset restores the deck to a full canonical 52-card deck
func (d *Deck) Reset() {
	if cap(d.cards) < 52 {
		d.cards = make([]Card, 0, 52)
	}
	d.fill()
}
