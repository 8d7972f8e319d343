package deck

import (
	"sort"
	"testing"

	"github.com/lox/videopoker/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sortCards(cards []Card) []Card {
	out := append([]Card(nil), cards...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Suit != out[j].Suit {
			return out[i].Suit < out[j].Suit
		}
		return out[i].Rank < out[j].Rank
	})
	return out
}

func TestNewCanonicalOrder(t *testing.T) {
	d := New(nil)
	require.Equal(t, 52, d.Remaining())

	cards := d.Cards()
	assert.Equal(t, NewCard(Hearts, Two), cards[0])
	assert.Equal(t, NewCard(Hearts, Ace), cards[12])
	assert.Equal(t, NewCard(Diamonds, Two), cards[13])
	assert.Equal(t, NewCard(Spades, Ace), cards[51])

	seen := make(map[Card]bool)
	for _, c := range cards {
		assert.False(t, seen[c], "duplicate %s", c)
		seen[c] = true
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	rng := randutil.New(7)
	for i := 0; i < 20; i++ {
		d := New(rng)
		before := d.Cards()
		d.Shuffle()
		after := d.Cards()

		require.Len(t, after, 52)
		assert.Equal(t, sortCards(before), sortCards(after))
	}
}

func TestShuffleChangesOrder(t *testing.T) {
	d := New(randutil.New(99))
	d.Shuffle()
	assert.NotEqual(t, New(nil).Cards(), d.Cards())
}

// fixedRand always picks index zero.
type fixedRand struct{}

func (fixedRand) IntN(int) int { return 0 }

func TestShuffleSwapsFromTheEnd(t *testing.T) {
	d := NewFromCards(MustParseCards("2h3h4h")).WithRand(fixedRand{})
	d.Shuffle()
	// i=2 swaps 0<->2: 4h 3h 2h; i=1 swaps 0<->1: 3h 4h 2h
	assert.Equal(t, MustParseCards("3h4h2h"), d.Cards())
}

func TestDealThenRestoreReconstructsDeck(t *testing.T) {
	d := New(randutil.New(3))
	d.Shuffle()

	dealt, err := d.Deal(10)
	require.NoError(t, err)
	assert.Len(t, dealt, 10)
	assert.Equal(t, 42, d.Remaining())

	all := append(dealt, d.Cards()...)
	require.Len(t, all, 52)
	assert.Equal(t, sortCards(New(nil).Cards()), sortCards(all))
}

func TestDealTakesPrefixInOrder(t *testing.T) {
	d := NewFromCards(MustParseCards("AsKsQsJsTs9s"))

	hand, err := d.DealHand()
	require.NoError(t, err)
	assert.Equal(t, MustParseHand("AsKsQsJsTs"), hand)

	c, err := d.DealOne()
	require.NoError(t, err)
	assert.Equal(t, NewCard(Spades, Nine), c)
	assert.Zero(t, d.Remaining())
}

func TestDealExhausted(t *testing.T) {
	d := NewFromCards(MustParseCards("AsKs"))

	_, err := d.Deal(3)
	require.ErrorIs(t, err, ErrDeckExhausted)
	assert.Equal(t, 2, d.Remaining(), "failed deal must not consume cards")

	_, err = d.Deal(-1)
	assert.Error(t, err)
}

func TestReset(t *testing.T) {
	d := New(randutil.New(1))
	d.Shuffle()
	_, err := d.Deal(20)
	require.NoError(t, err)

	d.Reset()
	assert.Equal(t, New(nil).Cards(), d.Cards())
}
