package evaluator

import (
	"testing"

	"github.com/lox/videopoker/internal/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateCategories(t *testing.T) {
	tests := []struct {
		name       string
		hand       string
		category   Category
		multiplier int
		positions  []int
	}{
		{"royal flush", "AsKsQsJsTs", RoyalFlush, 250, []int{0, 1, 2, 3, 4}},
		{"royal flush unordered", "JhAh10hKhQh", RoyalFlush, 250, []int{0, 1, 2, 3, 4}},
		{"straight flush", "9s8s7s6s5s", StraightFlush, 50, []int{0, 1, 2, 3, 4}},
		{"steel wheel", "As2s3s4s5s", StraightFlush, 50, []int{0, 1, 2, 3, 4}},
		{"four of a kind", "7h2c7s7d7c", FourOfAKind, 25, []int{0, 2, 3, 4}},
		{"full house", "7h7s4d7c4c", FullHouse, 9, []int{0, 1, 2, 3, 4}},
		{"flush", "Ah9h6h4h2h", Flush, 6, []int{0, 1, 2, 3, 4}},
		{"straight", "9hTd8c7s6h", Straight, 4, []int{0, 1, 2, 3, 4}},
		{"ace low straight", "2h3d4c5sAh", Straight, 4, []int{0, 1, 2, 3, 4}},
		{"ace high straight", "AdKcQhJsTd", Straight, 4, []int{0, 1, 2, 3, 4}},
		{"three of a kind", "5h9c5s2d5c", ThreeOfAKind, 3, []int{0, 2, 4}},
		{"two pair", "AhAdKcKs2h", TwoPair, 2, []int{0, 1, 2, 3}},
		{"two pair low ranks", "3h9d3c2s9h", TwoPair, 2, []int{0, 1, 2, 4}},
		{"jacks", "JhJd3c5s9h", JacksOrBetter, 1, []int{0, 1}},
		{"aces", "2hAd7cAs9h", JacksOrBetter, 1, []int{1, 3}},
		{"pair of tens", "ThTd3c5s9h", NoWin, 0, []int{}},
		{"low pair", "9h9d3c5s2h", NoWin, 0, []int{}},
		{"high card", "AhKd9c5s2h", NoWin, 0, []int{}},
		{"wraparound is not a straight", "QhKdAc2s3h", NoWin, 0, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(deck.MustParseHand(tt.hand))
			assert.Equal(t, tt.category, got.Category)
			assert.Equal(t, tt.multiplier, got.Multiplier)
			assert.Equal(t, tt.positions, got.Positions)
			assert.Equal(t, tt.multiplier > 0, got.IsWin())
		})
	}
}

func TestEvaluateIsPure(t *testing.T) {
	hand := deck.MustParseHand("KhKd3c3sKs")
	first := Evaluate(hand)
	second := Evaluate(hand)
	assert.Equal(t, first, second)
	assert.Equal(t, deck.MustParseHand("KhKd3c3sKs"), hand, "evaluation must not reorder the hand")
}

func TestFullHouseIsNeverThreeOfAKind(t *testing.T) {
	for _, h := range []string{"7h7s7d4c4h", "4c7h4h7s7d", "2s2hAsAhAd"} {
		got := Evaluate(deck.MustParseHand(h))
		assert.Equal(t, FullHouse, got.Category, h)
	}
}

func TestTwoPairIsNeverJacksOrBetter(t *testing.T) {
	got := Evaluate(deck.MustParseHand("JhJdQcQs2h"))
	assert.Equal(t, TwoPair, got.Category)
	assert.Len(t, got.Positions, 4)
}

func TestPayoutTable(t *testing.T) {
	rows := PayoutTable()
	require.Len(t, rows, 9)

	assert.Equal(t, Payout{RoyalFlush, 250}, rows[0])
	assert.Equal(t, Payout{JacksOrBetter, 1}, rows[8])

	want := []int{250, 50, 25, 9, 6, 4, 3, 2, 1}
	for i, row := range rows {
		assert.Equal(t, want[i], row.Multiplier, row.Category.String())
	}
	assert.Zero(t, NoWin.Multiplier())
	assert.False(t, NoWin.IsWin())
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "Royal Flush", RoyalFlush.String())
	assert.Equal(t, "Jacks or Better", JacksOrBetter.String())
	assert.Equal(t, "No Win", NoWin.String())
	assert.Equal(t, "Unknown", Category(42).String())
}
