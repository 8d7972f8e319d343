// Package evaluator scores a five card video poker hand against the fixed
// Jacks or Better payout schedule.
package evaluator

import (
	"sort"

	"github.com/lox/videopoker/internal/deck"
)

// Result is the outcome of evaluating a hand.
type Result struct {
	Category   Category
	Multiplier int
	// Positions are the sorted hand indices that make up the win.
	Positions []int
}

// IsWin reports whether the hand pays.
func (r Result) IsWin() bool {
	return r.Multiplier > 0
}

// rankGroup collects the hand positions holding one rank.
type rankGroup struct {
	count     int
	positions []int
}

// rankGroups is indexed by deck.Rank so iteration is in ascending rank order.
type rankGroups [deck.Ace + 1]rankGroup

var allPositions = []int{0, 1, 2, 3, 4}

func result(c Category, positions []int) Result {
	p := append([]int(nil), positions...)
	sort.Ints(p)
	return Result{Category: c, Multiplier: c.Multiplier(), Positions: p}
}

// Evaluate classifies hand into the highest matching category. It is a pure
// function of the hand.
func Evaluate(hand deck.Hand) Result {
	var numbers [deck.HandSize]int
	for i, c := range hand {
		numbers[i] = c.Value()
	}
	sort.Ints(numbers[:])

	flush := isFlush(hand)
	straight := isStraight(numbers)

	var groups rankGroups
	for i, c := range hand {
		g := &groups[c.Rank]
		g.count++
		g.positions = append(g.positions, i)
	}

	if flush && straight && numbers[0] == int(deck.Ten) {
		return result(RoyalFlush, allPositions)
	}
	if flush && straight {
		return result(StraightFlush, allPositions)
	}
	if g, ok := groups.find(4); ok {
		return result(FourOfAKind, g.positions)
	}

	_, hasThree := groups.find(3)
	_, hasPair := groups.find(2)
	if hasThree && hasPair {
		return result(FullHouse, allPositions)
	}
	if flush {
		return result(Flush, allPositions)
	}
	if straight {
		return result(Straight, allPositions)
	}
	if g, ok := groups.find(3); ok {
		return result(ThreeOfAKind, g.positions)
	}

	var pairs []int
	for r := deck.Two; r <= deck.Ace; r++ {
		if groups[r].count == 2 {
			pairs = append(pairs, groups[r].positions...)
		}
	}
	if len(pairs) == 4 {
		return result(TwoPair, pairs)
	}

	for r := deck.Jack; r <= deck.Ace; r++ {
		if groups[r].count == 2 {
			return result(JacksOrBetter, groups[r].positions)
		}
	}

	return Result{Category: NoWin, Multiplier: 0, Positions: []int{}}
}

// find returns the lowest ranked group with exactly count cards.
func (gs *rankGroups) find(count int) (rankGroup, bool) {
	for r := deck.Two; r <= deck.Ace; r++ {
		if gs[r].count == count {
			return gs[r], true
		}
	}
	return rankGroup{}, false
}

func isFlush(hand deck.Hand) bool {
	for _, c := range hand[1:] {
		if c.Suit != hand[0].Suit {
			return false
		}
	}
	return true
}

// isStraight expects numbers sorted ascending. A-2-3-4-5 counts.
func isStraight(numbers [deck.HandSize]int) bool {
	run := true
	for i := 1; i < len(numbers); i++ {
		if numbers[i] != numbers[i-1]+1 {
			run = false
			break
		}
	}
	if run {
		return true
	}
	return numbers == [deck.HandSize]int{2, 3, 4, 5, 14}
}
