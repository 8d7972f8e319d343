package display

import (
	"bytes"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/videopoker/internal/deck"
	"github.com/lox/videopoker/internal/evaluator"
	"github.com/lox/videopoker/internal/game"
	"github.com/lox/videopoker/internal/statistics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainStyles(theme string) *Styles {
	return NewStyles(lipgloss.NewRenderer(&bytes.Buffer{}), theme)
}

func TestCardArt(t *testing.T) {
	tests := []struct {
		card string
		want []string
	}{
		{"Ah", []string{
			"┌─────────┐",
			"│A        │",
			"│         │",
			"│    ♥    │",
			"│         │",
			"│        A│",
			"└─────────┘",
		}},
		{"Ts", []string{
			"┌─────────┐",
			"│10       │",
			"│         │",
			"│    ♠    │",
			"│         │",
			"│       10│",
			"└─────────┘",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.card, func(t *testing.T) {
			art := CardArt(deck.MustParseCards(tt.card)[0])
			require.Len(t, art, CardHeight)
			assert.Equal(t, tt.want, art)
			for _, line := range art {
				assert.Equal(t, CardWidth, utf8.RuneCountInString(line))
			}
		})
	}
}

func TestPositionLabel(t *testing.T) {
	assert.Equal(t, "    (1)    ", PositionLabel(1))
	assert.Equal(t, "    (5)    ", PositionLabel(5))
	assert.Len(t, PositionLabel(3), CardWidth)
}

func TestHandLayout(t *testing.T) {
	s := plainStyles(ThemeDefault)
	hand := deck.MustParseHand("2h3d4c5s6h")

	out := s.Hand(hand, nil, false)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, CardHeight)
	assert.Equal(t, 5*CardWidth+4*len(cardGap), lipgloss.Width(lines[0]))
	assert.Contains(t, lines[3], "♥")
	assert.Contains(t, lines[3], "♣")

	withLabels := s.Hand(hand, nil, true)
	lines = strings.Split(strings.TrimSuffix(withLabels, "\n"), "\n")
	require.Len(t, lines, CardHeight+1)
	assert.Equal(t, "    (1)          (2)          (3)          (4)          (5)    ", lines[CardHeight])
}

func TestMonoHighlightUsesDoubleFrame(t *testing.T) {
	s := plainStyles(ThemeMono)
	hand := deck.MustParseHand("JhJd3c5s9h")
	v := game.View{Highlighted: []int{0, 1}}

	out := s.Hand(hand, v.IsHighlighted, false)
	first := strings.Split(out, "\n")[0]
	assert.Equal(t, "╔═════════╗  ╔═════════╗  ┌─────────┐  ┌─────────┐  ┌─────────┐", first)
	assert.NotContains(t, out, "\x1b[")
}

func TestPayoutTable(t *testing.T) {
	s := plainStyles(ThemeMono)

	out := s.PayoutTable(evaluator.FullHouse)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, "Payout Table (Multiplier x Bet):", lines[0])
	assert.Equal(t, "Royal Flush        : 250", lines[1])
	assert.Equal(t, "Full House         : 9  <", lines[4])
	assert.Equal(t, "Jacks or Better    : 1", lines[9])
	assert.Equal(t, strings.Repeat("-", 51), lines[10])

	assert.NotContains(t, s.PayoutTable(evaluator.NoWin), "<")
}

func TestTable(t *testing.T) {
	s := plainStyles(ThemeMono)
	hand := deck.MustParseHand("AhAdKcKs2h")

	out := s.Table(game.View{
		Hand:        &hand,
		Highlight:   evaluator.TwoPair,
		WinAmount:   20,
		Credits:     90,
		Bet:         10,
		Message:     "Final Hand: Two Pair!",
		Highlighted: []int{0, 1, 2, 3},
	})

	assert.True(t, strings.HasPrefix(out, Banner))
	assert.Contains(t, out, "Credits: 90   Bet: 10")
	assert.Contains(t, out, "Two Pair           : 2  <")
	assert.Contains(t, out, "Your Hand:")
	assert.Contains(t, out, "Final Hand: Two Pair!")
	assert.Contains(t, out, "Win for this hand: 20 credits.")
	assert.NotContains(t, out, "(1)")
}

func TestTableWithoutHand(t *testing.T) {
	s := plainStyles(ThemeMono)
	out := s.Table(game.View{Credits: 100, Message: "Bet: 5 credits per hand"})

	assert.NotContains(t, out, "Your Hand:")
	assert.NotContains(t, out, "Win for this hand")
	assert.NotContains(t, out, "Bet: 0")
	assert.Contains(t, out, "Bet: 5 credits per hand")
}

func TestSummary(t *testing.T) {
	s := plainStyles(ThemeMono)
	sum := game.Summary{
		Rounds:          12,
		Bet:             10,
		StartingCredits: 100,
		FinalCredits:    0,
		TotalWagered:    120,
		TotalPaid:       20,
		BiggestWin:      20,
		Categories:      map[evaluator.Category]int{evaluator.TwoPair: 1, evaluator.NoWin: 11},
		GamblesWon:      1,
		GamblesLost:     2,
		Duration:        95*time.Second + 300*time.Millisecond,
		EndReason:       game.EndInsufficientCredits,
	}

	out := s.Summary(sum)
	assert.Contains(t, out, "Rounds played:     12")
	assert.Contains(t, out, "Net:               -100")
	assert.Contains(t, out, "Gambles won/lost:  1/2")
	assert.Contains(t, out, "Duration:          1m35s")
	assert.Contains(t, out, "Two Pair:          1")
	assert.NotContains(t, out, "No Win")
	assert.Contains(t, out, "*** YOU LOSE! ***")
	assert.True(t, strings.HasSuffix(out, "Game Over. Thanks for playing!\n"))

	sum.EndReason = game.EndInputClosed
	assert.NotContains(t, s.Summary(sum), "YOU LOSE")
}

func TestStatistics(t *testing.T) {
	s := plainStyles(ThemeMono)
	assert.Empty(t, s.Statistics(statistics.Statistics{}))

	var st statistics.Statistics
	st.Add(statistics.HandResult{Bet: 10, BaseWin: 20, Awarded: 40, Gambled: true})
	st.Add(statistics.HandResult{Bet: 10})

	out := s.Statistics(st)
	assert.Contains(t, out, "Return to player:  200.0%")
	assert.Contains(t, out, "Net per hand:      +1.00 bets")
	assert.Contains(t, out, "95% interval:")
	assert.Contains(t, out, "Paying hands:      1 of 2")
	assert.Contains(t, out, "Gamble effect:     +20 credits")
}
