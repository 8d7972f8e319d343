package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/videopoker/internal/deck"
	"github.com/lox/videopoker/internal/evaluator"
	"github.com/lox/videopoker/internal/game"
	"github.com/lox/videopoker/internal/statistics"
)

const (
	// CardWidth is the width in columns of one card's art
	CardWidth = 11
	// CardHeight is the number of lines in one card's art
	CardHeight = 7

	cardGap = "  "
)

// Banner is printed at the top of every screen
const Banner = `  ____   ___  _  _______ ____     ____ _     ___
 |  _ \ / _ \| |/ / ____|  _ \   / ___| |   |_ _|
 | |_) | | | | ' /|  _| | |_) | | |   | |    | |
 |  __/| |_| | . \| |___|  _ <  | |___| |___ | |
 |_|    \___/|_|\_\_____|_| \_\  \____|_____|___|`

var payoutRule = strings.Repeat("-", 51)

type frame struct {
	top, side, bottom string
}

var (
	singleFrame = frame{"┌─────────┐", "│", "└─────────┘"}
	doubleFrame = frame{"╔═════════╗", "║", "╚═════════╝"}
)

// CardArt returns the unstyled lines of a single card
func CardArt(c deck.Card) []string {
	return cardArt(c, singleFrame)
}

func cardArt(c deck.Card, f frame) []string {
	rank := c.Rank.String()
	left := fmt.Sprintf("%-2s", rank)
	right := fmt.Sprintf("%2s", rank)
	suit := c.Suit.String()

	return []string{
		f.top,
		f.side + left + "       " + f.side,
		f.side + "         " + f.side,
		f.side + "    " + suit + "    " + f.side,
		f.side + "         " + f.side,
		f.side + "       " + right + f.side,
		f.bottom,
	}
}

// PositionLabel centres "(n)" under a card
func PositionLabel(n int) string {
	label := fmt.Sprintf("(%d)", n)
	pad := (CardWidth + len(label)) / 2
	return fmt.Sprintf("%-*s", CardWidth, fmt.Sprintf("%*s", pad, label))
}

// Hand renders cards side by side. Cards for which highlighted returns true
// are drawn as winning cards; labels adds the "(1)".."(5)" row.
func (s *Styles) Hand(hand deck.Hand, highlighted func(int) bool, labels bool) string {
	art := make([][]string, len(hand))
	for i, c := range hand {
		win := highlighted != nil && highlighted(i)

		f := singleFrame
		if win && s.mono {
			f = doubleFrame
		}
		lines := cardArt(c, f)

		style := s.BlackCard
		switch {
		case win:
			style = s.WinningCard
		case c.IsRed():
			style = s.RedCard
		}
		for j := range lines {
			lines[j] = style.Render(lines[j])
		}
		art[i] = lines
	}

	var b strings.Builder
	row := make([]string, len(hand))
	for line := 0; line < CardHeight; line++ {
		for i := range art {
			row[i] = art[i][line]
		}
		b.WriteString(strings.Join(row, cardGap))
		b.WriteString("\n")
	}

	if labels {
		for i := range hand {
			row[i] = s.Label.Render(PositionLabel(i + 1))
		}
		b.WriteString(strings.Join(row, cardGap))
		b.WriteString("\n")
	}
	return b.String()
}

// PayoutTable renders the fixed schedule, emphasising the highlight row
func (s *Styles) PayoutTable(highlight evaluator.Category) string {
	var b strings.Builder
	b.WriteString(s.Heading.Render("Payout Table (Multiplier x Bet):"))
	b.WriteString("\n")

	for _, p := range evaluator.PayoutTable() {
		line := fmt.Sprintf("%-18s : %d", p.Category, p.Multiplier)
		if p.Category == highlight && highlight.IsWin() {
			if s.mono {
				line += "  <"
			}
			b.WriteString(s.PayoutHit.Render(line))
		} else {
			b.WriteString(s.PayoutRow.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString(payoutRule)
	b.WriteString("\n")
	return b.String()
}

// Table renders a full screen for view: banner, credits, payout table, the
// hand when there is one, the message and the pending win.
func (s *Styles) Table(v game.View) string {
	var b strings.Builder

	b.WriteString(renderLines(s.Banner, Banner))
	b.WriteString("\n\n")
	b.WriteString(s.Credits.Render(fmt.Sprintf("Credits: %d", v.Credits)))
	if v.Bet > 0 {
		b.WriteString(s.Label.Render(fmt.Sprintf("   Bet: %d", v.Bet)))
	}
	b.WriteString("\n\n")
	b.WriteString(s.PayoutTable(v.Highlight))
	b.WriteString("\n")

	if v.Hand != nil {
		b.WriteString(s.Heading.Render("Your Hand:"))
		b.WriteString("\n")
		b.WriteString(s.Hand(*v.Hand, v.IsHighlighted, v.ShowPositions))
		b.WriteString("\n")
	}

	if v.Message != "" {
		b.WriteString(renderLines(s.Message, v.Message))
		b.WriteString("\n\n")
	}

	if v.WinAmount > 0 {
		b.WriteString(s.Win.Render(fmt.Sprintf("Win for this hand: %d credits.", v.WinAmount)))
		b.WriteString("\n\n")
	}
	return b.String()
}

// renderLines styles each line on its own so lipgloss does not pad the block
// out to a rectangle
func renderLines(style lipgloss.Style, text string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = style.Render(l)
	}
	return strings.Join(lines, "\n")
}

// Summary renders the end-of-session report
func (s *Styles) Summary(sum game.Summary) string {
	var b strings.Builder

	b.WriteString(s.Heading.Render("Session summary"))
	b.WriteString("\n")

	row := func(label string, value any) {
		fmt.Fprintf(&b, "  %-18s %v\n", label+":", value)
	}
	row("Rounds played", sum.Rounds)
	row("Bet per hand", sum.Bet)
	row("Starting credits", sum.StartingCredits)
	row("Final credits", sum.FinalCredits)
	row("Net", fmt.Sprintf("%+d", sum.Net()))
	row("Total wagered", sum.TotalWagered)
	row("Total paid", sum.TotalPaid)
	row("Biggest win", sum.BiggestWin)
	if sum.GamblesWon+sum.GamblesLost > 0 {
		row("Gambles won/lost", fmt.Sprintf("%d/%d", sum.GamblesWon, sum.GamblesLost))
	}
	row("Duration", sum.Duration.Round(time.Second))
	row("Ended", sum.EndReason)

	if sum.Wins() > 0 {
		b.WriteString(s.Heading.Render("Winning hands"))
		b.WriteString("\n")
		for _, p := range evaluator.PayoutTable() {
			if n := sum.Categories[p.Category]; n > 0 {
				row(p.Category.String(), n)
			}
		}
	}

	if sum.EndReason == game.EndInsufficientCredits {
		b.WriteString("\n")
		b.WriteString(s.Lose.Render("*** YOU LOSE! ***"))
		b.WriteString("\n")
	}
	b.WriteString("Game Over. Thanks for playing!\n")
	return b.String()
}

// Statistics renders per-hand figures for a session. It is empty when no
// round was completed.
func (s *Styles) Statistics(st statistics.Statistics) string {
	if st.Hands == 0 {
		return ""
	}
	var b strings.Builder

	b.WriteString(s.Heading.Render("Statistics"))
	b.WriteString("\n")

	row := func(label string, value any) {
		fmt.Fprintf(&b, "  %-18s %v\n", label+":", value)
	}
	row("Return to player", fmt.Sprintf("%.1f%%", st.ReturnToPlayer()*100))
	row("Net per hand", fmt.Sprintf("%+.2f bets", st.Mean()))
	if st.Hands > 1 {
		lo, hi := st.ConfidenceInterval95()
		row("95% interval", fmt.Sprintf("%+.2f to %+.2f", lo, hi))
	}
	row("Paying hands", fmt.Sprintf("%d of %d", st.BaseWins, st.Hands))
	if st.GambledHands > 0 {
		row("Gamble effect", fmt.Sprintf("%+d credits", st.GambleDelta))
	}
	return b.String()
}
