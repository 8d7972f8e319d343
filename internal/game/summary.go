package game

import (
	"time"

	"github.com/lox/videopoker/internal/evaluator"
)

// EndReason says why a session stopped
type EndReason string

const (
	EndInsufficientCredits EndReason = "insufficient credits"
	EndInputClosed         EndReason = "input closed"
	EndCancelled           EndReason = "cancelled"
	EndFault               EndReason = "internal error"
)

// Summary is the session report returned by Engine.Run
type Summary struct {
	Rounds          int
	Bet             int
	StartingCredits int
	FinalCredits    int
	TotalWagered    int
	TotalPaid       int
	BiggestWin      int
	Categories      map[evaluator.Category]int
	GamblesWon      int
	GamblesLost     int
	Duration        time.Duration
	EndReason       EndReason
}

// Net returns the credit change over the session
func (s Summary) Net() int {
	return s.FinalCredits - s.StartingCredits
}

// Wins returns how many rounds ended with a paying hand before gambling
func (s Summary) Wins() int {
	n := 0
	for c, count := range s.Categories {
		if c.IsWin() {
			n += count
		}
	}
	return n
}
