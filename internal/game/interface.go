package game

import (
	"context"
	"errors"

	"github.com/lox/videopoker/internal/deck"
	"github.com/lox/videopoker/internal/evaluator"
)

// ErrInputClosed is returned by an Interface when the player's input stream
// has ended (EOF, ctrl+c). The engine ends the session gracefully.
var ErrInputClosed = errors.New("input closed")

// Interface is everything the engine needs from the player-facing side.
// Every request blocks until the player answers, ctx is cancelled or the
// input closes.
type Interface interface {
	// RequestBetChoice returns one of options.
	RequestBetChoice(ctx context.Context, options []int) (int, error)
	// RequestContinue waits for an acknowledgement.
	RequestContinue(ctx context.Context, prompt string) error
	// RequestHoldSelection returns 0-based positions to hold. An empty
	// result means hold nothing.
	RequestHoldSelection(ctx context.Context, handSize int) ([]int, error)
	RequestYesNo(ctx context.Context, prompt string) (bool, error)
	// RequestChoice returns one of options.
	RequestChoice(ctx context.Context, prompt string, options []string) (string, error)
	// Render shows the current table. It has no result.
	Render(view View)
}

// View is a snapshot of what should be on screen.
type View struct {
	Hand *deck.Hand
	// Highlight is the payout table row to emphasise; NoWin means none.
	Highlight     evaluator.Category
	WinAmount     int
	Credits       int
	Bet           int
	Message       string
	ShowPositions bool
	// Highlighted are hand positions to draw as winning cards.
	Highlighted []int
}

// IsHighlighted reports whether position i should be drawn highlighted.
func (v View) IsHighlighted(i int) bool {
	for _, p := range v.Highlighted {
		if p == i {
			return true
		}
	}
	return false
}
