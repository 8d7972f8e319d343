package game

import "fmt"

// Color is a gamble guess or draw
type Color string

const (
	Red   Color = "red"
	Black Color = "black"
)

// GambleColors are the choices offered to the player, in display order.
var GambleColors = []string{string(Red), string(Black)}

// GamblePhase is a state of the double-up sub-machine
type GamblePhase int

const (
	// GambleOffered waits for the player to accept or decline the offer.
	GambleOffered GamblePhase = iota
	// GambleGuessing waits for a colour guess.
	GambleGuessing
	// GambleWon has doubled the win and waits for continue-or-stop.
	GambleWon
	// GambleLost is terminal; the win is gone.
	GambleLost
	// GambleCollected is terminal; the player keeps the current win.
	GambleCollected
)

func (p GamblePhase) String() string {
	switch p {
	case GambleOffered:
		return "offered"
	case GambleGuessing:
		return "guessing"
	case GambleWon:
		return "won"
	case GambleLost:
		return "lost"
	case GambleCollected:
		return "collected"
	default:
		return "unknown"
	}
}

// GambleStep records one guess
type GambleStep struct {
	Guess    Color `json:"guess"`
	Drawn    Color `json:"drawn"`
	Won      bool  `json:"won"`
	WinAfter int   `json:"win_after"`
}

// DoubleUp is the explicit gamble state machine. A wrong guess zeroes the win
// and ends it; the player may stop at any non-terminal point.
type DoubleUp struct {
	phase GamblePhase
	win   int
	steps []GambleStep
}

// NewDoubleUp offers a gamble on win.
func NewDoubleUp(win int) *DoubleUp {
	return &DoubleUp{phase: GambleOffered, win: win}
}

// Phase returns the current phase
func (d *DoubleUp) Phase() GamblePhase { return d.phase }

// Win returns the amount that would be paid if the gamble ended now
func (d *DoubleUp) Win() int { return d.win }

// Steps returns the guesses made so far
func (d *DoubleUp) Steps() []GambleStep { return d.steps }

// Done reports whether the gamble reached a terminal phase
func (d *DoubleUp) Done() bool {
	return d.phase == GambleLost || d.phase == GambleCollected
}

// Accept answers the initial offer.
func (d *DoubleUp) Accept(yes bool) error {
	if d.phase != GambleOffered {
		return fmt.Errorf("gamble: cannot accept in phase %s", d.phase)
	}
	if yes {
		d.phase = GambleGuessing
	} else {
		d.phase = GambleCollected
	}
	return nil
}

// Guess resolves a guess against the drawn colour.
func (d *DoubleUp) Guess(guess, drawn Color) (GambleStep, error) {
	if d.phase != GambleGuessing {
		return GambleStep{}, fmt.Errorf("gamble: cannot guess in phase %s", d.phase)
	}

	step := GambleStep{Guess: guess, Drawn: drawn, Won: guess == drawn}
	if step.Won {
		d.win *= 2
		d.phase = GambleWon
	} else {
		d.win = 0
		d.phase = GambleLost
	}
	step.WinAfter = d.win
	d.steps = append(d.steps, step)
	return step, nil
}

// Continue answers "gamble again?" after a correct guess.
func (d *DoubleUp) Continue(again bool) error {
	if d.phase != GambleWon {
		return fmt.Errorf("gamble: cannot continue in phase %s", d.phase)
	}
	if again {
		d.phase = GambleGuessing
	} else {
		d.phase = GambleCollected
	}
	return nil
}
