package game

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lox/videopoker/internal/deck"
)

const dealPrompt = "Press Enter to deal a hand..."

// scriptedUI answers requests from queues and records what it was shown.
// An exhausted queue behaves like closed input.
type scriptedUI struct {
	bets    []int
	holds   [][]int
	yesNo   []bool
	choices []string

	// maxDeals limits how many "deal" acknowledgements are given.
	maxDeals int
	deals    int

	renders  []View
	prompts  []string
	betOpts  [][]int
	onBet    func()
	onChoice func()
}

func (s *scriptedUI) RequestBetChoice(ctx context.Context, options []int) (int, error) {
	s.betOpts = append(s.betOpts, options)
	if s.onBet != nil {
		s.onBet()
	}
	if len(s.bets) == 0 {
		return 0, ErrInputClosed
	}
	b := s.bets[0]
	s.bets = s.bets[1:]
	return b, nil
}

func (s *scriptedUI) RequestContinue(ctx context.Context, prompt string) error {
	s.prompts = append(s.prompts, prompt)
	if prompt == dealPrompt {
		if s.maxDeals > 0 && s.deals >= s.maxDeals {
			return ErrInputClosed
		}
		s.deals++
	}
	return nil
}

func (s *scriptedUI) RequestHoldSelection(ctx context.Context, handSize int) ([]int, error) {
	if len(s.holds) == 0 {
		return nil, ErrInputClosed
	}
	h := s.holds[0]
	s.holds = s.holds[1:]
	return h, nil
}

func (s *scriptedUI) RequestYesNo(ctx context.Context, prompt string) (bool, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.yesNo) == 0 {
		return false, ErrInputClosed
	}
	v := s.yesNo[0]
	s.yesNo = s.yesNo[1:]
	return v, nil
}

func (s *scriptedUI) RequestChoice(ctx context.Context, prompt string, options []string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.onChoice != nil {
		s.onChoice()
	}
	if len(s.choices) == 0 {
		return "", ErrInputClosed
	}
	c := s.choices[0]
	s.choices = s.choices[1:]
	return c, nil
}

func (s *scriptedUI) Render(view View) {
	s.renders = append(s.renders, view)
}

func (s *scriptedUI) lastRender() View {
	return s.renders[len(s.renders)-1]
}

func (s *scriptedUI) sawMessage(msg string) bool {
	for _, v := range s.renders {
		if v.Message == msg {
			return true
		}
	}
	return false
}

// scriptedRand returns queued values, then zero.
type scriptedRand struct {
	values []int
}

func (r *scriptedRand) IntN(n int) int {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v % n
}

// stackedDecks hands out one prepared deck per round.
func stackedDecks(t *testing.T, decks ...string) func() *deck.Deck {
	t.Helper()
	i := 0
	return func() *deck.Deck {
		if i >= len(decks) {
			t.Fatalf("round %d needs a deck but only %d were stacked", i+1, len(decks))
		}
		d := deck.NewFromCards(deck.MustParseCards(decks[i]))
		i++
		return d
	}
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

// recorder keeps every published event.
type recorder struct {
	events []GameEvent
}

func (r *recorder) OnEvent(e GameEvent) {
	r.events = append(r.events, e)
}

func eventsOf[T GameEvent](r *recorder) []T {
	var out []T
	for _, e := range r.events {
		if v, ok := e.(T); ok {
			out = append(out, v)
		}
	}
	return out
}
