// Package statistics accumulates per-hand results for a session: the
// distribution of net credits per hand in units of the bet, return to
// player, and how much the double-up added or cost.
package statistics

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/lox/videopoker/internal/game"
)

// HandResult is the outcome of a single round
type HandResult struct {
	Bet     int  // credits wagered
	BaseWin int  // payout before any gamble
	Awarded int  // credits actually paid
	Gambled bool // at least one double-up guess was made
}

// Net returns the round's credit change
func (r HandResult) Net() int {
	return r.Awarded - r.Bet
}

// Statistics tracks session results. Net values are in bets per hand so
// sessions at different bet sizes compare directly.
type Statistics struct {
	Hands   int
	SumNet  float64
	SumNet2 float64   // Sum of squares for variance calculation
	Values  []float64 // Store all values for median/percentile calculation

	Wagered int
	Paid    int

	GambledHands int
	GambleDelta  int // Awarded minus BaseWin over gambled hands
	BaseWins     int // hands with a paying final hand
}

// Mean returns the mean net result in bets per hand
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumNet / float64(s.Hands)
}

// Variance returns the sample variance of all results
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumNet2 - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

// StdDev returns the sample standard deviation of all results
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// ReturnToPlayer is credits paid over credits wagered
func (s *Statistics) ReturnToPlayer() float64 {
	if s.Wagered == 0 {
		return 0
	}
	return float64(s.Paid) / float64(s.Wagered)
}

// Add incorporates a round. Rounds with a zero bet are ignored.
func (s *Statistics) Add(result HandResult) {
	if result.Bet <= 0 {
		return
	}
	net := float64(result.Net()) / float64(result.Bet)
	s.Hands++
	s.SumNet += net
	s.SumNet2 += net * net
	s.Values = append(s.Values, net)

	s.Wagered += result.Bet
	s.Paid += result.Awarded
	if result.BaseWin > 0 {
		s.BaseWins++
	}
	if result.Gambled {
		s.GambledHands++
		s.GambleDelta += result.Awarded - result.BaseWin
	}
}

// Median returns the median value of all results
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Validate checks the accounting is consistent
func (s *Statistics) Validate() error {
	if s.Hands <= 0 {
		return fmt.Errorf("invalid hands count: %d", s.Hands)
	}
	if len(s.Values) != s.Hands {
		return fmt.Errorf("values array length (%d) does not match hands count (%d)",
			len(s.Values), s.Hands)
	}
	if s.BaseWins > s.Hands || s.GambledHands > s.BaseWins {
		return fmt.Errorf("win counts out of range: hands=%d wins=%d gambled=%d",
			s.Hands, s.BaseWins, s.GambledHands)
	}
	if s.Paid < 0 || s.Wagered <= 0 {
		return fmt.Errorf("ledger mismatch: wagered=%d paid=%d", s.Wagered, s.Paid)
	}
	return nil
}

// Tracker feeds Statistics from engine events
type Tracker struct {
	mu      sync.Mutex
	stats   Statistics
	current *HandResult
}

var _ game.EventSubscriber = (*Tracker)(nil)

// NewTracker returns an empty tracker
func NewTracker() *Tracker {
	return &Tracker{}
}

// OnEvent implements game.EventSubscriber
func (t *Tracker) OnEvent(event game.GameEvent) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch e := event.(type) {
	case game.RoundStartEvent:
		t.current = &HandResult{Bet: e.Bet}
	case game.HandEvaluatedEvent:
		if t.current != nil {
			t.current.BaseWin = e.WinAmount
		}
	case game.GambleStepEvent:
		if t.current != nil {
			t.current.Gambled = true
		}
	case game.PayoutEvent:
		if t.current != nil {
			t.current.Awarded = e.Awarded
			t.stats.Add(*t.current)
			t.current = nil
		}
	}
}

// Statistics returns a copy of the results so far. A round still in play
// is not included.
func (t *Tracker) Statistics() Statistics {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.stats
	s.Values = append([]float64(nil), t.stats.Values...)
	return s
}
