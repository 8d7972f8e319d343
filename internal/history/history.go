// Package history keeps a per-round transcript of a session and writes it
// out as JSON when asked. It is a record of play, not a credit store.
package history

import (
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/coder/quartz"
	"github.com/lox/videopoker/internal/deck"
	"github.com/lox/videopoker/internal/fileutil"
	"github.com/lox/videopoker/internal/game"
)

// Round is one played hand
type Round struct {
	Number       int               `json:"number"`
	Bet          int               `json:"bet"`
	Dealt        *deck.Hand        `json:"dealt,omitempty"`
	Held         []int             `json:"held"`
	Final        *deck.Hand        `json:"final,omitempty"`
	Category     string            `json:"category,omitempty"`
	BaseWin      int               `json:"base_win"`
	Gamble       []game.GambleStep `json:"gamble,omitempty"`
	Awarded      int               `json:"awarded"`
	CreditsAfter int               `json:"credits_after"`
}

// Totals is the session summary in export form
type Totals struct {
	Rounds          int            `json:"rounds"`
	StartingCredits int            `json:"starting_credits"`
	FinalCredits    int            `json:"final_credits"`
	TotalWagered    int            `json:"total_wagered"`
	TotalPaid       int            `json:"total_paid"`
	BiggestWin      int            `json:"biggest_win"`
	Hands           map[string]int `json:"hands"`
	GamblesWon      int            `json:"gambles_won"`
	GamblesLost     int            `json:"gambles_lost"`
	DurationMS      int64          `json:"duration_ms"`
	EndReason       string         `json:"end_reason"`
}

// Session is the exported transcript
type Session struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at,omitzero"`
	Rounds    []Round   `json:"rounds"`
	Totals    *Totals   `json:"totals,omitempty"`
}

// Recorder builds a Session from engine events. Subscribe it to the
// engine's event bus.
type Recorder struct {
	mu      sync.Mutex
	session Session
}

var _ game.EventSubscriber = (*Recorder)(nil)

// NewRecorder starts a transcript named id
func NewRecorder(id string, clock quartz.Clock) *Recorder {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Recorder{
		session: Session{
			ID:        id,
			StartedAt: clock.Now(),
			Rounds:    []Round{},
		},
	}
}

// OnEvent implements game.EventSubscriber
func (r *Recorder) OnEvent(event game.GameEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := event.(game.RoundStartEvent); ok {
		r.session.Rounds = append(r.session.Rounds, Round{Number: e.Round, Bet: e.Bet, Held: []int{}})
		return
	}
	if e, ok := event.(game.GameOverEvent); ok {
		r.session.EndedAt = e.Timestamp()
		r.session.Totals = totals(e.Summary)
		return
	}

	current := r.current()
	if current == nil {
		return
	}
	switch e := event.(type) {
	case game.HandDealtEvent:
		hand := e.Hand
		current.Dealt = &hand
	case game.HandEvaluatedEvent:
		current.Held = slices.Clone(e.Held)
		final := e.Final
		current.Final = &final
		current.Category = e.Result.Category.String()
		current.BaseWin = e.WinAmount
	case game.GambleStepEvent:
		current.Gamble = append(current.Gamble, e.Step)
	case game.PayoutEvent:
		current.Awarded = e.Awarded
		current.CreditsAfter = e.CreditsAfter
	}
}

func (r *Recorder) current() *Round {
	if len(r.session.Rounds) == 0 {
		return nil
	}
	return &r.session.Rounds[len(r.session.Rounds)-1]
}

func totals(s game.Summary) *Totals {
	hands := make(map[string]int, len(s.Categories))
	for category, n := range s.Categories {
		hands[category.String()] = n
	}

	return &Totals{
		Rounds:          s.Rounds,
		StartingCredits: s.StartingCredits,
		FinalCredits:    s.FinalCredits,
		TotalWagered:    s.TotalWagered,
		TotalPaid:       s.TotalPaid,
		BiggestWin:      s.BiggestWin,
		Hands:           hands,
		GamblesWon:      s.GamblesWon,
		GamblesLost:     s.GamblesLost,
		DurationMS:      s.Duration.Milliseconds(),
		EndReason:       string(s.EndReason),
	}
}

// Session returns a copy of the transcript so far
func (r *Recorder) Session() Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.session
	s.Rounds = make([]Round, len(r.session.Rounds))
	for i, round := range r.session.Rounds {
		round.Held = slices.Clone(round.Held)
		round.Gamble = slices.Clone(round.Gamble)
		s.Rounds[i] = round
	}
	if r.session.Totals != nil {
		t := *r.session.Totals
		s.Totals = &t
	}
	return s
}

// WriteFile writes the transcript as indented JSON, atomically
func (r *Recorder) WriteFile(path string) error {
	if err := fileutil.WriteJSONAtomic(path, r.Session(), 0o644); err != nil {
		return fmt.Errorf("writing history: %w", err)
	}
	return nil
}

// Decode parses a transcript written by WriteFile
func Decode(data []byte) (Session, error) {
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return Session{}, fmt.Errorf("decoding history: %w", err)
	}
	return s, nil
}
