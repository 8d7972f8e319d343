package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/videopoker/internal/deck"
	"github.com/lox/videopoker/internal/evaluator"
	"github.com/lox/videopoker/internal/randutil"
)

const (
	// DefaultStartingCredits is the bankroll a new session begins with.
	DefaultStartingCredits = 100
)

// DefaultBets are the bet sizes offered when none are configured.
var DefaultBets = []int{5, 10, 20, 30}

// State is the persistent part of a session
type State struct {
	Phase   Phase
	Credits int
	Bet     int
	Hand    *deck.Hand
	Held    []int
}

// round is scratch state that lives for a single deal
type round struct {
	number int
	deck   *deck.Deck
	result evaluator.Result
	win    int
}

// Engine runs a video poker session against an Interface
type Engine struct {
	ui     Interface
	rng    randutil.Source
	logger *log.Logger
	clock  quartz.Clock
	bus    EventBus

	startingCredits int
	bets            []int
	revealDelay     time.Duration
	newDeck         func() *deck.Deck

	state   State
	round   round
	summary Summary
	started time.Time
}

// EngineOption configures an Engine during creation.
type EngineOption func(*Engine)

// WithStartingCredits sets the opening bankroll. Default is 100.
func WithStartingCredits(credits int) EngineOption {
	return func(e *Engine) {
		e.startingCredits = credits
	}
}

// WithBets sets the bet sizes offered at session start.
func WithBets(bets []int) EngineOption {
	return func(e *Engine) {
		e.bets = slices.Clone(bets)
	}
}

// WithRevealDelay pauses between a gamble guess and the reveal.
func WithRevealDelay(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.revealDelay = d
	}
}

// WithClock sets the clock used for the reveal delay and session duration.
func WithClock(clock quartz.Clock) EngineOption {
	return func(e *Engine) {
		e.clock = clock
	}
}

// WithEventBus publishes session events to bus.
func WithEventBus(bus EventBus) EngineOption {
	return func(e *Engine) {
		e.bus = bus
	}
}

// WithDeckFactory overrides how each round's deck is produced. The factory
// must return a ready-to-deal deck; the engine does not shuffle it.
func WithDeckFactory(f func() *deck.Deck) EngineOption {
	return func(e *Engine) {
		e.newDeck = f
	}
}

// NewEngine creates an engine. rng is the one random source for the
// session; it shuffles every deck and draws every gamble colour.
func NewEngine(ui Interface, rng randutil.Source, logger *log.Logger, opts ...EngineOption) *Engine {
	if ui == nil {
		panic("ui is required")
	}
	if rng == nil {
		panic("rng is required")
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	e := &Engine{
		ui:              ui,
		rng:             rng,
		logger:          logger.WithPrefix("engine"),
		clock:           quartz.NewReal(),
		bus:             NewEventBus(),
		startingCredits: DefaultStartingCredits,
		bets:            slices.Clone(DefaultBets),
	}
	e.newDeck = e.shuffledDeck

	for _, opt := range opts {
		opt(e)
	}

	e.state = State{Phase: AwaitingBet, Credits: e.startingCredits}
	return e
}

func (e *Engine) shuffledDeck() *deck.Deck {
	d := deck.New(e.rng)
	d.Shuffle()
	return d
}

// State returns a copy of the session state
func (e *Engine) State() State {
	s := e.state
	s.Held = slices.Clone(e.state.Held)
	if e.state.Hand != nil {
		h := *e.state.Hand
		s.Hand = &h
	}
	return s
}

// EventBus returns the bus events are published on
func (e *Engine) EventBus() EventBus {
	return e.bus
}

// Run plays rounds until the session ends. Running out of credits, closed
// input and ctx cancellation all end the session normally; only internal
// faults such as an exhausted deck are returned as errors.
func (e *Engine) Run(ctx context.Context) (Summary, error) {
	e.started = e.clock.Now()
	e.summary = Summary{
		StartingCredits: e.startingCredits,
		Categories:      make(map[evaluator.Category]int),
	}

	e.logger.Info("Session starting", "credits", e.state.Credits, "bets", e.bets)

	for e.state.Phase != GameOver {
		if ctx.Err() != nil {
			e.end(EndCancelled)
			break
		}

		phase := e.state.Phase
		next, err := e.step(ctx)
		switch {
		case err == nil:
			e.logger.Debug("Phase transition", "from", phase, "to", next)
			e.state.Phase = next
		case errors.Is(err, ErrInputClosed):
			e.logger.Info("Input closed, ending session", "phase", phase)
			e.end(EndInputClosed)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			e.logger.Info("Session cancelled", "phase", phase)
			e.end(EndCancelled)
		default:
			e.logger.Error("Session aborted", "phase", phase, "error", err)
			e.end(EndFault)
			return e.summary, fmt.Errorf("%s: %w", phase, err)
		}
	}

	return e.summary, nil
}

func (e *Engine) step(ctx context.Context) (Phase, error) {
	switch e.state.Phase {
	case AwaitingBet:
		return e.awaitBet(ctx)
	case RoundStart:
		return e.startRound(ctx)
	case Dealt:
		return e.deal()
	case HoldSelection:
		return e.selectHolds(ctx)
	case FinalHand:
		return e.drawAndEvaluate(ctx)
	case Gamble:
		return e.gamble(ctx)
	case Payout:
		return e.payout()
	default:
		return GameOver, fmt.Errorf("no transition from phase %s", e.state.Phase)
	}
}

func (e *Engine) view(message string) View {
	return View{
		Hand:    e.state.Hand,
		Credits: e.state.Credits,
		Bet:     e.state.Bet,
		Message: message,
	}
}

func (e *Engine) awaitBet(ctx context.Context) (Phase, error) {
	e.ui.Render(e.view("Welcome to Jacks or Better! Select your bet."))

	bet, err := e.ui.RequestBetChoice(ctx, slices.Clone(e.bets))
	if err != nil {
		return AwaitingBet, err
	}
	if !slices.Contains(e.bets, bet) {
		return AwaitingBet, fmt.Errorf("bet %d is not one of %v", bet, e.bets)
	}

	e.state.Bet = bet
	e.summary.Bet = bet
	e.logger.Info("Bet selected", "bet", bet)
	return RoundStart, nil
}

func (e *Engine) startRound(ctx context.Context) (Phase, error) {
	if e.state.Credits < e.state.Bet {
		return e.gameOver(), nil
	}

	e.state.Hand = nil
	e.state.Held = nil
	e.ui.Render(e.view(fmt.Sprintf("Bet: %d credits per hand", e.state.Bet)))
	if err := e.ui.RequestContinue(ctx, "Press Enter to deal a hand..."); err != nil {
		return RoundStart, err
	}

	before := e.state.Credits
	e.state.Credits -= e.state.Bet
	e.round = round{number: e.summary.Rounds + 1}
	e.summary.Rounds++
	e.summary.TotalWagered += e.state.Bet

	e.logger.Info("Round started", "round", e.round.number, "bet", e.state.Bet, "credits", e.state.Credits)
	e.bus.Publish(RoundStartEvent{
		Round:         e.round.number,
		Bet:           e.state.Bet,
		CreditsBefore: before,
		CreditsAfter:  e.state.Credits,
		timestamp:     e.clock.Now(),
	})
	return Dealt, nil
}

func (e *Engine) deal() (Phase, error) {
	e.round.deck = e.newDeck()

	hand, err := e.round.deck.DealHand()
	if err != nil {
		return Dealt, fmt.Errorf("dealing initial hand: %w", err)
	}
	e.state.Hand = &hand

	e.logger.Debug("Hand dealt", "round", e.round.number, "hand", hand)
	e.bus.Publish(HandDealtEvent{Round: e.round.number, Hand: hand, timestamp: e.clock.Now()})
	return HoldSelection, nil
}

func (e *Engine) selectHolds(ctx context.Context) (Phase, error) {
	v := e.view("Select cards to hold by entering their numbers (e.g. 134 for cards 1, 3, and 4).\nPress Enter to hold none.")
	v.ShowPositions = true
	e.ui.Render(v)

	held, err := e.ui.RequestHoldSelection(ctx, deck.HandSize)
	if err != nil {
		return HoldSelection, err
	}
	e.state.Held = normalizeHolds(held, deck.HandSize)
	e.logger.Debug("Holds selected", "round", e.round.number, "held", e.state.Held)

	if len(e.state.Held) == 0 {
		e.ui.Render(e.view("No cards selected to hold. All cards will be replaced."))
		if err := e.ui.RequestContinue(ctx, "Press Enter to continue drawing new cards."); err != nil {
			return HoldSelection, err
		}
	}
	return FinalHand, nil
}

func (e *Engine) drawAndEvaluate(ctx context.Context) (Phase, error) {
	hand := *e.state.Hand
	for i := range hand {
		if slices.Contains(e.state.Held, i) {
			continue
		}
		card, err := e.round.deck.DealOne()
		if err != nil {
			return FinalHand, fmt.Errorf("drawing replacement for position %d: %w", i, err)
		}
		hand[i] = card
	}
	e.state.Hand = &hand

	result := evaluator.Evaluate(hand)
	e.round.result = result
	e.round.win = e.state.Bet * result.Multiplier
	e.summary.Categories[result.Category]++

	e.logger.Info("Hand evaluated",
		"round", e.round.number,
		"hand", hand,
		"category", result.Category,
		"win", e.round.win)
	e.bus.Publish(HandEvaluatedEvent{
		Round:     e.round.number,
		Held:      slices.Clone(e.state.Held),
		Final:     hand,
		Result:    result,
		WinAmount: e.round.win,
		timestamp: e.clock.Now(),
	})

	v := e.view("Final Hand: No winning combination.")
	if result.IsWin() {
		v.Message = fmt.Sprintf("Final Hand: %s!", result.Category)
		v.Highlight = result.Category
		v.WinAmount = e.round.win
		v.Highlighted = result.Positions
	}
	e.ui.Render(v)
	if err := e.ui.RequestContinue(ctx, "Press Enter to continue..."); err != nil {
		return FinalHand, err
	}

	if e.round.win > 0 {
		return Gamble, nil
	}
	return Payout, nil
}

func (e *Engine) gamble(ctx context.Context) (Phase, error) {
	d := NewDoubleUp(e.round.win)

	for !d.Done() {
		var err error
		switch d.Phase() {
		case GambleOffered:
			var yes bool
			yes, err = e.ui.RequestYesNo(ctx, fmt.Sprintf("You won %d credits! Do you want to gamble your win to double it?", d.Win()))
			if err == nil {
				err = d.Accept(yes)
			}
		case GambleGuessing:
			err = e.guess(ctx, d)
		case GambleWon:
			var again bool
			again, err = e.ui.RequestYesNo(ctx, fmt.Sprintf("Do you want to gamble your win of %d credits again?", d.Win()))
			if err == nil {
				err = d.Continue(again)
			}
		}
		if err != nil {
			return Gamble, err
		}
	}

	e.round.win = d.Win()
	return Payout, nil
}

func (e *Engine) guess(ctx context.Context, d *DoubleUp) error {
	choice, err := e.ui.RequestChoice(ctx, "Gamble: Guess the card color:", slices.Clone(GambleColors))
	if err != nil {
		return err
	}
	if !slices.Contains(GambleColors, choice) {
		return fmt.Errorf("gamble guess %q is not one of %v", choice, GambleColors)
	}

	if err := e.pause(ctx); err != nil {
		return err
	}

	step, err := d.Guess(Color(choice), e.drawColor())
	if err != nil {
		return err
	}

	e.logger.Info("Gamble", "round", e.round.number, "guess", step.Guess, "drawn", step.Drawn, "win", step.WinAfter)
	e.bus.Publish(GambleStepEvent{Round: e.round.number, Step: step, timestamp: e.clock.Now()})

	if step.Won {
		e.summary.GamblesWon++
		v := e.view(fmt.Sprintf("Gamble successful! The card was %s. Your win is now %d credits.", step.Drawn, step.WinAfter))
		v.Highlight = e.round.result.Category
		v.WinAmount = step.WinAfter
		e.ui.Render(v)
		return nil
	}

	e.summary.GamblesLost++
	e.ui.Render(e.view(fmt.Sprintf("Gamble failed! The card was %s. You lose your win for this hand.", step.Drawn)))
	return e.ui.RequestContinue(ctx, "Press Enter to continue...")
}

func (e *Engine) drawColor() Color {
	if e.rng.IntN(2) == 0 {
		return Red
	}
	return Black
}

// pause waits out the reveal delay, if any
func (e *Engine) pause(ctx context.Context) error {
	if e.revealDelay <= 0 {
		return nil
	}
	timer := e.clock.NewTimer(e.revealDelay, "gamble", "reveal")
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (e *Engine) payout() (Phase, error) {
	awarded := e.round.win
	e.state.Credits += awarded
	e.summary.TotalPaid += awarded
	if awarded > e.summary.BiggestWin {
		e.summary.BiggestWin = awarded
	}

	e.logger.Info("Payout", "round", e.round.number, "awarded", awarded, "credits", e.state.Credits)
	e.bus.Publish(PayoutEvent{
		Round:        e.round.number,
		Awarded:      awarded,
		CreditsAfter: e.state.Credits,
		timestamp:    e.clock.Now(),
	})

	if e.state.Credits < e.state.Bet {
		return e.gameOver(), nil
	}
	return RoundStart, nil
}

// gameOver announces the end of a session that ran out of credits
func (e *Engine) gameOver() Phase {
	e.ui.Render(e.view("Not enough credits to play. Game over!"))
	e.end(EndInsufficientCredits)
	return GameOver
}

func (e *Engine) end(reason EndReason) {
	e.state.Phase = GameOver
	e.summary.EndReason = reason
	e.summary.FinalCredits = e.state.Credits
	e.summary.Duration = e.clock.Since(e.started)

	e.logger.Info("Session over", "reason", reason, "rounds", e.summary.Rounds, "credits", e.state.Credits)
	e.bus.Publish(GameOverEvent{Summary: e.summary, timestamp: e.clock.Now()})
}
