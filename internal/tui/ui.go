package tui

import (
	"context"
	"errors"
	"io"
	"slices"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/lox/videopoker/internal/display"
	"github.com/lox/videopoker/internal/game"
	"golang.org/x/sync/errgroup"
)

// UI is a game.Interface backed by a Bubble Tea program. Requests are posted
// into the program as messages and answered on a per-request channel, so the
// engine and the program share no state.
type UI struct {
	model  *Model
	logger *log.Logger
	opts   []tea.ProgramOption

	send     func(tea.Msg)
	done     chan struct{}
	doneOnce sync.Once
}

// New creates a UI. opts are passed to tea.NewProgram when Run starts it.
func New(styles *display.Styles, logger *log.Logger, opts ...tea.ProgramOption) *UI {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &UI{
		model:  NewModel(styles, logger),
		logger: logger.WithPrefix("tui"),
		opts:   opts,
		done:   make(chan struct{}),
	}
}

// Run starts the program and play together and waits for both. play gets a
// context that is cancelled if either side fails. Quitting the program ends
// any pending request with game.ErrInputClosed.
func (u *UI) Run(ctx context.Context, play func(context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)

	program := tea.NewProgram(u.model, append(slices.Clone(u.opts), tea.WithContext(gctx))...)
	u.send = program.Send

	g.Go(func() error {
		defer u.close()
		_, err := program.Run()
		if errors.Is(err, tea.ErrProgramKilled) && gctx.Err() != nil {
			// cancelled from outside or by play failing
			return nil
		}
		return err
	})

	g.Go(func() error {
		defer u.post(doneMsg{})
		return play(gctx)
	})

	return g.Wait()
}

func (u *UI) close() {
	u.doneOnce.Do(func() { close(u.done) })
}

func (u *UI) closed() bool {
	select {
	case <-u.done:
		return true
	default:
		return false
	}
}

func (u *UI) post(msg tea.Msg) {
	if u.closed() {
		return
	}
	u.send(msg)
}

func (u *UI) ask(ctx context.Context, req *request) (reply, error) {
	if u.closed() {
		return reply{}, game.ErrInputClosed
	}
	u.post(req)

	select {
	case <-ctx.Done():
		return reply{}, ctx.Err()
	case <-u.done:
		// the program may have answered just before exiting
		select {
		case rep := <-req.reply:
			return rep, rep.err
		default:
			return reply{}, game.ErrInputClosed
		}
	case rep := <-req.reply:
		return rep, rep.err
	}
}

// RequestBetChoice implements game.Interface
func (u *UI) RequestBetChoice(ctx context.Context, options []int) (int, error) {
	req := newRequest(askBet, "Select your bet:")
	req.bets = slices.Clone(options)
	rep, err := u.ask(ctx, req)
	return rep.bet, err
}

// RequestContinue implements game.Interface
func (u *UI) RequestContinue(ctx context.Context, prompt string) error {
	_, err := u.ask(ctx, newRequest(askContinue, prompt))
	return err
}

// RequestHoldSelection implements game.Interface
func (u *UI) RequestHoldSelection(ctx context.Context, handSize int) ([]int, error) {
	req := newRequest(askHolds, "Enter card numbers to hold:")
	req.handSize = handSize
	rep, err := u.ask(ctx, req)
	return rep.holds, err
}

// RequestYesNo implements game.Interface
func (u *UI) RequestYesNo(ctx context.Context, prompt string) (bool, error) {
	rep, err := u.ask(ctx, newRequest(askYesNo, prompt))
	return rep.yes, err
}

// RequestChoice implements game.Interface
func (u *UI) RequestChoice(ctx context.Context, prompt string, options []string) (string, error) {
	req := newRequest(askChoice, prompt)
	req.options = slices.Clone(options)
	rep, err := u.ask(ctx, req)
	return rep.choice, err
}

// Render implements game.Interface
func (u *UI) Render(view game.View) {
	if view.Hand != nil {
		hand := *view.Hand
		view.Hand = &hand
	}
	view.Highlighted = slices.Clone(view.Highlighted)
	u.post(viewMsg{view: view})
}
