package display

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/lox/videopoker/internal/game"
	"github.com/muesli/termenv"
)

// Console is a line-based game.Interface over a reader and writer
type Console struct {
	out    io.Writer
	term   *termenv.Output
	styles *Styles
	logger *log.Logger
	clear  bool

	in       *bufio.Reader
	lines    chan string
	readOnce sync.Once
}

// ConsoleOption configures a Console
type ConsoleOption func(*Console)

// WithClearScreen clears the terminal before every render
func WithClearScreen(clear bool) ConsoleOption {
	return func(c *Console) {
		c.clear = clear
	}
}

// NewConsole creates a console reading answers from in
func NewConsole(in io.Reader, out io.Writer, styles *Styles, logger *log.Logger, opts ...ConsoleOption) *Console {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Console{
		out:    out,
		term:   termenv.NewOutput(out),
		styles: styles,
		logger: logger.WithPrefix("console"),
		in:     bufio.NewReader(in),
		lines:  make(chan string),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// readLines feeds lines to the request methods so they can also watch ctx.
// It stops after the first read error.
func (c *Console) readLines() {
	for {
		text, err := c.in.ReadString('\n')
		if text != "" {
			c.lines <- strings.TrimRight(text, "\r\n")
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				c.logger.Warn("Input read failed", "error", err)
			}
			close(c.lines)
			return
		}
	}
}

func (c *Console) ask(ctx context.Context, prompt string) (string, error) {
	c.readOnce.Do(func() { go c.readLines() })

	fmt.Fprint(c.out, c.styles.Prompt.Render(prompt)+" ")

	select {
	case <-ctx.Done():
		fmt.Fprintln(c.out)
		return "", ctx.Err()
	case text, ok := <-c.lines:
		if !ok {
			fmt.Fprintln(c.out)
			return "", game.ErrInputClosed
		}
		return text, nil
	}
}

func (c *Console) complain(msg string) {
	fmt.Fprintln(c.out, c.styles.Error.Render(msg))
}

// RequestBetChoice implements game.Interface
func (c *Console) RequestBetChoice(ctx context.Context, options []int) (int, error) {
	if len(options) == 0 {
		return 0, errors.New("no bets to choose from")
	}
	prompt := fmt.Sprintf("Select your bet (%s) [%d]:", FormatBets(options), options[0])
	for {
		answer, err := c.ask(ctx, prompt)
		if err != nil {
			return 0, err
		}
		if bet, ok := ParseBet(answer, options); ok {
			return bet, nil
		}
		c.complain(fmt.Sprintf("Please choose one of: %s", FormatBets(options)))
	}
}

// RequestContinue implements game.Interface
func (c *Console) RequestContinue(ctx context.Context, prompt string) error {
	_, err := c.ask(ctx, prompt)
	return err
}

// RequestHoldSelection implements game.Interface
func (c *Console) RequestHoldSelection(ctx context.Context, handSize int) ([]int, error) {
	answer, err := c.ask(ctx, "Enter card numbers to hold:")
	if err != nil {
		return nil, err
	}
	return game.ParseHolds(answer, handSize), nil
}

// RequestYesNo implements game.Interface
func (c *Console) RequestYesNo(ctx context.Context, prompt string) (bool, error) {
	for {
		answer, err := c.ask(ctx, prompt+" (y/n)")
		if err != nil {
			return false, err
		}
		if yes, ok := ParseYesNo(answer); ok {
			return yes, nil
		}
		c.complain("Please answer y or n.")
	}
}

// RequestChoice implements game.Interface
func (c *Console) RequestChoice(ctx context.Context, prompt string, options []string) (string, error) {
	list := strings.Join(options, "/")
	for {
		answer, err := c.ask(ctx, fmt.Sprintf("%s (%s)", prompt, list))
		if err != nil {
			return "", err
		}
		if choice, ok := ParseChoice(answer, options); ok {
			return choice, nil
		}
		c.complain(fmt.Sprintf("Please choose one of: %s", strings.Join(options, ", ")))
	}
}

// Render implements game.Interface
func (c *Console) Render(view game.View) {
	if c.clear {
		c.term.ClearScreen()
	}
	fmt.Fprint(c.out, c.styles.Table(view))
}

// Summary prints the session report
func (c *Console) Summary(sum game.Summary) {
	fmt.Fprint(c.out, "\n"+c.styles.Summary(sum))
}
