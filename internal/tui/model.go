package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/videopoker/internal/display"
	"github.com/lox/videopoker/internal/game"
)

type requestKind int

const (
	askBet requestKind = iota
	askContinue
	askHolds
	askYesNo
	askChoice
)

// request is one pending question from the engine. The model answers it
// exactly once on reply.
type request struct {
	kind     requestKind
	prompt   string
	bets     []int
	options  []string
	handSize int
	reply    chan reply
}

type reply struct {
	bet    int
	holds  []int
	yes    bool
	choice string
	err    error
}

func newRequest(kind requestKind, prompt string) *request {
	return &request{kind: kind, prompt: prompt, reply: make(chan reply, 1)}
}

func (r *request) answer(rep reply) {
	select {
	case r.reply <- rep:
	default:
	}
}

// viewMsg replaces the table on screen
type viewMsg struct {
	view game.View
}

// doneMsg tells the program the session is over
type doneMsg struct{}

// Model is the Bubble Tea model for the video poker table
type Model struct {
	styles *display.Styles
	logger *log.Logger

	table viewport.Model
	input textinput.Model

	view    game.View
	pending *request
	status  string

	width       int
	height      int
	initialized bool
	quitting    bool
}

// NewModel creates the model. Content is styled with styles.
func NewModel(styles *display.Styles, logger *log.Logger) *Model {
	// sized properly once a WindowSizeMsg arrives
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "Press Enter to continue"
	ti.Focus()
	ti.CharLimit = 32
	ti.Width = 40
	ti.PromptStyle = InputPromptStyle
	ti.TextStyle = InputTextStyle
	ti.Prompt = "> "

	return &Model{
		styles: styles,
		logger: logger.WithPrefix("tui"),
		table:  vp,
		input:  ti,
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case doneMsg:
		m.quitting = true
		return m, tea.Quit

	case viewMsg:
		m.view = msg.view
		m.table.SetContent(m.styles.Table(msg.view))
		if m.table.Height > 0 {
			m.table.GotoTop()
		}

	case *request:
		m.ask(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.logger.Info("Player quit")
			if m.pending != nil {
				m.pending.answer(reply{err: game.ErrInputClosed})
				m.pending = nil
			}
			m.quitting = true
			return m, tea.Quit
		case "enter":
			m.submit(strings.TrimSpace(m.input.Value()))
			m.input.SetValue("")
			return m, nil
		case "up", "down", "pgup", "pgdown", "home", "end":
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) ask(req *request) {
	if m.pending != nil {
		m.logger.Warn("Replacing unanswered request", "prompt", m.pending.prompt)
	}
	m.pending = req
	m.status = ""

	switch req.kind {
	case askBet:
		m.input.Placeholder = fmt.Sprintf("One of %s", display.FormatBets(req.bets))
	case askHolds:
		m.input.Placeholder = "Card numbers, e.g. 134 (Enter holds none)"
	case askYesNo:
		m.input.Placeholder = "y or n"
	case askChoice:
		m.input.Placeholder = strings.Join(req.options, " or ")
	default:
		m.input.Placeholder = "Press Enter to continue"
	}
}

// submit answers the pending request with input, or explains why it can't
func (m *Model) submit(input string) {
	req := m.pending
	if req == nil {
		return
	}

	var rep reply
	switch req.kind {
	case askBet:
		bet, ok := display.ParseBet(input, req.bets)
		if !ok {
			m.status = fmt.Sprintf("Please choose one of: %s", display.FormatBets(req.bets))
			return
		}
		rep.bet = bet
	case askHolds:
		rep.holds = game.ParseHolds(input, req.handSize)
	case askYesNo:
		yes, ok := display.ParseYesNo(input)
		if !ok {
			m.status = "Please answer y or n."
			return
		}
		rep.yes = yes
	case askChoice:
		choice, ok := display.ParseChoice(input, req.options)
		if !ok {
			m.status = fmt.Sprintf("Please choose one of: %s", strings.Join(req.options, ", "))
			return
		}
		rep.choice = choice
	}

	m.logger.Debug("Answered", "prompt", req.prompt, "input", input)
	m.pending = nil
	m.status = ""
	req.answer(rep)
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	// Don't render until we have valid dimensions
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	inputContent := m.renderInputPane()
	inputHeight := lipgloss.Height(inputContent)

	paneWidth := max(m.width-2, 1)
	inputPane := InputPaneStyle.Width(paneWidth).Render(inputContent)

	tableHeight := max(m.height-inputHeight-4, 1)
	m.table.Width = paneWidth
	m.table.Height = tableHeight

	// On first proper sizing, reset to top to avoid starting scrolled down
	if !m.initialized && tableHeight > 1 {
		m.table.GotoTop()
		m.initialized = true
	}

	tablePane := TablePaneStyle.
		Width(paneWidth).
		Height(tableHeight).
		Render(m.table.View())

	return lipgloss.JoinVertical(lipgloss.Left, tablePane, inputPane)
}

func (m *Model) renderInputPane() string {
	var content strings.Builder

	if m.pending != nil {
		content.WriteString(m.styles.Prompt.Render(promptText(m.pending)))
	} else {
		content.WriteString(HelpStyle.Render("..."))
	}
	content.WriteString("\n")
	content.WriteString(m.input.View())
	content.WriteString("\n")

	if m.status != "" {
		content.WriteString(StatusStyle.Render(m.status))
	} else {
		content.WriteString(HelpStyle.Render("Enter to submit • ↑↓ PgUp/PgDn scroll table • Esc to quit"))
	}
	return content.String()
}

func promptText(req *request) string {
	switch req.kind {
	case askBet:
		return fmt.Sprintf("Select your bet (%s):", display.FormatBets(req.bets))
	case askYesNo:
		return req.prompt + " (y/n)"
	case askChoice:
		return fmt.Sprintf("%s (%s)", req.prompt, strings.Join(req.options, "/"))
	default:
		return req.prompt
	}
}
