package display

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	ThemeDefault = "default"
	ThemeMono    = "mono"
)

// Styles is the rendering configuration shared by the console and the TUI.
// It holds no state beyond the styles themselves.
type Styles struct {
	mono bool

	Banner      lipgloss.Style
	Credits     lipgloss.Style
	Heading     lipgloss.Style
	PayoutRow   lipgloss.Style
	PayoutHit   lipgloss.Style
	RedCard     lipgloss.Style
	BlackCard   lipgloss.Style
	WinningCard lipgloss.Style
	Label       lipgloss.Style
	Message     lipgloss.Style
	Win         lipgloss.Style
	Lose        lipgloss.Style
	Prompt      lipgloss.Style
	Error       lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles builds styles bound to r. The mono theme drops r to the ASCII
// profile so no colour or attribute sequences are emitted.
func NewStyles(r *lipgloss.Renderer, theme string) *Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	if theme == ThemeMono {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Styles{
		mono: theme == ThemeMono,

		Banner: r.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true),
		Credits: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		Heading: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		PayoutRow: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")),
		PayoutHit: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		RedCard: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
		BlackCard: r.NewStyle().
			Foreground(lipgloss.Color("#5DADE2")),
		WinningCard: r.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#04B575")),
		Label: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Message: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")),
		Win: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Lose: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Prompt: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Help: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

// Mono reports whether the styles emit plain text only
func (s *Styles) Mono() bool { return s.mono }
