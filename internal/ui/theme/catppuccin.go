package theme

import "github.com/charmbracelet/lipgloss"

var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Peach    = lipgloss.Color("#fab387")
	Red      = lipgloss.Color("#f38ba8")
	Blue     = lipgloss.Color("#89b4fa")

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot   = lipgloss.NewStyle().Foreground(Peach).Bold(true)

	// Calendar day cells.
	DayTicked = lipgloss.NewStyle().Foreground(Base).Background(Green)
	DayMissed = lipgloss.NewStyle().Foreground(Base).Background(Red)
	DayToday  = lipgloss.NewStyle().Foreground(Base).Background(Blue).Bold(true)
	DayFuture = lipgloss.NewStyle().Foreground(Subtext0)
)
