package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	streakdto "github.com/abhishekmishra/streak-dot-txt/internal/modules/streak/dto"
	"github.com/abhishekmishra/streak-dot-txt/internal/ui/calendar"
	"github.com/abhishekmishra/streak-dot-txt/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

// StreakPort is the minimal interface the TUI requires.
type StreakPort interface {
	List(ctx context.Context) ([]streakdto.ListItemOutput, error)
	View(ctx context.Context, path, name string) (streakdto.StreakOutput, error)
	Mark(ctx context.Context, path, name string) (streakdto.MarkOutput, error)
}

// ─── async messages ──────────────────────────────────────────────────────────

type streaksLoadedMsg struct {
	streaks []streakdto.ListItemOutput
	err     error
}

type detailLoadedMsg struct {
	detail streakdto.StreakOutput
	err    error
}

type markedMsg struct {
	out streakdto.MarkOutput
	err error
}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Mark    key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Mark:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mark today")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Mark, k.Refresh, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Mark, k.Refresh}, {k.Help, k.Quit}}
}

// ─── list item ───────────────────────────────────────────────────────────────

type streakItem struct {
	streak streakdto.ListItemOutput
}

func (i streakItem) Title() string {
	marker := "✖"
	if i.streak.TickedToday {
		marker = "✓"
	}
	return marker + " " + i.streak.Name
}

func (i streakItem) Description() string {
	return fmt.Sprintf("%s  current %d  longest %d  %.0f%%",
		i.streak.TickType, i.streak.CurrentStreak, i.streak.LongestStreak, i.streak.TickAverage*100)
}

func (i streakItem) FilterValue() string { return i.streak.Name }

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model: a streak list on the left and a
// stats/calendar pane on the right. All business logic sits behind the port.
type Model struct {
	port StreakPort

	list    list.Model
	detail  streakdto.StreakOutput
	preview viewport.Model
	spinner spinner.Model
	keys    keyMap
	help    help.Model

	loading  bool
	showHelp bool
	status   string
	width    int
	height   int
}

func NewModel(port StreakPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Streaks"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		list:    l,
		preview: vp,
		spinner: sp,
		keys:    defaultKeys(),
		help:    help.New(),
		loading: true,
		status:  "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadStreaksCmd(), m.spinner.Tick)
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = m.width
		m.resize()

	case streaksLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.status = "list streaks: " + msg.err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.streaks))
		for i, s := range msg.streaks {
			items[i] = streakItem{streak: s}
		}
		cmds = append(cmds, m.list.SetItems(items))
		if len(msg.streaks) > 0 {
			cmds = append(cmds, m.loadDetailCmd(msg.streaks[0].Path))
		}

	case detailLoadedMsg:
		if msg.err != nil {
			m.status = "load streak: " + msg.err.Error()
		} else {
			m.detail = msg.detail
			m.preview.SetContent(m.renderDetail())
		}

	case markedMsg:
		if msg.err != nil {
			m.status = "mark: " + msg.err.Error()
			return m, nil
		}
		if msg.out.Marked {
			m.status = "marked " + msg.out.Name
		} else {
			m.status = msg.out.Name + " is already marked for this period"
		}
		cmds = append(cmds, m.loadStreaksCmd(), m.loadDetailCmd(msg.out.Path))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			cmds = append(cmds, m.loadStreaksCmd())
		case key.Matches(msg, m.keys.Mark):
			if item, ok := m.list.SelectedItem().(streakItem); ok {
				cmds = append(cmds, m.markCmd(item.streak.Path))
			}
		}
	}

	if !m.loading {
		prevIdx := m.list.Index()
		var lCmd tea.Cmd
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		if m.list.Index() != prevIdx {
			if item, ok := m.list.SelectedItem().(streakItem); ok {
				cmds = append(cmds, m.loadDetailCmd(item.streak.Path))
			}
		}

		var vCmd tea.Cmd
		m.preview, vCmd = m.preview.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	if m.showHelp {
		content := lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
		return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
	}
	if m.loading {
		content := lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading streaks…")
		return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
	}

	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(contentH).
		Render(m.list.View())

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(contentH - 2).
		Render(m.preview.View())

	content := lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("m:mark  r:refresh  ?:help  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

func (m Model) renderDetail() string {
	d := m.detail
	if d.Path == "" {
		return theme.Muted.Render("Select a streak to see details")
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(d.Name) + "\n\n")
	sb.WriteString(theme.Muted.Render("tick:    ") + d.TickType + "\n")
	sb.WriteString(theme.Muted.Render("file:    ") + d.Path + "\n")
	sb.WriteString(fmt.Sprintf("%s%d of %d periods  current %d  longest %d  %.0f%%\n",
		theme.Muted.Render("stats:   "),
		d.Stats.TickedPeriods, d.Stats.TotalPeriods,
		d.Stats.CurrentStreak, d.Stats.LongestStreak,
		d.Stats.TickAverage*100))
	if len(d.Years) > 0 {
		years := make([]string, len(d.Years))
		for i, y := range d.Years {
			years[i] = fmt.Sprintf("%d", y)
		}
		sb.WriteString(theme.Muted.Render("years:   ") + strings.Join(years, ", ") + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString(calendar.Year(d.Ticks, time.Now()))
	return sb.String()
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	statusH := 2
	listW := m.width * 4 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height-statusH)
	m.preview.Width = detailW - 4
	m.preview.Height = m.height - statusH - 4
}

func (m Model) loadStreaksCmd() tea.Cmd {
	return func() tea.Msg {
		streaks, err := m.port.List(context.Background())
		return streaksLoadedMsg{streaks: streaks, err: err}
	}
}

func (m Model) loadDetailCmd(path string) tea.Cmd {
	return func() tea.Msg {
		detail, err := m.port.View(context.Background(), path, "")
		return detailLoadedMsg{detail: detail, err: err}
	}
}

func (m Model) markCmd(path string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Mark(context.Background(), path, "")
		return markedMsg{out: out, err: err}
	}
}
