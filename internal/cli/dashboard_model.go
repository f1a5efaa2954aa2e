package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexmarten/strive/internal/cli/formatter"
	"github.com/alexmarten/strive/internal/domain"
)

// goalsLoadedMsg signals that the goal list has been (re)loaded.
type goalsLoadedMsg struct {
	goals []domain.Goal
	err   error
}

// progressAppliedMsg signals a completed progress bump.
type progressAppliedMsg struct {
	toast string
	err   error
}

// dashboardKeys holds the dashboard key bindings.
type dashboardKeys struct {
	Up      key.Binding
	Down    key.Binding
	Filter  key.Binding
	Sort    key.Binding
	Inc     key.Binding
	Dec     key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func newDashboardKeys() dashboardKeys {
	return dashboardKeys{
		Up:      key.NewBinding(key.WithKeys("up", "k")),
		Down:    key.NewBinding(key.WithKeys("down", "j")),
		Filter:  key.NewBinding(key.WithKeys("f")),
		Sort:    key.NewBinding(key.WithKeys("s")),
		Inc:     key.NewBinding(key.WithKeys("+", "=")),
		Dec:     key.NewBinding(key.WithKeys("-")),
		Refresh: key.NewBinding(key.WithKeys("r")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	}
}

// filterCycle is the order the f key steps through: All first, then
// each category.
var filterCycle = append([]string{domain.CategoryAll}, func() []string {
	out := make([]string, len(domain.Categories))
	for i, c := range domain.Categories {
		out[i] = string(c)
	}
	return out
}()...)

// dashboardModel is the bubbletea model behind `strive dashboard`.
type dashboardModel struct {
	app  *App
	keys dashboardKeys

	goals     []domain.Goal
	cursor    int
	filterIdx int
	sortKey   domain.SortKey

	toast    string
	err      error
	loading  bool
	quitting bool
	width    int
}

func newDashboardModel(app *App) dashboardModel {
	return dashboardModel{
		app:     app,
		keys:    newDashboardKeys(),
		sortKey: app.defaultSort(),
		loading: true,
		width:   80,
	}
}

func (m dashboardModel) filter() string {
	return filterCycle[m.filterIdx]
}

// loadGoals fetches the list under the current filter and sort.
func (m dashboardModel) loadGoals() tea.Cmd {
	app, filter, sortKey := m.app, m.filter(), m.sortKey
	return func() tea.Msg {
		goals, err := app.Goals.List(context.Background(), filter, sortKey)
		return goalsLoadedMsg{goals: goals, err: err}
	}
}

// bumpProgress shifts the selected goal's current value by delta and
// reports any milestone crossed.
func (m dashboardModel) bumpProgress(delta float64) tea.Cmd {
	if m.cursor >= len(m.goals) {
		return nil
	}
	app, g := m.app, m.goals[m.cursor]
	return func() tea.Msg {
		upd, err := app.Goals.UpdateProgress(context.Background(), g.ID, g.Current+delta)
		if err != nil {
			return progressAppliedMsg{err: err}
		}
		toast := ""
		if upd.MilestoneHit {
			toast = formatter.MilestoneToast(upd.Milestone)
		}
		return progressAppliedMsg{toast: toast}
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return m.loadGoals()
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case goalsLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.goals = msg.goals
		if m.cursor >= len(m.goals) {
			m.cursor = len(m.goals) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case progressAppliedMsg:
		m.err = msg.err
		if msg.toast != "" {
			m.toast = msg.toast
		}
		return m, m.loadGoals()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.goals)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Filter):
			m.filterIdx = (m.filterIdx + 1) % len(filterCycle)
			m.cursor = 0
			m.toast = ""
			return m, m.loadGoals()

		case key.Matches(msg, m.keys.Sort):
			if m.sortKey == domain.SortByProgress {
				m.sortKey = domain.SortByDeadline
			} else {
				m.sortKey = domain.SortByProgress
			}
			m.toast = ""
			return m, m.loadGoals()

		case key.Matches(msg, m.keys.Inc):
			m.toast = ""
			return m, m.bumpProgress(1)

		case key.Matches(msg, m.keys.Dec):
			m.toast = ""
			return m, m.bumpProgress(-1)

		case key.Matches(msg, m.keys.Refresh):
			m.toast = ""
			return m, m.loadGoals()
		}
	}

	return m, nil
}

func (m dashboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.Header("Dashboard") + "\n")
	b.WriteString(fmt.Sprintf("%s %s   %s %s\n\n",
		formatter.Dim("filter:"), formatter.Bold(m.filter()),
		formatter.Dim("sort:"), formatter.Bold(string(m.sortKey))))

	switch {
	case m.loading:
		b.WriteString(formatter.Dim("Loading goals...") + "\n")
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	case len(m.goals) == 0:
		b.WriteString(formatter.Dim("No goals. Add one with `strive goal add`.") + "\n")
	default:
		b.WriteString(m.renderRows())
	}

	if m.toast != "" {
		b.WriteString("\n" + m.toast + "\n")
	}

	b.WriteString("\n" + formatter.Dim("↑/↓ move · f filter · s sort · +/- progress · r refresh · q quit"))
	return b.String()
}

func (m dashboardModel) renderRows() string {
	barWidth := m.app.chartWidth() / 2
	titleWidth := 0
	for _, g := range m.goals {
		if w := lipgloss.Width(g.Title); w > titleWidth {
			titleWidth = w
		}
	}

	var b strings.Builder
	for i, g := range m.goals {
		cursor := "  "
		title := g.Title
		if i == m.cursor {
			cursor = formatter.StyleHeader.Render("> ")
			title = formatter.Bold(title)
		}

		pad := titleWidth - lipgloss.Width(g.Title)
		b.WriteString(fmt.Sprintf("%s%s%s  %s %s  %s  %s\n",
			cursor,
			title,
			strings.Repeat(" ", pad),
			formatter.RenderCompactBar(g.Progress/100, barWidth, i != m.cursor),
			formatter.Dim(fmt.Sprintf("%3.0f%%", g.Progress)),
			formatter.CategoryBadge(g.Category),
			formatter.DeadlineStyled(g.Deadline)))
	}
	return b.String()
}
