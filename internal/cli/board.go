package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/taskboard/pkg/ready"
	"github.com/matzehuels/taskboard/pkg/sim"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// boardCommand creates the board command for the interactive TUI.
func (c *CLI) boardCommand() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "board [planfile]",
		Short: "Explore a plan interactively in the terminal",
		Long: `Explore a plan interactively in the terminal.

Tasks are shown in four columns, one per state. Stepping completes the
lowest-ordered ready task; every dependent whose last dependency just
cleared moves into the ready column. Autoplay steps the board on a
timer until nothing is ready.

Keys:
  s / space   complete the next ready task
  a           toggle autoplay
  arrows, h/l move between columns
  j/k         move within a column
  u           suspend or resume the task under the cursor
  r           reload the plan onto a fresh board
  q           quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBoard(cmd.Context(), args[0], noCache)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable remote planfile caching")

	return cmd
}

// runBoard loads the plan and runs the TUI until the user quits.
func (c *CLI) runBoard(ctx context.Context, source string, noCache bool) error {
	p, err := c.loadPlan(ctx, source, noCache)
	if err != nil {
		return fmt.Errorf("load plan %s: %w", source, err)
	}

	session := sim.NewSession(nil)
	if err := session.Apply(p); err != nil {
		return err
	}

	model := newBoardModel(session, p.Title, func() error {
		session.Reset()
		return session.Apply(p)
	})
	_, err = tea.NewProgram(model, tea.WithContext(ctx)).Run()
	return err
}

// =============================================================================
// boardModel - Interactive board view
// =============================================================================

// boardColumns fixes the column order of the view.
var boardColumns = []ready.State{
	ready.StatePending,
	ready.StateBlocked,
	ready.StateWaiting,
	ready.StatePlanned,
}

var columnStyles = map[ready.State]lipgloss.Style{
	ready.StatePending: lipgloss.NewStyle().Foreground(colorGreen),
	ready.StateBlocked: lipgloss.NewStyle().Foreground(colorRed),
	ready.StateWaiting: lipgloss.NewStyle().Foreground(colorYellow),
	ready.StatePlanned: lipgloss.NewStyle().Foreground(colorDim),
}

// autoplayTickMsg drives autoplay stepping.
type autoplayTickMsg struct{}

const autoplayInterval = 600 * time.Millisecond

// boardModel is the bubbletea model for the interactive board.
type boardModel struct {
	session *sim.Session
	title   string
	reload  func() error

	column   int
	cursor   int
	autoplay bool
	status   string
}

func newBoardModel(session *sim.Session, title string, reload func() error) boardModel {
	return boardModel{session: session, title: title, reload: reload}
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func autoplayTick() tea.Cmd {
	return tea.Tick(autoplayInterval, func(time.Time) tea.Msg {
		return autoplayTickMsg{}
	})
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case autoplayTickMsg:
		if !m.autoplay {
			return m, nil
		}
		m = m.step()
		if !m.session.Deadlocked() && !m.session.Idle() {
			if _, err := m.session.Peek(); err == nil {
				return m, autoplayTick()
			}
		}
		m.autoplay = false
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "s", " ":
			m.autoplay = false
			return m.step(), nil
		case "a":
			m.autoplay = !m.autoplay
			if m.autoplay {
				m.status = "autoplay on"
				return m, autoplayTick()
			}
			m.status = "autoplay off"
		case "left", "h":
			if m.column > 0 {
				m.column--
				m.cursor = 0
			}
		case "right", "l":
			if m.column < len(boardColumns)-1 {
				m.column++
				m.cursor = 0
			}
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.currentColumn())-1 {
				m.cursor++
			}
		case "u":
			m = m.toggleSuspend()
		case "r":
			if err := m.reload(); err != nil {
				m.status = "reload failed: " + err.Error()
			} else {
				m.column, m.cursor, m.autoplay = 0, 0, false
				m.status = "plan reloaded"
			}
		}
	}
	return m, nil
}

// step completes the next ready task and records the outcome.
func (m boardModel) step() boardModel {
	task, err := m.session.Step()
	if err != nil {
		m.status = "nothing is ready"
		return m
	}
	m.status = "completed " + task
	m.cursor = m.clampCursor()
	return m
}

// toggleSuspend suspends a ready task or resumes a suspended one.
func (m boardModel) toggleSuspend() boardModel {
	tasks := m.currentColumn()
	if m.cursor >= len(tasks) {
		return m
	}
	task := tasks[m.cursor]

	switch boardColumns[m.column] {
	case ready.StatePending, ready.StateBlocked:
		if m.session.Suspend(task) {
			m.status = "suspended " + task
		}
	case ready.StateWaiting:
		if m.session.Resume(task) {
			m.status = "resumed " + task
		}
	case ready.StatePlanned:
		if m.session.Activate(task) {
			m.status = "activated " + task
		}
	}
	m.cursor = m.clampCursor()
	return m
}

func (m boardModel) currentColumn() []string {
	return m.session.Tasks(boardColumns[m.column])
}

func (m boardModel) clampCursor() int {
	if n := len(m.currentColumn()); m.cursor >= n {
		if n == 0 {
			return 0
		}
		return n - 1
	}
	return m.cursor
}

func (m boardModel) View() string {
	var b strings.Builder

	title := m.title
	if title == "" {
		title = "taskboard"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("s step  a autoplay  u suspend/resume/activate  r reload  q quit"))
	b.WriteString("\n\n")

	columns := make([]string, 0, len(boardColumns))
	for i, st := range boardColumns {
		columns = append(columns, m.renderColumn(i, st))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	b.WriteString("\n")

	switch {
	case m.session.Idle():
		b.WriteString(StyleSuccess.Render("✓ all tasks completed"))
	case m.session.Deadlocked():
		if cycle := m.session.Cycle(); cycle != nil {
			b.WriteString(StyleDanger.Render("✗ deadlock: " + strings.Join(cycle, " → ")))
		} else {
			b.WriteString(StyleDanger.Render("✗ deadlock: blocked tasks can never clear"))
		}
	case m.status != "":
		b.WriteString(listDimStyle.Render(m.status))
	}
	b.WriteString("\n")

	return b.String()
}

// renderColumn draws one state column with its header and cursor.
func (m boardModel) renderColumn(idx int, st ready.State) string {
	tasks := m.session.Tasks(st)
	style := columnStyles[st]

	var b strings.Builder
	header := fmt.Sprintf("%s (%d)", st, len(tasks))
	if idx == m.column {
		b.WriteString(style.Bold(true).Underline(true).Render(header))
	} else {
		b.WriteString(style.Bold(true).Render(header))
	}
	b.WriteString("\n")

	for i, task := range tasks {
		cursor := "  "
		if idx == m.column && i == m.cursor {
			cursor = "▸ "
		}
		line := cursor + task
		if idx == m.column && i == m.cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(style.Render(line))
		}
		b.WriteString("\n")
	}
	if len(tasks) == 0 {
		b.WriteString(listDimStyle.Render("  —"))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Width(22).PaddingRight(2).Render(b.String())
}
