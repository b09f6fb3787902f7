package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"fitfive/internal/engine"
	"fitfive/internal/storage"
	"fitfive/internal/ui"
)

type dayModel struct {
	ctx  context.Context
	svc  *engine.Service
	date string

	width  int
	height int

	tasks    []storage.WorkoutTask
	routines map[int64]string
	streak   engine.StreakInfo

	selected int
	lastLog  string
	loading  bool
	err      error
}

type loadedMsg struct {
	tasks    []storage.WorkoutTask
	routines map[int64]string
	streak   engine.StreakInfo
	err      error
}

type toggledMsg struct {
	id  int64
	res *engine.CompleteResult
	err error
}

func newDayModel(ctx context.Context, svc *engine.Service, date string) dayModel {
	return dayModel{
		ctx:     ctx,
		svc:     svc,
		date:    date,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m dayModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m dayModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.svc.TasksForDate(m.ctx, m.date)
		if err != nil {
			return loadedMsg{err: err}
		}
		routines, err := m.svc.RoutineRepo().ListActive(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		names := make(map[int64]string, len(routines))
		for _, r := range routines {
			names[r.ID] = r.Name
		}
		streak, err := m.svc.Streaks(m.ctx, m.date)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{tasks: tasks, routines: names, streak: streak}
	}
}

func (m dayModel) toggleCmd(t storage.WorkoutTask) tea.Cmd {
	return func() tea.Msg {
		if t.Completed {
			_, err := m.svc.ReopenTask(m.ctx, t.ID)
			return toggledMsg{id: t.ID, err: err}
		}
		res, err := m.svc.CompleteTask(m.ctx, t.ID)
		return toggledMsg{id: t.ID, res: res, err: err}
	}
}

func (m dayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.tasks = msg.tasks
		m.routines = msg.routines
		m.streak = msg.streak
		if m.selected >= len(m.tasks) {
			m.selected = len(m.tasks) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		return m, nil
	case toggledMsg:
		if msg.err != nil {
			m.lastLog = "Toggle failed: " + msg.err.Error()
			return m, nil
		}
		if msg.res != nil && msg.res.RoutineCompleted {
			m.lastLog = fmt.Sprintf("Routine done for %s — streak %d", m.date, msg.res.Streak)
		} else {
			m.lastLog = fmt.Sprintf("Updated task %d.", msg.id)
		}
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.tasks)-1 {
				m.selected++
			}
			return m, nil
		case "c", " ", "enter":
			if m.selected < 0 || m.selected >= len(m.tasks) {
				return m, nil
			}
			t := m.tasks[m.selected]
			m.lastLog = fmt.Sprintf("Toggling %d…", t.ID)
			return m, m.toggleCmd(t)
		}
	}
	return m, nil
}

func (m dayModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("FitFive | %s %s | streak %s\n\n", ui.IconCal, m.date, ui.StreakText(m.streak.Current)))

	if m.loading {
		b.WriteString("Loading…\n")
		return b.String()
	}
	if len(m.tasks) == 0 {
		b.WriteString(ui.Muted.Render(ui.IconRest+" Rest day — nothing scheduled.") + "\n")
	}

	var lastRoutine int64 = -1
	row := 0
	for _, t := range m.tasks {
		if t.RoutineID != lastRoutine {
			name := m.routines[t.RoutineID]
			if name == "" {
				name = fmt.Sprintf("routine %d", t.RoutineID)
			}
			b.WriteString(ui.H2.Render(name) + "\n")
			lastRoutine = t.RoutineID
		}
		cursor := "  "
		line := fmt.Sprintf("%s %s %s", ui.Checkbox(t.Completed), t.Name, ui.Muted.Render(targetText(t)))
		if row == m.selected {
			cursor = "> "
			line = ui.SelectedRow.Render(line)
		}
		b.WriteString(cursor + line + "\n")
		row++
	}

	b.WriteString("\n" + ui.Muted.Render("↑/↓ move · space toggle · r refresh · q quit") + "\n")
	b.WriteString(m.lastLog + "\n")
	return b.String()
}

func targetText(t storage.WorkoutTask) string {
	if t.TargetWeight != nil {
		return fmt.Sprintf("%dx%d @ %.1fkg", t.TargetSets, t.TargetReps, *t.TargetWeight)
	}
	return fmt.Sprintf("%dx%d", t.TargetSets, t.TargetReps)
}
