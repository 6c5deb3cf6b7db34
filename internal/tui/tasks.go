package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/pomotask/internal/clock"
	"github.com/sadopc/pomotask/internal/logging"
	"github.com/sadopc/pomotask/internal/task"
)

type tasksModel struct {
	list   *task.List
	clock  clock.Clock
	log    logging.Logger
	width  int
	height int

	tasks  []task.Task
	cursor int

	formActive bool
	form       *huh.Form
	formType   string // "new", "edit"
	editingID  string

	// Form field pointers (survive value copies)
	formTitle    *string
	formDesc     *string
	formDate     *string
	formTime     *string
	formPriority *string
}

func newTasksModel(l *task.List, c clock.Clock, log logging.Logger) tasksModel {
	title, desc, date, tm, prio := "", "", "", "", ""
	return tasksModel{
		list:         l,
		clock:        c,
		log:          log,
		tasks:        l.Tasks(),
		formTitle:    &title,
		formDesc:     &desc,
		formDate:     &date,
		formTime:     &tm,
		formPriority: &prio,
	}
}

func (m *tasksModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

type tasksDataMsg struct {
	tasks []task.Task
}

func (m tasksModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return tasksDataMsg{tasks: m.list.Tasks()}
	}
}

// ordered lists tasks the way they are shown: runnable first, then locked,
// then completed.
func (m tasksModel) ordered(now time.Time) []task.Task {
	g := task.GroupByStatus(m.tasks, now)
	out := make([]task.Task, 0, len(m.tasks))
	out = append(out, g.Executable...)
	out = append(out, g.Locked...)
	out = append(out, g.Completed...)
	return out
}

func (m tasksModel) selected(now time.Time) (task.Task, bool) {
	rows := m.ordered(now)
	if m.cursor < 0 || m.cursor >= len(rows) {
		return task.Task{}, false
	}
	return rows[m.cursor], true
}

func (m tasksModel) update(msg tea.Msg) (tasksModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tasksDataMsg:
		m.tasks = msg.tasks
		if m.cursor >= len(m.tasks) {
			m.cursor = max(0, len(m.tasks)-1)
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateList(msg)
	}
	return m, nil
}

func (m tasksModel) updateList(msg tea.KeyMsg) (tasksModel, tea.Cmd) {
	now := m.clock.Now()
	switch {
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.New):
		return m.showNewForm()
	case key.Matches(msg, keys.Edit):
		if t, ok := m.selected(now); ok {
			return m.showEditForm(t)
		}
	case key.Matches(msg, keys.Enter):
		if t, ok := m.selected(now); ok {
			if _, err := m.list.Toggle(t.ID); err != nil {
				return m, tea.Batch(m.errCmd(err), m.refresh())
			}
			return m, m.refresh()
		}
	case key.Matches(msg, keys.Delete):
		if t, ok := m.selected(now); ok {
			if err := m.list.Delete(t.ID); err != nil {
				return m, tea.Batch(m.errCmd(err), m.refresh())
			}
			return m, m.refresh()
		}
	case key.Matches(msg, keys.Start):
		t, ok := m.selected(now)
		if !ok {
			return m, nil
		}
		v := task.Evaluate(t, now)
		if !v.Executable {
			return m, func() tea.Msg { return statusMsg{text: v.Reason, isError: true} }
		}
		return m, func() tea.Msg { return focusTaskMsg{task: t} }
	}
	return m, nil
}

// errCmd separates lookup failures from storage failures; only the latter
// are logged.
func (m tasksModel) errCmd(err error) tea.Cmd {
	if errors.Is(err, task.ErrNotFound) || errors.Is(err, task.ErrTimeWithoutSchedule) {
		return func() tea.Msg { return statusMsg{text: err.Error(), isError: true} }
	}
	return saveFailed(m.log, "tasks", err)
}

func (m tasksModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(m.formTitle).Validate(task.ValidateTitle),
			huh.NewInput().Title("Description").Value(m.formDesc),
			huh.NewInput().Title("Date").Placeholder("YYYY-MM-DD, today, tomorrow").Value(m.formDate),
			huh.NewInput().Title("Time").Placeholder("HH:MM").Value(m.formTime).Validate(validateClock),
			huh.NewSelect[string]().Title("Priority").
				Options(
					huh.NewOption("None", ""),
					huh.NewOption("Low", string(task.PriorityLow)),
					huh.NewOption("Medium", string(task.PriorityMedium)),
					huh.NewOption("High", string(task.PriorityHigh)),
				).Value(m.formPriority),
		),
	).WithShowHelp(true).WithShowErrors(true)
}

func validateClock(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := time.Parse("15:04", strings.TrimSpace(s)); err != nil {
		return errors.New("time must be HH:MM")
	}
	return nil
}

func (m tasksModel) showNewForm() (tasksModel, tea.Cmd) {
	*m.formTitle = ""
	*m.formDesc = ""
	*m.formDate = ""
	*m.formTime = ""
	*m.formPriority = ""
	m.formType = "new"
	m.editingID = ""

	m.form = m.buildForm()
	m.formActive = true
	return m, m.form.Init()
}

func (m tasksModel) showEditForm(t task.Task) (tasksModel, tea.Cmd) {
	*m.formTitle = t.Title
	*m.formDesc = t.Description
	*m.formDate = ""
	*m.formTime = ""
	if t.ScheduledAt != nil {
		at := t.ScheduledAt.In(m.clock.Now().Location())
		*m.formDate = at.Format("2006-01-02")
		if t.HasTime {
			*m.formTime = at.Format("15:04")
		}
	}
	*m.formPriority = string(t.Priority)
	m.formType = "edit"
	m.editingID = t.ID

	m.form = m.buildForm()
	m.formActive = true
	return m, m.form.Init()
}

func (m tasksModel) updateForm(msg tea.Msg) (tasksModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			m.formActive = false
			m.form = nil
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.formActive = false
		return m, m.submitForm()
	}
	return m, cmd
}

func (m tasksModel) submitForm() tea.Cmd {
	title := strings.TrimSpace(*m.formTitle)
	if err := task.ValidateTitle(title); err != nil {
		return func() tea.Msg { return statusMsg{text: err.Error(), isError: true} }
	}
	at, hasTime, err := parseSchedule(*m.formDate, *m.formTime, m.clock.Now())
	if err != nil {
		return func() tea.Msg { return statusMsg{text: err.Error(), isError: true} }
	}
	prio := task.Priority(*m.formPriority)
	desc := strings.TrimSpace(*m.formDesc)

	switch m.formType {
	case "new":
		t, err := m.list.AddWith(title, at, hasTime, task.Patch{Priority: &prio, Description: &desc})
		if err != nil && t.ID == "" {
			return func() tea.Msg { return statusMsg{text: err.Error(), isError: true} }
		}
		if err != nil {
			return tea.Batch(m.errCmd(err), m.refresh())
		}
		return tea.Batch(m.refresh(), statusCmd("Added "+title))

	case "edit":
		p := task.Patch{
			Title:       &title,
			Description: &desc,
			Priority:    &prio,
			HasTime:     &hasTime,
		}
		if at == nil {
			p.ClearSchedule = true
		} else {
			p.ScheduledAt = at
		}
		if _, err := m.list.Update(m.editingID, p); err != nil {
			return tea.Batch(m.errCmd(err), m.refresh())
		}
		return m.refresh()
	}
	return nil
}

func (m tasksModel) view() string {
	w := m.width - 4
	now := m.clock.Now()

	if m.formActive && m.form != nil {
		title := titleStyle.Render("New Task")
		if m.formType == "edit" {
			title = titleStyle.Render("Edit Task")
		}
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", m.form.View()),
		)
	}

	rate := m.list.CompletionRate(now)
	upcoming := len(m.list.Upcoming(now))
	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Tasks"),
		"  ",
		mutedStyle.Render(fmt.Sprintf("today %d%% done · %d upcoming", rate, upcoming)),
	)

	if len(m.tasks) == 0 {
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			header,
			"",
			mutedStyle.Render("No tasks yet. Press n to add one."),
		))
	}

	g := task.GroupByStatus(m.tasks, now)
	var rows []string
	rows = append(rows, header)

	idx := 0
	section := func(name string, ts []task.Task) {
		if len(ts) == 0 {
			return
		}
		rows = append(rows, "", subtitleStyle.Render(fmt.Sprintf("%s (%d)", name, len(ts))))
		for _, t := range ts {
			rows = append(rows, m.renderRow(t, now, idx == m.cursor, w))
			idx++
		}
	}
	section("Ready", g.Executable)
	section("Locked", g.Locked)
	section("Done", g.Completed)

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: new  u: edit  enter: toggle  d: delete  s: focus"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (m tasksModel) renderRow(t task.Task, now time.Time, selected bool, w int) string {
	cursor := "  "
	style := normalItemStyle
	if selected {
		cursor = "> "
		style = selectedItemStyle
	}
	check := "[ ]"
	if t.IsCompleted {
		check = successStyle.Render("[x]")
	}

	chip := ""
	if t.ScheduledAt != nil {
		chip = highlightStyle.Render(" " + task.FormatScheduleChip(t.ScheduledAt.In(now.Location()), t.HasTime))
	}
	prio := ""
	switch t.Priority {
	case task.PriorityHigh:
		prio = errorStyle.Render(" !!!")
	case task.PriorityMedium:
		prio = warningStyle.Render(" !!")
	case task.PriorityLow:
		prio = mutedStyle.Render(" !")
	}

	v := task.Evaluate(t, now)
	reason := v.Reason
	if v.Status == task.StatusTimeLocked {
		if s, ok := task.FormatTimeUntilExecutable(t, now); ok {
			reason = s
		}
	}
	reasonStyle := mutedStyle
	if !v.Executable && !t.IsCompleted {
		reasonStyle = warningStyle
	}

	title := truncate(t.Title, max(10, w-40))
	return fmt.Sprintf("%s%s %s%s%s  %s",
		cursor, check, style.Render(title), chip, prio, reasonStyle.Render(reason))
}
