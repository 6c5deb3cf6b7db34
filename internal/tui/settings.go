package tui

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/pomotask/internal/calendar"
	"github.com/sadopc/pomotask/internal/logging"
	"github.com/sadopc/pomotask/internal/pomodoro"
	"github.com/sadopc/pomotask/internal/settings"
)

var settingsErrors = []error{
	settings.ErrInvalidTheme,
	settings.ErrInvalidFontSize,
	settings.ErrInvalidWeekStart,
	settings.ErrInvalidFocusMinutes,
	settings.ErrInvalidBreakMinutes,
	settings.ErrInvalidResumePolicy,
}

type settingsModel struct {
	service *settings.Service
	machine *pomodoro.Machine
	log     logging.Logger
	width   int
	height  int

	current    settings.Settings
	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	theme        *string
	fontSize     *string
	weekStart    *string
	resumePolicy *string
	reminder     *bool
	focusMinutes *string
	breakMinutes *string
}

func newSettingsModel(s *settings.Service, m *pomodoro.Machine, log logging.Logger) settingsModel {
	th, fs, ws, rp := "", "", "", ""
	fm, bm := "", ""
	rem := false
	return settingsModel{
		service:      s,
		machine:      m,
		log:          log,
		current:      s.Get(),
		theme:        &th,
		fontSize:     &fs,
		weekStart:    &ws,
		resumePolicy: &rp,
		reminder:     &rem,
		focusMinutes: &fm,
		breakMinutes: &bm,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

type settingsDataMsg struct {
	settings settings.Settings
}

func (s settingsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return settingsDataMsg{settings: s.service.Get()}
	}
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case settingsDataMsg:
		s.current = msg.settings
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.Edit):
			return s.showForm()
		}
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	cur := s.service.Get()
	*s.theme = string(cur.Theme)
	*s.fontSize = string(cur.FontSize)
	*s.weekStart = string(cur.WeekStart)
	*s.resumePolicy = string(cur.ResumePolicy)
	*s.reminder = cur.ReminderEnabled
	*s.focusMinutes = strconv.Itoa(cur.FocusMinutes)
	*s.breakMinutes = strconv.Itoa(cur.BreakMinutes)

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Focus (min)").Value(s.focusMinutes).Validate(validateMinutes(1, 180)),
			huh.NewInput().Title("Break (min)").Value(s.breakMinutes).Validate(validateMinutes(1, 60)),
			huh.NewSelect[string]().Title("Resuming a paused break").
				Options(
					huh.NewOption("Goes back to focus", string(pomodoro.ResumeIntoFocus)),
					huh.NewOption("Continues the break", string(pomodoro.ResumeIntoPrevious)),
				).Value(s.resumePolicy),
			huh.NewConfirm().Title("Bell when a phase ends").Value(s.reminder),
		).Title("Timer"),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Theme").
				Options(
					huh.NewOption("System", string(settings.ThemeSystem)),
					huh.NewOption("Light", string(settings.ThemeLight)),
					huh.NewOption("Dark", string(settings.ThemeDark)),
				).Value(s.theme),
			huh.NewSelect[string]().Title("Text size").
				Options(
					huh.NewOption("Small", string(settings.FontSmall)),
					huh.NewOption("Medium", string(settings.FontMedium)),
					huh.NewOption("Large", string(settings.FontLarge)),
				).Value(s.fontSize),
			huh.NewSelect[string]().Title("Week starts on").
				Options(
					huh.NewOption("Monday", string(calendar.Monday)),
					huh.NewOption("Sunday", string(calendar.Sunday)),
				).Value(s.weekStart),
		).Title("Display"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		return s, s.save()
	}
	return s, cmd
}

// save applies the form. A rejected value leaves the settings untouched; a
// failed write still takes effect for this run.
func (s settingsModel) save() tea.Cmd {
	focus, ferr := parseMinutes(*s.focusMinutes)
	brk, berr := parseMinutes(*s.breakMinutes)
	if err := errors.Join(ferr, berr); err != nil {
		return func() tea.Msg { return statusMsg{text: err.Error(), isError: true} }
	}

	next, err := s.service.Update(func(st *settings.Settings) {
		st.Theme = settings.Theme(*s.theme)
		st.FontSize = settings.FontSize(*s.fontSize)
		st.WeekStart = calendar.WeekStartDay(*s.weekStart)
		st.ResumePolicy = pomodoro.ResumePolicy(*s.resumePolicy)
		st.ReminderEnabled = *s.reminder
		st.FocusMinutes = focus
		st.BreakMinutes = brk
	})
	if err != nil && isSettingsValidation(err) {
		return func() tea.Msg { return statusMsg{text: err.Error(), isError: true} }
	}

	s.machine.Configure(next.PomodoroConfig())
	applyTheme(next.Theme, next.FontSize)

	if err != nil {
		return tea.Batch(saveFailed(s.log, "settings", err), dataChanged)
	}
	return tea.Batch(statusCmd("Settings saved"), dataChanged)
}

func isSettingsValidation(err error) bool {
	for _, e := range settingsErrors {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

func (s settingsModel) view() string {
	w := s.width - 4

	if s.formActive && s.form != nil {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("Settings"), "", s.form.View()),
		)
	}

	cur := s.current
	onOff := "off"
	if cur.ReminderEnabled {
		onOff = "on"
	}
	resume := "back to focus"
	if cur.ResumePolicy == pomodoro.ResumeIntoPrevious {
		resume = "continue paused phase"
	}
	week := "Monday"
	if cur.WeekStart == calendar.Sunday {
		week = "Sunday"
	}

	items := []struct{ label, value string }{
		{"Focus", fmt.Sprintf("%d min", cur.FocusMinutes)},
		{"Break", fmt.Sprintf("%d min", cur.BreakMinutes)},
		{"Resume", resume},
		{"Bell", onOff},
		{"Theme", string(cur.Theme)},
		{"Text size", string(cur.FontSize)},
		{"Week starts", week},
	}

	rows := []string{titleStyle.Render("Settings"), ""}
	for _, it := range items {
		label := lipgloss.NewStyle().Width(16).Render(it.label)
		rows = append(rows, fmt.Sprintf("  %s %s", label, highlightStyle.Render(it.value)))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("Press enter to edit settings"))

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
