package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/pomotask/internal/clock"
	"github.com/sadopc/pomotask/internal/feed"
	"github.com/sadopc/pomotask/internal/focuslog"
	"github.com/sadopc/pomotask/internal/logging"
	"github.com/sadopc/pomotask/internal/pomodoro"
	"github.com/sadopc/pomotask/internal/settings"
	"github.com/sadopc/pomotask/internal/stats"
	"github.com/sadopc/pomotask/internal/task"
)

var stateNames = map[pomodoro.State]string{
	pomodoro.StateIdle:   "READY",
	pomodoro.StateFocus:  "FOCUS",
	pomodoro.StateBreak:  "BREAK",
	pomodoro.StatePaused: "PAUSED",
}

type pomodoroModel struct {
	machine *pomodoro.Machine
	logs    *focuslog.Log
	feed    *feed.Feed
	prefs   *settings.Service
	clock   clock.Clock
	log     logging.Logger
	width   int
	height  int

	bar progress.Model

	taskID    string
	taskTitle string

	// Minutes of the focus phase that just finished, offered for a post.
	lastMinutes int

	formActive  bool
	form        *huh.Form
	formMessage *string
	formShare   *bool
}

func newPomodoroModel(m *pomodoro.Machine, logs *focuslog.Log, f *feed.Feed, prefs *settings.Service, c clock.Clock, log logging.Logger) pomodoroModel {
	msg, share := "", true
	return pomodoroModel{
		machine:     m,
		logs:        logs,
		feed:        f,
		prefs:       prefs,
		clock:       c,
		log:         log,
		bar:         progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		formMessage: &msg,
		formShare:   &share,
	}
}

func (p *pomodoroModel) setSize(w, h int) {
	p.width = w
	p.height = h
	p.bar.Width = max(10, min(60, w-16))
}

func (p pomodoroModel) update(msg tea.Msg) (pomodoroModel, tea.Cmd) {
	// A new focus request wins over an unanswered post form.
	if msg, ok := msg.(focusTaskMsg); ok {
		return p.startTask(msg.task)
	}
	if p.formActive && p.form != nil {
		return p.updateForm(msg)
	}

	switch msg := msg.(type) {
	case machineEventMsg:
		if msg.Kind != pomodoro.EventCompleted {
			return p, nil
		}
		if msg.Phase == pomodoro.StateFocus {
			return p.focusCompleted(msg.Snapshot)
		}
		return p, statusCmd("Break over. Press s to focus again." + p.bell())

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Start):
			p.machine.StartFocus()
		case key.Matches(msg, keys.Break):
			p.machine.StartBreak()
		case key.Matches(msg, keys.Pause):
			return p, p.togglePause()
		case key.Matches(msg, keys.Stop):
			p.machine.Stop()
			return p, statusCmd("Pomodoro stopped")
		case key.Matches(msg, keys.Reset):
			p.machine.Reset()
			p.taskID, p.taskTitle = "", ""
			return p, statusCmd("Pomodoro reset")
		}
	}
	return p, nil
}

func (p pomodoroModel) startTask(t task.Task) (pomodoroModel, tea.Cmd) {
	p.formActive = false
	p.form = nil
	p.taskID = t.ID
	p.taskTitle = t.Title
	p.machine.StartFocus()
	return p, statusCmd("Focusing on " + t.Title)
}

// bell rings the terminal bell when reminders are on.
func (p pomodoroModel) bell() string {
	if p.prefs != nil && p.prefs.Get().ReminderEnabled {
		return "\a"
	}
	return ""
}

func (p pomodoroModel) togglePause() tea.Cmd {
	var err error
	if p.machine.Snapshot().State == pomodoro.StatePaused {
		err = p.machine.Resume()
	} else {
		err = p.machine.Pause()
	}
	if errors.Is(err, pomodoro.ErrInvalidTransition) {
		return statusCmd("Nothing to pause")
	}
	return nil
}

// focusCompleted records a focus log for the phase that just ended and asks
// whether to share it.
func (p pomodoroModel) focusCompleted(s pomodoro.Snapshot) (pomodoroModel, tea.Cmd) {
	minutes := max(1, s.FocusDuration/60)
	p.lastMinutes = minutes

	var cmds []tea.Cmd
	fl, err := p.logs.Add(focuslog.Entry{
		TaskID:          p.taskID,
		DurationMinutes: minutes,
		CompletedAt:     p.clock.Now(),
		Visibility:      focuslog.Public,
	})
	switch {
	case err != nil && fl.ID == "":
		p.log.Warnf("focus log rejected: %v", err)
	case err != nil:
		cmds = append(cmds, saveFailed(p.log, "focus logs", err))
	default:
		p.log.Infof("focus completed: %d min, task %q", minutes, p.taskID)
		cmds = append(cmds, statusCmd(fmt.Sprintf("Focus complete, %s logged.%s", stats.FormatDuration(minutes), p.bell())))
	}
	cmds = append(cmds, dataChanged)

	var cmd tea.Cmd
	p, cmd = p.showPostForm()
	cmds = append(cmds, cmd)
	return p, tea.Batch(cmds...)
}

func (p pomodoroModel) showPostForm() (pomodoroModel, tea.Cmd) {
	msg := "集中完了！"
	if p.taskTitle != "" {
		msg = fmt.Sprintf("「%s」に集中しました！", p.taskTitle)
	}
	*p.formMessage = msg
	*p.formShare = true

	p.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Message").Value(p.formMessage),
			huh.NewConfirm().Title("Share to feed?").Affirmative("Post").Negative("Skip").Value(p.formShare),
		),
	).WithShowHelp(true).WithShowErrors(true)

	p.formActive = true
	return p, p.form.Init()
}

func (p pomodoroModel) updateForm(msg tea.Msg) (pomodoroModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			p.formActive = false
			p.form = nil
			return p, nil
		}
	}

	form, cmd := p.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		p.form = f
	}

	if p.form.State == huh.StateCompleted {
		p.formActive = false
		if !*p.formShare {
			return p, nil
		}
		_, err := p.feed.Add(*p.formMessage, p.lastMinutes)
		switch {
		case errors.Is(err, feed.ErrEmptyMessage):
			return p, func() tea.Msg { return statusMsg{text: err.Error(), isError: true} }
		case err != nil:
			return p, tea.Batch(saveFailed(p.log, "posts", err), dataChanged)
		}
		return p, tea.Batch(statusCmd("Posted to feed"), dataChanged)
	}
	return p, cmd
}

func (p pomodoroModel) view() string {
	w := p.width - 4
	s := p.machine.Snapshot()

	if p.formActive && p.form != nil {
		title := titleStyle.Render(fmt.Sprintf("Nice work: %s of focus", stats.FormatDuration(p.lastMinutes)))
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", p.form.View()),
		)
	}

	title := titleStyle.Render("Pomodoro Timer")

	var phaseStyle lipgloss.Style
	switch s.State {
	case pomodoro.StateFocus:
		phaseStyle = accentStyle.Bold(true)
	case pomodoro.StateBreak:
		phaseStyle = successStyle.Bold(true)
	case pomodoro.StatePaused:
		phaseStyle = warningStyle.Bold(true)
	default:
		phaseStyle = mutedStyle
	}

	remaining := s.RemainingTime
	if s.State == pomodoro.StateIdle {
		remaining = s.FocusDuration
	}
	timeDisplay := timerStyle.Width(max(10, w-6)).Render(formatClock(remaining))
	phaseLabel := phaseStyle.Render(stateNames[s.State])

	taskLine := mutedStyle.Render("No task selected")
	if p.taskTitle != "" {
		taskLine = highlightStyle.Render(p.taskTitle)
	}

	info := mutedStyle.Render(fmt.Sprintf("focus %s · break %s · focused this session %s",
		stats.FormatDuration(s.FocusDuration/60),
		stats.FormatDuration(s.BreakDuration/60),
		formatClock(s.TotalFocusTime),
	))

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		timeDisplay,
		phaseLabel,
		"",
		p.bar.ViewAs(s.Progress/100),
		"",
		taskLine,
		info,
	)

	var controls []string
	switch s.State {
	case pomodoro.StateIdle:
		controls = []string{"s: focus", "b: break", "r: reset"}
	case pomodoro.StateFocus, pomodoro.StateBreak:
		if s.IsRunning {
			controls = []string{"space: pause", "x: stop", "r: reset"}
		} else {
			// Phase finished; the machine waits for the next start.
			controls = []string{"s: focus", "b: break", "x: stop"}
		}
	case pomodoro.StatePaused:
		controls = []string{"space: resume", "x: stop", "r: reset"}
	}

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Center, content, "", mutedStyle.Render(strings.Join(controls, "  "))),
	)
}
