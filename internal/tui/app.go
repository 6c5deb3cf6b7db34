package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/sadopc/pomotask/internal/clock"
	"github.com/sadopc/pomotask/internal/export"
	"github.com/sadopc/pomotask/internal/feed"
	"github.com/sadopc/pomotask/internal/focuslog"
	"github.com/sadopc/pomotask/internal/logging"
	"github.com/sadopc/pomotask/internal/pomodoro"
	"github.com/sadopc/pomotask/internal/settings"
	"github.com/sadopc/pomotask/internal/task"
)

const eventBuffer = 16

var exportFormats = []export.Format{export.FormatCSV, export.FormatJSON}

// Services bundles everything the UI talks to.
type Services struct {
	Tasks     *task.List
	Logs      *focuslog.Log
	Feed      *feed.Feed
	Settings  *settings.Service
	Machine   *pomodoro.Machine
	Clock     clock.Clock
	Logger    logging.Logger
	ExportDir string
}

// App is the root Bubble Tea model.
type App struct {
	svc    Services
	width  int
	height int

	events      chan pomodoro.Event
	done        chan struct{}
	unsubscribe func()

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int

	tasks    tasksModel
	pomodoro pomodoroModel
	stats    statsModel
	feed     feedModel
	settings settingsModel

	help     help.Model
	status   string
	statusOK bool
}

func NewApp(svc Services) App {
	if svc.Clock == nil {
		svc.Clock = clock.Real()
	}
	if svc.Logger == nil {
		svc.Logger = logging.Nop()
	}

	h := help.New()
	h.ShowAll = false

	cur := svc.Settings.Get()
	applyTheme(cur.Theme, cur.FontSize)

	a := App{
		svc:        svc,
		events:     make(chan pomodoro.Event, eventBuffer),
		done:       make(chan struct{}),
		activeView: viewTasks,
		tasks:      newTasksModel(svc.Tasks, svc.Clock, svc.Logger),
		pomodoro:   newPomodoroModel(svc.Machine, svc.Logs, svc.Feed, svc.Settings, svc.Clock, svc.Logger),
		stats:      newStatsModel(svc.Logs, svc.Settings, svc.Tasks, svc.Clock),
		feed:       newFeedModel(svc.Feed, svc.Clock, svc.Logger),
		settings:   newSettingsModel(svc.Settings, svc.Machine, svc.Logger),
		help:       h,
	}
	a.unsubscribe = svc.Machine.Subscribe(a.forward)
	return a
}

// forward runs on the machine's tick goroutine. Only completions cross over;
// the tick loop redraws the countdown.
func (a App) forward(e pomodoro.Event) {
	if e.Kind != pomodoro.EventCompleted {
		return
	}
	select {
	case a.events <- e:
	case <-a.done:
	}
}

// Close detaches the app from the machine.
func (a App) Close() {
	a.unsubscribe()
	select {
	case <-a.done:
	default:
		close(a.done)
	}
}

func (a App) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		select {
		case e := <-a.events:
			return machineEventMsg(e)
		case <-a.done:
			return nil
		}
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.refreshAll(),
		a.waitForEvent(),
		tickCmd(),
	)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.tasks.setSize(a.width, contentHeight)
		a.pomodoro.setSize(a.width, contentHeight)
		a.stats.setSize(a.width, contentHeight)
		a.feed.setSize(a.width, contentHeight)
		a.settings.setSize(a.width, contentHeight)
		return a, nil

	case tea.KeyMsg:
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// If a child view is capturing input (e.g. form), delegate first.
		if a.isFormActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Quit):
			a.Close()
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			return a.switchTo(viewTasks)
		case key.Matches(msg, keys.Tab2):
			return a.switchTo(viewPomodoro)
		case key.Matches(msg, keys.Tab3):
			return a.switchTo(viewStats)
		case key.Matches(msg, keys.Tab4):
			return a.switchTo(viewFeed)
		case key.Matches(msg, keys.Tab5):
			return a.switchTo(viewSettings)
		case key.Matches(msg, keys.Tab):
			return a.switchTo((a.activeView + 1) % viewState(len(viewNames)))
		}

	case tickMsg:
		// Time-locked tasks open up as the clock moves.
		return a, tea.Batch(tickCmd(), a.tasks.refresh())

	case machineEventMsg:
		var cmd tea.Cmd
		a.pomodoro, cmd = a.pomodoro.update(msg)
		return a, tea.Batch(cmd, a.waitForEvent())

	case focusTaskMsg:
		a.activeView = viewPomodoro
		var cmd tea.Cmd
		a.pomodoro, cmd = a.pomodoro.update(msg)
		return a, cmd

	case dataChangedMsg:
		return a, a.refreshAll()

	case statusMsg:
		a.status = msg.text
		a.statusOK = !msg.isError
		return a, nil

	case exportDoneMsg:
		a.status = fmt.Sprintf("Exported %d logs (%s) to %s",
			msg.result.Count, humanize.Bytes(uint64(msg.result.Bytes)), msg.result.Path)
		a.statusOK = true
		a.exportPicking = false
		return a, nil

	case tasksDataMsg:
		var cmd tea.Cmd
		a.tasks, cmd = a.tasks.update(msg)
		return a, cmd
	case statsDataMsg:
		var cmd tea.Cmd
		a.stats, cmd = a.stats.update(msg)
		return a, cmd
	case feedDataMsg:
		var cmd tea.Cmd
		a.feed, cmd = a.feed.update(msg)
		return a, cmd
	case settingsDataMsg:
		var cmd tea.Cmd
		a.settings, cmd = a.settings.update(msg)
		return a, cmd
	}

	return a.updateActiveView(msg)
}

func (a App) switchTo(v viewState) (tea.Model, tea.Cmd) {
	a.activeView = v
	return a, a.refreshCurrentView()
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewTasks:
		a.tasks, cmd = a.tasks.update(msg)
	case viewPomodoro:
		a.pomodoro, cmd = a.pomodoro.update(msg)
	case viewStats:
		a.stats, cmd = a.stats.update(msg)
	case viewFeed:
		a.feed, cmd = a.feed.update(msg)
	case viewSettings:
		a.settings, cmd = a.settings.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	switch a.activeView {
	case viewTasks:
		return a.tasks.formActive
	case viewPomodoro:
		return a.pomodoro.formActive
	case viewFeed:
		return a.feed.formActive
	case viewSettings:
		return a.settings.formActive
	}
	return false
}

func (a App) refreshCurrentView() tea.Cmd {
	switch a.activeView {
	case viewTasks:
		return a.tasks.refresh()
	case viewStats:
		return a.stats.refresh()
	case viewFeed:
		return a.feed.refresh()
	case viewSettings:
		return a.settings.refresh()
	}
	return nil
}

func (a App) refreshAll() tea.Cmd {
	return tea.Batch(
		a.tasks.refresh(),
		a.stats.refresh(),
		a.feed.refresh(),
		a.settings.refresh(),
	)
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewTasks:
		content = a.tasks.view()
	case viewPomodoro:
		content = a.pomodoro.view()
	case viewStats:
		content = a.stats.view()
	case viewFeed:
		content = a.feed.view()
	case viewSettings:
		content = a.settings.view()
	}

	contentHeight := max(1, a.height-lipgloss.Height(header)-lipgloss.Height(footer))

	if a.exportPicking {
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("pomotask")
	gap := max(1, a.width-lipgloss.Width(title)-lipgloss.Width(tabRow)-4)
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		style := errorStyle
		if a.statusOK {
			style = mutedStyle
		}
		status = style.Render(" " + a.status)
	}

	// Timer indicator in footer
	timerInfo := ""
	s := a.svc.Machine.Snapshot()
	switch {
	case s.State == pomodoro.StatePaused:
		timerInfo = warningStyle.Render(" ⏸ " + formatClock(s.RemainingTime))
	case s.IsRunning && s.State == pomodoro.StateFocus:
		timerInfo = accentStyle.Render(" ● " + formatClock(s.RemainingTime))
	case s.IsRunning && s.State == pomodoro.StateBreak:
		timerInfo = successStyle.Render(" ☕ " + formatClock(s.RemainingTime))
	}

	left := footerStyle.Render(helpView)
	right := timerInfo + status

	gap := max(1, a.width-lipgloss.Width(left)-lipgloss.Width(right)-2)
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

func (a App) renderExportPicker() string {
	rows := []string{titleStyle.Render("Export Focus Logs"), ""}
	for i, f := range exportFormats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+strings.ToUpper(string(f))))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < len(exportFormats)-1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(exportFormats[a.exportCursor])
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(format export.Format) tea.Cmd {
	return func() tea.Msg {
		res, err := export.Write(format, a.svc.ExportDir, a.svc.Logs.All(), taskTitles(a.svc.Tasks), a.svc.Clock.Now())
		if err != nil {
			a.svc.Logger.Errorf("export %s: %v", format, err)
			return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
		}
		a.svc.Logger.Infof("exported %d focus logs to %s", res.Count, res.Path)
		return exportDoneMsg{result: res}
	}
}
