package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/pomotask/internal/calendar"
	"github.com/sadopc/pomotask/internal/clock"
	"github.com/sadopc/pomotask/internal/export"
	"github.com/sadopc/pomotask/internal/feed"
	"github.com/sadopc/pomotask/internal/focuslog"
	"github.com/sadopc/pomotask/internal/logging"
	"github.com/sadopc/pomotask/internal/pomodoro"
	"github.com/sadopc/pomotask/internal/settings"
	"github.com/sadopc/pomotask/internal/store"
	"github.com/sadopc/pomotask/internal/task"
)

// Monday morning.
var t0 = time.Date(2026, 1, 19, 9, 0, 0, 0, time.UTC)

type testEnv struct {
	app   App
	svc   Services
	clock *clock.Fake
	sched *clock.Manual
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	c := clock.NewFake(t0)
	sched := clock.NewManual()
	st := settings.NewService(s, store.KeySettings)
	svc := Services{
		Tasks:     task.NewList(s, store.KeyTasks, c),
		Logs:      focuslog.NewLog(s, store.KeyFocusLogs, c),
		Feed:      feed.New(s, store.KeyPosts, c),
		Settings:  st,
		Machine:   pomodoro.NewMachine(pomodoro.Config{FocusDuration: 120, BreakDuration: 60}, c, sched),
		Clock:     c,
		Logger:    logging.Nop(),
		ExportDir: t.TempDir(),
	}
	app := NewApp(svc)
	t.Cleanup(app.Close)
	app.width = 120
	app.height = 40
	app.tasks.setSize(120, 36)
	app.pomodoro.setSize(120, 36)
	app.stats.setSize(120, 36)
	app.feed.setSize(120, 36)
	app.settings.setSize(120, 36)
	return testEnv{app: app, svc: svc, clock: c, sched: sched}
}

// nextCompleted returns the completion the app received from the machine.
func (e testEnv) nextCompleted(t *testing.T) machineEventMsg {
	t.Helper()
	for {
		select {
		case ev := <-e.app.events:
			if ev.Kind == pomodoro.EventCompleted {
				return machineEventMsg(ev)
			}
		default:
			t.Fatal("no completion event was forwarded")
		}
	}
}

// ============================================================
// Helpers
// ============================================================

func TestFormatClock(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{0, "00:00"},
		{59, "00:59"},
		{1500, "25:00"},
		{3661, "61:01"},
		{-5, "00:00"},
	}
	for _, tt := range tests {
		if got := formatClock(tt.secs); got != tt.want {
			t.Fatalf("formatClock(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("hello", 10); got != "hello" {
		t.Fatalf("short string changed: %q", got)
	}
	if got := truncate("hello world", 6); got != "hello…" {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("集中しました", 3); got != "集中…" {
		t.Fatalf("truncate counts runes: %q", got)
	}
}

func TestParseSchedule(t *testing.T) {
	now := time.Date(2026, 1, 19, 22, 0, 0, 0, time.UTC)

	at, hasTime, err := parseSchedule("", "", now)
	if err != nil || at != nil || hasTime {
		t.Fatalf("empty = %v, %v, %v", at, hasTime, err)
	}

	if _, _, err := parseSchedule("", "10:00", now); !errors.Is(err, task.ErrTimeWithoutSchedule) {
		t.Fatalf("time without date: %v", err)
	}

	at, hasTime, err = parseSchedule("tomorrow", "", now)
	if err != nil || hasTime {
		t.Fatalf("tomorrow: %v, %v", hasTime, err)
	}
	if !at.Equal(time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("tomorrow = %v", at)
	}

	at, hasTime, err = parseSchedule("2026-02-03", "14:30", now)
	if err != nil || !hasTime {
		t.Fatalf("dated: %v, %v", hasTime, err)
	}
	if !at.Equal(time.Date(2026, 2, 3, 14, 30, 0, 0, time.UTC)) {
		t.Fatalf("dated = %v", at)
	}

	if _, _, err := parseSchedule("02/03", "", now); err == nil {
		t.Fatal("expected error for bad date")
	}
	if _, _, err := parseSchedule("today", "25:99", now); err == nil {
		t.Fatal("expected error for bad time")
	}
}

func TestValidateMinutes(t *testing.T) {
	v := validateMinutes(1, 60)
	for in, ok := range map[string]bool{"1": true, " 60 ": true, "0": false, "61": false, "abc": false, "": false} {
		if err := v(in); (err == nil) != ok {
			t.Fatalf("validateMinutes(%q) = %v", in, err)
		}
	}
}

func TestViewNames(t *testing.T) {
	want := []string{"Tasks", "Pomodoro", "Stats", "Feed", "Settings"}
	if len(viewNames) != len(want) {
		t.Fatalf("got %d view names", len(viewNames))
	}
	for i, n := range want {
		if viewNames[i] != n {
			t.Fatalf("viewNames[%d] = %q, want %q", i, viewNames[i], n)
		}
	}
	if viewSettings != viewState(len(viewNames)-1) {
		t.Fatal("view constants out of step with names")
	}
}

// ============================================================
// Tasks view
// ============================================================

func TestTasksSubmitNewForm(t *testing.T) {
	env := newTestEnv(t)
	m := env.app.tasks
	*m.formTitle = "  Write report "
	*m.formDesc = "quarterly"
	*m.formDate = "today"
	*m.formTime = "10:30"
	*m.formPriority = string(task.PriorityHigh)
	m.formType = "new"

	if cmd := m.submitForm(); cmd == nil {
		t.Fatal("expected a refresh command")
	}
	tasks := env.svc.Tasks.Tasks()
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks", len(tasks))
	}
	got := tasks[0]
	if got.Title != "Write report" || got.Description != "quarterly" || got.Priority != task.PriorityHigh {
		t.Fatalf("task = %+v", got)
	}
	if !got.UpdatedAt.Equal(got.CreatedAt) {
		t.Fatal("a new task is written once, so UpdatedAt should equal CreatedAt")
	}
	if !got.HasTime || got.ScheduledAt == nil || got.ScheduledAt.Hour() != 10 || got.ScheduledAt.Minute() != 30 {
		t.Fatalf("schedule = %v, hasTime %v", got.ScheduledAt, got.HasTime)
	}
}

func TestTasksSubmitRejectsBlankTitle(t *testing.T) {
	env := newTestEnv(t)
	m := env.app.tasks
	*m.formTitle = "   "
	m.formType = "new"

	msg := m.submitForm()()
	st, ok := msg.(statusMsg)
	if !ok || !st.isError {
		t.Fatalf("expected error status, got %#v", msg)
	}
	if len(env.svc.Tasks.Tasks()) != 0 {
		t.Fatal("blank title must not be added")
	}
}

func TestTasksStartLockedShowsReason(t *testing.T) {
	env := newTestEnv(t)
	later := t0.Add(3 * time.Hour)
	if _, err := env.svc.Tasks.Add("Later", &later, true); err != nil {
		t.Fatal(err)
	}
	m := env.app.tasks
	m, _ = m.update(tasksDataMsg{tasks: env.svc.Tasks.Tasks()})

	_, cmd := m.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	st, ok := cmd().(statusMsg)
	if !ok || !st.isError || st.text == "" {
		t.Fatalf("expected reason status, got %#v", st)
	}
}

func TestTasksStartExecutableSendsFocus(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.svc.Tasks.Add("Now", nil, false); err != nil {
		t.Fatal(err)
	}
	m := env.app.tasks
	m, _ = m.update(tasksDataMsg{tasks: env.svc.Tasks.Tasks()})

	_, cmd := m.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	ft, ok := cmd().(focusTaskMsg)
	if !ok || ft.task.Title != "Now" {
		t.Fatalf("expected focusTaskMsg, got %#v", ft)
	}
}

// ============================================================
// Pomodoro view
// ============================================================

func TestFocusTaskSwitchesViewAndStarts(t *testing.T) {
	env := newTestEnv(t)
	tk, _ := env.svc.Tasks.Add("Deep work", nil, false)

	model, _ := env.app.Update(focusTaskMsg{task: tk})
	app := model.(App)
	if app.activeView != viewPomodoro {
		t.Fatalf("active view = %d", app.activeView)
	}
	if s := env.svc.Machine.Snapshot(); s.State != pomodoro.StateFocus || !s.IsRunning {
		t.Fatalf("machine = %v running=%v", s.State, s.IsRunning)
	}
	if app.pomodoro.taskID != tk.ID {
		t.Fatal("task not attached to the session")
	}
}

func TestFocusCompletionAddsLogAndOffersPost(t *testing.T) {
	env := newTestEnv(t)
	tk, _ := env.svc.Tasks.Add("Deep work", nil, false)
	model, _ := env.app.Update(focusTaskMsg{task: tk})
	app := model.(App)

	env.sched.Fire(120)
	model, _ = app.Update(env.nextCompleted(t))
	app = model.(App)

	logs := env.svc.Logs.All()
	if len(logs) != 1 {
		t.Fatalf("got %d focus logs", len(logs))
	}
	if logs[0].DurationMinutes != 2 || logs[0].TaskID != tk.ID {
		t.Fatalf("log = %+v", logs[0])
	}
	if !app.pomodoro.formActive || !app.isFormActive() {
		t.Fatal("post form should open after a focus phase")
	}
	if !strings.Contains(*app.pomodoro.formMessage, "Deep work") {
		t.Fatalf("default message = %q", *app.pomodoro.formMessage)
	}
	if s := env.svc.Machine.Snapshot(); s.State != pomodoro.StateBreak {
		t.Fatalf("state after focus = %v", s.State)
	}
}

func TestFocusTaskWhilePostFormOpen(t *testing.T) {
	env := newTestEnv(t)
	a, _ := env.svc.Tasks.Add("Task A", nil, false)
	b, _ := env.svc.Tasks.Add("Task B", nil, false)

	model, _ := env.app.Update(focusTaskMsg{task: a})
	// The phase finishes while the user is on the task list.
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")})
	env.sched.Fire(120)
	model, _ = model.Update(env.nextCompleted(t))
	if app := model.(App); app.activeView != viewTasks || !app.pomodoro.formActive {
		t.Fatalf("view = %d, post form open = %v", app.activeView, app.pomodoro.formActive)
	}

	model, _ = model.Update(focusTaskMsg{task: b})
	app := model.(App)

	if app.activeView != viewPomodoro {
		t.Fatalf("active view = %d", app.activeView)
	}
	if app.pomodoro.formActive {
		t.Fatal("starting a new focus should close the pending post form")
	}
	if app.pomodoro.taskTitle != "Task B" {
		t.Fatalf("task = %q, want Task B", app.pomodoro.taskTitle)
	}
	if s := env.svc.Machine.Snapshot(); s.State != pomodoro.StateFocus || !s.IsRunning {
		t.Fatalf("machine = %v running=%v", s.State, s.IsRunning)
	}
	if len(env.svc.Logs.All()) != 1 {
		t.Fatal("the finished focus on Task A should stay logged")
	}
}

func TestBreakCompletionDoesNotLog(t *testing.T) {
	env := newTestEnv(t)
	env.svc.Machine.StartBreak()
	env.sched.Fire(60)

	model, _ := env.app.Update(env.nextCompleted(t))
	app := model.(App)
	if len(env.svc.Logs.All()) != 0 {
		t.Fatal("a break must not produce a focus log")
	}
	if app.pomodoro.formActive {
		t.Fatal("no post form after a break")
	}
}

func TestPomodoroTogglePause(t *testing.T) {
	env := newTestEnv(t)
	p := env.app.pomodoro

	if msg := p.togglePause()(); msg.(statusMsg).text != "Nothing to pause" {
		t.Fatalf("idle toggle = %#v", msg)
	}

	env.svc.Machine.StartFocus()
	env.sched.Fire(5)
	if cmd := p.togglePause(); cmd != nil {
		t.Fatal("pause should succeed quietly")
	}
	if env.svc.Machine.Snapshot().State != pomodoro.StatePaused {
		t.Fatal("expected PAUSED")
	}
	p.togglePause()
	if s := env.svc.Machine.Snapshot(); s.State != pomodoro.StateFocus || s.ElapsedTime != 5 {
		t.Fatalf("resume = %v elapsed %d", s.State, s.ElapsedTime)
	}
}

func TestPomodoroBellFollowsReminderSetting(t *testing.T) {
	env := newTestEnv(t)
	if env.app.pomodoro.bell() != "" {
		t.Fatal("bell should be off by default")
	}
	if err := env.svc.Settings.SetReminderEnabled(true); err != nil {
		t.Fatal(err)
	}
	if env.app.pomodoro.bell() != "\a" {
		t.Fatal("bell should ring with reminders on")
	}
}

// ============================================================
// Stats view
// ============================================================

func TestStatsCompute(t *testing.T) {
	env := newTestEnv(t)
	for _, e := range []focuslog.Entry{
		{DurationMinutes: 25, CompletedAt: t0},
		{DurationMinutes: 25, CompletedAt: t0.Add(2 * time.Hour)},
		{DurationMinutes: 50, CompletedAt: t0.AddDate(0, 0, 1)},
		{DurationMinutes: 30, CompletedAt: t0.AddDate(0, 0, -7)},
	} {
		if _, err := env.svc.Logs.Add(e); err != nil {
			t.Fatal(err)
		}
	}

	m := env.app.stats
	m, _ = m.update(m.refresh()())

	if m.weekly.TotalFocusMinutes != 100 || m.weekly.PomodoroCount != 3 {
		t.Fatalf("weekly = %+v", m.weekly)
	}
	if m.weekly.DailyBreakdown != [7]int{2, 1, 0, 0, 0, 0, 0} {
		t.Fatalf("breakdown = %v, want log counts per day", m.weekly.DailyBreakdown)
	}
	if m.daily.FocusMinutes != 50 || m.daily.PomodoroCount != 2 {
		t.Fatalf("daily = %+v", m.daily)
	}
	if m.lastWeek != 30 {
		t.Fatalf("last week = %d", m.lastWeek)
	}
	if len(m.recent) != 4 || !m.recent[0].CompletedAt.Equal(t0.AddDate(0, 0, 1)) {
		t.Fatal("recent logs should be newest first")
	}

	// Step back one week.
	m, cmd := m.update(tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = m.update(cmd())
	if m.offset != 1 || m.weekly.TotalFocusMinutes != 30 {
		t.Fatalf("previous week = %+v", m.weekly)
	}
}

func TestStatsFollowsWeekStartSetting(t *testing.T) {
	env := newTestEnv(t)
	if err := env.svc.Settings.SetWeekStart(calendar.Sunday); err != nil {
		t.Fatal(err)
	}
	m := env.app.stats
	m, _ = m.update(m.refresh()())
	if m.weekStart != calendar.Sunday {
		t.Fatal("week start not picked up")
	}
	if !m.weekly.StartDate.Equal(time.Date(2026, 1, 18, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("start = %v", m.weekly.StartDate)
	}
}

// ============================================================
// Feed view
// ============================================================

func TestFeedFilterCycling(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.svc.Feed.Add("today", 25); err != nil {
		t.Fatal(err)
	}
	env.clock.Set(t0.AddDate(0, 0, 2))

	m := env.app.feed
	m, _ = m.update(m.refresh()())
	if feedFilters[m.filter] != feed.FilterAll || len(m.posts) != 1 {
		t.Fatalf("all: filter %v, %d posts", feedFilters[m.filter], len(m.posts))
	}

	m, cmd := m.update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.update(cmd())
	if feedFilters[m.filter] != feed.FilterToday || len(m.posts) != 0 {
		t.Fatalf("today: filter %v, %d posts", feedFilters[m.filter], len(m.posts))
	}

	m, cmd = m.update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.update(cmd())
	if feedFilters[m.filter] != feed.FilterWeek || len(m.posts) != 1 {
		t.Fatalf("week: filter %v, %d posts", feedFilters[m.filter], len(m.posts))
	}
}

func TestFeedDelete(t *testing.T) {
	env := newTestEnv(t)
	env.svc.Feed.Add("one", 0)
	m := env.app.feed
	m, _ = m.update(m.refresh()())

	_, cmd := m.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	if cmd == nil {
		t.Fatal("delete should refresh")
	}
	if got := env.svc.Feed.Posts(feed.FilterAll, env.clock.Now()); len(got) != 0 {
		t.Fatalf("%d posts left", len(got))
	}
}

// ============================================================
// Settings view
// ============================================================

func TestSettingsSaveConfiguresMachine(t *testing.T) {
	env := newTestEnv(t)
	m := env.app.settings
	m, _ = m.showForm()
	*m.focusMinutes = "50"
	*m.breakMinutes = "10"
	*m.resumePolicy = string(pomodoro.ResumeIntoPrevious)
	*m.theme = string(settings.ThemeDark)

	if cmd := m.save(); cmd == nil {
		t.Fatal("expected a command")
	}
	got := env.svc.Settings.Get()
	if got.FocusMinutes != 50 || got.BreakMinutes != 10 || got.Theme != settings.ThemeDark {
		t.Fatalf("settings = %+v", got)
	}
	s := env.svc.Machine.Snapshot()
	if s.FocusDuration != 3000 || s.BreakDuration != 600 {
		t.Fatalf("machine durations = %d/%d", s.FocusDuration, s.BreakDuration)
	}
}

func TestSettingsSaveRejectsOutOfRange(t *testing.T) {
	env := newTestEnv(t)
	m := env.app.settings
	m, _ = m.showForm()
	*m.focusMinutes = "500"

	msg := m.save()()
	if st, ok := msg.(statusMsg); !ok || !st.isError {
		t.Fatalf("expected validation error, got %#v", msg)
	}
	if env.svc.Settings.Get().FocusMinutes != 25 {
		t.Fatal("invalid focus length must not be stored")
	}
	if env.svc.Machine.Snapshot().FocusDuration != 120 {
		t.Fatal("machine must keep its config")
	}
}

// ============================================================
// App model
// ============================================================

func TestNewApp(t *testing.T) {
	env := newTestEnv(t)
	app := env.app

	if app.activeView != viewTasks {
		t.Fatal("default view should be tasks")
	}
	if app.showHelp {
		t.Fatal("help should be hidden by default")
	}
	if app.exportPicking {
		t.Fatal("export picker should be hidden by default")
	}
	if app.isFormActive() {
		t.Fatal("no forms should be active initially")
	}
}

func TestAppViewStates(t *testing.T) {
	env := newTestEnv(t)
	app := env.app

	for v := range viewNames {
		app.activeView = viewState(v)
		if output := app.View(); output == "" {
			t.Fatalf("view %d rendered empty", v)
		}
	}
}

func TestAppTabKeys(t *testing.T) {
	env := newTestEnv(t)
	var model tea.Model = env.app
	for i, k := range []string{"1", "2", "3", "4", "5"} {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
		if got := model.(App).activeView; got != viewState(i) {
			t.Fatalf("key %s -> view %d", k, got)
		}
	}
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	if got := model.(App).activeView; got != viewTasks {
		t.Fatalf("tab should wrap to tasks, got %d", got)
	}
}

func TestAppRenderHeaderContainsAllTabs(t *testing.T) {
	env := newTestEnv(t)
	header := env.app.renderHeader()
	for _, name := range viewNames {
		if !strings.Contains(header, name) {
			t.Fatalf("header missing tab %q", name)
		}
	}
}

func TestAppRenderFooter(t *testing.T) {
	env := newTestEnv(t)
	app := env.app
	if app.renderFooter() == "" {
		t.Fatal("footer should not be empty")
	}

	app.status = "test status"
	if !strings.Contains(app.renderFooter(), "test status") {
		t.Fatal("footer should contain status message")
	}

	env.svc.Machine.StartFocus()
	if !strings.Contains(app.renderFooter(), "02:00") {
		t.Fatal("footer should show the running timer")
	}
}

func TestAppLoadingState(t *testing.T) {
	env := newTestEnv(t)
	app := env.app
	app.width = 0
	if output := app.View(); output != "Loading..." {
		t.Fatalf("expected 'Loading...', got %q", output)
	}
}

func TestAppExport(t *testing.T) {
	env := newTestEnv(t)
	env.svc.Logs.Add(focuslog.Entry{DurationMinutes: 25})

	msg := env.app.doExport(export.FormatJSON)()
	done, ok := msg.(exportDoneMsg)
	if !ok {
		t.Fatalf("expected exportDoneMsg, got %#v", msg)
	}
	if done.result.Count != 1 || done.result.Bytes == 0 {
		t.Fatalf("result = %+v", done.result)
	}
	if !strings.HasSuffix(done.result.Path, ".json") {
		t.Fatalf("path = %s", done.result.Path)
	}

	model, _ := env.app.Update(done)
	if !strings.Contains(model.(App).status, "Exported 1 logs") {
		t.Fatalf("status = %q", model.(App).status)
	}
}

func TestAppCloseStopsForwarding(t *testing.T) {
	env := newTestEnv(t)
	env.app.Close()
	env.app.Close()

	env.svc.Machine.StartFocus()
	select {
	case <-env.app.events:
		t.Fatal("events forwarded after Close")
	default:
	}
	if msg := env.app.waitForEvent()(); msg != nil {
		t.Fatalf("waitForEvent after Close = %#v", msg)
	}
}

// ============================================================
// Key bindings
// ============================================================

func TestKeyMapShortHelp(t *testing.T) {
	if len(keys.ShortHelp()) == 0 {
		t.Fatal("short help should have bindings")
	}
}

func TestKeyMapFullHelp(t *testing.T) {
	groups := keys.FullHelp()
	if len(groups) == 0 {
		t.Fatal("full help should have groups")
	}
	for i, g := range groups {
		if len(g) == 0 {
			t.Fatalf("full help group %d is empty", i)
		}
	}
}

// ============================================================
// Styles (smoke test: just verify they don't panic)
// ============================================================

func TestStylesRender(t *testing.T) {
	for _, theme := range []settings.Theme{settings.ThemeLight, settings.ThemeDark, settings.ThemeSystem} {
		for _, size := range []settings.FontSize{settings.FontSmall, settings.FontMedium, settings.FontLarge} {
			applyTheme(theme, size)
			for name, st := range map[string]func() string{
				"activeTab":    func() string { return activeTabStyle.Render("test") },
				"inactiveTab":  func() string { return inactiveTabStyle.Render("test") },
				"panel":        func() string { return panelStyle.Render("test") },
				"activePanel":  func() string { return activePanelStyle.Render("test") },
				"timer":        func() string { return timerStyle.Render("test") },
				"title":        func() string { return titleStyle.Render("test") },
				"subtitle":     func() string { return subtitleStyle.Render("test") },
				"accent":       func() string { return accentStyle.Render("test") },
				"success":      func() string { return successStyle.Render("test") },
				"warning":      func() string { return warningStyle.Render("test") },
				"error":        func() string { return errorStyle.Render("test") },
				"muted":        func() string { return mutedStyle.Render("test") },
				"highlight":    func() string { return highlightStyle.Render("test") },
				"header":       func() string { return headerStyle.Render("test") },
				"footer":       func() string { return footerStyle.Render("test") },
				"selectedItem": func() string { return selectedItemStyle.Render("test") },
				"normalItem":   func() string { return normalItemStyle.Render("test") },
			} {
				if st() == "" {
					t.Fatalf("%s/%s: style %q rendered empty", theme, size, name)
				}
			}
		}
	}
	applyTheme(settings.ThemeSystem, settings.FontMedium)
}
