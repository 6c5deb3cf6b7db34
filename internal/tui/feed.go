package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/pomotask/internal/clock"
	"github.com/sadopc/pomotask/internal/feed"
	"github.com/sadopc/pomotask/internal/logging"
	"github.com/sadopc/pomotask/internal/stats"
)

var feedFilters = []feed.Filter{feed.FilterToday, feed.FilterWeek, feed.FilterAll}

type feedModel struct {
	feed   *feed.Feed
	clock  clock.Clock
	log    logging.Logger
	width  int
	height int

	filter int // index into feedFilters
	posts  []feed.Post
	cursor int

	formActive  bool
	form        *huh.Form
	formMessage *string
	formMinutes *string
}

func newFeedModel(f *feed.Feed, c clock.Clock, log logging.Logger) feedModel {
	msg, mins := "", ""
	return feedModel{
		feed:        f,
		clock:       c,
		log:         log,
		filter:      2,
		formMessage: &msg,
		formMinutes: &mins,
	}
}

func (m *feedModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

type feedDataMsg struct {
	posts []feed.Post
}

func (m feedModel) refresh() tea.Cmd {
	filter := feedFilters[m.filter]
	return func() tea.Msg {
		return feedDataMsg{posts: m.feed.Posts(filter, m.clock.Now())}
	}
}

func (m feedModel) update(msg tea.Msg) (feedModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case feedDataMsg:
		m.posts = msg.posts
		if m.cursor >= len(m.posts) {
			m.cursor = max(0, len(m.posts)-1)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.posts)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Left):
			m.filter = (m.filter + len(feedFilters) - 1) % len(feedFilters)
			m.cursor = 0
			return m, m.refresh()
		case key.Matches(msg, keys.Right):
			m.filter = (m.filter + 1) % len(feedFilters)
			m.cursor = 0
			return m, m.refresh()
		case key.Matches(msg, keys.New):
			return m.showForm()
		case key.Matches(msg, keys.Delete):
			if m.cursor < len(m.posts) {
				if err := m.feed.Delete(m.posts[m.cursor].ID); err != nil {
					if errors.Is(err, feed.ErrNotFound) {
						return m, m.refresh()
					}
					return m, tea.Batch(saveFailed(m.log, "posts", err), m.refresh())
				}
				return m, m.refresh()
			}
		}
	}
	return m, nil
}

func (m feedModel) showForm() (feedModel, tea.Cmd) {
	*m.formMessage = ""
	*m.formMinutes = "25"

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Message").Value(m.formMessage).Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return feed.ErrEmptyMessage
				}
				return nil
			}),
			huh.NewInput().Title("Focus minutes").Value(m.formMinutes).Validate(validateMinutes(0, 24*60)),
		),
	).WithShowHelp(true).WithShowErrors(true)

	m.formActive = true
	return m, m.form.Init()
}

func (m feedModel) updateForm(msg tea.Msg) (feedModel, tea.Cmd) {
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
		mins, _ := parseMinutes(*m.formMinutes)
		_, err := m.feed.Add(*m.formMessage, mins)
		switch {
		case errors.Is(err, feed.ErrEmptyMessage):
			return m, func() tea.Msg { return statusMsg{text: err.Error(), isError: true} }
		case err != nil:
			return m, tea.Batch(saveFailed(m.log, "posts", err), m.refresh())
		}
		return m, m.refresh()
	}
	return m, cmd
}

func (m feedModel) view() string {
	w := m.width - 4

	if m.formActive && m.form != nil {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("New Post"), "", m.form.View()),
		)
	}

	var tabs []string
	for i, f := range feedFilters {
		name := strings.ToUpper(string(f[:1])) + string(f[1:])
		if i == m.filter {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Feed"), "  ", lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...),
	)

	if len(m.posts) == 0 {
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			header, "", mutedStyle.Render("No posts here yet. Finish a focus session or press n."),
		))
	}

	now := m.clock.Now()
	rows := []string{header, ""}
	for i, p := range m.posts {
		cursor := "  "
		style := normalItemStyle
		if i == m.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		meta := mutedStyle.Render(fmt.Sprintf("%s · %s", p.UserName, stats.RelativeTime(p.CreatedAt, now)))
		focus := ""
		if p.FocusMinutes > 0 {
			focus = successStyle.Render(" ⏱ " + stats.FormatDuration(p.FocusMinutes))
		}
		rows = append(rows, cursor+meta+focus)
		rows = append(rows, "    "+style.Render(truncate(p.Message, max(10, w-10))))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  ←/→: filter  n: new post  d: delete"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
