package settings

import (
	"github.com/sadopc/pomotask/internal/calendar"
	"github.com/sadopc/pomotask/internal/pomodoro"
)

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

type FontSize string

const (
	FontSmall  FontSize = "s"
	FontMedium FontSize = "m"
	FontLarge  FontSize = "l"
)

// Settings holds the user's preferences.
type Settings struct {
	Theme           Theme                 `json:"theme"`
	FontSize        FontSize              `json:"fontSize"`
	WeekStart       calendar.WeekStartDay `json:"weekStart"`
	ReminderEnabled bool                  `json:"reminderEnabled"`
	FocusMinutes    int                   `json:"focusMinutes"`
	BreakMinutes    int                   `json:"breakMinutes"`
	ResumePolicy    pomodoro.ResumePolicy `json:"resumePolicy"`
}

// Default returns the settings used before the user changes anything
func Default() Settings {
	return Settings{
		Theme:           ThemeSystem,
		FontSize:        FontMedium,
		WeekStart:       calendar.Monday,
		ReminderEnabled: false,
		FocusMinutes:    pomodoro.DefaultFocusDuration / 60,
		BreakMinutes:    pomodoro.DefaultBreakDuration / 60,
		ResumePolicy:    pomodoro.ResumeIntoFocus,
	}
}

// Validate checks if the settings values are valid
func (s Settings) Validate() error {
	switch s.Theme {
	case ThemeLight, ThemeDark, ThemeSystem:
	default:
		return ErrInvalidTheme
	}
	switch s.FontSize {
	case FontSmall, FontMedium, FontLarge:
	default:
		return ErrInvalidFontSize
	}
	if s.WeekStart != calendar.Monday && s.WeekStart != calendar.Sunday {
		return ErrInvalidWeekStart
	}
	if s.FocusMinutes < 1 || s.FocusMinutes > 180 {
		return ErrInvalidFocusMinutes
	}
	if s.BreakMinutes < 1 || s.BreakMinutes > 60 {
		return ErrInvalidBreakMinutes
	}
	if s.ResumePolicy != pomodoro.ResumeIntoFocus && s.ResumePolicy != pomodoro.ResumeIntoPrevious {
		return ErrInvalidResumePolicy
	}
	return nil
}

// PomodoroConfig converts the timer preferences into a machine config.
func (s Settings) PomodoroConfig() pomodoro.Config {
	return pomodoro.Config{
		FocusDuration: s.FocusMinutes * 60,
		BreakDuration: s.BreakMinutes * 60,
		ResumePolicy:  s.ResumePolicy,
	}
}
