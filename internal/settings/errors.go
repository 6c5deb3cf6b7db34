package settings

import "errors"

var (
	// ErrInvalidTheme is returned for a theme other than light, dark or system
	ErrInvalidTheme = errors.New("theme must be light, dark or system")

	// ErrInvalidFontSize is returned for a font size other than s, m or l
	ErrInvalidFontSize = errors.New("font size must be s, m or l")

	// ErrInvalidWeekStart is returned when the week does not start on Monday or Sunday
	ErrInvalidWeekStart = errors.New("week start must be mon or sun")

	// ErrInvalidFocusMinutes is returned when the focus length is outside 1..180 minutes
	ErrInvalidFocusMinutes = errors.New("focus length must be between 1 and 180 minutes")

	// ErrInvalidBreakMinutes is returned when the break length is outside 1..60 minutes
	ErrInvalidBreakMinutes = errors.New("break length must be between 1 and 60 minutes")

	// ErrInvalidResumePolicy is returned for an unknown resume policy
	ErrInvalidResumePolicy = errors.New("resume policy must be focus or previous")
)
