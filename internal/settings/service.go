package settings

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/sadopc/pomotask/internal/calendar"
)

// Gateway is the slice of the persistence store settings need.
type Gateway interface {
	Load(key string) ([]byte, error)
	Save(key string, value []byte) error
}

// Service loads and saves the user's settings.
type Service struct {
	mu       sync.RWMutex
	gw       Gateway
	key      string
	settings Settings
}

func NewService(gw Gateway, key string) *Service {
	return &Service{gw: gw, key: key, settings: Default()}
}

// Load reads stored settings. Fields missing from storage keep their defaults.
func (s *Service) Load() error {
	data, err := s.gw.Load(s.key)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	loaded := Default()
	if len(data) > 0 {
		if err := json.Unmarshal(data, &loaded); err != nil {
			return fmt.Errorf("decode settings: %w", err)
		}
	}
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	s.mu.Lock()
	s.settings = loaded
	s.mu.Unlock()
	return nil
}

func (s *Service) Get() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Update applies fn to a copy of the settings and keeps the result only if
// it validates. Memory is updated before the save.
func (s *Service) Update(fn func(*Settings)) (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.settings
	fn(&next)
	if err := next.Validate(); err != nil {
		return s.settings, err
	}
	s.settings = next

	data, err := json.Marshal(next)
	if err != nil {
		return next, fmt.Errorf("encode settings: %w", err)
	}
	if err := s.gw.Save(s.key, data); err != nil {
		return next, fmt.Errorf("save settings: %w", err)
	}
	return next, nil
}

func (s *Service) SetTheme(t Theme) error {
	_, err := s.Update(func(st *Settings) { st.Theme = t })
	return err
}

func (s *Service) SetFontSize(f FontSize) error {
	_, err := s.Update(func(st *Settings) { st.FontSize = f })
	return err
}

func (s *Service) SetWeekStart(w calendar.WeekStartDay) error {
	_, err := s.Update(func(st *Settings) { st.WeekStart = w })
	return err
}

func (s *Service) SetReminderEnabled(enabled bool) error {
	_, err := s.Update(func(st *Settings) { st.ReminderEnabled = enabled })
	return err
}
