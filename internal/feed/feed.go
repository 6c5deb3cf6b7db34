// Package feed keeps the user's own focus posts.
package feed

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sadopc/pomotask/internal/calendar"
	"github.com/sadopc/pomotask/internal/clock"
)

const (
	CurrentUserID   = "user_current"
	CurrentUserName = "あなた"
)

var (
	ErrNotFound     = errors.New("post not found")
	ErrEmptyMessage = errors.New("post message must not be empty")
)

type Post struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	UserName     string    `json:"userName"`
	Message      string    `json:"message"`
	FocusMinutes int       `json:"focusMinutes"`
	CreatedAt    time.Time `json:"createdAt"`
	IsOwn        bool      `json:"isOwn"`
}

type Filter string

const (
	FilterToday Filter = "today"
	FilterWeek  Filter = "week"
	FilterAll   Filter = "all"
)

// ParseFilter maps an empty string to FilterAll.
func ParseFilter(s string) (Filter, error) {
	switch Filter(s) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterToday, FilterWeek:
		return Filter(s), nil
	}
	return "", fmt.Errorf("unknown feed filter %q", s)
}

// Gateway is the slice of the persistence store the feed needs.
type Gateway interface {
	Load(key string) ([]byte, error)
	Save(key string, value []byte) error
}

// Feed holds posts newest first.
type Feed struct {
	mu    sync.RWMutex
	gw    Gateway
	key   string
	clock clock.Clock
	posts []Post
}

func New(gw Gateway, key string, c clock.Clock) *Feed {
	return &Feed{gw: gw, key: key, clock: c}
}

func (f *Feed) Load() error {
	data, err := f.gw.Load(f.key)
	if err != nil {
		return fmt.Errorf("load posts: %w", err)
	}
	var posts []Post
	if len(data) > 0 {
		if err := json.Unmarshal(data, &posts); err != nil {
			return fmt.Errorf("decode posts: %w", err)
		}
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	f.mu.Lock()
	f.posts = posts
	f.mu.Unlock()
	return nil
}

// Add publishes a post by the current user at the top of the feed.
func (f *Feed) Add(message string, focusMinutes int) (Post, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return Post{}, ErrEmptyMessage
	}
	p := Post{
		ID:           uuid.NewString(),
		UserID:       CurrentUserID,
		UserName:     CurrentUserName,
		Message:      message,
		FocusMinutes: focusMinutes,
		CreatedAt:    f.clock.Now(),
		IsOwn:        true,
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.posts = append([]Post{p}, f.posts...)
	return p, f.saveLocked()
}

func (f *Feed) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.posts {
		if f.posts[i].ID == id {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return f.saveLocked()
		}
	}
	return fmt.Errorf("delete post %s: %w", id, ErrNotFound)
}

// Posts returns the posts matching filter, newest first. Today means the
// calendar day of now in now's location; week means the last seven days
// counted from today's midnight.
func (f *Feed) Posts(filter Filter, now time.Time) []Post {
	today := calendar.DayOf(now)
	weekAgo := today.AddDays(-7).Start(now.Location())

	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []Post
	for _, p := range f.posts {
		switch filter {
		case FilterToday:
			if !calendar.DayIn(p.CreatedAt, now.Location()).Equal(today) {
				continue
			}
		case FilterWeek:
			if p.CreatedAt.Before(weekAgo) {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

func (f *Feed) saveLocked() error {
	data, err := json.Marshal(f.posts)
	if err != nil {
		return fmt.Errorf("encode posts: %w", err)
	}
	if err := f.gw.Save(f.key, data); err != nil {
		return fmt.Errorf("save posts: %w", err)
	}
	return nil
}
