// Package toast keeps the ordered list of short-lived user notifications.
//
// Every toast gets the next integer id and, unless its duration is
// negative, an expiry timer that removes it. Dismissal stops the timer;
// Clear does not, so a late timer must (and does) find nothing to remove.
package toast

import (
	"sync"
	"time"
)

type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeWarning Type = "warning"
	TypeInfo    Type = "info"
)

// DefaultDuration applies when a toast is shown with a zero duration.
const DefaultDuration = 5 * time.Second

// Persistent keeps a toast until it is dismissed.
const Persistent time.Duration = -1

type Toast struct {
	ID       int
	Type     Type
	Title    string
	Message  string
	Duration time.Duration
}

// Store is safe for concurrent use.
type Store struct {
	mu              sync.Mutex
	nextID          int
	toasts          []Toast
	timers          map[int]*time.Timer
	subscribers     []func(Toast)
	defaultDuration time.Duration
	afterFunc       func(time.Duration, func()) *time.Timer
}

type Option func(*Store)

// WithDefaultDuration overrides DefaultDuration for this store.
func WithDefaultDuration(d time.Duration) Option {
	return func(s *Store) {
		if d != 0 {
			s.defaultDuration = d
		}
	}
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		timers:          make(map[int]*time.Timer),
		defaultDuration: DefaultDuration,
		afterFunc:       time.AfterFunc,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Show appends t with a fresh id and returns that id. A zero Duration is
// replaced by the store default; a negative one means "until dismissed".
func (s *Store) Show(t Toast) int {
	s.mu.Lock()

	s.nextID++
	t.ID = s.nextID
	if t.Type == "" {
		t.Type = TypeInfo
	}
	if t.Duration == 0 {
		t.Duration = s.defaultDuration
	}
	if t.Duration < 0 {
		t.Duration = 0
	}

	s.toasts = append(s.toasts, t)

	if t.Duration > 0 {
		id := t.ID
		s.timers[id] = s.afterFunc(t.Duration, func() { s.expire(id) })
	}

	subs := append([]func(Toast){}, s.subscribers...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(t)
	}
	return t.ID
}

func (s *Store) Success(title, message string, d time.Duration) int {
	return s.Show(Toast{Type: TypeSuccess, Title: title, Message: message, Duration: d})
}

func (s *Store) Error(title, message string, d time.Duration) int {
	return s.Show(Toast{Type: TypeError, Title: title, Message: message, Duration: d})
}

func (s *Store) Warning(title, message string, d time.Duration) int {
	return s.Show(Toast{Type: TypeWarning, Title: title, Message: message, Duration: d})
}

func (s *Store) Info(title, message string, d time.Duration) int {
	return s.Show(Toast{Type: TypeInfo, Title: title, Message: message, Duration: d})
}

// Dismiss removes the toast with the given id. Unknown ids are ignored.
func (s *Store) Dismiss(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.timers[id]; ok {
		timer.Stop()
		delete(s.timers, id)
	}
	s.remove(id)
}

// Clear empties the list. Pending timers keep running and no-op when fired.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.toasts = nil
}

// List returns a copy of the visible toasts in display order.
func (s *Store) List() []Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Toast(nil), s.toasts...)
}

// Subscribe registers fn to be called, outside the store lock, for every
// toast shown from now on.
func (s *Store) Subscribe(fn func(Toast)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) expire(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.timers, id)
	s.remove(id)
}

// remove must be called with mu held.
func (s *Store) remove(id int) {
	for i, t := range s.toasts {
		if t.ID == id {
			s.toasts = append(s.toasts[:i], s.toasts[i+1:]...)
			return
		}
	}
}
