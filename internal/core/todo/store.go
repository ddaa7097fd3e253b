package todo

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Listener is invoked synchronously after every state transition.
type Listener func(Change)

type subscription struct {
	id int
	fn Listener
}

// Store owns the ordered task list and the pending input buffer for one
// session. Invalid operations (blank text, unknown ids) are silent no-ops;
// no method returns an error.
//
// Store is not safe for concurrent use. It is meant to be owned by a single
// goroutine such as the bubbletea update loop.
type Store struct {
	tasks   []Task
	pending string
	nextID  int

	subs    []subscription
	nextSub int

	now func() time.Time
	log zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used for Task.CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLogger sets the logger used for no-op and listener diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		nextID: 1,
		now:    time.Now,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends a task with the trimmed text and clears the pending input.
// Blank or whitespace-only text is ignored and reports false.
func (s *Store) Add(text string) (Task, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		s.log.Debug().Msg("add ignored: blank text")
		return Task{}, false
	}

	t := Task{
		ID:        s.nextID,
		Text:      text,
		CreatedAt: s.now(),
	}
	s.nextID++
	s.tasks = append(s.tasks, t)
	s.pending = ""

	s.emit(Change{Kind: ChangeAdded, Task: t})
	return t, true
}

// Submit adds the pending input as a new task.
func (s *Store) Submit() (Task, bool) {
	return s.Add(s.pending)
}

// Toggle flips the completion state of the task with the given id.
// Unknown ids are ignored.
func (s *Store) Toggle(id int) (Task, bool) {
	i := s.index(id)
	if i < 0 {
		s.log.Debug().Int("id", id).Msg("toggle ignored: unknown id")
		return Task{}, false
	}

	s.tasks[i].Completed = !s.tasks[i].Completed
	t := s.tasks[i]

	s.emit(Change{Kind: ChangeToggled, Task: t})
	return t, true
}

// Delete removes the task with the given id, keeping the relative order of
// the remaining tasks. Unknown ids are ignored.
func (s *Store) Delete(id int) (Task, bool) {
	i := s.index(id)
	if i < 0 {
		s.log.Debug().Int("id", id).Msg("delete ignored: unknown id")
		return Task{}, false
	}

	t := s.tasks[i]
	s.tasks = slices.Delete(s.tasks, i, i+1)

	s.emit(Change{Kind: ChangeDeleted, Task: t})
	return t, true
}

// ClearAll removes every task and returns how many were removed.
// Clearing an empty list does nothing.
func (s *Store) ClearAll() int {
	n := len(s.tasks)
	if n == 0 {
		return 0
	}

	s.tasks = nil

	s.emit(Change{Kind: ChangeCleared, Removed: n})
	return n
}

// SetPendingInput replaces the pending input buffer verbatim.
func (s *Store) SetPendingInput(text string) {
	if text == s.pending {
		return
	}
	s.pending = text
	s.emit(Change{Kind: ChangeInput})
}

// PendingInput returns the not-yet-submitted input text.
func (s *Store) PendingInput() string {
	return s.pending
}

// Tasks returns a copy of the tasks in insertion order.
func (s *Store) Tasks() []Task {
	return slices.Clone(s.tasks)
}

// Get returns the task with the given id.
func (s *Store) Get(id int) (Task, bool) {
	i := s.index(id)
	if i < 0 {
		return Task{}, false
	}
	return s.tasks[i], true
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// CompletedCount returns the number of completed tasks.
func (s *Store) CompletedCount() int {
	return s.Summary().Completed
}

// TotalCount returns the number of tasks.
func (s *Store) TotalCount() int {
	return len(s.tasks)
}

// CompletionPercentage returns the rounded share of completed tasks, 0 when
// the list is empty.
func (s *Store) CompletionPercentage() int {
	return s.Summary().Percent
}

// Summary derives the aggregate counts from the current tasks.
func (s *Store) Summary() Summary {
	return Summarize(s.tasks)
}

// Subscribe registers fn to be called after every transition. The returned
// function removes the subscription and may be called more than once.
func (s *Store) Subscribe(fn Listener) func() {
	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscription{id: id, fn: fn})

	return func() {
		s.subs = slices.DeleteFunc(s.subs, func(sub subscription) bool {
			return sub.id == id
		})
	}
}

func (s *Store) index(id int) int {
	return slices.IndexFunc(s.tasks, func(t Task) bool { return t.ID == id })
}

func (s *Store) emit(c Change) {
	c.Input = s.pending
	c.Summary = s.Summary()

	// Listeners may unsubscribe while being notified.
	subs := slices.Clone(s.subs)
	for _, sub := range subs {
		s.notify(sub.fn, c)
	}
}

func (s *Store) notify(fn Listener, c Change) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().
				Str("change", string(c.Kind)).
				Str("panic", fmt.Sprint(r)).
				Msg("listener panicked")
		}
	}()
	fn(c)
}
