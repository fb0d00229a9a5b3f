// Package carousel cycles through an ordered, fixed set of slides with
// autoplay, manual navigation and a transition lock.
//
// A Model is a bubbletea component. Navigation requests that arrive while a
// transition is still in progress are dropped, and autoplay restarts its full
// period on every index change. Call Dispose when the carousel is unmounted;
// it cancels both pending timers and later requests become no-ops.
package carousel

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	DefaultInterval   = 5000 * time.Millisecond
	DefaultTransition = 500 * time.Millisecond
)

var lastID int64

func nextID() int64 {
	return atomic.AddInt64(&lastID, 1)
}

// TickMsg advances an autoplaying carousel.
type TickMsg struct {
	ID  int64
	tag int
}

// SettledMsg ends the transition window of a carousel.
type SettledMsg struct {
	ID  int64
	tag int
}

type intentKind int

const (
	intentForward intentKind = iota
	intentBackward
	intentTarget
)

// Intent is a navigation request: a direction or an explicit slide.
type Intent struct {
	kind   intentKind
	target int
}

// Forward requests the next slide.
func Forward() Intent { return Intent{kind: intentForward} }

// Backward requests the previous slide.
func Backward() Intent { return Intent{kind: intentBackward} }

// Target requests slide i.
func Target(i int) Intent { return Intent{kind: intentTarget, target: i} }

// Option configures a Model.
type Option func(*Model)

// WithInterval sets the autoplay period. Zero or negative disables autoplay.
func WithInterval(d time.Duration) Option {
	return func(m *Model) { m.interval = d }
}

// WithTransition sets the lock window after each accepted navigation.
func WithTransition(d time.Duration) Option {
	return func(m *Model) { m.transition = d }
}

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(m *Model) { m.clock = c }
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) { m.keys = k }
}

// Model is the state of one carousel instance.
type Model struct {
	id            int64
	count         int
	index         int
	transitioning bool

	interval   time.Duration
	transition time.Duration
	clock      Clock
	keys       KeyMap
	sched      *scheduler
}

// New creates a carousel over count slides starting at slide 0.
func New(count int, opts ...Option) Model {
	if count < 0 {
		count = 0
	}
	m := Model{
		id:         nextID(),
		count:      count,
		interval:   DefaultInterval,
		transition: DefaultTransition,
		clock:      realClock{},
		keys:       DefaultKeyMap(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.sched = newScheduler(m.clock)
	return m
}

// ID identifies the instance in TickMsg and SettledMsg.
func (m Model) ID() int64 { return m.id }

// Index returns the current slide.
func (m Model) Index() int { return m.index }

// Count returns the number of slides.
func (m Model) Count() int { return m.count }

// Transitioning reports whether the lock window is open.
func (m Model) Transitioning() bool { return m.transitioning }

// Disposed reports whether Dispose has been called.
func (m Model) Disposed() bool { return m.sched.isDisposed() }

// Interval returns the autoplay period.
func (m Model) Interval() time.Duration { return m.interval }

// Controls reports whether arrows and dots are shown.
func (m Model) Controls() bool { return m.count > 1 }

// Keys returns the key bindings.
func (m Model) Keys() KeyMap { return m.keys }

// Init starts autoplay.
func (m Model) Init() tea.Cmd {
	return m.armAutoplay()
}

// Update handles timer messages for this instance and navigation keys.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if msg.ID != m.id || !m.sched.fire(slotAutoplay, msg.tag) {
			return m, nil
		}
		if m.transitioning {
			// The tick lost to the lock; wait a whole period again.
			return m, m.armAutoplay()
		}
		return m.Request(Forward())

	case SettledMsg:
		if msg.ID != m.id || !m.sched.fire(slotSettle, msg.tag) {
			return m, nil
		}
		m.transitioning = false
		return m, nil

	case tea.KeyMsg:
		if in, ok := m.keys.Intent(msg); ok {
			return m.Request(in)
		}
	}
	return m, nil
}

// Next requests the following slide.
func (m Model) Next() (Model, tea.Cmd) { return m.Request(Forward()) }

// Prev requests the preceding slide.
func (m Model) Prev() (Model, tea.Cmd) { return m.Request(Backward()) }

// GoTo requests slide i.
func (m Model) GoTo(i int) (Model, tea.Cmd) { return m.Request(Target(i)) }

// Request applies in unless the carousel is locked, disposed, has fewer than
// two slides, or the target is invalid or already current. An accepted
// request commits the new index, opens the lock window and restarts autoplay.
func (m Model) Request(in Intent) (Model, tea.Cmd) {
	if m.transitioning || m.count <= 1 || m.sched.isDisposed() {
		return m, nil
	}

	next := m.index
	switch in.kind {
	case intentForward:
		next = Next(m.index, m.count)
	case intentBackward:
		next = Previous(m.index, m.count)
	case intentTarget:
		target, ok := Jump(in.target, m.count)
		if !ok || target == m.index {
			return m, nil
		}
		next = target
	}
	m.index = next

	var settle tea.Cmd
	if m.transition > 0 {
		m.transitioning = true
		id := m.id
		settle = m.sched.arm(slotSettle, m.transition, func(tag int) tea.Msg {
			return SettledMsg{ID: id, tag: tag}
		})
	}
	return m, tea.Batch(settle, m.armAutoplay())
}

// SetInterval changes the autoplay period and restarts it.
func (m Model) SetInterval(d time.Duration) (Model, tea.Cmd) {
	m.interval = d
	if d <= 0 {
		m.sched.cancel(slotAutoplay)
		return m, nil
	}
	return m, m.armAutoplay()
}

// Dispose cancels autoplay and the pending lock release. Messages already in
// flight are ignored and every later request is dropped.
func (m Model) Dispose() Model {
	m.sched.dispose()
	return m
}

func (m Model) armAutoplay() tea.Cmd {
	if m.count <= 1 || m.interval <= 0 {
		return nil
	}
	id := m.id
	return m.sched.arm(slotAutoplay, m.interval, func(tag int) tea.Msg {
		return TickMsg{ID: id, tag: tag}
	})
}
