package carousel

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type slotKind int

const (
	slotAutoplay slotKind = iota
	slotSettle
	slotCount
)

type slot struct {
	tag    int
	timer  Timer
	cancel context.CancelFunc
}

func (s *slot) release() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// scheduler owns the pending timers of one carousel. It is shared by every
// copy of a Model so that disposing any copy cancels them all.
type scheduler struct {
	clock    Clock
	mu       sync.Mutex
	disposed bool
	slots    [slotCount]slot
}

func newScheduler(clock Clock) *scheduler {
	return &scheduler{clock: clock}
}

// arm replaces the pending timer of kind with one that delivers build(tag)
// after d. The previous timer is cancelled and its command returns nil.
func (s *scheduler) arm(kind slotKind, d time.Duration, build func(tag int) tea.Msg) tea.Cmd {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return nil
	}
	sl := &s.slots[kind]
	sl.release()
	sl.tag++

	ctx, cancel := context.WithCancel(context.Background())
	timer := s.clock.NewTimer(d)
	sl.timer, sl.cancel = timer, cancel
	msg := build(sl.tag)

	return func() tea.Msg {
		select {
		case <-timer.C():
			return msg
		case <-ctx.Done():
			return nil
		}
	}
}

// fire reports whether tag is the live timer of kind and, if so, clears it.
func (s *scheduler) fire(kind slotKind, tag int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl := &s.slots[kind]
	if s.disposed || sl.tag != tag || sl.timer == nil {
		return false
	}
	sl.release()
	return true
}

func (s *scheduler) cancel(kind slotKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[kind].release()
}

func (s *scheduler) dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disposed = true
	for i := range s.slots {
		s.slots[i].release()
	}
}

func (s *scheduler) isDisposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}
