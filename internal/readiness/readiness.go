// Package readiness runs callbacks once a page becomes safe to query and
// mutate, normalizing divergent load signals behind one registration API.
package readiness

import (
	"sync"

	"inkwell/internal/debug"
	"inkwell/internal/dom"
)

// Scheduler queues callbacks until its document becomes interactive,
// then drains the queue exactly once, in registration order. The ready
// flag is monotonic; it never reverts. Each page load owns its own
// Scheduler.
type Scheduler struct {
	strategy Strategy

	mu      sync.Mutex
	queue   []func()
	ready   bool
	started bool
	closed  bool
	stop    chan struct{}
}

// New builds a Scheduler for the document, selecting the detection
// strategy once by capability probing.
func New(doc dom.Document) *Scheduler {
	s := &Scheduler{
		strategy: Detect(doc),
		stop:     make(chan struct{}),
	}
	debug.Logf("readiness: selected %s strategy", s.strategy.Name())
	return s
}

// OnReady registers fn to run once the document is interactive. Callbacks
// registered before readiness run in registration order when the document
// loads; a callback registered after readiness runs immediately. Every
// callback runs exactly once. Registrations after Close are dropped.
func (s *Scheduler) OnReady(fn func()) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if s.ready {
		s.mu.Unlock()
		fn()
		return
	}
	s.queue = append(s.queue, fn)
	start := !s.started
	s.started = true
	s.mu.Unlock()

	// The first registration starts the detection loop.
	if start {
		go s.watch()
	}
}

// Ready reports whether the document has become interactive.
func (s *Scheduler) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// Close tears the scheduler down. Pending callbacks never run and later
// registrations are dropped. Safe to call more than once.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.queue = nil
	close(s.stop)
}

func (s *Scheduler) watch() {
	if !s.strategy.Wait(s.stop) {
		return
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.ready = true
	pending := s.queue
	s.queue = nil
	s.mu.Unlock()

	debug.Logf("readiness: document interactive, draining %d callbacks", len(pending))
	for _, fn := range pending {
		fn()
	}
}
