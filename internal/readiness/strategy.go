package readiness

import (
	"time"

	"inkwell/internal/dom"
)

// Strategy detects when a document becomes interactive. One strategy is
// selected per document at scheduler construction and stays fixed for
// the page lifetime.
type Strategy interface {
	// Name identifies the strategy in debug logs.
	Name() string

	// Wait blocks until the document is interactive or stop is closed.
	// It returns false when stopped first.
	Wait(stop <-chan struct{}) bool
}

const (
	// probeRetryDelay is the pause between scroll-probe attempts.
	probeRetryDelay = 10 * time.Millisecond
	// statePollInterval is the fixed interval for ready-state polling.
	statePollInterval = 50 * time.Millisecond
)

// Detect probes the document for readiness capabilities and picks the
// best available strategy: a load notification beats scroll probing,
// which beats ready-state polling. A document advertising none of the
// capabilities is treated as already interactive.
func Detect(doc dom.Document) Strategy {
	if n, ok := doc.(dom.LoadNotifier); ok {
		return &notifyStrategy{ch: n.LoadNotify()}
	}
	if p, ok := doc.(dom.ScrollProber); ok {
		return &probeStrategy{probe: p.ScrollProbe}
	}
	if r, ok := doc.(dom.StateReporter); ok {
		return &pollStateStrategy{state: r.ReadyState}
	}
	return immediateStrategy{}
}

// notifyStrategy waits on the document's load notification channel.
type notifyStrategy struct {
	ch <-chan struct{}
}

func (s *notifyStrategy) Name() string { return "notify" }

func (s *notifyStrategy) Wait(stop <-chan struct{}) bool {
	select {
	case <-s.ch:
		return true
	case <-stop:
		return false
	}
}

// probeStrategy retries a scroll probe until it stops failing. Probe
// errors mean "not ready yet"; there is no retry limit and no timeout.
type probeStrategy struct {
	probe func() error
}

func (s *probeStrategy) Name() string { return "probe" }

func (s *probeStrategy) Wait(stop <-chan struct{}) bool {
	for {
		if err := s.probe(); err == nil {
			return true
		}
		select {
		case <-time.After(probeRetryDelay):
		case <-stop:
			return false
		}
	}
}

// pollStateStrategy polls the coarse ready-state string on a fixed
// interval until it reports an interactive state.
type pollStateStrategy struct {
	state func() string
}

func (s *pollStateStrategy) Name() string { return "pollstate" }

func (s *pollStateStrategy) Wait(stop <-chan struct{}) bool {
	if dom.Interactive(s.state()) {
		return true
	}
	ticker := time.NewTicker(statePollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if dom.Interactive(s.state()) {
				return true
			}
		case <-stop:
			return false
		}
	}
}

// immediateStrategy covers documents with no load signal at all; they
// are considered interactive from the start.
type immediateStrategy struct{}

func (immediateStrategy) Name() string { return "immediate" }

func (immediateStrategy) Wait(<-chan struct{}) bool { return true }
