// Package dom models the interactive surface of a page: a root element
// whose class list controls presentation, addressable elements, and click
// binding. Implementations back it with an in-process model or real
// parsed markup.
package dom

// Ready-state strings reported by documents that only expose a coarse
// loading signal. Legacy engines report "loaded" where modern ones
// report "complete"; both mean the page is interactive.
const (
	StateLoading  = "loading"
	StateLoaded   = "loaded"
	StateComplete = "complete"
)

// Element is a single addressable node on the page.
type Element interface {
	// ID returns the element's identifier, or "" when it has none.
	ID() string

	// Class list operations on the element.
	AddClass(name string)
	RemoveClass(name string)
	HasClass(name string) bool

	// Checked is the boolean facet of a checkbox-style control.
	Checked() bool
	SetChecked(v bool)

	// Text is the textual facet of a label-style control.
	Text() string
	SetText(s string)

	// OnClick registers a click handler. Handlers run synchronously, in
	// registration order, every time Click fires.
	OnClick(fn func())

	// Click dispatches a click to all registered handlers.
	Click()
}

// Document is the page surface consumed by the theme controller.
type Document interface {
	// Root returns the page root element (the body).
	Root() Element

	// ElementByID looks up an element by identifier.
	ElementByID(id string) (Element, bool)

	// ElementsByClass returns all elements carrying the given class token.
	ElementsByClass(name string) []Element
}

// LoadNotifier is implemented by documents that announce completion
// through a channel. The channel is closed when the page becomes
// interactive.
type LoadNotifier interface {
	LoadNotify() <-chan struct{}
}

// ScrollProber is implemented by documents that expose a scroll probe as
// a readiness proxy. The probe returns an error while the page is still
// loading and nil once it is safe to touch.
type ScrollProber interface {
	ScrollProbe() error
}

// StateReporter is implemented by documents that only expose a coarse
// ready-state string (see the State constants).
type StateReporter interface {
	ReadyState() string
}

// Interactive reports whether a ready-state string means the page is
// safe to query and mutate.
func Interactive(state string) bool {
	return state == StateLoaded || state == StateComplete
}
