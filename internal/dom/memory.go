package dom

import (
	"errors"
	"sync"
)

// MemoryDocument is an in-process Document. It starts in the loading
// state and becomes interactive when MarkLoaded is called. On its own it
// advertises no readiness capability; wrap it in NotifyDocument,
// ProbeDocument or StateDocument to expose one.
type MemoryDocument struct {
	mu       sync.Mutex
	loaded   bool
	loadedCh chan struct{}

	root     *MemoryElement
	elements []*MemoryElement
}

// NewMemoryDocument creates a document with an empty root element.
func NewMemoryDocument() *MemoryDocument {
	return &MemoryDocument{
		loadedCh: make(chan struct{}),
		root:     &MemoryElement{id: "body", classes: map[string]bool{}},
	}
}

// AddElement creates an element with the given id and class tokens and
// attaches it to the document.
func (d *MemoryDocument) AddElement(id string, classes ...string) *MemoryElement {
	el := &MemoryElement{id: id, classes: map[string]bool{}}
	for _, c := range classes {
		el.classes[c] = true
	}
	d.elements = append(d.elements, el)
	return el
}

// MarkLoaded transitions the document to the interactive state. The
// transition is monotonic; calling it again has no effect.
func (d *MemoryDocument) MarkLoaded() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.loaded {
		return
	}
	d.loaded = true
	close(d.loadedCh)
}

// Loaded reports whether MarkLoaded has been called.
func (d *MemoryDocument) Loaded() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loaded
}

// Root returns the page root element.
func (d *MemoryDocument) Root() Element { return d.root }

// ElementByID looks up an attached element by id.
func (d *MemoryDocument) ElementByID(id string) (Element, bool) {
	for _, el := range d.elements {
		if el.id == id {
			return el, true
		}
	}
	return nil, false
}

// ElementsByClass returns attached elements carrying the class token.
func (d *MemoryDocument) ElementsByClass(name string) []Element {
	var out []Element
	for _, el := range d.elements {
		if el.classes[name] {
			out = append(out, el)
		}
	}
	return out
}

// NotifyDocument exposes the standards-based completion capability: a
// channel closed when the document loads.
type NotifyDocument struct{ *MemoryDocument }

// LoadNotify returns a channel closed on MarkLoaded.
func (d NotifyDocument) LoadNotify() <-chan struct{} { return d.loadedCh }

// ErrNotScrollable is returned by ScrollProbe while the document is
// still loading.
var ErrNotScrollable = errors.New("dom: document not scrollable yet")

// ProbeDocument exposes the scroll-probe capability of legacy engines.
type ProbeDocument struct{ *MemoryDocument }

// ScrollProbe fails until the document has loaded.
func (d ProbeDocument) ScrollProbe() error {
	if !d.Loaded() {
		return ErrNotScrollable
	}
	return nil
}

// StateDocument exposes only the coarse ready-state string.
type StateDocument struct{ *MemoryDocument }

// ReadyState reports "loading" until the document has loaded, then
// "complete".
func (d StateDocument) ReadyState() string {
	if !d.Loaded() {
		return StateLoading
	}
	return StateComplete
}

// MemoryElement is the Element implementation used by MemoryDocument.
type MemoryElement struct {
	id       string
	classes  map[string]bool
	checked  bool
	text     string
	handlers []func()
}

func (e *MemoryElement) ID() string { return e.id }

func (e *MemoryElement) AddClass(name string) { e.classes[name] = true }

func (e *MemoryElement) RemoveClass(name string) { delete(e.classes, name) }

func (e *MemoryElement) HasClass(name string) bool { return e.classes[name] }

func (e *MemoryElement) Checked() bool { return e.checked }

func (e *MemoryElement) SetChecked(v bool) { e.checked = v }

func (e *MemoryElement) Text() string { return e.text }

func (e *MemoryElement) SetText(s string) { e.text = s }

func (e *MemoryElement) OnClick(fn func()) { e.handlers = append(e.handlers, fn) }

// Click runs the registered handlers synchronously, in order.
func (e *MemoryElement) Click() {
	for _, fn := range e.handlers {
		fn()
	}
}
