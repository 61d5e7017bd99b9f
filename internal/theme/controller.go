package theme

import (
	"errors"

	"inkwell/internal/debug"
	"inkwell/internal/dom"
	"inkwell/internal/storage"
)

// Fixed identifiers on the page surface.
const (
	// DarkClass is the style class toggled on the page root.
	DarkClass = "dark-mode"
	// DesktopToggleID is the checkbox-style desktop control.
	DesktopToggleID = "theme-toggle"
	// MobileToggleID is the text-bearing mobile control.
	MobileToggleID = "theme-toggle-mobile"
	// ToggleButtonClass marks every element that acts as a theme toggle.
	ToggleButtonClass = "toggle-btn"
)

// Controller owns the theme mode for one page load. It reads the
// persisted preference once at Init, keeps both toggle controls in
// agreement with the mode, and persists every change. All methods are
// main-thread only; a click runs to completion before the next event.
type Controller struct {
	doc   dom.Document
	store storage.Store

	mode        Mode
	initialized bool
	listeners   []func(Mode)
}

// NewController binds a controller to a page surface and a preference
// store. The store may be nil; persistence is then skipped entirely.
func NewController(doc dom.Document, store storage.Store) *Controller {
	return &Controller{doc: doc, store: store}
}

// Init performs the one-time initialization inside a readiness callback:
// resolve the persisted mode, set both control indicators to match, and
// bind click handlers on every toggle-button element. Init never applies
// the dark class to the page root; only clicks do. Calling Init again is
// a no-op.
//
// Missing elements are skipped per element: a page without one of the
// controls still gets the rest wired.
func (c *Controller) Init() {
	if c.initialized {
		return
	}
	c.initialized = true

	c.mode = c.load()
	debug.Logf("theme: initial mode %s", c.mode)

	if box, ok := c.doc.ElementByID(DesktopToggleID); ok {
		box.SetChecked(c.mode == Dark)
	}
	if label, ok := c.doc.ElementByID(MobileToggleID); ok {
		label.SetText(c.mode.Label())
	}

	for _, el := range c.doc.ElementsByClass(ToggleButtonClass) {
		el.OnClick(c.toggle)
	}
}

// Mode returns the active mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// OnChange registers fn to run after every mode change, with the new
// mode. Used by the presentation layer to swap palettes.
func (c *Controller) OnChange(fn func(Mode)) {
	c.listeners = append(c.listeners, fn)
}

// toggle is the single transition shared by both controls: flip the
// mode, apply the root style class, update both indicators, persist.
// Either control's click converges on the same end state.
func (c *Controller) toggle() {
	c.mode = c.mode.Toggle()

	root := c.doc.Root()
	if c.mode == Dark {
		root.AddClass(DarkClass)
	} else {
		root.RemoveClass(DarkClass)
	}

	if box, ok := c.doc.ElementByID(DesktopToggleID); ok {
		box.SetChecked(c.mode == Dark)
	}
	if label, ok := c.doc.ElementByID(MobileToggleID); ok {
		label.SetText(c.mode.Label())
	}

	c.save(c.mode)

	for _, fn := range c.listeners {
		fn(c.mode)
	}
}

// load resolves the initial mode from the store. Unavailable storage is
// the same as an absent key: Light.
func (c *Controller) load() Mode {
	if c.store == nil {
		return Light
	}
	v, err := c.store.Get(StorageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			debug.Logf("theme: preference read skipped: %v", err)
		}
		return Light
	}
	return Parse(v)
}

// save persists the mode marker. Failures are logged and swallowed; the
// DOM state above has already been applied.
func (c *Controller) save(m Mode) {
	if c.store == nil {
		return
	}
	if err := c.store.Set(StorageKey, m.String()); err != nil {
		debug.Logf("theme: preference write skipped: %v", err)
	}
}
