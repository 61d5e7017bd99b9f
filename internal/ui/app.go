// Package ui implements the terminal reader: one page on screen, the
// theme toggle controls wired to the page's document surface, and the
// persisted theme preference applied across runs.
package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"

	"inkwell/internal/analytics"
	"inkwell/internal/content"
	"inkwell/internal/debug"
	"inkwell/internal/readiness"
	"inkwell/internal/storage"
	"inkwell/internal/theme"
	"inkwell/internal/ui/palette"
)

const (
	minViewportWidth  = 20
	minViewportHeight = 5

	// siteBaseURL is the published location of the pages; used for the
	// copy-link action.
	siteBaseURL = "https://papertrails.example/"
)

// Config configures the reader application.
type Config struct {
	StartPage string
	Store     storage.Store
	Analytics *analytics.Client
	Version   string
}

// App implements the Bubble Tea model for Inkwell.
type App struct {
	cfg  Config
	keys KeyMap
	conv *content.Converter

	slugs   []string
	slugIdx int

	// Per page load: the document surface, its readiness scheduler and
	// the theme controller bound to it.
	page       *content.Page
	sched      *readiness.Scheduler
	controller *theme.Controller
	readyCh    chan struct{}
	pageReady  bool

	viewport viewport.Model
	ready    bool
	width    int
	height   int

	markdown string
	status   string
	err      error
}

// NewApp creates the reader and opens the configured start page.
func NewApp(cfg Config) (*App, error) {
	slugs := content.Slugs()
	if len(slugs) == 0 {
		return nil, fmt.Errorf("no pages available")
	}

	idx := 0
	for i, s := range slugs {
		if s == cfg.StartPage {
			idx = i
			break
		}
	}

	m := &App{
		cfg:   cfg,
		keys:  DefaultKeyMap(),
		conv:  content.NewConverter(),
		slugs: slugs,
	}
	if err := m.openPage(idx); err != nil {
		return nil, err
	}
	return m, nil
}

// openPage loads a page and sets up the objects owned by one page load:
// a fresh readiness scheduler and a fresh theme controller. The previous
// page's scheduler is torn down.
func (m *App) openPage(idx int) error {
	page, err := content.Load(m.slugs[idx])
	if err != nil {
		return err
	}
	if m.sched != nil {
		m.sched.Close()
	}

	m.slugIdx = idx
	m.page = page
	m.pageReady = false
	m.markdown = ""
	m.status = ""
	m.readyCh = make(chan struct{})
	m.sched = readiness.New(page.Document)
	m.controller = theme.NewController(page.Document, m.cfg.Store)
	m.controller.OnChange(func(mode theme.Mode) {
		m.cfg.Analytics.Track("theme_changed", map[string]any{
			"mode": mode.String(),
			"page": page.Slug,
		})
	})

	readyCh := m.readyCh
	ctrl := m.controller
	m.sched.OnReady(func() {
		ctrl.Init()
		close(readyCh)
	})

	debug.Logf("ui: opened page %s", page.Slug)
	return nil
}

// Controller exposes the active theme controller, mainly for tests.
func (m *App) Controller() *theme.Controller { return m.controller }

// Page returns the currently open page.
func (m *App) Page() *content.Page { return m.page }

// syncPalette makes the render palette follow the page root's style
// class. The class, not the stored mode, drives presentation: a page
// loaded with a persisted dark preference shows checked controls but
// stays light until the first click, matching the site's behavior.
func (m *App) syncPalette() {
	if m.page.Document.Root().HasClass(theme.DarkClass) {
		palette.Set(theme.Dark)
	} else {
		palette.Set(theme.Light)
	}
}

// refreshViewport re-renders the article markdown with the active
// palette's glamour style.
func (m *App) refreshViewport() {
	if !m.ready || !m.pageReady {
		return
	}

	if m.markdown == "" {
		md, err := m.page.Markdown(m.conv)
		if err != nil {
			m.err = err
			return
		}
		m.markdown = md
	}

	width := m.viewport.Width - 2
	if width < minViewportWidth {
		width = minViewportWidth
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(palette.Current().GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		m.err = err
		return
	}
	out, err := renderer.Render(m.markdown)
	if err != nil {
		m.err = err
		return
	}
	m.viewport.SetContent(out)
}

// clickByID dispatches a click to the element with the given id, if the
// page has one.
func (m *App) clickByID(id string) {
	el, ok := m.page.Document.ElementByID(id)
	if !ok {
		debug.Logf("ui: no %s element on page %s", id, m.page.Slug)
		return
	}
	el.Click()
	m.syncPalette()
	m.refreshViewport()
}
