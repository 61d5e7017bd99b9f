package ui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"inkwell/internal/theme"
)

// Init starts waiting for the current page's readiness signal.
func (m *App) Init() tea.Cmd {
	return m.waitForReadyCmd()
}

// waitForReadyCmd delivers pageReadyMsg once the page document becomes
// interactive. The slug guards against a stale message arriving after
// the user already moved to another page.
func (m *App) waitForReadyCmd() tea.Cmd {
	ch := m.readyCh
	slug := m.page.Slug
	return func() tea.Msg {
		<-ch
		return pageReadyMsg{slug: slug}
	}
}

func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.viewport.Width = msg.Width - 2
		if m.viewport.Width < minViewportWidth {
			m.viewport.Width = minViewportWidth
		}
		m.viewport.Height = msg.Height - 5
		if m.viewport.Height < minViewportHeight {
			m.viewport.Height = minViewportHeight
		}
		m.refreshViewport()
		return m, nil

	case pageReadyMsg:
		if msg.slug != m.page.Slug {
			return m, nil
		}
		m.pageReady = true
		m.syncPalette()
		m.refreshViewport()
		m.cfg.Analytics.Page(msg.slug)
		return m, nil

	case pageLoadErrMsg:
		m.err = msg.err
		return m, nil

	case linkCopiedMsg:
		if msg.ok {
			m.status = "Link copied"
		} else {
			m.status = "Copy failed"
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.ToggleDesktop):
		m.clickByID(theme.DesktopToggleID)
		return m, nil

	case key.Matches(msg, m.keys.ToggleMobile):
		m.clickByID(theme.MobileToggleID)
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		return m.movePage(1)

	case key.Matches(msg, m.keys.PrevPage):
		return m.movePage(-1)

	case key.Matches(msg, m.keys.CopyLink):
		return m, m.copyLinkCmd()

	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.viewport.LineUp(1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.viewport.LineDown(1)
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.PageUp()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.PageDown()
		return m, nil
	}
	return m, nil
}

func (m *App) movePage(delta int) (tea.Model, tea.Cmd) {
	idx := (m.slugIdx + delta + len(m.slugs)) % len(m.slugs)
	if idx == m.slugIdx {
		return m, nil
	}
	if err := m.openPage(idx); err != nil {
		return m, func() tea.Msg { return pageLoadErrMsg{err: err} }
	}
	m.viewport.GotoTop()
	return m, m.waitForReadyCmd()
}

func (m *App) copyLinkCmd() tea.Cmd {
	url := siteBaseURL + m.page.Slug
	return func() tea.Msg {
		err := clipboard.WriteAll(url)
		return linkCopiedMsg{ok: err == nil}
	}
}
