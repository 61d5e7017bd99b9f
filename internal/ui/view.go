package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"

	"inkwell/internal/theme"
)

func (m *App) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n", m.err)
	}
	if !m.ready {
		return "Initializing..."
	}

	header := m.renderHeader()

	var body string
	if !m.pageReady {
		body = stylePane().
			Width(m.width - 2).
			Height(m.height - 5).
			Render("Loading page...")
	} else {
		body = stylePane().
			Width(m.width - 2).
			Height(m.height - 5).
			Render(m.viewport.View())
	}

	footer := m.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m *App) renderHeader() string {
	brand := styleHeader().Render("INKWELL")
	title := styleTitle().Render(" " + m.page.Title)

	version := ""
	if m.cfg.Version != "" {
		version = styleHelp().Render("v" + m.cfg.Version)
	}

	left := brand + title
	gap := m.width - ansi.StringWidth(left) - ansi.StringWidth(version)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + version
}

// renderFooter shows both toggle controls' observable facets — the
// desktop checkbox and the mobile label — plus the key help. The facets
// are read back from the document, not from the controller, so the
// footer shows exactly what the page shows.
func (m *App) renderFooter() string {
	desktop := "[ ] Dark mode"
	style := styleToggleOff()
	if el, ok := m.page.Document.ElementByID(theme.DesktopToggleID); ok && el.Checked() {
		desktop = "[x] Dark mode"
		style = styleToggleOn()
	}
	controls := style.Render(desktop)

	if el, ok := m.page.Document.ElementByID(theme.MobileToggleID); ok {
		label := strings.TrimSpace(el.Text())
		if label != "" {
			controls += " " + styleToggleOff().Render(label)
		}
	}

	if m.status != "" {
		controls += " " + styleStatus().Render(m.status)
	}

	pagePos := styleHelp().Render(fmt.Sprintf("%d/%d", m.slugIdx+1, len(m.slugs)))
	gap := m.width - ansi.StringWidth(controls) - ansi.StringWidth(pagePos)
	if gap < 1 {
		gap = 1
	}
	top := controls + strings.Repeat(" ", gap) + pagePos

	help := "[t] Theme  [m] Theme (mobile)  [n/p] Pages  [j/k] Scroll  [y] Copy link  [q] Quit"
	helpLine := styleHelp().Render(wordwrap.String(help, m.width))

	return top + "\n" + helpLine
}
