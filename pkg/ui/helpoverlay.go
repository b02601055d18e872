package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

// HelpOverlayModel shows keyboard shortcuts help.
type HelpOverlayModel struct {
	visible bool
}

// Toggle toggles visibility.
func (m *HelpOverlayModel) Toggle() {
	m.visible = !m.visible
}

// IsVisible returns true if the overlay is showing.
func (m HelpOverlayModel) IsVisible() bool {
	return m.visible
}

// Update handles input; any key closes the overlay.
func (m HelpOverlayModel) Update(msg tea.Msg) (HelpOverlayModel, tea.Cmd) {
	if !m.visible {
		return m, nil
	}
	if _, ok := msg.(tea.KeyMsg); ok {
		m.visible = false
	}
	return m, nil
}

// View renders the help overlay content.
func (m HelpOverlayModel) View(st Styles) string {
	if !m.visible {
		return ""
	}

	rows := []struct{ key, desc string }{
		{"←/→", "simulate narrower / wider"},
		{"shift+←/→", "adjust width by 10"},
		{"↑/↓", "simulate shorter / taller"},
		{"p", "jump to preset or breakpoint"},
		{"r", "return to live terminal size"},
		{"y", "copy report to clipboard"},
		{"?", "toggle this help"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(st.Title.Render("Keys") + "\n\n")
	for _, r := range rows {
		b.WriteString(st.Header.Render(padRight(r.key, 12)))
		b.WriteString(st.Value.Render(r.desc))
		b.WriteString("\n")
	}
	return st.Overlay.Render(b.String())
}

func padRight(s string, n int) string {
	w := runewidth.StringWidth(s)
	if w >= n {
		return s
	}
	return s + strings.Repeat(" ", n-w)
}
