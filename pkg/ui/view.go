package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.termWidth == 0 {
		return "measuring terminal..."
	}

	st := m.styles
	var b strings.Builder

	b.WriteString(st.Title.Render("responsive preview"))
	b.WriteString("\n\n")

	w, h := m.effectiveSize()
	source := "live"
	if m.Simulating() {
		source = "simulated"
	}
	b.WriteString(st.Label.Render("size        "))
	b.WriteString(st.Value.Render(fmt.Sprintf("%dx%d (%s)", w, h, source)))
	b.WriteString("\n")

	if m.regErr != nil {
		b.WriteString(st.Marker.Render(fmt.Sprintf("registry error: %v", m.regErr)))
		b.WriteString("\n")
	} else if m.reg != nil {
		b.WriteString(st.Label.Render("orientation "))
		b.WriteString(st.Value.Render(string(m.reg.Orientation())))
		b.WriteString("\n")

		b.WriteString(st.Label.Render("active      "))
		if name, ok := m.reg.ActiveBreakpointName(); ok {
			b.WriteString(st.ActiveRow.Render(name))
		} else if bp, ok := m.reg.ActiveBreakpoint(); ok {
			b.WriteString(st.Value.Render(bp.String()))
		} else {
			b.WriteString(st.Label.Render("(below all breakpoints)"))
		}
		b.WriteString("\n\n")

		avail := m.termWidth - 4
		b.WriteString(renderRuler(m.reg, avail, st))
		b.WriteString("\n\n")

		b.WriteString(m.renderSamples())
	}

	b.WriteString("\n")
	b.WriteString(st.StatusBar.Render("←/→ width  ↑/↓ height  p jump  r live  y copy  ? help  q quit"))
	if m.status != "" {
		b.WriteString("  ")
		b.WriteString(st.StatusNotice.Render(m.status))
	}

	base := b.String()

	if m.help.IsVisible() {
		return m.centerOverlay(m.help.View(st))
	}
	if m.picker.IsVisible() {
		return m.centerOverlay(m.picker.View(st))
	}
	return base
}

// renderSamples draws the example rulesets with the active condition
// highlighted and the resolved value for the current snapshot.
func (m Model) renderSamples() string {
	st := m.styles
	var b strings.Builder

	b.WriteString(st.Header.Render("samples"))
	b.WriteString("\n")

	for _, row := range m.samples.rows(m.reg) {
		b.WriteString(st.Label.Render(fmt.Sprintf("  %-8s", row.name)))

		if row.err != nil {
			b.WriteString(st.Marker.Render(row.err.Error()))
			b.WriteString("\n")
			continue
		}

		for i, cond := range row.conditions {
			cell := fmt.Sprintf("[%s]", cond)
			if i == row.activeIdx {
				b.WriteString(st.ActiveRow.Render(cell))
			} else {
				b.WriteString(st.InactiveRow.Render(cell))
			}
			b.WriteString(" ")
		}
		if row.activeIdx < 0 {
			b.WriteString(st.InactiveRow.Render("(default)"))
			b.WriteString(" ")
		}

		b.WriteString(st.Label.Render("→ "))
		b.WriteString(st.Value.Render(row.resolved))
		b.WriteString("\n")
	}
	return b.String()
}

// centerOverlay places overlay content in the middle of the terminal.
func (m Model) centerOverlay(overlay string) string {
	return lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center, overlay)
}
