package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/kraitsura/responsive/pkg/breakpoint"
	"github.com/kraitsura/responsive/pkg/config"
)

// PickerItem is one selectable entry: a size preset or a breakpoint to
// jump the simulated width to.
type PickerItem struct {
	Label  string
	Width  int
	Height int // 0 means keep the current height
}

// pickerItems builds the selectable entries from presets and named
// breakpoints. Breakpoint jumps use the threshold itself: the active
// breakpoint is the largest whose threshold does not exceed the width, so
// landing exactly on the threshold activates the jumped-to breakpoint.
func pickerItems(presets []config.PresetConfig, bps []breakpoint.Breakpoint) []PickerItem {
	items := make([]PickerItem, 0, len(presets)+len(bps))
	for _, p := range presets {
		items = append(items, PickerItem{
			Label:  fmt.Sprintf("%s (%dx%d)", p.Name, p.Width, p.Height),
			Width:  p.Width,
			Height: p.Height,
		})
	}
	for _, bp := range bps {
		if !bp.Named() {
			continue
		}
		items = append(items, PickerItem{
			Label: fmt.Sprintf("%s @%d", bp.Name, bp.Width),
			Width: bp.Width,
		})
	}
	return items
}

// PickerModel is the fuzzy-filterable jump list overlay.
type PickerModel struct {
	input    textinput.Model
	items    []PickerItem
	filtered []PickerItem
	selected int
	visible  bool

	confirmed bool
	choice    *PickerItem
}

// NewPickerModel creates the picker over the given items.
func NewPickerModel(items []PickerItem) PickerModel {
	ti := textinput.New()
	ti.Placeholder = "Jump to size..."
	ti.CharLimit = 48
	ti.Width = 30

	return PickerModel{
		input:    ti,
		items:    items,
		filtered: items,
	}
}

// Show opens the picker with a cleared query.
func (m *PickerModel) Show() {
	m.visible = true
	m.confirmed = false
	m.choice = nil
	m.selected = 0
	m.input.SetValue("")
	m.input.Focus()
	m.filtered = m.items
}

// Hide closes the picker.
func (m *PickerModel) Hide() {
	m.visible = false
	m.input.Blur()
}

// IsVisible returns true while the picker overlay is showing.
func (m PickerModel) IsVisible() bool {
	return m.visible
}

// Choice returns the confirmed selection, nil until confirmed.
func (m PickerModel) Choice() *PickerItem {
	if !m.confirmed {
		return nil
	}
	return m.choice
}

// SetItems replaces the selectable entries (after a config reload).
func (m *PickerModel) SetItems(items []PickerItem) {
	m.items = items
	m.applyFilter()
}

// Update handles input while the picker is visible.
func (m PickerModel) Update(msg tea.Msg) (PickerModel, tea.Cmd) {
	if !m.visible {
		return m, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.Hide()
			return m, nil
		case "enter":
			if len(m.filtered) > 0 {
				item := m.filtered[m.selected]
				m.choice = &item
				m.confirmed = true
			}
			m.Hide()
			return m, nil
		case "up", "ctrl+k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "ctrl+j":
			if m.selected < len(m.filtered)-1 {
				m.selected++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.applyFilter()
	return m, cmd
}

// applyFilter narrows the items by fuzzy-matching the query.
func (m *PickerModel) applyFilter() {
	query := m.input.Value()
	if query == "" {
		m.filtered = m.items
	} else {
		labels := make([]string, len(m.items))
		for i, it := range m.items {
			labels[i] = it.Label
		}
		matches := fuzzy.Find(query, labels)
		filtered := make([]PickerItem, 0, len(matches))
		for _, match := range matches {
			filtered = append(filtered, m.items[match.Index])
		}
		m.filtered = filtered
	}

	if m.selected >= len(m.filtered) {
		m.selected = 0
	}
}

// View renders the picker overlay content.
func (m PickerModel) View(st Styles) string {
	if !m.visible {
		return ""
	}

	out := m.input.View() + "\n\n"
	if len(m.filtered) == 0 {
		out += st.Label.Render("no matches")
	}
	for i, item := range m.filtered {
		line := "  " + item.Label
		if i == m.selected {
			line = st.ActiveRow.Render("> " + item.Label)
		} else {
			line = st.InactiveRow.Render(line)
		}
		out += line + "\n"
	}
	return st.Overlay.Render(out)
}
