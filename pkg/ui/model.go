// Package ui implements the rv preview TUI: a live view of the breakpoint
// registry and example rulesets resolved against the current (or
// simulated) terminal size.
package ui

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kraitsura/responsive/pkg/breakpoint"
	"github.com/kraitsura/responsive/pkg/config"
	"github.com/kraitsura/responsive/pkg/export"
)

// ConfigReloadedMsg is pushed into the program when the watched config
// file changes.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// ReloadFailedMsg is pushed when the changed config file does not parse;
// the previous breakpoint set stays in effect.
type ReloadFailedMsg struct {
	Err error
}

// Model is the root bubbletea model for rv.
type Model struct {
	cfg     *config.Config
	theme   Theme
	styles  Styles
	samples *sampleSet

	// Live terminal size, updated by WindowSizeMsg.
	termWidth  int
	termHeight int

	// Simulated size; zero means "track the live size".
	simWidth  int
	simHeight int

	reg    *breakpoint.Registry
	regErr error

	picker PickerModel
	help   HelpOverlayModel
	status string
}

// NewModel builds the preview model. Initial dimensions may be zero; the
// first WindowSizeMsg fills them in.
func NewModel(cfg *config.Config, simWidth, simHeight int) (Model, error) {
	samples, err := buildSamples(cfg.BreakpointSet())
	if err != nil {
		return Model{}, err
	}

	theme := ThemeByName(cfg.Viewer.Theme)
	m := Model{
		cfg:       cfg,
		theme:     theme,
		styles:    NewStyles(theme),
		samples:   samples,
		simWidth:  simWidth,
		simHeight: simHeight,
		picker:    NewPickerModel(pickerItems(cfg.Viewer.Presets, cfg.BreakpointSet())),
	}
	m.rebuild()
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Simulating returns true while a simulated size overrides the live one.
func (m Model) Simulating() bool {
	return m.simWidth > 0 || m.simHeight > 0
}

// effectiveSize returns the size the registry snapshot is built from.
func (m Model) effectiveSize() (int, int) {
	w, h := m.termWidth, m.termHeight
	if m.simWidth > 0 {
		w = m.simWidth
	}
	if m.simHeight > 0 {
		h = m.simHeight
	}
	return w, h
}

// Registry returns the current snapshot, nil when construction failed.
func (m Model) Registry() *breakpoint.Registry {
	return m.reg
}

// rebuild constructs a fresh registry snapshot from the effective size.
func (m *Model) rebuild() {
	w, h := m.effectiveSize()
	if w <= 0 {
		m.reg, m.regErr = nil, nil
		return
	}
	m.reg, m.regErr = breakpoint.NewRegistry(
		w,
		breakpoint.DetectOrientation(w, h),
		m.cfg.BreakpointSet(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.rebuild()
		return m, nil

	case ConfigReloadedMsg:
		return m.applyConfig(msg.Config), nil

	case ReloadFailedMsg:
		m.status = fmt.Sprintf("config reload failed: %v", msg.Err)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// applyConfig swaps in a reloaded configuration.
func (m Model) applyConfig(cfg *config.Config) Model {
	samples, err := buildSamples(cfg.BreakpointSet())
	if err != nil {
		m.status = fmt.Sprintf("config rejected: %v", err)
		return m
	}

	m.cfg = cfg
	m.samples = samples
	m.theme = ThemeByName(cfg.Viewer.Theme)
	m.styles = NewStyles(m.theme)
	m.picker.SetItems(pickerItems(cfg.Viewer.Presets, cfg.BreakpointSet()))
	m.rebuild()
	m.status = "config reloaded"
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Overlays capture input first.
	if m.help.IsVisible() {
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		return m, cmd
	}
	if m.picker.IsVisible() {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		if choice := m.picker.Choice(); choice != nil {
			// A confirmed jump is always a simulation request; clamp so a
			// threshold of 0 does not read as "track live size".
			m.simWidth = choice.Width
			if m.simWidth < 1 {
				m.simWidth = 1
			}
			if choice.Height > 0 {
				m.simHeight = choice.Height
			}
			m.rebuild()
			m.status = "jumped to " + choice.Label
		}
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "?":
		m.help.Toggle()

	case "p":
		m.picker.Show()

	case "r":
		m.simWidth, m.simHeight = 0, 0
		m.rebuild()
		m.status = "tracking live size"

	case "left":
		m.adjustWidth(-1)
	case "right":
		m.adjustWidth(1)
	case "shift+left":
		m.adjustWidth(-10)
	case "shift+right":
		m.adjustWidth(10)
	case "up":
		m.adjustHeight(-1)
	case "down":
		m.adjustHeight(1)

	case "y":
		if m.reg == nil {
			m.status = "nothing to copy yet"
			break
		}
		if err := clipboard.WriteAll(export.Report(m.reg)); err != nil {
			m.status = fmt.Sprintf("clipboard error: %v", err)
		} else {
			m.status = "report copied"
		}
	}
	return m, nil
}

// adjustWidth nudges the simulated width, seeding it from the live size
// on first use.
func (m *Model) adjustWidth(delta int) {
	if m.simWidth == 0 {
		m.simWidth = m.termWidth
	}
	m.simWidth += delta
	if m.simWidth < 1 {
		m.simWidth = 1
	}
	m.rebuild()
}

func (m *Model) adjustHeight(delta int) {
	if m.simHeight == 0 {
		m.simHeight = m.termHeight
	}
	m.simHeight += delta
	if m.simHeight < 1 {
		m.simHeight = 1
	}
	m.rebuild()
}
