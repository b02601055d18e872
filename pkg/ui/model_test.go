package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kraitsura/responsive/pkg/config"
)

// keyMsg creates a tea.KeyMsg for testing.
func keyMsg(key string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(config.DefaultConfig(), 0, 0)
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	return m
}

func resized(t *testing.T, m Model, w, h int) Model {
	t.Helper()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return updated.(Model)
}

func TestModel_WindowSizeBuildsRegistry(t *testing.T) {
	m := newTestModel(t)
	if m.Registry() != nil {
		t.Error("registry should be nil before the first size message")
	}

	m = resized(t, m, 120, 40)
	reg := m.Registry()
	if reg == nil {
		t.Fatal("registry not built after WindowSizeMsg")
	}
	if reg.Width() != 120 {
		t.Errorf("registry width = %d, want 120", reg.Width())
	}
	// Default breakpoints: compact@0 standard@100 wide@120 full@140.
	if name, _ := reg.ActiveBreakpointName(); name != "wide" {
		t.Errorf("active breakpoint = %q, want wide", name)
	}
}

func TestModel_SimulationOverridesLiveSize(t *testing.T) {
	m := resized(t, newTestModel(t), 120, 40)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = updated.(Model)

	if !m.Simulating() {
		t.Fatal("left arrow should enter simulation")
	}
	if m.Registry().Width() != 119 {
		t.Errorf("simulated width = %d, want 119", m.Registry().Width())
	}

	// Live resizes keep arriving but the simulated width pins the registry.
	m = resized(t, m, 200, 50)
	if m.Registry().Width() != 119 {
		t.Errorf("registry width after live resize = %d, want 119", m.Registry().Width())
	}

	updated, _ = m.Update(keyMsg("r"))
	m = updated.(Model)
	if m.Simulating() {
		t.Error("r should return to live size")
	}
	if m.Registry().Width() != 200 {
		t.Errorf("registry width after reset = %d, want 200", m.Registry().Width())
	}
}

func TestModel_SimulatedWidthFloor(t *testing.T) {
	m := resized(t, newTestModel(t), 3, 40)
	for i := 0; i < 10; i++ {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
		m = updated.(Model)
	}
	if m.Registry().Width() < 1 {
		t.Errorf("width dropped below 1: %d", m.Registry().Width())
	}
}

func TestModel_ConfigReload(t *testing.T) {
	m := resized(t, newTestModel(t), 700, 40)

	cfg := config.DefaultConfig()
	cfg.Breakpoints = []config.BreakpointConfig{
		{Name: "mobile", Width: 0},
		{Name: "tablet", Width: 600},
		{Name: "desktop", Width: 1024},
	}
	updated, _ := m.Update(ConfigReloadedMsg{Config: cfg})
	m = updated.(Model)

	if name, _ := m.Registry().ActiveBreakpointName(); name != "tablet" {
		t.Errorf("active after reload = %q, want tablet", name)
	}
}

func TestModel_ReloadFailureKeepsRegistry(t *testing.T) {
	m := resized(t, newTestModel(t), 120, 40)
	before := m.Registry()

	updated, _ := m.Update(ReloadFailedMsg{Err: errFake})
	m = updated.(Model)

	if m.Registry() != before {
		t.Error("failed reload should keep the previous registry")
	}
	if !strings.Contains(m.status, "reload failed") {
		t.Errorf("status = %q, want reload failure notice", m.status)
	}
}

func TestModel_ViewShowsActiveBreakpoint(t *testing.T) {
	m := resized(t, newTestModel(t), 120, 40)
	view := m.View()

	for _, want := range []string{"responsive preview", "120x40", "wide", "samples"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModel_HelpOverlayToggles(t *testing.T) {
	m := resized(t, newTestModel(t), 120, 40)

	updated, _ := m.Update(keyMsg("?"))
	m = updated.(Model)
	if !m.help.IsVisible() {
		t.Fatal("? should open help")
	}

	updated, _ = m.Update(keyMsg("x"))
	m = updated.(Model)
	if m.help.IsVisible() {
		t.Error("any key should close help")
	}
}

func TestModel_PickerJump(t *testing.T) {
	m := resized(t, newTestModel(t), 120, 40)

	updated, _ := m.Update(keyMsg("p"))
	m = updated.(Model)
	if !m.picker.IsVisible() {
		t.Fatal("p should open the picker")
	}

	// Confirm the first entry (the "classic" 80x24 preset).
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if m.picker.IsVisible() {
		t.Error("picker should close on enter")
	}
	if m.Registry().Width() != 80 {
		t.Errorf("width after jump = %d, want 80", m.Registry().Width())
	}
}

func TestModel_PickerJumpToZeroThresholdBreakpoint(t *testing.T) {
	m := resized(t, newTestModel(t), 120, 40)

	updated, _ := m.Update(keyMsg("p"))
	m = updated.(Model)

	// Narrow the list to the compact@0 breakpoint entry and confirm it.
	for _, r := range "compact" {
		updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	// The jump must count as an explicit simulation even though the
	// threshold is 0, which doubles as "track live size" when unset.
	if !m.Simulating() {
		t.Fatal("jumping to a zero-threshold breakpoint should enter simulation")
	}
	if name, _ := m.Registry().ActiveBreakpointName(); name != "compact" {
		t.Errorf("active breakpoint after jump = %q, want compact", name)
	}
	if m.Registry().Width() != 1 {
		t.Errorf("width after jump = %d, want 1", m.Registry().Width())
	}
}

func TestDemoSamples_RespondToWidth(t *testing.T) {
	m := resized(t, newTestModel(t), 80, 24)
	rows := m.samples.rows(m.Registry())

	var layout sampleRow
	for _, r := range rows {
		if r.name == "layout" {
			layout = r
		}
	}
	// 80 is smaller than standard@100, so the stacked condition wins.
	if layout.resolved != "stacked" {
		t.Errorf("layout at 80 = %q, want stacked", layout.resolved)
	}

	m = resized(t, m, 200, 50)
	for _, r := range m.samples.rows(m.Registry()) {
		if r.name == "layout" && r.resolved != "three-column" {
			t.Errorf("layout at 200 = %q, want three-column", r.resolved)
		}
	}
}

var errFake = &fakeError{}

type fakeError struct{}

func (*fakeError) Error() string { return "fake parse error" }
