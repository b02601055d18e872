package ui

import (
	"fmt"

	"github.com/kraitsura/responsive/pkg/breakpoint"
	"github.com/kraitsura/responsive/pkg/responsive"
)

// sampleSet holds the example rulesets the preview resolves at every
// size change. Each demonstrates one aspect of the resolver: numeric and
// named comparisons, Equals against the active breakpoint, and the
// landscape override.
type sampleSet struct {
	layout  *responsive.Ruleset[string]
	sidebar *responsive.Ruleset[bool]
	panes   *responsive.Ruleset[int]
}

// buildSamples derives example rulesets from the configured breakpoints.
// Requires at least two named breakpoints; the config defaults satisfy
// that.
func buildSamples(bps []breakpoint.Breakpoint) (*sampleSet, error) {
	var names []string
	for _, bp := range bps {
		if bp.Named() {
			names = append(names, bp.Name)
		}
	}
	if len(names) < 2 {
		return nil, fmt.Errorf("preview samples need at least two named breakpoints (got %d)", len(names))
	}
	second := names[1]
	last := names[len(names)-1]

	layout, err := responsive.NewRuleset(
		responsive.Smaller(second, "stacked"),
		responsive.Larger(last, "three-column"),
	)
	if err != nil {
		return nil, err
	}
	layout = layout.WithDefault("two-column")

	sidebar, err := responsive.NewRuleset(
		responsive.Smaller(second, false).WithLandscape(true),
		responsive.Larger(second, true),
	)
	if err != nil {
		return nil, err
	}
	sidebar = sidebar.WithDefault(false)

	panesConds := make([]responsive.Condition[int], 0, len(names))
	for i, name := range names {
		panesConds = append(panesConds, responsive.On(name, i+1))
	}
	panes, err := responsive.NewRuleset(panesConds...)
	if err != nil {
		return nil, err
	}
	panes = panes.WithDefault(1)

	return &sampleSet{layout: layout, sidebar: sidebar, panes: panes}, nil
}

// sampleRow is one rendered line in the samples panel.
type sampleRow struct {
	name       string
	conditions []string // described predicates in declaration order
	activeIdx  int      // -1 when the default applies
	resolved   string
	err        error
}

// rows resolves every sample against the snapshot and renders the
// results for the view.
func (s *sampleSet) rows(reg *breakpoint.Registry) []sampleRow {
	return []sampleRow{
		resolveRow("layout", s.layout, reg),
		resolveRow("sidebar", s.sidebar, reg),
		resolveRow("panes", s.panes, reg),
	}
}

func resolveRow[T any](name string, rs *responsive.Ruleset[T], reg *breakpoint.Registry) sampleRow {
	row := sampleRow{name: name, activeIdx: -1}
	for _, c := range rs.Conditions() {
		row.conditions = append(row.conditions, c.Describe())
	}

	idx, err := rs.Active(reg)
	if err != nil {
		row.err = err
		return row
	}
	row.activeIdx = idx

	v, err := rs.Resolve(reg)
	if err != nil {
		row.err = err
		return row
	}
	if v == nil {
		row.resolved = "(none)"
	} else {
		row.resolved = fmt.Sprintf("%v", *v)
	}
	return row
}
