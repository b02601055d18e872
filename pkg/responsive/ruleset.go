package responsive

import (
	"errors"
	"fmt"

	"github.com/kraitsura/responsive/pkg/breakpoint"
)

// ErrMissingRegistry is returned when resolution is attempted without a
// registry snapshot. Raised eagerly, before any condition is evaluated, so
// the mistake surfaces at the call site that declared the conditions.
var ErrMissingRegistry = errors.New("no breakpoint registry available")

// Ruleset is a validated, ordered list of conditions with an optional
// default. Later conditions take precedence over earlier ones: resolution
// walks the list in reverse declaration order and the first match wins, so
// callers append more specific overrides at the end.
type Ruleset[T any] struct {
	conditions []Condition[T]
	def        *T
}

// NewRuleset validates each condition and builds a ruleset. A single
// invalid condition fails the whole construction; the error identifies the
// offending condition by index and predicate.
func NewRuleset[T any](conditions ...Condition[T]) (*Ruleset[T], error) {
	for i, c := range conditions {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("condition %d (%s): %w", i, c.Describe(), err)
		}
	}
	rs := &Ruleset[T]{conditions: make([]Condition[T], len(conditions))}
	copy(rs.conditions, conditions)
	return rs, nil
}

// WithDefault returns a copy of the ruleset with a default value, yielded
// when no condition matches. The receiver is left unchanged.
func (rs *Ruleset[T]) WithDefault(value T) *Ruleset[T] {
	out := &Ruleset[T]{conditions: rs.conditions, def: &value}
	return out
}

// Conditions returns a copy of the declared conditions in declaration
// order.
func (rs *Ruleset[T]) Conditions() []Condition[T] {
	out := make([]Condition[T], len(rs.conditions))
	copy(out, rs.conditions)
	return out
}

// Default returns the configured default value, nil when unset.
func (rs *Ruleset[T]) Default() *T {
	return rs.def
}

// Active returns the single active condition for the snapshot, walking the
// list in reverse declaration order and stopping at the first match. The
// index is in declaration order; -1 with a nil error means no condition
// matched.
func (rs *Ruleset[T]) Active(reg *breakpoint.Registry) (int, error) {
	if reg == nil {
		for _, c := range rs.conditions {
			if c.references() {
				return -1, fmt.Errorf("%w: condition (%s) references a named breakpoint", ErrMissingRegistry, c.Describe())
			}
		}
		return -1, fmt.Errorf("%w: screen width is unknown", ErrMissingRegistry)
	}

	for i := len(rs.conditions) - 1; i >= 0; i-- {
		ok, err := rs.conditions[i].matches(reg)
		if err != nil {
			return -1, fmt.Errorf("condition %d (%s): %w", i, rs.conditions[i].Describe(), err)
		}
		if ok {
			return i, nil
		}
	}
	return -1, nil
}

// Resolve picks the value for the snapshot. With an active condition the
// result is its Landscape value under landscape orientation when set,
// otherwise its Value — even when that Value is nil, which is a deliberate
// "no value" outcome and does not fall back to the default. Without an
// active condition the result is the default (nil when unset).
//
// Configuration errors (an unknown breakpoint name, a missing registry)
// abort resolution; they are never masked by the default.
func (rs *Ruleset[T]) Resolve(reg *breakpoint.Registry) (*T, error) {
	idx, err := rs.Active(reg)
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		return rs.def, nil
	}

	active := rs.conditions[idx]
	if reg.Orientation().IsLandscape() && active.Landscape != nil {
		return active.Landscape, nil
	}
	return active.Value, nil
}

// Resolve validates the conditions and resolves them against the snapshot
// in one call, for callers that do not keep a ruleset around.
func Resolve[T any](conditions []Condition[T], def *T, reg *breakpoint.Registry) (*T, error) {
	rs, err := NewRuleset(conditions...)
	if err != nil {
		return nil, err
	}
	rs.def = def
	return rs.Resolve(reg)
}
