// Package responsive resolves a typed value from an ordered list of
// breakpoint conditions evaluated against a registry snapshot.
package responsive

import (
	"errors"
	"fmt"

	"github.com/kraitsura/responsive/pkg/breakpoint"
)

// ErrInvalidCondition is returned when a condition violates its
// construction invariants. The caller's declared rules are defective; the
// condition cannot be evaluated.
var ErrInvalidCondition = errors.New("invalid condition")

// Comparison selects how a condition compares the screen width against a
// breakpoint.
type Comparison string

const (
	// Equals matches when the referenced named breakpoint is the active
	// one, regardless of the exact width inside the segment.
	Equals Comparison = "equals"

	// SmallerThan matches when the width is strictly below the threshold.
	SmallerThan Comparison = "smaller_than"

	// LargerThan matches when the width is strictly above the threshold.
	LargerThan Comparison = "larger_than"
)

// IsValid returns true if the comparison is a recognized value.
func (c Comparison) IsValid() bool {
	switch c {
	case Equals, SmallerThan, LargerThan:
		return true
	}
	return false
}

// Condition is one candidate rule: a comparison against a breakpoint paired
// with the value to yield when it holds. Conditions are immutable value
// objects; the With* methods return modified copies.
//
// A condition references its breakpoint either by name (Breakpoint) or by
// numeric threshold (Width). When both are set the name wins and the
// numeric threshold is ignored.
type Condition[T any] struct {
	// Comparison is the kind of match this condition performs.
	Comparison Comparison

	// Breakpoint references a named breakpoint in the registry. Empty
	// means unset. Required for Equals.
	Breakpoint string

	// Width is an explicit numeric threshold, used by SmallerThan and
	// LargerThan when no name is referenced. Nil means unset.
	Width *int

	// Value is yielded when the condition is the active one. Nil is a
	// deliberate "no value" outcome, distinct from the condition not
	// matching.
	Value *T

	// Landscape overrides Value when the snapshot reports landscape
	// orientation. Nil means no override.
	Landscape *T
}

// On declares an Equals condition against a named breakpoint.
func On[T any](name string, value T) Condition[T] {
	return Condition[T]{Comparison: Equals, Breakpoint: name, Value: &value}
}

// Smaller declares a SmallerThan condition against a named breakpoint.
func Smaller[T any](name string, value T) Condition[T] {
	return Condition[T]{Comparison: SmallerThan, Breakpoint: name, Value: &value}
}

// SmallerWidth declares a SmallerThan condition against a numeric width.
func SmallerWidth[T any](width int, value T) Condition[T] {
	return Condition[T]{Comparison: SmallerThan, Width: &width, Value: &value}
}

// Larger declares a LargerThan condition against a named breakpoint.
func Larger[T any](name string, value T) Condition[T] {
	return Condition[T]{Comparison: LargerThan, Breakpoint: name, Value: &value}
}

// LargerWidth declares a LargerThan condition against a numeric width.
func LargerWidth[T any](width int, value T) Condition[T] {
	return Condition[T]{Comparison: LargerThan, Width: &width, Value: &value}
}

// WithLandscape returns a copy of the condition with a landscape override.
func (c Condition[T]) WithLandscape(value T) Condition[T] {
	c.Landscape = &value
	return c
}

// WithoutValue returns a copy of the condition whose match yields an
// absent value rather than falling back to the default.
func (c Condition[T]) WithoutValue() Condition[T] {
	c.Value = nil
	return c
}

// Validate checks the condition's construction invariants.
func (c Condition[T]) Validate() error {
	if !c.Comparison.IsValid() {
		return fmt.Errorf("%w: unrecognized comparison %q", ErrInvalidCondition, c.Comparison)
	}
	if c.Breakpoint == "" && c.Width == nil {
		return fmt.Errorf("%w: %s condition references neither a breakpoint name nor a width", ErrInvalidCondition, c.Comparison)
	}
	if c.Comparison == Equals && c.Breakpoint == "" {
		return fmt.Errorf("%w: equals condition requires a breakpoint name", ErrInvalidCondition)
	}
	return nil
}

// references reports whether the condition refers to a named breakpoint.
func (c Condition[T]) references() bool {
	return c.Breakpoint != ""
}

// matches evaluates the condition against a registry snapshot.
func (c Condition[T]) matches(reg *breakpoint.Registry) (bool, error) {
	switch c.Comparison {
	case Equals:
		active, ok := reg.ActiveBreakpointName()
		if !ok {
			return false, nil
		}
		return active == c.Breakpoint, nil
	case SmallerThan:
		if c.references() {
			return reg.IsSmallerThan(c.Breakpoint)
		}
		return reg.Width() < *c.Width, nil
	case LargerThan:
		if c.references() {
			return reg.IsLargerThan(c.Breakpoint)
		}
		return reg.Width() > *c.Width, nil
	}
	return false, fmt.Errorf("%w: unrecognized comparison %q", ErrInvalidCondition, c.Comparison)
}

// Describe renders the condition's predicate for error messages and the
// preview UI, e.g. "< tablet" or "> 800".
func (c Condition[T]) Describe() string {
	target := c.Breakpoint
	if target == "" && c.Width != nil {
		target = fmt.Sprintf("%d", *c.Width)
	}
	switch c.Comparison {
	case Equals:
		return fmt.Sprintf("= %s", target)
	case SmallerThan:
		return fmt.Sprintf("< %s", target)
	case LargerThan:
		return fmt.Sprintf("> %s", target)
	}
	return fmt.Sprintf("? %s", target)
}
