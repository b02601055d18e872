package responsive

import (
	"errors"
	"testing"
)

func TestConditionValidate(t *testing.T) {
	width := 600

	tests := []struct {
		name    string
		cond    Condition[int]
		wantErr bool
	}{
		{
			name: "equals with name",
			cond: Condition[int]{Comparison: Equals, Breakpoint: "tablet"},
		},
		{
			name:    "equals without name",
			cond:    Condition[int]{Comparison: Equals, Width: &width},
			wantErr: true,
		},
		{
			name: "smaller with name",
			cond: Condition[int]{Comparison: SmallerThan, Breakpoint: "tablet"},
		},
		{
			name: "smaller with width",
			cond: Condition[int]{Comparison: SmallerThan, Width: &width},
		},
		{
			name:    "smaller with neither",
			cond:    Condition[int]{Comparison: SmallerThan},
			wantErr: true,
		},
		{
			name: "larger with both name and width",
			cond: Condition[int]{Comparison: LargerThan, Breakpoint: "tablet", Width: &width},
		},
		{
			name:    "unknown comparison",
			cond:    Condition[int]{Comparison: Comparison("between"), Breakpoint: "tablet"},
			wantErr: true,
		},
		{
			name:    "zero condition",
			cond:    Condition[int]{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cond.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidCondition) {
					t.Errorf("Validate() = %v, want ErrInvalidCondition", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() failed: %v", err)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	c := On("tablet", 10)
	if c.Comparison != Equals || c.Breakpoint != "tablet" {
		t.Errorf("On built %+v", c)
	}
	if c.Value == nil || *c.Value != 10 {
		t.Errorf("On value = %v, want 10", c.Value)
	}

	c = SmallerWidth(600, 5)
	if c.Comparison != SmallerThan || c.Width == nil || *c.Width != 600 {
		t.Errorf("SmallerWidth built %+v", c)
	}

	c = Larger("desktop", 3).WithLandscape(7)
	if c.Landscape == nil || *c.Landscape != 7 {
		t.Errorf("WithLandscape = %v, want 7", c.Landscape)
	}
	if c.Value == nil || *c.Value != 3 {
		t.Errorf("WithLandscape should not touch Value, got %v", c.Value)
	}

	c = Smaller("tablet", 1).WithoutValue()
	if c.Value != nil {
		t.Errorf("WithoutValue left Value = %v", c.Value)
	}
}

func TestConditionImmutability(t *testing.T) {
	base := Larger("desktop", 3)
	_ = base.WithLandscape(9)
	if base.Landscape != nil {
		t.Error("WithLandscape mutated the receiver")
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		cond Condition[string]
		want string
	}{
		{On("tablet", "t"), "= tablet"},
		{Smaller("tablet", "s"), "< tablet"},
		{LargerWidth[string](800, "l"), "> 800"},
	}
	for _, tt := range tests {
		if got := tt.cond.Describe(); got != tt.want {
			t.Errorf("Describe() = %q, want %q", got, tt.want)
		}
	}
}
