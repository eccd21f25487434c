package signin

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

const eps = 1e-9

func TestGraphEndpoints(t *testing.T) {
	g := NewGraph(640)
	bg := -(640.0/3 + 70)

	tests := []struct {
		id       NodeID
		at0, at1 float64
	}{
		{NodeButtonZIndex, -1, 1},
		{NodeButtonOffsetY, 100, 0},
		{NodeBackgroundOffsetY, bg, 0},
		{NodeFormZIndex, 1, -1},
		{NodeFormOpacity, 1, 0},
		{NodeFormOffsetY, 0, 100},
		{NodeCloseRotation, 180, 360},
	}
	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			if got := g.Eval(tt.id, 0); !scalar.EqualWithinAbs(got, tt.at0, eps) {
				t.Errorf("at 0 = %v, want %v", got, tt.at0)
			}
			if got := g.Eval(tt.id, 1); !scalar.EqualWithinAbs(got, tt.at1, eps) {
				t.Errorf("at 1 = %v, want %v", got, tt.at1)
			}
			mid := (tt.at0 + tt.at1) / 2
			if got := g.Eval(tt.id, 0.5); !scalar.EqualWithinAbs(got, mid, eps) {
				t.Errorf("at 0.5 = %v, want %v", got, mid)
			}
		})
	}
}

func TestGraphClampsOutsideInput(t *testing.T) {
	g := NewGraph(640)
	for id := NodeID(0); id < nodeCount; id++ {
		n := g.Node(id)
		if got, want := g.Eval(id, -0.3), g.Eval(id, 0); got != want {
			t.Errorf("%s(-0.3) = %v, want %v", n.Name, got, want)
		}
		if got, want := g.Eval(id, 1.4), g.Eval(id, 1); got != want {
			t.Errorf("%s(1.4) = %v, want %v", n.Name, got, want)
		}
	}
}

func TestGraphOutputsAtRest(t *testing.T) {
	g := NewGraph(640)

	collapsed := g.Outputs(1)
	if collapsed.ButtonZIndex != 1 || collapsed.FormZIndex != -1 {
		t.Errorf("collapsed z: buttons %v, form %v", collapsed.ButtonZIndex, collapsed.FormZIndex)
	}
	if collapsed.FormOpacity != 0 || collapsed.ButtonOpacity != 1 {
		t.Errorf("collapsed opacity: buttons %v, form %v", collapsed.ButtonOpacity, collapsed.FormOpacity)
	}
	if collapsed.CloseRotationDeg != 360 {
		t.Errorf("collapsed rotation = %v", collapsed.CloseRotationDeg)
	}

	expanded := g.Outputs(0)
	if expanded.ButtonZIndex != -1 || expanded.FormZIndex != 1 {
		t.Errorf("expanded z: buttons %v, form %v", expanded.ButtonZIndex, expanded.FormZIndex)
	}
	if expanded.FormOpacity != 1 || expanded.ButtonOpacity != 0 {
		t.Errorf("expanded opacity: buttons %v, form %v", expanded.ButtonOpacity, expanded.FormOpacity)
	}
	if expanded.CloseRotationDeg != 180 {
		t.Errorf("expanded rotation = %v", expanded.CloseRotationDeg)
	}
}

func TestDerivedNodeExtrapolate(t *testing.T) {
	n := DerivedNode{Input: Range{0, 1}, Output: Range{10, 20}}

	tests := []struct {
		name string
		mode Extrapolate
		x    float64
		want float64
	}{
		{"clamp low", ExtrapolateClamp, -1, 10},
		{"clamp high", ExtrapolateClamp, 2, 20},
		{"extend low", ExtrapolateExtend, -1, 0},
		{"extend high", ExtrapolateExtend, 2, 30},
		{"identity low", ExtrapolateIdentity, -1, -1},
		{"identity high", ExtrapolateIdentity, 2, 2},
		{"identity inside", ExtrapolateIdentity, 0.5, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n.Extrapolate = tt.mode
			if got := n.Eval(tt.x); !scalar.EqualWithinAbs(got, tt.want, eps) {
				t.Errorf("Eval(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestDerivedNodeDegenerate(t *testing.T) {
	n := DerivedNode{Input: Range{0.5, 0.5}, Output: Range{3, 9}}
	if got := n.Eval(0.7); got != 3 {
		t.Errorf("degenerate input range: got %v, want 3", got)
	}

	n = DerivedNode{Input: Range{0, 1}, Output: Range{3, 9}}
	if got := n.Eval(math.NaN()); got != 3 {
		t.Errorf("NaN input: got %v, want 3", got)
	}
}

func TestDerivedNodeDescendingInput(t *testing.T) {
	n := DerivedNode{Input: Range{1, 0}, Output: Range{0, 100}}
	if got := n.Eval(0.25); !scalar.EqualWithinAbs(got, 75, eps) {
		t.Errorf("Eval(0.25) = %v, want 75", got)
	}
	if got := n.Eval(-1); got != 100 {
		t.Errorf("Eval(-1) = %v, want 100", got)
	}
}

func TestOutputsLookup(t *testing.T) {
	o := NewGraph(640).Outputs(0.5)
	for id := NodeID(0); id < nodeCount; id++ {
		got, ok := o.Lookup(id.String())
		if !ok {
			t.Errorf("Lookup(%q) not found", id)
			continue
		}
		if want := NewGraph(640).Eval(id, 0.5); got != want {
			t.Errorf("Lookup(%q) = %v, want %v", id, got, want)
		}
	}
	if v, ok := o.Lookup("driver"); !ok || v != 0.5 {
		t.Errorf("Lookup(driver) = %v, %v", v, ok)
	}
	if v, ok := o.Lookup("buttonOpacity"); !ok || v != 0.5 {
		t.Errorf("Lookup(buttonOpacity) = %v, %v", v, ok)
	}
	if _, ok := o.Lookup("nope"); ok {
		t.Error("Lookup(nope) should fail")
	}
}

func TestFormatDegrees(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{270, "270deg"},
		{180, "180deg"},
		{202.5, "202.5deg"},
	}
	for _, tt := range tests {
		if got := FormatDegrees(tt.v); got != tt.want {
			t.Errorf("FormatDegrees(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
