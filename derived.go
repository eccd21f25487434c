package signin

import (
	"math"
	"strconv"
)

// Extrapolate selects what a DerivedNode does with inputs outside its input
// range.
type Extrapolate uint8

const (
	ExtrapolateClamp    Extrapolate = iota // saturate at the output range edges
	ExtrapolateExtend                      // continue the line
	ExtrapolateIdentity                    // return the input unchanged
)

// DerivedNode is a pure linear mapping from the driver to one visual output.
type DerivedNode struct {
	Name        string
	Input       Range
	Output      Range
	Extrapolate Extrapolate
}

// Eval maps x from the input range onto the output range. A degenerate input
// range yields Output.Min. NaN inputs are treated as Input.Min.
func (n DerivedNode) Eval(x float64) float64 {
	if math.IsNaN(x) {
		x = n.Input.Min
	}
	span := n.Input.Max - n.Input.Min
	if span == 0 {
		return n.Output.Min
	}

	if n.Extrapolate == ExtrapolateIdentity && (x < n.Input.Lo() || x > n.Input.Hi()) {
		return x
	}

	v := n.Output.Min + (x-n.Input.Min)*(n.Output.Max-n.Output.Min)/span
	if n.Extrapolate == ExtrapolateClamp {
		v = clamp(v, n.Output.Lo(), n.Output.Hi())
	}
	return v
}

// NodeID names one of the screen's derived outputs.
type NodeID uint8

const (
	NodeButtonZIndex      NodeID = iota // stacking order of the collapsed buttons
	NodeButtonOffsetY                   // buttons slide down as the form opens
	NodeBackgroundOffsetY               // parallax offset of the background art
	NodeFormZIndex                      // stacking order of the form panel
	NodeFormOpacity                     // form panel fade
	NodeFormOffsetY                     // form panel slide
	NodeCloseRotation                   // close glyph spin, degrees
	nodeCount
)

var nodeNames = [nodeCount]string{
	NodeButtonZIndex:      "buttonZIndex",
	NodeButtonOffsetY:     "buttonOffsetY",
	NodeBackgroundOffsetY: "backgroundOffsetY",
	NodeFormZIndex:        "formZIndex",
	NodeFormOpacity:       "formOpacity",
	NodeFormOffsetY:       "formOffsetY",
	NodeCloseRotation:     "closeButtonRotationDeg",
}

func (id NodeID) String() string {
	if id < nodeCount {
		return nodeNames[id]
	}
	return "unknown"
}

// Graph is the fixed table of derived nodes for one viewport. Nothing is
// cached: every read evaluates its node against the driver value passed in.
type Graph struct {
	nodes [nodeCount]DerivedNode
}

// NewGraph builds the node table. Only the background offset depends on the
// viewport height.
func NewGraph(viewportHeight float64) *Graph {
	unit := Range{0, 1}
	g := &Graph{}
	g.nodes[NodeButtonZIndex] = DerivedNode{Input: unit, Output: Range{-1, 1}}
	g.nodes[NodeButtonOffsetY] = DerivedNode{Input: unit, Output: Range{100, 0}}
	g.nodes[NodeBackgroundOffsetY] = DerivedNode{Input: unit, Output: Range{-(viewportHeight/3 + 70), 0}}
	g.nodes[NodeFormZIndex] = DerivedNode{Input: unit, Output: Range{1, -1}}
	g.nodes[NodeFormOpacity] = DerivedNode{Input: unit, Output: Range{1, 0}}
	g.nodes[NodeFormOffsetY] = DerivedNode{Input: unit, Output: Range{0, 100}}
	g.nodes[NodeCloseRotation] = DerivedNode{Input: unit, Output: Range{180, 360}}
	for id := range g.nodes {
		g.nodes[id].Name = nodeNames[id]
	}
	return g
}

// Node returns the definition of id.
func (g *Graph) Node(id NodeID) DerivedNode {
	return g.nodes[id]
}

// Eval evaluates node id at driver.
func (g *Graph) Eval(id NodeID, driver float64) float64 {
	return g.nodes[id].Eval(driver)
}

// Outputs evaluates every node at driver.
func (g *Graph) Outputs(driver float64) Outputs {
	return Outputs{
		Driver:            driver,
		ButtonOpacity:     clamp(driver, 0, 1),
		ButtonZIndex:      g.Eval(NodeButtonZIndex, driver),
		ButtonOffsetY:     g.Eval(NodeButtonOffsetY, driver),
		BackgroundOffsetY: g.Eval(NodeBackgroundOffsetY, driver),
		FormZIndex:        g.Eval(NodeFormZIndex, driver),
		FormOpacity:       g.Eval(NodeFormOpacity, driver),
		FormOffsetY:       g.Eval(NodeFormOffsetY, driver),
		CloseRotationDeg:  g.Eval(NodeCloseRotation, driver),
	}
}

// Outputs is a read-only snapshot of everything the renderer consumes for one
// frame.
type Outputs struct {
	Driver            float64
	ButtonOpacity     float64
	ButtonZIndex      float64
	ButtonOffsetY     float64
	BackgroundOffsetY float64
	FormZIndex        float64
	FormOpacity       float64
	FormOffsetY       float64
	CloseRotationDeg  float64
}

// Lookup returns an output by its node name, or "driver" / "buttonOpacity".
func (o Outputs) Lookup(name string) (float64, bool) {
	switch name {
	case "driver":
		return o.Driver, true
	case "buttonOpacity":
		return o.ButtonOpacity, true
	case nodeNames[NodeButtonZIndex]:
		return o.ButtonZIndex, true
	case nodeNames[NodeButtonOffsetY]:
		return o.ButtonOffsetY, true
	case nodeNames[NodeBackgroundOffsetY]:
		return o.BackgroundOffsetY, true
	case nodeNames[NodeFormZIndex]:
		return o.FormZIndex, true
	case nodeNames[NodeFormOpacity]:
		return o.FormOpacity, true
	case nodeNames[NodeFormOffsetY]:
		return o.FormOffsetY, true
	case nodeNames[NodeCloseRotation]:
		return o.CloseRotationDeg, true
	}
	return 0, false
}

// FormatDegrees renders an angle with a "deg" suffix, e.g. "270deg".
func FormatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "deg"
}
