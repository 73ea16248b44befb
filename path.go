package orbitfx

import (
	"math"
	"slices"
	"sort"
	"strconv"
	"strings"

	"honnef.co/go/curve"
)

// Default curve-space dimensions, used when a CurveSpace has a zero size.
const (
	DefaultCurveWidth  = 1400.0
	DefaultCurveHeight = 500.0
)

const (
	curveTension = 0.4  // control-point reach as a fraction of |dx|
	curveBend    = 0.15 // vertical bend as a fraction of curve-space height

	arclenAccuracy   = 1e-7 // arc-length tolerance in curve-space units
	flattenTolerance = 0.25 // max distance between the stroke and the true curve

	nodeTopPercent    = 38.0
	nodeBottomPercent = 62.0
)

// anchorXPercents is the fixed horizontal layout for up to eight anchors.
// Further anchors continue the 12% spacing.
var anchorXPercents = [...]float64{8, 20, 32, 44, 56, 68, 80, 92}

// anchorXPercent returns the horizontal layout position of anchor i in percent.
func anchorXPercent(i int) float64 {
	if i < len(anchorXPercents) {
		return anchorXPercents[i]
	}
	return 8 + float64(i)*12
}

// AnchorNode is a fixed point on the timeline curve, one per milestone card.
type AnchorNode struct {
	Index    int
	Lane     Lane
	XPercent float64 // horizontal position, percent of curve-space width
	Pos      Vec2    // position in curve space
}

// CurveSpace is the coordinate system the timeline curve is built in.
type CurveSpace struct {
	Width, Height float64
}

// orDefault fills zero dimensions with the defaults.
func (s CurveSpace) orDefault() CurveSpace {
	if s.Width <= 0 {
		s.Width = DefaultCurveWidth
	}
	if s.Height <= 0 {
		s.Height = DefaultCurveHeight
	}
	return s
}

// Anchors returns n anchors from the fixed layout table, alternating lanes
// starting with the top lane. Top-lane nodes sit at 38% of the height,
// bottom-lane nodes at 62%.
func (s CurveSpace) Anchors(n int) []AnchorNode {
	if n <= 0 {
		return nil
	}
	s = s.orDefault()
	anchors := make([]AnchorNode, n)
	for i := range anchors {
		lane := laneFor(i)
		yPct := nodeTopPercent
		if lane == LaneBottom {
			yPct = nodeBottomPercent
		}
		xPct := anchorXPercent(i)
		anchors[i] = AnchorNode{
			Index:    i,
			Lane:     lane,
			XPercent: xPct,
			Pos:      Vec2{X: xPct * s.Width / 100, Y: yPct * s.Height / 100},
		}
	}
	return anchors
}

// CubicSegment is one cubic Bézier piece of a Curve.
type CubicSegment struct {
	P0, C1, C2, P3 Vec2
}

func (c CubicSegment) bez() curve.CubicBez {
	return curve.CubicBez{P0: toPoint(c.P0), P1: toPoint(c.C1), P2: toPoint(c.C2), P3: toPoint(c.P3)}
}

// Eval returns the point at parameter t in [0, 1].
func (c CubicSegment) Eval(t float64) Vec2 {
	return fromPoint(c.bez().Eval(t))
}

// Curve is a chain of cubic segments through consecutive anchors. Length
// queries go through each segment's arc length; the drawn stroke uses a
// flattened polyline whose points carry their distance along the curve.
type Curve struct {
	Segments []CubicSegment

	path    curve.BezPath
	beziers []curve.CubicBez
	starts  []float64 // arc length at the start of each segment, plus the total

	points []Vec2
	dist   []float64 // arc length of each flattened point
}

// BuildCurve weaves a cubic Bézier through anchors. Each segment's first
// control point leaves the current anchor by 0.4·|dx| horizontally and bends
// down from a top-lane anchor or up from a bottom-lane one by 0.15 of the
// space height; the second control point approaches the next anchor with the
// same convention for its lane. Fewer than two anchors yield an empty curve.
func BuildCurve(anchors []AnchorNode, space CurveSpace) *Curve {
	c := &Curve{}
	if len(anchors) < 2 {
		return c
	}
	space = space.orDefault()
	bend := space.Height * curveBend

	c.Segments = make([]CubicSegment, 0, len(anchors)-1)
	for i := 0; i < len(anchors)-1; i++ {
		cur := anchors[i]
		next := anchors[i+1]
		tension := math.Abs(next.Pos.X-cur.Pos.X) * curveTension

		c.Segments = append(c.Segments, CubicSegment{
			P0: cur.Pos,
			C1: Vec2{cur.Pos.X + tension, cur.Pos.Y + laneBend(cur.Lane, bend)},
			C2: Vec2{next.Pos.X - tension, next.Pos.Y + laneBend(next.Lane, bend)},
			P3: next.Pos,
		})
	}
	c.measure()
	return c
}

// laneBend returns the vertical control offset for a lane: top-lane anchors
// are left and approached from below, bottom-lane anchors from above.
func laneBend(l Lane, bend float64) float64 {
	if l == LaneTop {
		return bend
	}
	return -bend
}

// measure builds the Bézier path, the per-segment arc lengths and the
// flattened polyline from Segments.
func (c *Curve) measure() {
	n := len(c.Segments)
	c.beziers = make([]curve.CubicBez, n)
	c.starts = make([]float64, n+1)
	c.path = curve.BezPath{curve.MoveTo(toPoint(c.Segments[0].P0))}
	for i, seg := range c.Segments {
		b := seg.bez()
		c.beziers[i] = b
		c.path = append(c.path, curve.CubicTo(b.P1, b.P2, b.P3))
		c.starts[i+1] = c.starts[i] + b.Arclen(arclenAccuracy)
	}

	c.points = append(c.points[:0], c.Segments[0].P0)
	c.dist = append(c.dist[:0], 0)
	for i, b := range c.beziers {
		c.flattenSegment(i, b)
	}
}

// flattenSegment appends the flattened points of segment i. Distances are
// the polyline's running length scaled to the segment's true arc length, so
// every segment ends exactly at its anchor's distance.
func (c *Curve) flattenSegment(i int, b curve.CubicBez) {
	elems := []curve.PathElement{curve.MoveTo(b.P0), curve.CubicTo(b.P1, b.P2, b.P3)}
	var pts []Vec2
	var run []float64
	poly := 0.0
	prev := c.Segments[i].P0
	for line := range curve.Segments(curve.Flatten(slices.Values(elems), flattenTolerance)) {
		p := fromPoint(line.Eval(1))
		poly += math.Hypot(p.X-prev.X, p.Y-prev.Y)
		pts = append(pts, p)
		run = append(run, poly)
		prev = p
	}
	if len(pts) == 0 {
		return
	}
	// Snap the last point so segment joins are exact.
	pts[len(pts)-1] = c.Segments[i].P3

	base, span := c.starts[i], c.starts[i+1]-c.starts[i]
	for k, p := range pts {
		d := c.starts[i+1]
		if poly > 0 && k < len(pts)-1 {
			d = base + span*run[k]/poly
		}
		c.points = append(c.points, p)
		c.dist = append(c.dist, d)
	}
}

// Empty reports whether the curve has no segments.
func (c *Curve) Empty() bool {
	return c == nil || len(c.Segments) == 0
}

// Path returns the curve as a Bézier path: one move followed by a cubic per
// segment. It is nil for an empty curve.
func (c *Curve) Path() curve.BezPath {
	if c.Empty() {
		return nil
	}
	return c.path
}

// TotalLength returns the arc length of the whole curve.
func (c *Curve) TotalLength() float64 {
	if c.Empty() {
		return 0
	}
	return c.starts[len(c.starts)-1]
}

// PointAtLength returns the point at cumulative arc length l, clamped to the
// curve's ends. An empty curve returns the zero point.
func (c *Curve) PointAtLength(l float64) Vec2 {
	if c.Empty() {
		return Vec2{}
	}
	if l <= 0 {
		return c.Segments[0].P0
	}
	last := len(c.Segments) - 1
	if l >= c.TotalLength() {
		return c.Segments[last].P3
	}
	// starts[i] <= l < starts[i+1]
	i := sort.SearchFloat64s(c.starts, l)
	if c.starts[i] > l {
		i--
	}
	local := l - c.starts[i]
	if local <= 0 {
		return c.Segments[i].P0
	}
	b := c.beziers[i]
	return fromPoint(b.Eval(curve.SolveForArclen(b, local, arclenAccuracy)))
}

// Polyline appends to buf the flattened curve from its start up to arc
// length upTo, ending exactly at PointAtLength(upTo), and returns the result.
func (c *Curve) Polyline(upTo float64, buf []Vec2) []Vec2 {
	buf = buf[:0]
	if c.Empty() || upTo <= 0 {
		return buf
	}
	for i, d := range c.dist {
		if d >= upTo {
			break
		}
		buf = append(buf, c.points[i])
	}
	return append(buf, c.PointAtLength(upTo))
}

func toPoint(v Vec2) curve.Point { return curve.Point{X: v.X, Y: v.Y} }

func fromPoint(p curve.Point) Vec2 { return Vec2{p.X, p.Y} }

// PathData returns the curve as an SVG path description ("M x y C ...").
func (c *Curve) PathData() string {
	if c.Empty() {
		return ""
	}
	var b strings.Builder
	b.WriteString("M ")
	writePoint(&b, c.Segments[0].P0)
	for _, s := range c.Segments {
		b.WriteString(" C ")
		writePoint(&b, s.C1)
		b.WriteString(", ")
		writePoint(&b, s.C2)
		b.WriteString(", ")
		writePoint(&b, s.P3)
	}
	return b.String()
}

func writePoint(b *strings.Builder, p Vec2) {
	b.WriteString(strconv.FormatFloat(p.X, 'f', -1, 64))
	b.WriteByte(' ')
	b.WriteString(strconv.FormatFloat(p.Y, 'f', -1, 64))
}

// CurveSample is a point on a curve together with its cumulative arc length.
type CurveSample struct {
	Index  int
	Length float64
	Point  Vec2
}

// Sample returns n samples spread evenly by length: sample i sits at
// i/(n-1) of the total length. The choreographer uses one sample per anchor
// to place nodes and to decide how much of the curve to reveal.
func Sample(c *Curve, n int) []CurveSample {
	if c.Empty() || n <= 0 {
		return nil
	}
	if n == 1 {
		return []CurveSample{{Index: 0, Length: 0, Point: c.PointAtLength(0)}}
	}
	total := c.TotalLength()
	samples := make([]CurveSample, n)
	for i := range samples {
		l := float64(i) / float64(n-1) * total
		samples[i] = CurveSample{Index: i, Length: l, Point: c.PointAtLength(l)}
	}
	return samples
}
