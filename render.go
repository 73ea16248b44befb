package orbitfx

import "github.com/hajimehoshi/ebiten/v2"

// Timeline palette.
var (
	trackColor      = RGB255(124, 124, 255).WithAlpha(0.15)
	strokeColor     = RGB255(0, 229, 255).WithAlpha(0.9)
	nodeIdleColor   = ColorWhite.WithAlpha(0.25)
	nodeActiveColor = RGB255(0, 229, 255)
	nodeGlowColor   = RGB255(0, 229, 255).WithAlpha(0.25)
	markerColor     = ColorWhite
	markerGlowColor = RGB255(124, 124, 255).WithAlpha(0.35)
	cardPanelColor  = RGB255(10, 14, 40).WithAlpha(0.85)
	cardAccentColor = RGB255(0, 229, 255).WithAlpha(0.6)
	cardTitleColor  = ColorWhite
	cardBodyColor   = RGB255(170, 180, 210)
)

// Timeline draw sizes, in screen units.
const (
	trackWidth       = 1.0
	strokeWidth      = 2.0
	nodeRadius       = 5.0
	nodeActiveRadius = 7.0
	nodeGlowRadius   = 14.0
	markerRadius     = 6.0
	markerGlowRadius = 16.0
	cardAccentWidth  = 2.0
	cardPadding      = 12.0
)

// renderer draws the timeline section. It holds per-frame scratch buffers so
// steady-state frames do not allocate.
type renderer struct {
	fonts    CardFonts
	track    []Vec2
	revealed []Vec2
}

// sectionTransform maps curve space onto the on-screen section rectangle.
type sectionTransform struct {
	origin Vec2
	sx, sy float64
}

func newSectionTransform(space CurveSpace, section Rect) sectionTransform {
	space = space.orDefault()
	return sectionTransform{
		origin: Vec2{section.X, section.Y},
		sx:     section.Width / space.Width,
		sy:     section.Height / space.Height,
	}
}

func (t sectionTransform) apply(p Vec2) Vec2 {
	return Vec2{t.origin.X + p.X*t.sx, t.origin.Y + p.Y*t.sy}
}

// drawTimeline draws, back to front, the full curve track, the revealed
// stroke, the anchor nodes, the energy marker and the revealed card panels.
// Nothing is drawn when the section lies entirely off the surface.
func (r *renderer) drawTimeline(dst LineSurface, tl *Timeline, stroke *StrokeReveal, fades []cardFade) {
	if dst == nil || tl == nil {
		return
	}
	w, h := dst.Size()
	sec := tl.Section()
	if !sec.Intersects(Rect{Width: w, Height: h}) {
		return
	}
	xf := newSectionTransform(tl.Config().Space, sec)
	curve := tl.Curve()

	r.track = curve.Polyline(curve.TotalLength(), r.track[:0])
	strokePolyline(dst, r.track, xf, trackWidth, trackColor)

	if stroke != nil && stroke.Length() > 0 {
		r.revealed = curve.Polyline(stroke.Length(), r.revealed[:0])
		strokePolyline(dst, r.revealed, xf, strokeWidth, strokeColor)
	}

	for i, s := range tl.Samples() {
		p := xf.apply(s.Point)
		if tl.NodeActive(i) {
			dst.FillDisc(p.X, p.Y, nodeGlowRadius, nodeGlowColor)
			dst.FillDisc(p.X, p.Y, nodeActiveRadius, nodeActiveColor)
			continue
		}
		dst.FillDisc(p.X, p.Y, nodeRadius, nodeIdleColor)
	}

	if tl.MarkerVisible() && !curve.Empty() {
		m := xf.apply(tl.Marker().Current)
		dst.FillDisc(m.X, m.Y, markerGlowRadius, markerGlowColor)
		dst.FillDisc(m.X, m.Y, markerRadius, markerColor)
	}

	for i, c := range tl.Cards() {
		if !c.Revealed || i >= len(fades) {
			continue
		}
		f := fades[i]
		if f.alpha <= 0 {
			continue
		}
		rect := tl.CardRect(i)
		rect.Y += f.rise
		dst.FillRect(rect, cardPanelColor.WithAlpha(cardPanelColor.A*f.alpha))
		dst.StrokeLine(rect.X, rect.Y, rect.X+rect.Width, rect.Y, cardAccentWidth,
			cardAccentColor.WithAlpha(cardAccentColor.A*f.alpha))
	}
}

// drawLabels draws card titles and bodies onto dst. It is a no-op when no
// fonts are loaded.
func (r *renderer) drawLabels(dst *ebiten.Image, tl *Timeline, fades []cardFade) {
	if dst == nil || tl == nil || r.fonts.Title == nil {
		return
	}
	maxW := tl.Config().CardWidth - 2*cardPadding
	for i, c := range tl.Cards() {
		if !c.Revealed || i >= len(fades) || fades[i].alpha <= 0 {
			continue
		}
		a := fades[i].alpha
		rect := tl.CardRect(i)
		x := rect.X + cardPadding
		y := rect.Y + fades[i].rise + cardPadding

		title := truncateToWidth(r.fonts.Title, c.Milestone.Title, maxW)
		r.fonts.Title.drawAt(dst, title, x, y, cardTitleColor.WithAlpha(a))
		if r.fonts.Body != nil {
			body := truncateToWidth(r.fonts.Body, c.Milestone.Body, maxW)
			r.fonts.Body.drawAt(dst, body, x, y+r.fonts.Title.LineHeight()+4, cardBodyColor.WithAlpha(a))
		}
	}
}

// strokePolyline draws pts, mapped through xf, as connected segments.
func strokePolyline(dst LineSurface, pts []Vec2, xf sectionTransform, width float64, c Color) {
	for i := 1; i < len(pts); i++ {
		a := xf.apply(pts[i-1])
		b := xf.apply(pts[i])
		dst.StrokeLine(a.X, a.Y, b.X, b.Y, width, c)
	}
}
