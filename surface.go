package orbitfx

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface is a 2D drawing target. The particle field and the timeline renderer
// only ever draw through a Surface, so the simulation can run without a GPU.
type Surface interface {
	// Clear erases the whole surface.
	Clear()
	// FillDisc draws a filled circle centered at (x, y).
	FillDisc(x, y, radius float64, c Color)
	// Size returns the drawable area in surface units.
	Size() (w, h float64)
}

// LineSurface is a Surface that can also stroke straight segments. The
// timeline curve and its nodes are drawn through it.
type LineSurface interface {
	Surface
	StrokeLine(x0, y0, x1, y1, width float64, c Color)
	FillRect(r Rect, c Color)
}

// ImageSurface draws onto an *ebiten.Image with ebiten's vector package.
type ImageSurface struct {
	Image *ebiten.Image
	// AntiAlias enables anti-aliased edges.
	AntiAlias bool
}

// NewImageSurface wraps img.
func NewImageSurface(img *ebiten.Image) *ImageSurface {
	return &ImageSurface{Image: img, AntiAlias: true}
}

// Clear implements Surface.
func (s *ImageSurface) Clear() {
	s.Image.Clear()
}

// FillDisc implements Surface.
func (s *ImageSurface) FillDisc(x, y, radius float64, c Color) {
	if radius <= 0 || c.A <= 0 {
		return
	}
	vector.DrawFilledCircle(s.Image, float32(x), float32(y), float32(radius), c.RGBA(), s.AntiAlias)
}

// StrokeLine implements LineSurface.
func (s *ImageSurface) StrokeLine(x0, y0, x1, y1, width float64, c Color) {
	if c.A <= 0 {
		return
	}
	vector.StrokeLine(s.Image, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c.RGBA(), s.AntiAlias)
}

// FillRect implements LineSurface.
func (s *ImageSurface) FillRect(r Rect, c Color) {
	if c.A <= 0 {
		return
	}
	vector.DrawFilledRect(s.Image, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c.RGBA(), s.AntiAlias)
}

// Size implements Surface.
func (s *ImageSurface) Size() (w, h float64) {
	b := s.Image.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}
