package orbitfx

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Default card label sizes.
const (
	DefaultTitleSize = 16.0
	DefaultBodySize  = 12.0
)

// LabelFont wraps Ebitengine's text/v2 for card titles and bodies.
type LabelFont struct {
	face *text.GoTextFace
	lh   float64 // cached line height
}

// LoadLabelFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadLabelFont(ttfData []byte, size float64) (*LabelFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("orbitfx: parse TTF data: %w", err)
	}

	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}
	m := face.Metrics()
	return &LabelFont{face: face, lh: m.HAscent + m.HDescent + m.HLineGap}, nil
}

// LineHeight returns the vertical distance between baselines.
func (f *LabelFont) LineHeight() float64 {
	return f.lh
}

// MeasureString returns the width and height of the rendered text.
func (f *LabelFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// Face returns the underlying GoTextFace.
func (f *LabelFont) Face() *text.GoTextFace {
	return f.face
}

// drawAt draws s with its top-left corner at (x, y).
func (f *LabelFont) drawAt(dst *ebiten.Image, s string, x, y float64, c Color) {
	if s == "" || c.A <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
	op.LineSpacing = f.lh
	text.Draw(dst, s, f.face, op)
}

// CardFonts are the faces used for card titles and bodies.
type CardFonts struct {
	Title *LabelFont
	Body  *LabelFont
}

// LoadDefaultCardFonts loads Go Regular at the default label sizes.
func LoadDefaultCardFonts() (CardFonts, error) {
	title, err := LoadLabelFont(goregular.TTF, DefaultTitleSize)
	if err != nil {
		return CardFonts{}, fmt.Errorf("load title font: %w", err)
	}
	body, err := LoadLabelFont(goregular.TTF, DefaultBodySize)
	if err != nil {
		return CardFonts{}, fmt.Errorf("load body font: %w", err)
	}
	return CardFonts{Title: title, Body: body}, nil
}

// truncateToWidth shortens s with an ellipsis so it measures at most maxW.
func truncateToWidth(f *LabelFont, s string, maxW float64) string {
	if w, _ := f.MeasureString(s); w <= maxW {
		return s
	}
	r := []rune(s)
	for len(r) > 0 {
		r = r[:len(r)-1]
		candidate := string(r) + "…"
		if w, _ := f.MeasureString(candidate); w <= maxW {
			return candidate
		}
	}
	return ""
}
