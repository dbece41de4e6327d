package graphics

import (
	"sync"

	"github.com/rivo/uniseg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Font wraps a font.Face for measuring and drawing.
// font.Face implementations are not safe for concurrent use, so every access
// goes through the Font's lock.
type Font struct {
	mu   sync.Mutex
	face font.Face
}

var (
	defaultFont     *Font
	defaultFontOnce sync.Once
)

// NewFont wraps face. A nil face falls back to the bundled fixed-width face.
func NewFont(face font.Face) *Font {
	if face == nil {
		face = basicfont.Face7x13
	}
	return &Font{face: face}
}

// DefaultFont returns the shared font backed by basicfont.Face7x13.
func DefaultFont() *Font {
	defaultFontOnce.Do(func() {
		defaultFont = NewFont(basicfont.Face7x13)
	})
	return defaultFont
}

// WithFace runs fn while holding the font's lock.
func (f *Font) WithFace(fn func(face font.Face)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f.face)
}

// Ascent returns the distance from the top of a line to its baseline.
func (f *Font) Ascent() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fromFixed(f.face.Metrics().Ascent)
}

// LineHeight returns the recommended height of a line of text.
func (f *Font) LineHeight() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	m := f.face.Metrics()
	if m.Height > 0 {
		return fromFixed(m.Height)
	}
	return fromFixed(m.Ascent + m.Descent)
}

// Measure returns the advance width of s.
func (f *Font) Measure(s string) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fromFixed(font.MeasureString(f.face, s))
}

// Clusters splits s into grapheme clusters and returns each cluster's advance.
func (f *Font) Clusters(s string) (clusters []string, advances []float64) {
	clusters = SplitGraphemes(s)
	advances = make([]float64, len(clusters))
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, c := range clusters {
		advances[i] = fromFixed(font.MeasureString(f.face, c))
	}
	return clusters, advances
}

// SplitGraphemes splits s into user-perceived characters.
func SplitGraphemes(s string) []string {
	if s == "" {
		return nil
	}
	out := make([]string, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// TextStyle describes how text should be rendered.
type TextStyle struct {
	// Font is the face to draw with. Nil means DefaultFont.
	Font  *Font
	Color Color
}

// ResolvedFont returns the style's font or the default font.
func (s TextStyle) ResolvedFont() *Font {
	if s.Font != nil {
		return s.Font
	}
	return DefaultFont()
}

// WithColor returns a copy of the TextStyle with the specified color.
func (s TextStyle) WithColor(c Color) TextStyle {
	s.Color = c
	return s
}
