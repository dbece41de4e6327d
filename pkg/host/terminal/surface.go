package terminal

import (
	"image"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/draw"

	"github.com/go-drift/overlay/pkg/graphics"
)

// DefaultCellSize returns the size of one terminal cell in host units: the
// advance and line height of the default font.
func DefaultCellSize() graphics.Size {
	f := graphics.DefaultFont()
	return graphics.Size{Width: f.Measure("M"), Height: f.LineHeight()}
}

// Surface paints widgets onto the cells of a tcell screen.
// Calls are painted immediately in submission order; draw order is ignored.
// Translucent fills are blended against the cell's current background.
type Surface struct {
	screen     tcell.Screen
	cell       graphics.Size
	background graphics.Color
}

// NewSurface returns a surface over screen. A zero cell size selects
// DefaultCellSize.
func NewSurface(screen tcell.Screen, cell graphics.Size) *Surface {
	if cell.Width <= 0 || cell.Height <= 0 {
		cell = DefaultCellSize()
	}
	return &Surface{screen: screen, cell: cell, background: graphics.RGB(0, 0, 0)}
}

// CellSize returns the host size of one cell.
func (s *Surface) CellSize() graphics.Size {
	return s.cell
}

// Size returns the screen size in host units.
func (s *Surface) Size() graphics.Size {
	w, h := s.screen.Size()
	return graphics.Size{Width: float64(w) * s.cell.Width, Height: float64(h) * s.cell.Height}
}

// Clear blanks every cell and paints it with bg.
func (s *Surface) Clear(bg graphics.Color) {
	s.background = bg
	style := tcell.StyleDefault.Background(toColor(bg))
	w, h := s.screen.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// CellCenter returns the host position at the centre of cell (x, y).
func (s *Surface) CellCenter(x, y int) graphics.Offset {
	return graphics.Offset{
		X: (float64(x) + 0.5) * s.cell.Width,
		Y: (float64(y) + 0.5) * s.cell.Height,
	}
}

// cells returns the cell range covered by r, clipped to the screen.
func (s *Surface) cells(r graphics.Rect) image.Rectangle {
	w, h := s.screen.Size()
	c := image.Rect(
		int(math.Floor(r.Left/s.cell.Width)),
		int(math.Floor(r.Top/s.cell.Height)),
		int(math.Ceil(r.Right/s.cell.Width)),
		int(math.Ceil(r.Bottom/s.cell.Height)),
	)
	return c.Intersect(image.Rect(0, 0, w, h))
}

func (s *Surface) FillRect(r graphics.Rect, c graphics.Color, _ int) error {
	if c.Alpha() == 0 {
		return nil
	}
	b := s.cells(r)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			s.paintBackground(x, y, c)
		}
	}
	return nil
}

func (s *Surface) StrokeRect(r graphics.Rect, c graphics.Color, _ int) error {
	if c.Alpha() == 0 {
		return nil
	}
	b := s.cells(r)
	if b.Empty() {
		return nil
	}
	left, top, right, bottom := b.Min.X, b.Min.Y, b.Max.X-1, b.Max.Y-1
	for x := left; x <= right; x++ {
		s.paintGlyph(x, top, tcell.RuneHLine, c)
		s.paintGlyph(x, bottom, tcell.RuneHLine, c)
	}
	for y := top; y <= bottom; y++ {
		s.paintGlyph(left, y, tcell.RuneVLine, c)
		s.paintGlyph(right, y, tcell.RuneVLine, c)
	}
	if left == right || top == bottom {
		return nil
	}
	s.paintGlyph(left, top, tcell.RuneULCorner, c)
	s.paintGlyph(right, top, tcell.RuneURCorner, c)
	s.paintGlyph(left, bottom, tcell.RuneLLCorner, c)
	s.paintGlyph(right, bottom, tcell.RuneLRCorner, c)
	return nil
}

// DrawText writes text into the row holding the middle of its first line.
// Each grapheme cluster occupies its display width in cells.
func (s *Surface) DrawText(text string, style graphics.TextStyle, origin graphics.Offset, _ int) error {
	if style.Color.Alpha() == 0 {
		return nil
	}
	lh := style.ResolvedFont().LineHeight()
	row := int(math.Floor((origin.Y + lh/2) / s.cell.Height))
	col := int(math.Floor(origin.X / s.cell.Width))
	w, h := s.screen.Size()
	if row < 0 || row >= h {
		return nil
	}
	for _, cluster := range graphics.SplitGraphemes(text) {
		width := runewidth.StringWidth(cluster)
		if width == 0 {
			continue
		}
		if col >= w {
			break
		}
		if col >= 0 {
			runes := []rune(cluster)
			_, _, cur, _ := s.screen.GetContent(col, row)
			s.screen.SetContent(col, row, runes[0], runes[1:], cur.Foreground(toColor(style.Color)))
		}
		col += width
	}
	return nil
}

func (s *Surface) DrawImage(img image.Image, dst graphics.Rect, z int) error {
	return s.DrawImageTinted(img, dst, graphics.RGB(255, 255, 255), z)
}

// DrawImageTinted scales img down to one sample per covered cell and paints
// each sample as the cell background.
func (s *Surface) DrawImageTinted(img image.Image, dst graphics.Rect, tint graphics.Color, _ int) error {
	if img == nil {
		return graphics.ErrNilImage
	}
	full := image.Rect(
		int(math.Floor(dst.Left/s.cell.Width)),
		int(math.Floor(dst.Top/s.cell.Height)),
		int(math.Ceil(dst.Right/s.cell.Width)),
		int(math.Ceil(dst.Bottom/s.cell.Height)),
	)
	visible := s.cells(dst)
	if visible.Empty() {
		return nil
	}
	samples := image.NewRGBA(image.Rect(0, 0, full.Dx(), full.Dy()))
	draw.ApproxBiLinear.Scale(samples, samples.Bounds(), img, img.Bounds(), draw.Src, nil)
	for y := visible.Min.Y; y < visible.Max.Y; y++ {
		for x := visible.Min.X; x < visible.Max.X; x++ {
			p := samples.RGBAAt(x-full.Min.X, y-full.Min.Y)
			c := graphics.RGBA8(p.R, p.G, p.B, p.A)
			if p.A != 0 && p.A != 0xFF {
				// Undo premultiplication.
				c = graphics.RGBA8(
					uint8(uint16(p.R)*0xFF/uint16(p.A)),
					uint8(uint16(p.G)*0xFF/uint16(p.A)),
					uint8(uint16(p.B)*0xFF/uint16(p.A)),
					p.A,
				)
			}
			if c = c.Modulate(tint); c.Alpha() > 0 {
				s.paintBackground(x, y, c)
			}
		}
	}
	return nil
}

func (s *Surface) paintBackground(x, y int, c graphics.Color) {
	mainc, comb, style, _ := s.screen.GetContent(x, y)
	if mainc == 0 {
		mainc = ' '
	}
	_, bg, _ := style.Decompose()
	s.screen.SetContent(x, y, mainc, comb, style.Background(toColor(blend(s.fromColor(bg), c))))
}

func (s *Surface) paintGlyph(x, y int, glyph rune, c graphics.Color) {
	_, _, style, _ := s.screen.GetContent(x, y)
	s.screen.SetContent(x, y, glyph, nil, style.Foreground(toColor(c)))
}

func (s *Surface) fromColor(c tcell.Color) graphics.Color {
	if c == tcell.ColorDefault {
		return s.background
	}
	r, g, b := c.RGB()
	if r < 0 {
		return s.background
	}
	return graphics.RGB(uint8(r), uint8(g), uint8(b))
}

func toColor(c graphics.Color) tcell.Color {
	r, g, b, _ := c.Components()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// blend paints src over the opaque dst.
func blend(dst, src graphics.Color) graphics.Color {
	a := src.Alpha()
	dr, dg, db, _ := dst.Components()
	sr, sg, sb, _ := src.Components()
	mix := func(d, s uint8) uint8 {
		return uint8(math.Round(float64(s)*a + float64(d)*(1-a)))
	}
	return graphics.RGB(mix(dr, sr), mix(dg, sg), mix(db, sb))
}

var _ graphics.Surface = (*Surface)(nil)
