package graphics

import (
	stderrors "errors"
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// ErrNilImage is returned when a draw call receives no image.
var ErrNilImage = stderrors.New("graphics: nil image")

// Raster is an immediate-mode Surface that paints into an in-memory image.
// Calls are painted in submission order; draw order is ignored.
type Raster struct {
	dst    draw.Image
	scaler draw.Scaler
}

// NewRaster returns a surface painting into dst using bilinear scaling.
func NewRaster(dst draw.Image) *Raster {
	return &Raster{dst: dst, scaler: draw.ApproxBiLinear}
}

// NewRasterSize allocates an RGBA target of the given pixel size.
func NewRasterSize(width, height int) *Raster {
	return NewRaster(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// WithScaler replaces the interpolator used for image scaling.
func (r *Raster) WithScaler(s draw.Scaler) *Raster {
	r.scaler = s
	return r
}

// Image returns the paint target.
func (r *Raster) Image() draw.Image {
	return r.dst
}

// Clear fills the whole target with c, replacing existing pixels.
func (r *Raster) Clear(c Color) {
	draw.Draw(r.dst, r.dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (r *Raster) DrawImage(img image.Image, dst Rect, _ int) error {
	if img == nil {
		return ErrNilImage
	}
	r.scaler.Scale(r.dst, dst.ImageRect(), img, img.Bounds(), draw.Over, nil)
	return nil
}

func (r *Raster) DrawImageTinted(img image.Image, dst Rect, tint Color, _ int) error {
	if img == nil {
		return ErrNilImage
	}
	bounds := dst.ImageRect()
	tmp := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	r.scaler.Scale(tmp, tmp.Bounds(), img, img.Bounds(), draw.Src, nil)
	tr, tg, tb, ta := tint.Components()
	for i := 0; i+3 < len(tmp.Pix); i += 4 {
		tmp.Pix[i] = mul8(tmp.Pix[i], tr)
		tmp.Pix[i+1] = mul8(tmp.Pix[i+1], tg)
		tmp.Pix[i+2] = mul8(tmp.Pix[i+2], tb)
		tmp.Pix[i+3] = mul8(tmp.Pix[i+3], ta)
	}
	draw.Draw(r.dst, bounds, tmp, image.Point{}, draw.Over)
	return nil
}

func (r *Raster) DrawText(text string, style TextStyle, origin Offset, _ int) error {
	f := style.ResolvedFont()
	f.WithFace(func(face font.Face) {
		d := font.Drawer{
			Dst:  r.dst,
			Src:  image.NewUniform(style.Color),
			Face: face,
			Dot: fixed.Point26_6{
				X: fixed.Int26_6(origin.X * 64),
				Y: fixed.Int26_6(origin.Y*64) + face.Metrics().Ascent,
			},
		}
		d.DrawString(text)
	})
	return nil
}

func (r *Raster) StrokeRect(rect Rect, c Color, _ int) error {
	b := rect.ImageRect()
	if b.Empty() {
		return nil
	}
	src := image.NewUniform(c)
	edges := []image.Rectangle{
		image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Min.Y+1),
		image.Rect(b.Min.X, b.Max.Y-1, b.Max.X, b.Max.Y),
		image.Rect(b.Min.X, b.Min.Y+1, b.Min.X+1, b.Max.Y-1),
		image.Rect(b.Max.X-1, b.Min.Y+1, b.Max.X, b.Max.Y-1),
	}
	for _, e := range edges {
		draw.Draw(r.dst, e, src, image.Point{}, draw.Over)
	}
	return nil
}

func (r *Raster) FillRect(rect Rect, c Color, _ int) error {
	draw.Draw(r.dst, rect.ImageRect(), image.NewUniform(c), image.Point{}, draw.Over)
	return nil
}
