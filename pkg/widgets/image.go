package widgets

import (
	"image"

	"github.com/go-drift/overlay/pkg/graphics"
	"github.com/go-drift/overlay/pkg/overlay"
)

// Image draws a picture scaled into a rectangle. It takes no input.
type Image struct {
	// Src is the picture to draw.
	Src image.Image
	// Rect is where the picture is drawn.
	Rect graphics.Rect
	// Tint is blended with the picture. Transparent draws it unmodified.
	Tint graphics.Color
}

// Build implements overlay.Config.
func (i Image) Build(*overlay.Builder) (overlay.Widget, struct{}) {
	return &imageWidget{cfg: i}, struct{}{}
}

type imageWidget struct {
	overlay.Base
	cfg Image
}

func (w *imageWidget) Contains(graphics.Offset) bool    { return false }
func (w *imageWidget) IsFocusable(graphics.Offset) bool { return false }

func (w *imageWidget) Render(s graphics.Surface, z int) error {
	return drawImage(s, w.cfg.Src, w.cfg.Rect, w.cfg.Tint, z)
}

func drawImage(s graphics.Surface, src image.Image, r graphics.Rect, tint graphics.Color, z int) error {
	if src == nil {
		return nil
	}
	if tint == graphics.ColorTransparent {
		return s.DrawImage(src, r, z)
	}
	return s.DrawImageTinted(src, r, tint, z)
}
