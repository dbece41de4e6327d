package graphics

import "image"

// Surface is the drawing target handed to widgets each frame.
//
// Every call carries the draw order z assigned by the widget context. Hosts
// whose renderer does not paint in submission order use z to sort; immediate
// surfaces may ignore it. Errors are returned to the caller of the render pass
// unchanged.
type Surface interface {
	// DrawImage draws img scaled into dst.
	DrawImage(img image.Image, dst Rect, z int) error
	// DrawImageTinted draws img scaled into dst with every pixel multiplied by tint.
	DrawImageTinted(img image.Image, dst Rect, tint Color, z int) error
	// DrawText draws a single line of text with its top-left corner at origin.
	DrawText(text string, style TextStyle, origin Offset, z int) error
	// StrokeRect outlines r with a one unit wide line.
	StrokeRect(r Rect, c Color, z int) error
	// FillRect fills r.
	FillRect(r Rect, c Color, z int) error
}
