package graphics

import (
	"image"
	"slices"
)

// OpKind identifies a recorded drawing operation.
type OpKind int

const (
	OpImage OpKind = iota
	OpImageTinted
	OpText
	OpStrokeRect
	OpFillRect
)

func (k OpKind) String() string {
	switch k {
	case OpImage:
		return "image"
	case OpImageTinted:
		return "image_tinted"
	case OpText:
		return "text"
	case OpStrokeRect:
		return "stroke_rect"
	case OpFillRect:
		return "fill_rect"
	default:
		return "unknown"
	}
}

// Op is a single recorded drawing call.
type Op struct {
	Kind  OpKind
	Z     int
	Rect  Rect
	Color Color
	Image image.Image
	Text  string
	Style TextStyle
	At    Offset
}

// DisplayList is an immutable list of drawing operations.
// It can be replayed onto any Surface implementation.
type DisplayList struct {
	ops []Op
}

// Ops returns the operations in submission order.
func (d *DisplayList) Ops() []Op {
	return slices.Clone(d.ops)
}

// Len returns the number of recorded operations.
func (d *DisplayList) Len() int {
	return len(d.ops)
}

// Paint replays the operations onto dst in ascending draw order. Operations
// sharing a draw order keep their submission order.
func (d *DisplayList) Paint(dst Surface) error {
	ordered := slices.Clone(d.ops)
	slices.SortStableFunc(ordered, func(a, b Op) int {
		return a.Z - b.Z
	})
	for _, op := range ordered {
		if err := op.replay(dst); err != nil {
			return err
		}
	}
	return nil
}

// Bounds returns the area the operation covers. Text is measured with its
// style's font.
func (op Op) Bounds() Rect {
	if op.Kind == OpText {
		f := op.Style.ResolvedFont()
		return RectFromLTWH(op.At.X, op.At.Y, f.Measure(op.Text), f.LineHeight())
	}
	return op.Rect
}

func (op Op) replay(dst Surface) error {
	switch op.Kind {
	case OpImage:
		return dst.DrawImage(op.Image, op.Rect, op.Z)
	case OpImageTinted:
		return dst.DrawImageTinted(op.Image, op.Rect, op.Color, op.Z)
	case OpText:
		return dst.DrawText(op.Text, op.Style, op.At, op.Z)
	case OpStrokeRect:
		return dst.StrokeRect(op.Rect, op.Color, op.Z)
	case OpFillRect:
		return dst.FillRect(op.Rect, op.Color, op.Z)
	}
	return nil
}

// Recorder is a Surface that records drawing calls into a display list.
// The zero value is ready to use.
type Recorder struct {
	ops []Op
}

// Reset discards recorded operations.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}

// Ops returns the operations recorded so far.
func (r *Recorder) Ops() []Op {
	return slices.Clone(r.ops)
}

// Finish returns the recorded display list and resets the recorder.
func (r *Recorder) Finish() *DisplayList {
	list := &DisplayList{ops: slices.Clone(r.ops)}
	r.Reset()
	return list
}

func (r *Recorder) DrawImage(img image.Image, dst Rect, z int) error {
	r.ops = append(r.ops, Op{Kind: OpImage, Z: z, Rect: dst, Image: img})
	return nil
}

func (r *Recorder) DrawImageTinted(img image.Image, dst Rect, tint Color, z int) error {
	r.ops = append(r.ops, Op{Kind: OpImageTinted, Z: z, Rect: dst, Image: img, Color: tint})
	return nil
}

func (r *Recorder) DrawText(text string, style TextStyle, origin Offset, z int) error {
	r.ops = append(r.ops, Op{Kind: OpText, Z: z, Text: text, Style: style, At: origin, Color: style.Color})
	return nil
}

func (r *Recorder) StrokeRect(rect Rect, c Color, z int) error {
	r.ops = append(r.ops, Op{Kind: OpStrokeRect, Z: z, Rect: rect, Color: c})
	return nil
}

func (r *Recorder) FillRect(rect Rect, c Color, z int) error {
	r.ops = append(r.ops, Op{Kind: OpFillRect, Z: z, Rect: rect, Color: c})
	return nil
}
