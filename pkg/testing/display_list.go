package testing

import (
	"fmt"
	"math"

	"github.com/go-drift/overlay/pkg/graphics"
)

// DisplayOp represents a serialized drawing operation.
type DisplayOp struct {
	Op     string         `yaml:"op"`
	Z      int            `yaml:"z"`
	Params map[string]any `yaml:"params,omitempty"`
}

func serializeDisplayList(dl *graphics.DisplayList) []DisplayOp {
	ops := dl.Ops()
	out := make([]DisplayOp, 0, len(ops))
	for _, op := range ops {
		out = append(out, serializeOp(op))
	}
	return out
}

func serializeOp(op graphics.Op) DisplayOp {
	d := DisplayOp{Op: op.Kind.String(), Z: op.Z}
	switch op.Kind {
	case graphics.OpImage:
		d.Params = map[string]any{"rect": serializeRect(op.Rect), "image": serializeImage(op)}
	case graphics.OpImageTinted:
		d.Params = map[string]any{
			"rect":  serializeRect(op.Rect),
			"image": serializeImage(op),
			"tint":  serializeColor(op.Color),
		}
	case graphics.OpText:
		d.Params = map[string]any{
			"text":  op.Text,
			"at":    []float64{round2(op.At.X), round2(op.At.Y)},
			"color": serializeColor(op.Color),
		}
	case graphics.OpStrokeRect, graphics.OpFillRect:
		d.Params = map[string]any{"rect": serializeRect(op.Rect), "color": serializeColor(op.Color)}
	}
	return d
}

func serializeRect(r graphics.Rect) []float64 {
	return []float64{round2(r.Left), round2(r.Top), round2(r.Width()), round2(r.Height())}
}

func serializeImage(op graphics.Op) string {
	if op.Image == nil {
		return "nil"
	}
	b := op.Image.Bounds()
	return fmt.Sprintf("%dx%d", b.Dx(), b.Dy())
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("#%08X", uint32(c))
}

func round2(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return math.Round(f*100) / 100
}
