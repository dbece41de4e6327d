package widgets

import (
	"testing"

	"github.com/go-drift/overlay/pkg/channels"
	"github.com/go-drift/overlay/pkg/graphics"
	"github.com/go-drift/overlay/pkg/overlay"
	overlaytest "github.com/go-drift/overlay/pkg/testing"
)

func TestBarrier_BlocksLowerLayers(t *testing.T) {
	tester := overlaytest.NewTesterWithT(t, overlay.Options{})
	button := add[*channels.Clickable](t, tester, ButtonOf("Behind", graphics.RectFromLTWH(0, 0, 50, 20)), tester.Layer())
	add[*channels.Input](t, tester, InputOf(graphics.RectFromLTWH(60, 0, 50, 20), ""), tester.Layer())
	tester.TapAt(graphics.Offset{X: 70, Y: 5})

	modal := tester.Context().AddLayer()
	defer modal.Release()
	screen := graphics.RectFromLTWH(0, 0, overlaytest.DefaultTestWidth, overlaytest.DefaultTestHeight)
	barrier := add[*channels.Clickable](t, tester, BarrierOf(screen), modal)

	tester.TapAt(graphics.Offset{X: 10, Y: 5})
	if button.Channel.HasClicked() {
		t.Error("press went through the barrier")
	}
	if !barrier.Channel.HasClicked() {
		t.Error("dismissible barrier did not signal")
	}
	if _, _, ok := tester.Context().Focused(); ok {
		t.Error("pressing the barrier should remove focus from the field below")
	}

	pump(t, tester)
	ops := tester.Frame().Ops()
	last := ops[len(ops)-1]
	if last.Kind != graphics.OpFillRect || last.Rect != screen {
		t.Errorf("barrier should draw last over the whole screen, got %+v", last)
	}

	modal.SetActive(false)
	tester.TapAt(graphics.Offset{X: 10, Y: 5})
	if !button.Channel.HasClicked() {
		t.Error("inactive barrier layer should not block")
	}
}

func TestBarrier_NotDismissible(t *testing.T) {
	tester := overlaytest.NewTesterWithT(t, overlay.Options{})
	b := BarrierOf(graphics.RectFromLTWH(0, 0, 100, 100))
	b.Dismissible = false
	resp := add[*channels.Clickable](t, tester, b, tester.Layer())

	tester.TapAt(graphics.Offset{X: 50, Y: 50})
	if resp.Channel.HasClicked() {
		t.Error("non-dismissible barrier signalled")
	}
}
