package widgets

import (
	"fmt"
	"slices"
	"testing"

	"github.com/go-drift/overlay/pkg/channels"
	"github.com/go-drift/overlay/pkg/graphics"
	"github.com/go-drift/overlay/pkg/overlay"
	overlaytest "github.com/go-drift/overlay/pkg/testing"
)

func TestConcealer_Toggle(t *testing.T) {
	tester := overlaytest.NewTesterWithT(t, overlay.Options{})
	resp := add[*channels.Concealer](t, tester, Concealer{
		Header: ButtonOf("Details", graphics.RectFromLTWH(0, 0, 100, 20)),
	}, tester.Layer())
	panel := resp.Channel
	inside := add[*channels.Clickable](t, tester, ButtonOf("Inside", graphics.RectFromLTWH(0, 30, 100, 20)), panel.Layer())

	pump(t, tester)
	if tester.Find(overlaytest.ByText("Inside")).Exists() {
		t.Fatal("panel contents drawn while closed")
	}
	tester.TapAt(graphics.Offset{X: 10, Y: 35})
	if inside.Channel.HasClicked() {
		t.Fatal("closed panel contents received a press")
	}

	tester.TapAt(graphics.Offset{X: 10, Y: 5})
	if !panel.IsOpen() || !panel.HasClicked() {
		t.Fatalf("header press: open=%v", panel.IsOpen())
	}
	pump(t, tester)
	if !tester.Find(overlaytest.ByText("Inside")).Exists() {
		t.Fatal("panel contents not drawn while open")
	}
	if err := tester.Tap(overlaytest.ByText("Inside")); err != nil {
		t.Fatal(err)
	}
	if !inside.Channel.HasClicked() {
		t.Error("open panel contents did not receive the press")
	}
	if !panel.IsOpen() {
		t.Error("press inside the panel closed it")
	}

	tester.TapAt(graphics.Offset{X: 10, Y: 5})
	pump(t, tester)
	if panel.IsOpen() || tester.Find(overlaytest.ByText("Inside")).Exists() {
		t.Error("second header press should close the panel")
	}
}

func TestConcealer_ReleaseRemovesPanel(t *testing.T) {
	tester := overlaytest.NewTesterWithT(t, overlay.Options{})
	resp := add[*channels.Concealer](t, tester, Concealer{
		Header: ButtonOf("Details", graphics.RectFromLTWH(0, 0, 100, 20)),
		Open:   true,
	}, tester.Layer())
	add[struct{}](t, tester, TextOf("body", graphics.Offset{Y: 30}), resp.Channel.Layer())

	if n := tester.Context().Snapshot().WidgetCount(); n != 2 {
		t.Fatalf("WidgetCount = %d, want 2", n)
	}
	resp.Release()
	snap := tester.Context().Snapshot()
	if snap.WidgetCount() != 0 || len(snap.Layers) != 1 {
		t.Errorf("release should remove the header and the panel layer: %+v", snap)
	}
}

func newManager(t *testing.T, tester *overlaytest.Tester, n int) *channels.ConcealerManager {
	t.Helper()
	cfg := ConcealerManager{}
	for i := 0; i < n; i++ {
		cfg.Panels = append(cfg.Panels, Concealer{
			Header: ButtonOf(fmt.Sprintf("Tab %d", i), graphics.RectFromLTWH(float64(i)*60, 0, 50, 20)),
		})
	}
	m := add[*channels.ConcealerManager](t, tester, cfg, tester.Layer()).Channel
	for i := 0; i < n; i++ {
		add[struct{}](t, tester, TextOf(fmt.Sprintf("body %d", i), graphics.Offset{Y: 40}), m.Layer(i))
	}
	return m
}

func header(i int) graphics.Offset {
	return graphics.Offset{X: float64(i)*60 + 10, Y: 10}
}

func TestConcealerManager_AtMostOneOpen(t *testing.T) {
	tester := overlaytest.NewTesterWithT(t, overlay.Options{})
	m := newManager(t, tester, 3)

	steps := []struct {
		name   string
		action func()
		want   []string
	}{
		{"initially closed", func() {}, nil},
		{"open first", func() { tester.TapAt(header(0)) }, []string{"body 0"}},
		{"open second closes first", func() { tester.TapAt(header(1)) }, []string{"body 1"}},
		{"press off the headers keeps it open", func() { tester.TapAt(graphics.Offset{X: 500, Y: 500}) }, []string{"body 1"}},
		{"reclick closes", func() { tester.TapAt(header(1)) }, nil},
		{"open third", func() { tester.TapAt(header(2)) }, []string{"body 2"}},
		{"channel switches panel", func() { m.SetActive(0) }, []string{"body 0"}},
		{"channel clears", func() { m.Clear() }, nil},
	}
	for _, step := range steps {
		step.action()
		pump(t, tester)
		got := tester.Find(overlaytest.ByTextContaining("body")).Texts()
		if !slices.Equal(got, step.want) {
			t.Errorf("%s: visible panels = %v, want %v", step.name, got, step.want)
		}
		open := 0
		for i := 0; i < m.Len(); i++ {
			if m.Panel(i).IsOpen() {
				open++
			}
		}
		if open > 1 {
			t.Errorf("%s: %d panels open", step.name, open)
		}
	}
}

func TestConcealerManager_HeaderClosesPanelOpenedThroughItsChannel(t *testing.T) {
	tester := overlaytest.NewTesterWithT(t, overlay.Options{})
	m := newManager(t, tester, 2)

	m.Panel(0).Toggle()
	pump(t, tester)
	if got := tester.Find(overlaytest.ByTextContaining("body")).Texts(); !slices.Equal(got, []string{"body 0"}) {
		t.Fatalf("visible panels = %v, want [body 0]", got)
	}

	tester.TapAt(header(1))
	pump(t, tester)
	if got := tester.Find(overlaytest.ByTextContaining("body")).Texts(); !slices.Equal(got, []string{"body 1"}) {
		t.Errorf("visible panels = %v, want [body 1]", got)
	}
	if i, ok := m.Active(); !ok || i != 1 {
		t.Errorf("Active = %d,%v want 1", i, ok)
	}
}

func TestConcealerManager_HeaderSignals(t *testing.T) {
	tester := overlaytest.NewTesterWithT(t, overlay.Options{})
	m := newManager(t, tester, 2)

	tester.TapAt(header(1))
	if m.Panel(0).HasClicked() || !m.Panel(1).HasClicked() {
		t.Error("only the pressed header should signal")
	}
	if i, ok := m.Active(); !ok || i != 1 {
		t.Errorf("Active = %d,%v want 1", i, ok)
	}
}

func TestConcealerManager_HoverOneHeader(t *testing.T) {
	idle, hover := graphics.RGB(200, 200, 200), graphics.RGB(250, 250, 250)
	tester := overlaytest.NewTesterWithT(t, overlay.Options{})
	cfg := ConcealerManager{}
	for i := 0; i < 2; i++ {
		cfg.Panels = append(cfg.Panels, Concealer{
			Header: ButtonOf("Tab", graphics.RectFromLTWH(float64(i)*60, 0, 50, 20)).WithTint(idle, hover),
		})
	}
	add[*channels.ConcealerManager](t, tester, cfg, tester.Layer())

	tester.MoveTo(header(1))
	pump(t, tester)
	hovered := tester.Find(overlaytest.All(overlaytest.ByKind(graphics.OpFillRect), overlaytest.ByColor(hover)))
	if hovered.Count() != 1 || hovered.First().Rect.Left != 60 {
		t.Errorf("expected only the second header hovered, got %d", hovered.Count())
	}

	tester.MoveTo(graphics.Offset{X: 500, Y: 500})
	pump(t, tester)
	if tester.Find(overlaytest.ByColor(hover)).Exists() {
		t.Error("hover should clear on every header")
	}
}

func TestConcealerManager_OnlyFirstOpenPanelStartsOpen(t *testing.T) {
	tester := overlaytest.NewTesterWithT(t, overlay.Options{})
	m := add[*channels.ConcealerManager](t, tester, ConcealerManager{Panels: []Concealer{
		{Header: ButtonOf("a", graphics.RectFromLTWH(0, 0, 10, 10))},
		{Header: ButtonOf("b", graphics.RectFromLTWH(20, 0, 10, 10)), Open: true},
		{Header: ButtonOf("c", graphics.RectFromLTWH(40, 0, 10, 10)), Open: true},
	}}, tester.Layer()).Channel

	if i, ok := m.Active(); !ok || i != 1 {
		t.Errorf("Active = %d,%v want 1", i, ok)
	}
	if m.Panel(2).IsOpen() {
		t.Error("second requested panel should start closed")
	}
}
