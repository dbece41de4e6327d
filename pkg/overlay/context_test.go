package overlay

import (
	stderrors "errors"
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/go-drift/overlay/pkg/errors"
	"github.com/go-drift/overlay/pkg/graphics"
	"github.com/go-drift/overlay/pkg/input"
)

// frame collects what a render pass drew.
type frame struct {
	drawn []string
}

type fakeWidget struct {
	Base
	name      string
	rect      graphics.Rect
	focusable bool
	cursor    graphics.CursorIcon
	frame     *frame
	renderErr error

	hover  bool
	focus  bool
	clicks int
	blurs  int
	keys   []input.Key
	typed  []rune
}

func (p *fakeWidget) Contains(pt graphics.Offset) bool   { return p.rect.Contains(pt) }
func (p *fakeWidget) IsFocusable(graphics.Offset) bool   { return p.focusable }
func (p *fakeWidget) OnClick(graphics.Offset)            { p.clicks++ }
func (p *fakeWidget) OnKey(k input.Key, _ bool)          { p.keys = append(p.keys, k) }
func (p *fakeWidget) OnTyped(r rune)                     { p.typed = append(p.typed, r) }
func (p *fakeWidget) SetHover(_ graphics.Offset, h bool) { p.hover = h }

func (p *fakeWidget) CursorIcon(graphics.Offset) graphics.CursorIcon {
	return p.cursor
}

func (p *fakeWidget) SetFocus(_ graphics.Offset, f bool) {
	if !f {
		p.blurs++
	}
	p.focus = f
}

func (p *fakeWidget) Render(_ graphics.Surface, z int) error {
	if p.renderErr != nil {
		return p.renderErr
	}
	if p.frame != nil {
		p.frame.drawn = append(p.frame.drawn, fmt.Sprintf("%s@%d", p.name, z))
	}
	return nil
}

func (p *fakeWidget) Build(*Builder) (Widget, *fakeWidget) {
	return p, p
}

// ownerConfig builds a fakeWidget that owns a hidden sub-layer.
type ownerConfig struct {
	p *fakeWidget
}

func (c ownerConfig) Build(b *Builder) (Widget, *SingularLayerHandle) {
	l := b.AddSingularLayer()
	l.SetActive(false)
	return c.p, l
}

func mustAdd(t *testing.T, ctx *Context, p *fakeWidget, l LayerRef) *Response[*fakeWidget] {
	t.Helper()
	resp, err := Add[*fakeWidget](ctx, p, l)
	if err != nil {
		t.Fatalf("Add(%s): %v", p.name, err)
	}
	return resp
}

func box(x, y, w, h float64) graphics.Rect {
	return graphics.RectFromLTWH(x, y, w, h)
}

func render(t *testing.T, ctx *Context, f *frame) []string {
	t.Helper()
	f.drawn = nil
	if err := ctx.Render(&graphics.Recorder{}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return f.drawn
}

func click(ctx *Context, x, y float64) {
	ctx.Event(input.PointerMoved{Position: graphics.Offset{X: x, Y: y}})
	ctx.Event(input.PointerButton{Button: input.MouseLeft, Pressed: true})
	ctx.Event(input.PointerButton{Button: input.MouseLeft, Pressed: false})
}

func TestRenderOrderFollowsInsertion(t *testing.T) {
	ctx := New(Options{StartDrawOrder: 10})
	f := &frame{}
	l1 := ctx.AddLayer()
	l2 := ctx.AddLayer()
	mustAdd(t, ctx, &fakeWidget{name: "b1", frame: f}, l2)
	mustAdd(t, ctx, &fakeWidget{name: "a1", frame: f}, l1)
	mustAdd(t, ctx, &fakeWidget{name: "a2", frame: f}, l1)
	mustAdd(t, ctx, &fakeWidget{name: "a3", frame: f}, l1)

	want := []string{"a1@10", "a2@11", "a3@12", "b1@13"}
	for i := 0; i < 3; i++ {
		if got := render(t, ctx, f); !slices.Equal(got, want) {
			t.Fatalf("frame %d: drawn = %v, want %v", i, got, want)
		}
	}
}

func TestReleasedWidgetsDisappearAfterDrain(t *testing.T) {
	ctx := New(Options{})
	f := &frame{}
	l := ctx.AddLayer()
	var resps []*Response[*fakeWidget]
	for i := 0; i < 5; i++ {
		resps = append(resps, mustAdd(t, ctx, &fakeWidget{name: fmt.Sprint("w", i), frame: f}, l))
	}
	resps[1].Release()
	resps[3].Release()
	resps[3].Release()

	want := []string{"w0@0", "w2@1", "w4@2"}
	if got := render(t, ctx, f); !slices.Equal(got, want) {
		t.Errorf("drawn = %v, want %v", got, want)
	}

	// Ids are never reused after removal.
	r := mustAdd(t, ctx, &fakeWidget{name: "w5", frame: f}, l)
	if r.Handle().ID() != 6 {
		t.Errorf("new widget id = %d, want 6", r.Handle().ID())
	}
}

func TestLayerReleaseCascades(t *testing.T) {
	ctx := New(Options{})
	f := &frame{}
	l := ctx.AddLayer()
	other := ctx.AddLayer()
	w1 := mustAdd(t, ctx, &fakeWidget{name: "w1", frame: f}, l)
	mustAdd(t, ctx, &fakeWidget{name: "w2", frame: f}, l)
	mustAdd(t, ctx, &fakeWidget{name: "keep", frame: f}, other)
	w1.Release()

	l.Release()
	if got := render(t, ctx, f); !slices.Equal(got, []string{"keep@0"}) {
		t.Errorf("drawn = %v, want only keep", got)
	}
	if _, ok := ctx.Snapshot().Layer(l.ID()); ok {
		t.Error("released layer still present")
	}
}

func TestLayerHandleClonesShareOwnership(t *testing.T) {
	ctx := New(Options{})
	f := &frame{}
	l := ctx.AddLayer()
	clone := l.Clone()
	mustAdd(t, ctx, &fakeWidget{name: "w", frame: f}, l)

	l.Release()
	if got := render(t, ctx, f); len(got) != 1 {
		t.Fatalf("drawn = %v, want layer kept alive by clone", got)
	}
	clone.Release()
	if got := render(t, ctx, f); len(got) != 0 {
		t.Errorf("drawn = %v, want nothing after last release", got)
	}

	dead := l.Clone()
	dead.Release()
	if _, err := Add[*fakeWidget](ctx, &fakeWidget{name: "late"}, dead); !stderrors.Is(err, errors.ErrLayerNotFound) {
		t.Errorf("Add on removed layer: err = %v, want ErrLayerNotFound", err)
	}
}

func TestZeroHandlesAreInert(t *testing.T) {
	var shared LayerHandle
	var single SingularLayerHandle

	shared.SetActive(true)
	single.SetActive(true)
	if shared.Active() || single.Active() {
		t.Error("zero handle reports active")
	}
	if shared.ID() != 0 || single.ID() != 0 {
		t.Errorf("zero handle ids = %d, %d, want 0", shared.ID(), single.ID())
	}
	if c := shared.Clone(); c.ID() != 0 || c.Active() {
		t.Error("clone of zero handle owns a layer")
	}
	shared.Release()
	single.Release()
}

func TestAddToRemovedLayer(t *testing.T) {
	ctx := New(Options{})
	l := ctx.AddLayer()
	l.Release()

	resp, err := Add[*fakeWidget](ctx, &fakeWidget{name: "w"}, l)
	if resp != nil {
		t.Error("expected nil response")
	}
	if !errors.Is(err, errors.KindLayerNotFound) {
		t.Fatalf("err = %v, want KindLayerNotFound", err)
	}
	if _, err := Add[*fakeWidget](ctx, &fakeWidget{name: "w"}, nil); !stderrors.Is(err, errors.ErrLayerNotFound) {
		t.Errorf("nil layer: err = %v", err)
	}
}

func TestSetActiveIsDeferred(t *testing.T) {
	ctx := New(Options{})
	f := &frame{}
	l := ctx.AddLayer()
	p := mustAdd(t, ctx, &fakeWidget{name: "w", rect: box(0, 0, 10, 10), frame: f}, l).Channel

	l.SetActive(false)
	if l.Active() {
		t.Error("Active should report the requested state")
	}
	if snap, _ := ctx.Snapshot().Layer(l.ID()); snap.Active {
		t.Error("layer still active after drain")
	}
	if got := render(t, ctx, f); len(got) != 0 {
		t.Errorf("inactive layer rendered: %v", got)
	}
	click(ctx, 5, 5)
	if p.clicks != 0 || p.hover {
		t.Error("inactive layer received input")
	}

	l.SetActive(true)
	click(ctx, 5, 5)
	if p.clicks != 1 {
		t.Errorf("clicks = %d, want 1 after reactivation", p.clicks)
	}
}

func TestHoverGoesToTopmost(t *testing.T) {
	win := &fakeWindow{}
	ctx := New(Options{Window: win})
	l := ctx.AddLayer()
	bottom := mustAdd(t, ctx, &fakeWidget{name: "bottom", rect: box(0, 0, 100, 100), cursor: graphics.CursorText}, l).Channel
	top := mustAdd(t, ctx, &fakeWidget{name: "top", rect: box(50, 50, 100, 100), cursor: graphics.CursorHand}, l).Channel

	ctx.Event(input.PointerMoved{Position: graphics.Offset{X: 10, Y: 10}})
	if !bottom.hover || top.hover {
		t.Errorf("at (10,10): bottom=%v top=%v", bottom.hover, top.hover)
	}
	if ctx.Cursor() != graphics.CursorText {
		t.Errorf("cursor = %v, want text", ctx.Cursor())
	}

	ctx.Event(input.PointerMoved{Position: graphics.Offset{X: 75, Y: 75}})
	if bottom.hover || !top.hover {
		t.Errorf("at (75,75): bottom=%v top=%v", bottom.hover, top.hover)
	}
	if ctx.Cursor() != graphics.CursorHand {
		t.Errorf("cursor = %v, want hand", ctx.Cursor())
	}

	ctx.Event(input.PointerMoved{Position: graphics.Offset{X: 500, Y: 500}})
	if bottom.hover || top.hover {
		t.Error("hover should be cleared over empty space")
	}
	if ctx.Cursor() != graphics.CursorDefault {
		t.Errorf("cursor = %v, want default", ctx.Cursor())
	}
	want := []graphics.CursorIcon{graphics.CursorText, graphics.CursorHand, graphics.CursorDefault}
	if !slices.Equal(win.icons, want) {
		t.Errorf("window icons = %v, want %v", win.icons, want)
	}
}

func TestPressFocusesTopmost(t *testing.T) {
	ctx := New(Options{})
	l := ctx.AddLayer()
	under := mustAdd(t, ctx, &fakeWidget{name: "under", rect: box(0, 0, 100, 100), focusable: true}, l)
	over := mustAdd(t, ctx, &fakeWidget{name: "over", rect: box(0, 0, 50, 50), focusable: true}, l)

	click(ctx, 10, 10)
	if !over.Channel.focus || over.Channel.clicks != 1 {
		t.Errorf("over: focus=%v clicks=%d", over.Channel.focus, over.Channel.clicks)
	}
	if under.Channel.focus || under.Channel.clicks != 0 {
		t.Errorf("under: focus=%v clicks=%d", under.Channel.focus, under.Channel.clicks)
	}
	if lid, wid, ok := ctx.Focused(); !ok || lid != l.ID() || wid != over.Handle().ID() {
		t.Errorf("Focused = %d/%d/%v", lid, wid, ok)
	}

	click(ctx, 80, 80)
	if over.Channel.focus {
		t.Error("previous holder should lose focus")
	}
	if !under.Channel.focus {
		t.Error("under should gain focus")
	}
}

func TestPressOnFocusedWidgetSkipsSetFocus(t *testing.T) {
	ctx := New(Options{})
	l := ctx.AddLayer()
	p := mustAdd(t, ctx, &fakeWidget{name: "p", rect: box(0, 0, 10, 10), focusable: true}, l).Channel

	click(ctx, 5, 5)
	p.focus = false // observe whether SetFocus(true) is sent again
	click(ctx, 5, 5)
	if p.focus {
		t.Error("SetFocus(true) sent to the existing focus holder")
	}
	if p.clicks != 2 {
		t.Errorf("clicks = %d, want 2", p.clicks)
	}
}

func TestPressOnEmptySpace(t *testing.T) {
	for _, blur := range []bool{false, true} {
		ctx := New(Options{BlurOnEmptyPress: blur})
		l := ctx.AddLayer()
		p := mustAdd(t, ctx, &fakeWidget{name: "p", rect: box(0, 0, 10, 10), focusable: true}, l).Channel

		click(ctx, 5, 5)
		click(ctx, 500, 500)

		_, _, focused := ctx.Focused()
		if focused == blur {
			t.Errorf("BlurOnEmptyPress=%v: focused = %v", blur, focused)
		}
		if p.focus == blur {
			t.Errorf("BlurOnEmptyPress=%v: widget focus = %v", blur, p.focus)
		}
	}
}

func TestPressOnNonFocusableClearsFocus(t *testing.T) {
	ctx := New(Options{})
	l := ctx.AddLayer()
	field := mustAdd(t, ctx, &fakeWidget{name: "field", rect: box(0, 0, 10, 10), focusable: true}, l).Channel
	button := mustAdd(t, ctx, &fakeWidget{name: "button", rect: box(20, 0, 10, 10)}, l).Channel

	click(ctx, 5, 5)
	click(ctx, 25, 5)
	if field.focus {
		t.Error("field kept focus after pressing a button")
	}
	if button.clicks != 1 {
		t.Errorf("button clicks = %d", button.clicks)
	}
	ctx.Event(input.Typed{Char: 'x'})
	if len(field.typed) != 0 {
		t.Error("typed characters reached an unfocused widget")
	}
}

func TestPressEdgesOnly(t *testing.T) {
	ctx := New(Options{})
	l := ctx.AddLayer()
	p := mustAdd(t, ctx, &fakeWidget{name: "p", rect: box(0, 0, 10, 10)}, l).Channel

	ctx.Event(input.PointerMoved{Position: graphics.Offset{X: 5, Y: 5}})
	ctx.Event(input.PointerButton{Button: input.MouseLeft, Pressed: false})
	ctx.Event(input.PointerButton{Button: input.MouseLeft, Pressed: true})
	ctx.Event(input.PointerButton{Button: input.MouseLeft, Pressed: true})
	ctx.Event(input.PointerButton{Button: input.MouseRight, Pressed: true})
	ctx.Event(input.PointerButton{Button: input.MouseLeft, Pressed: false})
	ctx.Event(input.PointerButton{Button: input.MouseLeft, Pressed: false})
	if p.clicks != 1 {
		t.Errorf("clicks = %d, want 1", p.clicks)
	}
}

func TestKeysRouteToFocus(t *testing.T) {
	ctx := New(Options{})
	l := ctx.AddLayer()
	a := mustAdd(t, ctx, &fakeWidget{name: "a", rect: box(0, 0, 10, 10), focusable: true}, l)
	b := mustAdd(t, ctx, &fakeWidget{name: "b", rect: box(20, 0, 10, 10), focusable: true}, l)

	ctx.Event(input.KeyEvent{Key: input.KeyLeft, Pressed: true})
	if len(a.Channel.keys)+len(b.Channel.keys) != 0 {
		t.Fatal("key routed without focus")
	}

	click(ctx, 25, 5)
	ctx.Event(input.KeyEvent{Key: input.KeyLeft, Pressed: true})
	ctx.Event(input.Typed{Char: 'q'})
	if len(a.Channel.keys) != 0 || !slices.Equal(b.Channel.keys, []input.Key{input.KeyLeft}) {
		t.Errorf("keys a=%v b=%v", a.Channel.keys, b.Channel.keys)
	}
	if !slices.Equal(b.Channel.typed, []rune{'q'}) {
		t.Errorf("typed = %q", b.Channel.typed)
	}

	b.Release()
	ctx.Event(input.Typed{Char: 'z'})
	if len(b.Channel.typed) != 1 {
		t.Error("removed widget received input")
	}
	if _, _, ok := ctx.Focused(); ok {
		t.Error("stale focus not cleared")
	}
}

func TestRenderErrorBubbles(t *testing.T) {
	ctx := New(Options{})
	f := &frame{}
	l := ctx.AddLayer()
	mustAdd(t, ctx, &fakeWidget{name: "ok", frame: f}, l)
	bad := mustAdd(t, ctx, &fakeWidget{name: "bad", renderErr: stderrors.New("device lost")}, l)
	mustAdd(t, ctx, &fakeWidget{name: "after", frame: f}, l)

	err := ctx.Render(&graphics.Recorder{})
	if !errors.Is(err, errors.KindRender) {
		t.Fatalf("err = %v, want render error", err)
	}
	var oe *errors.OverlayError
	if !stderrors.As(err, &oe) || oe.Widget != uint64(bad.Handle().ID()) {
		t.Errorf("error does not name the failing widget: %v", err)
	}
	if !strings.Contains(err.Error(), "device lost") {
		t.Errorf("err = %q, want underlying cause", err)
	}
	if !slices.Equal(f.drawn, []string{"ok@0"}) {
		t.Errorf("drawn = %v, frame should stop at the failure", f.drawn)
	}
}

func TestBuilderOwnedLayers(t *testing.T) {
	ctx := New(Options{})
	f := &frame{}
	l := ctx.AddLayer()
	resp, err := Add[*SingularLayerHandle](ctx, ownerConfig{p: &fakeWidget{name: "owner", frame: f}}, l)
	if err != nil {
		t.Fatal(err)
	}
	sub := resp.Channel
	if len(resp.Layers()) != 1 || resp.Layers()[0] != sub {
		t.Fatalf("Layers() = %v", resp.Layers())
	}
	mustAdd(t, ctx, &fakeWidget{name: "content", frame: f}, sub)

	if got := render(t, ctx, f); !slices.Equal(got, []string{"owner@0"}) {
		t.Errorf("drawn = %v, hidden sub-layer should not render", got)
	}
	sub.SetActive(true)
	if got := render(t, ctx, f); !slices.Equal(got, []string{"owner@0", "content@1"}) {
		t.Errorf("drawn = %v", got)
	}

	resp.Release()
	snap := ctx.Snapshot()
	if snap.WidgetCount() != 0 || len(snap.Layers) != 1 {
		t.Errorf("after release: %+v", snap)
	}
}

func TestSnapshotYAML(t *testing.T) {
	ctx := New(Options{})
	l := ctx.AddLayer()
	mustAdd(t, ctx, &fakeWidget{name: "a", rect: box(0, 0, 5, 5), focusable: true}, l)
	mustAdd(t, ctx, &fakeWidget{name: "b"}, l)
	click(ctx, 1, 1)

	out, err := ctx.Snapshot().YAML()
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"widgets: [1, 2]", "active: true", "layer: 1", "widget: 1", "cursor: default"} {
		if !strings.Contains(string(out), want) {
			t.Errorf("snapshot YAML missing %q:\n%s", want, out)
		}
	}
}

func TestReleaseFromOtherGoroutines(t *testing.T) {
	ctx := New(Options{})
	l := ctx.AddLayer()
	var resps []*Response[*fakeWidget]
	for i := 0; i < 50; i++ {
		resps = append(resps, mustAdd(t, ctx, &fakeWidget{name: "w"}, l))
	}
	done := make(chan struct{})
	for _, r := range resps {
		go func() {
			r.Release()
			done <- struct{}{}
		}()
	}
	for range resps {
		<-done
	}
	if n := ctx.Snapshot().WidgetCount(); n != 0 {
		t.Errorf("WidgetCount = %d, want 0", n)
	}
}

type fakeWindow struct {
	icons []graphics.CursorIcon
}

func (w *fakeWindow) SetCursor(icon graphics.CursorIcon) {
	w.icons = append(w.icons, icon)
}
