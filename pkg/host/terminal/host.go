package terminal

import (
	"context"
	stderrors "errors"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/overlay/pkg/errors"
	"github.com/go-drift/overlay/pkg/graphics"
	"github.com/go-drift/overlay/pkg/overlay"
)

// Options configures a Host.
type Options struct {
	// CellSize is the host size of one terminal cell. Zero selects
	// DefaultCellSize.
	CellSize graphics.Size
	// Background paints every cell before the widgets render. Zero selects
	// white.
	Background graphics.Color
	// QuitKeys end Run when pressed. Nil selects Ctrl-C.
	QuitKeys []tcell.Key
	// OnFrame runs after each batch of events and before rendering.
	// Applications poll their channels here.
	OnFrame func()
	// Logger receives debug records for skipped frames. Nil discards them.
	Logger *slog.Logger
}

// Host drives a widget context from a tcell screen.
type Host struct {
	screen  tcell.Screen
	ui      *overlay.Context
	surface *Surface
	opts    Options
	log     *slog.Logger
}

// New returns a host rendering ui onto screen. The screen must already be
// initialised.
func New(screen tcell.Screen, ui *overlay.Context, opts Options) *Host {
	if opts.QuitKeys == nil {
		opts.QuitKeys = []tcell.Key{tcell.KeyCtrlC}
	}
	if opts.Background == 0 {
		opts.Background = graphics.RGB(255, 255, 255)
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Host{
		screen:  screen,
		ui:      ui,
		surface: NewSurface(screen, opts.CellSize),
		opts:    opts,
		log:     log,
	}
}

// Surface returns the surface the host renders onto.
func (h *Host) Surface() *Surface {
	return h.surface
}

// Dispatch feeds one tcell event to the context. It reports false when the
// event is a quit key.
func (h *Host) Dispatch(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventKey:
		for _, k := range h.opts.QuitKeys {
			if e.Key() == k {
				return false
			}
		}
	case *tcell.EventResize:
		h.screen.Sync()
	}
	for _, in := range Translate(ev, h.surface.CellSize()) {
		h.ui.Event(in)
	}
	return true
}

// Frame runs OnFrame, renders the context and shows the result. A render
// error is reported through the error handler and the frame is not shown.
func (h *Host) Frame() {
	if h.opts.OnFrame != nil {
		h.opts.OnFrame()
	}
	h.surface.Clear(h.opts.Background)
	if err := h.ui.Render(h.surface); err != nil {
		var oe *errors.OverlayError
		if !stderrors.As(err, &oe) {
			oe = &errors.OverlayError{Op: "terminal.Host.Frame", Kind: errors.KindHost, Err: err}
		}
		errors.Report(oe)
		h.log.Debug("frame skipped", "err", err)
		return
	}
	h.screen.Show()
}

// Run renders a first frame and then processes events until ctx is done,
// a quit key is pressed or the screen is finalised. Run owns the context
// for its duration; no other goroutine may call it.
//
// One goroutine pumps screen.PollEvent. It exits once the screen is
// finalised, so callers should call Fini after Run returns.
func (h *Host) Run(ctx context.Context) error {
	events := make(chan tcell.Event)
	go func() {
		defer errors.Recover("terminal.Host.poll")
		defer close(events)
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	h.Frame()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !h.Dispatch(ev) {
				return nil
			}
		drain:
			for {
				select {
				case ev, ok := <-events:
					if !ok {
						return nil
					}
					if !h.Dispatch(ev) {
						return nil
					}
				default:
					break drain
				}
			}
			h.Frame()
		}
	}
}
