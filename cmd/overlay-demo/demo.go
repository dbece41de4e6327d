package main

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/go-drift/overlay/pkg/channels"
	"github.com/go-drift/overlay/pkg/errors"
	"github.com/go-drift/overlay/pkg/graphics"
	"github.com/go-drift/overlay/pkg/overlay"
	"github.com/go-drift/overlay/pkg/widgets"
)

var black = graphics.TextStyle{Color: graphics.ColorBlack}

// demo owns every widget shown by the command and reacts to their channels
// once per frame.
type demo struct {
	ui   *overlay.Context
	cell graphics.Size
	log  *slog.Logger
	quit func()

	page  *overlay.LayerHandle
	scrim *overlay.SingularLayerHandle
	popup *overlay.LayerHandle

	name     *overlay.Response[*channels.Input]
	greet    *overlay.Response[*channels.Clickable]
	greeting *overlay.Response[struct{}]
	colors   *overlay.Response[*channels.Dropdown[graphics.Color]]
	swatch   *overlay.Response[struct{}]
	barrier  *overlay.Response[*channels.Clickable]
	panels   *overlay.Response[*channels.ConcealerManager]
	exit     *overlay.Response[*channels.Clickable]

	chosen int
}

func newDemo(ui *overlay.Context, cell graphics.Size, width, height float64, log *slog.Logger, quit func()) (*demo, error) {
	d := &demo{
		ui:     ui,
		cell:   cell,
		log:    log,
		quit:   quit,
		page:   ui.AddLayer(),
		scrim:  ui.AddSingularLayer(),
		popup:  ui.AddLayer(),
		chosen: -1,
	}
	d.scrim.SetActive(false)
	if err := d.build(width, height); err != nil {
		d.release()
		return nil, err
	}
	return d, nil
}

// at converts a cell position and span to host units.
func (d *demo) at(col, row, cols, rows float64) graphics.Rect {
	return graphics.RectFromLTWH(col*d.cell.Width, row*d.cell.Height, cols*d.cell.Width, rows*d.cell.Height)
}

func (d *demo) origin(col, row float64) graphics.Offset {
	return graphics.Offset{X: col * d.cell.Width, Y: row * d.cell.Height}
}

func solid(c graphics.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, c)
	return img
}

func (d *demo) build(width, height float64) error {
	var err error
	title := widgets.TextOf("overlay demo: click, type, pick a colour", d.origin(1, 0))
	if _, err = overlay.Add[struct{}](d.ui, title, d.page); err != nil {
		return err
	}

	name := widgets.InputOf(d.at(1, 2, 24, 3), "your name")
	if d.name, err = overlay.Add[*channels.Input](d.ui, name, d.page); err != nil {
		return err
	}
	if d.greet, err = overlay.Add[*channels.Clickable](d.ui, widgets.ButtonOf("Greet", d.at(26, 2, 9, 3)), d.page); err != nil {
		return err
	}
	if err = d.setGreeting("nobody greeted yet"); err != nil {
		return err
	}

	colors := widgets.Dropdown[graphics.Color]{
		Options: []widgets.DropdownOption[graphics.Color]{
			{Value: graphics.RGB(200, 40, 40), Label: "red", Style: black},
			{Value: graphics.RGB(40, 160, 40), Label: "green", Style: black},
			{Value: graphics.RGB(40, 40, 200), Label: "blue", Style: black},
		},
		Rect:           d.at(1, 8, 14, 1),
		OptionHeight:   d.cell.Height,
		OpenButtonSize: graphics.Size{Width: 2 * d.cell.Width, Height: d.cell.Height},
		Selected:       -1,
		DividerColor:   graphics.RGB(120, 120, 120),
	}
	if d.colors, err = overlay.Add[*channels.Dropdown[graphics.Color]](d.ui, colors, d.popup); err != nil {
		return err
	}

	barrier := widgets.BarrierOf(graphics.RectFromLTWH(0, 0, width, height))
	if d.barrier, err = overlay.Add[*channels.Clickable](d.ui, barrier, d.scrim); err != nil {
		return err
	}

	panels := widgets.ConcealerManager{Panels: []widgets.Concealer{
		{Header: widgets.ButtonOf("Help", d.at(1, 14, 8, 2))},
		{Header: widgets.ButtonOf("About", d.at(10, 14, 8, 2))},
	}}
	if d.panels, err = overlay.Add[*channels.ConcealerManager](d.ui, panels, d.page); err != nil {
		return err
	}
	contents := []string{
		"click a widget to focus it; keys go to the focused widget",
		"widgets live in layers and are drawn in insertion order",
	}
	for i, text := range contents {
		line := widgets.TextOf(text, d.origin(1, 17))
		if _, err = overlay.Add[struct{}](d.ui, line, d.panels.Channel.Layer(i)); err != nil {
			return err
		}
	}

	d.exit, err = overlay.Add[*channels.Clickable](d.ui, widgets.ButtonOf("Quit", d.at(1, 20, 8, 2)), d.page)
	return err
}

func (d *demo) setGreeting(text string) error {
	if d.greeting != nil {
		d.greeting.Release()
	}
	var err error
	d.greeting, err = overlay.Add[struct{}](d.ui, widgets.TextOf(text, d.origin(1, 6)), d.page)
	return err
}

func (d *demo) setSwatch(c graphics.Color) error {
	if d.swatch != nil {
		d.swatch.Release()
	}
	var err error
	d.swatch, err = overlay.Add[struct{}](d.ui, widgets.Image{Src: solid(c), Rect: d.at(18, 8, 4, 1)}, d.page)
	return err
}

// poll reacts to channel signals. It runs once per frame on the UI goroutine.
func (d *demo) poll() {
	if d.exit.Channel.HasClicked() {
		d.quit()
	}
	if d.greet.Channel.HasClicked() {
		name := d.name.Channel.Get()
		if name == "" {
			name = "stranger"
		}
		d.report("greet", d.setGreeting(fmt.Sprintf("hello, %s", name)))
	}

	open := d.colors.Channel.IsOpen()
	d.scrim.SetActive(open)
	if d.barrier.Channel.HasClicked() {
		d.colors.Channel.Close()
	}
	if i, ok := d.colors.Channel.Selected(); ok && i != d.chosen {
		d.chosen = i
		c, _ := d.colors.Channel.Value()
		d.report("swatch", d.setSwatch(c))
	}

	for i := 0; i < d.panels.Channel.Len(); i++ {
		if d.panels.Channel.Panel(i).HasClicked() {
			active, _ := d.panels.Channel.Active()
			d.log.Debug("panel toggled", slog.Int("panel", i), slog.Int("active", active))
		}
	}
}

func (d *demo) report(op string, err error) {
	if err == nil {
		return
	}
	errors.Report(&errors.OverlayError{Op: "overlay-demo." + op, Kind: errors.KindUnknown, Err: err})
}

func (d *demo) release() {
	for _, r := range []interface{ Release() }{d.name, d.greet, d.greeting, d.colors, d.swatch, d.barrier, d.panels, d.exit} {
		r.Release()
	}
	d.popup.Release()
	d.scrim.Release()
	d.page.Release()
}
