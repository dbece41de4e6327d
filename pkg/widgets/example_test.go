package widgets_test

import (
	"fmt"

	"github.com/go-drift/overlay/pkg/channels"
	"github.com/go-drift/overlay/pkg/graphics"
	"github.com/go-drift/overlay/pkg/input"
	"github.com/go-drift/overlay/pkg/overlay"
	"github.com/go-drift/overlay/pkg/widgets"
)

func click(ctx *overlay.Context, p graphics.Offset) {
	ctx.Event(input.PointerMoved{Position: p})
	ctx.Event(input.PointerButton{Button: input.MouseLeft, Pressed: true})
	ctx.Event(input.PointerButton{Button: input.MouseLeft, Pressed: false})
}

// This example shows how a button reports clicks through its channel.
func ExampleButton() {
	ctx := overlay.New(overlay.Options{})
	layer := ctx.AddLayer()

	resp, err := overlay.Add[*channels.Clickable](ctx, widgets.ButtonOf("Save", graphics.RectFromLTWH(0, 0, 60, 20)), layer)
	if err != nil {
		fmt.Println(err)
		return
	}
	click(ctx, graphics.Offset{X: 10, Y: 10})
	fmt.Println(resp.Channel.HasClicked())
	fmt.Println(resp.Channel.HasClicked())
	// Output:
	// true
	// false
}

// This example shows how to put widgets inside a concealer's panel.
func ExampleConcealer() {
	ctx := overlay.New(overlay.Options{})
	layer := ctx.AddLayer()

	header := widgets.ButtonOf("More", graphics.RectFromLTWH(0, 0, 60, 20))
	resp, err := overlay.Add[*channels.Concealer](ctx, widgets.Concealer{Header: header}, layer)
	if err != nil {
		fmt.Println(err)
		return
	}
	inside := widgets.TextOf("hidden until opened", graphics.Offset{X: 0, Y: 30})
	if _, err := overlay.Add[struct{}](ctx, inside, resp.Channel.Layer()); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(resp.Channel.IsOpen())
	click(ctx, graphics.Offset{X: 10, Y: 10})
	fmt.Println(resp.Channel.IsOpen())
	// Output:
	// false
	// true
}

// This example shows how to read the selected value of a dropdown.
func ExampleDropdown() {
	ctx := overlay.New(overlay.Options{})
	layer := ctx.AddLayer()

	black := graphics.TextStyle{Color: graphics.ColorBlack}
	resp, err := overlay.Add[*channels.Dropdown[string]](ctx, widgets.Dropdown[string]{
		Options: []widgets.DropdownOption[string]{
			{Value: "en", Label: "English", Style: black},
			{Value: "nl", Label: "Nederlands", Style: black},
		},
		Rect:         graphics.RectFromLTWH(0, 0, 100, 20),
		OptionHeight: 20,
	}, layer)
	if err != nil {
		fmt.Println(err)
		return
	}

	v, _ := resp.Channel.Value()
	fmt.Println(v)
	click(ctx, graphics.Offset{X: 10, Y: 10})
	click(ctx, graphics.Offset{X: 10, Y: 50})
	v, _ = resp.Channel.Value()
	fmt.Println(v, resp.Channel.IsOpen())
	// Output:
	// en
	// nl false
}
