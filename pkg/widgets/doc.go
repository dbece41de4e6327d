// Package widgets provides the concrete widget kinds that can be added to an
// overlay context.
//
// Every widget is described by a config struct. Adding the config to a layer
// consumes it into the widget kept by the context and returns the channel the
// application uses to read results:
//
//	resp, err := overlay.Add[*channels.Clickable](ctx, widgets.ButtonOf("OK", rect), layer)
//	if err != nil {
//	    return err
//	}
//	defer resp.Release()
//
// # Widget Construction
//
// Struct literals are the canonical form and expose every field:
//
//	widgets.Input{
//	    Rect:        graphics.RectFromLTWH(10, 40, 160, 18),
//	    Style:       graphics.TextStyle{Color: graphics.ColorBlack},
//	    Placeholder: "Name",
//	}
//
// XxxOf helpers fill in sensible defaults, and With* methods return modified
// copies:
//
//	widgets.ButtonOf("Save", rect).WithTint(idle, hovered)
//
// # Kinds
//
//   - [Text] and [Image] only draw.
//   - [ImageButton], [TextButton] and [Button] report clicks.
//   - [Concealer] toggles a panel layer; [ConcealerManager] keeps one of
//     several panels open.
//   - [Dropdown] selects one of a list of values.
//   - [Input] edits a line of text.
//   - [Barrier] blocks input to everything drawn before it.
package widgets
