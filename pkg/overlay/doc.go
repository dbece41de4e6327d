// Package overlay provides the retained widget context: a registry of layers
// and widgets, per-frame input dispatch and deterministic draw ordering.
//
// # Layers and Handles
//
// Widgets live in layers. A layer is created with [Context.AddLayer] or
// [Context.AddSingularLayer] and lives until every handle to it has been
// released:
//
//	hud := ctx.AddLayer()
//	defer hud.Release()
//
// Releasing a handle never removes anything immediately. It posts a message
// that the context applies at the start of the next [Context.Event],
// [Context.Render] or [Add] call, so a pass in progress always sees a stable
// set of widgets. Removing a layer removes every widget inside it.
//
// # Adding Widgets
//
// A widget is created from a declarative config. The config is consumed into
// the widget, which the context keeps, and a channel, which the caller keeps:
//
//	resp, err := overlay.Add(ctx, widgets.ButtonOf("Save", rect), hud)
//	if err != nil {
//	    return err
//	}
//	defer resp.Release()
//
//	// later, once per frame
//	if resp.Channel.HasClicked() {
//	    // ...
//	}
//
// # Frame Loop
//
// The host feeds events and renders once per frame:
//
//	for _, ev := range host.Poll() {
//	    ctx.Event(ev)
//	}
//	if err := ctx.Render(surface); err != nil {
//	    // skip the frame, log, or abort
//	}
//
// A Context must be driven from a single goroutine. Handles and channels may
// be released or polled from any goroutine.
package overlay
