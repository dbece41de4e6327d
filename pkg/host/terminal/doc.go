// Package terminal hosts a widget context inside a terminal using tcell.
//
// Host coordinates stay in font units: one terminal cell covers CellSize
// units, which by default is the advance and line height of the default font.
// Widgets therefore lay out exactly as they would on a raster surface and the
// adapter maps every rectangle, text origin and pointer position through the
// cell grid.
//
// A typical program:
//
//	screen, err := tcell.NewScreen()
//	if err != nil { ... }
//	if err := screen.Init(); err != nil { ... }
//	defer screen.Fini()
//	screen.EnableMouse()
//
//	window := terminal.NewWindow(screen)
//	ui := overlay.New(overlay.Options{Window: window})
//	host := terminal.New(screen, ui, terminal.Options{})
//	err = host.Run(ctx)
package terminal
