// Package channels holds the objects handed back to the application when a
// widget is added to an overlay context.
//
// A channel is the application's half of a widget. The widget keeps the other
// half (a setter or a shared [Cell]) and updates it as input arrives, so the
// application can poll results between frames without touching the widget.
// Every channel in this package is safe to use from any goroutine.
package channels
