// Package testing provides a test harness for overlay contexts.
//
// # Quick Start
//
// Create a tester, add widgets to its layer, pump a frame and make
// assertions against what was drawn:
//
//	func TestSave(t *testing.T) {
//	    tester := overlaytest.NewTesterWithT(t, overlay.Options{})
//	    resp, _ := overlay.Add[*channels.Clickable](tester.Context(),
//	        widgets.ButtonOf("Save", rect), tester.Layer())
//	    tester.Pump()
//
//	    tester.Tap(overlaytest.ByText("Save"))
//	    if !resp.Channel.HasClicked() {
//	        t.Error("expected a click")
//	    }
//	}
//
// # Snapshot Testing
//
// Capture the context's layers and the last frame's drawing operations and
// compare them with a golden file:
//
//	tester.CaptureSnapshot().MatchesFile(t, "testdata/settings.snapshot.yaml")
//
// Update snapshots with:
//
//	OVERLAY_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import overlaytest "github.com/go-drift/overlay/pkg/testing"
package testing
