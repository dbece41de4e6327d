package testing

import (
	"fmt"
	"strings"

	"github.com/go-drift/overlay/pkg/graphics"
)

// Finder locates drawing operations in a frame.
type Finder interface {
	// Evaluate returns all matching operations in submission order.
	Evaluate(ops []graphics.Op) []graphics.Op
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	ops    []graphics.Op
	finder Finder
}

func (r FinderResult) describe() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() graphics.Op {
	if len(r.ops) == 0 {
		panic(fmt.Sprintf("Finder found no operations: %s", r.describe()))
	}
	return r.ops[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) graphics.Op {
	if index < 0 || index >= len(r.ops) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.ops), r.describe()))
	}
	return r.ops[index]
}

// All returns all matches in submission order.
func (r FinderResult) All() []graphics.Op {
	return r.ops
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.ops)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.ops) > 0
}

// Texts returns the text of every matched text operation.
func (r FinderResult) Texts() []string {
	var out []string
	for _, op := range r.ops {
		if op.Kind == graphics.OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

type predicateFinder struct {
	match func(graphics.Op) bool
	desc  string
}

func (f *predicateFinder) Evaluate(ops []graphics.Op) []graphics.Op {
	var out []graphics.Op
	for _, op := range ops {
		if f.match(op) {
			out = append(out, op)
		}
	}
	return out
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByText finds text operations drawing exactly text.
func ByText(text string) Finder {
	return &predicateFinder{
		match: func(op graphics.Op) bool { return op.Kind == graphics.OpText && op.Text == text },
		desc:  fmt.Sprintf("ByText(%q)", text),
	}
}

// ByTextContaining finds text operations whose text contains substring.
func ByTextContaining(substring string) Finder {
	return &predicateFinder{
		match: func(op graphics.Op) bool {
			return op.Kind == graphics.OpText && strings.Contains(op.Text, substring)
		},
		desc: fmt.Sprintf("ByTextContaining(%q)", substring),
	}
}

// ByKind finds operations of the given kind.
func ByKind(kind graphics.OpKind) Finder {
	return &predicateFinder{
		match: func(op graphics.Op) bool { return op.Kind == kind },
		desc:  fmt.Sprintf("ByKind(%s)", kind),
	}
}

// ByColor finds operations drawn in c, including tinted images.
func ByColor(c graphics.Color) Finder {
	return &predicateFinder{
		match: func(op graphics.Op) bool { return op.Kind != graphics.OpImage && op.Color == c },
		desc:  fmt.Sprintf("ByColor(%#08x)", uint32(c)),
	}
}

// ByDrawOrder finds operations submitted with draw order z.
func ByDrawOrder(z int) Finder {
	return &predicateFinder{
		match: func(op graphics.Op) bool { return op.Z == z },
		desc:  fmt.Sprintf("ByDrawOrder(%d)", z),
	}
}

// ByPredicate finds operations for which fn returns true.
func ByPredicate(fn func(graphics.Op) bool) Finder {
	return &predicateFinder{match: fn, desc: "ByPredicate"}
}

type andFinder struct {
	finders []Finder
}

func (f *andFinder) Evaluate(ops []graphics.Op) []graphics.Op {
	for _, inner := range f.finders {
		ops = inner.Evaluate(ops)
	}
	return ops
}

func (f *andFinder) Description() string {
	parts := make([]string, len(f.finders))
	for i, inner := range f.finders {
		parts[i] = inner.Description()
	}
	return "All(" + strings.Join(parts, ", ") + ")"
}

// All finds operations matched by every finder.
func All(finders ...Finder) Finder {
	return &andFinder{finders: finders}
}
