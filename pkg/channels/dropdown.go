package channels

import "slices"

// Dropdown is the channel of a selection list over values of type T.
type Dropdown[T any] struct {
	values   []T
	open     *Cell[bool]
	selected *Cell[int]
}

// NewDropdown shares open and selected with the widget. selected holds an
// index into values or a negative number for no selection.
func NewDropdown[T any](values []T, open *Cell[bool], selected *Cell[int]) *Dropdown[T] {
	return &Dropdown[T]{values: values, open: open, selected: selected}
}

// Values returns a copy of the selectable values in display order.
func (d *Dropdown[T]) Values() []T {
	return slices.Clone(d.values)
}

// Selected returns the index of the selected value.
func (d *Dropdown[T]) Selected() (int, bool) {
	i := d.selected.Get()
	if i < 0 || i >= len(d.values) {
		return 0, false
	}
	return i, true
}

// Value returns the selected value.
func (d *Dropdown[T]) Value() (T, bool) {
	i, ok := d.Selected()
	if !ok {
		var zero T
		return zero, false
	}
	return d.values[i], true
}

// Select makes the i'th value the selection. It reports false and changes
// nothing when i is out of range.
func (d *Dropdown[T]) Select(i int) bool {
	if i < 0 || i >= len(d.values) {
		return false
	}
	d.selected.Set(i)
	return true
}

// ClearSelection removes the selection.
func (d *Dropdown[T]) ClearSelection() {
	d.selected.Set(-1)
}

// IsOpen reports whether the option list is shown.
func (d *Dropdown[T]) IsOpen() bool {
	return d.open.Get()
}

// Close hides the option list.
func (d *Dropdown[T]) Close() {
	d.open.Set(false)
}
