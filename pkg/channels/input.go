package channels

// Input is the channel of a text field.
type Input struct {
	text *Cell[string]
}

// NewInput shares text with the field.
func NewInput(text *Cell[string]) *Input {
	return &Input{text: text}
}

// Get returns the field's current text.
func (i *Input) Get() string {
	return i.text.Get()
}

// Set replaces the field's text. The field keeps its caret within the new
// text.
func (i *Input) Set(s string) {
	i.text.Set(s)
}
