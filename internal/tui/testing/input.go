package testing

import (
	tea "github.com/charmbracelet/bubbletea"
)

func key(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

// KeyPress types key as runes.
func KeyPress(key string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// Named keys.
func KeyUp() tea.KeyMsg       { return key(tea.KeyUp) }
func KeyDown() tea.KeyMsg     { return key(tea.KeyDown) }
func KeyLeft() tea.KeyMsg     { return key(tea.KeyLeft) }
func KeyRight() tea.KeyMsg    { return key(tea.KeyRight) }
func KeyEnter() tea.KeyMsg    { return key(tea.KeyEnter) }
func KeyEsc() tea.KeyMsg      { return key(tea.KeyEsc) }
func KeyTab() tea.KeyMsg      { return key(tea.KeyTab) }
func KeyShiftTab() tea.KeyMsg { return key(tea.KeyShiftTab) }
func KeyCtrlC() tea.KeyMsg    { return key(tea.KeyCtrlC) }

// SortKey returns the key that sorts the company table by the given
// one-based column.
func SortKey(column int) tea.KeyMsg {
	return KeyPress(string(rune('0' + column)))
}

// WindowSize resizes the model's terminal.
func WindowSize(width, height int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: width, Height: height}
}

// InputSequence is an ordered list of messages to feed a model.
type InputSequence struct {
	inputs []tea.Msg
}

// NewInputSequence starts a sequence with inputs.
func NewInputSequence(inputs ...tea.Msg) *InputSequence {
	return &InputSequence{inputs: inputs}
}

// Add appends one message.
func (s *InputSequence) Add(input tea.Msg) *InputSequence {
	s.inputs = append(s.inputs, input)
	return s
}

// Type appends one key press per rune of text.
func (s *InputSequence) Type(text string) *InputSequence {
	for _, r := range text {
		s.inputs = append(s.inputs, KeyPress(string(r)))
	}
	return s
}

// Apply feeds every input to the model, draining the commands each one
// returns before moving on.
func (s *InputSequence) Apply(model tea.Model, renderer *TestRenderer) tea.Model {
	for _, input := range s.inputs {
		model = renderer.Drain(renderer.Send(model, input))
	}
	return model
}

// Messages returns the sequence.
func (s *InputSequence) Messages() []tea.Msg {
	return s.inputs
}
