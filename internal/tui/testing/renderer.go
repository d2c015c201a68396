// Package testing drives Bubble Tea models in tests without a terminal.
package testing

import (
	tea "github.com/charmbracelet/bubbletea"
)

// maxCommandRounds bounds command chains so a self-scheduling command cannot
// hang a test.
const maxCommandRounds = 16

// TestRenderer records what a model did in response to its inputs.
type TestRenderer struct {
	// Output is the view after the most recent update.
	Output string
	// Updates counts every message delivered to the model.
	Updates int
	// Quit is set once a command returns tea.QuitMsg.
	Quit bool

	pending []tea.Cmd
}

// NewTestRenderer creates an empty renderer.
func NewTestRenderer() *TestRenderer {
	return &TestRenderer{}
}

// Send delivers msg to the model, queues any command it returns and
// re-renders.
func (r *TestRenderer) Send(model tea.Model, msg tea.Msg) tea.Model {
	r.Updates++
	next, cmd := model.Update(msg)
	if cmd != nil {
		r.pending = append(r.pending, cmd)
	}
	r.Output = next.View()
	return next
}

// Drain runs queued commands and feeds their messages back into the model
// until the queue is empty. Batches are flattened and tea.QuitMsg is recorded
// rather than delivered.
func (r *TestRenderer) Drain(model tea.Model) tea.Model {
	for round := 0; round < maxCommandRounds && len(r.pending) > 0; round++ {
		queue := r.pending
		r.pending = nil

		for _, cmd := range queue {
			if cmd == nil {
				continue
			}
			switch msg := cmd().(type) {
			case nil:
			case tea.QuitMsg:
				r.Quit = true
			case tea.BatchMsg:
				r.pending = append(r.pending, msg...)
			default:
				model = r.Send(model, msg)
			}
		}
	}
	return model
}

// Text returns the last output without ANSI styling.
func (r *TestRenderer) Text() string {
	return StripANSI(r.Output)
}
