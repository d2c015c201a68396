package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressBar(t *testing.T) {
	var buf bytes.Buffer
	bar := NewProgressBar(&buf, 2, "Exporting")

	Step(bar, "Writing rows")
	Step(bar, "Recording export")

	assert.True(t, bar.IsFinished())
	assert.Contains(t, buf.String(), "2/2")
}
