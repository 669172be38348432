package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsole_PlainOutputWhenNotATerminal(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Prompt()
	c.Fact("Tyrannosaurus means tyrant lizard.")
	c.Exiting()

	out := buf.String()
	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, "Push the white button to activate the T. Rex.")
	assert.Contains(t, out, "Push the red button or press Ctrl-C to stop the program.")
	assert.Contains(t, out, "DINOSAUR FUN FACT:\nTyrannosaurus means tyrant lizard.\n")
	assert.Contains(t, out, "Exiting program.")
}

func TestConsole_HeaderAndFailure(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Header()
	c.Failure("Files/t_rex.log")

	out := buf.String()
	assert.Contains(t, out, banner[0])
	assert.Contains(t, out, `|__   _| |_| |   | || |_| |`)
	assert.Len(t, banner, 8)
	assert.Contains(t, out, "Could not run the program. Check the log (Files/t_rex.log) for more information.")
}
