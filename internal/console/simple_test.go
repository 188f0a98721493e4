package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestSimpleReadLine(t *testing.T) {
	var out bytes.Buffer
	cons := NewSimple(strings.NewReader("M 4 2\nP\n"), &out, "> ")

	line, err := cons.ReadLine()
	assert.NoError(t, err)
	assert.Equal(t, "M 4 2", line)

	line, err = cons.ReadLine()
	assert.NoError(t, err)
	assert.Equal(t, "P", line)

	_, err = cons.ReadLine()
	assert.True(t, errors.Is(err, io.EOF))

	// the prompt was printed before every read
	assert.Equal(t, "> > > ", out.String())
}

func TestSimpleNoPrompt(t *testing.T) {
	var out bytes.Buffer
	cons := NewSimple(strings.NewReader("P\n"), &out, "")

	line, err := cons.ReadLine()
	assert.NoError(t, err)
	assert.Equal(t, "P", line)
	assert.Equal(t, "", out.String())
}

func TestSimpleWriteLine(t *testing.T) {
	var out bytes.Buffer
	cons := NewSimple(strings.NewReader(""), &out, "")

	assert.NoError(t, cons.WriteLine("f1: 00"))
	assert.NoError(t, cons.WriteLine("f2: 00"))
	assert.Equal(t, "f1: 00\nf2: 00\n", out.String())

	assert.NoError(t, cons.Close())
}
