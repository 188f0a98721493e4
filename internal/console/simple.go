package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Simple is a console over a plain reader/writer pair, used for the
// standard terminal and for script input.
type Simple struct {
	scanner *bufio.Scanner
	out     io.Writer
	prompt  string
	closer  io.Closer
}

// NewSimple returns a console reading lines from in and writing to
// out. A non-empty prompt is printed before every read.
func NewSimple(in io.Reader, out io.Writer, prompt string) *Simple {
	return &Simple{
		scanner: bufio.NewScanner(in),
		out:     out,
		prompt:  prompt,
	}
}

// NewScript returns a promptless console reading commands from a
// script file and writing to out. Close closes the file.
func NewScript(file *os.File, out io.Writer) *Simple {
	c := NewSimple(file, out, "")
	c.closer = file
	return c
}

// ReadLine returns the next input line, printing the prompt first.
func (c *Simple) ReadLine() (string, error) {
	if c.prompt != "" {
		if _, err := fmt.Fprint(c.out, c.prompt); err != nil {
			return "", fmt.Errorf("writing prompt: %w", err)
		}
	}

	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", io.EOF
	}
	return c.scanner.Text(), nil
}

// WriteLine prints one output line.
func (c *Simple) WriteLine(line string) error {
	if _, err := fmt.Fprintln(c.out, line); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// Close releases the script file if one is attached.
func (c *Simple) Close() error {
	if c.closer != nil {
		return c.closer.Close()
	}
	return nil
}
