package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/jroimartin/gocui"
)

const (
	outputView = "memory"
	inputView  = "command"
)

// GUI is a full-screen console with an autoscrolling output view and
// a single-line command input. The gocui main loop runs in its own
// goroutine; submitted lines are handed to ReadLine over a channel.
type GUI struct {
	g       *gocui.Gui
	lines   chan string
	done    chan struct{}
	loopErr error
}

// NewGUI initializes the terminal and starts the event loop.
func NewGUI() (*GUI, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("creating terminal gui: %w", err)
	}

	c := &GUI{
		g:     g,
		lines: make(chan string, 1),
		done:  make(chan struct{}),
	}

	g.Cursor = true
	g.SetManagerFunc(c.layout)

	if err := g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quit); err != nil {
		g.Close()
		return nil, fmt.Errorf("binding quit key: %w", err)
	}
	if err := g.SetKeybinding(inputView, gocui.KeyEnter, gocui.ModNone, c.submit); err != nil {
		g.Close()
		return nil, fmt.Errorf("binding enter key: %w", err)
	}

	go func() {
		if err := g.MainLoop(); err != nil && err != gocui.ErrQuit {
			c.loopErr = err
		}
		close(c.done)
	}()

	return c, nil
}

// ReadLine returns the next submitted command line. It returns io.EOF
// once the gui has been quit.
func (c *GUI) ReadLine() (string, error) {
	select {
	case line := <-c.lines:
		return line, nil
	case <-c.done:
		return "", io.EOF
	}
}

// WriteLine appends one line to the output view.
func (c *GUI) WriteLine(line string) error {
	c.g.Update(func(g *gocui.Gui) error {
		v, err := g.View(outputView)
		if err != nil {
			return err
		}
		fmt.Fprintln(v, line)
		return nil
	})
	return nil
}

// Close stops the event loop and restores the terminal.
func (c *GUI) Close() error {
	c.g.Close()
	<-c.done
	return c.loopErr
}

func (c *GUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if v, err := g.SetView(outputView, 0, 0, maxX-1, maxY-4); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Memory"
		v.Autoscroll = true
		v.Wrap = true
	}

	if v, err := g.SetView(inputView, 0, maxY-3, maxX-1, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Command"
		v.Editable = true
		if _, err := g.SetCurrentView(inputView); err != nil {
			return err
		}
	}
	return nil
}

// submit hands the typed line to ReadLine, echoes it to the output
// view and clears the input line.
func (c *GUI) submit(g *gocui.Gui, v *gocui.View) error {
	line := strings.TrimSpace(v.Buffer())
	v.Clear()
	if err := v.SetCursor(0, 0); err != nil {
		return err
	}
	if line == "" {
		return nil
	}

	if out, err := g.View(outputView); err == nil {
		fmt.Fprintf(out, "> %s\n", line)
	}

	select {
	case c.lines <- line:
	case <-c.done:
	}
	return nil
}

func quit(_ *gocui.Gui, _ *gocui.View) error {
	return gocui.ErrQuit
}
