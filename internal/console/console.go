// Package console provides the line-oriented terminals the simulator
// shell runs on: a plain reader/writer console and a full-screen
// gocui console.
package console

// Console is a line-oriented terminal for the simulator shell.
type Console interface {
	// ReadLine blocks until the next input line is available and
	// returns it without the trailing newline. It returns io.EOF when
	// no more input will arrive.
	ReadLine() (string, error)

	// WriteLine displays one line of output.
	WriteLine(line string) error

	// Close releases the terminal.
	Close() error
}
