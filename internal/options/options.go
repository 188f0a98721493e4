// Package options contains the program options.
package options

// Program options of the simulator.
type Program struct {
	Script string // optional file with commands to run instead of stdin

	Debug bool
	GUI   bool
	Quiet bool
}
