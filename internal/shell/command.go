package shell

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind enumerates the closed set of simulator commands.
type Kind int

const (
	KindCreate     Kind = iota // M <size> <frameSize>
	KindAllocate               // A <bytes> <pid>
	KindDeallocate             // D <pid>
	KindPrint                  // P
	KindRead                   // R <page> <offset> <pid>
	KindWrite                  // W <page> <offset> <pid>
	KindHelp                   // H
	KindExit                   // E
)

// Command is one parsed simulator command with its typed arguments.
// Only the fields of the parsed kind are set.
type Command struct {
	Kind Kind

	Size      int
	FrameSize int
	Bytes     int
	PID       int
	Page      int
	Offset    int
}

// Parse turns one input line into a command. The command letter is
// case insensitive; arguments are validated before they reach the
// memory manager.
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("empty command")
	}

	args := fields[1:]
	switch strings.ToUpper(fields[0]) {
	case "M":
		return parseCreate(args)
	case "A":
		return parseAllocate(args)
	case "D":
		return parseDeallocate(args)
	case "P":
		return parseBare(KindPrint, "P", args)
	case "R":
		return parseAccess(KindRead, "R", args)
	case "W":
		return parseAccess(KindWrite, "W", args)
	case "H":
		return parseBare(KindHelp, "H", args)
	case "E":
		return parseBare(KindExit, "E", args)
	default:
		return Command{}, fmt.Errorf("unknown command %q", fields[0])
	}
}

func parseCreate(args []string) (Command, error) {
	if len(args) != 2 {
		return Command{}, fmt.Errorf("usage: M <size> <frameSize>")
	}

	size, err := parseInt("size", args[0])
	if err != nil {
		return Command{}, err
	}
	frameSize, err := parseInt("frameSize", args[1])
	if err != nil {
		return Command{}, err
	}
	return Command{Kind: KindCreate, Size: size, FrameSize: frameSize}, nil
}

func parseAllocate(args []string) (Command, error) {
	if len(args) != 2 {
		return Command{}, fmt.Errorf("usage: A <bytes> <pid>")
	}

	bytes, err := parseInt("bytes", args[0])
	if err != nil {
		return Command{}, err
	}
	if bytes < 1 {
		return Command{}, fmt.Errorf("bytes must be positive, got %d", bytes)
	}
	pid, err := parseInt("pid", args[1])
	if err != nil {
		return Command{}, err
	}
	return Command{Kind: KindAllocate, Bytes: bytes, PID: pid}, nil
}

func parseDeallocate(args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, fmt.Errorf("usage: D <pid>")
	}

	pid, err := parseInt("pid", args[0])
	if err != nil {
		return Command{}, err
	}
	return Command{Kind: KindDeallocate, PID: pid}, nil
}

func parseAccess(kind Kind, name string, args []string) (Command, error) {
	if len(args) != 3 {
		return Command{}, fmt.Errorf("usage: %s <page> <offset> <pid>", name)
	}

	page, err := parseInt("page", args[0])
	if err != nil {
		return Command{}, err
	}
	offset, err := parseInt("offset", args[1])
	if err != nil {
		return Command{}, err
	}
	pid, err := parseInt("pid", args[2])
	if err != nil {
		return Command{}, err
	}
	return Command{Kind: kind, Page: page, Offset: offset, PID: pid}, nil
}

func parseBare(kind Kind, name string, args []string) (Command, error) {
	if len(args) != 0 {
		return Command{}, fmt.Errorf("usage: %s", name)
	}
	return Command{Kind: kind}, nil
}

func parseInt(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, value)
	}
	return n, nil
}
