// Package shell implements the interactive command interface of the
// simulator. It parses one command per input line, invokes exactly
// one memory manager operation and renders the result as text.
// Command failures are reported and the session continues.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/retroenv/pagesim/internal/console"
	"github.com/retroenv/pagesim/internal/memory"
	"github.com/retroenv/pagesim/internal/render"
	"github.com/retroenv/retrogolib/log"
)

const helpText = `M <size> <frameSize>     create physical memory
A <bytes> <pid>          allocate memory to a process
D <pid>                  deallocate all memory of a process
P                        print the frame map
R <page> <offset> <pid>  read a bit cell
W <page> <offset> <pid>  write a 1 to a bit cell
H                        show this help
E                        exit`

// Shell drives a memory manager from a console.
type Shell struct {
	logger  *log.Logger
	manager *memory.Manager
}

// New returns a shell around a fresh memory manager.
func New(logger *log.Logger) *Shell {
	return &Shell{
		logger:  logger,
		manager: memory.NewManager(),
	}
}

// Run reads commands from the console until the input ends, the exit
// command is given or the context is cancelled.
func (s *Shell) Run(ctx context.Context, cons console.Console) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := cons.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading command: %w", err)
		}

		output, quit := s.Execute(line)
		if output != "" {
			if err := cons.WriteLine(output); err != nil {
				return fmt.Errorf("writing result: %w", err)
			}
		}
		if quit {
			return nil
		}
	}
}

// Execute runs a single command line and returns the text to display
// (empty for silent commands) and whether the session should end.
func (s *Shell) Execute(line string) (string, bool) {
	if strings.TrimSpace(line) == "" {
		return "", false
	}

	cmd, err := Parse(line)
	if err != nil {
		return err.Error(), false
	}
	s.logger.Debug("executing command", log.String("line", line))

	switch cmd.Kind {
	case KindCreate:
		return s.create(cmd), false
	case KindAllocate:
		return s.allocate(cmd), false
	case KindDeallocate:
		return s.deallocate(cmd), false
	case KindPrint:
		return s.print(), false
	case KindRead:
		return s.read(cmd), false
	case KindWrite:
		return s.write(cmd), false
	case KindHelp:
		return helpText, false
	case KindExit:
		return "", true
	default:
		return fmt.Sprintf("unknown command kind %d", cmd.Kind), false
	}
}

func (s *Shell) create(cmd Command) string {
	info, err := s.manager.CreateMemory(cmd.Size, cmd.FrameSize)
	if err != nil {
		var sizeErr *memory.InvalidSizeError
		if errors.As(err, &sizeErr) {
			return fmt.Sprintf("invalid size combination: %d bytes with frame size %d",
				sizeErr.TotalSize, sizeErr.FrameSize)
		}
		return err.Error()
	}
	return fmt.Sprintf("created %d bytes of memory in %d frames", info.TotalSize, info.FrameCount)
}

func (s *Shell) allocate(cmd Command) string {
	granted, err := s.manager.Allocate(cmd.PID, cmd.Bytes)
	if err != nil {
		var insufficient *memory.InsufficientMemoryError
		if errors.As(err, &insufficient) {
			return "not enough memory"
		}
		return err.Error()
	}
	return fmt.Sprintf("allocated %d bytes to process %d", granted, cmd.PID)
}

func (s *Shell) deallocate(cmd Command) string {
	freed, err := s.manager.Deallocate(cmd.PID)
	if err != nil {
		var unknown *memory.UnknownProcessError
		if errors.As(err, &unknown) {
			return "process doesn't exist"
		}
		return err.Error()
	}
	return fmt.Sprintf("freed %d bytes from process %d", freed, cmd.PID)
}

func (s *Shell) print() string {
	snapshot, err := s.manager.Snapshot()
	if err != nil {
		return err.Error()
	}
	return render.Memory(snapshot)
}

func (s *Shell) read(cmd Command) string {
	bit, err := s.manager.Read(cmd.PID, cmd.Page, cmd.Offset)
	if err != nil {
		return accessErrorText(err)
	}
	return strconv.Itoa(bit)
}

// write is silent on success, the effect is observable via P or R.
func (s *Shell) write(cmd Command) string {
	if err := s.manager.Write(cmd.PID, cmd.Page, cmd.Offset); err != nil {
		return accessErrorText(err)
	}
	return ""
}

func accessErrorText(err error) string {
	var (
		unknown *memory.UnknownProcessError
		page    *memory.InvalidPageError
		offset  *memory.InvalidOffsetError
	)
	switch {
	case errors.As(err, &unknown):
		return "unknown process"
	case errors.As(err, &page):
		return "invalid page"
	case errors.As(err, &offset):
		return "invalid offset"
	default:
		return err.Error()
	}
}
