package memory

import (
	"errors"
	"fmt"
)

// ErrNoMemory is returned by all operations invoked before any
// physical memory has been created.
var ErrNoMemory = errors.New("no memory created")

// InvalidSizeError indicates an invalid total size / frame size
// combination when creating physical memory.
type InvalidSizeError struct {
	TotalSize int
	FrameSize int
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("invalid memory size %d with frame size %d", e.TotalSize, e.FrameSize)
}

// InsufficientMemoryError indicates that an allocation requested more
// frames than are currently free. No state has been mutated.
type InsufficientMemoryError struct {
	Requested int // frames requested
	Free      int // frames free
}

func (e *InsufficientMemoryError) Error() string {
	return fmt.Sprintf("requested %d frames but only %d free", e.Requested, e.Free)
}

// UnknownProcessError indicates an operation referenced a pid that
// owns no memory.
type UnknownProcessError struct {
	PID int
}

func (e *UnknownProcessError) Error() string {
	return fmt.Sprintf("process %d owns no memory", e.PID)
}

// InvalidPageError indicates a logical page index outside the range
// the pid has allocated.
type InvalidPageError struct {
	PID   int
	Page  int
	Pages int // pages the pid currently owns
}

func (e *InvalidPageError) Error() string {
	return fmt.Sprintf("page %d out of range for process %d owning %d pages", e.Page, e.PID, e.Pages)
}

// InvalidOffsetError indicates an intra-frame offset outside
// [0, frameSize).
type InvalidOffsetError struct {
	Offset    int
	FrameSize int
}

func (e *InvalidOffsetError) Error() string {
	return fmt.Sprintf("offset %d out of range for frame size %d", e.Offset, e.FrameSize)
}
