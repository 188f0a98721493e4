// Package memory implements the frame-based physical memory engine:
// frame accounting, per-process page tables, the bit cell store and
// the manager that keeps them consistent.
package memory

// Owner identifies the process page a frame currently backs.
type Owner struct {
	PID  int
	Page int // logical page index, 1-based
}

type frame struct {
	occupied bool
	owner    Owner
}

// FrameTable tracks the physical frames of a memory instance and
// selects free frames for new allocations. Frame indices are 1-based.
type FrameTable struct {
	totalSize int
	frameSize int
	frames    []frame
}

// NewFrameTable creates a frame table for a memory of totalSize cells
// split into frames of frameSize cells, all free.
func NewFrameTable(totalSize, frameSize int) (*FrameTable, error) {
	if totalSize < 1 || frameSize < 1 || totalSize%frameSize != 0 {
		return nil, &InvalidSizeError{TotalSize: totalSize, FrameSize: frameSize}
	}

	return &FrameTable{
		totalSize: totalSize,
		frameSize: frameSize,
		frames:    make([]frame, totalSize/frameSize),
	}, nil
}

// TotalSize returns the number of cells the table covers.
func (t *FrameTable) TotalSize() int {
	return t.totalSize
}

// FrameSize returns the number of cells per frame.
func (t *FrameTable) FrameSize() int {
	return t.frameSize
}

// FrameCount returns the number of frames.
func (t *FrameTable) FrameCount() int {
	return len(t.frames)
}

// FreeCount returns the number of currently free frames.
func (t *FrameTable) FreeCount() int {
	count := 0
	for _, f := range t.frames {
		if !f.occupied {
			count++
		}
	}
	return count
}

// Allocate marks the n lowest-indexed free frames as occupied and
// returns their indices in ascending order. If fewer than n frames
// are free, no frame changes state.
func (t *FrameTable) Allocate(n int) ([]int, error) {
	free := t.FreeCount()
	if free < n {
		return nil, &InsufficientMemoryError{Requested: n, Free: free}
	}

	indices := make([]int, 0, n)
	for i := range t.frames {
		if len(indices) == n {
			break
		}
		if !t.frames[i].occupied {
			t.frames[i].occupied = true
			indices = append(indices, i+1)
		}
	}
	return indices, nil
}

// SetOwner tags an occupied frame with the process page it backs.
func (t *FrameTable) SetOwner(index, pid, page int) {
	t.frames[index-1].owner = Owner{PID: pid, Page: page}
}

// Owner returns the owner tag of a frame and whether it is occupied.
func (t *FrameTable) Owner(index int) (Owner, bool) {
	f := t.frames[index-1]
	return f.owner, f.occupied
}

// Free marks the given frames free again and clears their owner tags.
func (t *FrameTable) Free(indices []int) {
	for _, index := range indices {
		t.frames[index-1] = frame{}
	}
}
