package memory

// physical bundles the structures of one memory instance so that
// re-creating memory replaces everything at once and can never leave
// partially migrated state behind.
type physical struct {
	frames *FrameTable
	pages  *PageTable
	cells  *CellStore
}

// Manager is the only entry point that mutates frame table, page
// table and cell store together. Every operation either fully
// succeeds or leaves all state unchanged.
type Manager struct {
	mem *physical // nil until CreateMemory succeeds
}

// Info describes a created memory instance for display.
type Info struct {
	TotalSize  int
	FrameCount int
}

// FrameView is the snapshot of a single frame, with cell values
// ordered from the highest offset down to offset 0.
type FrameView struct {
	Index int
	Free  bool
	PID   int
	Page  int
	Bits  []int
}

// Snapshot is the full memory state in ascending frame order.
type Snapshot struct {
	FrameSize int
	Frames    []FrameView
}

// NewManager returns a manager without any memory created yet.
func NewManager() *Manager {
	return &Manager{}
}

// Created reports whether physical memory exists.
func (m *Manager) Created() bool {
	return m.mem != nil
}

// CreateMemory creates physical memory of totalSize cells split into
// frames of frameSize cells. Any previous instance is discarded along
// with all its allocations.
func (m *Manager) CreateMemory(totalSize, frameSize int) (Info, error) {
	frames, err := NewFrameTable(totalSize, frameSize)
	if err != nil {
		return Info{}, err
	}

	m.mem = &physical{
		frames: frames,
		pages:  NewPageTable(),
		cells:  NewCellStore(totalSize),
	}
	return Info{TotalSize: totalSize, FrameCount: frames.FrameCount()}, nil
}

// Allocate grants pid enough whole frames to hold bytes cells and
// registers them as new logical pages in frame order. It returns the
// number of bytes granted, which is the requested size unchanged.
// The requested size must be positive, a pid never exists with zero
// pages. Repeated allocations for the same pid append pages.
func (m *Manager) Allocate(pid, bytes int) (int, error) {
	if m.mem == nil {
		return 0, ErrNoMemory
	}

	frameSize := m.mem.frames.FrameSize()
	if bytes < 1 {
		return 0, &InvalidSizeError{TotalSize: bytes, FrameSize: frameSize}
	}
	framesNeeded := (bytes + frameSize - 1) / frameSize

	granted, err := m.mem.frames.Allocate(framesNeeded)
	if err != nil {
		return 0, err
	}

	page := m.mem.pages.AddPages(pid, granted)
	for _, index := range granted {
		m.mem.frames.SetOwner(index, pid, page)
		page++
	}
	return bytes, nil
}

// Deallocate frees every frame pid owns, zeroes their cells and
// removes the pid from the page table. It returns the number of bytes
// freed.
func (m *Manager) Deallocate(pid int) (int, error) {
	if m.mem == nil {
		return 0, ErrNoMemory
	}

	frames, err := m.mem.pages.RemoveAll(pid)
	if err != nil {
		return 0, err
	}

	frameSize := m.mem.frames.FrameSize()
	for _, index := range frames {
		m.mem.cells.ZeroRange((index-1)*frameSize, frameSize)
	}
	m.mem.frames.Free(frames)
	return len(frames) * frameSize, nil
}

// Read returns the bit stored at (pid, page, offset).
func (m *Manager) Read(pid, page, offset int) (int, error) {
	addr, err := m.resolve(pid, page, offset)
	if err != nil {
		return 0, err
	}
	return m.mem.cells.Read(addr), nil
}

// Write sets the bit at (pid, page, offset) to 1. Writing a cell that
// already holds 1 succeeds silently; cells only return to 0 through
// deallocation.
func (m *Manager) Write(pid, page, offset int) error {
	addr, err := m.resolve(pid, page, offset)
	if err != nil {
		return err
	}
	m.mem.cells.Set(addr)
	return nil
}

func (m *Manager) resolve(pid, page, offset int) (int, error) {
	if m.mem == nil {
		return 0, ErrNoMemory
	}

	frame, err := m.mem.pages.FrameFor(pid, page)
	if err != nil {
		return 0, err
	}

	frameSize := m.mem.frames.FrameSize()
	if offset < 0 || offset >= frameSize {
		return 0, &InvalidOffsetError{Offset: offset, FrameSize: frameSize}
	}
	return (frame-1)*frameSize + offset, nil
}

// Snapshot captures every frame in ascending order with its owner tag
// and cell values, highest offset first.
func (m *Manager) Snapshot() (Snapshot, error) {
	if m.mem == nil {
		return Snapshot{}, ErrNoMemory
	}

	frameSize := m.mem.frames.FrameSize()
	snapshot := Snapshot{
		FrameSize: frameSize,
		Frames:    make([]FrameView, 0, m.mem.frames.FrameCount()),
	}

	for index := 1; index <= m.mem.frames.FrameCount(); index++ {
		owner, occupied := m.mem.frames.Owner(index)
		view := FrameView{
			Index: index,
			Free:  !occupied,
			PID:   owner.PID,
			Page:  owner.Page,
			Bits:  make([]int, 0, frameSize),
		}
		base := (index - 1) * frameSize
		for offset := frameSize - 1; offset >= 0; offset-- {
			view.Bits = append(view.Bits, m.mem.cells.Read(base+offset))
		}
		snapshot.Frames = append(snapshot.Frames, view)
	}
	return snapshot, nil
}
