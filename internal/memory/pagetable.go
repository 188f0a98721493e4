package memory

// PageTable maps each process to its ordered list of logical pages.
// Logical pages are 1-based and contiguous; entry i of a process's
// frame list backs logical page i+1. A pid without pages has no entry,
// which is exactly the unknown-process condition.
type PageTable struct {
	pages map[int][]int // pid -> frame index per logical page
}

// NewPageTable returns an empty page table.
func NewPageTable() *PageTable {
	return &PageTable{
		pages: make(map[int][]int),
	}
}

// AddPages appends new logical pages for pid, one per frame, in the
// given order. Pages are numbered starting at 1 for a new pid and
// continue after the highest existing page otherwise. It returns the
// logical page number assigned to the first frame.
func (t *PageTable) AddPages(pid int, frames []int) int {
	firstPage := len(t.pages[pid]) + 1
	t.pages[pid] = append(t.pages[pid], frames...)
	return firstPage
}

// FramesFor returns the frames owned by pid in logical page order.
func (t *PageTable) FramesFor(pid int) ([]int, error) {
	frames, ok := t.pages[pid]
	if !ok {
		return nil, &UnknownProcessError{PID: pid}
	}
	return frames, nil
}

// FrameFor resolves one logical page of pid to its frame index.
func (t *PageTable) FrameFor(pid, page int) (int, error) {
	frames, ok := t.pages[pid]
	if !ok {
		return 0, &UnknownProcessError{PID: pid}
	}
	if page < 1 || page > len(frames) {
		return 0, &InvalidPageError{PID: pid, Page: page, Pages: len(frames)}
	}
	return frames[page-1], nil
}

// RemoveAll removes every page entry for pid and returns the frames
// that backed them.
func (t *PageTable) RemoveAll(pid int) ([]int, error) {
	frames, ok := t.pages[pid]
	if !ok {
		return nil, &UnknownProcessError{PID: pid}
	}
	delete(t.pages, pid)
	return frames, nil
}
