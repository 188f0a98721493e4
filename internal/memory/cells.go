package memory

// CellStore is the bit-addressable storage backing all frames, one
// cell per absolute address. Callers are expected to pass addresses
// already validated against the frame layout.
type CellStore struct {
	cells []byte // each cell holds 0 or 1
}

// NewCellStore returns a store of size zeroed cells.
func NewCellStore(size int) *CellStore {
	return &CellStore{
		cells: make([]byte, size),
	}
}

// Read returns the bit stored at the absolute address.
func (s *CellStore) Read(addr int) int {
	return int(s.cells[addr])
}

// Set writes a 1 to the absolute address.
func (s *CellStore) Set(addr int) {
	s.cells[addr] = 1
}

// ZeroRange resets n cells starting at addr to 0.
func (s *CellStore) ZeroRange(addr, n int) {
	for i := addr; i < addr+n; i++ {
		s.cells[i] = 0
	}
}
