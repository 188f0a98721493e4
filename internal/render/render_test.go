package render

import (
	"testing"

	"github.com/retroenv/pagesim/internal/memory"
	"github.com/retroenv/retrogolib/assert"
)

func TestFrame(t *testing.T) {
	tests := []struct {
		name string
		view memory.FrameView
		want string
	}{
		{
			name: "free frame",
			view: memory.FrameView{Index: 2, Free: true, Bits: []int{0, 0}},
			want: "f2: 00",
		},
		{
			name: "owned frame",
			view: memory.FrameView{Index: 1, PID: 9001, Page: 1, Bits: []int{1, 0}},
			want: "f1->p1 (proc9001): 10",
		},
		{
			name: "later page of a process",
			view: memory.FrameView{Index: 7, PID: 42, Page: 3, Bits: []int{0, 1, 1, 0}},
			want: "f7->p3 (proc42): 0110",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Frame(tt.view))
		})
	}
}

// TestMemoryRoundTrip renders a live snapshot and checks every bit
// against what reads at the matching offsets return.
func TestMemoryRoundTrip(t *testing.T) {
	manager := memory.NewManager()
	_, err := manager.CreateMemory(4, 2)
	assert.NoError(t, err)
	_, err = manager.Allocate(9001, 2)
	assert.NoError(t, err)
	assert.NoError(t, manager.Write(9001, 1, 1))

	snapshot, err := manager.Snapshot()
	assert.NoError(t, err)
	assert.Equal(t, "f1->p1 (proc9001): 10\nf2: 00", Memory(snapshot))

	// rendered bits appear highest offset first
	for _, view := range snapshot.Frames {
		if view.Free {
			continue
		}
		for i, bit := range view.Bits {
			offset := snapshot.FrameSize - 1 - i
			read, err := manager.Read(view.PID, view.Page, offset)
			assert.NoError(t, err)
			assert.Equal(t, bit, read)
		}
	}
}
