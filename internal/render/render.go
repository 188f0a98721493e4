// Package render formats memory snapshots for display.
package render

import (
	"fmt"
	"strings"

	"github.com/retroenv/pagesim/internal/memory"
)

// Frame formats a single frame view as one line. Free frames render
// as "f<index>: <bits>", owned frames as
// "f<index>->p<page> (proc<pid>): <bits>".
func Frame(view memory.FrameView) string {
	bits := make([]byte, len(view.Bits))
	for i, bit := range view.Bits {
		bits[i] = '0' + byte(bit)
	}

	if view.Free {
		return fmt.Sprintf("f%d: %s", view.Index, bits)
	}
	return fmt.Sprintf("f%d->p%d (proc%d): %s", view.Index, view.Page, view.PID, bits)
}

// Memory formats a full snapshot as a line-per-frame block in
// ascending frame order.
func Memory(snapshot memory.Snapshot) string {
	lines := make([]string, 0, len(snapshot.Frames))
	for _, view := range snapshot.Frames {
		lines = append(lines, Frame(view))
	}
	return strings.Join(lines, "\n")
}
