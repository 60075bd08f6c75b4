package sorting

// Cursor is a playback position over a trace. The zero value points at the
// first step of an empty trace.
type Cursor struct {
	Index int
	trace Trace
}

// NewCursor starts playback at step 0.
func NewCursor(t Trace) Cursor {
	return Cursor{trace: t}
}

// Next advances one step. It returns false, with c unchanged, once the last
// step has been reached.
func Next(c Cursor) (Cursor, bool) {
	if Done(c) {
		return c, false
	}
	c.Index++
	return c, true
}

// Current returns the snapshot at the cursor, or nil for an empty trace.
func Current(c Cursor) []int {
	if c.Index >= len(c.trace.Steps) {
		return nil
	}
	return c.trace.Steps[c.Index]
}

// Done reports whether the cursor sits on the last step.
func Done(c Cursor) bool {
	return c.Index >= len(c.trace.Steps)-1
}

// Len returns the number of steps in the underlying trace.
func (c Cursor) Len() int { return len(c.trace.Steps) }

// Changed returns the indices where cur differs from prev, in ascending
// order. Indices present in only one slice count as changed.
func Changed(prev, cur []int) []int {
	n := len(prev)
	if len(cur) > n {
		n = len(cur)
	}
	var out []int
	for i := 0; i < n; i++ {
		if i >= len(prev) || i >= len(cur) || prev[i] != cur[i] {
			out = append(out, i)
		}
	}
	return out
}
