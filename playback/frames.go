package playback

// Frames replays an eager list of steps, one per tick. Index starts at 0 and
// each Tick moves it forward by one and hands the new step to the render
// callback, until the last step is shown.
type Frames[T any] struct {
	steps  []T
	index  int
	render func(index int, step T)
}

// NewFrames wraps steps. render may be nil.
func NewFrames[T any](steps []T, render func(index int, step T)) *Frames[T] {
	return &Frames[T]{steps: steps, render: render}
}

// Tick advances one step. Its signature matches TickFunc.
func (f *Frames[T]) Tick() (bool, error) {
	if f.Done() {
		return true, nil
	}
	f.index++
	if f.render != nil {
		f.render(f.index, f.steps[f.index])
	}
	return f.Done(), nil
}

// Show renders the current step without advancing; used for the first frame.
func (f *Frames[T]) Show() {
	if f.render != nil && f.index < len(f.steps) {
		f.render(f.index, f.steps[f.index])
	}
}

// Index returns the current step index.
func (f *Frames[T]) Index() int { return f.index }

// Done reports whether the last step is current. An empty list is done.
func (f *Frames[T]) Done() bool { return f.index >= len(f.steps)-1 }

// Reset rewinds to step 0.
func (f *Frames[T]) Reset() { f.index = 0 }
