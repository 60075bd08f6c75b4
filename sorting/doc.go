// Package sorting provides eager step generators for bubble sort and merge
// sort. Each generator copies its input, sorts the copy and returns a Trace:
// the full list of array snapshots plus comparison and swap counts, ready for
// a playback driver to replay one step per tick.
//
// Snapshot policy:
//
//	Bubble  - one step per swap (PerMutation) or per comparison (PerComparison).
//	Merge   - one step per write into the array, including tail copies.
//
// Merge sort therefore yields many more steps than bubble sort on the same
// input, because every element placement is drawn.
//
// Bounds: inputs longer than MaxLen are rejected with ErrTooLarge. Trace size
// is O(n·steps), at most O(n³) for bubble sort.
//
// Playback:
//
//	tr, _ := sorting.Merge(values)
//	c := sorting.NewCursor(tr)
//	for ok := true; ok; c, ok = sorting.Next(c) {
//	    draw(sorting.Current(c))
//	}
//
// Changed(prev, cur) reports which bars moved between two steps.
package sorting
