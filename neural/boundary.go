package neural

import "fmt"

// Connection is one weighted link in the network diagram.
// Layer 0 links input From to hidden To; layer 1 links hidden From to the
// single output (To is always 0).
type Connection struct {
	Layer  int
	From   int
	To     int
	Weight float64
}

// Connections lists every weight of n in drawing order: input→hidden grouped
// by input, then hidden→output. A renderer maps sign to color and magnitude
// to opacity or thickness.
//
// Errors: ErrDimensionMismatch.
func Connections(n Network) ([]Connection, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}

	H := len(n.Hidden)
	out := make([]Connection, 0, Inputs*H+H)
	for i := 0; i < Inputs; i++ {
		for j := 0; j < H; j++ {
			out = append(out, Connection{Layer: 0, From: i, To: j, Weight: n.Hidden[j].Weights[i]})
		}
	}
	for j := 0; j < H; j++ {
		out = append(out, Connection{Layer: 1, From: j, To: 0, Weight: n.Output.Weights[j]})
	}
	return out, nil
}

// Boundary samples the network output over the normalized plane on a
// rows×cols grid. Cell (r, c) holds the output at its top-left corner:
//
//	x = c/cols·2 - 1     (left → right)
//	y = 1 - r/rows·2     (top → bottom)
//
// Values near 1 belong to class 1, near 0 to class 0.
//
// Errors: ErrBadGrid, ErrDimensionMismatch.
func Boundary(n Network, cols, rows int) ([][]float64, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadGrid, cols, rows)
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}

	grid := make([][]float64, rows)
	var x, y float64
	for r := 0; r < rows; r++ {
		grid[r] = make([]float64, cols)
		y = 1 - float64(r)/float64(rows)*2
		for c := 0; c < cols; c++ {
			x = float64(c)/float64(cols)*2 - 1
			grid[r][c] = forward(n, x, y).Output
		}
	}
	return grid, nil
}

// Cell maps a normalized point to its grid cell for a rows×cols grid,
// clamping to the edges. It is the inverse used to overlay points on Boundary.
func Cell(p Point, cols, rows int) (r, c int) {
	c = int((p.X + 1) / 2 * float64(cols))
	r = int((1 - p.Y) / 2 * float64(rows))
	if c >= cols {
		c = cols - 1
	}
	if r >= rows {
		r = rows - 1
	}
	if c < 0 {
		c = 0
	}
	if r < 0 {
		r = 0
	}
	return r, c
}
