package raycast

import "math"

// DepthBuffer holds the nearest wall distance for each screen column.
type DepthBuffer []float64

func NewDepthBuffer(width int) DepthBuffer {
	d := make(DepthBuffer, width)
	d.Reset()
	return d
}

func (d DepthBuffer) Reset() {
	for i := range d {
		d[i] = math.Inf(1)
	}
}
