package segment

import "gonum.org/v1/gonum/floats"

// relative margin added around the path
const boxMargin = 0.04

// BoundingBox is a square view box around a path.
type BoundingBox struct {
	XMin float64 `json:"xMin" yaml:"xMin"`
	XMax float64 `json:"xMax" yaml:"xMax"`
	YMin float64 `json:"yMin" yaml:"yMin"`
	YMax float64 `json:"yMax" yaml:"yMax"`
}

func (b *BoundingBox) Width() float64  { return b.XMax - b.XMin }
func (b *BoundingBox) Height() float64 { return b.YMax - b.YMin }

func (b *BoundingBox) Center() Point {
	return Point{X: (b.XMax + b.XMin) / 2, Y: (b.YMax + b.YMin) / 2}
}

// Bounds computes a square box centered on the midpoint of both axes.
// The side is the larger of the x and y span plus a margin of 4% of that span
// on each side. A zero span gets a fixed margin of 1.
func Bounds(points []Point) *BoundingBox {
	if len(points) == 0 {
		return nil
	}
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}
	xMin, xMax := floats.Min(xs), floats.Max(xs)
	yMin, yMax := floats.Min(ys), floats.Max(ys)

	span := max(xMax-xMin, yMax-yMin)
	pad := span * boxMargin
	if span <= 0 {
		pad = 1.0
	}
	xMid := (xMax + xMin) / 2
	yMid := (yMax + yMin) / 2
	half := span/2 + pad
	return &BoundingBox{
		XMin: xMid - half,
		XMax: xMid + half,
		YMin: yMid - half,
		YMax: yMid + half,
	}
}
