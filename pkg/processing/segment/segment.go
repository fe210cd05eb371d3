// Package segment converts a position trace plus a scalar channel into
// value tagged line segments for gradient colored paths.
package segment

import (
	"errors"

	"gonum.org/v1/gonum/floats"

	"github.com/mpapenbr/trackdelta/pkg/model"
)

// ErrLengthMismatch signals that positions and values are not parallel.
var ErrLengthMismatch = errors.New("positions and values differ in length")

type (
	Point struct {
		X float64 `json:"x" yaml:"x"`
		Y float64 `json:"y" yaml:"y"`
	}
	// Segment connects two adjacent positions.
	// Value is the channel value at the earlier endpoint.
	Segment struct {
		From  Point   `json:"from" yaml:"from"`
		To    Point   `json:"to" yaml:"to"`
		Value float64 `json:"value" yaml:"value"`
	}
	// ValueRange is the normalization range for the value to color mapping.
	ValueRange struct {
		Min float64 `json:"min" yaml:"min"`
		Max float64 `json:"max" yaml:"max"`
	}
	Path struct {
		Segments  []Segment       `json:"segments" yaml:"segments"`
		Range     *ValueRange     `json:"range" yaml:"range"` // nil if there are no segments
		Box       *BoundingBox    `json:"box" yaml:"box"`     // nil if there are no points
		Condition model.Condition `json:"condition" yaml:"condition"`
	}
)

// Build creates len(points)-1 segments, segment i is tagged with values[i].
// The value range covers the tagged values only, the last value has no outgoing
// segment and is ignored. Less than two points yield an empty path with
// ConditionInsufficientSamples.
func Build(points []Point, values []float64) (*Path, error) {
	if len(points) != len(values) {
		return nil, ErrLengthMismatch
	}
	ret := &Path{
		Segments: make([]Segment, 0, max(len(points)-1, 0)),
		Box:      Bounds(points),
	}
	if len(points) < 2 {
		ret.Condition = model.ConditionInsufficientSamples
		return ret, nil
	}
	tagged := values[:len(values)-1]
	for i := range tagged {
		ret.Segments = append(ret.Segments, Segment{
			From:  points[i],
			To:    points[i+1],
			Value: tagged[i],
		})
	}
	ret.Range = &ValueRange{Min: floats.Min(tagged), Max: floats.Max(tagged)}
	return ret, nil
}

// Points zips parallel x and y coordinates.
func Points(x, y []float64) ([]Point, error) {
	if len(x) != len(y) {
		return nil, ErrLengthMismatch
	}
	ret := make([]Point, len(x))
	for i := range x {
		ret[i] = Point{X: x[i], Y: y[i]}
	}
	return ret, nil
}
