//nolint:whitespace,funlen // ok for tests
package segment

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/trackdelta/pkg/model"
)

func samplePoints(n int) []Point {
	ret := make([]Point, n)
	for i := range ret {
		ret[i] = Point{X: float64(i * 10), Y: float64(i * i)}
	}
	return ret
}

func TestBuild_SegmentCount(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5, 100} {
		values := make([]float64, n)
		p, err := Build(samplePoints(n), values)
		require.NoError(t, err)
		assert.Len(t, p.Segments, max(n-1, 0), "n=%d", n)
	}
}

func TestBuild_ValueAlignment(t *testing.T) {
	points := samplePoints(5)
	gears := []float64{3, 4, 5, 6, 8}
	p, err := Build(points, gears)
	require.NoError(t, err)

	want := []Segment{
		{From: points[0], To: points[1], Value: 3},
		{From: points[1], To: points[2], Value: 4},
		{From: points[2], To: points[3], Value: 5},
		{From: points[3], To: points[4], Value: 6},
	}
	if diff := cmp.Diff(want, p.Segments); diff != "" {
		t.Errorf("Segments mismatch (-want +got):\n%s", diff)
	}
	// last value (8) has no outgoing segment and must not affect the range
	assert.Equal(t, &ValueRange{Min: 3, Max: 6}, p.Range)
	assert.Equal(t, model.ConditionOK, p.Condition)
}

func TestBuild_Degenerate(t *testing.T) {
	p, err := Build([]Point{{X: 1, Y: 2}}, []float64{4})
	require.NoError(t, err)
	assert.Empty(t, p.Segments)
	assert.Nil(t, p.Range)
	assert.Equal(t, model.ConditionInsufficientSamples, p.Condition)
	require.NotNil(t, p.Box)
	assert.Equal(t, Point{X: 1, Y: 2}, p.Box.Center())

	p, err = Build(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, p.Segments)
	assert.Nil(t, p.Box)
	assert.Equal(t, model.ConditionInsufficientSamples, p.Condition)
}

func TestBuild_LengthMismatch(t *testing.T) {
	_, err := Build(samplePoints(3), []float64{1, 2})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		want   *BoundingBox
	}{
		{
			name:   "wider than high",
			points: []Point{{X: 0, Y: 0}, {X: 100, Y: 20}, {X: 50, Y: 40}},
			// span 100, pad 4, center (50,20)
			want: &BoundingBox{XMin: -4, XMax: 104, YMin: -34, YMax: 74},
		},
		{
			name:   "higher than wide",
			points: []Point{{X: 10, Y: -100}, {X: 30, Y: 100}},
			// span 200, pad 8, center (20,0)
			want: &BoundingBox{XMin: -88, XMax: 128, YMin: -108, YMax: 108},
		},
		{
			name:   "single point",
			points: []Point{{X: 5, Y: 5}},
			want:   &BoundingBox{XMin: 4, XMax: 6, YMin: 4, YMax: 6},
		},
		{
			name:   "no points",
			points: nil,
			want:   nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bounds(tt.points)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBounds_Symmetry(t *testing.T) {
	points := []Point{{X: -3.5, Y: 12}, {X: 250, Y: 80}, {X: 17, Y: -44}, {X: 90, Y: 0}}
	b := Bounds(points)
	require.NotNil(t, b)
	assert.InDelta(t, b.Width(), b.Height(), 1e-9)
	assert.InDelta(t, (250-3.5)/2, b.Center().X, 1e-9)
	assert.InDelta(t, (80-44)/2.0, b.Center().Y, 1e-9)
}

func TestPoints(t *testing.T) {
	p, err := Points([]float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, []Point{{X: 1, Y: 3}, {X: 2, Y: 4}}, p)

	_, err = Points([]float64{1}, nil)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}
