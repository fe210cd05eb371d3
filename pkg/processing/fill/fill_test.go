//nolint:whitespace,funlen // ok for tests
package fill

import (
	"testing"

	"github.com/aarondl/opt/null"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/trackdelta/pkg/model"
)

var none = null.Val[float64]{}

func v(f float64) null.Val[float64] { return null.From(f) }

func TestFill(t *testing.T) {
	tests := []struct {
		name    string
		input   model.Series
		want    model.Series
		wantErr error
	}{
		{
			name:  "interpolate interior gap",
			input: model.Series{v(1), none, none, v(4)},
			want:  model.SeriesOf(1, 2, 3, 4),
		},
		{
			name:  "leading gap",
			input: model.Series{none, none, v(5), v(6)},
			want:  model.SeriesOf(5, 5, 5, 6),
		},
		{
			name:  "trailing gap",
			input: model.Series{v(3), v(7), none, none},
			want:  model.SeriesOf(3, 7, 7, 7),
		},
		{
			name:  "both edges and interior",
			input: model.Series{none, v(2), none, v(6), none},
			want:  model.SeriesOf(2, 2, 4, 6, 6),
		},
		{
			name:  "single known value",
			input: model.Series{none, v(8), none},
			want:  model.SeriesOf(8, 8, 8),
		},
		{
			name:  "nothing missing",
			input: model.SeriesOf(1, 5, 2),
			want:  model.SeriesOf(1, 5, 2),
		},
		{
			name:  "empty",
			input: model.Series{},
			want:  model.Series{},
		},
		{
			name:    "all missing",
			input:   model.Series{none, none},
			want:    model.Series{none, none},
			wantErr: ErrAllMissing,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Fill(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFillIdempotent(t *testing.T) {
	inputs := []model.Series{
		{none, v(1), none, none, v(10), none},
		{v(0), none, v(0), none},
		model.SeriesOf(3, 2, 1),
	}
	for _, in := range inputs {
		once, err := Fill(in)
		require.NoError(t, err)
		twice, err := Fill(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
		assert.Equal(t, 0, Missing(once))
	}
}

func TestFillDoesNotModifyInput(t *testing.T) {
	in := model.Series{v(1), none, v(3)}
	_, err := Fill(in)
	require.NoError(t, err)
	assert.True(t, in[1].IsNull())
}

func TestValues(t *testing.T) {
	got, err := Values(model.Series{v(1), none, none, v(4)})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, got)

	got, err = Values(model.Series{none})
	assert.ErrorIs(t, err, ErrAllMissing)
	assert.Nil(t, got)
}

func TestMissing(t *testing.T) {
	assert.Equal(t, 2, Missing(model.Series{none, v(1), none}))
	assert.Equal(t, 0, Missing(nil))
}
