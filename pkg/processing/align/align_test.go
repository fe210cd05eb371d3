//nolint:whitespace,funlen // ok for tests
package align

import (
	"testing"

	"github.com/aarondl/opt/null"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/trackdelta/pkg/model"
)

var none = null.Val[float64]{}

func v(f float64) null.Val[float64] { return null.From(f) }

func telemetryA() *model.Telemetry {
	return &model.Telemetry{
		Distance: []float64{0, 10, 20, 30},
		Channels: map[model.Channel]model.Series{
			model.ChannelSpeed: {v(100), none, none, v(130)},
			model.ChannelGear:  {none, v(3), v(4), v(4)},
			model.ChannelDRS:   {none, none, none, none},
		},
	}
}

func telemetryB() *model.Telemetry {
	return &model.Telemetry{
		Distance: []float64{0, 15, 30},
		Channels: map[model.Channel]model.Series{
			model.ChannelSpeed: {v(90), v(120), none},
			model.ChannelGear:  model.SeriesOf(2, 3, 5),
			model.ChannelRPM:   model.SeriesOf(9000, 10000, 11000),
		},
	}
}

func TestClean(t *testing.T) {
	in := telemetryA()
	got, conditions := Clean(in, []model.Channel{
		model.ChannelSpeed, model.ChannelGear, model.ChannelDRS, model.ChannelRPM,
	})

	assert.Equal(t, model.SeriesOf(100, 110, 120, 130), got.Channels[model.ChannelSpeed])
	assert.Equal(t, model.SeriesOf(3, 3, 4, 4), got.Channels[model.ChannelGear])
	assert.Equal(t, map[model.Channel]model.Condition{
		model.ChannelSpeed: model.ConditionOK,
		model.ChannelGear:  model.ConditionOK,
		model.ChannelDRS:   model.ConditionAllMissingChannel,
		model.ChannelRPM:   model.ConditionMissingChannel,
	}, conditions)
	assert.False(t, got.Has(model.ChannelRPM), "missing channel must not be added")

	// source is untouched
	assert.Equal(t, telemetryA(), in)
}

func TestAlign(t *testing.T) {
	a := Input{Driver: "AAA", Telemetry: telemetryA()}
	b := Input{Driver: "BBB", Telemetry: telemetryB()}
	got := Align(a, b, model.ComparisonChannels)

	assert.Equal(t, []string{"AAA", "BBB"}, got.Drivers)
	require.Len(t, got.Channels, len(model.ComparisonChannels))

	speed, ok := got.Channel(model.ChannelSpeed)
	require.True(t, ok)
	want := []Trace{
		{
			Driver: "AAA",
			Points: []DistancePoint{
				{Distance: 0, Value: 100}, {Distance: 10, Value: 110},
				{Distance: 20, Value: 120}, {Distance: 30, Value: 130},
			},
		},
		{
			// filled from its own values only, keeps its own distance axis
			Driver: "BBB",
			Points: []DistancePoint{
				{Distance: 0, Value: 90}, {Distance: 15, Value: 120}, {Distance: 30, Value: 120},
			},
		},
	}
	if diff := cmp.Diff(want, speed.Traces); diff != "" {
		t.Errorf("speed traces mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, speed.Skipped)

	rpm, ok := got.Channel(model.ChannelRPM)
	require.True(t, ok)
	assert.Equal(t, []string{"AAA"}, rpm.Skipped)
	require.Len(t, rpm.Traces, 1)
	assert.Equal(t, "BBB", rpm.Traces[0].Driver)

	drs, ok := got.Channel(model.ChannelDRS)
	require.True(t, ok)
	assert.Equal(t, []string{"BBB"}, drs.Skipped)
	require.Len(t, drs.Traces, 1)
	assert.Equal(t, model.ConditionAllMissingChannel, drs.Traces[0].Condition)
	assert.Nil(t, drs.Traces[0].Points)

	throttle, ok := got.Channel(model.ChannelThrottle)
	require.True(t, ok)
	assert.Empty(t, throttle.Traces)
	assert.Equal(t, []string{"AAA", "BBB"}, throttle.Skipped)
}

func TestAlign_UnknownChannel(t *testing.T) {
	tyre := model.Channel("TyreTemp")
	got := Align(Input{Driver: "A", Telemetry: telemetryA()},
		Input{Driver: "B", Telemetry: telemetryB()}, []model.Channel{tyre})
	require.Len(t, got.Channels, 1)
	entry, ok := got.Channel(tyre)
	require.True(t, ok)
	assert.Empty(t, entry.Traces)
	assert.Equal(t, []string{"A", "B"}, entry.Skipped)
}

func TestAlign_NoChannels(t *testing.T) {
	got := Align(Input{Driver: "A", Telemetry: telemetryA()},
		Input{Driver: "B", Telemetry: telemetryB()}, nil)
	assert.Empty(t, got.Channels)
	_, ok := got.Channel(model.ChannelSpeed)
	assert.False(t, ok)
}
