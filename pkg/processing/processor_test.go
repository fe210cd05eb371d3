//nolint:whitespace,funlen,lll // ok for tests
package processing

import (
	"context"
	"errors"
	"testing"

	"github.com/aarondl/opt/null"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/mpapenbr/trackdelta/pkg/model"
	"github.com/mpapenbr/trackdelta/testsupport/sampledata"
)

func newProcessor(t *testing.T, opts ...ProcessorOption) (*Processor, *model.Session) {
	t.Helper()
	sess, telemetry := sampledata.Qualifying()
	opts = append([]ProcessorOption{WithTelemetrySource(sampledata.Source(telemetry))}, opts...)
	return NewProcessor(opts...), sess
}

func TestGearMap(t *testing.T) {
	p, sess := newProcessor(t)
	got, err := p.GearMap(context.Background(), sess.Laps)
	require.NoError(t, err)

	assert.Equal(t, "Fastest Lap - Gear Map", got.Title)
	assert.Equal(t, "Fastest Lap: 01:31.001  |  Driver: B", got.Header)
	assert.Equal(t, "B", got.Driver)
	assert.Equal(t, 1, got.LapNumber)
	assert.Equal(t, model.ConditionOK, got.Condition)
	require.NotNil(t, got.Path)
	assert.Len(t, got.Path.Segments, 49)
	require.NotNil(t, got.Path.Range)
	assert.InDelta(t, 3.0, got.Path.Range.Min, 1e-9)
	assert.InDelta(t, 7.0, got.Path.Range.Max, 1e-9)
	assert.NotNil(t, got.Path.Box)
}

func TestGearMap_Conditions(t *testing.T) {
	samples := sampledata.CircleLap(10, 100, 0)
	allMissing := model.NewTelemetry(samples)
	allMissing.Set(model.ChannelGear, make(model.Series, len(samples)))
	missing := model.NewTelemetry(samples)
	missing.Drop(model.ChannelX)

	laps := model.Laps{{Driver: "A", LapNumber: 1, LapTime: null.From(sampledata.Ms(90000))}}
	tests := []struct {
		name    string
		laps    model.Laps
		t       *model.Telemetry
		want    model.Condition
		channel model.Channel
	}{
		{"no valid laps", model.Laps{{Driver: "A", LapNumber: 1}}, nil, model.ConditionNoValidLaps, ""},
		{"deleted only", model.Laps{{Driver: "A", LapNumber: 1, LapTime: null.From(sampledata.Ms(90000)), Deleted: true}}, nil, model.ConditionNoValidLaps, ""},
		{"missing x", laps, missing, model.ConditionMissingChannel, model.ChannelX},
		{"gear all missing", laps, allMissing, model.ConditionAllMissingChannel, model.ChannelGear},
		{"ok", laps, model.NewTelemetry(samples), model.ConditionOK, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProcessor(WithTelemetrySource(&sampledata.StaticSource{T: tt.t}))
			got, err := p.GearMap(context.Background(), tt.laps)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Condition)
			assert.Equal(t, tt.channel, got.Channel)
		})
	}
}

func TestGearMap_SourceError(t *testing.T) {
	errBoom := errors.New("boom")
	p := NewProcessor(WithTelemetrySource(&sampledata.StaticSource{Err: errBoom}))
	sess, _ := sampledata.Qualifying()
	_, err := p.GearMap(context.Background(), sess.Laps)
	require.ErrorIs(t, err, errBoom)

	_, err = NewProcessor().GearMap(context.Background(), sess.Laps)
	require.ErrorIs(t, err, ErrNoTelemetrySource)
}

func TestTelemetryComparison(t *testing.T) {
	p, sess := newProcessor(t)
	got, err := p.TelemetryComparison(context.Background(), sess.Laps, "A", "C")
	require.NoError(t, err)

	assert.Equal(t, "Fastest Race Lap Telemetry Comparison", got.Title)
	assert.Equal(t, []model.LapKey{{Driver: "A", LapNumber: 2}, {Driver: "C", LapNumber: 1}}, got.Laps)
	require.NotNil(t, got.Comparison)
	assert.Len(t, got.Comparison.Channels, len(model.ComparisonChannels))

	speed, ok := got.Comparison.Channel(model.ChannelSpeed)
	require.True(t, ok)
	require.Len(t, speed.Traces, 2)
	// each driver keeps its own sample count
	assert.Len(t, speed.Traces[0].Points, 40)
	assert.Len(t, speed.Traces[1].Points, 30)
}

func TestTelemetryComparison_NoLaps(t *testing.T) {
	p, sess := newProcessor(t)
	got, err := p.TelemetryComparison(context.Background(), sess.Laps, "A", "X")
	require.NoError(t, err)
	assert.Equal(t, model.ConditionNoValidLaps, got.Condition)
	assert.Nil(t, got.Comparison)
}

func TestLapTimes(t *testing.T) {
	p, sess := newProcessor(t)
	got := p.LapTimes(context.Background(), sess.Laps, "A", "B")
	assert.Equal(t, "A vs B - Lap Time Comparison", got.Title)
	require.Len(t, got.Comparison.Series, 2)
	assert.Len(t, got.Comparison.Series[0].Points, 2)
	assert.Len(t, got.Comparison.Series[1].Points, 1)
	assert.Equal(t, 1, got.Comparison.Series[1].Skipped)
}

func TestQualifying(t *testing.T) {
	p, sess := newProcessor(t)
	got := p.Qualifying(context.Background(), sess)
	assert.Equal(t, "Monza 2021 Qualifying", got.Title)
	require.Len(t, got.Table.Rows, 3)
	assert.Equal(t, []string{"B", "A", "C"}, []string{
		got.Table.Rows[0].Driver, got.Table.Rows[1].Driver, got.Table.Rows[2].Driver,
	})
	assert.Equal(t, []string{"+0ms", "+1.344s", "+2.499s"}, []string{
		got.Table.Rows[0].DeltaText, got.Table.Rows[1].DeltaText, got.Table.Rows[2].DeltaText,
	})
}

func TestAnalyze(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	p, sess := newProcessor(t, WithTracerProvider(tp))

	got, err := p.Analyze(context.Background(), sess, "A", "B")
	require.NoError(t, err)
	assert.NotEmpty(t, got.RunID)
	assert.Equal(t, "Monza 2021 Qualifying", got.Session)
	assert.Equal(t, []string{"A", "B"}, got.Drivers)
	assert.NotNil(t, got.GearMap)
	assert.NotNil(t, got.Telemetry)
	assert.NotNil(t, got.LapTimes)
	assert.NotNil(t, got.Qualifying)

	names := make([]string, 0)
	for _, s := range exporter.GetSpans() {
		names = append(names, s.Name)
	}
	assert.ElementsMatch(t, []string{"analyze", chartGearMap, chartTelemetry, chartLapTimes, chartQualifying}, names)
}

func TestAnalyze_Error(t *testing.T) {
	errBoom := errors.New("boom")
	sess, _ := sampledata.Qualifying()
	p := NewProcessor(WithTelemetrySource(&sampledata.StaticSource{Err: errBoom}))
	_, err := p.Analyze(context.Background(), sess, "A", "B")
	require.ErrorIs(t, err, errBoom)
}
