package model

import (
	"context"

	"github.com/aarondl/opt/null"
)

// TelemetrySample is one vehicle state as delivered by the telemetry provider.
// Missing readings are null.
type TelemetrySample struct {
	Distance float64           `json:"distance"` // meters, non-decreasing within a lap
	X        null.Val[float64] `json:"x"`
	Y        null.Val[float64] `json:"y"`
	Speed    null.Val[float64] `json:"speed"`
	Throttle null.Val[float64] `json:"throttle"` // 0-100
	Brake    null.Val[float64] `json:"brake"`    // 0/1 or 0-100
	Gear     null.Val[float64] `json:"nGear"`    // 0 = neutral
	RPM      null.Val[float64] `json:"rpm"`
	DRS      null.Val[float64] `json:"drs"`
}

func (s *TelemetrySample) value(c Channel) null.Val[float64] {
	switch c {
	case ChannelDistance:
		return null.From(s.Distance)
	case ChannelX:
		return s.X
	case ChannelY:
		return s.Y
	case ChannelSpeed:
		return s.Speed
	case ChannelThrottle:
		return s.Throttle
	case ChannelBrake:
		return s.Brake
	case ChannelGear:
		return s.Gear
	case ChannelRPM:
		return s.RPM
	case ChannelDRS:
		return s.DRS
	}
	return null.Val[float64]{}
}

// Telemetry is the column oriented telemetry table of one lap.
// All channels have the same length as Distance.
type Telemetry struct {
	Distance []float64
	Channels map[Channel]Series
}

// TelemetrySource provides the telemetry of a lap.
// Implementations may load lazily.
type TelemetrySource interface {
	Telemetry(ctx context.Context, key LapKey) (*Telemetry, error)
}

// NewTelemetry builds the table from samples. Every sample channel is present,
// even if all its values are missing.
func NewTelemetry(samples []TelemetrySample) *Telemetry {
	ret := &Telemetry{
		Distance: make([]float64, len(samples)),
		Channels: make(map[Channel]Series, len(SampleChannels)),
	}
	for _, c := range SampleChannels {
		ret.Channels[c] = make(Series, len(samples))
	}
	for i := range samples {
		ret.Distance[i] = samples[i].Distance
		for _, c := range SampleChannels {
			ret.Channels[c][i] = samples[i].value(c)
		}
	}
	return ret
}

func (t *Telemetry) Len() int {
	return len(t.Distance)
}

// Channel returns the series for c. Distance is returned as a series too.
func (t *Telemetry) Channel(c Channel) (Series, bool) {
	if c == ChannelDistance {
		return SeriesOf(t.Distance...), true
	}
	s, ok := t.Channels[c]
	return s, ok
}

func (t *Telemetry) Has(c Channel) bool {
	_, ok := t.Channel(c)
	return ok
}

// Set replaces (or adds) the series of c.
func (t *Telemetry) Set(c Channel, s Series) {
	if t.Channels == nil {
		t.Channels = make(map[Channel]Series)
	}
	t.Channels[c] = s
}

// Drop removes a channel from the table.
func (t *Telemetry) Drop(c Channel) {
	delete(t.Channels, c)
}

// Clone returns a deep copy, transforms work on clones only.
func (t *Telemetry) Clone() *Telemetry {
	ret := &Telemetry{
		Distance: make([]float64, len(t.Distance)),
		Channels: make(map[Channel]Series, len(t.Channels)),
	}
	copy(ret.Distance, t.Distance)
	for k, v := range t.Channels {
		ret.Channels[k] = v.Clone()
	}
	return ret
}
