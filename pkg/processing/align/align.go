// Package align prepares the telemetry of two drivers for an overlay comparison.
//
// Each driver keeps its own distance axis. Channels are filled per driver, the
// drivers never share fill values and nothing is resampled onto a common grid.
package align

import (
	"errors"

	"github.com/mpapenbr/trackdelta/pkg/model"
	"github.com/mpapenbr/trackdelta/pkg/processing/fill"
)

type (
	Input struct {
		Driver    string
		Telemetry *model.Telemetry
	}
	DistancePoint struct {
		Distance float64 `json:"distance" yaml:"distance"`
		Value    float64 `json:"value" yaml:"value"`
	}
	// Trace is the cleaned series of one driver for one channel.
	// Points is nil if the channel has no known values.
	Trace struct {
		Driver    string          `json:"driver" yaml:"driver"`
		Points    []DistancePoint `json:"points" yaml:"points"`
		Condition model.Condition `json:"condition" yaml:"condition"`
	}
	ChannelComparison struct {
		Channel model.Channel `json:"channel" yaml:"channel"`
		Traces  []Trace       `json:"traces" yaml:"traces"`
		// drivers whose telemetry does not have this channel
		Skipped []string `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	}
	Comparison struct {
		Drivers  []string            `json:"drivers" yaml:"drivers"`
		Channels []ChannelComparison `json:"channels" yaml:"channels"`
	}
)

// Clean returns a filled copy of t. Requested channels missing in t are
// reported with ConditionMissingChannel, channels without any known value with
// ConditionAllMissingChannel. Both are no errors.
func Clean(
	t *model.Telemetry,
	channels []model.Channel,
) (*model.Telemetry, map[model.Channel]model.Condition) {
	ret := t.Clone()
	conditions := make(map[model.Channel]model.Condition, len(channels))
	for _, c := range channels {
		if c == model.ChannelDistance {
			continue
		}
		s, ok := ret.Channels[c]
		if !ok {
			conditions[c] = model.ConditionMissingChannel
			continue
		}
		filled, err := fill.Fill(s)
		switch {
		case errors.Is(err, fill.ErrAllMissing):
			conditions[c] = model.ConditionAllMissingChannel
		case err == nil:
			conditions[c] = model.ConditionOK
		}
		ret.Set(c, filled)
	}
	return ret, conditions
}

// Align cleans both telemetry tables independently and builds one comparison
// entry per requested channel.
func Align(a, b Input, channels []model.Channel) *Comparison {
	ret := &Comparison{
		Drivers:  []string{a.Driver, b.Driver},
		Channels: make([]ChannelComparison, 0, len(channels)),
	}
	inputs := []Input{a, b}
	cleaned := make([]*model.Telemetry, len(inputs))
	conditions := make([]map[model.Channel]model.Condition, len(inputs))
	for i := range inputs {
		cleaned[i], conditions[i] = Clean(inputs[i].Telemetry, channels)
	}

	for _, c := range channels {
		entry := ChannelComparison{Channel: c, Traces: make([]Trace, 0, len(inputs))}
		for i := range inputs {
			if conditions[i][c] == model.ConditionMissingChannel {
				entry.Skipped = append(entry.Skipped, inputs[i].Driver)
				continue
			}
			entry.Traces = append(entry.Traces, trace(inputs[i].Driver, cleaned[i], c,
				conditions[i][c]))
		}
		ret.Channels = append(ret.Channels, entry)
	}
	return ret
}

// Channel returns the comparison entry for c
func (c *Comparison) Channel(ch model.Channel) (ChannelComparison, bool) {
	for _, entry := range c.Channels {
		if entry.Channel == ch {
			return entry, true
		}
	}
	return ChannelComparison{}, false
}

func trace(driver string, t *model.Telemetry, c model.Channel, cond model.Condition) Trace {
	ret := Trace{Driver: driver, Condition: cond}
	if cond == model.ConditionAllMissingChannel {
		return ret
	}
	s, _ := t.Channel(c)
	n := min(len(s), len(t.Distance))
	ret.Points = make([]DistancePoint, n)
	for i := range n {
		ret.Points[i] = DistancePoint{Distance: t.Distance[i], Value: s[i].MustGet()}
	}
	return ret
}
