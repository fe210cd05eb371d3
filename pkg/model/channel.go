package model

import (
	"github.com/aarondl/opt/null"
)

// Channel names follow the column names of the telemetry provider.
type Channel string

const (
	ChannelDistance Channel = "Distance"
	ChannelX        Channel = "X"
	ChannelY        Channel = "Y"
	ChannelSpeed    Channel = "Speed"
	ChannelThrottle Channel = "Throttle"
	ChannelBrake    Channel = "Brake"
	ChannelGear     Channel = "nGear"
	ChannelRPM      Channel = "RPM"
	ChannelDRS      Channel = "DRS"
)

// ComparisonChannels are the channels of the telemetry comparison chart (in chart order).
var ComparisonChannels = []Channel{
	ChannelRPM,
	ChannelSpeed,
	ChannelThrottle,
	ChannelBrake,
	ChannelGear,
	ChannelDRS,
}

// SampleChannels are all value channels a TelemetrySample carries.
var SampleChannels = []Channel{
	ChannelX,
	ChannelY,
	ChannelSpeed,
	ChannelThrottle,
	ChannelBrake,
	ChannelGear,
	ChannelRPM,
	ChannelDRS,
}

// Series holds the values of one channel, missing entries are null.
type Series []null.Val[float64]

// SeriesOf creates a series without missing values.
func SeriesOf(values ...float64) Series {
	ret := make(Series, len(values))
	for i, v := range values {
		ret[i] = null.From(v)
	}
	return ret
}

func (s Series) Clone() Series {
	if s == nil {
		return nil
	}
	ret := make(Series, len(s))
	copy(ret, s)
	return ret
}

// Known returns the number of non-missing entries.
func (s Series) Known() int {
	n := 0
	for i := range s {
		if s[i].IsValue() {
			n++
		}
	}
	return n
}
