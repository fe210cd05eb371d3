// Package sampledata creates synthetic sessions for tests.
package sampledata

import (
	"context"
	"math"
	"time"

	"github.com/aarondl/opt/null"

	"github.com/mpapenbr/trackdelta/pkg/model"
	"github.com/mpapenbr/trackdelta/pkg/repository/session"
)

// Ms converts milliseconds to a duration
func Ms(v int64) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// CircleLap returns n samples on a circle with radius r.
// Every gapEvery-th sample has no speed reading (0 disables gaps).
func CircleLap(n int, r float64, gapEvery int) []model.TelemetrySample {
	ret := make([]model.TelemetrySample, n)
	circumference := 2 * math.Pi * r
	for i := range ret {
		angle := 2 * math.Pi * float64(i) / float64(n)
		speed := null.From(200 + 50*math.Sin(angle))
		if gapEvery > 0 && i%gapEvery == 0 && i > 0 && i < n-1 {
			speed = null.Val[float64]{}
		}
		ret[i] = model.TelemetrySample{
			Distance: circumference * float64(i) / float64(n),
			X:        null.From(r * math.Cos(angle)),
			Y:        null.From(r * math.Sin(angle)),
			Speed:    speed,
			Throttle: null.From(100.0),
			Brake:    null.From(0.0),
			Gear:     null.From(float64(3 + i%5)),
			RPM:      null.From(10000 + 100*float64(i%10)),
			DRS:      null.From(0.0),
		}
	}
	return ret
}

// Qualifying returns a session with three drivers, their laps as in the
// example A 92.345, B 91.001, C 93.500 plus slower laps and one without time.
func Qualifying() (*model.Session, map[model.LapKey][]model.TelemetrySample) {
	lap := func(driver string, no int, ms int64) model.Lap {
		ret := model.Lap{Driver: driver, Team: "Team " + driver, LapNumber: no}
		if ms > 0 {
			ret.LapTime = null.From(Ms(ms))
		}
		return ret
	}
	sess := &model.Session{
		Year:        2021,
		EventName:   "Monza",
		SessionCode: "Q",
		Laps: model.Laps{
			lap("A", 1, 95000),
			lap("A", 2, 92345),
			lap("B", 1, 91001),
			lap("B", 2, 0),
			lap("C", 1, 93500),
			lap("C", 2, 94100),
		},
	}
	telemetry := map[model.LapKey][]model.TelemetrySample{
		{Driver: "A", LapNumber: 2}: CircleLap(40, 500, 7),
		{Driver: "B", LapNumber: 1}: CircleLap(50, 500, 0),
		{Driver: "C", LapNumber: 1}: CircleLap(30, 500, 4),
	}
	return sess, telemetry
}

// Source serves the given telemetry from memory.
func Source(telemetry map[model.LapKey][]model.TelemetrySample) model.TelemetrySource {
	return session.NewSource("", telemetry)
}

// StaticSource returns the same telemetry for every lap
type StaticSource struct {
	T   *model.Telemetry
	Err error
}

func (s *StaticSource) Telemetry(_ context.Context, _ model.LapKey) (*model.Telemetry, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.T.Clone(), nil
}
