package model

import (
	"fmt"
	"slices"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/samber/lo"
)

type (
	// LapKey identifies a lap within a session.
	LapKey struct {
		Driver    string `json:"driver" yaml:"driver"`
		LapNumber int    `json:"lapNumber" yaml:"lapNumber"`
	}
	Lap struct {
		Driver    string
		Team      string
		LapNumber int
		LapTime   null.Val[time.Duration] // null when the provider has no valid time
		Deleted   bool                    // lap time deleted by race control
	}
	Laps []Lap
)

func (k LapKey) String() string {
	return fmt.Sprintf("%s_%d", k.Driver, k.LapNumber)
}

func (l *Lap) Key() LapKey {
	return LapKey{Driver: l.Driver, LapNumber: l.LapNumber}
}

// HasLapTime is true if the lap carries a usable lap time
func (l *Lap) HasLapTime() bool {
	d, ok := l.LapTime.Get()
	return ok && d > 0
}

// Drivers returns the driver codes in order of appearance.
func (l Laps) Drivers() []string {
	return lo.Uniq(lo.Map(l, func(item Lap, _ int) string { return item.Driver }))
}

// SortedDrivers returns the driver codes in alphabetical order.
func (l Laps) SortedDrivers() []string {
	ret := l.Drivers()
	slices.Sort(ret)
	return ret
}

func (l Laps) PickDriver(driver string) Laps {
	return lo.Filter(l, func(item Lap, _ int) bool { return item.Driver == driver })
}

// PickFastest returns the lap with the lowest lap time.
// Deleted laps and laps without lap time are ignored. On equal times the first lap wins.
func (l Laps) PickFastest() (Lap, bool) {
	candidates := lo.Filter(l, func(item Lap, _ int) bool {
		return !item.Deleted && item.HasLapTime()
	})
	if len(candidates) == 0 {
		return Lap{}, false
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.LapTime.MustGet() < best.LapTime.MustGet() {
			best = c
		}
	}
	return best, true
}

// FastestPerDriver returns the fastest lap of each driver in order of appearance.
// Drivers without a valid lap are left out.
func (l Laps) FastestPerDriver() Laps {
	ret := make(Laps, 0)
	for _, d := range l.Drivers() {
		if lap, ok := l.PickDriver(d).PickFastest(); ok {
			ret = append(ret, lap)
		}
	}
	return ret
}
