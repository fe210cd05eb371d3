// Package laptimes extracts the lap time progression of two drivers.
package laptimes

import (
	"cmp"
	"slices"
	"time"

	"github.com/mpapenbr/trackdelta/pkg/model"
)

type (
	Input struct {
		Driver string
		Laps   []model.Lap
	}
	Point struct {
		LapNumber int           `json:"lapNumber" yaml:"lapNumber"`
		LapTime   time.Duration `json:"lapTime" yaml:"lapTime"`
	}
	Series struct {
		Driver string  `json:"driver" yaml:"driver"`
		Points []Point `json:"points" yaml:"points"`
		// number of laps without lap time, they have no point
		Skipped int `json:"skipped" yaml:"skipped"`
	}
	Comparison struct {
		Series []Series `json:"series" yaml:"series"`
	}
)

// Extract projects the laps of driver to (lap number, lap time) points in lap
// number order. Outliers are kept, only laps without a positive lap time are skipped.
func Extract(driver string, laps []model.Lap) Series {
	ret := Series{Driver: driver, Points: make([]Point, 0, len(laps))}
	for i := range laps {
		if laps[i].Driver != driver {
			continue
		}
		if !laps[i].HasLapTime() {
			ret.Skipped++
			continue
		}
		ret.Points = append(ret.Points, Point{
			LapNumber: laps[i].LapNumber,
			LapTime:   laps[i].LapTime.MustGet(),
		})
	}
	slices.SortStableFunc(ret.Points, func(a, b Point) int {
		return cmp.Compare(a.LapNumber, b.LapNumber)
	})
	return ret
}

// Compare extracts the series for both drivers.
func Compare(a, b Input) *Comparison {
	return &Comparison{Series: []Series{
		Extract(a.Driver, a.Laps),
		Extract(b.Driver, b.Laps),
	}}
}
