// Package delta ranks fastest laps and computes the gap to the fastest one.
package delta

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/samber/lo"

	"github.com/mpapenbr/trackdelta/pkg/model"
)

type (
	Row struct {
		Position  int           `json:"position" yaml:"position"` // 1-based
		Driver    string        `json:"driver" yaml:"driver"`
		Team      string        `json:"team" yaml:"team"`
		LapNumber int           `json:"lapNumber" yaml:"lapNumber"`
		LapTime   time.Duration `json:"lapTime" yaml:"lapTime"`
		Delta     time.Duration `json:"delta" yaml:"delta"`
		DeltaText string        `json:"deltaText" yaml:"deltaText"`
	}
	Table struct {
		Rows      []Row           `json:"rows" yaml:"rows"`
		Header    string          `json:"header" yaml:"header"`
		Condition model.Condition `json:"condition" yaml:"condition"`
		// laps left out of the ranking
		Excluded []Exclusion `json:"excluded,omitempty" yaml:"excluded,omitempty"`
	}
	Exclusion struct {
		Driver    string          `json:"driver" yaml:"driver"`
		LapNumber int             `json:"lapNumber" yaml:"lapNumber"`
		Condition model.Condition `json:"condition" yaml:"condition"`
	}
)

// Rank orders the laps by lap time (stable sort, equal times keep input order).
// The first row is the reference, every row gets the gap to it.
// Laps without lap time are excluded and listed with ConditionUndefinedLapTime.
// If no lap is left the table is empty and carries ConditionNoValidLaps.
func Rank(laps []model.Lap) *Table {
	ret := &Table{Rows: make([]Row, 0, len(laps))}
	valid, invalid := lo.FilterReject(laps, func(item model.Lap, _ int) bool {
		return item.HasLapTime()
	})
	ret.Excluded = lo.Map(invalid, func(item model.Lap, _ int) Exclusion {
		return Exclusion{
			Driver:    item.Driver,
			LapNumber: item.LapNumber,
			Condition: model.ConditionUndefinedLapTime,
		}
	})
	if len(valid) == 0 {
		ret.Condition = model.ConditionNoValidLaps
		return ret
	}

	slices.SortStableFunc(valid, func(a, b model.Lap) int {
		return cmp.Compare(a.LapTime.MustGet(), b.LapTime.MustGet())
	})
	ref := valid[0].LapTime.MustGet()
	for i := range valid {
		lapTime := valid[i].LapTime.MustGet()
		d := lapTime - ref
		ret.Rows = append(ret.Rows, Row{
			Position:  i + 1,
			Driver:    valid[i].Driver,
			Team:      valid[i].Team,
			LapNumber: valid[i].LapNumber,
			LapTime:   lapTime,
			Delta:     d,
			DeltaText: FormatDelta(d),
		})
	}
	ret.Header = fmt.Sprintf("Fastest Lap: %s (%s)", FormatLapTime(ref), valid[0].Driver)
	return ret
}

// Reference returns the fastest row
func (t *Table) Reference() (Row, bool) {
	if len(t.Rows) == 0 {
		return Row{}, false
	}
	return t.Rows[0], true
}
