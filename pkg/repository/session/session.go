// Package session reads recorded sessions from json files.
// It stands in for a timing provider when the analyzer runs from the command line.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/shopspring/decimal"

	"github.com/mpapenbr/trackdelta/pkg/model"
)

var ErrInvalidSession = errors.New("invalid session file")

type (
	sessionFile struct {
		Year        int         `json:"year"`
		EventName   string      `json:"eventName"`
		SessionCode string      `json:"sessionCode"`
		Laps        []lapRecord `json:"laps"`
	}
	lapRecord struct {
		Driver    string                  `json:"driver"`
		Team      string                  `json:"team"`
		LapNumber int                     `json:"lapNumber"`
		LapTime   null.Val[float64]       `json:"lapTime"` // seconds
		Deleted   bool                    `json:"deleted"`
		Telemetry []model.TelemetrySample `json:"telemetry,omitempty"`
	}
)

// Load reads the session file at path.
// The returned source serves the telemetry of the session laps.
func Load(path string, opts ...SourceOption) (*model.Session, *Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	var f sessionFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}
	sess := &model.Session{
		Year:        f.Year,
		EventName:   f.EventName,
		SessionCode: f.SessionCode,
		Laps:        make(model.Laps, 0, len(f.Laps)),
	}
	inline := make(map[model.LapKey][]model.TelemetrySample)
	for i := range f.Laps {
		rec := &f.Laps[i]
		if rec.Driver == "" {
			return nil, nil, fmt.Errorf("%w: lap %d has no driver", ErrInvalidSession, i)
		}
		lap := model.Lap{
			Driver:    rec.Driver,
			Team:      rec.Team,
			LapNumber: rec.LapNumber,
			LapTime:   toDuration(rec.LapTime),
			Deleted:   rec.Deleted,
		}
		if len(rec.Telemetry) > 0 {
			inline[lap.Key()] = rec.Telemetry
		}
		sess.Laps = append(sess.Laps, lap)
	}
	src := NewSource(filepath.Join(filepath.Dir(path), "telemetry"), inline, opts...)
	return sess, src, nil
}

// toDuration converts seconds exactly (92.345 => 92345ms).
// Negative or missing values give an undefined lap time.
func toDuration(secs null.Val[float64]) null.Val[time.Duration] {
	v, ok := secs.Get()
	if !ok || v < 0 {
		return null.Val[time.Duration]{}
	}
	ns := decimal.NewFromFloat(v).Shift(9).Round(0).IntPart()
	return null.From(time.Duration(ns))
}

// Save writes a session with inline telemetry. Used to create sample files.
func Save(path string, sess *model.Session, telemetry map[model.LapKey][]model.TelemetrySample) error {
	f := sessionFile{
		Year:        sess.Year,
		EventName:   sess.EventName,
		SessionCode: sess.SessionCode,
		Laps:        make([]lapRecord, 0, len(sess.Laps)),
	}
	for i := range sess.Laps {
		lap := &sess.Laps[i]
		rec := lapRecord{
			Driver:    lap.Driver,
			Team:      lap.Team,
			LapNumber: lap.LapNumber,
			Deleted:   lap.Deleted,
			Telemetry: telemetry[lap.Key()],
		}
		if d, ok := lap.LapTime.Get(); ok {
			rec.LapTime = null.From(decimal.NewFromInt(int64(d)).Shift(-9).InexactFloat64())
		}
		f.Laps = append(f.Laps, rec)
	}
	data, err := json.MarshalIndent(&f, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
