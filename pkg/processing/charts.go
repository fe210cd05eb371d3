package processing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/mpapenbr/trackdelta/log"
	"github.com/mpapenbr/trackdelta/pkg/model"
	"github.com/mpapenbr/trackdelta/pkg/processing/align"
	"github.com/mpapenbr/trackdelta/pkg/processing/delta"
	"github.com/mpapenbr/trackdelta/pkg/processing/fill"
	"github.com/mpapenbr/trackdelta/pkg/processing/laptimes"
	"github.com/mpapenbr/trackdelta/pkg/processing/segment"
)

type (
	GearMapChart struct {
		Title     string          `json:"title" yaml:"title"`
		Header    string          `json:"header" yaml:"header"`
		Driver    string          `json:"driver" yaml:"driver"`
		LapNumber int             `json:"lapNumber" yaml:"lapNumber"`
		LapTime   time.Duration   `json:"lapTime" yaml:"lapTime"`
		Path      *segment.Path   `json:"path" yaml:"path"`
		Condition model.Condition `json:"condition" yaml:"condition"`
		// the channel that caused a missing channel condition
		Channel   model.Channel   `json:"channel,omitempty" yaml:"channel,omitempty"`
	}
	TelemetryChart struct {
		Title      string            `json:"title" yaml:"title"`
		Laps       []model.LapKey    `json:"laps" yaml:"laps"`
		Comparison *align.Comparison `json:"comparison" yaml:"comparison"`
		Condition  model.Condition   `json:"condition" yaml:"condition"`
	}
	LapTimeChart struct {
		Title      string               `json:"title" yaml:"title"`
		Comparison *laptimes.Comparison `json:"comparison" yaml:"comparison"`
	}
	QualifyingChart struct {
		Title string       `json:"title" yaml:"title"`
		Table *delta.Table `json:"table" yaml:"table"`
	}
)

const (
	chartGearMap    = "gearmap"
	chartTelemetry  = "telemetry"
	chartLapTimes   = "laptimes"
	chartQualifying = "qualifying"
)

// GearMap builds the gear colored track path of the fastest lap in laps.
func (p *Processor) GearMap(ctx context.Context, laps model.Laps) (ret *GearMapChart, err error) {
	ctx, span := p.startSpan(ctx, chartGearMap)
	defer span.End()
	ret = &GearMapChart{Title: "Fastest Lap - Gear Map"}
	defer func() {
		cond := model.ConditionOK
		if ret != nil {
			cond = ret.Condition
		}
		p.report(ctx, span, chartGearMap, cond, err)
	}()

	lap, ok := laps.PickFastest()
	if !ok {
		ret.Condition = model.ConditionNoValidLaps
		return ret, nil
	}
	lapTime := lap.LapTime.MustGet()
	ret.Driver = lap.Driver
	ret.LapNumber = lap.LapNumber
	ret.LapTime = lapTime
	ret.Header = fmt.Sprintf("Fastest Lap: %s  |  Driver: %s", delta.FormatLapTime(lapTime), lap.Driver)

	t, err := p.telemetry(ctx, &lap)
	if err != nil {
		return nil, fmt.Errorf("gear map: %w", err)
	}
	span.SetAttributes(attribute.Int("samples", t.Len()))

	values := make(map[model.Channel][]float64, 3)
	for _, c := range []model.Channel{model.ChannelX, model.ChannelY, model.ChannelGear} {
		s, ok := t.Channel(c)
		if !ok {
			ret.Condition = model.ConditionMissingChannel
			ret.Channel = c
			return ret, nil
		}
		v, err := fill.Values(s)
		if errors.Is(err, fill.ErrAllMissing) {
			ret.Condition = model.ConditionAllMissingChannel
			ret.Channel = c
			return ret, nil
		}
		if err != nil {
			return nil, fmt.Errorf("gear map: %w", err)
		}
		values[c] = v
	}
	points, err := segment.Points(values[model.ChannelX], values[model.ChannelY])
	if err != nil {
		return nil, fmt.Errorf("gear map: %w", err)
	}
	if ret.Path, err = segment.Build(points, values[model.ChannelGear]); err != nil {
		return nil, fmt.Errorf("gear map: %w", err)
	}
	ret.Condition = ret.Path.Condition
	p.l.Debug("gear map computed",
		log.String("driver", lap.Driver), log.Int("segments", len(ret.Path.Segments)))
	return ret, nil
}

// TelemetryComparison overlays the fastest lap telemetry of two drivers.
func (p *Processor) TelemetryComparison(
	ctx context.Context,
	laps model.Laps,
	driverA, driverB string,
) (ret *TelemetryChart, err error) {
	ctx, span := p.startSpan(ctx, chartTelemetry,
		attribute.String("driverA", driverA), attribute.String("driverB", driverB))
	defer span.End()
	ret = &TelemetryChart{Title: "Fastest Race Lap Telemetry Comparison"}
	defer func() {
		cond := model.ConditionOK
		if ret != nil {
			cond = ret.Condition
		}
		p.report(ctx, span, chartTelemetry, cond, err)
	}()

	inputs := make([]align.Input, 0, 2)
	for _, driver := range []string{driverA, driverB} {
		lap, ok := laps.PickDriver(driver).PickFastest()
		if !ok {
			ret.Condition = model.ConditionNoValidLaps
			return ret, nil
		}
		t, err := p.telemetry(ctx, &lap)
		if err != nil {
			return nil, fmt.Errorf("telemetry comparison: %w", err)
		}
		ret.Laps = append(ret.Laps, lap.Key())
		inputs = append(inputs, align.Input{Driver: driver, Telemetry: t})
	}
	ret.Comparison = align.Align(inputs[0], inputs[1], p.channels)
	return ret, nil
}

// LapTimes extracts the lap time progression of two drivers.
func (p *Processor) LapTimes(ctx context.Context, laps model.Laps, driverA, driverB string) *LapTimeChart {
	ctx, span := p.startSpan(ctx, chartLapTimes)
	defer span.End()
	ret := &LapTimeChart{
		Title: fmt.Sprintf("%s vs %s - Lap Time Comparison", driverA, driverB),
		Comparison: laptimes.Compare(
			laptimes.Input{Driver: driverA, Laps: laps.PickDriver(driverA)},
			laptimes.Input{Driver: driverB, Laps: laps.PickDriver(driverB)},
		),
	}
	p.report(ctx, span, chartLapTimes, model.ConditionOK, nil)
	return ret
}

// Qualifying ranks the fastest lap of every driver of the session.
func (p *Processor) Qualifying(ctx context.Context, sess *model.Session) *QualifyingChart {
	ctx, span := p.startSpan(ctx, chartQualifying)
	defer span.End()
	ret := &QualifyingChart{
		Title: fmt.Sprintf("%s %d Qualifying", sess.EventName, sess.Year),
		Table: delta.Rank(sess.Laps.FastestPerDriver()),
	}
	p.report(ctx, span, chartQualifying, ret.Table.Condition, nil)
	return ret
}
