package processing

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/mpapenbr/trackdelta/log"
	"github.com/mpapenbr/trackdelta/pkg/model"
)

// Report holds all charts of one analysis run.
type Report struct {
	RunID      string           `json:"runId" yaml:"runId"`
	Session    string           `json:"session" yaml:"session"`
	Drivers    []string         `json:"drivers" yaml:"drivers"`
	GearMap    *GearMapChart    `json:"gearMap" yaml:"gearMap"`
	Telemetry  *TelemetryChart  `json:"telemetry" yaml:"telemetry"`
	LapTimes   *LapTimeChart    `json:"lapTimes" yaml:"lapTimes"`
	Qualifying *QualifyingChart `json:"qualifying" yaml:"qualifying"`
}

// Analyze computes all charts concurrently. The charts share no state,
// each goroutine writes its own field only.
func (p *Processor) Analyze(
	ctx context.Context,
	sess *model.Session,
	driverA, driverB string,
) (*Report, error) {
	ret := &Report{
		RunID:   uuid.NewString(),
		Session: sess.Title(),
		Drivers: []string{driverA, driverB},
	}
	l := p.l.With(log.String("runId", ret.RunID))
	ctx = log.AddToContext(ctx, l)
	ctx, span := p.tracer.Start(ctx, "analyze")
	defer span.End()

	l.Info("starting analysis",
		log.String("session", ret.Session),
		log.String("driverA", driverA), log.String("driverB", driverB),
		log.Int("laps", len(sess.Laps)))

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		ret.GearMap, err = p.GearMap(gCtx, sess.Laps)
		return err
	})
	g.Go(func() (err error) {
		ret.Telemetry, err = p.TelemetryComparison(gCtx, sess.Laps, driverA, driverB)
		return err
	})
	g.Go(func() error {
		ret.LapTimes = p.LapTimes(gCtx, sess.Laps, driverA, driverB)
		return nil
	})
	g.Go(func() error {
		ret.Qualifying = p.Qualifying(gCtx, sess)
		return nil
	})
	if err := g.Wait(); err != nil {
		l.Error("analysis failed", log.ErrorField(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	l.Info("analysis done")
	return ret, nil
}
