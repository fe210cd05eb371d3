package processing

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"github.com/mpapenbr/trackdelta/log"
	"github.com/mpapenbr/trackdelta/pkg/model"
)

const scope = "github.com/mpapenbr/trackdelta/pkg/processing"

// ErrNoTelemetrySource is returned by chart operations that need telemetry
// when the processor was created without a source.
var ErrNoTelemetrySource = errors.New("no telemetry source configured")

type (
	Processor struct {
		source     model.TelemetrySource
		channels   []model.Channel
		l          *log.Logger
		tracer     trace.Tracer
		charts     metric.Int64Counter
		conditions metric.Int64Counter
	}
	ProcessorOption func(proc *Processor)
)

func WithTelemetrySource(source model.TelemetrySource) ProcessorOption {
	return func(proc *Processor) {
		proc.source = source
	}
}

func WithLogger(l *log.Logger) ProcessorOption {
	return func(proc *Processor) {
		proc.l = l
	}
}

func WithTracerProvider(tp trace.TracerProvider) ProcessorOption {
	return func(proc *Processor) {
		proc.tracer = tp.Tracer(scope)
	}
}

// WithChannels overrides the channels of the telemetry comparison
func WithChannels(channels ...model.Channel) ProcessorOption {
	return func(proc *Processor) {
		proc.channels = channels
	}
}

func NewProcessor(opts ...ProcessorOption) *Processor {
	ret := &Processor{
		channels: model.ComparisonChannels,
		l:        log.Default().Named("processing"),
		tracer:   otel.Tracer(scope),
	}
	for _, opt := range opts {
		opt(ret)
	}
	meter := otel.Meter(scope)
	var err error
	if ret.charts, err = meter.Int64Counter("trackdelta.charts",
		metric.WithDescription("number of computed charts")); err != nil {
		ret.l.Warn("could not create counter", log.ErrorField(err))
		ret.charts = noop.Int64Counter{}
	}
	if ret.conditions, err = meter.Int64Counter("trackdelta.conditions",
		metric.WithDescription("number of no-data conditions reported by charts")); err != nil {
		ret.l.Warn("could not create counter", log.ErrorField(err))
		ret.conditions = noop.Int64Counter{}
	}
	return ret
}

func (p *Processor) startSpan(
	ctx context.Context,
	chart string,
	attrs ...attribute.KeyValue,
) (context.Context, trace.Span) {
	ctx, span := p.tracer.Start(ctx, chart, trace.WithAttributes(attrs...))
	p.charts.Add(ctx, 1, metric.WithAttributes(attribute.String("chart", chart)))
	return ctx, span
}

// report records the outcome of a chart on its span, metrics and log
func (p *Processor) report(
	ctx context.Context,
	span trace.Span,
	chart string,
	cond model.Condition,
	err error,
) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetAttributes(attribute.String("condition", cond.String()))
	if cond != model.ConditionOK {
		p.conditions.Add(ctx, 1, metric.WithAttributes(
			attribute.String("chart", chart),
			attribute.String("condition", cond.String())))
		p.l.Info("chart has no data",
			log.String("chart", chart), log.Stringer("condition", cond))
	}
}

func (p *Processor) telemetry(ctx context.Context, lap *model.Lap) (*model.Telemetry, error) {
	if p.source == nil {
		return nil, ErrNoTelemetrySource
	}
	return p.source.Telemetry(ctx, lap.Key())
}
