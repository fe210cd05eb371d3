package analyze

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/trackdelta/log"
	"github.com/mpapenbr/trackdelta/pkg/config"
	"github.com/mpapenbr/trackdelta/pkg/model"
	"github.com/mpapenbr/trackdelta/pkg/output"
	"github.com/mpapenbr/trackdelta/pkg/processing"
	"github.com/mpapenbr/trackdelta/pkg/repository/session"
)

func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "computes the charts of a session",
	}
	cmd.PersistentFlags().StringVarP(&config.SessionFile,
		"session",
		"s",
		"",
		"path to the session file")
	cmd.PersistentFlags().StringVar(&config.Driver1,
		"driver1",
		"",
		"first driver to compare (default: first driver code)")
	cmd.PersistentFlags().StringVar(&config.Driver2,
		"driver2",
		"",
		"second driver to compare (default: second driver code)")
	cmd.PersistentFlags().StringVarP(&config.OutputFormat,
		"output",
		"o",
		output.FormatText,
		"output format (json, yaml, text)")
	cmd.PersistentFlags().StringVar(&config.CacheExpiration,
		"cache-expiration",
		"0s",
		"reload telemetry files after this duration (0 keeps them)")
	_ = cmd.MarkPersistentFlagRequired("session")

	cmd.AddCommand(newChartCmd("all", "all charts",
		func(ctx context.Context, r *run) (any, error) {
			return r.proc.Analyze(ctx, r.sess, r.driverA, r.driverB)
		}))
	cmd.AddCommand(newChartCmd("gearmap", "gear map of the fastest lap",
		func(ctx context.Context, r *run) (any, error) {
			return r.proc.GearMap(ctx, r.sess.Laps)
		}))
	cmd.AddCommand(newChartCmd("telemetry", "telemetry comparison of two drivers",
		func(ctx context.Context, r *run) (any, error) {
			return r.proc.TelemetryComparison(ctx, r.sess.Laps, r.driverA, r.driverB)
		}))
	cmd.AddCommand(newChartCmd("laptimes", "lap time comparison of two drivers",
		func(ctx context.Context, r *run) (any, error) {
			return r.proc.LapTimes(ctx, r.sess.Laps, r.driverA, r.driverB), nil
		}))
	cmd.AddCommand(newChartCmd("qualifying", "qualifying gaps to the fastest lap",
		func(ctx context.Context, r *run) (any, error) {
			return r.proc.Qualifying(ctx, r.sess), nil
		}))
	return cmd
}

type (
	// run holds what a chart command needs
	run struct {
		sess    *model.Session
		source  *session.Source
		proc    *processing.Processor
		driverA string
		driverB string
	}
	chartFunc func(ctx context.Context, r *run) (any, error)
)

func newChartCmd(use, short string, f chartFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := prepare(cmd.Context(), config.Current())
			if err != nil {
				return err
			}
			result, err := f(cmd.Context(), r)
			if err != nil {
				return err
			}
			return output.Write(cmd.OutOrStdout(), config.OutputFormat, result)
		},
	}
}

func prepare(ctx context.Context, cfg config.Config) (*run, error) {
	logger := log.GetFromContext(ctx).Named("analyze")
	sess, source, err := session.Load(cfg.SessionFile,
		session.WithLogger(logger),
		session.WithExpiration(parseDuration(cfg.CacheExpiration, 0)))
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	driverA, driverB := resolveDrivers(sess.Laps.SortedDrivers(), cfg.Driver1, cfg.Driver2)
	logger.Info("session loaded",
		log.String("session", sess.Title()),
		log.Int("laps", len(sess.Laps)),
		log.String("driverA", driverA),
		log.String("driverB", driverB))
	proc := processing.NewProcessor(
		processing.WithTelemetrySource(source),
		processing.WithLogger(logger.Named("processing")))
	return &run{
		sess:    sess,
		source:  source,
		proc:    proc,
		driverA: driverA,
		driverB: driverB,
	}, nil
}

func parseDuration(s string, defaultVal time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		log.Warn("Invalid duration value. Using default",
			log.String("value", s), log.Duration("default", defaultVal))
		return defaultVal
	}
	return d
}
