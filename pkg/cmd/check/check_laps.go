package check

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/trackdelta/log"
	"github.com/mpapenbr/trackdelta/pkg/model"
	"github.com/mpapenbr/trackdelta/pkg/processing/delta"
	"github.com/mpapenbr/trackdelta/pkg/repository/session"
)

func NewDisplayLapsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "laps",
		Short: "display laps of a session file (dev only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displayLaps(cmd.Context(), sessionFile)
		},
	}
	cmd.Flags().StringVarP(&sessionFile, "session", "s", "", "path to the session file")
	_ = cmd.MarkFlagRequired("session")

	return cmd
}

func displayLaps(ctx context.Context, path string) error {
	logger := log.GetFromContext(ctx).Named("check")
	logger.Info("display laps", log.String("session", path))
	sess, _, err := session.Load(path, session.WithLogger(logger))
	if err != nil {
		logger.Error("error loading data", log.ErrorField(err))
		return err
	}
	logger.Info("got laps: ", log.Int("count", len(sess.Laps)),
		log.Strings("drivers", sess.Laps.SortedDrivers()))
	for i := range sess.Laps {
		logger.Info("lap", lapFields(&sess.Laps[i])...)
	}
	return nil
}

func lapFields(l *model.Lap) []log.Field {
	ret := []log.Field{
		log.String("driver", l.Driver),
		log.String("team", l.Team),
		log.Int("lap", l.LapNumber),
		log.Bool("deleted", l.Deleted),
	}
	if d, ok := l.LapTime.Get(); ok {
		ret = append(ret, log.String("lapTime", delta.FormatLapTime(d)))
	} else {
		ret = append(ret, log.Stringer("lapTime", model.ConditionUndefinedLapTime))
	}
	return ret
}
