package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mpapenbr/trackdelta/log"
	"github.com/mpapenbr/trackdelta/pkg/model"
	"github.com/mpapenbr/trackdelta/pkg/utils/cache"
	"github.com/mpapenbr/trackdelta/pkg/utils/cache/loadercache"
)

var ErrTelemetryNotFound = errors.New("telemetry not found")

type (
	SourceOption func(*Source)
	// Source loads lap telemetry lazily. Inline telemetry of the session file
	// is used first, otherwise <dir>/<driver>_<lap>.json is read.
	Source struct {
		dir    string
		inline map[model.LapKey][]model.TelemetrySample
		cache  cache.Cache[model.LapKey, model.Telemetry]
		expire time.Duration
		l      *log.Logger
	}
)

func WithLogger(l *log.Logger) SourceOption {
	return func(s *Source) {
		s.l = l
	}
}

// WithExpiration reloads telemetry files after d (0 keeps them forever)
func WithExpiration(d time.Duration) SourceOption {
	return func(s *Source) {
		s.expire = d
	}
}

func NewSource(
	dir string,
	inline map[model.LapKey][]model.TelemetrySample,
	opts ...SourceOption,
) *Source {
	ret := &Source{
		dir:    dir,
		inline: inline,
		l:      log.Default().Named("session"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	ret.cache = loadercache.New(
		loadercache.WithLoader[model.LapKey, model.Telemetry](ret.load),
		loadercache.WithExpiration[model.LapKey, model.Telemetry](ret.expire),
		loadercache.WithLogger[model.LapKey, model.Telemetry](ret.l.Named("cache")),
	)
	return ret
}

// Telemetry returns a private copy of the lap telemetry.
func (s *Source) Telemetry(ctx context.Context, key model.LapKey) (*model.Telemetry, error) {
	t, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return t.Clone(), nil
}

func (s *Source) load(ctx context.Context, key model.LapKey) (*model.Telemetry, error) {
	if samples, ok := s.inline[key]; ok {
		return model.NewTelemetry(samples), nil
	}
	path := filepath.Join(s.dir, key.String()+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTelemetryNotFound, key)
		}
		return nil, err
	}
	var samples []model.TelemetrySample
	if err := json.Unmarshal(data, &samples); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidSession, path, err)
	}
	log.GetFromContext(ctx).Debug("loaded telemetry",
		log.String("lap", key.String()), log.Int("samples", len(samples)))
	return model.NewTelemetry(samples), nil
}
