package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"moul.io/zapfilter"
)

// WithFilterRules restricts output per logger name and level.
// Rules use the zapfilter syntax, for example "info+:* debug+:processing*".
// An empty rule string keeps everything. The rules cannot lower the level of the
// wrapped core, build it at debug level to let them enable debug output.
func WithFilterRules(rules string) (Option, error) {
	if rules == "" {
		return zap.WrapCore(func(c zapcore.Core) zapcore.Core { return c }), nil
	}
	filter, err := zapfilter.ParseRules(rules)
	if err != nil {
		return nil, err
	}
	return zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return zapfilter.NewFilteringCore(c, filter)
	}), nil
}
