package config

// this holds the resolved configuration values from CLI
//
//nolint:lll // readablity
var (
	LogLevel          string // sets the log level (zap log level values)
	LogFormat         string // text vs json
	LogFilter         string // zapfilter rules, e.g. "info+:* debug+:processing*"
	SessionFile       string // path to the session document
	Driver1           string // first driver code of comparisons
	Driver2           string // second driver code of comparisons
	OutputFormat      string // json, yaml or text
	EnableTelemetry   bool   // enable telemetry
	TelemetryEndpoint string // endpoint for telemetry, stdout exporters if empty
	CacheExpiration   string // duration after which loaded telemetry is reloaded
)

// Config holds the configuration values which are used by the application
type Config struct {
	SessionFile     string
	Driver1         string
	Driver2         string
	OutputFormat    string
	CacheExpiration string
}

// Current returns the resolved CLI values as Config
func Current() Config {
	return Config{
		SessionFile:     SessionFile,
		Driver1:         Driver1,
		Driver2:         Driver2,
		OutputFormat:    OutputFormat,
		CacheExpiration: CacheExpiration,
	}
}
