// Package output writes analysis results as json, yaml or a plain text summary.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/mpapenbr/trackdelta/pkg/processing"
	"github.com/mpapenbr/trackdelta/pkg/processing/delta"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatText = "text"
)

var (
	ErrUnknownFormat = errors.New("unknown output format")
	ErrNoTextLayout  = errors.New("no text layout for value")
)

// Write encodes v to w in the given format
func Write(w io.Writer, format string, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case FormatText:
		return writeText(w, v)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

func writeText(w io.Writer, v any) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	switch data := v.(type) {
	case *processing.Report:
		fmt.Fprintf(tw, "Session:\t%s\n", data.Session)
		fmt.Fprintf(tw, "Run:\t%s\n\n", data.RunID)
		gearMapText(tw, data.GearMap)
		telemetryText(tw, data.Telemetry)
		lapTimesText(tw, data.LapTimes)
		qualifyingText(tw, data.Qualifying)
	case *processing.GearMapChart:
		gearMapText(tw, data)
	case *processing.TelemetryChart:
		telemetryText(tw, data)
	case *processing.LapTimeChart:
		lapTimesText(tw, data)
	case *processing.QualifyingChart:
		qualifyingText(tw, data)
	default:
		return fmt.Errorf("%w: %T", ErrNoTextLayout, v)
	}
	return tw.Flush()
}

func gearMapText(w io.Writer, c *processing.GearMapChart) {
	if c == nil {
		return
	}
	fmt.Fprintf(w, "%s\n", c.Title)
	if c.Header != "" {
		fmt.Fprintf(w, "%s\n", c.Header)
	}
	fmt.Fprintf(w, "Condition:\t%s\n", c.Condition)
	if c.Path != nil {
		fmt.Fprintf(w, "Segments:\t%d\n", len(c.Path.Segments))
		if c.Path.Range != nil {
			fmt.Fprintf(w, "Gears:\t%g - %g\n", c.Path.Range.Min, c.Path.Range.Max)
		}
	}
	fmt.Fprintln(w)
}

func telemetryText(w io.Writer, c *processing.TelemetryChart) {
	if c == nil {
		return
	}
	fmt.Fprintf(w, "%s\n", c.Title)
	fmt.Fprintf(w, "Condition:\t%s\n", c.Condition)
	if c.Comparison != nil {
		fmt.Fprintln(w, "Channel\tDriver\tSamples\tCondition")
		for _, ch := range c.Comparison.Channels {
			for _, t := range ch.Traces {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", ch.Channel, t.Driver, len(t.Points), t.Condition)
			}
			for _, d := range ch.Skipped {
				fmt.Fprintf(w, "%s\t%s\t-\tskipped\n", ch.Channel, d)
			}
		}
	}
	fmt.Fprintln(w)
}

func lapTimesText(w io.Writer, c *processing.LapTimeChart) {
	if c == nil {
		return
	}
	fmt.Fprintf(w, "%s\n", c.Title)
	fmt.Fprintln(w, "Driver\tLap\tTime")
	for _, s := range c.Comparison.Series {
		for _, p := range s.Points {
			fmt.Fprintf(w, "%s\t%d\t%s\n", s.Driver, p.LapNumber, delta.FormatLapTime(p.LapTime))
		}
	}
	fmt.Fprintln(w)
}

func qualifyingText(w io.Writer, c *processing.QualifyingChart) {
	if c == nil {
		return
	}
	fmt.Fprintf(w, "%s\n", c.Title)
	if c.Table.Header != "" {
		fmt.Fprintf(w, "%s\n", c.Table.Header)
	}
	fmt.Fprintln(w, "Pos\tDriver\tTeam\tTime\tDelta")
	for _, r := range c.Table.Rows {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			r.Position, r.Driver, r.Team, delta.FormatLapTime(r.LapTime), r.DeltaText)
	}
	fmt.Fprintln(w)
}
