package delta

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// FormatDelta renders a gap to the reference lap.
// Gaps of one second and more are shown as seconds with 3 decimals ("+1.344s"),
// smaller gaps as whole milliseconds ("+999ms").
func FormatDelta(d time.Duration) string {
	ns := decimal.NewFromInt(int64(d))
	if d >= time.Second {
		return "+" + ns.Shift(-9).StringFixed(3) + "s"
	}
	return "+" + ns.Shift(-6).StringFixed(0) + "ms"
}

// FormatLapTime renders a lap time as MM:SS.mmm
func FormatLapTime(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	d = d.Round(time.Millisecond)
	mins := d / time.Minute
	d -= mins * time.Minute
	secs := d / time.Second
	d -= secs * time.Second
	return fmt.Sprintf("%s%02d:%02d.%03d", sign, int64(mins), int64(secs), d.Milliseconds())
}
