// Package fill repairs gaps in a single telemetry channel.
package fill

import (
	"errors"

	"github.com/aarondl/opt/null"

	"github.com/mpapenbr/trackdelta/pkg/model"
)

// ErrAllMissing is returned when a channel has no known value at all.
// The returned series is still entirely missing in that case.
var ErrAllMissing = errors.New("all values of channel are missing")

// Fill returns a copy of s without missing entries.
//
// Interior gaps are interpolated linearly by index between the nearest known
// neighbours. A gap at the end takes the last known value, a gap at the start
// takes the first known value. The input is not modified.
func Fill(s model.Series) (model.Series, error) {
	ret := s.Clone()
	if len(ret) == 0 {
		return ret, nil
	}
	if ret.Known() == 0 {
		return ret, ErrAllMissing
	}
	interpolate(ret)
	backFill(ret)
	forwardFill(ret)
	return ret, nil
}

// Values fills s and unwraps the result.
func Values(s model.Series) ([]float64, error) {
	filled, err := Fill(s)
	if err != nil {
		return nil, err
	}
	ret := make([]float64, len(filled))
	for i := range filled {
		ret[i] = filled[i].MustGet()
	}
	return ret, nil
}

// Missing returns the number of missing entries.
func Missing(s model.Series) int {
	return len(s) - s.Known()
}

// interpolate fills gaps enclosed by known values only
func interpolate(s model.Series) {
	prev := -1
	for i := range s {
		if s[i].IsNull() {
			continue
		}
		if prev >= 0 && i-prev > 1 {
			from := s[prev].MustGet()
			to := s[i].MustGet()
			step := (to - from) / float64(i-prev)
			for j := prev + 1; j < i; j++ {
				s[j] = null.From(from + step*float64(j-prev))
			}
		}
		prev = i
	}
}

// backFill propagates the next known value backwards (covers a leading gap)
func backFill(s model.Series) {
	var next null.Val[float64]
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].IsValue() {
			next = s[i]
		} else if next.IsValue() {
			s[i] = next
		}
	}
}

// forwardFill propagates the last known value forward (covers a trailing gap)
func forwardFill(s model.Series) {
	var last null.Val[float64]
	for i := range s {
		if s[i].IsValue() {
			last = s[i]
		} else if last.IsValue() {
			s[i] = last
		}
	}
}
