package model

import "fmt"

// Condition reports expected "no data" situations.
// They are part of a result, callers decide what to omit.
type Condition int

const (
	ConditionOK Condition = iota
	ConditionMissingChannel
	ConditionAllMissingChannel
	ConditionInsufficientSamples
	ConditionNoValidLaps
	ConditionUndefinedLapTime
)

var conditionNames = map[Condition]string{
	ConditionOK:                  "OK",
	ConditionMissingChannel:      "MissingChannel",
	ConditionAllMissingChannel:   "AllMissingChannel",
	ConditionInsufficientSamples: "InsufficientSamples",
	ConditionNoValidLaps:         "NoValidLaps",
	ConditionUndefinedLapTime:    "UndefinedLapTime",
}

func (c Condition) String() string {
	if s, ok := conditionNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Condition(%d)", int(c))
}

func (c Condition) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Condition) UnmarshalText(text []byte) error {
	for k, v := range conditionNames {
		if v == string(text) {
			*c = k
			return nil
		}
	}
	return fmt.Errorf("unknown condition %q", string(text))
}
