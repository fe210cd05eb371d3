package model

import "fmt"

var sessionKinds = map[string]string{
	"R":   "Race",
	"Q":   "Qualifying",
	"S":   "Sprint",
	"SQ":  "Sprint Qualifying",
	"FP1": "Practice 1",
	"FP2": "Practice 2",
	"FP3": "Practice 3",
}

type Session struct {
	Year        int
	EventName   string
	SessionCode string // R, Q, FP1, ...
	Laps        Laps
}

// Kind returns the readable name of the session code.
func (s *Session) Kind() string {
	if k, ok := sessionKinds[s.SessionCode]; ok {
		return k
	}
	return s.SessionCode
}

func (s *Session) Title() string {
	return fmt.Sprintf("%s %d %s", s.EventName, s.Year, s.Kind())
}
