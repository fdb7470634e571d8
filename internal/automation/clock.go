package automation

import "time"

// Clock abstracts wall-clock reads so rate-limit and time-window checks can
// be tested without real time passing.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads real wall-clock time.
var SystemClock Clock = systemClock{}
