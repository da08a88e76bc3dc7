package postgresadapter

import "time"

// SystemClock supplies wall-clock UTC time to the workspace module.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
