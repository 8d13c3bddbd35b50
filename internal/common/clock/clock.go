package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/davrost/arcana/internal/common/clock Clock

// Clock supplies the current time so services can be tested with fixed
// timestamps
type Clock interface {
	Now() time.Time
}

// SystemClock implements the Clock interface using the host's wall clock
type SystemClock struct{}

// Now returns the current time
func (c *SystemClock) Now() time.Time {
	return time.Now()
}
