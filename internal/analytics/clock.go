package analytics

import "time"

// Clock supplies the current instant. The engine never reads the wall clock
// directly.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the local wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ZoneClock reads the wall clock in a fixed location, so calendar days
// follow that zone instead of the machine's.
type ZoneClock struct {
	Location *time.Location
}

// Now returns time.Now() in the clock's location.
func (c ZoneClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// FixedClock always returns the same instant.
type FixedClock time.Time

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return time.Time(c)
}
