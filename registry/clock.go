package registry

import "time"

// Clock source of current time for the lifecycle engine
//
// The engine trusts this as the authoritative monotonic clock; injecting it
// lets tests steer the unlock boundary deterministically.
type Clock interface {
	// Now the current time
	Now() time.Time
}

// systemClock implements Clock using the host wall clock
type systemClock struct{}

// Now the current time
func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock define a Clock backed by the host wall clock
func SystemClock() Clock {
	return systemClock{}
}
