package carousel

import "time"

// Timer is a pending callback that can be cancelled.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks. The carousel only needs one-shot timers; the
// recurring autoplay interval is built by re-arming.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// SystemClock runs callbacks on the Go runtime timer.
type SystemClock struct{}

// AfterFunc implements Clock.
func (SystemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
