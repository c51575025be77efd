package timing

import "time"

// Timer measures elapsed wall-clock time from a fixed start point.
type Timer struct {
	start time.Time
}

// StartTimer returns a timer starting at the current time.
func StartTimer() Timer {
	return Timer{start: time.Now()}
}

// Elapsed returns the duration since the timer started. time.Since uses the
// monotonic clock reading, so the result is never negative.
func (t Timer) Elapsed() time.Duration {
	if t.start.IsZero() {
		return 0
	}
	return time.Since(t.start)
}

// Seconds returns the elapsed time as floating-point seconds.
func (t Timer) Seconds() float64 {
	return t.Elapsed().Seconds()
}

// Measure runs task and returns how long it took.
func Measure(task func()) time.Duration {
	from := time.Now()
	task()
	return time.Since(from)
}
