package whale

import "time"

// Deadline is the next instant something is allowed to happen.
// Every timed entity and subsystem owns one; there is no central scheduler.
type Deadline struct {
	at time.Time
}

// After returns a deadline d past now.
func After(now time.Time, d time.Duration) Deadline {
	return Deadline{at: now.Add(d)}
}

// Due reports whether now has reached the deadline.
func (d Deadline) Due(now time.Time) bool {
	return !now.Before(d.at)
}

// Reset moves the deadline to d past now.
func (d *Deadline) Reset(now time.Time, after time.Duration) {
	d.at = now.Add(after)
}

// At returns the deadline instant.
func (d Deadline) At() time.Time {
	return d.at
}

// Fire resets the deadline and returns true if it was due.
func (d *Deadline) Fire(now time.Time, next time.Duration) bool {
	if !d.Due(now) {
		return false
	}
	d.Reset(now, next)
	return true
}
