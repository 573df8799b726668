// SPDX-License-Identifier: MIT

package bench

import "time"

// Clock measures timing windows. Implementations must be monotonic.
type Clock interface {
	Now() time.Time
	Since(start time.Time) time.Duration
}

// SystemClock reads the runtime clock. time.Now carries a monotonic reading,
// so Since is immune to wall-clock adjustments.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// Since returns the time elapsed since start.
func (SystemClock) Since(start time.Time) time.Duration { return time.Since(start) }
