// SPDX-License-Identifier: MIT

package bench

import "time"

// Timing is one timed traversal: elapsed wall-clock time and the process CPU
// time consumed over the same interval. CPU is zero where the platform
// offers no process CPU clock.
type Timing struct {
	Wall time.Duration
	CPU  time.Duration
}

// measure runs fn once and times it.
func measure(fn func() (float64, error)) (float64, Timing, error) {
	cpu0, _ := processCPUTime()
	start := time.Now()
	v, err := fn()
	wall := time.Since(start)
	cpu1, _ := processCPUTime()

	return v, Timing{Wall: wall, CPU: cpu1 - cpu0}, err
}
