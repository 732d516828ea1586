//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

// SPDX-License-Identifier: MIT

package bench

import "time"

// processCPUTime is unavailable on this platform.
func processCPUTime() (time.Duration, bool) { return 0, false }
