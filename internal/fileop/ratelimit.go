// Package fileop wraps the sss core's Progress contract with operational
// concerns the core itself stays deliberately free of: throttling how
// often a slow terminal/log sink gets redrawn on a large file.
package fileop

import (
	"golang.org/x/time/rate"

	"github.com/lcrostarosa/shamir-vault/internal/sss"
)

// ThrottledProgress wraps an sss.Progress observer so it is invoked at
// most once per tick, regardless of how often the core reports. It is
// adapted from internal/middleware's per-IP rate.Limiter pattern, applied
// here to progress reports instead of HTTP requests: the final value of 1
// is always delivered even if the limiter would otherwise drop it, so a
// caller that renders "100%" on completion never misses it.
//
// This wrapper sits outside internal/sss entirely. The core's own
// Progress contract (exact call count, monotonic values) is unaffected -
// ThrottledProgress only throttles what its *own* downstream observer
// sees, not what GenerateBuffer/InterpolateBuffer themselves compute or
// how many times they call Report internally.
type ThrottledProgress struct {
	next     sss.Progress
	limiter  *rate.Limiter
	delivered float64
}

// NewThrottledProgress returns a Progress that forwards to next at most
// ratePerSecond times per second, always delivering the final 1.0 report.
func NewThrottledProgress(next sss.Progress, ratePerSecond float64) *ThrottledProgress {
	if next == nil {
		next = sss.NoopProgress
	}
	return &ThrottledProgress{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(ratePerSecond), 1),
	}
}

// Report implements sss.Progress.
func (t *ThrottledProgress) Report(fraction float64) {
	if fraction >= 1 {
		t.delivered = 1
		t.next.Report(1)
		return
	}
	if t.limiter.Allow() {
		t.delivered = fraction
		t.next.Report(fraction)
	}
}

// Delivered returns the last fraction actually forwarded to the wrapped
// observer, for tests and diagnostics.
func (t *ThrottledProgress) Delivered() float64 {
	return t.delivered
}

// defaultRate matches the teacher's default HTTP rate-limit order of
// magnitude, repurposed for a human-watchable progress cadence.
const defaultRate = 10.0

// NewDefaultThrottledProgress wraps next with the default progress rate.
func NewDefaultThrottledProgress(next sss.Progress) *ThrottledProgress {
	return NewThrottledProgress(next, defaultRate)
}
