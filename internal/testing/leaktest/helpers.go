// Package leaktest checks that background goroutines exit when tests stop
// the components that started them.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// DefaultSettle is how long Check waits for goroutines to wind down
const DefaultSettle = 500 * time.Millisecond

// GoroutineChecker compares the goroutine count against a baseline
type GoroutineChecker struct {
	before int
	settle time.Duration
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count as the baseline
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		settle: DefaultSettle,
		t:      t,
	}
}

// Check fails the test if more than tolerance goroutines are still running
// after the settle period. It returns as soon as the count is back in range.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(g.settle)
	var after int
	for {
		runtime.Gosched()
		after = runtime.NumGoroutine()
		if after-g.before <= tolerance || time.Now().After(deadline) {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}
