package clock

import (
	"testing"
	"time"
)

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

func TestAdvanceScenario(t *testing.T) {
	c := New(ms(150))

	frames := []struct {
		ts        time.Duration
		wantTicks int
		wantAcc   time.Duration
	}{
		{ms(0), 0, 0},
		{ms(140), 0, ms(140)},
		{ms(300), 2, 0},
	}

	for _, f := range frames {
		if got := c.Advance(f.ts); got != f.wantTicks {
			t.Errorf("Frame at %v: expected %d ticks, got %d", f.ts, f.wantTicks, got)
		}
		if c.Accumulated() != f.wantAcc {
			t.Errorf("Frame at %v: expected accumulator %v, got %v", f.ts, f.wantAcc, c.Accumulated())
		}
	}
}

func TestFirstFrameIsBaseline(t *testing.T) {
	c := New(ms(150))
	if c.Started() {
		t.Fatal("Fresh clock should have no baseline")
	}
	if got := c.Advance(ms(10_000)); got != 0 {
		t.Errorf("Expected no ticks on baseline frame, got %d", got)
	}
	if !c.Started() {
		t.Error("Baseline should be recorded")
	}
	if got := c.Advance(ms(10_150)); got != 1 {
		t.Errorf("Expected 1 tick, got %d", got)
	}
}

func TestAccumulatorInvariant(t *testing.T) {
	c := New(ms(150))
	deltas := []int{16, 17, 16, 33, 0, 250, 1, 149, 151, 1000, 7, 16, 300, 450, 16}

	ts := time.Duration(0)
	c.Advance(ts)
	total := 0
	for _, d := range deltas {
		ts += ms(d)
		total += c.Advance(ts)
		if c.Accumulated() < 0 || c.Accumulated() >= c.Interval() {
			t.Fatalf("Accumulator %v out of [0, %v) at %v", c.Accumulated(), c.Interval(), ts)
		}
	}

	// Every consumed millisecond is accounted for: ticks*interval + remainder.
	if time.Duration(total)*c.Interval()+c.Accumulated() != ts {
		t.Errorf("Expected %v of simulated time, got %d ticks + %v", ts, total, c.Accumulated())
	}
}

func TestCatchUpAfterStall(t *testing.T) {
	c := New(ms(150))
	c.Advance(0)
	if got := c.Advance(ms(1500)); got != 10 {
		t.Errorf("Expected 10 catch-up ticks, got %d", got)
	}
}

func TestResetDropsPendingTime(t *testing.T) {
	c := New(ms(150))
	c.Advance(ms(0))
	c.Advance(ms(120))

	c.Reset()
	if c.Accumulated() != 0 || c.Started() {
		t.Fatalf("Reset should clear state, got acc=%v started=%v", c.Accumulated(), c.Started())
	}

	// A long gap after reset is a new baseline, not a burst.
	if got := c.Advance(ms(60_000)); got != 0 {
		t.Errorf("Expected 0 ticks after reset, got %d", got)
	}
	if got := c.Advance(ms(60_100)); got != 0 {
		t.Errorf("Expected 0 ticks, got %d", got)
	}
}

func TestBackwardsTimestamp(t *testing.T) {
	c := New(ms(150))
	c.Advance(ms(500))
	c.Advance(ms(600))
	if got := c.Advance(ms(100)); got != 0 {
		t.Errorf("Expected 0 ticks for backwards time, got %d", got)
	}
	if c.Accumulated() != ms(100) {
		t.Errorf("Expected accumulator unchanged at 100ms, got %v", c.Accumulated())
	}
	if got := c.Advance(ms(150)); got != 1 {
		t.Errorf("Expected new baseline at 100ms to yield 1 tick, got %d", got)
	}
}

func TestNonPositiveIntervalNeverTicks(t *testing.T) {
	c := New(0)
	c.Advance(0)
	if got := c.Advance(time.Second); got != 0 {
		t.Errorf("Expected 0 ticks, got %d", got)
	}
}
