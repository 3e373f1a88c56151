package snake

import (
	"testing"
	"time"
)

func TestClockSinglePeriod(t *testing.T) {
	c := NewClock(500 * time.Millisecond)

	c.Tick(200 * time.Millisecond)
	if c.JustFinished() {
		t.Error("Clock should not finish before one period")
	}
	c.Tick(200 * time.Millisecond)
	if c.JustFinished() {
		t.Error("Clock should not finish at 400ms")
	}
	c.Tick(100 * time.Millisecond)
	if !c.JustFinished() || c.TimesFinished() != 1 {
		t.Errorf("Clock should finish once at 500ms, got %d", c.TimesFinished())
	}
	if c.Elapsed() != 0 {
		t.Errorf("Elapsed after exact period = %v, expected 0", c.Elapsed())
	}

	// The event lasts for one Tick only
	c.Tick(time.Millisecond)
	if c.JustFinished() {
		t.Error("JustFinished should reset on the next Tick")
	}
}

func TestClockCarriesRemainder(t *testing.T) {
	c := NewClock(500 * time.Millisecond)

	c.Tick(1250 * time.Millisecond)
	if c.TimesFinished() != 2 {
		t.Errorf("TimesFinished() = %d, expected 2", c.TimesFinished())
	}
	if c.Elapsed() != 250*time.Millisecond {
		t.Errorf("Elapsed() = %v, expected 250ms", c.Elapsed())
	}

	c.Tick(250 * time.Millisecond)
	if c.TimesFinished() != 1 {
		t.Errorf("Carried remainder should complete the next period, got %d", c.TimesFinished())
	}
}

func TestClockNoDrift(t *testing.T) {
	c := NewClock(500 * time.Millisecond)
	frame := time.Second / 60

	var fired uint64
	var total time.Duration
	for range 6000 {
		c.Tick(frame)
		fired += uint64(c.TimesFinished())
		total += frame
	}

	expected := uint64(total / (500 * time.Millisecond))
	if fired != expected {
		t.Errorf("Fired %d times over %v, expected %d", fired, total, expected)
	}
	if c.Total() != fired {
		t.Errorf("Total() = %d, expected %d", c.Total(), fired)
	}
	if c.Elapsed() != total%(500*time.Millisecond) {
		t.Errorf("Elapsed() = %v, expected %v", c.Elapsed(), total%(500*time.Millisecond))
	}
}

func TestClockIgnoresNegativeAndZero(t *testing.T) {
	c := NewClock(500 * time.Millisecond)
	c.Tick(400 * time.Millisecond)
	c.Tick(-time.Second)
	c.Tick(0)

	if c.Elapsed() != 400*time.Millisecond {
		t.Errorf("Elapsed() = %v, expected 400ms", c.Elapsed())
	}
}

func TestClockDefaultPeriod(t *testing.T) {
	if NewClock(0).Period() != DefaultTickPeriod {
		t.Error("Zero period should fall back to DefaultTickPeriod")
	}

	c := NewClock(time.Second)
	c.Tick(3 * time.Second)
	c.Reset()
	if c.Total() != 0 || c.Elapsed() != 0 || c.JustFinished() {
		t.Error("Reset should clear all state")
	}
}
