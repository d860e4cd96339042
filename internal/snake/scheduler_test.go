package snake

import (
	"testing"
	"time"
)

func TestTicker(t *testing.T) {
	tk := NewTicker(100 * time.Millisecond)

	steps := []struct {
		elapsed time.Duration
		fires   bool
	}{
		{40 * time.Millisecond, false},
		{40 * time.Millisecond, false},
		{40 * time.Millisecond, true}, // 120ms, excess dropped
		{80 * time.Millisecond, false},
		{20 * time.Millisecond, true},
		{time.Second, true},
		{0, false},
		{-time.Second, false},
		{100 * time.Millisecond, true},
	}

	for i, s := range steps {
		if got := tk.Advance(s.elapsed); got != s.fires {
			t.Errorf("step %d: Advance(%v) = %v, expected %v", i, s.elapsed, got, s.fires)
		}
	}
}

func TestTickerSetIntervalKeepsAccumulator(t *testing.T) {
	tk := NewTicker(100 * time.Millisecond)
	tk.Advance(60 * time.Millisecond)

	tk.SetInterval(50 * time.Millisecond)
	if tk.Pending() != 60*time.Millisecond {
		t.Errorf("Pending() = %v, expected 60ms", tk.Pending())
	}
	if !tk.Advance(0) {
		t.Error("accumulated time already covers the shorter interval")
	}

	tk.Advance(30 * time.Millisecond)
	tk.Reset()
	if tk.Pending() != 0 {
		t.Errorf("Pending() after Reset = %v", tk.Pending())
	}
}
