package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/entity"
)

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		d, opp Direction
		delta  core.Cell
	}{
		{DirRight, DirLeft, core.Cell{X: 1, Y: 0}},
		{DirLeft, DirRight, core.Cell{X: -1, Y: 0}},
		{DirUp, DirDown, core.Cell{X: 0, Y: -1}},
		{DirDown, DirUp, core.Cell{X: 0, Y: 1}},
	}

	for _, tc := range tests {
		if got := tc.d.Opposite(); got != tc.opp {
			t.Errorf("%v.Opposite() = %v, expected %v", tc.d, got, tc.opp)
		}
		if got := tc.d.Delta(); got != tc.delta {
			t.Errorf("%v.Delta() = %v, expected %v", tc.d, got, tc.delta)
		}
		if sum := tc.d.Delta().Add(tc.opp.Delta()); sum != (core.Cell{}) {
			t.Errorf("%v and %v deltas do not cancel: %v", tc.d, tc.opp, sum)
		}
	}
}

func TestNoReversal(t *testing.T) {
	for _, d := range []Direction{DirRight, DirDown, DirLeft, DirUp} {
		t.Run(d.String(), func(t *testing.T) {
			s := &Snake{body: []entity.Handle{1, 2}, current: d, pending: d, alive: true}

			if s.Request(d.Opposite()) {
				t.Errorf("reversal to %v accepted", d.Opposite())
			}
			if s.Pending() != d {
				t.Errorf("pending changed to %v", s.Pending())
			}

			turn := (d + 1) % 4
			if !s.Request(turn) || s.Pending() != turn {
				t.Errorf("turn to %v rejected", turn)
			}
			if !s.Request(d) || s.Pending() != d {
				t.Errorf("request for current direction %v rejected", d)
			}
		})
	}
}

func TestRequestIgnoredWhenDead(t *testing.T) {
	s := &Snake{body: []entity.Handle{1}, current: DirRight, pending: DirRight, alive: true}
	s.kill(CauseSelf)
	s.kill(CauseWall)

	if s.Request(DirUp) {
		t.Error("dead snake accepted a turn")
	}
	if s.Cause() != CauseSelf {
		t.Errorf("Cause() = %q, expected the first cause", s.Cause())
	}
}

func TestDirectionFromInput(t *testing.T) {
	tests := []struct {
		in   core.Input
		want Direction
		ok   bool
	}{
		{core.InputUp, DirUp, true},
		{core.InputDown, DirDown, true},
		{core.InputLeft, DirLeft, true},
		{core.InputRight, DirRight, true},
		{core.InputNone, DirRight, false},
	}

	for _, tc := range tests {
		got, ok := DirectionFromInput(tc.in)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("DirectionFromInput(%v) = %v, %v", tc.in, got, ok)
		}
	}
}
