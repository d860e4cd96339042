package entity

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestWorldCreateAssignsDistinctHandles(t *testing.T) {
	w := NewWorld()

	a := w.Create(core.Vec{X: 1, Y: 2}, core.TagHead)
	b := w.Create(core.Vec{X: 3, Y: 4}, core.TagBody)

	if a == None || b == None {
		t.Fatal("Create should never return the zero handle")
	}
	if a == b {
		t.Fatalf("handles collide: %d", a)
	}
	if w.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", w.Len())
	}

	e, ok := w.Get(a)
	if !ok {
		t.Fatal("Get should find a freshly created entity")
	}
	if e.Color != core.TagHead.DefaultColor() {
		t.Errorf("new head colored %v, expected %v", e.Color, core.TagHead.DefaultColor())
	}
}

func TestWorldPositionRoundTrip(t *testing.T) {
	w := NewWorld()
	h := w.Create(core.Vec{}, core.TagFood)

	if err := w.SetPosition(h, core.Vec{X: 5, Y: -5}); err != nil {
		t.Fatalf("SetPosition() failed: %v", err)
	}
	pos, err := w.Position(h)
	if err != nil {
		t.Fatalf("Position() failed: %v", err)
	}
	if pos != (core.Vec{X: 5, Y: -5}) {
		t.Errorf("Position() = %+v", pos)
	}
}

func TestWorldMissingEntity(t *testing.T) {
	w := NewWorld()
	h := w.Create(core.Vec{}, core.TagFood)

	if err := w.Destroy(h); err != nil {
		t.Fatalf("Destroy() failed: %v", err)
	}

	tests := []struct {
		name string
		call func() error
	}{
		{"Position", func() error { _, err := w.Position(h); return err }},
		{"SetPosition", func() error { return w.SetPosition(h, core.Vec{}) }},
		{"Destroy", func() error { return w.Destroy(h) }},
		{"SetColor", func() error { return w.SetColor(h, core.ColorRed) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.call(); !errors.Is(err, ErrMissingEntity) {
				t.Errorf("%s on destroyed handle: err = %v, expected ErrMissingEntity", tc.name, err)
			}
		})
	}
}

func TestWorldCountAndEntities(t *testing.T) {
	w := NewWorld()
	w.Create(core.Vec{}, core.TagHead)
	w.Create(core.Vec{}, core.TagBody)
	w.Create(core.Vec{}, core.TagBody)
	food := w.Create(core.Vec{}, core.TagFood)

	if n := w.Count(core.TagBody); n != 2 {
		t.Errorf("Count(body) = %d, expected 2", n)
	}
	if n := w.Count(core.TagFood); n != 1 {
		t.Errorf("Count(food) = %d, expected 1", n)
	}

	all := w.Entities()
	for i := 1; i < len(all); i++ {
		if all[i-1].Handle >= all[i].Handle {
			t.Fatal("Entities() should be ordered by handle")
		}
	}

	w.SetColor(food, core.ColorRed)
	if e, _ := w.Get(food); e.Color != core.ColorRed {
		t.Error("SetColor should be visible through Get")
	}
}

func TestWorldClearDoesNotReuseHandles(t *testing.T) {
	w := NewWorld()
	first := w.Create(core.Vec{}, core.TagHead)

	w.Clear()
	if w.Len() != 0 {
		t.Fatalf("Len() after Clear = %d", w.Len())
	}

	if next := w.Create(core.Vec{}, core.TagHead); next == first {
		t.Error("handles should not be reused after Clear")
	}
}
