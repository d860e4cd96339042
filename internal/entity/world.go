package entity

import (
	"sort"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Entity is the data a World keeps for one handle.
type Entity struct {
	Handle Handle
	Pos    core.Vec
	Tag    core.Tag
	Color  core.Color
}

// World is an in-memory Registry. Hosts use it directly as their scene and
// read it back when drawing.
type World struct {
	nextID   Handle
	entities map[Handle]*Entity
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		nextID:   1,
		entities: make(map[Handle]*Entity),
	}
}

// Create reserves a new handle and stores the entity with its tag's default color.
func (w *World) Create(pos core.Vec, tag core.Tag) Handle {
	h := w.nextID
	w.nextID++
	w.entities[h] = &Entity{
		Handle: h,
		Pos:    pos,
		Tag:    tag,
		Color:  tag.DefaultColor(),
	}
	return h
}

// Position returns the stored position of h.
func (w *World) Position(h Handle) (core.Vec, error) {
	e, ok := w.entities[h]
	if !ok {
		return core.Vec{}, missing(h)
	}
	return e.Pos, nil
}

// SetPosition moves h.
func (w *World) SetPosition(h Handle, pos core.Vec) error {
	e, ok := w.entities[h]
	if !ok {
		return missing(h)
	}
	e.Pos = pos
	return nil
}

// Destroy removes h from the world.
func (w *World) Destroy(h Handle) error {
	if _, ok := w.entities[h]; !ok {
		return missing(h)
	}
	delete(w.entities, h)
	return nil
}

// SetColor recolors h.
func (w *World) SetColor(h Handle, c core.Color) error {
	e, ok := w.entities[h]
	if !ok {
		return missing(h)
	}
	e.Color = c
	return nil
}

// Get returns a copy of the entity stored under h.
func (w *World) Get(h Handle) (Entity, bool) {
	e, ok := w.entities[h]
	if !ok {
		return Entity{}, false
	}
	return *e, true
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return len(w.entities)
}

// Count returns the number of live entities carrying tag.
func (w *World) Count(tag core.Tag) int {
	n := 0
	for _, e := range w.entities {
		if e.Tag == tag {
			n++
		}
	}
	return n
}

// Entities returns copies of all live entities ordered by handle.
func (w *World) Entities() []Entity {
	out := make([]Entity, 0, len(w.entities))
	for _, e := range w.entities {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Handle < out[j].Handle
	})
	return out
}

// Clear removes every entity. Handles are not reused.
func (w *World) Clear() {
	for h := range w.entities {
		delete(w.entities, h)
	}
}

var _ Registry = (*World)(nil)
