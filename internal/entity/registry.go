// Package entity provides opaque handles to positioned objects owned by the
// host world. The simulation reads and writes positions through a Registry
// and never owns the objects themselves.
package entity

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrMissingEntity is returned when a handle no longer resolves to an object.
var ErrMissingEntity = errors.New("missing entity")

// Handle identifies an entity. The zero handle never refers to an entity.
type Handle uint64

// None is the zero handle.
const None Handle = 0

// Registry is the host contract the simulation talks to.
// Implementations need not be safe for concurrent use; the simulation drives
// them from a single goroutine.
type Registry interface {
	// Create allocates a renderable object at pos and returns its handle.
	Create(pos core.Vec, tag core.Tag) Handle

	// Position returns the world position of h.
	Position(h Handle) (core.Vec, error)

	// SetPosition moves h to pos.
	SetPosition(h Handle, pos core.Vec) error

	// Destroy removes h.
	Destroy(h Handle) error

	// SetColor changes the color the host draws h with.
	SetColor(h Handle, c core.Color) error
}

func missing(h Handle) error {
	return fmt.Errorf("entity: handle %d: %w", h, ErrMissingEntity)
}
