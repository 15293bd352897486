package engine

import "errors"

// Domain errors for engine operations.
var (
	// ErrNilSurface indicates New or Resume got no drawing surface.
	ErrNilSurface = errors.New("engine: nil drawing surface")

	// ErrSurfaceLost indicates the drawing surface failed mid-tick; the
	// engine is now suspended.
	ErrSurfaceLost = errors.New("engine: drawing surface lost")

	// ErrSuspended indicates Tick was called while suspended; call Resume
	// with a fresh surface first.
	ErrSuspended = errors.New("engine: suspended")
)
