package ggpipe

import (
	"errors"
	"fmt"
)

// Composition errors. Errors returned by a contained processor are not
// listed here: they are returned to the caller unchanged.
var (
	// ErrConfiguration is returned when a container cannot be constructed
	// from the given factory or options.
	ErrConfiguration = errors.New("ggpipe: invalid configuration")

	// ErrInvalidMode is returned when a mode value or name does not resolve.
	ErrInvalidMode = errors.New("ggpipe: invalid mode")

	// ErrModeLocked is returned when changing the mode of a fork whose mode
	// is fixed.
	ErrModeLocked = errors.New("ggpipe: mode is locked")

	// ErrUnsupported is returned by optional container operations that a
	// concrete container does not implement.
	ErrUnsupported = errors.New("ggpipe: unsupported operation")

	// ErrBandMismatch is returned when split bands, band labels and resolved
	// processors disagree in number.
	ErrBandMismatch = errors.New("ggpipe: band count mismatch")

	// ErrNotFound is returned when a value or key is not in a container.
	ErrNotFound = errors.New("ggpipe: not found")

	// ErrIndexOutOfRange is returned for a pipeline index outside [0, Len).
	ErrIndexOutOfRange = errors.New("ggpipe: index out of range")
)

// unsupported reports that a container type does not implement op.
func unsupported(container, op string) error {
	return fmt.Errorf("%w: %s.%s", ErrUnsupported, container, op)
}
