package circuit

import "errors"

// Sentinel errors surfaced by container operations. Callers match them with
// errors.Is; none of them indicates corrupted state.
var (
	// ErrNotFound means an operation referenced a component, wire or
	// terminal that does not exist in the circuit.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyConnected means a wire endpoint was aimed at a terminal
	// that already has a wire attached.
	ErrAlreadyConnected = errors.New("terminal already connected")

	// ErrSelfConnection means both wire endpoints referenced the same
	// terminal.
	ErrSelfConnection = errors.New("cannot connect a terminal to itself")

	// ErrDegenerateWire means a route or edit would collapse a wire to a
	// single point, for example two terminals at the same position.
	ErrDegenerateWire = errors.New("wire would collapse to a point")
)
