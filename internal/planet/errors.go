package planet

import "errors"

var (
	// ErrDivision indicates a planet-year computation over a planet whose
	// year length is unknown or not positive.
	ErrDivision = errors.New("division by unknown year length")
	// ErrUnknownValue indicates arithmetic over a field the planet does not carry.
	ErrUnknownValue = errors.New("unknown value")
)
