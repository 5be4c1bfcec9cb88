package core

import "errors"

// ErrDegenerateVector reports an attempt to normalize a zero-length vector,
// such as a shadow probe toward a light coincident with the hit point.
// Surfaced as an error instead of propagating a non-finite value.
var ErrDegenerateVector = errors.New("degenerate zero-length vector")
