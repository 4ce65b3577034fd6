package quadrature

import "errors"

// ErrOrderTooSmall is returned when an order below the minimum supported
// quadrature order is requested.
var ErrOrderTooSmall = errors.New("quadrature: order must be at least 2")

// ErrStagnatedRoot is returned by the internal Newton iteration for a
// Legendre root when it fails to converge within the iteration budget.
// NewAbscissas keeps the last iterate and discards this error; it is
// neither returned to callers nor logged.
var ErrStagnatedRoot = errors.New("quadrature: root finding stagnated before converging")
