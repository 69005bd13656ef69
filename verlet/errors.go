package verlet

import "errors"

var (
	ErrIndexOutOfRange = errors.New("verlet: point index out of range")
	ErrSamePoint       = errors.New("verlet: constraint needs two distinct points")
)
