// Package verlet implements a position based particle solver: Verlet integration
// under gravity and damping, followed by a fixed number of in-place relaxation
// sweeps that pull constrained point pairs back toward their rest length.
//
// Points and constraints live in append-only arenas and are addressed by index,
// so an index handed out by AddPoint stays valid for the lifetime of the System.
// The System is not safe for concurrent use; it is driven by a single frame loop.
package verlet
