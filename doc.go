// Package hll estimates the number of distinct elements in a data stream
// using sublinear memory.
//
// A Sketch keeps a fixed array of registers indexed by a prefix of each
// element's hash; every register records the longest run of leading zero
// bits seen among the elements routed to it. The estimate is derived from
// the harmonic mean of the register values, with a linear-counting
// fallback while many registers are still untouched.
//
// Two register layouts are available: a standard layout with one machine
// word per register, and a packed layout with five bits per register.
// Both produce identical estimates for the same inputs; they differ only
// in memory footprint.
package hll
