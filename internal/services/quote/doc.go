// Package quote prices one order from raw form input: admission, a
// settings snapshot, then the pure computation.
package quote
