// Package pricing implements the embroidery price computation and the
// admission policy that stands between raw form input and the engine.
//
// Compute is a pure function of (OrderInput, Settings): no I/O, no rounding,
// total over its declared domain. AdmitOrder guarantees that domain by
// rejecting or defaulting every raw field before an OrderInput exists.
package pricing
