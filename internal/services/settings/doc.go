// Package settings manages validation and persistence of the pricing rates.
//
// It applies the same numeric policy to user-entered values that the store
// applies to values read from disk, and keeps the in-memory rates
// authoritative when the durable store misbehaves.
package settings
