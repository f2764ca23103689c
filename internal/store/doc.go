// Package store provides file-based persistence for the pricing settings.
//
// The settings live in a single JSON file under the user's configured home
// directory. Reads are defensive: a missing or undecodable file degrades to
// the default rates, and each field is validated independently so one
// corrupt value never discards the others. Writes go through a temp file
// and rename so a crash cannot leave a half-written record behind. All
// methods are concurrency-safe via internal locking.
package store
