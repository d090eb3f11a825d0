// Package timex provides time helpers for wrapping hardware counters.
//
// The firmware clock is a free-running uint32 counter (milliseconds or
// microseconds depending on the caller). All interval arithmetic must be
// done as unsigned modular subtraction so that a counter overflow between
// two readings still yields the correct delta.
package timex

// Elapsed returns now-since on a wrapping uint32 counter. The result is
// correct modulo 2^32, so it stays valid across a single counter overflow.
func Elapsed(now, since uint32) uint32 { return now - since }

// Expired reports whether at least d counter units have passed since since.
// Never compare wrapped counters with a signed subtraction; use this.
func Expired(now, since, d uint32) bool { return now-since >= d }
