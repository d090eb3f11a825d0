// Package shmring provides a single-producer single-consumer byte ring.
// The producer is typically a UART reader goroutine; the consumer is the
// control loop draining bytes without blocking.
package shmring

import "sync/atomic"

// Ring is an SPSC byte ring. Size must be a power of two.
// Neither side blocks: writes beyond available space are dropped short,
// reads report absence.
type Ring struct {
	buf  []byte
	mask uint32
	rd   atomic.Uint32 // consumer index, monotonic
	wr   atomic.Uint32 // producer index, monotonic
}

func New(size int) *Ring {
	if size < 2 || size&(size-1) != 0 {
		panic("shmring: size must be a power of two >= 2")
	}
	return &Ring{buf: make([]byte, size), mask: uint32(size - 1)}
}

// Buffered returns the number of readable bytes.
func (r *Ring) Buffered() int {
	return int(r.wr.Load() - r.rd.Load())
}

// TryWriteFrom copies as much of p as fits and returns the count.
// Producer side only.
func (r *Ring) TryWriteFrom(p []byte) int {
	rd := r.rd.Load()
	wr := r.wr.Load()
	space := len(r.buf) - int(wr-rd)
	n := len(p)
	if n > space {
		n = space
	}
	for i := 0; i < n; i++ {
		r.buf[(wr+uint32(i))&r.mask] = p[i]
	}
	r.wr.Store(wr + uint32(n))
	return n
}

// TryReadByte pops one byte if available. Consumer side only.
func (r *Ring) TryReadByte() (byte, bool) {
	rd := r.rd.Load()
	if r.wr.Load() == rd {
		return 0, false
	}
	b := r.buf[rd&r.mask]
	r.rd.Store(rd + 1)
	return b, true
}
