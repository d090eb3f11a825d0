// Package jsonx builds single-line JSON objects without reflection.
//
// encoding/json drags reflect into MCU builds; telemetry frames have a
// fixed shape, so an append-based writer over strconvx is enough. Keys are
// written as-is and must not need escaping.
package jsonx

import "navcode-go/x/strconvx"

// Writer accumulates one JSON value into a caller-provided buffer.
// Reuse the buffer across frames to avoid per-tick allocation.
type Writer struct {
	buf   []byte
	comma []bool // per nesting level: a member was already written
}

// NewWriter wraps buf (length is reset to zero, capacity is kept).
func NewWriter(buf []byte) *Writer {
	return &Writer{buf: buf[:0], comma: make([]bool, 0, 4)}
}

// Bytes returns the encoded value. Valid until the next NewWriter reuse.
func (w *Writer) Bytes() []byte { return w.buf }

func (w *Writer) BeginObject() {
	w.member()
	w.buf = append(w.buf, '{')
	w.comma = append(w.comma, false)
}

func (w *Writer) EndObject() {
	w.buf = append(w.buf, '}')
	w.comma = w.comma[:len(w.comma)-1]
}

// Object opens a nested object member. Close it with EndObject.
func (w *Writer) Object(key string) {
	w.key(key)
	w.buf = append(w.buf, '{')
	w.comma = append(w.comma, false)
}

func (w *Writer) Uint(key string, v uint64) {
	w.key(key)
	w.buf = append(w.buf, strconvx.FormatUint(v, 10)...)
}

func (w *Writer) Int(key string, v int64) {
	w.key(key)
	w.buf = append(w.buf, strconvx.FormatInt(v, 10)...)
}

func (w *Writer) Float(key string, v float64) {
	w.key(key)
	// NaN/Inf are not representable in JSON; emit 0.
	if v != v || v > maxFinite || v < -maxFinite {
		w.buf = append(w.buf, '0')
		return
	}
	w.buf = append(w.buf, strconvx.FormatFloat(v, 'f', -1, 64)...)
}

func (w *Writer) String(key, v string) {
	w.key(key)
	w.buf = append(w.buf, '"')
	for i := 0; i < len(v); i++ {
		switch c := v[i]; c {
		case '"', '\\':
			w.buf = append(w.buf, '\\', c)
		case '\n':
			w.buf = append(w.buf, '\\', 'n')
		case '\r':
			w.buf = append(w.buf, '\\', 'r')
		case '\t':
			w.buf = append(w.buf, '\\', 't')
		default:
			w.buf = append(w.buf, c)
		}
	}
	w.buf = append(w.buf, '"')
}

const maxFinite = 1.7976931348623157e308

func (w *Writer) key(k string) {
	w.member()
	w.buf = append(w.buf, '"')
	w.buf = append(w.buf, k...)
	w.buf = append(w.buf, '"', ':')
}

func (w *Writer) member() {
	if n := len(w.comma); n > 0 {
		if w.comma[n-1] {
			w.buf = append(w.buf, ',')
		}
		w.comma[n-1] = true
	}
}
