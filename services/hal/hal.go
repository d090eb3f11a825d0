// Package hal defines the hardware boundary of the firmware: indicator
// actuation, sensor sampling, the serial console and the monotonic clock.
// Board wiring lives in the boards subpackage behind build tags; everything
// above this boundary is hardware-free and testable on the host.
package hal

import (
	"io"

	"navcode-go/types"
)

// Actuator drives the indicator hardware. Callers always work in logical
// 0..255 color space and logical on/off; any electrical inversion
// (active-low drive) stays inside the implementation.
type Actuator interface {
	// SetLED drives the plain binary indicator.
	SetLED(on bool)
	// SetColor drives the tri-color indicator.
	SetColor(r, g, b uint8)
	// AllOff extinguishes the tri-color indicator.
	AllOff()
}

// IMU supplies instantaneous angular-rate samples.
// ok=false means no fresh sample this tick; that is not an error.
type IMU interface {
	Init() error
	AngularRate() (types.AngularRate, bool)
}

// EnvSensor supplies ambient readings.
// ok=false means the reading is unavailable this tick; callers keep the
// last-known value.
type EnvSensor interface {
	Init() error
	Ambient() (types.AmbientReading, bool)
}

// Console is the byte-stream command/telemetry link. The read side mirrors
// machine.Serial so board glue is a thin cast: Buffered reports bytes
// already received, ReadByte never blocks when Buffered > 0.
type Console interface {
	io.Writer
	Buffered() int
	ReadByte() (byte, error)
}

// Clock is a monotonic time source with wrapping uint32 counters.
// Interval math on these values must use x/timex.
type Clock interface {
	Millis() uint32
	Micros() uint32
}
