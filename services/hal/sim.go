package hal

import (
	"math"
	"time"

	"navcode-go/types"
)

// SimIMU generates smooth, bounded angular rates for bench targets without
// inertial hardware. The rates sweep slowly through the deadband so both
// the hold and the integrate paths get exercised.
type SimIMU struct {
	start time.Time
}

func NewSimIMU() *SimIMU { return &SimIMU{start: time.Now()} }

func (s *SimIMU) Init() error { return nil }

func (s *SimIMU) AngularRate() (types.AngularRate, bool) {
	e := time.Since(s.start).Seconds()
	return types.AngularRate{
		Yaw:   float32(20 * math.Sin(e*0.5)),
		Pitch: float32(5 * math.Cos(e*0.3)),
	}, true
}
