package nav

import (
	"math"

	"navcode-go/types"
	"navcode-go/x/mathx"
	"navcode-go/x/timex"
)

const degToRad = math.Pi / 180

// Gate tells the estimator whether position integration is active.
// The tracker implements it; position only advances while seeking.
type Gate interface {
	Seeking() bool
}

// Estimator integrates angular-rate samples into orientation and
// dead-reckons position at the configured constant forward speed.
type Estimator struct {
	st   *State
	p    Params
	gate Gate

	// primed is false until the first Update after (re)entering the
	// seeking state. That first call only records the reference time, so
	// the idle period before activation never produces a huge dt.
	primed     bool
	lastMicros uint32
}

func NewEstimator(st *State, p Params, gate Gate) *Estimator {
	return &Estimator{st: st, p: p, gate: gate}
}

// Update advances orientation and position by one tick. nowMicros is a
// wrapping microsecond counter. sampleOK=false means the sensor had no
// fresh sample this tick; that is silent degradation, not an error.
func (e *Estimator) Update(nowMicros uint32, sample types.AngularRate, sampleOK bool) {
	if !e.gate.Seeking() {
		e.primed = false
		return
	}
	if !e.primed {
		e.lastMicros = nowMicros
		e.primed = true
		return
	}
	if !sampleOK {
		return
	}

	dt := float32(timex.Elapsed(nowMicros, e.lastMicros)) / 1e6
	e.lastMicros = nowMicros

	yawRate := sample.Yaw * degToRad
	pitchRate := sample.Pitch * degToRad

	// Axes are deadband-filtered independently, not by combined magnitude.
	if mathx.AbsF(yawRate) > e.p.GyroDeadbandRad {
		e.st.Yaw += yawRate * dt
	}
	if mathx.AbsF(pitchRate) > e.p.GyroDeadbandRad {
		e.st.Pitch += pitchRate * dt
	}

	// Unit-speed displacement along the facing direction, spherical to
	// Cartesian.
	sinP, cosP := sincos(e.st.Pitch)
	sinY, cosY := sincos(e.st.Yaw)
	dz := e.p.SpeedMPS * dt * sinP
	dxy := e.p.SpeedMPS * dt * cosP
	e.st.Pos.X += dxy * cosY
	e.st.Pos.Y += dxy * sinY
	e.st.Pos.Z += dz
}

func sincos(a float32) (sin, cos float32) {
	s, c := math.Sincos(float64(a))
	return float32(s), float32(c)
}
