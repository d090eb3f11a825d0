// Package telemetry emits the periodic JSON status frame over the console.
package telemetry

import (
	"io"

	"navcode-go/nav"
	"navcode-go/services/hal"
	"navcode-go/types"
	"navcode-go/x/jsonx"
	"navcode-go/x/timex"
)

// TargetView is the slice of the tracker the reporter needs: whether a
// target is actively being sought and how far away it is.
type TargetView interface {
	Seeking() bool
	DistanceToTarget() float32
}

// Reporter samples ambient readings and the navigation state and writes one
// JSON object per line at a fixed cadence. Sensor hiccups are not report
// failures; the last good ambient reading is reused.
type Reporter struct {
	env     hal.EnvSensor
	st      *nav.State
	trk     TargetView
	out     io.Writer
	period  uint32
	lastMs  uint32
	ambient types.AmbientReading
	scratch [192]byte
}

func NewReporter(env hal.EnvSensor, st *nav.State, trk TargetView, out io.Writer, periodMs uint32) *Reporter {
	return &Reporter{env: env, st: st, trk: trk, out: out, period: periodMs}
}

// MaybeEmit writes a frame if the report interval has elapsed. Returns
// whether a frame was written.
func (r *Reporter) MaybeEmit(nowMs uint32) bool {
	if timex.Elapsed(nowMs, r.lastMs) < r.period {
		return false
	}
	r.lastMs = nowMs

	if a, ok := r.env.Ambient(); ok {
		r.ambient = a
	}

	w := jsonx.NewWriter(r.scratch[:0])
	w.BeginObject()
	w.Uint("timestamp", uint64(nowMs))
	w.Float("temp_c", float64(r.ambient.TempC))
	w.Float("humidity_rh", float64(r.ambient.HumidityRH))
	w.Object("position")
	w.Float("x", float64(r.st.Pos.X))
	w.Float("y", float64(r.st.Pos.Y))
	w.Float("z", float64(r.st.Pos.Z))
	w.EndObject()
	if r.trk.Seeking() {
		w.Float("distance_to_target", float64(r.trk.DistanceToTarget()))
	}
	w.EndObject()

	r.out.Write(append(w.Bytes(), '\r', '\n'))
	return true
}
