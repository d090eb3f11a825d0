package nav

import (
	"errors"

	"github.com/andreyvit/tinyjson"
)

// Params are the navigation tuning constants. They are fixed at build time
// per board; nothing here is runtime-negotiable over the protocol.
type Params struct {
	// SpeedMPS is the assumed constant forward speed for dead reckoning.
	// There is no throttle signal and no deceleration near the target.
	SpeedMPS float32

	// ReportIntervalMs is the telemetry cadence.
	ReportIntervalMs uint32

	// GyroDeadbandRad suppresses bias drift: per-axis rates at or below
	// this magnitude (rad/s) are treated as exactly zero.
	GyroDeadbandRad float32

	// TargetThresholdM is the arrival distance in meters.
	TargetThresholdM float32

	// LEDOnDurationMs is how long the arrival indicator stays lit before
	// the target is cleared.
	LEDOnDurationMs uint32
}

func DefaultParams() Params {
	return Params{
		SpeedMPS:         1.0,
		ReportIntervalMs: 1000,
		GyroDeadbandRad:  0.05,
		TargetThresholdM: 1.0,
		LEDOnDurationMs:  10000,
	}
}

var errParamsNotObject = errors.New("params: not a JSON object")

// ApplyJSON overlays the fields present in raw onto p. Absent keys keep
// their current values. Used with the per-board embedded overrides.
func (p *Params) ApplyJSON(raw []byte) error {
	r := tinyjson.Raw(raw)
	val := r.Value()
	r.EnsureEOF()

	m, ok := val.(map[string]any)
	if !ok {
		return errParamsNotObject
	}
	if v, ok := num(m, "speed_mps"); ok {
		p.SpeedMPS = float32(v)
	}
	if v, ok := num(m, "report_interval_ms"); ok {
		p.ReportIntervalMs = uint32(v)
	}
	if v, ok := num(m, "gyro_deadband"); ok {
		p.GyroDeadbandRad = float32(v)
	}
	if v, ok := num(m, "target_threshold_m"); ok {
		p.TargetThresholdM = float32(v)
	}
	if v, ok := num(m, "led_on_duration_ms"); ok {
		p.LEDOnDurationMs = uint32(v)
	}
	return nil
}

func num(m map[string]any, k string) (float64, bool) {
	v, ok := m[k]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
