package nav

import (
	"io"

	"navcode-go/types"
	"navcode-go/x/timex"
)

// TrackerState is the goal-seeking state. Exactly one tracker exists per
// process.
type TrackerState uint8

const (
	StateInactive TrackerState = iota
	StateSeeking
	// StateReached covers the post-arrival indicator hold: the cooldown
	// timer arms on the same tick the threshold is crossed, so "cooling
	// down" is reached-with-an-armed-timer, not a separate state.
	StateReached
)

func (s TrackerState) String() string {
	switch s {
	case StateSeeking:
		return "seeking"
	case StateReached:
		return "reached"
	default:
		return "inactive"
	}
}

// Indicator is the slice of the actuator the tracker drives. Values are
// logical 0..255; electrical polarity is the actuator's business.
type Indicator interface {
	SetColor(r, g, b uint8)
	AllOff()
}

// Arrival indicator color.
const (
	arrivedR = 255
	arrivedG = 0
	arrivedB = 0
)

// Tracker owns the active target and the arrival/completion signaling.
// None of its transitions can fail; malformed coordinates are rejected
// upstream by the command parser.
type Tracker struct {
	st  *State
	p   Params
	ind Indicator
	out io.Writer

	target      types.Vec3
	hasTarget   bool
	reached     bool
	reachedAtMs uint32
}

func NewTracker(st *State, p Params, ind Indicator, out io.Writer) *Tracker {
	return &Tracker{st: st, p: p, ind: ind, out: out}
}

func (t *Tracker) State() TrackerState {
	switch {
	case !t.hasTarget:
		return StateInactive
	case t.reached:
		return StateReached
	default:
		return StateSeeking
	}
}

// Seeking reports whether position integration is active.
func (t *Tracker) Seeking() bool { return t.hasTarget && !t.reached }

// Target returns the active target, if any.
func (t *Tracker) Target() (types.Vec3, bool) { return t.target, t.hasTarget }

// DistanceToTarget is only meaningful while a target is set.
func (t *Tracker) DistanceToTarget() float32 { return Distance(t.st.Pos, t.target) }

// SetTarget arms seeking with a fresh target from any state. An in-flight
// cooldown is cancelled: its indicator light goes out and no completion
// line is emitted for the interrupted episode.
func (t *Tracker) SetTarget(v types.Vec3) {
	if t.reached {
		t.ind.AllOff()
	}
	t.target = v
	t.hasTarget = true
	t.reached = false
}

// CheckArrival fires the Seeking→Reached transition at most once per
// episode. Reports whether the transition fired this tick.
func (t *Tracker) CheckArrival(nowMs uint32) bool {
	if !t.Seeking() {
		return false
	}
	if t.DistanceToTarget() > t.p.TargetThresholdM {
		return false
	}
	t.reached = true
	t.reachedAtMs = nowMs
	t.ind.SetColor(arrivedR, arrivedG, arrivedB)
	writeLine(t.out, "ACK=TARGET_REACHED")
	return true
}

// CheckCooldown clears the target once the indicator hold expires.
// Reports whether the episode completed this tick.
func (t *Tracker) CheckCooldown(nowMs uint32) bool {
	if !t.reached {
		return false
	}
	if !timex.Expired(nowMs, t.reachedAtMs, t.p.LEDOnDurationMs) {
		return false
	}
	t.ind.AllOff()
	t.reached = false
	t.hasTarget = false
	writeLine(t.out, "ACK=TARGET_COMPLETE")
	return true
}

func writeLine(w io.Writer, s string) {
	_, _ = w.Write(append([]byte(s), '\r', '\n'))
}
