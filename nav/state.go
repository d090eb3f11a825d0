// Package nav implements the dead-reckoning core: the navigation state,
// the position estimator and the target tracker. All mutation happens from
// the single control loop; nothing in this package is safe for concurrent
// use.
package nav

import (
	"math"

	"navcode-go/types"
)

// State is the navigation state owned by the controller and shared by the
// estimator, the tracker and the telemetry reporter.
//
// Yaw and Pitch grow unbounded (they are never wrapped to ±π); only their
// sine and cosine are ever consumed. Pos persists across target changes
// and is never reset implicitly.
type State struct {
	Yaw   float32 // radians
	Pitch float32 // radians
	Pos   types.Vec3
}

// Distance returns the Euclidean distance between a and b in meters.
func Distance(a, b types.Vec3) float32 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	dz := float64(b.Z - a.Z)
	return float32(math.Sqrt(dx*dx + dy*dy + dz*dz))
}
