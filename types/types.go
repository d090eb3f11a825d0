// Package types holds the data transfer types shared between the control
// loop, the HAL and the host relay. Keep this package free of behaviour.
package types

// ------------------------
// Position & motion
// ------------------------

// Vec3 is a point or target in meters, world frame.
type Vec3 struct {
	X float32
	Y float32
	Z float32
}

// AngularRate is one gyroscope sample in degrees per second, as delivered
// by the sensor. Yaw is rotation about the vertical axis, Pitch about the
// lateral axis. Conversion to radians happens in the estimator.
type AngularRate struct {
	Yaw   float32
	Pitch float32
}

// ------------------------
// Ambient
// ------------------------

// AmbientReading is one environmental sample.
type AmbientReading struct {
	TempC      float32
	HumidityRH float32
}
