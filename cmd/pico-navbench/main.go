//go:build rp2040

package main

import (
	"context"

	"navcode-go/nav"
	"navcode-go/services/controller"
	"navcode-go/services/hal"
	"navcode-go/services/hal/boards"
)

// Bench build for the Pico rig: simulated IMU, AHT20 ambient sensor,
// indicator on discrete GPIO. Used to exercise the protocol and the tracker
// without the Nano hardware.
func main() {
	act, imu, env, con := boards.PicoBench()

	ctl := controller.New(nav.ParamsFor("picobench"), hal.NewClock(), imu, env, act, con)
	if err := ctl.Boot(); err != nil {
		select {}
	}
	ctl.Run(context.Background())
}
