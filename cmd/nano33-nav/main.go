//go:build nano_33_ble

package main

import (
	"context"

	"navcode-go/nav"
	"navcode-go/services/controller"
	"navcode-go/services/hal"
	"navcode-go/services/hal/boards"
)

func main() {
	act, imu, env, con := boards.Nano33()

	ctl := controller.New(nav.ParamsFor("nano33"), hal.NewClock(), imu, env, act, con)
	if err := ctl.Boot(); err != nil {
		// Startup is never retried. Park the goroutine for good.
		select {}
	}
	ctl.Run(context.Background())
}
