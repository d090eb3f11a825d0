// Package controller owns the firmware control loop. It wires the position
// estimator, target tracker, command parser and telemetry reporter over the
// hardware boundary and runs them in a fixed order every tick.
package controller

import (
	"context"
	"time"

	"navcode-go/errcode"
	"navcode-go/nav"
	"navcode-go/services/command"
	"navcode-go/services/hal"
	"navcode-go/services/telemetry"
)

const commandSummary = "Commands: LED=ON|OFF, RGB=R,G,B (0-255), GOTO=x,y,z"

type Controller struct {
	clk hal.Clock
	imu hal.IMU
	env hal.EnvSensor
	act hal.Actuator
	con hal.Console

	est *nav.Estimator
	trk *nav.Tracker
	par *command.Parser
	rep *telemetry.Reporter
}

func New(p nav.Params, clk hal.Clock, imu hal.IMU, env hal.EnvSensor, act hal.Actuator, con hal.Console) *Controller {
	st := &nav.State{}
	trk := nav.NewTracker(st, p, act, con)
	return &Controller{
		clk: clk,
		imu: imu,
		env: env,
		act: act,
		con: con,
		est: nav.NewEstimator(st, p, trk),
		trk: trk,
		par: command.NewParser(act, trk, con),
		rep: telemetry.NewReporter(env, st, trk, con, p.ReportIntervalMs),
	}
}

// Boot initializes the hardware collaborators exactly once. Each failed
// sensor is reported on its own line; if any failed the controller must not
// be run and the caller halts the device. Init is never retried.
func (c *Controller) Boot() error {
	c.act.AllOff()
	c.act.SetLED(false)

	failed := false
	if err := c.imu.Init(); err != nil {
		c.writeLine("ERR=" + string(errcode.IMUInit))
		failed = true
	}
	if err := c.env.Init(); err != nil {
		c.writeLine("ERR=" + string(errcode.EnvInit))
		failed = true
	}
	if failed {
		c.writeLine("ERR=" + string(errcode.InitFailed))
		return errcode.InitFailed
	}

	c.writeLine("READY")
	c.writeLine(commandSummary)
	return nil
}

// Tick runs one pass of the control loop. The order is load-bearing: a
// command dispatched this tick (a new GOTO) is visible to the telemetry
// frame emitted in the same tick.
func (c *Controller) Tick() {
	sample, ok := c.imu.AngularRate()
	c.est.Update(c.clk.Micros(), sample, ok)

	nowMs := c.clk.Millis()
	c.trk.CheckArrival(nowMs)
	c.trk.CheckCooldown(nowMs)

	c.par.Poll(c.con)

	c.rep.MaybeEmit(c.clk.Millis())
}

// Run ticks until ctx is done. The short sleep keeps the loop cooperative
// without starving the serial receive path.
func (c *Controller) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		c.Tick()
		time.Sleep(time.Millisecond)
	}
}

func (c *Controller) writeLine(s string) {
	c.con.Write([]byte(s + "\r\n"))
}
