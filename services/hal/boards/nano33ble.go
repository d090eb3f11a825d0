//go:build nano_33_ble

// Board wiring for the Arduino Nano 33 BLE Sense: LSM9DS1 IMU and HTS221
// temperature/humidity sensor on the internal I2C bus, active-low RGB LED,
// USB CDC console.
package boards

import (
	"errors"
	"machine"

	"tinygo.org/x/drivers/hts221"
	"tinygo.org/x/drivers/lsm9ds1"

	"navcode-go/services/hal"
	"navcode-go/types"
)

// Nano33 configures the board and returns its peripherals. Sensor probing
// is deferred to the Init methods so the boot sequence can report each
// failure on the console before halting.
func Nano33() (hal.Actuator, hal.IMU, hal.EnvSensor, hal.Console) {
	busErr := machine.I2C1.Configure(machine.I2CConfig{
		SCL: machine.SCL1_PIN,
		SDA: machine.SDA1_PIN,
	})

	act := &nanoActuator{}
	act.configure()

	imu := &nanoIMU{busErr: busErr}
	env := &nanoEnv{busErr: busErr}
	return act, imu, env, machine.Serial
}

// ---------------- Actuator ----------------

// The Nano's RGB LED is wired active-low: logical full-on is electrical
// low. That inversion lives here and nowhere else.
type nanoActuator struct {
	pwm           pwmCtrl
	chR, chG, chB uint8
	pwmOK         bool
}

// Local interface over the machine PWM group, avoids the unexported
// concrete type.
type pwmCtrl interface {
	Configure(cfg machine.PWMConfig) error
	Top() uint32
	Channel(pin machine.Pin) (uint8, error)
	Set(channel uint8, value uint32)
}

func (a *nanoActuator) configure() {
	machine.LED.Configure(machine.PinConfig{Mode: machine.PinOutput})
	machine.LED.Low()

	a.pwm = machine.PWM0
	if err := a.pwm.Configure(machine.PWMConfig{}); err != nil {
		a.fallbackPins()
		return
	}
	var err error
	if a.chR, err = a.pwm.Channel(machine.LED_RED); err != nil {
		a.fallbackPins()
		return
	}
	if a.chG, err = a.pwm.Channel(machine.LED_GREEN); err != nil {
		a.fallbackPins()
		return
	}
	if a.chB, err = a.pwm.Channel(machine.LED_BLUE); err != nil {
		a.fallbackPins()
		return
	}
	a.pwmOK = true
	a.AllOff()
}

// fallbackPins drives the RGB pins digitally when PWM setup fails; color
// resolution degrades to on/off per channel but the protocol keeps working.
func (a *nanoActuator) fallbackPins() {
	for _, p := range []machine.Pin{machine.LED_RED, machine.LED_GREEN, machine.LED_BLUE} {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
		p.High() // active-low: high is off
	}
}

func (a *nanoActuator) SetLED(on bool) { machine.LED.Set(on) }

func (a *nanoActuator) SetColor(r, g, b uint8) {
	if !a.pwmOK {
		machine.LED_RED.Set(r < 128)
		machine.LED_GREEN.Set(g < 128)
		machine.LED_BLUE.Set(b < 128)
		return
	}
	top := a.pwm.Top()
	// Inverted duty: 255 logical -> 0% high time.
	a.pwm.Set(a.chR, top*uint32(255-r)/255)
	a.pwm.Set(a.chG, top*uint32(255-g)/255)
	a.pwm.Set(a.chB, top*uint32(255-b)/255)
}

func (a *nanoActuator) AllOff() { a.SetColor(0, 0, 0) }

var errNotConnected = errors.New("boards: sensor not responding")

// ---------------- IMU ----------------

type nanoIMU struct {
	busErr error
	dev    *lsm9ds1.Device
}

func (i *nanoIMU) Init() error {
	if i.busErr != nil {
		return i.busErr
	}
	d := lsm9ds1.New(machine.I2C1)
	if err := d.Configure(lsm9ds1.Configuration{
		AccelRange:      lsm9ds1.ACCEL_2G,
		AccelSampleRate: lsm9ds1.ACCEL_SR_119,
		GyroRange:       lsm9ds1.GYRO_250DPS,
		GyroSampleRate:  lsm9ds1.GYRO_SR_119,
		MagRange:        lsm9ds1.MAG_4G,
		MagSampleRate:   lsm9ds1.MAG_SR_40,
	}); err != nil {
		return err
	}
	i.dev = d
	return nil
}

func (i *nanoIMU) AngularRate() (types.AngularRate, bool) {
	_, gy, gz, err := i.dev.ReadRotation()
	if err != nil {
		return types.AngularRate{}, false
	}
	// Driver reports micro-degrees per second. Z is yaw, Y is pitch.
	return types.AngularRate{
		Yaw:   float32(gz) / 1e6,
		Pitch: float32(gy) / 1e6,
	}, true
}

// ---------------- Environment ----------------

type nanoEnv struct {
	busErr error
	dev    hts221.Device
}

func (e *nanoEnv) Init() error {
	if e.busErr != nil {
		return e.busErr
	}
	e.dev = hts221.New(machine.I2C1)
	e.dev.Configure() // loads calibration, powers on
	if !e.dev.Connected() {
		return errNotConnected
	}
	return nil
}

func (e *nanoEnv) Ambient() (types.AmbientReading, bool) {
	t, err := e.dev.ReadTemperature()
	if err != nil {
		return types.AmbientReading{}, false
	}
	h, err := e.dev.ReadHumidity()
	if err != nil {
		return types.AmbientReading{}, false
	}
	// Milli-degrees and centi-percent from the driver.
	return types.AmbientReading{
		TempC:      float32(t) / 1000,
		HumidityRH: float32(h) / 100,
	}, true
}
