//go:build rp2040

// Bench wiring for a Raspberry Pi Pico rig: AHT20 ambient sensor on i2c0,
// command console on UART0, simulated IMU. Used to exercise the whole
// loop and protocol on hardware that has no inertial sensor.
package boards

import (
	"context"
	"errors"
	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers/aht20"

	"navcode-go/services/hal"
	"navcode-go/types"
	"navcode-go/x/shmring"
)

const benchBaud = 115200

// PicoBench configures the bench rig and returns its peripherals.
func PicoBench() (hal.Actuator, hal.IMU, hal.EnvSensor, hal.Console) {
	busErr := machine.I2C0.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       machine.I2C0_SDA_PIN,
		SCL:       machine.I2C0_SCL_PIN,
	})

	u := uartx.UART0
	_ = u.Configure(uartx.UARTConfig{
		BaudRate: benchBaud,
		TX:       machine.UART0_TX_PIN,
		RX:       machine.UART0_RX_PIN,
	})

	act := &benchActuator{}
	act.configure()

	return act, hal.NewSimIMU(), &benchEnv{busErr: busErr}, newUARTConsole(u)
}

// ---------------- Actuator ----------------

// The bench rig has the onboard LED plus a common-cathode RGB module on
// three GPIOs; no inversion, driven digitally.
type benchActuator struct {
	r, g, b machine.Pin
}

func (a *benchActuator) configure() {
	machine.LED.Configure(machine.PinConfig{Mode: machine.PinOutput})
	machine.LED.Low()
	a.r, a.g, a.b = machine.GP13, machine.GP14, machine.GP15
	for _, p := range []machine.Pin{a.r, a.g, a.b} {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
		p.Low()
	}
}

func (a *benchActuator) SetLED(on bool) { machine.LED.Set(on) }

func (a *benchActuator) SetColor(r, g, b uint8) {
	a.r.Set(r >= 128)
	a.g.Set(g >= 128)
	a.b.Set(b >= 128)
}

func (a *benchActuator) AllOff() { a.SetColor(0, 0, 0) }

// ---------------- Environment ----------------

type benchEnv struct {
	busErr error
	dev    aht20.Device
}

func (e *benchEnv) Init() error {
	if e.busErr != nil {
		return e.busErr
	}
	e.dev = aht20.New(machine.I2C0)
	e.dev.Configure()
	if !e.dev.Connected() {
		return errors.New("boards: aht20 not responding")
	}
	return nil
}

func (e *benchEnv) Ambient() (types.AmbientReading, bool) {
	if err := e.dev.Read(); err != nil {
		return types.AmbientReading{}, false
	}
	return types.AmbientReading{
		TempC:      float32(e.dev.DeciCelsius()) / 10,
		HumidityRH: float32(e.dev.DeciRelHumidity()) / 10,
	}, true
}

// ---------------- Console ----------------

// uartConsole pumps UART RX into an SPSC ring from a reader goroutine; the
// control loop drains the ring without blocking.
type uartConsole struct {
	u    *uartx.UART
	ring *shmring.Ring
}

func newUARTConsole(u *uartx.UART) *uartConsole {
	c := &uartConsole{u: u, ring: shmring.New(256)}
	go c.pump()
	return c
}

func (c *uartConsole) pump() {
	buf := make([]byte, 64)
	for {
		n, err := c.u.RecvSomeContext(context.Background(), buf)
		if err != nil {
			continue
		}
		if n > 0 {
			// Overflow drops bytes; the command parser's own length cap
			// handles torn lines.
			c.ring.TryWriteFrom(buf[:n])
		}
	}
}

func (c *uartConsole) Write(p []byte) (int, error) { return c.u.Write(p) }

func (c *uartConsole) Buffered() int { return c.ring.Buffered() }

var errNoData = errors.New("boards: console read with no data")

func (c *uartConsole) ReadByte() (byte, error) {
	b, ok := c.ring.TryReadByte()
	if !ok {
		return 0, errNoData
	}
	return b, nil
}
