// Package relay is the host-side serial bridge. It reads lines from the
// device link, classifies them and publishes them onto the bus, and formats
// outbound command lines.
package relay

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.bug.st/serial"

	"navcode-go/bus"
)

// Bus topics. Telemetry is retained so late consumers see the latest frame.
const (
	TopicTelemetry = "device/telemetry"
	TopicEvent     = "device/event"
	TopicError     = "device/err"
	TopicInfo      = "device/info"
)

// Frame mirrors the device's telemetry object.
type Frame struct {
	Timestamp  uint32  `json:"timestamp"`
	TempC      float64 `json:"temp_c"`
	HumidityRH float64 `json:"humidity_rh"`
	Position   struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
		Z float64 `json:"z"`
	} `json:"position"`
	DistanceToTarget *float64 `json:"distance_to_target,omitempty"`
}

// Classify maps one device line to its bus message. JSON objects become
// telemetry; ACK= and ERR= lines become events and errors; anything else
// (the READY banner, the command summary) is informational.
func Classify(line string) *bus.Message {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	if strings.HasPrefix(line, "{") {
		var f Frame
		if err := json.Unmarshal([]byte(line), &f); err == nil {
			return &bus.Message{Topic: TopicTelemetry, Payload: &f, Retained: true}
		}
		// torn or garbled frame: pass through as plain text
	}
	if rest, ok := strings.CutPrefix(line, "ACK="); ok {
		return &bus.Message{Topic: TopicEvent, Payload: rest}
	}
	if rest, ok := strings.CutPrefix(line, "ERR="); ok {
		return &bus.Message{Topic: TopicError, Payload: rest}
	}
	return &bus.Message{Topic: TopicInfo, Payload: line}
}

// Relay pumps lines from a serial port into a bus connection.
type Relay struct {
	conn *bus.Connection
}

func New(conn *bus.Connection) *Relay {
	return &Relay{conn: conn}
}

// Pump reads r until EOF or error, publishing each classified line. It is
// meant to run on its own goroutine for the life of the link.
func (rl *Relay) Pump(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if msg := Classify(sc.Text()); msg != nil {
			rl.conn.Publish(msg)
		}
	}
	return sc.Err()
}

// Send writes one command line to the device.
func Send(w io.Writer, line string) error {
	_, err := io.WriteString(w, line+"\n")
	return err
}

func LEDCommand(on bool) string {
	if on {
		return "LED=ON"
	}
	return "LED=OFF"
}

func RGBCommand(r, g, b int) string {
	return fmt.Sprintf("RGB=%d,%d,%d", r, g, b)
}

func GotoCommand(x, y, z float64) string {
	return fmt.Sprintf("GOTO=%g,%g,%g", x, y, z)
}

// OpenPort opens the device serial link at the given baud rate.
func OpenPort(name string, baud int) (serial.Port, error) {
	return serial.Open(name, &serial.Mode{BaudRate: baud})
}
