// navhost is the host-side companion: it bridges the device serial link
// onto the bus, prints telemetry and events, and offers a small interactive
// console for issuing commands.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/shlex"

	"navcode-go/bus"
	"navcode-go/services/relay"
)

func main() {
	port := flag.String("port", "/dev/ttyACM0", "serial device of the nav board")
	baud := flag.Int("baud", 115200, "serial baud rate")
	flag.Parse()

	sp, err := relay.OpenPort(*port, *baud)
	if err != nil {
		fmt.Fprintln(os.Stderr, "open port:", err)
		os.Exit(1)
	}
	defer sp.Close()

	b := bus.NewBus(32)
	rl := relay.New(b.NewConnection("relay"))
	go func() {
		if err := rl.Pump(sp); err != nil {
			fmt.Fprintln(os.Stderr, "link lost:", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()

	conn := b.NewConnection("console")
	defer conn.Disconnect()
	go printLoop(conn)

	console(os.Stdin, sp)
}

// printLoop renders bus traffic until the connection's subscriptions are
// closed by Disconnect.
func printLoop(conn *bus.Connection) {
	tele := conn.Subscribe(relay.TopicTelemetry)
	events := conn.Subscribe(relay.TopicEvent)
	errs := conn.Subscribe(relay.TopicError)
	info := conn.Subscribe(relay.TopicInfo)

	for {
		select {
		case m, ok := <-tele.Channel():
			if !ok {
				return
			}
			f := m.Payload.(*relay.Frame)
			line := fmt.Sprintf("[%8d] %.1fC %.0f%% pos=(%.2f, %.2f, %.2f)",
				f.Timestamp, f.TempC, f.HumidityRH, f.Position.X, f.Position.Y, f.Position.Z)
			if f.DistanceToTarget != nil {
				line += fmt.Sprintf(" dist=%.2f", *f.DistanceToTarget)
			}
			fmt.Println(line)
		case m, ok := <-events.Channel():
			if !ok {
				return
			}
			fmt.Println("event:", m.Payload)
		case m, ok := <-errs.Channel():
			if !ok {
				return
			}
			fmt.Println("device error:", m.Payload)
		case m, ok := <-info.Channel():
			if !ok {
				return
			}
			fmt.Println(m.Payload)
		}
	}
}

// console reads operator input and turns it into device command lines.
// Unrecognized input is sent raw, so the full wire protocol stays reachable.
func console(in *os.File, w interface{ Write([]byte) (int, error) }) {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		raw := sc.Text()
		args, err := shlex.Split(raw)
		if err != nil {
			fmt.Fprintln(os.Stderr, "parse:", err)
			continue
		}
		if len(args) == 0 {
			continue
		}
		line, err := buildCommand(args, raw)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if err := relay.Send(w, line); err != nil {
			fmt.Fprintln(os.Stderr, "send:", err)
			return
		}
	}
}

func buildCommand(args []string, raw string) (string, error) {
	switch args[0] {
	case "led":
		if len(args) != 2 || (args[1] != "on" && args[1] != "off") {
			return "", fmt.Errorf("usage: led on|off")
		}
		return relay.LEDCommand(args[1] == "on"), nil
	case "rgb":
		if len(args) != 4 {
			return "", fmt.Errorf("usage: rgb R G B")
		}
		var c [3]int
		for i := 0; i < 3; i++ {
			v, err := strconv.Atoi(args[i+1])
			if err != nil {
				return "", fmt.Errorf("rgb: %v", err)
			}
			c[i] = v
		}
		return relay.RGBCommand(c[0], c[1], c[2]), nil
	case "goto":
		if len(args) != 4 {
			return "", fmt.Errorf("usage: goto X Y Z")
		}
		var v [3]float64
		for i := 0; i < 3; i++ {
			f, err := strconv.ParseFloat(args[i+1], 64)
			if err != nil {
				return "", fmt.Errorf("goto: %v", err)
			}
			v[i] = f
		}
		return relay.GotoCommand(v[0], v[1], v[2]), nil
	default:
		return raw, nil
	}
}
