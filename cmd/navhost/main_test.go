package main

import (
	"testing"
	"time"

	"navcode-go/bus"
	"navcode-go/services/relay"
)

func TestPrintLoopStopsOnDisconnect(t *testing.T) {
	b := bus.NewBus(8)
	conn := b.NewConnection("console")

	done := make(chan struct{})
	go func() {
		printLoop(conn)
		close(done)
	}()

	// Give the loop time to register its subscriptions before tearing
	// them down.
	time.Sleep(50 * time.Millisecond)

	pub := b.NewConnection("test")
	pub.Publish(&bus.Message{Topic: relay.TopicEvent, Payload: "TARGET_SET,1,2,3"})
	pub.Publish(&bus.Message{Topic: relay.TopicInfo, Payload: "READY"})

	conn.Disconnect()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("printLoop did not return after Disconnect")
	}
}

func TestBuildCommand(t *testing.T) {
	cases := []struct {
		args []string
		raw  string
		want string
		err  bool
	}{
		{[]string{"led", "on"}, "led on", "LED=ON", false},
		{[]string{"led", "off"}, "led off", "LED=OFF", false},
		{[]string{"led", "blink"}, "led blink", "", true},
		{[]string{"rgb", "255", "0", "100"}, "rgb 255 0 100", "RGB=255,0,100", false},
		{[]string{"rgb", "red"}, "rgb red", "", true},
		{[]string{"goto", "3", "4.5", "-0.25"}, "goto 3 4.5 -0.25", "GOTO=3,4.5,-0.25", false},
		{[]string{"goto", "a", "b", "c"}, "goto a b c", "", true},
		{[]string{"LED=ON"}, "LED=ON", "LED=ON", false}, // raw passthrough
	}
	for _, c := range cases {
		got, err := buildCommand(c.args, c.raw)
		if c.err != (err != nil) {
			t.Errorf("buildCommand(%v) err = %v, want err=%v", c.args, err, c.err)
			continue
		}
		if !c.err && got != c.want {
			t.Errorf("buildCommand(%v) = %q, want %q", c.args, got, c.want)
		}
	}
}
