package relay

import (
	"strings"
	"testing"
	"time"

	"navcode-go/bus"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		line  string
		topic string
	}{
		{`{"timestamp":1000,"temp_c":21.5,"humidity_rh":40,"position":{"x":0,"y":0,"z":0}}`, TopicTelemetry},
		{"ACK=TARGET_REACHED", TopicEvent},
		{"ACK=RGB,10,20,30", TopicEvent},
		{"ERR=BAD_GOTO,VAL=GOTO=abc", TopicError},
		{"READY", TopicInfo},
		{"Commands: LED=ON|OFF, RGB=R,G,B (0-255), GOTO=x,y,z", TopicInfo},
		{"{not json", TopicInfo},
	}
	for _, c := range cases {
		msg := Classify(c.line)
		if msg == nil || msg.Topic != c.topic {
			t.Errorf("Classify(%q) = %+v, want topic %s", c.line, msg, c.topic)
		}
	}
	if Classify("") != nil || Classify("  ") != nil {
		t.Error("blank lines should classify to nil")
	}
}

func TestClassifyTelemetryFields(t *testing.T) {
	msg := Classify(`{"timestamp":5000,"temp_c":22,"humidity_rh":45,"position":{"x":1,"y":2,"z":3},"distance_to_target":4.5}`)
	f, ok := msg.Payload.(*Frame)
	if !ok {
		t.Fatalf("payload = %T", msg.Payload)
	}
	if f.Timestamp != 5000 || f.TempC != 22 || f.Position.Y != 2 {
		t.Fatalf("frame = %+v", f)
	}
	if f.DistanceToTarget == nil || *f.DistanceToTarget != 4.5 {
		t.Fatalf("distance = %v", f.DistanceToTarget)
	}
	if !msg.Retained {
		t.Fatal("telemetry should be retained")
	}
}

func TestPumpPublishes(t *testing.T) {
	b := bus.NewBus(8)
	conn := b.NewConnection("test")
	defer conn.Disconnect()
	sub := conn.Subscribe("device/#")

	rl := New(b.NewConnection("relay"))
	input := "READY\r\nACK=TARGET_SET,3,4,0\r\n{\"timestamp\":1000,\"temp_c\":20,\"humidity_rh\":50,\"position\":{\"x\":0,\"y\":0,\"z\":0}}\r\n"
	if err := rl.Pump(strings.NewReader(input)); err != nil {
		t.Fatalf("Pump: %v", err)
	}

	topics := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		select {
		case m := <-sub.Channel():
			topics = append(topics, m.Topic)
		case <-time.After(time.Second):
			t.Fatalf("timed out after %d messages", i)
		}
	}
	want := []string{TopicInfo, TopicEvent, TopicTelemetry}
	for i := range want {
		if topics[i] != want[i] {
			t.Fatalf("topics = %v, want %v", topics, want)
		}
	}
}

func TestCommandBuilders(t *testing.T) {
	if got := LEDCommand(true); got != "LED=ON" {
		t.Errorf("LEDCommand(true) = %q", got)
	}
	if got := LEDCommand(false); got != "LED=OFF" {
		t.Errorf("LEDCommand(false) = %q", got)
	}
	if got := RGBCommand(255, 0, 100); got != "RGB=255,0,100" {
		t.Errorf("RGBCommand = %q", got)
	}
	if got := GotoCommand(3, 4.5, -0.25); got != "GOTO=3,4.5,-0.25" {
		t.Errorf("GotoCommand = %q", got)
	}
}

func TestSendAppendsNewline(t *testing.T) {
	var sb strings.Builder
	if err := Send(&sb, "LED=ON"); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "LED=ON\n" {
		t.Fatalf("wrote %q", sb.String())
	}
}
