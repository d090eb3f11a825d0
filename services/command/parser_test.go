package command

import (
	"bytes"
	"strings"
	"testing"

	"navcode-go/types"
)

type fakeActuator struct {
	led      bool
	ledSets  int
	r, g, b  uint8
	colorSet bool
}

func (f *fakeActuator) SetLED(on bool)         { f.led = on; f.ledSets++ }
func (f *fakeActuator) SetColor(r, g, b uint8) { f.r, f.g, f.b, f.colorSet = r, g, b, true }
func (f *fakeActuator) AllOff()                { f.r, f.g, f.b = 0, 0, 0 }

type fakeTargets struct {
	set []types.Vec3
}

func (f *fakeTargets) SetTarget(v types.Vec3) { f.set = append(f.set, v) }

func newParser() (*Parser, *fakeActuator, *fakeTargets, *bytes.Buffer) {
	act := &fakeActuator{}
	tgt := &fakeTargets{}
	out := &bytes.Buffer{}
	return NewParser(act, tgt, out), act, tgt, out
}

func feed(p *Parser, s string) {
	for i := 0; i < len(s); i++ {
		p.Feed(s[i])
	}
}

func replies(out *bytes.Buffer) []string {
	s := strings.TrimSpace(out.String())
	if s == "" {
		return nil
	}
	return strings.Split(s, "\r\n")
}

func TestDispatchTable(t *testing.T) {
	cases := []struct {
		line string
		want string
	}{
		{"LED=ON", "ACK=LED_ON"},
		{"LED=OFF", "ACK=LED_OFF"},
		{"RGB=10,20,30", "ACK=RGB,10,20,30"},
		{"RGB=999,-5,100", "ACK=RGB,255,0,100"},
		{"RGB=1,2", "ERR=BAD_RGB,VAL=RGB=1,2"},
		{"RGB=a,b,c", "ERR=BAD_RGB,VAL=RGB=a,b,c"},
		{"GOTO=3,4,0", "ACK=TARGET_SET,3,4,0"},
		{"GOTO=-1.5,2.25,0.5", "ACK=TARGET_SET,-1.5,2.25,0.5"},
		{"GOTO=abc", "ERR=BAD_GOTO,VAL=GOTO=abc"},
		{"GOTO=,1,2", "ERR=BAD_GOTO,VAL=GOTO=,1,2"},
		{"GOTO=1,2", "ERR=BAD_GOTO,VAL=GOTO=1,2"},
		{"PING", "ERR=UNKNOWN_CMD,VAL=PING"},
		{"led=on", "ERR=UNKNOWN_CMD,VAL=led=on"}, // case sensitive
	}
	for _, c := range cases {
		p, _, _, out := newParser()
		feed(p, c.line+"\n")
		got := replies(out)
		if len(got) != 1 || got[0] != c.want {
			t.Errorf("%q -> %q, want %q", c.line, got, c.want)
		}
	}
}

func TestGotoPermissiveNumericParse(t *testing.T) {
	// Comma positions are valid, so the command is accepted even though a
	// field is not numeric; that field reads as zero.
	p, _, tgt, out := newParser()
	feed(p, "GOTO=x,4,5\n")
	got := replies(out)
	if len(got) != 1 || got[0] != "ACK=TARGET_SET,0,4,5" {
		t.Fatalf("replies = %q", got)
	}
	if len(tgt.set) != 1 || tgt.set[0] != (types.Vec3{X: 0, Y: 4, Z: 5}) {
		t.Fatalf("targets = %+v", tgt.set)
	}
}

func TestGotoFailureLeavesTrackerUntouched(t *testing.T) {
	p, _, tgt, _ := newParser()
	feed(p, "GOTO=abc\n")
	if len(tgt.set) != 0 {
		t.Fatalf("SetTarget called on malformed GOTO: %+v", tgt.set)
	}
}

func TestOverflowDiscardsThenRecovers(t *testing.T) {
	p, _, _, out := newParser()
	feed(p, strings.Repeat("A", 97))
	got := replies(out)
	if len(got) != 1 || got[0] != "ERR=CMD_TOO_LONG" {
		t.Fatalf("replies after overflow = %q", got)
	}
	// A subsequent valid line parses normally; no residual corruption.
	out.Reset()
	feed(p, "LED=ON\n")
	got = replies(out)
	if len(got) != 1 || got[0] != "ACK=LED_ON" {
		t.Fatalf("replies after recovery = %q", got)
	}
}

func TestExactly96BytesIsNotOverflow(t *testing.T) {
	p, _, _, out := newParser()
	feed(p, strings.Repeat("A", 96))
	if out.Len() != 0 {
		t.Fatalf("premature overflow: %q", out.String())
	}
	feed(p, "\n")
	got := replies(out)
	if len(got) != 1 || !strings.HasPrefix(got[0], "ERR=UNKNOWN_CMD") {
		t.Fatalf("replies = %q", got)
	}
}

func TestTerminatorsAndBlankLines(t *testing.T) {
	p, act, _, out := newParser()
	// CR works as a terminator; CRLF does not double-dispatch; blank and
	// whitespace-only lines are ignored.
	feed(p, "LED=ON\r\n\n\r  \rLED=OFF\r")
	got := replies(out)
	if len(got) != 2 || got[0] != "ACK=LED_ON" || got[1] != "ACK=LED_OFF" {
		t.Fatalf("replies = %q", got)
	}
	if act.led {
		t.Fatal("LED left on")
	}
}

func TestLeadingTrailingWhitespaceTrimmed(t *testing.T) {
	p, _, _, out := newParser()
	feed(p, "  LED=ON  \n")
	got := replies(out)
	if len(got) != 1 || got[0] != "ACK=LED_ON" {
		t.Fatalf("replies = %q", got)
	}
}

func TestLEDOffIdempotent(t *testing.T) {
	p, act, _, out := newParser()
	feed(p, "LED=OFF\nLED=OFF\n")
	got := replies(out)
	if len(got) != 2 || got[0] != "ACK=LED_OFF" || got[1] != "ACK=LED_OFF" {
		t.Fatalf("replies = %q", got)
	}
	if act.led || act.ledSets != 2 {
		t.Fatalf("led=%v sets=%d", act.led, act.ledSets)
	}
}

type sliceConsole struct {
	in  []byte
	out bytes.Buffer
}

func (c *sliceConsole) Write(p []byte) (int, error) { return c.out.Write(p) }
func (c *sliceConsole) Buffered() int               { return len(c.in) }
func (c *sliceConsole) ReadByte() (byte, error) {
	b := c.in[0]
	c.in = c.in[1:]
	return b, nil
}

func TestPollDrainsAllBufferedInput(t *testing.T) {
	p, _, _, out := newParser()
	con := &sliceConsole{in: []byte("LED=ON\nRGB=1,2,3\nGOTO=3,4,0\n")}
	p.Poll(con)
	got := replies(out)
	if len(got) != 3 {
		t.Fatalf("one Poll should dispatch all buffered lines, got %q", got)
	}
	if con.Buffered() != 0 {
		t.Fatalf("input not drained, %d left", con.Buffered())
	}
}
