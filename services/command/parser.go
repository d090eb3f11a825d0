// Package command implements the line-oriented command protocol: byte
// accumulation, tokenizing, dispatch and acknowledgment lines.
package command

import (
	"io"
	"strings"

	"navcode-go/errcode"
	"navcode-go/services/hal"
	"navcode-go/types"
)

// maxLineLen caps the pending command buffer. Exceeding it discards the
// buffer and reports an overflow; the parser never silently truncates.
const maxLineLen = 96

const eol = "\r\n"

// TargetSetter is the tracker operation the GOTO command needs.
type TargetSetter interface {
	SetTarget(types.Vec3)
}

// Parser assembles console bytes into lines and dispatches recognized
// commands. Every line gets exactly one reply; device state is unchanged
// on any parse failure.
type Parser struct {
	act     hal.Actuator
	targets TargetSetter
	out     io.Writer
	buf     []byte
}

func NewParser(act hal.Actuator, targets TargetSetter, out io.Writer) *Parser {
	return &Parser{
		act:     act,
		targets: targets,
		out:     out,
		buf:     make([]byte, 0, maxLineLen+1),
	}
}

// Poll drains every byte currently buffered on the console in one pass, so
// backlogged input can never starve the rest of the tick.
func (p *Parser) Poll(c hal.Console) {
	for c.Buffered() > 0 {
		b, err := c.ReadByte()
		if err != nil {
			return
		}
		p.Feed(b)
	}
}

// Feed consumes one byte of console input.
func (p *Parser) Feed(b byte) {
	if b == '\n' || b == '\r' {
		if len(p.buf) == 0 {
			return
		}
		line := strings.TrimSpace(string(p.buf))
		p.buf = p.buf[:0]
		if line != "" {
			p.dispatch(line)
		}
		return
	}
	p.buf = append(p.buf, b)
	if len(p.buf) > maxLineLen {
		p.buf = p.buf[:0]
		p.reject(errcode.CmdTooLong, "")
	}
}

func (p *Parser) dispatch(line string) {
	switch {
	case line == "LED=ON":
		p.act.SetLED(true)
		p.ack("LED_ON")
	case line == "LED=OFF":
		p.act.SetLED(false)
		p.ack("LED_OFF")
	case strings.HasPrefix(line, "RGB="):
		p.handleRGB(line)
	case strings.HasPrefix(line, "GOTO="):
		p.handleGoto(line)
	default:
		p.reject(errcode.UnknownCmd, line)
	}
}

func (p *Parser) handleRGB(line string) {
	rgb, err := parseRGB(line[len("RGB="):])
	if err != nil {
		p.reject(errcode.BadRGB, line)
		return
	}
	p.act.SetColor(rgb[0], rgb[1], rgb[2])
	p.ack("RGB," + formatRGB(rgb))
}

func (p *Parser) handleGoto(line string) {
	target, err := parseGoto(line[len("GOTO="):])
	if err != nil {
		p.reject(errcode.BadGoto, line)
		return
	}
	p.targets.SetTarget(target)
	p.ack("TARGET_SET," + formatVec3(target))
}

func (p *Parser) ack(body string) {
	_, _ = io.WriteString(p.out, "ACK="+body+eol)
}

// reject reports a protocol error, echoing the offending line when there
// is one to echo.
func (p *Parser) reject(code errcode.Code, raw string) {
	if raw == "" {
		_, _ = io.WriteString(p.out, "ERR="+string(code)+eol)
		return
	}
	_, _ = io.WriteString(p.out, "ERR="+string(code)+",VAL="+raw+eol)
}
