package pointer

import (
	"bytes"
	"strconv"
	"strings"
)

const (
	esc = 0x1b
	bel = 0x07

	// Caps on buffered escape sequences. Anything longer is not a mouse
	// report and gets dropped rather than held forever.
	maxCSI = 64
	maxOSC = 256
)

// Decoder incrementally extracts mouse reports from a raw byte stream. It
// understands SGR (1006) reports, ESC [ < b ; x ; y M|m, and legacy X10
// reports, ESC [ M b x y. Every other byte, including unrelated escape
// sequences, is consumed without producing an event; a truncated report
// stays buffered until more input arrives.
type Decoder struct {
	buf []byte
}

// Feed appends p to the internal buffer and returns all events that became
// complete. Splitting a report across Feed calls at any byte boundary yields
// the same events.
func (d *Decoder) Feed(p []byte) []Event {
	d.buf = append(d.buf, p...)
	var evs []Event
	for len(d.buf) > 0 {
		ev, n, ok := d.step()
		if n == 0 {
			break
		}
		d.buf = d.buf[n:]
		if ok {
			evs = append(evs, ev)
		}
	}
	return evs
}

// Pending reports whether an incomplete sequence is buffered.
func (d *Decoder) Pending() bool { return len(d.buf) > 0 }

// step inspects the buffer head: it returns the decoded event and consumed
// length, a consumed length with ok=false for recognized non-mouse input, or
// n=0 when the head is a prefix of an incomplete sequence.
func (d *Decoder) step() (Event, int, bool) {
	b := d.buf
	if b[0] != esc {
		// Plain input up to the next escape byte.
		if i := bytes.IndexByte(b, esc); i >= 0 {
			return Event{}, i, false
		}
		return Event{}, len(b), false
	}
	if len(b) < 2 {
		return Event{}, 0, false
	}
	switch b[1] {
	case '[':
		return d.stepCSI()
	case ']':
		return d.stepOSC()
	}
	if b[1] == esc {
		// Resync on the second escape; it may start a real report.
		return Event{}, 1, false
	}
	// ESC plus one byte: alt-key chords and two-byte sequences.
	return Event{}, 2, false
}

func (d *Decoder) stepCSI() (Event, int, bool) {
	b := d.buf
	if len(b) < 3 {
		return Event{}, 0, false
	}
	// Legacy X10: ESC [ M b x y, three raw payload bytes.
	if b[2] == 'M' {
		if len(b) < 6 {
			return Event{}, 0, false
		}
		ev, ok := decodeX10(b[3], b[4], b[5])
		return ev, 6, ok
	}
	// General CSI: parameter bytes, intermediate bytes, one final byte.
	i := 2
	for i < len(b) && b[i] >= 0x30 && b[i] <= 0x3f {
		i++
	}
	for i < len(b) && b[i] >= 0x20 && b[i] <= 0x2f {
		i++
	}
	if i >= len(b) {
		if len(b) > maxCSI {
			return Event{}, 1, false
		}
		return Event{}, 0, false
	}
	final := b[i]
	if final < 0x40 || final > 0x7e {
		// Not a valid CSI; drop the escape byte and resync.
		return Event{}, 1, false
	}
	seq := b[2 : i+1]
	if len(seq) > 1 && seq[0] == '<' && (final == 'M' || final == 'm') {
		ev, ok := decodeSGR(string(seq[1:len(seq)-1]), final == 'm')
		return ev, i + 1, ok
	}
	return Event{}, i + 1, false
}

func (d *Decoder) stepOSC() (Event, int, bool) {
	b := d.buf
	for i := 2; i < len(b); i++ {
		if b[i] == bel {
			return Event{}, i + 1, false
		}
		if b[i] == esc && i+1 < len(b) && b[i+1] == '\\' {
			return Event{}, i + 2, false
		}
	}
	if len(b) > maxOSC {
		return Event{}, 1, false
	}
	return Event{}, 0, false
}

// decodeSGR parses "b;x;y" from an SGR report. release marks the lowercase
// final byte.
func decodeSGR(params string, release bool) (Event, bool) {
	parts := strings.Split(params, ";")
	if len(parts) != 3 {
		return Event{}, false
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Event{}, false
		}
		nums[i] = n
	}
	ev := eventFromButtonBits(nums[0], release)
	ev.X = max(nums[1], 1)
	ev.Y = max(nums[2], 1)
	return ev, true
}

// decodeX10 parses the three payload bytes of a legacy report. Each is
// offset by 32; coordinates are capped at 223 by the encoding itself.
func decodeX10(bb, xb, yb byte) (Event, bool) {
	if bb < 32 || xb < 32 || yb < 32 {
		return Event{}, false
	}
	bits := int(bb - 32)
	release := bits&0x43 == 3 // low bits 3 with no wheel flag
	ev := eventFromButtonBits(bits, release)
	ev.X = max(int(xb-32), 1)
	ev.Y = max(int(yb-32), 1)
	return ev, true
}

func eventFromButtonBits(bits int, release bool) Event {
	var ev Event
	if bits&4 != 0 {
		ev.Mods |= ModShift
	}
	if bits&8 != 0 {
		ev.Mods |= ModAlt
	}
	if bits&16 != 0 {
		ev.Mods |= ModCtrl
	}
	switch {
	case bits&64 != 0:
		if bits&1 != 0 {
			ev.Button = ButtonWheelDown
		} else {
			ev.Button = ButtonWheelUp
		}
		ev.Action = ActionPress
		return ev
	default:
		switch bits & 3 {
		case 0:
			ev.Button = ButtonLeft
		case 1:
			ev.Button = ButtonMiddle
		case 2:
			ev.Button = ButtonRight
		case 3:
			ev.Button = ButtonNone
		}
	}
	switch {
	case bits&32 != 0:
		ev.Action = ActionMotion
	case release:
		ev.Action = ActionRelease
	default:
		ev.Action = ActionPress
	}
	return ev
}
