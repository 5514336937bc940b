package pointer

import (
	"reflect"
	"testing"
)

func feedAll(t *testing.T, input string) []Event {
	t.Helper()
	var d Decoder
	return d.Feed([]byte(input))
}

func TestDecodeSGR(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Event
	}{
		{"left press", "\x1b[<0;5;3M", Event{X: 5, Y: 3, Button: ButtonLeft, Action: ActionPress}},
		{"left release", "\x1b[<0;5;3m", Event{X: 5, Y: 3, Button: ButtonLeft, Action: ActionRelease}},
		{"right press", "\x1b[<2;80;24M", Event{X: 80, Y: 24, Button: ButtonRight, Action: ActionPress}},
		{"drag motion", "\x1b[<32;7;2M", Event{X: 7, Y: 2, Button: ButtonLeft, Action: ActionMotion}},
		{"hover motion", "\x1b[<35;7;2M", Event{X: 7, Y: 2, Button: ButtonNone, Action: ActionMotion}},
		{"wheel up", "\x1b[<64;1;1M", Event{X: 1, Y: 1, Button: ButtonWheelUp, Action: ActionPress}},
		{"wheel down", "\x1b[<65;9;9M", Event{X: 9, Y: 9, Button: ButtonWheelDown, Action: ActionPress}},
		{"ctrl press", "\x1b[<16;1;2M", Event{X: 1, Y: 2, Button: ButtonLeft, Action: ActionPress, Mods: ModCtrl}},
		{"shift alt press", "\x1b[<12;1;2M", Event{X: 1, Y: 2, Button: ButtonLeft, Action: ActionPress, Mods: ModShift | ModAlt}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evs := feedAll(t, tt.in)
			if len(evs) != 1 {
				t.Fatalf("got %d events, want 1", len(evs))
			}
			if evs[0] != tt.want {
				t.Errorf("got %+v, want %+v", evs[0], tt.want)
			}
		})
	}
}

func TestDecodeX10(t *testing.T) {
	press := append([]byte("\x1b[M"), 32+0, 32+5, 32+3)
	release := append([]byte("\x1b[M"), 32+3, 32+5, 32+3)
	var d Decoder
	evs := d.Feed(press)
	evs = append(evs, d.Feed(release)...)
	if len(evs) != 2 {
		t.Fatalf("got %d events, want 2", len(evs))
	}
	if evs[0] != (Event{X: 5, Y: 3, Button: ButtonLeft, Action: ActionPress}) {
		t.Errorf("press %+v", evs[0])
	}
	if evs[1].Action != ActionRelease || evs[1].X != 5 || evs[1].Y != 3 {
		t.Errorf("release %+v", evs[1])
	}
}

func TestDecodeSkipsUnrelatedInput(t *testing.T) {
	in := "plain\x1b[Akeys\x1b]0;title\x07more\x1b[<0;2;4Mtail"
	var d Decoder
	evs := d.Feed([]byte(in))
	if len(evs) != 1 {
		t.Fatalf("got %d events, want 1", len(evs))
	}
	if evs[0].X != 2 || evs[0].Y != 4 {
		t.Errorf("event %+v", evs[0])
	}
	if d.Pending() {
		t.Error("decoder left bytes buffered")
	}
}

// TestDecodeSplitFeeds verifies that splitting the stream at any byte
// boundary produces identical events.
func TestDecodeSplitFeeds(t *testing.T) {
	stream := []byte("x\x1b[<0;5;3M\x1b[<32;6;3M\x1b[<32;9;4M\x1b[<0;9;4m")
	var whole Decoder
	want := whole.Feed(stream)
	if len(want) != 4 {
		t.Fatalf("baseline: got %d events, want 4", len(want))
	}
	for cut := 1; cut < len(stream); cut++ {
		var d Decoder
		got := d.Feed(stream[:cut])
		got = append(got, d.Feed(stream[cut:])...)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("cut %d: got %+v, want %+v", cut, got, want)
		}
	}
}

func TestDecodeTruncatedWaits(t *testing.T) {
	var d Decoder
	if evs := d.Feed([]byte("\x1b[<0;5")); len(evs) != 0 {
		t.Fatalf("incomplete report produced events: %+v", evs)
	}
	if !d.Pending() {
		t.Fatal("incomplete report not buffered")
	}
	evs := d.Feed([]byte(";3M"))
	if len(evs) != 1 || evs[0].X != 5 || evs[0].Y != 3 {
		t.Fatalf("completed report wrong: %+v", evs)
	}
}

func TestDecodeMalformedResync(t *testing.T) {
	// A stray escape byte followed by a valid report.
	var d Decoder
	evs := d.Feed([]byte("\x1b\x1b[<0;1;1M"))
	if len(evs) != 1 {
		t.Fatalf("got %d events, want 1", len(evs))
	}
}
