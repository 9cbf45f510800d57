package terminal

import "testing"

func TestParseMouse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  MouseEvent
		ok    bool
	}{
		{"Left release", "\x1b[<0;5;10m", MouseEvent{Button: 0, X: 5, Y: 10, Press: false}, true},
		{"Left press", "\x1b[<0;5;10M", MouseEvent{Button: 0, X: 5, Y: 10, Press: true}, true},
		{"Right press", "\x1b[<2;1;1M", MouseEvent{Button: 2, X: 1, Y: 1, Press: true}, true},
		{"Wheel", "\x1b[<64;80;24M", MouseEvent{Button: 64, X: 80, Y: 24, Press: true}, true},
		{"Long coordinates", "\x1b[<0;123456;7890123m", MouseEvent{X: 123456, Y: 7890123}, true},
		{"Sanitized introducer", "␛[<0;5;10m", MouseEvent{X: 5, Y: 10}, true},
		{"Trailing input ignored", "\x1b[<0;3;4mabc", MouseEvent{X: 3, Y: 4}, true},

		{"Empty", "", MouseEvent{}, false},
		{"Plain key", "a", MouseEvent{}, false},
		{"Arrow key", "\x1b[A", MouseEvent{}, false},
		{"Missing terminator", "\x1b[<0;5;10", MouseEvent{}, false},
		{"Wrong terminator", "\x1b[<0;5;10H", MouseEvent{}, false},
		{"Too few fields", "\x1b[<0;5m", MouseEvent{}, false},
		{"Too many fields", "\x1b[<0;5;10;1m", MouseEvent{}, false},
		{"Empty field", "\x1b[<0;;10m", MouseEvent{}, false},
		{"Negative field", "\x1b[<0;-5;10m", MouseEvent{}, false},
		{"Not at start", "x\x1b[<0;5;10m", MouseEvent{}, false},
		{"Overflow", "\x1b[<0;99999999999999999999999;1m", MouseEvent{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseMouse(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseMouse(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseMouse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestScanMouseConsumed(t *testing.T) {
	input := "\x1b[<0;12;3M\x1b[<0;12;3m"
	ev, n, ok := ScanMouse(input)
	if !ok {
		t.Fatal("expected first report to decode")
	}
	if n != len("\x1b[<0;12;3M") {
		t.Errorf("consumed %d bytes, want %d", n, len("\x1b[<0;12;3M"))
	}
	if !ev.Press {
		t.Error("first report should be a press")
	}

	ev, _, ok = ScanMouse(input[n:])
	if !ok || ev.Press {
		t.Errorf("second report = %+v ok=%v, want release", ev, ok)
	}
}

func TestIsLeftRelease(t *testing.T) {
	tests := []struct {
		ev   MouseEvent
		want bool
	}{
		{MouseEvent{Button: 0, Press: false}, true},
		{MouseEvent{Button: 0, Press: true}, false},
		{MouseEvent{Button: 2, Press: false}, false},
	}
	for _, tt := range tests {
		if got := tt.ev.IsLeftRelease(); got != tt.want {
			t.Errorf("%v.IsLeftRelease() = %v, want %v", tt.ev, got, tt.want)
		}
	}
}
