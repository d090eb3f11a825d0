package strconvx

import "testing"

func TestItoaAtoiRoundTrip(t *testing.T) {
	for _, v := range []int{0, 1, -1, 255, -96, 100000} {
		s := Itoa(v)
		got, err := Atoi(s)
		if err != nil {
			t.Fatalf("Atoi(%q) error: %v", s, err)
		}
		if got != v {
			t.Fatalf("Itoa/Atoi round trip: want %d, got %d", v, got)
		}
	}
}

func TestAtoiRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "x", "1.5", "12a"} {
		if _, err := Atoi(s); err == nil {
			t.Fatalf("Atoi(%q) = nil error, want failure", s)
		}
	}
}

func TestFormatFloatWire(t *testing.T) {
	// Shortest-form output for command acknowledgments.
	type C struct {
		f    float64
		want string
	}
	for _, c := range []C{
		{3, "3"},
		{4, "4"},
		{0, "0"},
		{-2.5, "-2.5"},
		{0.05, "0.05"},
	} {
		if got := FormatFloat(c.f, 'f', -1, 32); got != c.want {
			t.Fatalf("FormatFloat(%v) = %q, want %q", c.f, got, c.want)
		}
	}
}

func TestParseFloatPermissive(t *testing.T) {
	for _, c := range []struct {
		s    string
		want float64
		ok   bool
	}{
		{"3", 3, true},
		{"-4.25", -4.25, true},
		{"0.5", 0.5, true},
		{"abc", 0, false},
		{"", 0, false},
	} {
		got, err := ParseFloat(c.s, 32)
		if c.ok != (err == nil) {
			t.Fatalf("ParseFloat(%q) err = %v, want ok=%v", c.s, err, c.ok)
		}
		if c.ok && got != c.want {
			t.Fatalf("ParseFloat(%q) = %v, want %v", c.s, got, c.want)
		}
	}
}
