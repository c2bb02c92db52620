package colorspace

import (
	"errors"
	"strings"
	"testing"
)

func TestFromRGB_RoundTrip(t *testing.T) {
	// Sampled channel values covering the corners and midrange.
	samples := []int{0, 1, 5, 64, 127, 128, 200, 254, 255}

	for _, r := range samples {
		for _, g := range samples {
			for _, b := range samples {
				gr, gg, gb := FromRGB(r, g, b).RGB()
				if gr != r || gg != g || gb != b {
					t.Fatalf("FromRGB(%d,%d,%d).RGB() = (%d,%d,%d)", r, g, b, gr, gg, gb)
				}
			}
		}
	}
}

func TestFromRGB_ChannelBleed(t *testing.T) {
	// Out-of-range channels are not clamped; overflow bits bleed into the
	// adjacent channel per the packing arithmetic.
	tests := []struct {
		name    string
		r, g, b int
		wantR   int
		wantG   int
		wantB   int
	}{
		{"blue overflows into green", 0, 0, 300, 0, 1, 44},
		{"green overflows into red", 0, 300, 0, 1, 44, 0},
		{"red overflows out of 24 bits", 300, 0, 0, 44, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := FromRGB(tt.r, tt.g, tt.b).RGB()
			if r != tt.wantR || g != tt.wantG || b != tt.wantB {
				t.Errorf("RGB: got (%d,%d,%d), want (%d,%d,%d)", r, g, b, tt.wantR, tt.wantG, tt.wantB)
			}
		})
	}
}

func TestFromInt_PreservesValue(t *testing.T) {
	tests := []int{0, 255, 0xFFFFFF, 0x1000000, 0x7FFFFFFF, -1}

	for _, v := range tests {
		if got := FromInt(v).Int(); got != v {
			t.Errorf("FromInt(%d).Int() = %d", v, got)
		}
	}
}

func TestFromHex(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Color
	}{
		{"six digits", "ff0000", 0xFF0000},
		{"uppercase", "00FF00", 0x00FF00},
		{"hash prefix", "#0000ff", 0x0000FF},
		{"short form is not padded", "FF", 255},
		{"transparent sentinel", "7fffffff", 0x7FFFFFFF},
		{"garbage coerces to zero", "zz", 0},
		{"empty coerces to zero", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromHex(tt.in); got != tt.want {
				t.Errorf("FromHex(%q) = %#x, want %#x", tt.in, int(got), int(tt.want))
			}
		})
	}
}

func TestFromRGBHex(t *testing.T) {
	if got := FromRGBHex("ff", "a5", "0"); got != Orange {
		t.Errorf("FromRGBHex(ff,a5,0) = %#x, want %#x", int(got), int(Orange))
	}
	if got := FromRGBHex("zz", "10", "ff"); got != FromRGB(0, 16, 255) {
		t.Errorf("unparsable channel should coerce to 0, got %#x", int(got))
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want string
	}{
		{"black pads to six", Black, "000000"},
		{"low value pads to six", FromInt(255), "0000ff"},
		{"full color", Fuchsia, "ff00ff"},
		{"sentinel renders longer", Transparent, "7fffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Hex(); got != tt.want {
				t.Errorf("Hex: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHex_RoundTrip(t *testing.T) {
	for _, s := range []string{"000000", "0000ff", "123abc", "ffa500", "ffffff"} {
		if got := FromHex(s).Hex(); got != s {
			t.Errorf("FromHex(%q).Hex() = %q", s, got)
		}
	}
	// Case-insensitive on the way in, lowercase on the way out.
	if got := FromHex("FFA500").Hex(); got != "ffa500" {
		t.Errorf("FromHex(FFA500).Hex() = %q, want ffa500", got)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{Orange, "#FFA500"},
		{FromInt(255), "#0000FF"},
		{Black, "#000000"},
		{Transparent, "#7FFFFFFF"},
	}

	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String: got %q, want %q", got, tt.want)
		}
	}
}

func TestRGBHex_Unpadded(t *testing.T) {
	r, g, b := FromRGB(5, 16, 255).RGBHex()
	if r != "5" || g != "10" || b != "ff" {
		t.Errorf("RGBHex: got (%q,%q,%q), want (5,10,ff)", r, g, b)
	}
}

func TestNewFromInt(t *testing.T) {
	c, err := NewFromInt(0xFFA500)
	if err != nil {
		t.Fatalf("NewFromInt failed: %v", err)
	}
	if c != Orange {
		t.Errorf("got %#x, want %#x", int(c), int(Orange))
	}

	// All Go integer kinds are accepted.
	for _, v := range []any{int8(5), int16(5), int32(5), int64(5), uint(5), uint8(5), uint16(5), uint32(5), uint64(5)} {
		if _, err := NewFromInt(v); err != nil {
			t.Errorf("NewFromInt(%T) failed: %v", v, err)
		}
	}
}

func TestNewFromInt_RejectsNonInteger(t *testing.T) {
	for _, v := range []any{1.5, "ff0000", true, nil} {
		_, err := NewFromInt(v)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("NewFromInt(%v): got %v, want ErrInvalidInput", v, err)
		}
	}
}

func TestNewFromRGB(t *testing.T) {
	c, err := NewFromRGB(255, 165, 0)
	if err != nil {
		t.Fatalf("NewFromRGB failed: %v", err)
	}
	if c != Orange {
		t.Errorf("got %#x, want %#x", int(c), int(Orange))
	}
}

func TestNewFromRGB_RejectsNonInteger(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b any
		want    []string
	}{
		{"float red", 1.5, 0, 0, []string{"red (float64)"}},
		{"string green", 0, "80", 0, []string{"green (string)"}},
		{"two bad arguments", 1.5, 0, nil, []string{"red (float64)", "blue (<nil>)"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFromRGB(tt.r, tt.g, tt.b)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("got %v, want ErrInvalidInput", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("error %q does not name %q", err, want)
				}
			}
		})
	}
}
