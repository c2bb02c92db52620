package colorspace

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Color is a color packed into a single integer.
//
// The low 24 bits hold the RGB channels. Values outside [0, 0xFFFFFF] are
// preserved as stored (FromInt never clamps), so the Transparent sentinel
// and even negative inputs round-trip through Int unchanged. Channel
// extraction masks each byte, so RGB always yields components in [0, 255]
// no matter how the value was built.
type Color int

// ErrInvalidInput is returned by the validated factories when an argument's
// runtime type is not an integer.
var ErrInvalidInput = errors.New("invalid input")

// FromInt creates a Color from a packed integer value.
//
// The value is stored as-is with no range check; out-of-range or negative
// integers are preserved and round-trip through Int.
func FromInt(value int) Color {
	return Color(value)
}

// FromRGB creates a Color by packing three channel values as
// (r<<16) + (g<<8) + b.
//
// The channels are not validated: values outside [0, 255] bleed into
// adjacent channels, exactly mirroring the packing arithmetic. Callers that
// need validation use NewFromRGB.
func FromRGB(r, g, b int) Color {
	return Color(r<<16 + g<<8 + b)
}

// FromRGBHex creates a Color from three per-channel hex strings, such as
// ("ff", "a5", "0"). Each channel is parsed as base-16; unparsable channels
// coerce to 0.
func FromRGBHex(r, g, b string) Color {
	return FromRGB(parseHex(r), parseHex(g), parseHex(b))
}

// FromHex creates a Color by parsing s as a base-16 integer. A single
// leading "#" is ignored. The digit count is not fixed: leading zeros may
// be omitted, so "FF" yields 255 (0x0000FF would be "0000FF"). Unparsable
// input yields 0.
func FromHex(s string) Color {
	return Color(parseHex(strings.TrimPrefix(s, "#")))
}

// parseHex parses a base-16 integer, coercing failures to 0.
func parseHex(s string) int {
	n, _ := strconv.ParseInt(s, 16, 64)
	return int(n)
}

// NewFromInt is the validated counterpart of FromInt. It accepts any value
// and fails with ErrInvalidInput if its runtime type is not an integer.
func NewFromInt(value any) (Color, error) {
	n, ok := asInt(value)
	if !ok {
		return 0, fmt.Errorf("%w: non-integer argument value (%T)", ErrInvalidInput, value)
	}
	return FromInt(n), nil
}

// NewFromRGB is the validated counterpart of FromRGB. It accepts any values
// and fails with ErrInvalidInput naming each argument whose runtime type is
// not an integer.
func NewFromRGB(red, green, blue any) (Color, error) {
	var bad []string
	r, ok := asInt(red)
	if !ok {
		bad = append(bad, fmt.Sprintf("red (%T)", red))
	}
	g, ok := asInt(green)
	if !ok {
		bad = append(bad, fmt.Sprintf("green (%T)", green))
	}
	b, ok := asInt(blue)
	if !ok {
		bad = append(bad, fmt.Sprintf("blue (%T)", blue))
	}
	if len(bad) > 0 {
		return 0, fmt.Errorf("%w: non-integer argument(s) %s", ErrInvalidInput, strings.Join(bad, ", "))
	}
	return FromRGB(r, g, b), nil
}

// asInt reports whether v holds an integer type and returns its value.
// Floats are rejected even when integral; the validated factories accept
// integers only.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	default:
		return 0, false
	}
}

// Int returns the packed integer value as stored.
func (c Color) Int() int {
	return int(c)
}

// RGB extracts the three channels by masking. Each component is always in
// [0, 255] regardless of how the color was constructed; any bleed-over from
// invalid packing is clipped here.
func (c Color) RGB() (r, g, b int) {
	return int(c) >> 16 & 0xFF, int(c) >> 8 & 0xFF, int(c) & 0xFF
}

// Hex renders the packed value as lowercase hex, zero-padded to at least 6
// characters. Values that need more than 6 digits (such as Transparent)
// render longer and are not truncated.
func (c Color) Hex() string {
	return fmt.Sprintf("%06x", int(c))
}

// RGBHex returns the per-channel hex of RGB. Channels are not padded: a
// channel value of 5 renders as "5", not "05".
func (c Color) RGBHex() (r, g, b string) {
	ri, gi, bi := c.RGB()
	return fmt.Sprintf("%x", ri), fmt.Sprintf("%x", gi), fmt.Sprintf("%x", bi)
}

// String renders the color as "#" followed by uppercase hex padded to at
// least 6 characters, e.g. "#FFA500".
func (c Color) String() string {
	return fmt.Sprintf("#%06X", int(c))
}
