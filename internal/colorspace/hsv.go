package colorspace

import "math"

// HSVf is the float-accurate HSV representation.
//
// Hue is in degrees [0, 360), saturation in [0, 1], and value keeps the raw
// channel scale [0, 255].
type HSVf struct {
	H float64 `json:"h"` // Hue: 0-360 degrees
	S float64 `json:"s"` // Saturation: 0-1
	V float64 `json:"v"` // Value: 0-255
}

// HSVi is the integer-fast HSV approximation.
//
// All three components are in [0, 255]; hue maps the 360 degree circle onto
// 8 bits and is intentionally lossy. HSVi values are not directly comparable
// with HSVf values.
type HSVi struct {
	H int `json:"h"` // Hue: 0-255 (8-bit approximation of the circle)
	S int `json:"s"` // Saturation: 0-255
	V int `json:"v"` // Value: 0-255
}

// HSVFloat derives the float-accurate HSV representation.
//
// Pure black returns the zero HSVf. Achromatic colors (all channels equal)
// return hue 0. For chromatic colors the channels are first normalized by
// value, then renormalized to [0, 1] before the hue branch is chosen by the
// dominant channel. Only the red branch wraps a negative hue back into
// [0, 360); the green and blue branches cannot go negative.
func (c Color) HSVFloat() HSVf {
	r, g, b := c.RGB()
	val := float64(max3(r, g, b))
	if val == 0 {
		return HSVf{}
	}

	fr := float64(r) / val
	fg := float64(g) / val
	fb := float64(b) / val
	mx := math.Max(fr, math.Max(fg, fb))
	mn := math.Min(fr, math.Min(fg, fb))

	sat := mx - mn
	if sat == 0 {
		return HSVf{V: val}
	}

	// Renormalize so the dominant channel becomes exactly 1 and the
	// smallest becomes 0.
	fr = (fr - mn) / (mx - mn)
	fg = (fg - mn) / (mx - mn)
	fb = (fb - mn) / (mx - mn)

	var hue float64
	switch {
	case fr == 1:
		hue = 60 * (fg - fb)
		if hue < 0 {
			hue += 360
		}
	case fg == 1:
		hue = 120 + 60*(fb-fr)
	default:
		hue = 240 + 60*(fr-fg)
	}

	return HSVf{H: hue, S: sat, V: val}
}

// HSVInt derives the integer-fast HSV approximation.
//
// Pure black returns the zero HSVi. Hue uses the scaled-43 formula so a full
// primary-to-primary sextant spans 43 (red at 0, green at 85, blue at 171);
// a negative result wraps by adding 255, consistent with the 8-bit hue
// range.
func (c Color) HSVInt() HSVi {
	r, g, b := c.RGB()
	mx := max3(r, g, b)
	mn := min3(r, g, b)
	if mx == 0 {
		return HSVi{}
	}

	s := int(math.Round(255 * float64(mx-mn) / float64(mx)))
	if s == 0 {
		return HSVi{V: mx}
	}

	d := float64(mx - mn)
	var h int
	switch mx {
	case r:
		h = int(math.Round(43 * float64(g-b) / d))
	case g:
		h = int(math.Round(85 + 43*float64(b-r)/d))
	default:
		h = int(math.Round(171 + 43*float64(r-g)/d))
	}
	if h < 0 {
		h += 255
	}

	return HSVi{H: h, S: s, V: mx}
}

func max3(a, b, c int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
