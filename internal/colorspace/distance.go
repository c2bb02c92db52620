package colorspace

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// GrayThreshold is the default channel-spread threshold for IsGrayScale.
const GrayThreshold = 16

// closestMatchSentinel is the initial best distance for ClosestMatch. It
// safely exceeds any achievable simplified Lab distance (the maximum is
// sqrt(100+255+255), well under 30).
const closestMatchSentinel = 10000.0

// DistanceRGB returns the Manhattan distance between the two colors in the
// RGB cube: the sum of absolute per-channel differences, in [0, 765].
func (c Color) DistanceRGB(other Color) int {
	r1, g1, b1 := c.RGB()
	r2, g2, b2 := other.RGB()
	return absInt(r1-r2) + absInt(g1-g2) + absInt(b1-b2)
}

// DistanceLab returns the simplified perceptual distance
// sqrt(|dL| + |da| + |db|) between the two colors in Lab space.
//
// This is not the standard Euclidean Delta-E: the absolute differences are
// summed before the square root. The cheaper formula is part of the
// interoperability contract and feeds ClosestMatch; callers that want the
// standard metric use DistanceCIE76.
func (c Color) DistanceLab(other Color) float64 {
	l1 := c.LabCIE()
	l2 := other.LabCIE()
	return math.Sqrt(math.Abs(l1.L-l2.L) + math.Abs(l1.A-l2.A) + math.Abs(l1.B-l2.B))
}

// DistanceCIE76 returns the standard Euclidean Delta-E between the two
// colors, computed by go-colorful. It is a secondary metric only and never
// affects ClosestMatch outcomes.
func (c Color) DistanceCIE76(other Color) float64 {
	return c.asColorful().DistanceCIE76(other.asColorful())
}

// asColorful adapts the color to go-colorful's [0, 1] channel representation.
func (c Color) asColorful() colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}
}

// IsGrayScale reports whether the spread between the largest and smallest
// channel is below threshold. GrayThreshold is the conventional default.
func (c Color) IsGrayScale(threshold int) bool {
	r, g, b := c.RGB()
	return max3(r, g, b)-min3(r, g, b) < threshold
}

// ClosestMatch scans the palette in order and returns the index of the
// entry nearest to c by DistanceLab, with ok false when the palette is
// empty.
//
// Ties keep the earliest entry: a later entry replaces the current best
// only with a strictly smaller distance.
func (c Color) ClosestMatch(palette []Color) (index int, ok bool) {
	best := closestMatchSentinel
	for i, entry := range palette {
		if d := c.DistanceLab(entry); d < best {
			best = d
			index = i
			ok = true
		}
	}
	if !ok {
		return -1, false
	}
	return index, true
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
