package colorspace

import "math"

// XYZTriple holds CIE 1931 tristimulus values for the 2 degree standard
// observer under illuminant D65, scaled by 100 (not normalized to [0, 1]).
type XYZTriple struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// LabTriple holds a CIE Lab value. L is nominally in [0, 100]; a and b are
// unbounded but typically fall within [-128, 127].
type LabTriple struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// D65 reference white tristimulus values.
const (
	refWhiteX = 95.047
	refWhiteY = 100.0
	refWhiteZ = 108.883
)

// XYZ converts the color to CIE XYZ.
//
// Each channel is normalized to [0, 1], linearized with the inverse sRGB
// transfer function, scaled by 100, and run through the sRGB-to-XYZ matrix
// for D65 and the 2 degree observer. The matrix coefficients are exact
// constants and must not be recomputed.
func (c Color) XYZ() XYZTriple {
	ri, gi, bi := c.RGB()
	r := linearize(float64(ri)/255) * 100
	g := linearize(float64(gi)/255) * 100
	b := linearize(float64(bi)/255) * 100

	return XYZTriple{
		X: 0.4124564*r + 0.3575761*g + 0.1804375*b,
		Y: 0.2126729*r + 0.7151522*g + 0.0721750*b,
		Z: 0.0193339*r + 0.1191920*g + 0.9503041*b,
	}
}

// linearize applies the inverse sRGB transfer function to a channel in
// [0, 1], converting gamma-encoded sRGB to linear light.
func linearize(c float64) float64 {
	if c > 0.04045 {
		return math.Pow((c+0.055)/1.055, 2.4)
	}
	return c / 12.92
}

// LabCIE converts the color to CIE Lab via XYZ.
//
// XYZ is divided by the D65 reference white before the cube-root
// nonlinearity. The formula is applied uniformly, with no special case for
// black: pure black evaluates to L = 0 on its own.
func (c Color) LabCIE() LabTriple {
	xyz := c.XYZ()
	fx := labF(xyz.X / refWhiteX)
	fy := labF(xyz.Y / refWhiteY)
	fz := labF(xyz.Z / refWhiteZ)

	return LabTriple{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// labF is the Lab nonlinearity with the linear toe below 0.008856.
func labF(t float64) float64 {
	if t > 0.008856 {
		return math.Cbrt(t)
	}
	return 7.787*t + 16.0/116.0
}
